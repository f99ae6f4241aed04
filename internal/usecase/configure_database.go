package usecase

import (
	"context"
	"path/filepath"

	"github.com/robopackage/drupalctl/internal/domain"
)

// PromptSiteDir asks for the site directory holding settings.local.php.
const PromptSiteDir = "Input the Drupal site directory path."

// ConfigureDatabaseInput contains the parameters for writing the database connection.
type ConfigureDatabaseInput struct {
	SiteDir string // Site directory relative to the project root; prompts when empty
}

// ConfigureDatabaseOutput contains the result of writing the database connection.
type ConfigureDatabaseOutput struct {
	Path       string // settings.local.php path
	Configured bool   // A [database] section was configured
	Written    bool   // The snippet was appended (false if $databases already existed)
}

// ConfigureDatabase appends the configured database connection to settings.local.php.
type ConfigureDatabase struct {
	settings    domain.SettingsWriter
	prompter    domain.Prompter
	config      domain.ConfigLoader
	projectRoot string
}

// NewConfigureDatabase creates a new ConfigureDatabase use case.
func NewConfigureDatabase(
	settings domain.SettingsWriter,
	prompter domain.Prompter,
	config domain.ConfigLoader,
	projectRoot string,
) *ConfigureDatabase {
	return &ConfigureDatabase{
		settings:    settings,
		prompter:    prompter,
		config:      config,
		projectRoot: projectRoot,
	}
}

// Execute writes the snippet. Nothing happens without a [database] section.
func (uc *ConfigureDatabase) Execute(_ context.Context, in ConfigureDatabaseInput) (*ConfigureDatabaseOutput, error) {
	cfg, err := loadConfig(uc.config)
	if err != nil {
		return nil, err
	}
	if cfg.Database == nil {
		return &ConfigureDatabaseOutput{}, nil
	}

	dir := in.SiteDir
	if dir == "" {
		dir, err = uc.prompter.Ask(domain.Question{
			Prompt:   PromptSiteDir,
			Default:  cfg.Install.SiteDir,
			Validate: domain.RequireValue,
		})
		if err != nil {
			return nil, err
		}
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(uc.projectRoot, dir)
	}
	path := filepath.Join(dir, domain.SettingsLocalFileName)

	written, err := uc.settings.AppendDatabase(path, *cfg.Database)
	if err != nil {
		return nil, err
	}
	return &ConfigureDatabaseOutput{Path: path, Configured: true, Written: written}, nil
}
