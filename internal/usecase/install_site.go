package usecase

import (
	"context"
	"fmt"
	"slices"

	"github.com/robopackage/drupalctl/internal/domain"
)

// Install wizard prompts.
const (
	PromptProfile     = "Select the Drupal profile?"
	PromptSiteName    = "Input the Drupal site name?"
	PromptSiteMail    = "Input the Drupal site email?"
	PromptAccountName = "Input the Drupal account username?"
	PromptAccountPass = "Input the Drupal account password?"
	PromptAccountMail = "Input the Drupal account email?"
)

// InstallSiteInput contains the parameters for installing Drupal.
// Fields are ordered to minimize memory padding.
type InstallSiteInput struct {
	Answers      domain.InstallOptions // Pre-filled answers; empty fields are asked for
	SkipDatabase bool                  // Do not write the database connection first
}

// InstallSiteOutput contains the result of installing Drupal.
type InstallSiteOutput struct {
	Database *ConfigureDatabaseOutput // nil when skipped
	Options  domain.InstallOptions
	Command  string
}

// InstallSite configures the database connection and runs drush site:install.
type InstallSite struct {
	exec     domain.CommandExecutor
	prompter domain.Prompter
	drush    *Drush
	database *ConfigureDatabase
}

// NewInstallSite creates a new InstallSite use case.
func NewInstallSite(
	exec domain.CommandExecutor,
	prompter domain.Prompter,
	drush *Drush,
	database *ConfigureDatabase,
) *InstallSite {
	return &InstallSite{
		exec:     exec,
		prompter: prompter,
		drush:    drush,
		database: database,
	}
}

// Execute runs the install wizard.
func (uc *InstallSite) Execute(ctx context.Context, in InstallSiteInput) (*InstallSiteOutput, error) {
	cfg, err := uc.drush.Config()
	if err != nil {
		return nil, err
	}

	out := &InstallSiteOutput{}
	if !in.SkipDatabase && uc.database != nil {
		db, err := uc.database.Execute(ctx, ConfigureDatabaseInput{SiteDir: in.Answers.SiteDir})
		if err != nil {
			return nil, err
		}
		out.Database = db
	}

	opts, err := uc.ask(in.Answers, cfg.InstallDefaults())
	if err != nil {
		return nil, err
	}
	out.Options = opts

	cmd := uc.drush.Build(cfg, opts.DrushCommand(cfg.Drush.Binary))
	out.Command = cmd.String()
	if err := uc.exec.ExecuteInteractive(ctx, cmd); err != nil {
		return nil, fmt.Errorf("%w: drush site:install: %v", domain.ErrCommandFailed, err)
	}
	return out, nil
}

// ask fills every empty answer from the operator, offering defaults.
func (uc *InstallSite) ask(answers, defaults domain.InstallOptions) (domain.InstallOptions, error) {
	opts := answers
	if opts.Profile == "" {
		idx := slices.Index(domain.InstallProfiles, defaults.Profile)
		profile, err := uc.prompter.Choice(PromptProfile, domain.InstallProfiles, idx)
		if err != nil {
			return opts, err
		}
		opts.Profile = profile
	}

	for _, field := range []struct {
		value    *string
		prompt   string
		fallback string
	}{
		{&opts.SiteName, PromptSiteName, defaults.SiteName},
		{&opts.SiteMail, PromptSiteMail, defaults.SiteMail},
		{&opts.AccountName, PromptAccountName, defaults.AccountName},
		{&opts.AccountPass, PromptAccountPass, defaults.AccountPass},
		{&opts.AccountMail, PromptAccountMail, defaults.AccountMail},
	} {
		if *field.value != "" {
			continue
		}
		v, err := uc.prompter.Ask(domain.Question{
			Prompt:   field.prompt,
			Default:  field.fallback,
			Validate: domain.RequireValue,
		})
		if err != nil {
			return opts, err
		}
		*field.value = v
	}
	return opts, nil
}
