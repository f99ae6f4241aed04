package usecase

import (
	"fmt"

	"github.com/robopackage/drupalctl/internal/domain"
)

// Drush builds drush invocations for the project from the loaded configuration.
type Drush struct {
	config      domain.ConfigLoader
	projectRoot string
}

// NewDrush creates a Drush helper. config may be nil to use defaults.
func NewDrush(config domain.ConfigLoader, projectRoot string) *Drush {
	return &Drush{config: config, projectRoot: projectRoot}
}

// Command returns a builder for the drush command using the configured binary.
func (d *Drush) Command(cfg *domain.Config, command string) *domain.DrushCommand {
	return domain.NewDrushCommand(cfg.Drush.Binary, command)
}

// Build renders cmd in the project root through the configured environment prefix.
func (d *Drush) Build(cfg *domain.Config, cmd *domain.DrushCommand) *domain.ExecCommand {
	return cfg.Env().Wrap(cmd.Build(d.projectRoot))
}

// Config loads the effective configuration.
func (d *Drush) Config() (*domain.Config, error) {
	return loadConfig(d.config)
}

// loadConfig loads the configuration, falling back to defaults without a loader.
func loadConfig(loader domain.ConfigLoader) (*domain.Config, error) {
	if loader == nil {
		return domain.NewDefaultConfig(), nil
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
