package usecase

import (
	"context"
	"fmt"

	"github.com/robopackage/drupalctl/internal/domain"
)

// InitConfigInput selects which configuration file to create.
type InitConfigInput struct {
	Global bool // Global config under XDG_CONFIG_HOME instead of .drupalctl.toml
}

// InitConfigOutput contains the output of the InitConfig use case.
type InitConfigOutput struct {
	Path string
}

// InitConfig writes the commented configuration template.
type InitConfig struct {
	configManager domain.ConfigManager
}

// NewInitConfig creates a new InitConfig use case.
func NewInitConfig(configManager domain.ConfigManager) *InitConfig {
	return &InitConfig{configManager: configManager}
}

// Execute creates the file. It fails with domain.ErrConfigExists when the
// target is already present, and never overwrites it.
func (uc *InitConfig) Execute(_ context.Context, in InitConfigInput) (*InitConfigOutput, error) {
	info, create := uc.configManager.GetRepoConfigInfo(), uc.configManager.InitRepoConfig
	if in.Global {
		info, create = uc.configManager.GetGlobalConfigInfo(), uc.configManager.InitGlobalConfig
	}

	if err := create(); err != nil {
		if info.Path == "" {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", info.Path, err)
	}
	return &InitConfigOutput{Path: info.Path}, nil
}
