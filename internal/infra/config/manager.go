package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/robopackage/drupalctl/internal/domain"
)

// Ensure Manager implements domain.ConfigManager.
var _ domain.ConfigManager = (*Manager)(nil)

// Manager manages configuration files.
type Manager struct {
	projectRoot   string // Path to the Drupal project root
	globalConfDir string // Path to global config directory (e.g., ~/.config/drupalctl)
}

// NewManager creates a new Manager.
func NewManager(projectRoot string) *Manager {
	return &Manager{
		projectRoot:   projectRoot,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewManagerWithGlobalDir creates a new Manager with a custom global config directory.
// This is useful for testing.
func NewManagerWithGlobalDir(projectRoot, globalConfDir string) *Manager {
	return &Manager{
		projectRoot:   projectRoot,
		globalConfDir: globalConfDir,
	}
}

// GetRepoConfigInfo returns information about the project config file.
func (m *Manager) GetRepoConfigInfo() domain.ConfigInfo {
	if m.projectRoot == "" {
		return domain.ConfigInfo{}
	}
	return m.getConfigInfo(domain.RepoConfigPath(m.projectRoot))
}

// GetGlobalConfigInfo returns information about the global config file.
func (m *Manager) GetGlobalConfigInfo() domain.ConfigInfo {
	if m.globalConfDir == "" {
		return domain.ConfigInfo{}
	}
	return m.getConfigInfo(filepath.Join(m.globalConfDir, domain.ConfigFileName))
}

// getConfigInfo reads a config file and returns its info.
func (m *Manager) getConfigInfo(path string) domain.ConfigInfo {
	content, err := os.ReadFile(path)
	if err != nil {
		return domain.ConfigInfo{
			Path:   path,
			Exists: false,
		}
	}
	return domain.ConfigInfo{
		Path:    path,
		Content: string(content),
		Exists:  true,
	}
}

// InitRepoConfig creates a project config file with the default template.
func (m *Manager) InitRepoConfig() error {
	if m.projectRoot == "" {
		return domain.ErrProjectNotFound
	}
	return m.initConfig(domain.RepoConfigPath(m.projectRoot))
}

// InitGlobalConfig creates a global config file with the default template.
func (m *Manager) InitGlobalConfig() error {
	if m.globalConfDir == "" {
		return errors.New("global config directory not available")
	}

	// Create parent directory if it doesn't exist
	if err := os.MkdirAll(m.globalConfDir, 0o700); err != nil {
		return err
	}

	return m.initConfig(filepath.Join(m.globalConfDir, domain.ConfigFileName))
}

// initConfig creates a config file with default template.
func (m *Manager) initConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return domain.ErrConfigExists
	}
	return os.WriteFile(path, []byte(domain.ConfigTemplate), 0o600)
}
