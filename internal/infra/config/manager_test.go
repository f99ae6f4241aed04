package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/robopackage/drupalctl/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_GetRepoConfigInfo(t *testing.T) {
	t.Run("returns info when file exists", func(t *testing.T) {
		root := t.TempDir()
		configContent := "[drush]\nbinary = \"vendor/bin/drush\""
		err := os.WriteFile(domain.RepoConfigPath(root), []byte(configContent), 0o644)
		require.NoError(t, err)

		manager := NewManagerWithGlobalDir(root, "")
		info := manager.GetRepoConfigInfo()

		assert.Equal(t, domain.RepoConfigPath(root), info.Path)
		assert.Equal(t, configContent, info.Content)
		assert.True(t, info.Exists)
	})

	t.Run("returns info when file does not exist", func(t *testing.T) {
		root := t.TempDir()

		manager := NewManagerWithGlobalDir(root, "")
		info := manager.GetRepoConfigInfo()

		assert.Equal(t, domain.RepoConfigPath(root), info.Path)
		assert.Empty(t, info.Content)
		assert.False(t, info.Exists)
	})
}

func TestManager_GetGlobalConfigInfo(t *testing.T) {
	t.Run("returns info when file exists", func(t *testing.T) {
		globalDir := t.TempDir()
		configContent := "[log]\nlevel = \"debug\""
		err := os.WriteFile(filepath.Join(globalDir, domain.ConfigFileName), []byte(configContent), 0o644)
		require.NoError(t, err)

		manager := NewManagerWithGlobalDir("", globalDir)
		info := manager.GetGlobalConfigInfo()

		assert.Equal(t, filepath.Join(globalDir, domain.ConfigFileName), info.Path)
		assert.Equal(t, configContent, info.Content)
		assert.True(t, info.Exists)
	})

	t.Run("returns empty info when global dir is empty", func(t *testing.T) {
		manager := NewManagerWithGlobalDir("", "")
		info := manager.GetGlobalConfigInfo()

		assert.Empty(t, info.Path)
		assert.False(t, info.Exists)
	})
}

func TestManager_InitRepoConfig(t *testing.T) {
	t.Run("creates config file", func(t *testing.T) {
		root := t.TempDir()

		manager := NewManagerWithGlobalDir(root, "")
		require.NoError(t, manager.InitRepoConfig())

		content, err := os.ReadFile(domain.RepoConfigPath(root))
		require.NoError(t, err)
		assert.Contains(t, string(content), "drupalctl configuration")
		assert.Contains(t, string(content), "[drush]")
	})

	t.Run("template loads without warnings", func(t *testing.T) {
		root := t.TempDir()
		manager := NewManagerWithGlobalDir(root, "")
		require.NoError(t, manager.InitRepoConfig())

		cfg, err := NewLoaderWithGlobalDir(root, "").Load()
		require.NoError(t, err)
		assert.Empty(t, cfg.Warnings)
	})

	t.Run("returns error if file already exists", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.WriteFile(domain.RepoConfigPath(root), []byte("existing"), 0o644))

		manager := NewManagerWithGlobalDir(root, "")
		err := manager.InitRepoConfig()

		assert.ErrorIs(t, err, domain.ErrConfigExists)
	})

	t.Run("returns error without project root", func(t *testing.T) {
		manager := NewManagerWithGlobalDir("", "")
		assert.ErrorIs(t, manager.InitRepoConfig(), domain.ErrProjectNotFound)
	})
}

func TestManager_InitGlobalConfig(t *testing.T) {
	t.Run("creates config file and parent directory", func(t *testing.T) {
		globalDir := filepath.Join(t.TempDir(), "drupalctl") // This doesn't exist yet

		manager := NewManagerWithGlobalDir("", globalDir)
		require.NoError(t, manager.InitGlobalConfig())

		content, err := os.ReadFile(filepath.Join(globalDir, domain.ConfigFileName))
		require.NoError(t, err)
		assert.Contains(t, string(content), "drupalctl configuration")
	})

	t.Run("returns error if global dir is empty", func(t *testing.T) {
		manager := NewManagerWithGlobalDir("", "")
		assert.Error(t, manager.InitGlobalConfig())
	})
}
