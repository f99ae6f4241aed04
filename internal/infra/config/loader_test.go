package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/robopackage/drupalctl/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoader_Load_Defaults(t *testing.T) {
	loader := NewLoaderWithGlobalDir(t.TempDir(), t.TempDir())

	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, domain.NewDefaultConfig(), cfg)
	assert.Nil(t, cfg.Database)
}

func TestLoader_Load_RepoConfigOnly(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, domain.RepoConfigPath(root), `
[drush]
binary = "vendor/bin/drush"

[environment]
exec = ["ddev", "exec"]

[install]
site_name = "Intranet"
site_dir = "docroot/sites/default"

[database]
driver = "pgsql"
host = "db"
port = 5432
database = "drupal"
username = "user"
password = "secret"

[api]
timeout = "5s"
patch_limit = 3

[log]
level = "debug"
`)

	cfg, err := NewLoaderWithGlobalDir(root, t.TempDir()).Load()
	require.NoError(t, err)

	assert.Equal(t, "vendor/bin/drush", cfg.Drush.Binary)
	assert.Equal(t, domain.DefaultComposerBinary, cfg.Composer.Binary)
	assert.Equal(t, []string{"ddev", "exec"}, cfg.Environment.Exec)
	assert.Equal(t, "Intranet", cfg.Install.SiteName)
	assert.Equal(t, "admin", cfg.Install.AccountName)
	assert.Equal(t, "docroot/sites/default", cfg.Install.SiteDir)
	require.NotNil(t, cfg.Database)
	assert.Equal(t, domain.DatabaseConfig{
		Driver:   "pgsql",
		Host:     "db",
		Port:     5432,
		Database: "drupal",
		Username: "user",
		Password: "secret",
	}, *cfg.Database)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Equal(t, 3, cfg.API.PatchLimit)
	assert.Equal(t, domain.DefaultAPIBaseURL, cfg.API.BaseURL)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Empty(t, cfg.Warnings)
}

func TestLoader_Load_MergeRepoOverridesGlobal(t *testing.T) {
	root := t.TempDir()
	globalDir := t.TempDir()

	writeConfig(t, filepath.Join(globalDir, domain.ConfigFileName), `
[composer]
binary = "/usr/local/bin/composer"

[database]
driver = "mysql"
host = "127.0.0.1"
username = "global"

[log]
level = "warn"
`)
	writeConfig(t, domain.RepoConfigPath(root), `
[database]
host = "db"

[log]
level = "debug"
`)

	cfg, err := NewLoaderWithGlobalDir(root, globalDir).Load()
	require.NoError(t, err)

	assert.Equal(t, "/usr/local/bin/composer", cfg.Composer.Binary)
	assert.Equal(t, "debug", cfg.Log.Level)
	require.NotNil(t, cfg.Database)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, "global", cfg.Database.Username)
}

func TestLoader_Load_EnvironmentExecString(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, domain.RepoConfigPath(root), `
[environment]
exec = "lando ssh -c"
`)

	cfg, err := NewLoaderWithGlobalDir(root, "").Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"lando", "ssh", "-c"}, cfg.Environment.Exec)
}

func TestLoader_Load_Warnings(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, domain.RepoConfigPath(root), `
[drush]
bin = "drush"

[api]
timeout = "soon"

[workers]
default = "x"
`)

	cfg, err := NewLoaderWithGlobalDir(root, "").Load()
	require.NoError(t, err)

	assert.Equal(t, []string{
		`invalid duration in [api].timeout: "soon"`,
		"unknown key in [drush]: bin",
		"unknown section: workers",
	}, cfg.Warnings)
	assert.Equal(t, domain.DefaultAPITimeout, cfg.API.Timeout)
}

func TestLoader_Load_InvalidTOML(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, domain.RepoConfigPath(root), "[drush\nbinary=")

	_, err := NewLoaderWithGlobalDir(root, "").Load()
	assert.Error(t, err)
}

func TestLoader_LoadGlobal_NoDir(t *testing.T) {
	_, err := NewLoaderWithGlobalDir("", "").LoadGlobal()
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoader_LoadWithOptions(t *testing.T) {
	root := t.TempDir()
	globalDir := t.TempDir()
	writeConfig(t, filepath.Join(globalDir, domain.ConfigFileName), "[drush]\nbinary = \"global-drush\"\n")
	writeConfig(t, domain.RepoConfigPath(root), "[log]\nlevel = \"debug\"\n")
	loader := NewLoaderWithGlobalDir(root, globalDir)

	t.Run("ignore global", func(t *testing.T) {
		cfg, err := loader.LoadWithOptions(domain.LoadConfigOptions{IgnoreGlobal: true})
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultDrushBinary, cfg.Drush.Binary)
		assert.Equal(t, "debug", cfg.Log.Level)
	})

	t.Run("ignore repo", func(t *testing.T) {
		cfg, err := loader.LoadWithOptions(domain.LoadConfigOptions{IgnoreRepo: true})
		require.NoError(t, err)
		assert.Equal(t, "global-drush", cfg.Drush.Binary)
		assert.Equal(t, domain.DefaultLogLevel, cfg.Log.Level)
	})
}
