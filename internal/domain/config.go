package domain

import (
	"path/filepath"
	"time"
)

// Config file names and directories.
const (
	AppName            = "drupalctl"
	ConfigFileName     = "config.toml"
	RepoConfigFileName = ".drupalctl.toml"
	LogFileName        = "drupalctl.log"
)

// Default configuration values.
const (
	DefaultComposerBinary = "composer"
	DefaultAPIBaseURL     = "https://www.drupal.org/api-d7"
	DefaultAPITimeout     = 30 * time.Second
	DefaultSiteDir        = "web/sites/default"
	DefaultLogLevel       = "info"
)

// Installation profiles offered by the install wizard.
var InstallProfiles = []string{"standard", "minimal"}

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Drush       DrushConfig       `toml:"drush"`
	Composer    ComposerConfig    `toml:"composer"`
	Install     InstallConfig     `toml:"install"`
	Log         LogConfig         `toml:"log"`
	Database    *DatabaseConfig   `toml:"database,omitempty"`
	Environment EnvironmentConfig `toml:"environment"`
	API         APIConfig         `toml:"api"`
	Warnings    []string          `toml:"-"`
}

// DrushConfig holds [drush] settings.
type DrushConfig struct {
	Binary string `toml:"binary"`
}

// ComposerConfig holds [composer] settings.
type ComposerConfig struct {
	Binary string `toml:"binary"`
}

// EnvironmentConfig holds [environment] settings.
type EnvironmentConfig struct {
	Exec []string `toml:"exec,omitempty"` // Command prefix, e.g. ["ddev", "exec"]
}

// InstallConfig holds [install] defaults for the site install wizard.
type InstallConfig struct {
	Profile     string `toml:"profile"`
	SiteName    string `toml:"site_name"`
	SiteMail    string `toml:"site_mail"`
	AccountName string `toml:"account_name"`
	AccountPass string `toml:"account_pass"`
	AccountMail string `toml:"account_mail"`
	SiteDir     string `toml:"site_dir"`
}

// DatabaseConfig holds the [database] connection written to settings.local.php.
type DatabaseConfig struct {
	Driver   string `toml:"driver"`
	Host     string `toml:"host"`
	Database string `toml:"database"`
	Username string `toml:"username"`
	Password string `toml:"password"`
	Port     int    `toml:"port"`
}

// APIConfig holds [api] settings for Drupal.org.
type APIConfig struct {
	BaseURL    string        `toml:"base_url"`
	Timeout    time.Duration `toml:"timeout"`
	PatchLimit int           `toml:"patch_limit"`
}

// LogConfig holds [log] settings.
type LogConfig struct {
	Level string `toml:"level"` // debug, info, warn, error
}

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Drush:    DrushConfig{Binary: DefaultDrushBinary},
		Composer: ComposerConfig{Binary: DefaultComposerBinary},
		Install: InstallConfig{
			Profile:     InstallProfiles[0],
			SiteName:    "Drupal Demo",
			SiteMail:    "site@example.com",
			AccountName: "admin",
			AccountPass: "admin",
			AccountMail: "admin@example.com",
			SiteDir:     DefaultSiteDir,
		},
		API: APIConfig{
			BaseURL:    DefaultAPIBaseURL,
			Timeout:    DefaultAPITimeout,
			PatchLimit: DefaultPatchLimit,
		},
		Log: LogConfig{Level: DefaultLogLevel},
	}
}

// Env returns the execution environment described by the config.
func (c *Config) Env() Environment {
	return Environment{Exec: c.Environment.Exec}
}

// InstallDefaults returns the install wizard defaults.
func (c *Config) InstallDefaults() InstallOptions {
	return InstallOptions{
		Profile:     c.Install.Profile,
		SiteName:    c.Install.SiteName,
		SiteMail:    c.Install.SiteMail,
		AccountName: c.Install.AccountName,
		AccountPass: c.Install.AccountPass,
		AccountMail: c.Install.AccountMail,
		SiteDir:     c.Install.SiteDir,
	}
}

// GlobalConfigDir returns the global configuration directory under configHome.
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, AppName)
}

// GlobalConfigPath returns the global config file path under configHome.
func GlobalConfigPath(configHome string) string {
	return filepath.Join(GlobalConfigDir(configHome), ConfigFileName)
}

// RepoConfigPath returns the project config file path.
func RepoConfigPath(projectRoot string) string {
	return filepath.Join(projectRoot, RepoConfigFileName)
}

// LogFilePath returns the log file path under stateHome.
func LogFilePath(stateHome string) string {
	return filepath.Join(stateHome, AppName, LogFileName)
}
