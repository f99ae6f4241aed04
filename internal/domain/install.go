package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// SettingsLocalFileName is the per-site settings file receiving the database connection.
const SettingsLocalFileName = "settings.local.php"

// databasesPattern detects an existing $databases definition in a settings file.
var databasesPattern = regexp.MustCompile(`\$databases`)

// InstallOptions are the answers for drush site:install.
// Empty fields are asked for interactively.
type InstallOptions struct {
	Profile     string `yaml:"profile"`
	SiteName    string `yaml:"site_name"`
	SiteMail    string `yaml:"site_mail"`
	AccountName string `yaml:"account_name"`
	AccountPass string `yaml:"account_pass"`
	AccountMail string `yaml:"account_mail"`
	SiteDir     string `yaml:"site_dir"`
}

// ParseInstallAnswers reads install answers from a YAML document.
// Keys that are absent stay empty and are asked for interactively.
func ParseInstallAnswers(content []byte) (InstallOptions, error) {
	var opts InstallOptions
	if err := yaml.Unmarshal(content, &opts); err != nil {
		return InstallOptions{}, fmt.Errorf("parse install answers: %w", err)
	}
	return opts, nil
}

// DrushCommand builds the drush site:install invocation.
func (o InstallOptions) DrushCommand(binary string) *DrushCommand {
	cmd := NewDrushCommand(binary, "site:install")
	if o.Profile != "" {
		cmd.WithArguments(o.Profile)
	}
	for _, opt := range []DrushOption{
		{Name: "site-name", Value: o.SiteName},
		{Name: "site-mail", Value: o.SiteMail},
		{Name: "account-name", Value: o.AccountName},
		{Name: "account-pass", Value: o.AccountPass},
		{Name: "account-mail", Value: o.AccountMail},
	} {
		if opt.Value != "" {
			cmd.WithOption(opt.Name, opt.Value)
		}
	}
	return cmd
}

// RequireValue is a prompt validator rejecting blank input.
func RequireValue(value string) (string, error) {
	if strings.TrimSpace(value) == "" {
		return "", ErrEmptyValue
	}
	return value, nil
}

// DatabaseSnippet renders the settings.php $databases definition for db.
func DatabaseSnippet(db DatabaseConfig) string {
	port := ""
	if db.Port > 0 {
		port = strconv.Itoa(db.Port)
	}
	return fmt.Sprintf(`$databases['default']['default'] = [
  'database' => '%s',
  'username' => '%s',
  'password' => '%s',
  'host' => '%s',
  'port' => '%s',
  'driver' => '%s',
  'namespace' => 'Drupal\%s\Driver\Database\%s',
];`,
		phpQuote(db.Database),
		phpQuote(db.Username),
		phpQuote(db.Password),
		phpQuote(db.Host),
		port,
		phpQuote(db.Driver),
		db.Driver,
		db.Driver,
	)
}

// HasDatabases reports whether settings content already defines $databases.
func HasDatabases(content []byte) bool {
	return databasesPattern.Match(content)
}

// phpQuote escapes a value for a single-quoted PHP string.
func phpQuote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `'`, `\'`)
}
