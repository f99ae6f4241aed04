// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
	"github.com/robopackage/drupalctl/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	projectRoot   string // Path to the Drupal project root
	globalConfDir string // Path to global config directory (e.g., ~/.config/drupalctl)
}

// NewLoader creates a new Loader.
func NewLoader(projectRoot string) *Loader {
	return &Loader{
		projectRoot:   projectRoot,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(projectRoot, globalConfDir string) *Loader {
	return &Loader{
		projectRoot:   projectRoot,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	if xdg.ConfigHome == "" {
		return ""
	}
	return domain.GlobalConfigDir(xdg.ConfigHome)
}

// Load returns the merged configuration (project + global).
// Project config takes precedence over global config.
func (l *Loader) Load() (*domain.Config, error) {
	return l.LoadWithOptions(domain.LoadConfigOptions{})
}

// LoadWithOptions returns the merged configuration, skipping the sources opts ignores.
func (l *Loader) LoadWithOptions(opts domain.LoadConfigOptions) (*domain.Config, error) {
	var global, repo *domain.Config
	var err error

	if !opts.IgnoreGlobal {
		global, err = l.LoadGlobal()
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	if !opts.IgnoreRepo && l.projectRoot != "" {
		repo, err = l.loadFile(domain.RepoConfigPath(l.projectRoot))
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	// Merge: default <- global <- repo (later takes precedence)
	base := domain.NewDefaultConfig()
	if global != nil {
		base = mergeConfigs(base, global)
	}
	if repo != nil {
		base = mergeConfigs(base, repo)
	}
	return base, nil
}

// LoadGlobal returns only the global configuration.
func (l *Loader) LoadGlobal() (*domain.Config, error) {
	if l.globalConfDir == "" {
		return nil, os.ErrNotExist
	}
	return l.loadFile(filepath.Join(l.globalConfDir, domain.ConfigFileName))
}

// loadFile loads a configuration from a file.
func (l *Loader) loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return convertRawToDomainConfig(raw), nil
}

// convertRawToDomainConfig converts the raw map to domain config and collects warnings.
// Values left at their zero value are treated as unset when merging.
func convertRawToDomainConfig(raw map[string]any) *domain.Config {
	res := &domain.Config{}
	var warnings []string

	unknown := func(section, key string) {
		warnings = append(warnings, fmt.Sprintf("unknown key in [%s]: %s", section, key))
	}

	for section, value := range raw {
		m, ok := value.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
			continue
		}
		switch section {
		case "drush":
			for k, v := range m {
				switch k {
				case "binary":
					res.Drush.Binary = asString(v)
				default:
					unknown(section, k)
				}
			}
		case "composer":
			for k, v := range m {
				switch k {
				case "binary":
					res.Composer.Binary = asString(v)
				default:
					unknown(section, k)
				}
			}
		case "environment":
			for k, v := range m {
				switch k {
				case "exec":
					res.Environment.Exec = asStrings(v)
				default:
					unknown(section, k)
				}
			}
		case "install":
			for k, v := range m {
				switch k {
				case "profile":
					res.Install.Profile = asString(v)
				case "site_name":
					res.Install.SiteName = asString(v)
				case "site_mail":
					res.Install.SiteMail = asString(v)
				case "account_name":
					res.Install.AccountName = asString(v)
				case "account_pass":
					res.Install.AccountPass = asString(v)
				case "account_mail":
					res.Install.AccountMail = asString(v)
				case "site_dir":
					res.Install.SiteDir = asString(v)
				default:
					unknown(section, k)
				}
			}
		case "database":
			db := &domain.DatabaseConfig{}
			for k, v := range m {
				switch k {
				case "driver":
					db.Driver = asString(v)
				case "host":
					db.Host = asString(v)
				case "port":
					db.Port = asInt(v)
				case "database":
					db.Database = asString(v)
				case "username":
					db.Username = asString(v)
				case "password":
					db.Password = asString(v)
				default:
					unknown(section, k)
				}
			}
			res.Database = db
		case "api":
			for k, v := range m {
				switch k {
				case "base_url":
					res.API.BaseURL = asString(v)
				case "timeout":
					if s := asString(v); s != "" {
						d, err := time.ParseDuration(s)
						if err != nil {
							warnings = append(warnings, fmt.Sprintf("invalid duration in [api].timeout: %q", s))
							continue
						}
						res.API.Timeout = d
					} else if n := asInt(v); n > 0 {
						res.API.Timeout = time.Duration(n) * time.Second
					}
				case "patch_limit":
					res.API.PatchLimit = asInt(v)
				default:
					unknown(section, k)
				}
			}
		case "log":
			for k, v := range m {
				switch k {
				case "level":
					res.Log.Level = asString(v)
				default:
					unknown(section, k)
				}
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	sort.Strings(warnings)
	res.Warnings = warnings
	return res
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asInt(v any) int {
	switch n := v.(type) {
	case int64:
		return int(n)
	case int:
		return n
	case float64:
		return int(n)
	}
	return 0
}

func asStrings(v any) []string {
	switch list := v.(type) {
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case []string:
		return list
	case string:
		return strings.Fields(list)
	}
	return nil
}

// mergeConfigs merges two configs, with override taking precedence.
func mergeConfigs(base, override *domain.Config) *domain.Config {
	result := *base
	result.Warnings = append(append([]string{}, base.Warnings...), override.Warnings...)

	if override.Drush.Binary != "" {
		result.Drush.Binary = override.Drush.Binary
	}
	if override.Composer.Binary != "" {
		result.Composer.Binary = override.Composer.Binary
	}
	if len(override.Environment.Exec) > 0 {
		result.Environment.Exec = append([]string{}, override.Environment.Exec...)
	}

	mergeString(&result.Install.Profile, override.Install.Profile)
	mergeString(&result.Install.SiteName, override.Install.SiteName)
	mergeString(&result.Install.SiteMail, override.Install.SiteMail)
	mergeString(&result.Install.AccountName, override.Install.AccountName)
	mergeString(&result.Install.AccountPass, override.Install.AccountPass)
	mergeString(&result.Install.AccountMail, override.Install.AccountMail)
	mergeString(&result.Install.SiteDir, override.Install.SiteDir)

	// Database: merge field by field so a project can override only the host.
	if override.Database != nil {
		db := domain.DatabaseConfig{}
		if base.Database != nil {
			db = *base.Database
		}
		mergeString(&db.Driver, override.Database.Driver)
		mergeString(&db.Host, override.Database.Host)
		mergeString(&db.Database, override.Database.Database)
		mergeString(&db.Username, override.Database.Username)
		mergeString(&db.Password, override.Database.Password)
		if override.Database.Port > 0 {
			db.Port = override.Database.Port
		}
		result.Database = &db
	}

	mergeString(&result.API.BaseURL, override.API.BaseURL)
	if override.API.Timeout > 0 {
		result.API.Timeout = override.API.Timeout
	}
	if override.API.PatchLimit > 0 {
		result.API.PatchLimit = override.API.PatchLimit
	}
	mergeString(&result.Log.Level, override.Log.Level)

	return &result
}

func mergeString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
