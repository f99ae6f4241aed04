package domain

// ConfigTemplate is written by `config init`.
const ConfigTemplate = `# drupalctl configuration
#
# Project settings live in .drupalctl.toml at the project root and
# override the global file in $XDG_CONFIG_HOME/drupalctl/config.toml.

[drush]
# binary = "vendor/bin/drush"

[composer]
# binary = "composer"

[environment]
# Prefix for drush invocations, e.g. to run inside a container.
# exec = ["ddev", "exec"]

[install]
# profile = "standard"
# site_name = "Drupal Demo"
# site_mail = "site@example.com"
# account_name = "admin"
# account_pass = "admin"
# account_mail = "admin@example.com"
# site_dir = "web/sites/default"

# [database]
# driver = "mysql"
# host = "127.0.0.1"
# port = 3306
# database = "drupal"
# username = "drupal"
# password = "drupal"

[api]
# base_url = "https://www.drupal.org/api-d7"
# timeout = "30s"
# patch_limit = 10

[log]
# level = "info"
`
