// Package cli provides the command-line interface for drupalctl.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/robopackage/drupalctl/internal/app"
)

// Command group IDs.
const (
	groupSetup = "setup"
	groupSite  = "site"
	groupPatch = "patch"
)

// RootFlag names the persistent flag selecting the project root.
// main reads it before the container is built.
const RootFlag = "root"

// NewRootCommand creates the root command for drupalctl.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	var verbosity int
	var projectRoot string

	root := &cobra.Command{
		Use:   "drupalctl",
		Short: "Drupal site operations and Drupal.org patch management",
		Long: `drupalctl automates day-to-day work on a Composer-managed Drupal project.

It installs sites and creates accounts through drush, generates one-time
login links, and applies patches from Drupal.org issues to composer.json
(or the file named by extra.patches-file) before refreshing composer.lock.

Drush runs through the [environment] exec prefix, e.g. ["ddev", "exec"].`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil {
				return nil
			}
			c.SetVerbosity(verbosity)

			cfg, err := c.ConfigLoader.Load()
			if err != nil {
				// Commands that need the config report it themselves
				return nil
			}
			for _, w := range cfg.Warnings {
				printWarning(cmd.ErrOrStderr(), "Warning: "+w)
			}
			return nil
		},
	}

	root.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase console log output (-v info, -vv debug)")
	root.PersistentFlags().StringVar(&projectRoot, RootFlag, "", "Drupal project root (default: detected from the current directory)")

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
		&cobra.Group{ID: groupSite, Title: "Site Commands:"},
		&cobra.Group{ID: groupPatch, Title: "Patch Commands:"},
	)

	// Setup commands
	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	// Site commands
	installCmd := newInstallCommand(c)
	installCmd.GroupID = groupSite

	databaseCmd := newDatabaseCommand(c)
	databaseCmd.GroupID = groupSite

	accountCmd := newAccountCommand(c)
	accountCmd.GroupID = groupSite

	loginCmd := newLoginCommand(c)
	loginCmd.GroupID = groupSite

	drushCmd := newDrushCommand(c)
	drushCmd.GroupID = groupSite

	// Patch commands
	patchCmd := newPatchCommand(c)
	patchCmd.GroupID = groupPatch

	issueCmd := newIssueCommand(c)
	issueCmd.GroupID = groupPatch

	root.AddCommand(
		configCmd,
		installCmd,
		databaseCmd,
		accountCmd,
		loginCmd,
		drushCmd,
		patchCmd,
		issueCmd,
	)

	return root
}
