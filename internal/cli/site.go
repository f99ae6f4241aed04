package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/robopackage/drupalctl/internal/app"
	"github.com/robopackage/drupalctl/internal/domain"
	"github.com/robopackage/drupalctl/internal/usecase"
)

// newInstallCommand creates the install command.
func newInstallCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Answers      string
		SkipDatabase bool
	}

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install Drupal with drush site:install",
		Long: `Install Drupal with drush site:install.

When a [database] section is configured, the connection is first appended to
<site dir>/settings.local.php. The profile, site and account details are then
asked for, offering the [install] defaults from the configuration.

Answers can be supplied in a YAML file; prompts are skipped for every key it sets:
  profile: standard
  site_name: Drupal Demo
  site_mail: site@example.com
  account_name: admin
  account_pass: admin
  account_mail: admin@example.com
  site_dir: web/sites/default

Examples:
  drupalctl install
  drupalctl install --answers install.yml --skip-database`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return report(cmd, runInstall(cmd, c, opts.Answers, opts.SkipDatabase))
		},
	}

	cmd.Flags().StringVar(&opts.Answers, "answers", "", "YAML file with install answers")
	cmd.Flags().BoolVar(&opts.SkipDatabase, "skip-database", false, "Do not write the database connection")

	return cmd
}

func runInstall(cmd *cobra.Command, c *app.Container, answersPath string, skipDatabase bool) error {
	if err := requireProject(c); err != nil {
		return err
	}

	var answers domain.InstallOptions
	if answersPath != "" {
		content, err := os.ReadFile(answersPath)
		if err != nil {
			return fmt.Errorf("read answers: %w", err)
		}
		answers, err = domain.ParseInstallAnswers(content)
		if err != nil {
			return err
		}
	}

	out, err := c.InstallSiteUseCase().Execute(cmd.Context(), usecase.InstallSiteInput{
		Answers:      answers,
		SkipDatabase: skipDatabase,
	})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	printDatabaseResult(w, cmd.ErrOrStderr(), out.Database)
	printSuccess(w, "The Drupal installation has been successfully completed!")
	return nil
}

// newDatabaseCommand creates the database command.
func newDatabaseCommand(c *app.Container) *cobra.Command {
	var siteDir string

	cmd := &cobra.Command{
		Use:   "database",
		Short: "Write the configured database connection to settings.local.php",
		Long: `Append the [database] connection from the configuration to
<site dir>/settings.local.php. The file must exist; it is left untouched when
it already defines $databases.

Examples:
  drupalctl database
  drupalctl database --site-dir web/sites/default`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireProject(c); err != nil {
				return report(cmd, err)
			}
			out, err := c.ConfigureDatabaseUseCase().Execute(cmd.Context(), usecase.ConfigureDatabaseInput{SiteDir: siteDir})
			if err != nil {
				return report(cmd, err)
			}
			if !out.Configured {
				printWarning(cmd.ErrOrStderr(), "No [database] section is configured.")
				return nil
			}
			printDatabaseResult(cmd.OutOrStdout(), cmd.ErrOrStderr(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&siteDir, "site-dir", "", "Site directory relative to the project root (prompts when empty)")

	return cmd
}

func printDatabaseResult(stdout, stderr io.Writer, out *usecase.ConfigureDatabaseOutput) {
	if out == nil || !out.Configured {
		return
	}
	if out.Written {
		printSuccess(stdout, "Successfully set up the database connection in the Drupal settings.local.php")
		return
	}
	printWarning(stderr, fmt.Sprintf("%s already defines $databases; left unchanged.", out.Path))
}

// newAccountCommand creates the account command.
func newAccountCommand(c *app.Container) *cobra.Command {
	var opts usecase.CreateAccountInput

	cmd := &cobra.Command{
		Use:   "account <username>",
		Short: "Create a Drupal account and grant it a role",
		Long: `Create a Drupal account if it does not exist yet, then grant it a role.

Examples:
  drupalctl account admin
  drupalctl account editor --role content_editor --email editor@example.com --password secret`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireProject(c); err != nil {
				return report(cmd, err)
			}
			in := opts
			in.Username = args[0]
			out, err := c.CreateAccountUseCase().Execute(cmd.Context(), in)
			if err != nil {
				return report(cmd, err)
			}
			role := in.Role
			if role == "" {
				role = usecase.DefaultAccountRole
			}
			if out.Created {
				printSuccess(cmd.OutOrStdout(), fmt.Sprintf("Created the %s account with the %s role.", in.Username, role))
			} else {
				printSuccess(cmd.OutOrStdout(), fmt.Sprintf("The %s account already exists; granted the %s role.", in.Username, role))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Role, "role", usecase.DefaultAccountRole, "Role granted to the account")
	cmd.Flags().StringVar(&opts.Email, "email", usecase.DefaultAccountEmail, "Account email")
	cmd.Flags().StringVar(&opts.Password, "password", usecase.DefaultAccountPassword, "Account password (new accounts only)")

	return cmd
}

// newLoginCommand creates the login command.
func newLoginCommand(c *app.Container) *cobra.Command {
	var opts usecase.LoginInput

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Generate a one-time login link",
		Long: `Generate a one-time login link with drush user:login and open it in the
default browser.

Examples:
  drupalctl login
  drupalctl login --lookup-type name --lookup-value editor --no-browser`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireProject(c); err != nil {
				return report(cmd, err)
			}
			out, err := c.LoginUseCase().Execute(cmd.Context(), opts)
			if out != nil && !out.Opened {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.URL)
			}
			return report(cmd, err)
		},
	}

	cmd.Flags().StringVar(&opts.LookupType, "lookup-type", usecase.DefaultLookupType, "User lookup type: id, name, mail")
	cmd.Flags().StringVar(&opts.LookupValue, "lookup-value", usecase.DefaultLookupValue, "User lookup value")
	cmd.Flags().BoolVar(&opts.NoBrowser, "no-browser", false, "Print the link instead of opening it")

	return cmd
}

// newDrushCommand creates the drush passthrough command.
func newDrushCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "drush [args...]",
		Short: "Run drush in the project environment",
		Long: `Run drush with the given arguments through the configured
[environment] exec prefix, with the terminal attached.

Examples:
  drupalctl drush cr
  drupalctl drush -- status --format=json`,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireProject(c); err != nil {
				return report(cmd, err)
			}
			if len(args) > 0 && args[0] == "--" {
				args = args[1:]
			}
			_, err := c.RunDrushUseCase().Execute(cmd.Context(), usecase.RunDrushInput{Args: args})
			return report(cmd, err)
		},
	}

	return cmd
}
