package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/robopackage/drupalctl/internal/app"
	"github.com/robopackage/drupalctl/internal/domain"
	"github.com/robopackage/drupalctl/internal/usecase"
)

// Output formats for issue show.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// newIssueCommand creates the issue command.
func newIssueCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "issue",
		Short: "Inspect Drupal.org issues",
		// No RunE: shows subcommand list when called without arguments
	}

	cmd.AddCommand(newIssueShowCommand(c))

	return cmd
}

// newIssueShowCommand creates the issue show subcommand.
func newIssueShowCommand(c *app.Container) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show <issue>",
		Short: "Display the patches available on an issue",
		Long: `Resolve a Drupal.org issue and list its candidate patches in the order
the patch command offers them: merge request diffs first, then displayed
.patch attachments, newest first.

Examples:
  drupalctl issue show 3456789
  drupalctl issue show https://www.drupal.org/project/token/issues/3456789 --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return report(cmd, runIssueShow(cmd, c, args[0], format))
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatText, "Output format: text, json, yaml")

	return cmd
}

func runIssueShow(cmd *cobra.Command, c *app.Container, arg, format string) error {
	if err := requireProject(c); err != nil {
		return err
	}
	switch format {
	case formatText, formatJSON, formatYAML:
	default:
		return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
	}

	id, err := domain.ParseIssueID(arg)
	if err != nil {
		return err
	}
	out, err := c.ResolveIssueUseCase().Execute(cmd.Context(), usecase.ResolveIssueInput{IssueID: id})
	if err != nil {
		return err
	}
	return writeIssue(cmd.OutOrStdout(), out.Definition, format)
}

// writeIssue renders def in the requested format.
func writeIssue(w io.Writer, def domain.IssueDefinition, format string) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(def)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(def); err != nil {
			return err
		}
		return enc.Close()
	}

	_, _ = fmt.Fprintln(w, def.Label())
	if len(def.Patches) == 0 {
		_, _ = fmt.Fprintln(w, mutedStyle.Render("  (no patches)"))
		return nil
	}
	for i, p := range def.Patches {
		_, _ = fmt.Fprintf(w, "  %d. %s\n", i, p)
	}
	return nil
}
