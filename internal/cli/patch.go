package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/robopackage/drupalctl/internal/app"
	"github.com/robopackage/drupalctl/internal/domain"
	"github.com/robopackage/drupalctl/internal/usecase"
)

// newPatchCommand creates the patch command.
func newPatchCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Package  string
		Patch    string
		NoUpdate bool
	}

	cmd := &cobra.Command{
		Use:   "patch [issue]",
		Short: "Apply patches from Drupal.org issues",
		Long: `Apply patches from Drupal.org issues to the project.

Without an issue, drupalctl asks for issue URLs or IDs in a loop. Each issue
is resolved to its merge request diffs and displayed .patch attachments
(newest first); you pick the Drupal package and the patch to apply. Patches
are written to the file named by extra.patches-file in composer.json, or to
extra.patches in composer.json itself. composer.lock is refreshed at the end.

Examples:
  # Patch interactively
  drupalctl patch

  # Apply the newest patch of an issue to a package
  drupalctl patch 3456789 --package drupal/token

  # Pick the second candidate by index, or a specific URL
  drupalctl patch https://www.drupal.org/project/token/issues/3456789 --package drupal/token --patch 1

  # Record the patch without running composer
  drupalctl patch 3456789 --package drupal/token --no-update`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return report(cmd, runPatch(cmd, c, args, opts.Package, opts.Patch, opts.NoUpdate))
		},
	}

	cmd.Flags().StringVar(&opts.Package, "package", "", "Drupal package receiving the patch (requires an issue)")
	cmd.Flags().StringVar(&opts.Patch, "patch", "", "Patch URL or zero-based index (default: first candidate)")
	cmd.Flags().BoolVar(&opts.NoUpdate, "no-update", false, "Skip composer update --lock")

	return cmd
}

func runPatch(cmd *cobra.Command, c *app.Container, args []string, pkg, patch string, noUpdate bool) error {
	if err := requireProject(c); err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	var shown error
	in := usecase.PatchProjectInput{
		Package:  pkg,
		Patch:    patch,
		NoUpdate: noUpdate,
		OnResult: func(res usecase.PatchResult) {
			if res.Err != nil {
				shown = res.Err
			}
			printPatchResult(w, cmd.ErrOrStderr(), res)
		},
	}

	if len(args) == 1 {
		id, err := domain.ParseIssueID(args[0])
		if err != nil {
			return err
		}
		in.IssueID = id
	} else if pkg != "" || patch != "" {
		return errors.New("--package and --patch require an issue argument")
	}

	out, err := c.PatchProjectUseCase().Execute(cmd.Context(), in)
	if out != nil && out.ManifestDirty {
		printWarning(cmd.ErrOrStderr(), "composer.json had uncommitted changes before patching.")
	}
	if err != nil {
		if shown != nil && errors.Is(err, shown) {
			return ErrReported
		}
		return err
	}

	switch {
	case len(out.Applied) == 0:
		_, _ = fmt.Fprintln(w, mutedStyle.Render("No patches were applied."))
	case out.Updated:
		printSuccess(w, "composer.lock has been updated.")
	default:
		printWarning(w, "Skipped composer update; run composer update --lock to install the patches.")
	}
	return nil
}

// printPatchResult renders one iteration of the patch loop.
func printPatchResult(stdout, stderr io.Writer, res usecase.PatchResult) {
	if res.Err != nil {
		printError(stderr, fmt.Sprintf("#%d: %s", res.Definition.ID, errorMessage(res.Err)))
		return
	}
	if res.Selection.IsEmpty() {
		printWarning(stdout, fmt.Sprintf("#%d: nothing to apply.", res.Definition.ID))
		return
	}
	for _, pkg := range res.Selection.Packages() {
		for label, url := range res.Selection[pkg] {
			printSuccess(stdout, fmt.Sprintf("%s: %s => %s", pkg, label, url))
		}
	}
}
