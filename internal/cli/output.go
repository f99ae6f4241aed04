package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/robopackage/drupalctl/internal/app"
	"github.com/robopackage/drupalctl/internal/domain"
	"github.com/robopackage/drupalctl/internal/infra/prompt"
)

// ErrReported is returned by commands whose error was already rendered.
// main exits non-zero without printing it again.
var ErrReported = errors.New("error reported")

var (
	successStyle = lipgloss.NewStyle().Foreground(prompt.Colors.Success).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(prompt.Colors.Warning)
	errorStyle   = lipgloss.NewStyle().Foreground(prompt.Colors.Error).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(prompt.Colors.Muted)
)

func printSuccess(w io.Writer, msg string) {
	_, _ = fmt.Fprintln(w, successStyle.Render("[OK] "+msg))
}

func printWarning(w io.Writer, msg string) {
	_, _ = fmt.Fprintln(w, warningStyle.Render("[WARN] "+msg))
}

func printError(w io.Writer, msg string) {
	_, _ = fmt.Fprintln(w, errorStyle.Render("[ERROR] "+msg))
}

// report renders err at the command boundary.
func report(cmd *cobra.Command, err error) error {
	if err == nil || errors.Is(err, ErrReported) {
		return err
	}
	printError(cmd.ErrOrStderr(), errorMessage(err))
	return ErrReported
}

// errorMessage returns the operator-facing text for err.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrAborted):
		return "Aborted."
	case errors.Is(err, domain.ErrProjectNotFound):
		return err.Error() + "; use --root to point at the project"
	}
	return err.Error()
}

// requireProject fails for commands that need a Drupal project.
func requireProject(c *app.Container) error {
	if c == nil || !c.InProject() {
		return domain.ErrProjectNotFound
	}
	return nil
}
