package executor

import (
	"context"
	"fmt"
	"runtime"

	"github.com/robopackage/drupalctl/internal/domain"
)

// Browser opens URLs with the platform's default handler.
type Browser struct {
	exec domain.CommandExecutor
	goos string
}

// NewBrowser creates a Browser that runs the opener through exec.
func NewBrowser(exec domain.CommandExecutor) *Browser {
	return &Browser{exec: exec, goos: runtime.GOOS}
}

// Ensure Browser implements domain.BrowserOpener interface.
var _ domain.BrowserOpener = (*Browser)(nil)

// Open launches the browser for url.
func (b *Browser) Open(ctx context.Context, url string) error {
	if _, err := b.exec.Execute(ctx, openCommand(b.goos, url)); err != nil {
		return fmt.Errorf("open browser: %w", err)
	}
	return nil
}

// openCommand returns the command that opens url on goos.
func openCommand(goos, url string) *domain.ExecCommand {
	switch goos {
	case "darwin":
		return domain.NewCommand("open", []string{url}, "")
	case "windows":
		return domain.NewCommand("rundll32", []string{"url.dll,FileProtocolHandler", url}, "")
	default:
		return domain.NewCommand("xdg-open", []string{url}, "")
	}
}
