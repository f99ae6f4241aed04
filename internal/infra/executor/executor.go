// Package executor provides command execution functionality.
package executor

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/robopackage/drupalctl/internal/domain"
)

// Client implements domain.CommandExecutor interface.
type Client struct {
	logger domain.Logger
}

// NewClient creates a new command executor client.
// logger may be nil.
func NewClient(logger domain.Logger) *Client {
	return &Client{logger: logger}
}

// Ensure Client implements domain.CommandExecutor interface.
var _ domain.CommandExecutor = (*Client)(nil)

// Execute runs the command and returns its standard output.
func (c *Client) Execute(ctx context.Context, cmd *domain.ExecCommand) ([]byte, error) {
	execCmd := c.command(ctx, cmd)
	var stderr bytes.Buffer
	execCmd.Stderr = &stderr
	out, err := execCmd.Output()
	if err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return out, fmt.Errorf("%s: %w", cmd.Program, err)
		}
		return out, fmt.Errorf("%s: %w: %s", cmd.Program, err, msg)
	}
	return out, nil
}

// ExecuteInteractive runs a command with stdin/stdout/stderr connected to the terminal.
func (c *Client) ExecuteInteractive(ctx context.Context, cmd *domain.ExecCommand) error {
	execCmd := c.command(ctx, cmd)
	execCmd.Stdin = os.Stdin
	execCmd.Stdout = os.Stdout
	execCmd.Stderr = os.Stderr
	return execCmd.Run()
}

// ExecuteWithContext runs a command with context and custom stdout/stderr writers.
func (c *Client) ExecuteWithContext(ctx context.Context, cmd *domain.ExecCommand, stdout, stderr io.Writer) error {
	execCmd := c.command(ctx, cmd)
	execCmd.Stdout = stdout
	execCmd.Stderr = stderr
	return execCmd.Run()
}

func (c *Client) command(ctx context.Context, cmd *domain.ExecCommand) *exec.Cmd {
	if c.logger != nil {
		c.logger.Debug("exec", cmd.String())
	}
	// #nosec G204 - cmd.Program and cmd.Args come from trusted UseCase code
	execCmd := exec.CommandContext(ctx, cmd.Program, cmd.Args...)
	if cmd.Dir != "" {
		execCmd.Dir = cmd.Dir
	}
	return execCmd
}
