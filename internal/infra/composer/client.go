package composer

import (
	"context"
	"fmt"

	"github.com/robopackage/drupalctl/internal/domain"
)

// Client runs composer commands in the project root.
type Client struct {
	exec   domain.CommandExecutor
	binary string
	dir    string
}

// Ensure Client implements domain.Composer interface.
var _ domain.Composer = (*Client)(nil)

// NewClient creates a composer client. An empty binary uses domain.DefaultComposerBinary.
func NewClient(exec domain.CommandExecutor, binary, projectRoot string) *Client {
	if binary == "" {
		binary = domain.DefaultComposerBinary
	}
	return &Client{exec: exec, binary: binary, dir: projectRoot}
}

// Command returns a composer invocation in the project root.
func (c *Client) Command(args ...string) *domain.ExecCommand {
	return domain.NewCommand(c.binary, args, c.dir)
}

// MergeConfigCommand returns the command merging a JSON value into the config key.
func (c *Client) MergeConfigCommand(key, jsonValue string) *domain.ExecCommand {
	return c.Command("config", "--json", "--merge", key, jsonValue)
}

// MergeConfig runs `composer config --json --merge <key> <json>`.
func (c *Client) MergeConfig(ctx context.Context, key, jsonValue string) error {
	if _, err := c.exec.Execute(ctx, c.MergeConfigCommand(key, jsonValue)); err != nil {
		return fmt.Errorf("composer config %s: %w", key, err)
	}
	return nil
}

// UpdateLock runs `composer update --lock` with output attached to the terminal.
func (c *Client) UpdateLock(ctx context.Context) error {
	if err := c.exec.ExecuteInteractive(ctx, c.Command("update", "--lock")); err != nil {
		return fmt.Errorf("%w: composer update --lock: %v", domain.ErrCommandFailed, err)
	}
	return nil
}
