package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robopackage/drupalctl/internal/domain"
)

func TestNewRootCommand_Help(t *testing.T) {
	stdout, _, err := execute(nil, "--help")

	require.NoError(t, err)
	assert.Contains(t, stdout, "Setup Commands:")
	assert.Contains(t, stdout, "Site Commands:")
	assert.Contains(t, stdout, "Patch Commands:")
	assert.Contains(t, stdout, "patch")
	assert.Contains(t, stdout, "--root")
}

func TestNewRootCommand_Version(t *testing.T) {
	stdout, _, err := execute(nil, "--version")

	require.NoError(t, err)
	assert.Contains(t, stdout, "test")
}

func TestNewRootCommand_PrintsConfigWarnings(t *testing.T) {
	c, d := newTestContainer(t)
	d.loader.Config = domain.NewDefaultConfig()
	d.loader.Config.Warnings = []string{"unknown key in [drush]: bin"}
	d.exec.Output = []byte("http://site/reset\n")

	_, stderr, err := execute(c, "login", "--no-browser")

	require.NoError(t, err)
	assert.Contains(t, stderr, "Warning: unknown key in [drush]: bin")
}

func TestCommands_RequireProject(t *testing.T) {
	c, _ := newTestContainer(t)
	c.Config.ProjectRoot = ""

	for _, args := range [][]string{
		{"patch"},
		{"install"},
		{"database"},
		{"account", "admin"},
		{"login"},
		{"drush", "status"},
	} {
		t.Run(args[0], func(t *testing.T) {
			_, stderr, err := execute(c, args...)
			assert.ErrorIs(t, err, ErrReported)
			assert.Contains(t, stderr, "no Drupal project found")
		})
	}
}
