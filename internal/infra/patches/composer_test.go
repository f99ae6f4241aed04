package patches

import (
	"context"
	"testing"

	"github.com/robopackage/drupalctl/internal/domain"
	"github.com/robopackage/drupalctl/internal/infra/composer"
	"github.com/robopackage/drupalctl/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposerWriter_Write(t *testing.T) {
	exec := testutil.NewMockCommandExecutor()
	w := NewComposerWriter(composer.NewClient(exec, "composer", "/project"))

	sel := domain.PatchSelection{
		"drupal/token": {"#2: Token": "https://x/token.patch"},
		"drupal/core":  {"#1: Core & more": "https://x/core.patch"},
	}
	require.NoError(t, w.Write(context.Background(), sel))

	require.Len(t, exec.Commands, 2)
	assert.Equal(t, []string{"config", "--json", "--merge", "extra.patches.drupal/core", `{"#1: Core & more":"https://x/core.patch"}`}, exec.Commands[0].Args)
	assert.Equal(t, []string{"config", "--json", "--merge", "extra.patches.drupal/token", `{"#2: Token":"https://x/token.patch"}`}, exec.Commands[1].Args)
	assert.Equal(t, "/project", exec.Commands[0].Dir)
}

func TestComposerWriter_StopsOnFirstFailure(t *testing.T) {
	exec := testutil.NewMockCommandExecutor()
	exec.Handler = func(cmd *domain.ExecCommand) ([]byte, error) {
		if cmd.Args[3] == "extra.patches.drupal/b" {
			return nil, assert.AnError
		}
		return nil, nil
	}
	w := NewComposerWriter(composer.NewClient(exec, "composer", ""))

	sel := domain.PatchSelection{
		"drupal/a": {"#1: A": "u1"},
		"drupal/b": {"#2: B": "u2"},
		"drupal/c": {"#3: C": "u3"},
	}
	err := w.Write(context.Background(), sel)
	assert.ErrorIs(t, err, domain.ErrPatchWrite)
	assert.Contains(t, err.Error(), "drupal/b")
	assert.Len(t, exec.Commands, 2)
}

func TestComposerWriter_EmptySelection(t *testing.T) {
	exec := testutil.NewMockCommandExecutor()
	require.NoError(t, NewComposerWriter(composer.NewClient(exec, "", "")).Write(context.Background(), domain.PatchSelection{}))
	assert.Empty(t, exec.Commands)
}
