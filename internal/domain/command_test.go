package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExecCommand_String(t *testing.T) {
	tests := []struct {
		name string
		cmd  *ExecCommand
		want string
	}{
		{"plain", NewCommand("drush", []string{"cr"}, ""), "drush cr"},
		{"space", NewCommand("drush", []string{"--site-name=Drupal Demo"}, ""), "drush '--site-name=Drupal Demo'"},
		{"single quote", NewCommand("echo", []string{"it's"}, ""), `echo 'it'\''s'`},
		{"json", NewCommand("composer", []string{`{"a":"b"}`}, ""), `composer '{"a":"b"}'`},
		{"empty arg", NewCommand("echo", []string{""}, ""), "echo ''"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cmd.String())
		})
	}
}

func TestEnvironment_Wrap(t *testing.T) {
	cmd := NewCommand("drush", []string{"status"}, "/project")

	t.Run("empty prefix returns the command", func(t *testing.T) {
		assert.Same(t, cmd, Environment{}.Wrap(cmd))
	})

	t.Run("prefix is prepended", func(t *testing.T) {
		got := Environment{Exec: []string{"ddev", "exec"}}.Wrap(cmd)
		assert.Equal(t, "ddev", got.Program)
		assert.Equal(t, []string{"exec", "drush", "status"}, got.Args)
		assert.Equal(t, "/project", got.Dir)
	})

	t.Run("single word prefix", func(t *testing.T) {
		got := Environment{Exec: []string{"lando"}}.Wrap(cmd)
		assert.Equal(t, "lando", got.Program)
		assert.Equal(t, []string{"drush", "status"}, got.Args)
	})
}
