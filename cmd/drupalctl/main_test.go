package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectDir(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "no args", args: nil, want: cwd},
		{name: "separate value", args: []string{"--root", "/srv/site", "patch"}, want: "/srv/site"},
		{name: "equals value", args: []string{"-v", "install", "--root=/srv/site"}, want: "/srv/site"},
		{name: "after subcommand", args: []string{"patch", "123", "--root", "/srv/site"}, want: "/srv/site"},
		{name: "drush arguments are left alone", args: []string{"drush", "--root=/var/www"}, want: cwd},
		{name: "after double dash", args: []string{"login", "--", "--root", "/x"}, want: cwd},
		{name: "flag-like values", args: []string{"patch", "1", "--package", "drupal/root"}, want: cwd},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := projectDir(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProjectDir_MissingValue(t *testing.T) {
	_, err := projectDir([]string{"patch", "--root"})
	assert.Error(t, err)
}

func TestRun_OutsideProject(t *testing.T) {
	dir := t.TempDir()

	assert.NoError(t, run([]string{"--root", dir, "--version"}))
	assert.NoError(t, run([]string{"--root", dir, "config", "template"}))
	assert.Error(t, run([]string{"--root", dir, "login"}))
}
