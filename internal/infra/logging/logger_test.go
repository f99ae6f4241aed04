package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"unknown", zerolog.InfoLevel}, // default
		{"", zerolog.InfoLevel},        // default
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.input))
		})
	}
}

func TestVerbosityLevel(t *testing.T) {
	assert.Equal(t, zerolog.WarnLevel, VerbosityLevel(0))
	assert.Equal(t, zerolog.InfoLevel, VerbosityLevel(1))
	assert.Equal(t, zerolog.DebugLevel, VerbosityLevel(2))
	assert.Equal(t, zerolog.DebugLevel, VerbosityLevel(5))
}

func readLines(t *testing.T, path string) []map[string]any {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(string(content)), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "drupalctl.log")
	logger := New(Options{FilePath: path, FileLevel: zerolog.InfoLevel})
	defer func() { _ = logger.Close() }()

	logger.Debug("drupalorg", "hidden")
	logger.Info("patch", "applied drupal/foo")
	logger.Error("exec", "boom")

	entries := readLines(t, path)
	require.Len(t, entries, 2)
	assert.Equal(t, "info", entries[0]["level"])
	assert.Equal(t, "patch", entries[0]["category"])
	assert.Equal(t, "applied drupal/foo", entries[0]["message"])
	assert.Equal(t, "error", entries[1]["level"])
}

func TestLogger_ConsoleLevelIsIndependent(t *testing.T) {
	var console bytes.Buffer
	path := filepath.Join(t.TempDir(), "drupalctl.log")
	logger := New(Options{
		Console:      &console,
		ConsoleLevel: zerolog.WarnLevel,
		FilePath:     path,
		FileLevel:    zerolog.DebugLevel,
		NoColor:      true,
	})
	defer func() { _ = logger.Close() }()

	logger.Debug("exec", "drush status")
	logger.Warn("config", "unknown key")

	assert.NotContains(t, console.String(), "drush status")
	assert.Contains(t, console.String(), "unknown key")
	assert.Len(t, readLines(t, path), 2)
}

func TestLogger_UnwritableFileFallsBackToConsole(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	var console bytes.Buffer
	logger := New(Options{
		Console:      &console,
		ConsoleLevel: zerolog.InfoLevel,
		FilePath:     filepath.Join(blocker, "drupalctl.log"),
		NoColor:      true,
	})
	defer func() { _ = logger.Close() }()

	assert.Contains(t, console.String(), "Failed to open log file")
	logger.Info("patch", "still logged")
	assert.Contains(t, console.String(), "still logged")
}

func TestNop(t *testing.T) {
	logger := New(Options{})
	logger.Info("x", "y")
	assert.NoError(t, logger.Close())
}

func TestLogger_SetConsoleLevel(t *testing.T) {
	var console bytes.Buffer
	logger := New(Options{Console: &console, ConsoleLevel: zerolog.WarnLevel, NoColor: true})

	logger.Info("patch", "quiet")
	logger.SetConsoleLevel(zerolog.DebugLevel)
	logger.Debug("exec", "loud")

	assert.NotContains(t, console.String(), "quiet")
	assert.Contains(t, console.String(), "loud")

	Nop().SetConsoleLevel(zerolog.DebugLevel)
}
