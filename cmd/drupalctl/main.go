// Package main is the entry point for the drupalctl CLI.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/robopackage/drupalctl/internal/app"
	"github.com/robopackage/drupalctl/internal/cli"
	"github.com/robopackage/drupalctl/internal/domain"
)

// version is set at build time using -ldflags.
var version = "dev"

// passthroughCommand receives its arguments untouched.
const passthroughCommand = "drush"

func main() {
	if err := run(os.Args[1:]); err != nil {
		// Command errors were already rendered at the command boundary
		if !errors.Is(err, cli.ErrReported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func run(args []string) error {
	dir, err := projectDir(args)
	if err != nil {
		return err
	}

	// Create dependency injection container
	opts := app.Options{Version: version}
	container, err := app.New(dir, opts)
	if err != nil {
		// Allow running outside a project for help, version and config;
		// project commands report the missing project themselves
		if !errors.Is(err, domain.ErrProjectNotFound) {
			return fmt.Errorf("failed to initialize: %w", err)
		}
		container = app.NewGlobal(opts)
	}
	defer func() { _ = container.Close() }()

	// Create and execute root command
	rootCmd := cli.NewRootCommand(container, version)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

// projectDir returns the --root flag value, or the current directory.
// The container is built before cobra parses flags, so the flag is read here.
func projectDir(args []string) (string, error) {
	flag := "--" + cli.RootFlag
	for i, arg := range args {
		switch {
		case arg == "--" || arg == passthroughCommand:
			return currentDir()
		case arg == flag:
			if i+1 >= len(args) {
				return "", fmt.Errorf("flag needs an argument: %s", flag)
			}
			return args[i+1], nil
		case strings.HasPrefix(arg, flag+"="):
			return strings.TrimPrefix(arg, flag+"="), nil
		}
	}
	return currentDir()
}

func currentDir() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}
	return cwd, nil
}
