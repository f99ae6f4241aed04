// Package app provides the dependency injection container for the application.
package app

import (
	"errors"
	"io"
	"os"

	"github.com/adrg/xdg"

	"github.com/robopackage/drupalctl/internal/domain"
	"github.com/robopackage/drupalctl/internal/infra/composer"
	"github.com/robopackage/drupalctl/internal/infra/config"
	"github.com/robopackage/drupalctl/internal/infra/drupalorg"
	"github.com/robopackage/drupalctl/internal/infra/executor"
	"github.com/robopackage/drupalctl/internal/infra/logging"
	"github.com/robopackage/drupalctl/internal/infra/patches"
	"github.com/robopackage/drupalctl/internal/infra/project"
	"github.com/robopackage/drupalctl/internal/infra/prompt"
	"github.com/robopackage/drupalctl/internal/infra/settings"
	"github.com/robopackage/drupalctl/internal/usecase"
)

// Config holds the application paths.
type Config struct {
	ProjectRoot string // Directory holding composer.json; empty outside a project
	LogPath     string // Path to the log file
}

// Options configures how the container talks to the terminal.
// Zero values use the process's standard streams and the XDG state directory.
type Options struct {
	Stdin   io.Reader
	Stderr  io.Writer // Prompts and console log output
	Version string    // Reported in the Drupal.org User-Agent
	LogPath string
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	IssueAPI      domain.IssueAPI
	Executor      domain.CommandExecutor
	Manifests     domain.ManifestReader
	PatchWriters  domain.PatchWriterFactory
	Composer      domain.Composer
	Settings      domain.SettingsWriter
	Prompter      domain.Prompter
	Browser       domain.BrowserOpener
	VCS           domain.VersionControl // nil when the project is not under git
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	Logger        domain.Logger

	// Pointer fields
	logs *logging.Logger

	// Configuration
	Config     Config
	PatchLimit int
}

// Deps lists the ports for NewWithDeps. Unset ports stay nil.
type Deps struct {
	IssueAPI      domain.IssueAPI
	Executor      domain.CommandExecutor
	Manifests     domain.ManifestReader
	PatchWriters  domain.PatchWriterFactory
	Composer      domain.Composer
	Settings      domain.SettingsWriter
	Prompter      domain.Prompter
	Browser       domain.BrowserOpener
	VCS           domain.VersionControl
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	Logger        domain.Logger
}

// New creates a new Container for the Drupal project containing dir.
// Returns domain.ErrProjectNotFound when no composer.json is found.
func New(dir string, opts Options) (*Container, error) {
	root, err := project.FindRoot(dir)
	if err != nil {
		return nil, err
	}
	opts = withDefaults(opts)

	// Load app config; fall back to defaults when it cannot be read.
	// The error surfaces again when a command loads the config.
	configLoader := config.NewLoader(root)
	appConfig, err := configLoader.Load()
	if err != nil {
		appConfig = domain.NewDefaultConfig()
	}

	logs := newLogger(appConfig, opts)

	// Create command executor
	exec := executor.NewClient(logs)

	// Create composer client
	composerClient := composer.NewClient(exec, appConfig.Composer.Binary, root)

	c := &Container{
		IssueAPI:      drupalorg.NewClient(appConfig.API.BaseURL, appConfig.API.Timeout, opts.Version, logs),
		Executor:      exec,
		Manifests:     composer.NewManifestReader(root),
		PatchWriters:  patches.NewFactory(root, composerClient),
		Composer:      composerClient,
		Settings:      settings.NewWriter(),
		Prompter:      prompt.New(opts.Stdin, opts.Stderr),
		Browser:       executor.NewBrowser(exec),
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManager(root),
		Logger:        logs,
		logs:          logs,
		Config:        Config{ProjectRoot: root, LogPath: opts.LogPath},
		PatchLimit:    appConfig.API.PatchLimit,
	}

	// Assign only a real repository so the interface stays nil without git.
	repo, err := project.OpenRepository(root)
	switch {
	case err == nil:
		c.VCS = repo
	case errors.Is(err, project.ErrNoRepository):
		logs.Debug("app", "project is not under git")
	default:
		logs.Warn("app", err.Error())
	}

	return c, nil
}

// NewGlobal creates a Container for use outside a Drupal project.
// Only configuration and logging are available.
func NewGlobal(opts Options) *Container {
	opts = withDefaults(opts)
	configLoader := config.NewLoader("")
	appConfig, err := configLoader.Load()
	if err != nil {
		appConfig = domain.NewDefaultConfig()
	}
	logs := newLogger(appConfig, opts)
	return &Container{
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManager(""),
		Logger:        logs,
		logs:          logs,
		Config:        Config{LogPath: opts.LogPath},
	}
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, deps Deps) *Container {
	return &Container{
		IssueAPI:      deps.IssueAPI,
		Executor:      deps.Executor,
		Manifests:     deps.Manifests,
		PatchWriters:  deps.PatchWriters,
		Composer:      deps.Composer,
		Settings:      deps.Settings,
		Prompter:      deps.Prompter,
		Browser:       deps.Browser,
		VCS:           deps.VCS,
		ConfigLoader:  deps.ConfigLoader,
		ConfigManager: deps.ConfigManager,
		Logger:        deps.Logger,
		Config:        cfg,
	}
}

func withDefaults(opts Options) Options {
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.LogPath == "" && xdg.StateHome != "" {
		opts.LogPath = domain.LogFilePath(xdg.StateHome)
	}
	return opts
}

func newLogger(cfg *domain.Config, opts Options) *logging.Logger {
	return logging.New(logging.Options{
		Console:      opts.Stderr,
		ConsoleLevel: logging.VerbosityLevel(0),
		FilePath:     opts.LogPath,
		FileLevel:    logging.ParseLevel(cfg.Log.Level),
	})
}

// SetVerbosity adjusts console logging for the -v count.
func (c *Container) SetVerbosity(verbosity int) {
	if c.logs != nil {
		c.logs.SetConsoleLevel(logging.VerbosityLevel(verbosity))
	}
}

// Close releases the log file.
func (c *Container) Close() error {
	if c.logs == nil {
		return nil
	}
	return c.logs.Close()
}

// InProject reports whether the container is bound to a Drupal project.
func (c *Container) InProject() bool {
	return c.Config.ProjectRoot != ""
}

// UseCase factory methods

func (c *Container) drush() *usecase.Drush {
	return usecase.NewDrush(c.ConfigLoader, c.Config.ProjectRoot)
}

// ResolveIssueUseCase returns a new ResolveIssue use case.
func (c *Container) ResolveIssueUseCase() *usecase.ResolveIssue {
	return usecase.NewResolveIssue(c.IssueAPI, c.PatchLimit, c.Logger)
}

// SelectPatchUseCase returns a new SelectPatch use case.
func (c *Container) SelectPatchUseCase() *usecase.SelectPatch {
	return usecase.NewSelectPatch(c.Prompter)
}

// ApplyPatchesUseCase returns a new ApplyPatches use case.
func (c *Container) ApplyPatchesUseCase() *usecase.ApplyPatches {
	return usecase.NewApplyPatches(c.PatchWriters, c.Logger)
}

// PatchProjectUseCase returns a new PatchProject use case.
func (c *Container) PatchProjectUseCase() *usecase.PatchProject {
	return usecase.NewPatchProject(
		c.Manifests,
		c.ResolveIssueUseCase(),
		c.SelectPatchUseCase(),
		c.ApplyPatchesUseCase(),
		c.Composer,
		c.Prompter,
		c.VCS,
		c.Logger,
	)
}

// RunDrushUseCase returns a new RunDrush use case.
func (c *Container) RunDrushUseCase() *usecase.RunDrush {
	return usecase.NewRunDrush(c.Executor, c.drush())
}

// CreateAccountUseCase returns a new CreateAccount use case.
func (c *Container) CreateAccountUseCase() *usecase.CreateAccount {
	return usecase.NewCreateAccount(c.Executor, c.drush(), c.Logger)
}

// LoginUseCase returns a new Login use case.
func (c *Container) LoginUseCase() *usecase.Login {
	return usecase.NewLogin(c.Executor, c.Browser, c.drush())
}

// ConfigureDatabaseUseCase returns a new ConfigureDatabase use case.
func (c *Container) ConfigureDatabaseUseCase() *usecase.ConfigureDatabase {
	return usecase.NewConfigureDatabase(c.Settings, c.Prompter, c.ConfigLoader, c.Config.ProjectRoot)
}

// InstallSiteUseCase returns a new InstallSite use case.
func (c *Container) InstallSiteUseCase() *usecase.InstallSite {
	return usecase.NewInstallSite(c.Executor, c.Prompter, c.drush(), c.ConfigureDatabaseUseCase())
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}
