package domain

import (
	"context"
	"io"
	"net/url"
)

// IssueAPI reads resources from the Drupal.org REST API.
// A false result with a nil error means the resource was absent: the request
// failed, returned a non-success status, or had an empty body.
type IssueAPI interface {
	// FetchResource decodes {base}/{resource}.json?{query} into v.
	FetchResource(ctx context.Context, resource string, query url.Values, v any) (bool, error)

	// FetchURL decodes the JSON document at an absolute URL into v.
	FetchURL(ctx context.Context, rawURL string, v any) (bool, error)
}

// CommandExecutor runs external programs.
type CommandExecutor interface {
	// Execute runs the command and returns its standard output.
	// On failure the error includes the command's standard error.
	Execute(ctx context.Context, cmd *ExecCommand) ([]byte, error)

	// ExecuteInteractive runs a command with stdin/stdout/stderr connected to the terminal.
	ExecuteInteractive(ctx context.Context, cmd *ExecCommand) error

	// ExecuteWithContext runs a command with custom stdout/stderr writers.
	ExecuteWithContext(ctx context.Context, cmd *ExecCommand, stdout, stderr io.Writer) error
}

// ManifestReader reads the project's composer.json.
type ManifestReader interface {
	// Read parses composer.json. Returns ErrManifestNotFound if it does not exist.
	Read() (*ComposerManifest, error)
}

// PatchWriter persists a patch selection into the project's composer-patches configuration.
type PatchWriter interface {
	// Write merges the selection. An empty selection is a no-op.
	Write(ctx context.Context, selection PatchSelection) error
}

// PatchWriterFactory picks the PatchWriter matching the manifest's configuration.
type PatchWriterFactory interface {
	// ForManifest returns a patches-file writer when extra.patches-file is set,
	// otherwise a writer that goes through the composer CLI.
	ForManifest(m *ComposerManifest) PatchWriter
}

// Composer runs composer maintenance commands in the project root.
type Composer interface {
	// UpdateLock refreshes composer.lock after the patch configuration changed.
	UpdateLock(ctx context.Context) error
}

// SettingsWriter writes the database connection into a Drupal settings file.
type SettingsWriter interface {
	// AppendDatabase appends the $databases snippet to path unless one exists.
	// Returns false if the file already defined $databases.
	AppendDatabase(path string, db DatabaseConfig) (bool, error)
}

// Question is a free-text prompt.
// Validate may normalize the answer; a returned error asks again.
type Question struct {
	Validate func(string) (string, error)
	Prompt   string
	Default  string
}

// Prompter asks the operator for input.
type Prompter interface {
	// Ask prompts for free text.
	Ask(q Question) (string, error)

	// Choice prompts for one of choices; defaultIndex is preselected (-1 for none).
	Choice(question string, choices []string, defaultIndex int) (string, error)

	// Confirm prompts for yes/no.
	Confirm(question string, defaultYes bool) (bool, error)
}

// BrowserOpener opens a URL in the operator's browser.
type BrowserOpener interface {
	Open(ctx context.Context, url string) error
}

// VersionControl inspects the project's git working tree.
type VersionControl interface {
	// HasUncommittedChanges reports whether the file at relPath differs from HEAD.
	HasUncommittedChanges(relPath string) (bool, error)
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration (defaults + global + project).
	Load() (*Config, error)

	// LoadGlobal returns only the global configuration.
	LoadGlobal() (*Config, error)

	// LoadWithOptions returns the merged configuration without the ignored sources.
	LoadWithOptions(opts LoadConfigOptions) (*Config, error)
}

// LoadConfigOptions selects which configuration files are merged.
type LoadConfigOptions struct {
	IgnoreGlobal bool // Skip the global config file
	IgnoreRepo   bool // Skip the project config file
}

// ConfigInfo describes a configuration file location.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}

// ConfigManager inspects and initializes configuration files.
type ConfigManager interface {
	GetGlobalConfigInfo() ConfigInfo
	GetRepoConfigInfo() ConfigInfo
	InitGlobalConfig() error
	InitRepoConfig() error
}

// Logger records diagnostic events by category.
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}
