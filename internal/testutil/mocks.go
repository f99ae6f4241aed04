// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"

	"github.com/robopackage/drupalctl/internal/domain"
)

// MockCommandExecutor is a test double for domain.CommandExecutor.
// Fields are ordered to minimize memory padding.
type MockCommandExecutor struct {
	// Handler, when set, decides the result of every call.
	Handler        func(cmd *domain.ExecCommand) ([]byte, error)
	ExecuteErr     error
	InteractiveErr error
	Output         []byte
	Commands       []*domain.ExecCommand
	Interactive    []bool
}

// NewMockCommandExecutor creates a new MockCommandExecutor.
func NewMockCommandExecutor() *MockCommandExecutor {
	return &MockCommandExecutor{}
}

func (m *MockCommandExecutor) record(cmd *domain.ExecCommand, interactive bool) {
	m.Commands = append(m.Commands, cmd)
	m.Interactive = append(m.Interactive, interactive)
}

// Execute records the command and returns the configured output.
func (m *MockCommandExecutor) Execute(_ context.Context, cmd *domain.ExecCommand) ([]byte, error) {
	m.record(cmd, false)
	if m.Handler != nil {
		return m.Handler(cmd)
	}
	return m.Output, m.ExecuteErr
}

// ExecuteInteractive records the command and returns InteractiveErr.
func (m *MockCommandExecutor) ExecuteInteractive(_ context.Context, cmd *domain.ExecCommand) error {
	m.record(cmd, true)
	if m.Handler != nil {
		_, err := m.Handler(cmd)
		return err
	}
	return m.InteractiveErr
}

// ExecuteWithContext records the command and writes the configured output to stdout.
func (m *MockCommandExecutor) ExecuteWithContext(_ context.Context, cmd *domain.ExecCommand, stdout, _ io.Writer) error {
	m.record(cmd, false)
	out, err := m.Output, m.ExecuteErr
	if m.Handler != nil {
		out, err = m.Handler(cmd)
	}
	if stdout != nil && len(out) > 0 {
		_, _ = stdout.Write(out)
	}
	return err
}

// CommandLines returns the recorded commands rendered as strings.
func (m *MockCommandExecutor) CommandLines() []string {
	lines := make([]string, 0, len(m.Commands))
	for _, c := range m.Commands {
		lines = append(lines, c.String())
	}
	return lines
}

// MockIssueAPI is a test double for domain.IssueAPI backed by canned JSON bodies.
// Resources are keyed by "resource?encoded-query"; URLs by the absolute URL.
type MockIssueAPI struct {
	Resources map[string]string
	URLs      map[string]string
	Requested []string
}

// NewMockIssueAPI creates a new MockIssueAPI with initialized maps.
func NewMockIssueAPI() *MockIssueAPI {
	return &MockIssueAPI{
		Resources: make(map[string]string),
		URLs:      make(map[string]string),
	}
}

// ResourceKey returns the lookup key used for FetchResource.
func ResourceKey(resource string, query url.Values) string {
	return resource + "?" + query.Encode()
}

// FetchResource decodes the canned body for resource and query.
func (m *MockIssueAPI) FetchResource(_ context.Context, resource string, query url.Values, v any) (bool, error) {
	key := ResourceKey(resource, query)
	m.Requested = append(m.Requested, key)
	return decodeBody(m.Resources, key, v)
}

// FetchURL decodes the canned body for rawURL.
func (m *MockIssueAPI) FetchURL(_ context.Context, rawURL string, v any) (bool, error) {
	m.Requested = append(m.Requested, rawURL)
	return decodeBody(m.URLs, rawURL, v)
}

func decodeBody(bodies map[string]string, key string, v any) (bool, error) {
	body, ok := bodies[key]
	if !ok || body == "" {
		return false, nil
	}
	if err := json.Unmarshal([]byte(body), v); err != nil {
		return false, fmt.Errorf("%w: %v", domain.ErrDecode, err)
	}
	return true, nil
}

// MockManifestReader is a test double for domain.ManifestReader.
type MockManifestReader struct {
	Manifest *domain.ComposerManifest
	Err      error
}

// Read returns the configured manifest.
func (m *MockManifestReader) Read() (*domain.ComposerManifest, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Manifest, nil
}

// MockPatchWriter is a test double for domain.PatchWriter.
// It fails every write whose package is listed in FailPackages.
type MockPatchWriter struct {
	Err          error
	FailPackages map[string]bool
	Written      []domain.PatchSelection
}

// Write records the selection.
func (m *MockPatchWriter) Write(_ context.Context, selection domain.PatchSelection) error {
	if m.Err != nil {
		return m.Err
	}
	for pkg := range selection {
		if m.FailPackages[pkg] {
			return fmt.Errorf("%w: %s", domain.ErrPatchWrite, pkg)
		}
	}
	m.Written = append(m.Written, selection)
	return nil
}

// MockPatchWriterFactory is a test double for domain.PatchWriterFactory.
type MockPatchWriterFactory struct {
	Writer    *MockPatchWriter
	Manifests []*domain.ComposerManifest
}

// ForManifest returns the configured writer.
func (m *MockPatchWriterFactory) ForManifest(manifest *domain.ComposerManifest) domain.PatchWriter {
	m.Manifests = append(m.Manifests, manifest)
	return m.Writer
}

// MockComposer is a test double for domain.Composer.
type MockComposer struct {
	Err     error
	Updates int
}

// UpdateLock counts the call.
func (m *MockComposer) UpdateLock(_ context.Context) error {
	m.Updates++
	return m.Err
}

// MockSettingsWriter is a test double for domain.SettingsWriter.
type MockSettingsWriter struct {
	Err      error
	Paths    []string
	Existing bool
}

// AppendDatabase records the path and reports whether it appended.
func (m *MockSettingsWriter) AppendDatabase(path string, _ domain.DatabaseConfig) (bool, error) {
	m.Paths = append(m.Paths, path)
	if m.Err != nil {
		return false, m.Err
	}
	return !m.Existing, nil
}

// MockPrompter is a test double for domain.Prompter that replays scripted answers.
// An exhausted queue returns domain.ErrAborted.
// Fields are ordered to minimize memory padding.
type MockPrompter struct {
	Answers   []string // Ask answers; "" accepts the default
	Choices   []string // Choice answers; "" accepts the default
	Confirms  []bool
	Questions []string
}

// Ask returns the next scripted answer after applying the question's validator.
func (m *MockPrompter) Ask(q domain.Question) (string, error) {
	m.Questions = append(m.Questions, q.Prompt)
	if len(m.Answers) == 0 {
		return "", domain.ErrAborted
	}
	answer := m.Answers[0]
	m.Answers = m.Answers[1:]
	if answer == "" {
		answer = q.Default
	}
	if q.Validate != nil {
		return q.Validate(answer)
	}
	return answer, nil
}

// Choice returns the next scripted choice, which must be one of choices.
func (m *MockPrompter) Choice(question string, choices []string, defaultIndex int) (string, error) {
	m.Questions = append(m.Questions, question)
	if len(choices) == 0 {
		return "", domain.ErrNoChoices
	}
	if len(m.Choices) == 0 {
		return "", domain.ErrAborted
	}
	answer := m.Choices[0]
	m.Choices = m.Choices[1:]
	if answer == "" && defaultIndex >= 0 && defaultIndex < len(choices) {
		return choices[defaultIndex], nil
	}
	for _, c := range choices {
		if c == answer {
			return c, nil
		}
	}
	return "", fmt.Errorf("mock prompter: %q is not one of %v", answer, choices)
}

// Confirm returns the next scripted confirmation.
func (m *MockPrompter) Confirm(question string, _ bool) (bool, error) {
	m.Questions = append(m.Questions, question)
	if len(m.Confirms) == 0 {
		return false, domain.ErrAborted
	}
	answer := m.Confirms[0]
	m.Confirms = m.Confirms[1:]
	return answer, nil
}

// MockBrowser is a test double for domain.BrowserOpener.
type MockBrowser struct {
	Err    error
	Opened []string
}

// Open records the URL.
func (m *MockBrowser) Open(_ context.Context, url string) error {
	m.Opened = append(m.Opened, url)
	return m.Err
}

// MockVersionControl is a test double for domain.VersionControl.
type MockVersionControl struct {
	Err   error
	Dirty map[string]bool
}

// HasUncommittedChanges reports the configured state for relPath.
func (m *MockVersionControl) HasUncommittedChanges(relPath string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	return m.Dirty[relPath], nil
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config  *domain.Config
	Err     error
	Options []domain.LoadConfigOptions
}

// NewMockConfigLoader creates a new MockConfigLoader returning defaults.
func NewMockConfigLoader() *MockConfigLoader {
	return &MockConfigLoader{}
}

// Load returns the configured config, or defaults.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Config == nil {
		return domain.NewDefaultConfig(), nil
	}
	return m.Config, nil
}

// LoadGlobal returns the same as Load.
func (m *MockConfigLoader) LoadGlobal() (*domain.Config, error) {
	return m.Load()
}

// LoadWithOptions records the options and returns the same as Load.
func (m *MockConfigLoader) LoadWithOptions(opts domain.LoadConfigOptions) (*domain.Config, error) {
	m.Options = append(m.Options, opts)
	return m.Load()
}

// MockConfigManager is a test double for domain.ConfigManager.
// Fields are ordered to minimize memory padding.
type MockConfigManager struct {
	InitGlobalErr    error
	InitRepoErr      error
	GlobalConfigInfo domain.ConfigInfo
	RepoConfigInfo   domain.ConfigInfo
	InitGlobalCalled bool
	InitRepoCalled   bool
}

// NewMockConfigManager creates a new MockConfigManager.
func NewMockConfigManager() *MockConfigManager {
	return &MockConfigManager{}
}

// GetGlobalConfigInfo returns the configured info.
func (m *MockConfigManager) GetGlobalConfigInfo() domain.ConfigInfo { return m.GlobalConfigInfo }

// GetRepoConfigInfo returns the configured info.
func (m *MockConfigManager) GetRepoConfigInfo() domain.ConfigInfo { return m.RepoConfigInfo }

// InitGlobalConfig records the call.
func (m *MockConfigManager) InitGlobalConfig() error {
	m.InitGlobalCalled = true
	return m.InitGlobalErr
}

// InitRepoConfig records the call.
func (m *MockConfigManager) InitRepoConfig() error {
	m.InitRepoCalled = true
	return m.InitRepoErr
}

// MockLogger is a test double for domain.Logger that keeps every entry.
type MockLogger struct {
	Entries []string
}

func (m *MockLogger) add(level, category, msg string) {
	m.Entries = append(m.Entries, fmt.Sprintf("[%s] [%s] %s", level, category, msg))
}

// Debug records a debug entry.
func (m *MockLogger) Debug(category, msg string) { m.add("DEBUG", category, msg) }

// Info records an info entry.
func (m *MockLogger) Info(category, msg string) { m.add("INFO", category, msg) }

// Warn records a warning entry.
func (m *MockLogger) Warn(category, msg string) { m.add("WARN", category, msg) }

// Error records an error entry.
func (m *MockLogger) Error(category, msg string) { m.add("ERROR", category, msg) }
