package cli

import (
	"bytes"
	"net/url"
	"testing"

	"github.com/spf13/cobra"

	"github.com/robopackage/drupalctl/internal/app"
	"github.com/robopackage/drupalctl/internal/domain"
	"github.com/robopackage/drupalctl/internal/testutil"
)

// testDeps holds the mocks behind a test container.
type testDeps struct {
	api      *testutil.MockIssueAPI
	exec     *testutil.MockCommandExecutor
	writer   *testutil.MockPatchWriter
	composer *testutil.MockComposer
	prompter *testutil.MockPrompter
	browser  *testutil.MockBrowser
	settings *testutil.MockSettingsWriter
	loader   *testutil.MockConfigLoader
	vcs      *testutil.MockVersionControl
}

func newTestContainer(t *testing.T) (*app.Container, *testDeps) {
	t.Helper()
	d := &testDeps{
		api:      testutil.NewMockIssueAPI(),
		exec:     testutil.NewMockCommandExecutor(),
		writer:   &testutil.MockPatchWriter{},
		composer: &testutil.MockComposer{},
		prompter: &testutil.MockPrompter{},
		browser:  &testutil.MockBrowser{},
		settings: &testutil.MockSettingsWriter{},
		loader:   testutil.NewMockConfigLoader(),
		vcs:      &testutil.MockVersionControl{Dirty: map[string]bool{}},
	}
	manifest := &domain.ComposerManifest{Require: map[string]string{
		"drupal/core-recommended": "^10.3",
		"drupal/token":            "^1.15",
	}}
	c := app.NewWithDeps(app.Config{ProjectRoot: "/project"}, app.Deps{
		IssueAPI:      d.api,
		Executor:      d.exec,
		Manifests:     &testutil.MockManifestReader{Manifest: manifest},
		PatchWriters:  &testutil.MockPatchWriterFactory{Writer: d.writer},
		Composer:      d.composer,
		Settings:      d.settings,
		Prompter:      d.prompter,
		Browser:       d.browser,
		VCS:           d.vcs,
		ConfigLoader:  d.loader,
		ConfigManager: testutil.NewMockConfigManager(),
		Logger:        &testutil.MockLogger{},
	})
	return c, d
}

// stubIssue registers issue id with a single displayed patch attachment.
func stubIssue(api *testutil.MockIssueAPI, id, title, patchURL string) {
	api.Resources[testutil.ResourceKey("node", url.Values{"nid": {id}, "type": {"project_issue"}})] =
		`{"list":[{"title":"` + title + `","field_issue_files":[{"display":"1","file":{"uri":"https://www.drupal.org/api-d7/file/` + id + `"}}]}]}`
	api.URLs["https://www.drupal.org/api-d7/file/"+id+".json"] = `{"name":"fix.patch","url":"` + patchURL + `"}`
}

// execute runs the root command with args and returns stdout and stderr.
func execute(c *app.Container, args ...string) (string, string, error) {
	return run(NewRootCommand(c, "test"), args...)
}

func run(cmd *cobra.Command, args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}
