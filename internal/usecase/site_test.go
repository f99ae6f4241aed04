package usecase_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robopackage/drupalctl/internal/domain"
	"github.com/robopackage/drupalctl/internal/testutil"
	"github.com/robopackage/drupalctl/internal/usecase"
)

func ddevConfig() *domain.Config {
	cfg := domain.NewDefaultConfig()
	cfg.Environment.Exec = []string{"ddev", "exec"}
	return cfg
}

func TestRunDrush_Execute(t *testing.T) {
	exec := testutil.NewMockCommandExecutor()
	drush := usecase.NewDrush(&testutil.MockConfigLoader{Config: ddevConfig()}, "/project")

	out, err := usecase.NewRunDrush(exec, drush).Execute(context.Background(), usecase.RunDrushInput{Args: []string{"cr"}})
	require.NoError(t, err)
	assert.Equal(t, "ddev exec drush cr", out.Command)
	assert.Equal(t, []bool{true}, exec.Interactive)
	assert.Equal(t, "/project", exec.Commands[0].Dir)

	exec.InteractiveErr = assert.AnError
	_, err = usecase.NewRunDrush(exec, drush).Execute(context.Background(), usecase.RunDrushInput{Args: []string{"cr"}})
	assert.ErrorIs(t, err, domain.ErrCommandFailed)
}

func TestRunDrush_ConfigError(t *testing.T) {
	drush := usecase.NewDrush(&testutil.MockConfigLoader{Err: assert.AnError}, "")
	_, err := usecase.NewRunDrush(testutil.NewMockCommandExecutor(), drush).Execute(context.Background(), usecase.RunDrushInput{})
	assert.ErrorIs(t, err, assert.AnError)
}

func TestCreateAccount_Execute(t *testing.T) {
	t.Run("creates missing user", func(t *testing.T) {
		exec := testutil.NewMockCommandExecutor()
		exec.Handler = func(cmd *domain.ExecCommand) ([]byte, error) {
			if cmd.Args[0] == "user:information" {
				return nil, assert.AnError
			}
			return nil, nil
		}

		out, err := usecase.NewCreateAccount(exec, usecase.NewDrush(nil, "/p"), nil).Execute(context.Background(), usecase.CreateAccountInput{
			Username: "editor",
		})
		require.NoError(t, err)
		assert.True(t, out.Created)
		assert.Equal(t, []string{
			"drush user:information editor --mail=admin@example.com --format=json",
			"drush user:create editor --mail=admin@example.com --password=admin",
			"drush user:role:add administrator editor --mail=admin@example.com",
		}, exec.CommandLines())
	})

	t.Run("existing user only gets the role", func(t *testing.T) {
		exec := testutil.NewMockCommandExecutor()
		exec.Handler = func(cmd *domain.ExecCommand) ([]byte, error) {
			if cmd.Args[0] == "user:information" {
				return []byte(`{"2":{"uid":"2","name":"editor"}}`), nil
			}
			return nil, nil
		}

		out, err := usecase.NewCreateAccount(exec, usecase.NewDrush(nil, ""), nil).Execute(context.Background(), usecase.CreateAccountInput{
			Username: "editor",
			Role:     "content_editor",
			Email:    "e@example.com",
		})
		require.NoError(t, err)
		assert.False(t, out.Created)
		assert.Equal(t, []string{
			"drush user:information editor --mail=e@example.com --format=json",
			"drush user:role:add content_editor editor --mail=e@example.com",
		}, exec.CommandLines())
	})

	t.Run("empty user information counts as missing", func(t *testing.T) {
		exec := testutil.NewMockCommandExecutor()
		exec.Output = []byte(`[]`)

		out, err := usecase.NewCreateAccount(exec, usecase.NewDrush(nil, ""), nil).Execute(context.Background(), usecase.CreateAccountInput{Username: "u"})
		require.NoError(t, err)
		assert.True(t, out.Created)
		assert.Len(t, exec.Commands, 3)
	})

	t.Run("failing step", func(t *testing.T) {
		exec := testutil.NewMockCommandExecutor()
		exec.ExecuteErr = assert.AnError

		_, err := usecase.NewCreateAccount(exec, usecase.NewDrush(nil, ""), nil).Execute(context.Background(), usecase.CreateAccountInput{Username: "u"})
		assert.ErrorIs(t, err, domain.ErrCommandFailed)
		assert.Len(t, exec.Commands, 2)
	})

	t.Run("username required", func(t *testing.T) {
		_, err := usecase.NewCreateAccount(testutil.NewMockCommandExecutor(), usecase.NewDrush(nil, ""), nil).Execute(context.Background(), usecase.CreateAccountInput{})
		assert.ErrorIs(t, err, domain.ErrEmptyValue)
	})
}

func TestLogin_Execute(t *testing.T) {
	t.Run("opens the link", func(t *testing.T) {
		exec := testutil.NewMockCommandExecutor()
		exec.Output = []byte("http://site.ddev.site/user/reset/1/abc\n")
		browser := &testutil.MockBrowser{}

		out, err := usecase.NewLogin(exec, browser, usecase.NewDrush(nil, "")).Execute(context.Background(), usecase.LoginInput{})
		require.NoError(t, err)
		assert.Equal(t, "http://site.ddev.site/user/reset/1/abc", out.URL)
		assert.True(t, out.Opened)
		assert.Equal(t, []string{"drush user:login --uid=1"}, exec.CommandLines())
		assert.Equal(t, []string{out.URL}, browser.Opened)
	})

	t.Run("lookup by mail without browser", func(t *testing.T) {
		exec := testutil.NewMockCommandExecutor()
		exec.Output = []byte("http://x/reset")
		browser := &testutil.MockBrowser{}

		out, err := usecase.NewLogin(exec, browser, usecase.NewDrush(nil, "")).Execute(context.Background(), usecase.LoginInput{
			LookupType:  "mail",
			LookupValue: "admin@example.com",
			NoBrowser:   true,
		})
		require.NoError(t, err)
		assert.False(t, out.Opened)
		assert.Equal(t, []string{"drush user:login --mail=admin@example.com"}, exec.CommandLines())
		assert.Empty(t, browser.Opened)
	})

	t.Run("invalid lookup type", func(t *testing.T) {
		exec := testutil.NewMockCommandExecutor()
		_, err := usecase.NewLogin(exec, nil, usecase.NewDrush(nil, "")).Execute(context.Background(), usecase.LoginInput{LookupType: "uid"})
		assert.ErrorIs(t, err, domain.ErrInvalidLookupType)
		assert.Contains(t, err.Error(), "the uid user lookup type is invalid")
		assert.Empty(t, exec.Commands)
	})

	t.Run("drush failure", func(t *testing.T) {
		exec := testutil.NewMockCommandExecutor()
		exec.ExecuteErr = assert.AnError
		_, err := usecase.NewLogin(exec, &testutil.MockBrowser{}, usecase.NewDrush(nil, "")).Execute(context.Background(), usecase.LoginInput{})
		assert.ErrorIs(t, err, domain.ErrCommandFailed)
	})
}

func dbConfig() *domain.Config {
	cfg := domain.NewDefaultConfig()
	cfg.Database = &domain.DatabaseConfig{Driver: "mysql", Host: "db", Port: 3306, Database: "db", Username: "db", Password: "db"}
	return cfg
}

func TestConfigureDatabase_Execute(t *testing.T) {
	t.Run("prompts for the site directory", func(t *testing.T) {
		settings := &testutil.MockSettingsWriter{}
		prompter := &testutil.MockPrompter{Answers: []string{""}}

		out, err := usecase.NewConfigureDatabase(settings, prompter, &testutil.MockConfigLoader{Config: dbConfig()}, "/project").
			Execute(context.Background(), usecase.ConfigureDatabaseInput{})
		require.NoError(t, err)
		want := filepath.Join("/project", "web/sites/default", "settings.local.php")
		assert.Equal(t, want, out.Path)
		assert.True(t, out.Configured)
		assert.True(t, out.Written)
		assert.Equal(t, []string{want}, settings.Paths)
		assert.Equal(t, []string{"Input the Drupal site directory path."}, prompter.Questions)
	})

	t.Run("no database section", func(t *testing.T) {
		settings := &testutil.MockSettingsWriter{}
		out, err := usecase.NewConfigureDatabase(settings, &testutil.MockPrompter{}, nil, "/project").
			Execute(context.Background(), usecase.ConfigureDatabaseInput{})
		require.NoError(t, err)
		assert.False(t, out.Configured)
		assert.Empty(t, settings.Paths)
	})

	t.Run("missing settings file", func(t *testing.T) {
		settings := &testutil.MockSettingsWriter{Err: domain.ErrSettingsNotFound}
		_, err := usecase.NewConfigureDatabase(settings, &testutil.MockPrompter{}, &testutil.MockConfigLoader{Config: dbConfig()}, "/project").
			Execute(context.Background(), usecase.ConfigureDatabaseInput{SiteDir: "/abs/site"})
		assert.ErrorIs(t, err, domain.ErrSettingsNotFound)
		assert.Equal(t, []string{filepath.Join("/abs/site", "settings.local.php")}, settings.Paths)
	})
}

func TestInstallSite_Execute(t *testing.T) {
	t.Run("asks for every value", func(t *testing.T) {
		exec := testutil.NewMockCommandExecutor()
		prompter := &testutil.MockPrompter{
			Choices: []string{"minimal"},
			Answers: []string{"Intranet", "", "", "s3cret", ""},
		}
		loader := &testutil.MockConfigLoader{}
		uc := usecase.NewInstallSite(exec, prompter, usecase.NewDrush(loader, "/project"),
			usecase.NewConfigureDatabase(&testutil.MockSettingsWriter{}, prompter, loader, "/project"))

		out, err := uc.Execute(context.Background(), usecase.InstallSiteInput{})
		require.NoError(t, err)
		assert.Equal(t, "drush site:install minimal --site-name=Intranet --site-mail=site@example.com --account-name=admin --account-pass=s3cret --account-mail=admin@example.com", out.Command)
		assert.False(t, out.Database.Configured)
		assert.Equal(t, []bool{true}, exec.Interactive)
		assert.Equal(t, "Select the Drupal profile?", prompter.Questions[0])
	})

	t.Run("answers skip prompts and database is written first", func(t *testing.T) {
		exec := testutil.NewMockCommandExecutor()
		prompter := &testutil.MockPrompter{}
		settings := &testutil.MockSettingsWriter{}
		loader := &testutil.MockConfigLoader{Config: dbConfig()}
		uc := usecase.NewInstallSite(exec, prompter, usecase.NewDrush(loader, "/project"),
			usecase.NewConfigureDatabase(settings, prompter, loader, "/project"))

		answers := domain.InstallOptions{
			Profile: "standard", SiteName: "S", SiteMail: "s@x", AccountName: "a", AccountPass: "p", AccountMail: "a@x",
			SiteDir: "web/sites/default",
		}
		out, err := uc.Execute(context.Background(), usecase.InstallSiteInput{Answers: answers})
		require.NoError(t, err)
		assert.Empty(t, prompter.Questions)
		assert.True(t, out.Database.Written)
		assert.Len(t, settings.Paths, 1)
		assert.Equal(t, answers, out.Options)
	})

	t.Run("skip database", func(t *testing.T) {
		settings := &testutil.MockSettingsWriter{}
		loader := &testutil.MockConfigLoader{Config: dbConfig()}
		prompter := &testutil.MockPrompter{Choices: []string{""}, Answers: []string{"", "", "", "", ""}}
		uc := usecase.NewInstallSite(testutil.NewMockCommandExecutor(), prompter, usecase.NewDrush(loader, ""),
			usecase.NewConfigureDatabase(settings, prompter, loader, ""))

		out, err := uc.Execute(context.Background(), usecase.InstallSiteInput{SkipDatabase: true})
		require.NoError(t, err)
		assert.Nil(t, out.Database)
		assert.Empty(t, settings.Paths)
		assert.Equal(t, "standard", out.Options.Profile)
	})

	t.Run("install failure", func(t *testing.T) {
		exec := testutil.NewMockCommandExecutor()
		exec.InteractiveErr = assert.AnError
		answers := domain.InstallOptions{Profile: "standard", SiteName: "S", SiteMail: "s@x", AccountName: "a", AccountPass: "p", AccountMail: "a@x"}
		uc := usecase.NewInstallSite(exec, &testutil.MockPrompter{}, usecase.NewDrush(nil, ""), nil)

		_, err := uc.Execute(context.Background(), usecase.InstallSiteInput{Answers: answers})
		assert.ErrorIs(t, err, domain.ErrCommandFailed)
	})
}
