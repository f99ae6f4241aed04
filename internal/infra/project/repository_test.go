package project

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenRepository_NoRepository(t *testing.T) {
	_, err := OpenRepository(tempDir(t))
	assert.ErrorIs(t, err, ErrNoRepository)
}

func TestRepository_HasUncommittedChanges(t *testing.T) {
	dir := tempDir(t)
	writeFile(t, filepath.Join(dir, "composer.json"), "{}")
	initRepo(t, dir, "composer.json")

	repo, err := OpenRepository(dir)
	require.NoError(t, err)

	dirty, err := repo.HasUncommittedChanges("composer.json")
	require.NoError(t, err)
	assert.False(t, dirty)

	writeFile(t, filepath.Join(dir, "composer.json"), `{"require":{}}`)
	dirty, err = repo.HasUncommittedChanges("composer.json")
	require.NoError(t, err)
	assert.True(t, dirty)

	writeFile(t, filepath.Join(dir, "patches.json"), "{}")
	dirty, err = repo.HasUncommittedChanges("patches.json")
	require.NoError(t, err)
	assert.True(t, dirty)
}

func TestRepository_ProjectBelowWorktreeRoot(t *testing.T) {
	dir := tempDir(t)
	project := filepath.Join(dir, "site")
	writeFile(t, filepath.Join(project, "composer.json"), "{}")
	initRepo(t, dir, "site/composer.json")

	repo, err := OpenRepository(project)
	require.NoError(t, err)

	writeFile(t, filepath.Join(project, "composer.json"), `{"name":"x"}`)
	dirty, err := repo.HasUncommittedChanges("composer.json")
	require.NoError(t, err)
	assert.True(t, dirty)
}
