// Package project locates the Drupal project and inspects its git working tree.
package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"

	"github.com/robopackage/drupalctl/internal/domain"
)

// FindRoot returns the Drupal project root for dir.
// The git worktree root wins when it holds composer.json; otherwise the
// nearest ancestor of dir with a composer.json is used.
func FindRoot(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", dir, err)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	}

	if root, ok := gitRoot(abs); ok && hasManifest(root) {
		return root, nil
	}

	for current := abs; ; {
		if hasManifest(current) {
			return current, nil
		}
		parent := filepath.Dir(current)
		if parent == current {
			return "", domain.ErrProjectNotFound
		}
		current = parent
	}
}

// gitRoot returns the worktree root of the repository containing dir.
func gitRoot(dir string) (string, bool) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		return "", false
	}
	wt, err := repo.Worktree()
	if err != nil {
		return "", false
	}
	return wt.Filesystem.Root(), true
}

func hasManifest(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, domain.ManifestFileName))
	return err == nil && !info.IsDir()
}
