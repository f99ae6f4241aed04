package project

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/go-git/go-git/v5"

	"github.com/robopackage/drupalctl/internal/domain"
)

// ErrNoRepository is returned by OpenRepository when the project is not under git.
var ErrNoRepository = errors.New("not a git repository")

// Repository reports working tree state for files in the project.
type Repository struct {
	repo *git.Repository
	root string
}

// Ensure Repository implements domain.VersionControl interface.
var _ domain.VersionControl = (*Repository)(nil)

// OpenRepository opens the git repository containing projectRoot.
// Returns ErrNoRepository when there is none.
func OpenRepository(projectRoot string) (*Repository, error) {
	repo, err := git.PlainOpenWithOptions(projectRoot, &git.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, ErrNoRepository
		}
		return nil, fmt.Errorf("open repository: %w", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("open worktree: %w", err)
	}
	root := projectRoot
	if abs, err := filepath.Abs(projectRoot); err == nil {
		root = abs
	}
	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		root = resolved
	}
	// Paths are tracked relative to the worktree root, which may sit above the project.
	rel, err := filepath.Rel(wt.Filesystem.Root(), root)
	if err != nil {
		return nil, fmt.Errorf("resolve project path: %w", err)
	}
	return &Repository{repo: repo, root: rel}, nil
}

// HasUncommittedChanges reports whether relPath (relative to the project root)
// is staged, modified or untracked.
func (r *Repository) HasUncommittedChanges(relPath string) (bool, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return false, fmt.Errorf("open worktree: %w", err)
	}
	status, err := wt.Status()
	if err != nil {
		return false, fmt.Errorf("worktree status: %w", err)
	}
	fs, ok := status[filepath.ToSlash(filepath.Join(r.root, relPath))]
	if !ok {
		return false, nil
	}
	return fs.Staging != git.Unmodified || fs.Worktree != git.Unmodified, nil
}
