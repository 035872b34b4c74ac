// Package git provides git operations.
// Read-only queries go through go-git; branch mutations shell out to the git
// CLI so hooks, credentials and remotes behave as they do for the user.
package git

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/runoshun/next-issue/internal/domain"
)

// Client provides git operations.
type Client struct {
	repo     *gogit.Repository
	repoRoot string // Toplevel of the current worktree
}

// Ensure Client implements domain.Git interface.
var _ domain.Git = (*Client)(nil)

// NewClient creates a new git client by detecting the repository from the given directory.
// It returns domain.ErrNotGitRepository when dir is not inside a repository.
func NewClient(dir string) (*Client, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return nil, domain.ErrNotGitRepository
		}
		return nil, fmt.Errorf("open git repository: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("open worktree: %w", err)
	}

	return &Client{
		repo:     repo,
		repoRoot: wt.Filesystem.Root(),
	}, nil
}

// RepoRoot returns the repository root directory.
func (c *Client) RepoRoot() string {
	return c.repoRoot
}

// CurrentBranch returns the name of the current branch.
// It returns "" for a detached HEAD.
func (c *Client) CurrentBranch() (string, error) {
	head, err := c.repo.Storer.Reference(plumbing.HEAD)
	if err != nil {
		return "", fmt.Errorf("failed to get current branch: %w", err)
	}
	// Symbolic HEAD also covers unborn branches in fresh repositories
	if head.Type() == plumbing.SymbolicReference && head.Target().IsBranch() {
		return head.Target().Short(), nil
	}
	return "", nil
}

// BranchExists checks if a local branch exists.
func (c *Client) BranchExists(branch string) (bool, error) {
	_, err := c.repo.Reference(plumbing.NewBranchReferenceName(branch), false)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return false, nil
	}
	return false, fmt.Errorf("failed to check branch existence: %w", err)
}

// Checkout switches to an existing branch.
func (c *Client) Checkout(ctx context.Context, branch string) error {
	if err := c.run(ctx, "checkout", branch); err != nil {
		return fmt.Errorf("failed to checkout %s: %w", branch, err)
	}
	return nil
}

// Pull pulls branch from remote into the current branch.
func (c *Client) Pull(ctx context.Context, remote, branch string) error {
	if err := c.run(ctx, "pull", remote, branch); err != nil {
		return fmt.Errorf("failed to pull %s %s: %w", remote, branch, err)
	}
	return nil
}

// CreateBranch creates a new branch from HEAD and switches to it.
func (c *Client) CreateBranch(ctx context.Context, branch string) error {
	if err := c.run(ctx, "checkout", "-b", branch); err != nil {
		return fmt.Errorf("failed to create branch %s: %w", branch, err)
	}
	return nil
}

// run executes a git command in the repository root.
// The combined output is attached to the error on failure.
func (c *Client) run(ctx context.Context, args ...string) error {
	//nolint:gosec // branch names are used as arguments, not shell commands
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = c.repoRoot
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}
