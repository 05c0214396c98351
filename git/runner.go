// Package git provides access to git operations via shell commands.
package git

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/fwojciec/commitgen"
)

// Compile-time interface verification.
var _ commitgen.Git = (*Runner)(nil)

// Runner executes git commands via shell.
type Runner struct{}

// NewRunner creates a new git runner.
func NewRunner() *Runner {
	return &Runner{}
}

func (r *Runner) run(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", append([]string{"-C", dir}, args...)...)
	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return "", fmt.Errorf("git %s failed: %s", args[0], strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", fmt.Errorf("git %s failed: %w", args[0], err)
	}
	return string(output), nil
}

// IsRepo reports whether dir is inside a git work tree.
func (r *Runner) IsRepo(ctx context.Context, dir string) bool {
	out, err := r.run(ctx, dir, "rev-parse", "--is-inside-work-tree")
	return err == nil && strings.TrimSpace(out) == "true"
}

// CurrentBranch returns the checked-out branch name.
func (r *Runner) CurrentBranch(ctx context.Context, dir string) (string, error) {
	out, err := r.run(ctx, dir, "branch", "--show-current")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// Diff returns the unstaged worktree diff.
func (r *Runner) Diff(ctx context.Context, dir string) (string, error) {
	return r.run(ctx, dir, "diff")
}

// StagedDiff returns the index diff.
func (r *Runner) StagedDiff(ctx context.Context, dir string) (string, error) {
	return r.run(ctx, dir, "diff", "--cached")
}

// HasChanges reports whether the worktree has any uncommitted changes,
// including untracked files.
func (r *Runner) HasChanges(ctx context.Context, dir string) (bool, error) {
	out, err := r.run(ctx, dir, "status", "--porcelain")
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(out) != "", nil
}

// StageAll stages every change in the worktree.
func (r *Runner) StageAll(ctx context.Context, dir string) error {
	_, err := r.run(ctx, dir, "add", "-A")
	return err
}

// StageIntent registers untracked files with intent-to-add entries. The
// files then show up in the worktree diff as creations while the index
// stays free of their content, which hunk-level staging depends on.
func (r *Runner) StageIntent(ctx context.Context, dir string) error {
	_, err := r.run(ctx, dir, "add", "--intent-to-add", "--all")
	return err
}

// StageFile stages a single file.
func (r *Runner) StageFile(ctx context.Context, dir, path string) error {
	_, err := r.run(ctx, dir, "add", "--", path)
	return err
}

// ApplyPatch applies patch text to the index only, leaving the worktree
// untouched. Used for staging individual hunks.
func (r *Runner) ApplyPatch(ctx context.Context, dir, patch string) error {
	cmd := exec.CommandContext(ctx, "git", "-C", dir, "apply", "--cached", "-")
	cmd.Stdin = strings.NewReader(patch)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git apply failed: %s", strings.TrimSpace(string(output)))
	}
	return nil
}

// Commit records the staged changes with the given message.
func (r *Runner) Commit(ctx context.Context, dir, message string) error {
	_, err := r.run(ctx, dir, "commit", "-m", message)
	return err
}

// Push pushes branch to remote, setting the upstream when missing.
func (r *Runner) Push(ctx context.Context, dir, remote, branch string) error {
	_, err := r.run(ctx, dir, "push", "-u", remote, branch)
	return err
}

// AddRemote registers a new remote.
func (r *Runner) AddRemote(ctx context.Context, dir, name, url string) error {
	_, err := r.run(ctx, dir, "remote", "add", name, url)
	return err
}

// RemoteURL returns the URL of a configured remote.
func (r *Runner) RemoteURL(ctx context.Context, dir, name string) (string, error) {
	out, err := r.run(ctx, dir, "remote", "get-url", name)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}
