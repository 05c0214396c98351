package mock

import (
	"context"

	"github.com/fwojciec/commitgen"
)

// Compile-time interface verification.
var _ commitgen.Git = (*Git)(nil)

// Git is a mock implementation of commitgen.Git.
type Git struct {
	IsRepoFn        func(ctx context.Context, dir string) bool
	CurrentBranchFn func(ctx context.Context, dir string) (string, error)
	DiffFn          func(ctx context.Context, dir string) (string, error)
	StagedDiffFn    func(ctx context.Context, dir string) (string, error)
	HasChangesFn    func(ctx context.Context, dir string) (bool, error)
	StageAllFn      func(ctx context.Context, dir string) error
	StageIntentFn   func(ctx context.Context, dir string) error
	StageFileFn     func(ctx context.Context, dir, path string) error
	ApplyPatchFn    func(ctx context.Context, dir, patch string) error
	CommitFn        func(ctx context.Context, dir, message string) error
	PushFn          func(ctx context.Context, dir, remote, branch string) error
	AddRemoteFn     func(ctx context.Context, dir, name, url string) error
	RemoteURLFn     func(ctx context.Context, dir, name string) (string, error)
}

func (g *Git) IsRepo(ctx context.Context, dir string) bool {
	return g.IsRepoFn(ctx, dir)
}

func (g *Git) CurrentBranch(ctx context.Context, dir string) (string, error) {
	return g.CurrentBranchFn(ctx, dir)
}

func (g *Git) Diff(ctx context.Context, dir string) (string, error) {
	return g.DiffFn(ctx, dir)
}

func (g *Git) StagedDiff(ctx context.Context, dir string) (string, error) {
	return g.StagedDiffFn(ctx, dir)
}

func (g *Git) HasChanges(ctx context.Context, dir string) (bool, error) {
	return g.HasChangesFn(ctx, dir)
}

func (g *Git) StageAll(ctx context.Context, dir string) error {
	return g.StageAllFn(ctx, dir)
}

func (g *Git) StageIntent(ctx context.Context, dir string) error {
	return g.StageIntentFn(ctx, dir)
}

func (g *Git) StageFile(ctx context.Context, dir, path string) error {
	return g.StageFileFn(ctx, dir, path)
}

func (g *Git) ApplyPatch(ctx context.Context, dir, patch string) error {
	return g.ApplyPatchFn(ctx, dir, patch)
}

func (g *Git) Commit(ctx context.Context, dir, message string) error {
	return g.CommitFn(ctx, dir, message)
}

func (g *Git) Push(ctx context.Context, dir, remote, branch string) error {
	return g.PushFn(ctx, dir, remote, branch)
}

func (g *Git) AddRemote(ctx context.Context, dir, name, url string) error {
	return g.AddRemoteFn(ctx, dir, name, url)
}

func (g *Git) RemoteURL(ctx context.Context, dir, name string) (string, error) {
	return g.RemoteURLFn(ctx, dir, name)
}
