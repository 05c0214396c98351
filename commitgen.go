// Package commitgen provides domain types for AI-assisted git commit workflows.
package commitgen

import (
	"context"
	"time"
)

// Generator drafts a Conventional Commits message from parsed hunks.
type Generator interface {
	// Generate returns a structured commit message describing the hunks.
	Generate(ctx context.Context, req GenerateRequest) (*CommitMessage, error)
}

// GenerateRequest carries everything a provider needs to draft a message.
type GenerateRequest struct {
	Hunks   []DiffHunk
	Context string // optional user-supplied context, e.g. a ticket reference
}

// Provider identifies an AI completion backend.
type Provider string

// Supported providers.
const (
	ProviderGemini Provider = "gemini"
	ProviderOpenAI Provider = "openai"
)

// Generators maps provider tags to implementations. The map is built at
// startup and injected into the CLI rather than registered globally.
type Generators map[Provider]Generator

// For returns the generator registered for the given provider.
func (g Generators) For(p Provider) (Generator, bool) {
	gen, ok := g[p]
	return gen, ok
}

// ForgeKind identifies a hosted git forge.
type ForgeKind string

// Supported forges.
const (
	ForgeGitHub ForgeKind = "github"
	ForgeGitLab ForgeKind = "gitlab"
)

// Repository describes a remote repository created on a forge.
type Repository struct {
	Name     string
	CloneURL string
	HTMLURL  string
	Private  bool
}

// CreateRepoRequest is the input for remote repository creation.
type CreateRepoRequest struct {
	Name        string
	Description string
	Private     bool
}

// Forge creates remote repositories on a hosted git forge.
type Forge interface {
	CreateRepository(ctx context.Context, req CreateRepoRequest) (*Repository, error)
}

// Forges maps forge tags to implementations, injected like Generators.
type Forges map[ForgeKind]Forge

// For returns the forge registered for the given kind.
func (f Forges) For(k ForgeKind) (Forge, bool) {
	forge, ok := f[k]
	return forge, ok
}

// Git provides access to version-control operations for a working directory.
type Git interface {
	// IsRepo reports whether dir is inside a git work tree.
	IsRepo(ctx context.Context, dir string) bool
	// CurrentBranch returns the checked-out branch name.
	CurrentBranch(ctx context.Context, dir string) (string, error)
	// Diff returns the unstaged worktree diff.
	Diff(ctx context.Context, dir string) (string, error)
	// StagedDiff returns the index diff.
	StagedDiff(ctx context.Context, dir string) (string, error)
	// HasChanges reports whether the worktree has any uncommitted changes.
	HasChanges(ctx context.Context, dir string) (bool, error)
	// StageAll stages every change in the worktree.
	StageAll(ctx context.Context, dir string) error
	// StageIntent registers untracked files with intent-to-add entries so
	// they appear in the worktree diff without staging their content.
	StageIntent(ctx context.Context, dir string) error
	// StageFile stages a single file.
	StageFile(ctx context.Context, dir, path string) error
	// ApplyPatch applies patch text to the index only.
	ApplyPatch(ctx context.Context, dir, patch string) error
	// Commit records the staged changes with the given message.
	Commit(ctx context.Context, dir, message string) error
	// Push pushes branch to remote, setting the upstream when missing.
	Push(ctx context.Context, dir, remote, branch string) error
	// AddRemote registers a new remote.
	AddRemote(ctx context.Context, dir, name, url string) error
	// RemoteURL returns the URL of a configured remote.
	RemoteURL(ctx context.Context, dir, name string) (string, error)
}

// PatchValidator checks that serialized patch text will be accepted by a
// patch-application tool before it is handed to one.
type PatchValidator interface {
	Validate(patch string) error
}

// Picker selects a subset of hunks, typically interactively.
type Picker interface {
	Pick(ctx context.Context, hunks []DiffHunk) ([]DiffHunk, error)
}

// Clipboard copies text to the system clipboard.
type Clipboard interface {
	Copy(content string) error
}

// HistoryEntry records one generated commit message.
type HistoryEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Repo      string    `json:"repo"`
	Branch    string    `json:"branch"`
	Provider  string    `json:"provider"`
	Message   string    `json:"message"`
}

// HistoryStore persists generated commit messages.
type HistoryStore interface {
	Append(path string, entry HistoryEntry) error
	Load(path string) ([]HistoryEntry, error)
}
