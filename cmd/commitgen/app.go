package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/fwojciec/commitgen"
)

// ErrNoChanges is returned when the worktree has nothing to commit.
var ErrNoChanges = errors.New("no changes to commit")

// ErrNothingSelected is returned when the picker confirms an empty selection.
var ErrNothingSelected = errors.New("no hunks selected")

// App encapsulates the CLI logic for testing. Every collaborator is an
// interface so tests can inject mocks.
type App struct {
	Dir         string
	Provider    commitgen.Provider
	Forge       commitgen.ForgeKind
	HistoryPath string

	Git        commitgen.Git
	Generators commitgen.Generators
	Forges     commitgen.Forges
	Picker     commitgen.Picker
	Validator  commitgen.PatchValidator
	Clipboard  commitgen.Clipboard
	History    commitgen.HistoryStore

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// CommitOptions control the commit flow.
type CommitOptions struct {
	Interactive bool   // pick hunks instead of staging everything
	Yes         bool   // skip the confirmation prompt
	Push        bool   // push after committing
	Copy        bool   // copy the message to the clipboard
	Context     string // extra context passed to the generator
}

// repoState is the git metadata gathered before generating a message.
type repoState struct {
	branch     string
	diff       string
	hasChanges bool
}

// Commit runs the generate-and-commit flow.
func (a *App) Commit(ctx context.Context, opts CommitOptions) error {
	if !a.Git.IsRepo(ctx, a.Dir) {
		return fmt.Errorf("%s is not a git repository", a.Dir)
	}

	state, err := a.queryRepo(ctx)
	if err != nil {
		return err
	}
	if !state.hasChanges {
		return ErrNoChanges
	}

	// An empty worktree diff can still mean work to commit: changes staged
	// earlier show up only in the index diff.
	diff := state.diff
	if diff == "" {
		if diff, err = a.Git.StagedDiff(ctx, a.Dir); err != nil {
			return err
		}
	}

	// Untracked files are invisible to both diffs. Register them with
	// intent-to-add so the worktree diff covers them while the index stays
	// empty; hunk patches only apply cleanly against an empty index.
	if diff == "" {
		if err := a.Git.StageIntent(ctx, a.Dir); err != nil {
			return err
		}
		if diff, err = a.Git.Diff(ctx, a.Dir); err != nil {
			return err
		}
	}

	hunks := commitgen.ParseHunks(diff)
	if len(hunks) == 0 {
		return fmt.Errorf("no parseable hunks in diff")
	}

	if opts.Interactive {
		if hunks, err = a.Picker.Pick(ctx, hunks); err != nil {
			return err
		}
		if len(hunks) == 0 {
			return ErrNothingSelected
		}
	}

	generator, ok := a.Generators.For(a.Provider)
	if !ok {
		return fmt.Errorf("no generator configured for provider %q", a.Provider)
	}
	msg, err := generator.Generate(ctx, commitgen.GenerateRequest{
		Hunks:   hunks,
		Context: opts.Context,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.Stdout, "%s\n\n", msg.String())

	if opts.Copy {
		if err := a.Clipboard.Copy(msg.String()); err != nil {
			fmt.Fprintf(a.Stderr, "warning: clipboard copy failed: %v\n", err)
		}
	}

	if !opts.Yes {
		ok, err := a.confirm("Commit with this message? [y/N] ")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(a.Stdout, "Aborted.")
			return nil
		}
	}

	if err := a.stage(ctx, hunks, opts.Interactive); err != nil {
		return err
	}
	if err := a.Git.Commit(ctx, a.Dir, msg.String()); err != nil {
		return err
	}
	a.recordHistory(state.branch, msg)

	if opts.Push {
		if err := a.Git.Push(ctx, a.Dir, "origin", state.branch); err != nil {
			return err
		}
		fmt.Fprintf(a.Stdout, "Pushed to origin/%s\n", state.branch)
	}

	return nil
}

// queryRepo gathers branch, diff and status concurrently.
func (a *App) queryRepo(ctx context.Context) (*repoState, error) {
	var state repoState

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		state.branch, err = a.Git.CurrentBranch(ctx, a.Dir)
		return err
	})
	g.Go(func() (err error) {
		state.diff, err = a.Git.Diff(ctx, a.Dir)
		return err
	})
	g.Go(func() (err error) {
		state.hasChanges, err = a.Git.HasChanges(ctx, a.Dir)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &state, nil
}

// stage prepares the index. Interactive mode stages only the picked hunks
// by serializing each one to a patch; otherwise everything is staged.
func (a *App) stage(ctx context.Context, hunks []commitgen.DiffHunk, interactive bool) error {
	if !interactive {
		return a.Git.StageAll(ctx, a.Dir)
	}
	for _, h := range hunks {
		if err := a.stageHunk(ctx, h); err != nil {
			// The patch route failed; stage the whole file so the picked
			// change still lands in the commit.
			fmt.Fprintf(a.Stderr, "warning: staging hunk for %s failed: %v; staging the whole file\n", h.FilePath, err)
			if err := a.Git.StageFile(ctx, a.Dir, h.FilePath); err != nil {
				return fmt.Errorf("hunk %s: %w", h.FilePath, err)
			}
		}
	}
	return nil
}

func (a *App) stageHunk(ctx context.Context, h commitgen.DiffHunk) error {
	patch, err := h.ApplicablePatch()
	if err != nil {
		return err
	}
	if err := a.Validator.Validate(patch); err != nil {
		return err
	}
	return a.Git.ApplyPatch(ctx, a.Dir, patch)
}

// recordHistory appends to the history file. Failures are reported but never
// block the commit.
func (a *App) recordHistory(branch string, msg *commitgen.CommitMessage) {
	if a.History == nil || a.HistoryPath == "" {
		return
	}
	entry := commitgen.HistoryEntry{
		Timestamp: time.Now().UTC(),
		Repo:      filepath.Base(a.Dir),
		Branch:    branch,
		Provider:  string(a.Provider),
		Message:   msg.String(),
	}
	if err := a.History.Append(a.HistoryPath, entry); err != nil {
		fmt.Fprintf(a.Stderr, "warning: history append failed: %v\n", err)
	}
}

func (a *App) confirm(prompt string) (bool, error) {
	fmt.Fprint(a.Stdout, prompt)
	reader := bufio.NewReader(a.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

// Push pushes the current branch to origin.
func (a *App) Push(ctx context.Context) error {
	if !a.Git.IsRepo(ctx, a.Dir) {
		return fmt.Errorf("%s is not a git repository", a.Dir)
	}
	branch, err := a.Git.CurrentBranch(ctx, a.Dir)
	if err != nil {
		return err
	}
	if err := a.Git.Push(ctx, a.Dir, "origin", branch); err != nil {
		return err
	}
	fmt.Fprintf(a.Stdout, "Pushed to origin/%s\n", branch)
	return nil
}

// RepoOptions control remote repository creation.
type RepoOptions struct {
	Name        string
	Description string
	Private     bool
}

// CreateRepo creates a remote repository on the configured forge and
// registers it as the origin remote.
func (a *App) CreateRepo(ctx context.Context, opts RepoOptions) error {
	forge, ok := a.Forges.For(a.Forge)
	if !ok {
		return fmt.Errorf("no forge configured for %q", a.Forge)
	}

	inRepo := a.Git.IsRepo(ctx, a.Dir)
	if inRepo {
		if url, err := a.Git.RemoteURL(ctx, a.Dir, "origin"); err == nil {
			return fmt.Errorf("origin already points at %s", url)
		}
	}

	repo, err := forge.CreateRepository(ctx, commitgen.CreateRepoRequest{
		Name:        opts.Name,
		Description: opts.Description,
		Private:     opts.Private,
	})
	if err != nil {
		return err
	}

	if inRepo {
		if err := a.Git.AddRemote(ctx, a.Dir, "origin", repo.CloneURL); err != nil {
			return fmt.Errorf("repository created at %s but adding remote failed: %w", repo.HTMLURL, err)
		}
		fmt.Fprintf(a.Stdout, "Created %s and set origin to %s\n", repo.HTMLURL, repo.CloneURL)
		return nil
	}

	fmt.Fprintf(a.Stdout, "Created %s\n", repo.HTMLURL)
	return nil
}

// ShowHistory prints past generated messages, most recent last.
func (a *App) ShowHistory() error {
	entries, err := a.History.Load(a.HistoryPath)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(a.Stdout, "No history.")
		return nil
	}
	for _, e := range entries {
		header, _, _ := strings.Cut(e.Message, "\n")
		fmt.Fprintf(a.Stdout, "%s  %s@%s  %s\n",
			e.Timestamp.Format("2006-01-02 15:04"), e.Repo, e.Branch, header)
	}
	return nil
}
