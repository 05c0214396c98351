// Command commitgen generates Conventional Commits messages from the
// working tree diff using an AI provider, then commits (and optionally
// pushes) the change.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/fwojciec/commitgen"
	"github.com/fwojciec/commitgen/bubbletea"
	"github.com/fwojciec/commitgen/chroma"
	"github.com/fwojciec/commitgen/clipboard"
	"github.com/fwojciec/commitgen/fs"
	"github.com/fwojciec/commitgen/gemini"
	"github.com/fwojciec/commitgen/git"
	"github.com/fwojciec/commitgen/gitdiff"
	"github.com/fwojciec/commitgen/github"
	"github.com/fwojciec/commitgen/gitlab"
	"github.com/fwojciec/commitgen/jsonl"
	"github.com/fwojciec/commitgen/lipgloss"
	"github.com/fwojciec/commitgen/openai"
)

const httpTimeout = 60 * time.Second

func main() {
	// Best-effort: a missing .env file is fine.
	_ = godotenv.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newApp wires the configured adapters into an App.
func newApp(ctx context.Context) (*App, error) {
	configPath := os.Getenv("COMMITGEN_CONFIG")
	if configPath == "" {
		var err error
		if configPath, err = fs.DefaultPath(); err != nil {
			return nil, err
		}
	}
	cfg, err := fs.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	dir, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	generators := commitgen.Generators{}
	if cfg.Gemini.APIKey != "" {
		client, err := gemini.NewClient(ctx, cfg.Gemini.APIKey)
		if err != nil {
			return nil, err
		}
		model := cfg.Gemini.Model
		if model == "" {
			model = gemini.DefaultModel
		}
		generators[commitgen.ProviderGemini] = gemini.NewGenerator(client, model)
	}
	if cfg.OpenAI.APIKey != "" {
		model := cfg.OpenAI.Model
		if model == "" {
			model = openai.DefaultModel
		}
		client := openai.NewClient(cfg.OpenAI.BaseURL, cfg.OpenAI.APIKey, httpTimeout)
		generators[commitgen.ProviderOpenAI] = openai.NewGenerator(client, model)
	}

	forges := commitgen.Forges{
		commitgen.ForgeGitHub: github.NewForge(cfg.GitHub.BaseURL, cfg.GitHub.Token, httpTimeout),
		commitgen.ForgeGitLab: gitlab.NewForge(cfg.GitLab.BaseURL, cfg.GitLab.Token, httpTimeout),
	}

	theme := lipgloss.DefaultTheme()
	tokenizer, err := chroma.NewTokenizer(chroma.StyleFromPalette(theme.Palette()))
	if err != nil {
		return nil, err
	}

	return &App{
		Dir:         dir,
		Provider:    commitgen.Provider(cfg.Provider),
		Forge:       commitgen.ForgeKind(cfg.Forge),
		HistoryPath: cfg.HistoryPath,
		Git:         git.NewRunner(),
		Generators:  generators,
		Forges:      forges,
		Picker:      bubbletea.NewPicker(theme, tokenizer),
		Validator:   gitdiff.NewValidator(),
		Clipboard:   clipboard.System(),
		History:     jsonl.NewStore(),
		Stdin:       os.Stdin,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
	}, nil
}

func newRootCmd() *cobra.Command {
	var opts CommitOptions

	root := &cobra.Command{
		Use:          "commitgen",
		Short:        "Generate a commit message from the current diff and commit it",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			return app.Commit(cmd.Context(), opts)
		},
	}

	root.Flags().BoolVarP(&opts.Interactive, "interactive", "i", false, "pick individual hunks to commit")
	root.Flags().BoolVarP(&opts.Yes, "yes", "y", false, "commit without asking for confirmation")
	root.Flags().BoolVar(&opts.Push, "push", false, "push to origin after committing")
	root.Flags().BoolVar(&opts.Copy, "copy", false, "copy the message to the clipboard")
	root.Flags().StringVarP(&opts.Context, "context", "c", "", "extra context for the generator, e.g. a ticket reference")

	root.AddCommand(newPushCmd(), newRepoCmd(), newHistoryCmd())
	return root
}

func newPushCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "push",
		Short: "Push the current branch to origin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			return app.Push(cmd.Context())
		},
	}
}

func newRepoCmd() *cobra.Command {
	var opts RepoOptions

	cmd := &cobra.Command{
		Use:   "repo <name>",
		Short: "Create a remote repository on the configured forge",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			opts.Name = args[0]
			return app.CreateRepo(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Private, "private", true, "create a private repository")
	cmd.Flags().StringVar(&opts.Description, "description", "", "repository description")
	return cmd
}

func newHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List previously generated commit messages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			return app.ShowHistory()
		},
	}
}
