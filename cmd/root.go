package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hauran/git-ai/internal/config"
	"github.com/hauran/git-ai/internal/git"
	"github.com/hauran/git-ai/internal/message"
	"github.com/hauran/git-ai/internal/ollama"
	"github.com/hauran/git-ai/internal/openai"
	"github.com/hauran/git-ai/internal/pipeline"
	"github.com/hauran/git-ai/internal/prompt"
	"github.com/hauran/git-ai/internal/provider"
	"github.com/hauran/git-ai/internal/ui"
)

var (
	flagStyle   string
	flagModel   string
	flagCommit  bool
	flagEdit    bool
	flagNoColor bool
)

var rootCmd = &cobra.Command{
	Use:   "git-ai",
	Short: "Generate commit messages for staged changes with an LLM",
	Long:  `git-ai inspects the staged changes in your repository, asks a language model for a commit message in your preferred style, and optionally commits with it.`,
	Run:   run,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&flagStyle, "style", "s", "", "message style: conventional, standard or detailed")
	rootCmd.Flags().StringVarP(&flagModel, "model", "m", "", "override the configured model")
	rootCmd.Flags().BoolVarP(&flagCommit, "commit", "c", false, "commit with the generated message")
	rootCmd.Flags().BoolVarP(&flagEdit, "edit", "e", false, "edit the message interactively, then commit")
	rootCmd.Flags().BoolVar(&flagNoColor, "no-color", false, "disable colored output")
	rootCmd.AddCommand(configCmd)
}

func run(cmd *cobra.Command, args []string) {
	cfg, err := config.Load()
	if err != nil {
		fail(err)
	}
	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		fail(err)
	}

	if !git.IsRepository() {
		failHint(git.ErrNotRepository, "run git-ai inside a git repository")
	}
	if !git.HasStagedChanges() {
		failHint(git.ErrNoStagedChanges, "stage your changes first with git add")
	}

	diff, err := git.StagedDiff(cfg.ExcludeGlobs)
	if err != nil {
		fail(err)
	}
	if len(diff.Files) == 0 {
		failHint(git.ErrNoStagedChanges, "all staged files are excluded by your configuration")
	}

	fmt.Println(ui.RenderSummary(diff, cfg.Color))
	fmt.Println()

	style := message.ParseStyle(cfg.Style)
	repoCtx := git.Context(3)

	gen := pipeline.New(newProvider(cfg), cfg)

	var msg *message.CommitMessage
	err = ui.WithSpinner("Generating commit message...", func() error {
		var genErr error
		msg, genErr = gen.Generate(prompt.Context{
			Diff:          diff,
			Style:         style,
			RepoName:      repoCtx.RepoName,
			Branch:        repoCtx.Branch,
			RecentCommits: repoCtx.RecentCommits,
		})
		return genErr
	})
	if err != nil {
		fail(err)
	}

	text := message.Format(msg, style)
	fmt.Println(ui.RenderGenerated(text, msg.Confidence, cfg.Color))

	if !message.Validate(text, style) {
		warn("generated message does not pass %s style validation", style)
	}

	if flagEdit {
		edited, err := ui.EditCommitMessage(text)
		if err != nil {
			fail(err)
		}
		if strings.TrimSpace(edited) == "" {
			fail(fmt.Errorf("commit message cannot be empty"))
		}
		text = edited
	}

	if flagCommit || flagEdit {
		if err := git.Commit(text); err != nil {
			fail(err)
		}
		fmt.Println("Committed.")
	}
}

func applyFlags(cfg *config.Config) {
	if flagStyle != "" {
		cfg.Style = flagStyle
	}
	if flagModel != "" {
		cfg.Model = flagModel
	}
	if flagNoColor {
		cfg.Color = false
	}
}

// newProvider picks the generation backend from configuration. Anything
// other than ollama goes through the OpenAI-compatible client.
func newProvider(cfg *config.Config) provider.Provider {
	if cfg.Provider == "ollama" {
		return ollama.NewClient(cfg.Endpoint)
	}
	return openai.NewClient(cfg.Endpoint, cfg.APIKey)
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func failHint(err error, hint string) {
	fmt.Fprintf(os.Stderr, "Error: %v\nHint: %s\n", err, hint)
	os.Exit(1)
}

func warn(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "%s %s\n", color.YellowString("Warning:"), fmt.Sprintf(format, args...))
}
