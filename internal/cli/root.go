package cli

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/jakoblorz/go-ignite-jhipster/internal/filesystem"
	"github.com/jakoblorz/go-ignite-jhipster/internal/git"
	"github.com/jakoblorz/go-ignite-jhipster/internal/github"
	"github.com/jakoblorz/go-ignite-jhipster/internal/prompt"
	"github.com/jakoblorz/go-ignite-jhipster/internal/runner"
	"github.com/spf13/cobra"
)

// Dependencies are the collaborators shared by all commands.
type Dependencies struct {
	FS       filesystem.FileSystem
	Runner   runner.Runner
	Git      func(dir string) git.GitClient
	Releases github.ReleaseClient
	Prompter prompt.Prompter

	// MarkdownStyle is the glamour style of rendered messages.
	MarkdownStyle string
}

// NewRootCommand creates the root command
func NewRootCommand(deps Dependencies, version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ignite-jhipster",
		Short: "Generate React Native apps for JHipster backends",
		Long: `A CLI tool that creates React Native apps for JHipster backends.

It bootstraps a new app from the JHipster boilerplate and generates screens,
Redux state, sagas, API methods and fixtures for the backend's entities.`,
		Version:      version,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().Bool("debug", false, "Print debug logs to stderr")
	rootCmd.PersistentFlags().String("cwd", "", "Run as if started in this directory")

	rootCmd.AddCommand(NewNewCommand(deps, version))
	rootCmd.AddCommand(NewGenerateCommand(deps))

	return rootCmd
}

// Execute runs the root command against the real system.
func Execute(version string) error {
	rootCmd := NewRootCommand(DefaultDependencies(), version)

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command failed: %w", err)
	}

	return nil
}

// DefaultDependencies wires the OS implementations.
func DefaultDependencies() Dependencies {
	return Dependencies{
		FS:     filesystem.NewOSFileSystem(),
		Runner: runner.NewOSRunner(nil, nil),
		Git: func(dir string) git.GitClient {
			return git.NewOSGitClient(dir)
		},
		Releases:      github.NewClientFromEnvOrAnonymous(),
		Prompter:      prompt.New(),
		MarkdownStyle: "auto",
	}
}

// workingDir returns --cwd as an absolute path, or the process directory.
func workingDir(cmd *cobra.Command, fs filesystem.FileSystem) (string, error) {
	dir, _ := cmd.Flags().GetString("cwd")
	if dir == "" {
		return fs.Getwd()
	}
	if filepath.IsAbs(dir) {
		return filepath.Clean(dir), nil
	}

	wd, err := fs.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return filepath.Join(wd, dir), nil
}

// newLogger returns a debug-level text logger on stderr when --debug is set
// and a discarding one otherwise.
func newLogger(cmd *cobra.Command) *slog.Logger {
	debug, _ := cmd.Flags().GetBool("debug")
	if !debug {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
}
