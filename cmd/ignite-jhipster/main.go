// Package main provides the entry point for the ignite-jhipster CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/fang"

	"github.com/jakoblorz/go-ignite-jhipster/internal/cli"
	"github.com/jakoblorz/go-ignite-jhipster/internal/models"
)

// Build info set via ldflags at build time.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := cli.NewRootCommand(cli.DefaultDependencies(), version)
	err := fang.Execute(ctx, cmd, fang.WithVersion(buildVersion()))
	return exitCode(err)
}

// exitCode maps a command error to the process status. External commands
// pass their own exit code through.
func exitCode(err error) int {
	if err == nil {
		return 0
	}

	var cmdErr *models.CommandError
	if errors.As(err, &cmdErr) && cmdErr.ExitCode > 0 {
		return cmdErr.ExitCode
	}
	if errors.Is(err, models.ErrAborted) || errors.Is(err, context.Canceled) {
		return 130
	}
	return 1
}
