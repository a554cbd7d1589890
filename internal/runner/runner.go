package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/jakoblorz/go-ignite-jhipster/internal/models"
)

// Command is a single external command invocation.
type Command struct {
	Name string
	Args []string
	// Dir is the working directory; empty means the current directory.
	Dir string
	// Env holds extra KEY=VALUE pairs appended to the process environment.
	Env []string
	// Quiet discards the command's output. react-native link hangs when its
	// stdio is attached, so it always runs quiet.
	Quiet bool
}

// String renders the command line for logs and errors.
func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Runner executes external commands to completion.
type Runner interface {
	Run(ctx context.Context, cmd Command) error
	LookPath(name string) (string, error)
}

// OSRunner runs commands with os/exec.
type OSRunner struct {
	stdout io.Writer
	stderr io.Writer

	// For mocking in tests
	commandFunc func(ctx context.Context, name string, args ...string) *exec.Cmd
}

// NewOSRunner creates a runner streaming output to stdout/stderr. Nil
// writers default to the process streams.
func NewOSRunner(stdout, stderr io.Writer) *OSRunner {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	return &OSRunner{
		stdout:      stdout,
		stderr:      stderr,
		commandFunc: exec.CommandContext,
	}
}

// Run starts cmd and waits for it. A non-zero exit is returned as a
// *models.CommandError carrying the exit code.
func (r *OSRunner) Run(ctx context.Context, cmd Command) error {
	execCmd := r.commandFunc(ctx, cmd.Name, cmd.Args...)
	execCmd.Dir = cmd.Dir
	if len(cmd.Env) > 0 {
		execCmd.Env = append(os.Environ(), cmd.Env...)
	}

	if cmd.Quiet {
		execCmd.Stdout = io.Discard
		execCmd.Stderr = io.Discard
	} else {
		execCmd.Stdin = os.Stdin
		execCmd.Stdout = r.stdout
		execCmd.Stderr = r.stderr
	}

	argv := append([]string{cmd.Name}, cmd.Args...)
	if err := execCmd.Run(); err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("%s cancelled: %w", cmd.Name, ctx.Err())
		}

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &models.CommandError{Command: argv, ExitCode: exitErr.ExitCode(), Err: err}
		}
		if errors.Is(err, exec.ErrNotFound) {
			return &models.CommandError{
				Command: argv,
				Err:     fmt.Errorf("%s not found in PATH, is it installed?: %w", cmd.Name, err),
			}
		}
		return &models.CommandError{Command: argv, Err: err}
	}

	return nil
}

// LookPath reports where name is installed.
func (r *OSRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}
