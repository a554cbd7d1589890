package prompt

import (
	"context"
	"errors"
	"os"

	"github.com/mattn/go-isatty"
)

// ErrNoTerminal is returned by the headless prompter: there is nobody to ask.
var ErrNoTerminal = errors.New("stdin is not a terminal")

// Option is one choice of a select question.
type Option struct {
	Label string
	Value string
}

// Question describes a single prompt.
type Question struct {
	// Name identifies the question (usually the matching CLI flag).
	Name        string
	Message     string
	Description string
	// Default pre-fills inputs and preselects options.
	Default string
	Options []Option
}

// Prompter asks the user questions. Every call blocks until an answer is
// given, the user aborts (models.ErrAborted) or ctx is cancelled.
type Prompter interface {
	Input(ctx context.Context, q Question) (string, error)
	Select(ctx context.Context, q Question) (string, error)
	Confirm(ctx context.Context, q Question) (bool, error)
}

// New returns an interactive prompter when stdin is a terminal and a
// headless one otherwise.
func New() Prompter {
	fd := os.Stdin.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return NewHuhPrompter()
	}
	return NewHeadlessPrompter()
}
