package prompt

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/jakoblorz/go-ignite-jhipster/internal/models"
	"github.com/jakoblorz/go-ignite-jhipster/internal/tui"
)

// HuhPrompter asks questions with huh forms.
type HuhPrompter struct {
	theme *huh.Theme
}

// NewHuhPrompter constructs a HuhPrompter with the CLI theme.
func NewHuhPrompter() *HuhPrompter {
	return &HuhPrompter{theme: tui.NewHuhTheme()}
}

func (p *HuhPrompter) Input(ctx context.Context, q Question) (string, error) {
	value := q.Default

	field := huh.NewInput().
		Title(q.Message).
		Value(&value)
	if q.Description != "" {
		field = field.Description(q.Description)
	}

	if err := p.run(ctx, field); err != nil {
		return "", err
	}

	return value, nil
}

func (p *HuhPrompter) Select(ctx context.Context, q Question) (string, error) {
	if len(q.Options) == 0 {
		return "", fmt.Errorf("question %s has no options", q.Name)
	}

	value := q.Default
	opts := make([]huh.Option[string], 0, len(q.Options))
	for _, o := range q.Options {
		opts = append(opts, huh.NewOption(o.Label, o.Value))
	}

	keyMap := huh.NewDefaultKeyMap()
	keyMap.Select.Filter.SetEnabled(false)

	field := huh.NewSelect[string]().
		Title(q.Message).
		Options(opts...).
		Value(&value)
	if q.Description != "" {
		field = field.Description(q.Description)
	}

	if err := p.run(ctx, field, withKeyMap(keyMap)); err != nil {
		return "", err
	}

	return value, nil
}

func (p *HuhPrompter) Confirm(ctx context.Context, q Question) (bool, error) {
	value := q.Default == "true"

	field := huh.NewConfirm().
		Title(q.Message).
		Affirmative("Yes").
		Negative("No").
		Value(&value)
	if q.Description != "" {
		field = field.Description(q.Description)
	}

	if err := p.run(ctx, field); err != nil {
		return false, err
	}

	return value, nil
}

type formOption func(*huh.Form) *huh.Form

func withKeyMap(k *huh.KeyMap) formOption {
	return func(f *huh.Form) *huh.Form {
		return f.WithKeyMap(k)
	}
}

func (p *HuhPrompter) run(ctx context.Context, field huh.Field, opts ...formOption) error {
	// Prompts draw on stderr; stdout carries the progress lines.
	form := huh.NewForm(huh.NewGroup(field)).
		WithTheme(p.theme).
		WithShowHelp(true).
		WithProgramOptions(tea.WithOutput(os.Stderr))
	for _, opt := range opts {
		form = opt(form)
	}

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return models.ErrAborted
		}
		if ctx.Err() != nil {
			return fmt.Errorf("%w: %v", models.ErrAborted, ctx.Err())
		}
		return err
	}

	return nil
}
