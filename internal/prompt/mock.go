package prompt

import (
	"context"
	"fmt"
)

// ScriptedPrompter answers questions from a fixed script, in order. It
// implements Prompter for tests.
type ScriptedPrompter struct {
	answers []string
	asked   []Question

	// Err, when set, is returned once the script runs out instead of a
	// generic exhaustion error.
	Err error
}

// NewScriptedPrompter creates a prompter that replays answers.
func NewScriptedPrompter(answers ...string) *ScriptedPrompter {
	return &ScriptedPrompter{answers: answers}
}

// Asked returns every question asked so far.
func (p *ScriptedPrompter) Asked() []Question {
	return append([]Question(nil), p.asked...)
}

func (p *ScriptedPrompter) next(ctx context.Context, q Question) (string, error) {
	p.asked = append(p.asked, q)

	if err := ctx.Err(); err != nil {
		return "", err
	}

	if len(p.answers) == 0 {
		if p.Err != nil {
			return "", p.Err
		}
		return "", fmt.Errorf("no scripted answer for %q", q.Message)
	}

	answer := p.answers[0]
	p.answers = p.answers[1:]
	return answer, nil
}

func (p *ScriptedPrompter) Input(ctx context.Context, q Question) (string, error) {
	return p.next(ctx, q)
}

func (p *ScriptedPrompter) Select(ctx context.Context, q Question) (string, error) {
	return p.next(ctx, q)
}

func (p *ScriptedPrompter) Confirm(ctx context.Context, q Question) (bool, error) {
	answer, err := p.next(ctx, q)
	if err != nil {
		return false, err
	}
	return answer == "true" || answer == "y" || answer == "yes", nil
}
