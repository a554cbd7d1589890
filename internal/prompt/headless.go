package prompt

import (
	"context"
	"fmt"
)

// HeadlessPrompter fails every question. It is used when stdin is not a
// terminal so that scripted runs fail fast instead of hanging.
type HeadlessPrompter struct{}

// NewHeadlessPrompter creates a HeadlessPrompter.
func NewHeadlessPrompter() *HeadlessPrompter {
	return &HeadlessPrompter{}
}

func (p *HeadlessPrompter) Input(_ context.Context, q Question) (string, error) {
	return "", p.fail(q)
}

func (p *HeadlessPrompter) Select(_ context.Context, q Question) (string, error) {
	return "", p.fail(q)
}

func (p *HeadlessPrompter) Confirm(_ context.Context, q Question) (bool, error) {
	return false, p.fail(q)
}

func (p *HeadlessPrompter) fail(q Question) error {
	return fmt.Errorf("cannot ask %q (pass --%s instead): %w", q.Message, q.Name, ErrNoTerminal)
}
