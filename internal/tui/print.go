package tui

import (
	"fmt"
	"io"
)

// Printer writes user-facing progress lines. It mirrors the ✓ / ⚠️ / ❌
// markers used across the CLI output.
type Printer struct {
	w io.Writer
}

// NewPrinter creates a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer {
	return p.w
}

func (p *Printer) Info(format string, args ...any) {
	_, _ = fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *Printer) Step(format string, args ...any) {
	_, _ = fmt.Fprintln(p.w, StepStyle.Render("▸ "+fmt.Sprintf(format, args...)))
}

func (p *Printer) Success(format string, args ...any) {
	_, _ = fmt.Fprintln(p.w, SuccessStyle.Render("✓ "+fmt.Sprintf(format, args...)))
}

func (p *Printer) Warn(format string, args ...any) {
	_, _ = fmt.Fprintln(p.w, WarnStyle.Render("⚠️  "+fmt.Sprintf(format, args...)))
}

func (p *Printer) Error(format string, args ...any) {
	_, _ = fmt.Fprintln(p.w, ErrorStyle.Render("❌ "+fmt.Sprintf(format, args...)))
}
