package entity

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/jakoblorz/go-ignite-jhipster/internal/boilerplate"
	"github.com/jakoblorz/go-ignite-jhipster/internal/config"
	"github.com/jakoblorz/go-ignite-jhipster/internal/filesystem"
	"github.com/jakoblorz/go-ignite-jhipster/internal/models"
	"github.com/jakoblorz/go-ignite-jhipster/internal/render"
	"github.com/jakoblorz/go-ignite-jhipster/internal/tui"
)

// Options control a generation run.
type Options struct {
	SkipTests bool
}

// Result lists what a generation run changed, as project-relative paths.
type Result struct {
	Written  []string
	Patched  []string
	Warnings []string
}

// Generator renders the per-entity files into a project.
type Generator struct {
	fs       filesystem.FileSystem
	project  *models.Project
	store    *config.Store
	renderer *render.Renderer
	out      *tui.Printer
	logger   *slog.Logger

	// For deterministic fixtures in tests
	sample SampleFunc
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithSampleFunc replaces the random sample values used in fixtures.
func WithSampleFunc(fn SampleFunc) GeneratorOption {
	return func(g *Generator) {
		g.sample = fn
	}
}

// NewGenerator creates a Generator writing into project.
func NewGenerator(fs filesystem.FileSystem, project *models.Project, renderer *render.Renderer, out io.Writer, logger *slog.Logger, opts ...GeneratorOption) *Generator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	g := &Generator{
		fs:       fs,
		project:  project,
		store:    config.ForProject(fs, project),
		renderer: renderer,
		out:      tui.NewPrinter(out),
		logger:   logger,
		sample:   RandomSample,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate writes every entity file for res and patches the shared app
// files. Existing entity files are overwritten; shared files only receive
// lines they do not already contain.
func (g *Generator) Generate(ctx context.Context, res *Resolution, opts Options) (*Result, error) {
	cfg, err := g.store.Load()
	if err != nil {
		return nil, err
	}

	data := NewTemplateData(res.Name, res.Definition, cfg, !opts.SkipTests)
	data.Fixture, err = BuildFixture(res.Definition, g.sample)
	if err != nil {
		return nil, err
	}

	result := &Result{}

	for _, tmpl := range boilerplate.EntityTemplates() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		out, err := g.renderer.RenderDocument(boilerplate.FS(), tmpl, data)
		if err != nil {
			return nil, err
		}
		if out.Skipped {
			g.logger.Debug("template skipped", "template", tmpl)
			continue
		}

		target := g.project.Path(filepath.FromSlash(out.Path))
		if err := g.fs.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory for %s: %w", out.Path, err)
		}
		if err := g.fs.WriteFile(target, out.Content, 0644); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", out.Path, err)
		}

		g.logger.Debug("file written", "path", out.Path, "template", tmpl)
		result.Written = append(result.Written, out.Path)
	}

	needles, err := boilerplate.Needles()
	if err != nil {
		return nil, err
	}

	for _, n := range needles {
		patched, err := g.patch(n, data)
		if err != nil {
			warning := fmt.Sprintf("could not update %s: %v", n.File, err)
			g.out.Warn("%s", warning)
			result.Warnings = append(result.Warnings, warning)
			continue
		}
		if patched {
			result.Patched = appendUnique(result.Patched, n.File)
		}
	}

	for _, p := range result.Written {
		g.out.Success("%s", p)
	}
	for _, p := range result.Patched {
		g.out.Success("updated %s", p)
	}

	return result, nil
}

// patch inserts the rendered needle text above the marker line. It reports
// false when every line is already present.
func (g *Generator) patch(n boilerplate.Needle, data *TemplateData) (bool, error) {
	path := g.project.Path(filepath.FromSlash(n.File))

	content, err := g.fs.ReadFile(path)
	if err != nil {
		return false, err
	}

	text, err := g.renderer.RenderString("needle:"+n.File+"#"+n.Marker, n.Text, data)
	if err != nil {
		return false, err
	}

	updated, changed, err := InsertAtNeedle(string(content), n.Marker, string(text))
	if err != nil || !changed {
		return false, err
	}

	if err := g.fs.WriteFile(path, []byte(updated), 0644); err != nil {
		return false, err
	}
	return true, nil
}

// InsertAtNeedle inserts text above the first line containing marker, using
// that line's indentation. Content is returned unchanged when the indented
// text is already present.
func InsertAtNeedle(content, marker, text string) (string, bool, error) {
	lines := strings.Split(content, "\n")

	at := -1
	for i, line := range lines {
		if strings.Contains(line, marker) {
			at = i
			break
		}
	}
	if at < 0 {
		return content, false, fmt.Errorf("needle %s not found", marker)
	}

	indent := lines[at][:len(lines[at])-len(strings.TrimLeft(lines[at], " \t"))]

	var block []string
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		if strings.TrimSpace(line) == "" {
			block = append(block, "")
			continue
		}
		block = append(block, indent+line)
	}

	if strings.Contains(content, strings.Join(block, "\n")) {
		return content, false, nil
	}

	out := make([]string, 0, len(lines)+len(block))
	out = append(out, lines[:at]...)
	out = append(out, block...)
	out = append(out, lines[at:]...)

	return strings.Join(out, "\n"), true, nil
}

func appendUnique(list []string, s string) []string {
	for _, v := range list {
		if v == s {
			return list
		}
	}
	return append(list, s)
}
