// Package bootstrap creates a new app: it installs the React Native base
// project, lays the boilerplate over it and runs the plugin installers, as an
// ordered list of steps.
package bootstrap

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/jakoblorz/go-ignite-jhipster/internal/boilerplate"
	"github.com/jakoblorz/go-ignite-jhipster/internal/filesystem"
	"github.com/jakoblorz/go-ignite-jhipster/internal/git"
	"github.com/jakoblorz/go-ignite-jhipster/internal/github"
	"github.com/jakoblorz/go-ignite-jhipster/internal/models"
	"github.com/jakoblorz/go-ignite-jhipster/internal/prompt"
	"github.com/jakoblorz/go-ignite-jhipster/internal/render"
	"github.com/jakoblorz/go-ignite-jhipster/internal/runner"
	"github.com/jakoblorz/go-ignite-jhipster/internal/tui"
)

// Step is one stage of a bootstrap run. A failing Fatal step stops the run;
// any other failure is reported as a warning.
type Step struct {
	Name  string
	Title string
	Fatal bool
	Run   func(ctx context.Context, r *Run) error
}

// Run is the state shared by the steps of a single bootstrap.
type Run struct {
	Options *models.BootstrapOptions
	Project *models.Project

	// Set by the resolve-version step.
	ReactNativeVersion string

	Started   time.Time
	Warnings  []string
	Completed []string
}

// Props returns the template data for the app templates.
func (r *Run) Props(version string) boilerplate.AppProps {
	return boilerplate.AppProps{
		Name:               r.Options.Name,
		IgniteVersion:      version,
		ReactNativeVersion: r.ReactNativeVersion,
		AuthType:           r.Options.AuthType,
		SearchEngine:       models.BoolValue(r.Options.SearchEngine),
		DevScreens:         models.BoolValue(r.Options.DevScreens),
		Animatable:         models.BoolValue(r.Options.Animatable),
	}
}

// Dependencies are the collaborators a bootstrap talks to.
type Dependencies struct {
	FS       filesystem.FileSystem
	Runner   runner.Runner
	Git      func(dir string) git.GitClient
	Releases github.ReleaseClient
	Prompter prompt.Prompter
	Renderer *render.Renderer
}

// Orchestrator runs the bootstrap steps.
type Orchestrator struct {
	deps    Dependencies
	out     *tui.Printer
	logger  *slog.Logger
	version string

	getenv        func(string) string
	markdownStyle string
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithVersion sets the version written as the plugin dependency of new apps.
func WithVersion(version string) Option {
	return func(o *Orchestrator) {
		o.version = version
	}
}

// WithGetenv replaces os.Getenv.
func WithGetenv(fn func(string) string) Option {
	return func(o *Orchestrator) {
		o.getenv = fn
	}
}

// WithMarkdownStyle sets the glamour style of the closing message
// ("auto", "dark", "light", "notty" ...).
func WithMarkdownStyle(style string) Option {
	return func(o *Orchestrator) {
		o.markdownStyle = style
	}
}

// New creates an Orchestrator writing progress to out. A nil logger discards.
func New(deps Dependencies, out io.Writer, logger *slog.Logger, opts ...Option) *Orchestrator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if deps.Renderer == nil {
		deps.Renderer = render.NewRenderer()
	}
	if deps.Git == nil {
		deps.Git = func(dir string) git.GitClient { return git.NewOSGitClient(dir) }
	}

	o := &Orchestrator{
		deps:          deps,
		out:           tui.NewPrinter(out),
		logger:        logger,
		version:       "latest",
		getenv:        os.Getenv,
		markdownStyle: "auto",
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Bootstrap creates the app opts.Name below cwd. Missing options are asked
// for before anything is written. There is no rollback: a failed run can
// leave a partial project behind.
func (o *Orchestrator) Bootstrap(ctx context.Context, cwd string, opts *models.BootstrapOptions) (*Run, error) {
	if err := o.ResolveOptions(ctx, opts); err != nil {
		return nil, err
	}

	root := filepath.Join(cwd, opts.Name)
	if o.deps.FS.Exists(root) {
		return nil, &models.ValidationError{Field: "name", Message: fmt.Sprintf("directory %s already exists", root)}
	}

	run := &Run{
		Options: opts,
		Project: models.NewProject(opts.Name, root),
		Started: time.Now(),
	}

	o.out.Success("using the JHipster boilerplate")

	for _, step := range o.Steps() {
		if err := ctx.Err(); err != nil {
			return run, fmt.Errorf("bootstrap cancelled before %s: %w", step.Name, err)
		}

		o.out.Step("%s", step.Title)
		o.logger.Debug("step started", "step", step.Name)

		if err := step.Run(ctx, run); err != nil {
			if step.Fatal {
				o.out.Error("%s failed: %v", step.Name, err)
				return run, fmt.Errorf("%s: %w", step.Name, err)
			}
			warning := fmt.Sprintf("%s: %v", step.Name, err)
			o.out.Warn("%s", warning)
			run.Warnings = append(run.Warnings, warning)
			continue
		}

		o.logger.Debug("step finished", "step", step.Name)
		run.Completed = append(run.Completed, step.Name)
	}

	return run, nil
}
