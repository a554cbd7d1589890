package entity

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/jakoblorz/go-ignite-jhipster/internal/config"
	"github.com/jakoblorz/go-ignite-jhipster/internal/filesystem"
	"github.com/jakoblorz/go-ignite-jhipster/internal/models"
	"github.com/jakoblorz/go-ignite-jhipster/internal/prompt"
	"github.com/jakoblorz/go-ignite-jhipster/internal/render"
	"github.com/jakoblorz/go-ignite-jhipster/internal/tui"
)

// Source tells where a definition was resolved from.
type Source string

const (
	SourceCache    Source = "cache"
	SourceOverride Source = "override"
	SourcePrompt   Source = "prompt"
)

// State is a state of the interactive lookup.
type State int

const (
	StatePrompting State = iota
	StateValidating
	StateResolved
	StateAborted
)

func (s State) String() string {
	switch s {
	case StatePrompting:
		return "prompting"
	case StateValidating:
		return "validating"
	case StateResolved:
		return "resolved"
	case StateAborted:
		return "aborted"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// DirQuestion is the name of the directory prompt; it matches the flag that
// skips it.
const DirQuestion = "jh-dir"

// Resolution is the outcome of a successful lookup.
type Resolution struct {
	// Name is the canonical (PascalCase) entity name.
	Name string
	// CachePath is the local .jhipster/<Name>.json the definition was read from.
	CachePath string
	// Directory is the backend directory the definition was copied from; empty
	// for a cache hit.
	Directory string
	Source    Source
	// Attempts counts the directory prompts answered.
	Attempts   int
	Definition *models.EntityDefinition
}

// Locator finds entity definitions and keeps the local cache and the
// jhipsterDirectory default up to date.
type Locator struct {
	fs       filesystem.FileSystem
	project  *models.Project
	store    *config.Store
	prompter prompt.Prompter
	out      *tui.Printer
	logger   *slog.Logger
}

// NewLocator creates a Locator for project. Progress is written to out.
func NewLocator(fs filesystem.FileSystem, project *models.Project, prompter prompt.Prompter, out io.Writer, logger *slog.Logger) *Locator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Locator{
		fs:       fs,
		project:  project,
		store:    config.ForProject(fs, project),
		prompter: prompter,
		out:      tui.NewPrinter(out),
		logger:   logger,
	}
}

// Locate resolves the definition of name. Resolution order, first match
// wins: the local cache, the override directory, then the directory prompt.
// A missing definition under override is a *models.NotFoundError; the prompt
// repeats until the file exists or the prompt is aborted.
func (l *Locator) Locate(ctx context.Context, name, override string) (*Resolution, error) {
	if strings.TrimSpace(name) == "" {
		return nil, &models.ValidationError{Field: "name", Message: "a name is required"}
	}

	canonical := render.PascalCase(name)
	if canonical == "" {
		return nil, &models.ValidationError{Field: "name", Message: fmt.Sprintf("%q is not a valid entity name", name)}
	}

	res := &Resolution{
		Name:      canonical,
		CachePath: l.project.EntityCachePath(canonical),
	}

	if l.fs.Exists(res.CachePath) {
		l.logger.Debug("entity cache hit", "entity", canonical, "path", res.CachePath)
		l.out.Success("Found the entity config locally in %s", models.EntityCacheDir)
		res.Source = SourceCache
		return l.load(res)
	}

	if override != "" {
		dir := trimTrailingSlash(override)
		source := l.sourcePath(dir, canonical)
		if !l.fs.Exists(source) {
			return nil, &models.NotFoundError{What: "entity configuration file", Path: models.EntitySourcePath(dir, canonical)}
		}

		l.out.Success("Found the entity config at %s", models.EntitySourcePath(dir, canonical))
		res.Source = SourceOverride
		res.Directory = dir
	} else {
		dir, attempts, err := l.ask(ctx, canonical)
		res.Attempts = attempts
		if err != nil {
			return nil, err
		}
		res.Source = SourcePrompt
		res.Directory = dir
	}

	if err := l.materialize(res); err != nil {
		return nil, err
	}

	return l.load(res)
}

// ask runs the interactive lookup until a directory holding the definition
// is given or the prompt fails.
func (l *Locator) ask(ctx context.Context, name string) (string, int, error) {
	cfg, err := l.store.Load()
	if err != nil {
		return "", 0, err
	}

	question := prompt.Question{
		Name:        DirQuestion,
		Message:     "What's the path to your JHipster project?",
		Description: fmt.Sprintf("The directory containing .jhipster/%s", models.EntityFileName(name)),
		Default:     cfg.JHipsterDirectory(),
	}

	var (
		state    = StatePrompting
		dir      string
		attempts int
		cause    error
	)

	for {
		l.logger.Debug("entity lookup", "entity", name, "state", state.String(), "attempt", attempts)

		switch state {
		case StatePrompting:
			answer, err := l.prompter.Input(ctx, question)
			if err != nil {
				cause = err
				state = StateAborted
				continue
			}
			attempts++
			dir = trimTrailingSlash(strings.TrimSpace(answer))
			state = StateValidating

		case StateValidating:
			if dir == "" {
				l.out.Error("A directory is required, please try again.")
				state = StatePrompting
				continue
			}

			display := models.EntitySourcePath(dir, name)
			l.out.Info("Looking for %s", display)
			if !l.fs.Exists(l.sourcePath(dir, name)) {
				miss := &models.NotFoundError{What: "entity configuration file", Path: display}
				l.out.Error("%s, please try again.", capitalize(miss.Error()))
				state = StatePrompting
				continue
			}

			l.out.Success("Found entity file at %s", display)
			state = StateResolved

		case StateResolved:
			return dir, attempts, nil

		case StateAborted:
			if ctx.Err() != nil && !errors.Is(cause, models.ErrAborted) {
				cause = fmt.Errorf("%w: %w", models.ErrAborted, cause)
			}
			return "", attempts, fmt.Errorf("entity lookup for %s stopped: %w", name, cause)
		}
	}
}

// materialize copies the resolved definition into the local cache and
// remembers its directory as the new default. A source that does not parse
// leaves both untouched.
func (l *Locator) materialize(res *Resolution) error {
	source := l.sourcePath(res.Directory, res.Name)
	data, err := l.fs.ReadFile(source)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", source, err)
	}
	if _, err := parseDefinition(source, data); err != nil {
		return err
	}

	if err := l.fs.MkdirAll(l.project.EntityCacheDir(), 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", models.EntityCacheDir, err)
	}
	if err := l.fs.WriteFile(res.CachePath, data, 0644); err != nil {
		return fmt.Errorf("failed to cache entity config: %w", err)
	}
	l.out.Success("Entity config saved to your app's %s folder.", models.EntityCacheDir)

	if err := l.store.Set(models.ConfigKeyJHipsterDirectory, res.Directory); err != nil {
		return fmt.Errorf("failed to remember %s: %w", models.ConfigKeyJHipsterDirectory, err)
	}
	l.logger.Debug("entity cached", "entity", res.Name, "from", res.Directory, "source", string(res.Source))

	return nil
}

func (l *Locator) load(res *Resolution) (*Resolution, error) {
	data, err := l.fs.ReadFile(res.CachePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", res.CachePath, err)
	}

	def, err := parseDefinition(res.CachePath, data)
	if err != nil {
		return nil, err
	}
	if def.Name == "" {
		def.Name = res.Name
	}

	res.Definition = def
	return res, nil
}

func parseDefinition(path string, data []byte) (*models.EntityDefinition, error) {
	def, err := models.ParseEntityDefinition(path, data)
	if err != nil {
		return nil, err
	}
	if err := def.Validate(); err != nil {
		return nil, &models.ParseError{Path: path, Err: err}
	}
	return def, nil
}

// sourcePath resolves a user-supplied directory against the project root.
func (l *Locator) sourcePath(dir, name string) string {
	if !filepath.IsAbs(dir) {
		dir = l.project.Path(dir)
	}
	return models.EntitySourcePath(dir, name)
}

func trimTrailingSlash(dir string) string {
	for len(dir) > 1 && strings.HasSuffix(dir, "/") {
		dir = strings.TrimSuffix(dir, "/")
	}
	return dir
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
