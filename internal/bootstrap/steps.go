package bootstrap

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	gitignore "github.com/denormal/go-gitignore"

	"github.com/jakoblorz/go-ignite-jhipster/internal/boilerplate"
	"github.com/jakoblorz/go-ignite-jhipster/internal/config"
	"github.com/jakoblorz/go-ignite-jhipster/internal/filesystem"
	"github.com/jakoblorz/go-ignite-jhipster/internal/github"
	"github.com/jakoblorz/go-ignite-jhipster/internal/manifest"
	"github.com/jakoblorz/go-ignite-jhipster/internal/models"
	"github.com/jakoblorz/go-ignite-jhipster/internal/runner"
)

const (
	defaultBoilerplate = "ignite-jhipster"
	initialCommit      = "Initial commit."

	cookiesModule  = "react-native-cookies"
	cookiesVersion = "3.2.0"
)

var (
	// https://github.com/facebook/react-native/issues/12724
	gitattributesLine = "*.bat text eol=crlf"
	gitignoreBlock    = "\n# Misc\n.env\n"

	standardIgnore = []string{"ignite/**"}
)

// Steps returns the bootstrap steps in execution order.
func (o *Orchestrator) Steps() []Step {
	return []Step{
		{Name: "resolve-version", Title: "resolving React Native version", Fatal: true, Run: o.resolveVersion},
		{Name: "install-base", Title: "installing React Native", Fatal: true, Run: o.installBase},
		{Name: "remove-default-tests", Title: "removing default tests", Fatal: true, Run: o.removeDefaultTests},
		{Name: "copy-static", Title: "copying files", Fatal: true, Run: o.copyStatic},
		{Name: "render-templates", Title: "generating files", Fatal: true, Run: o.renderTemplates},
		{Name: "append-files", Title: "updating .gitattributes and .gitignore", Fatal: false, Run: o.appendFiles},
		{Name: "merge-manifest", Title: "merging package.json", Fatal: true, Run: o.mergeManifest},
		{Name: "link-native", Title: "linking native libraries", Fatal: true, Run: o.linkNative},
		{Name: "plugins", Title: "adding plugins", Fatal: true, Run: o.addPlugins},
		{Name: "git", Title: "configuring git", Fatal: true, Run: o.initGit},
		{Name: "next-steps", Title: "wrapping up", Fatal: false, Run: o.nextSteps},
	}
}

func (o *Orchestrator) resolveVersion(ctx context.Context, r *Run) error {
	version, err := github.ResolveReactNativeVersion(ctx, o.deps.Releases, r.Options.ReactNativeVersion)
	if err != nil {
		return err
	}

	r.ReactNativeVersion = version
	o.out.Success("React Native %s", version)
	return nil
}

func (o *Orchestrator) installBase(ctx context.Context, r *Run) error {
	return o.deps.Runner.Run(ctx, runner.Command{
		Name: "npx",
		Args: []string{"react-native", "init", r.Options.Name, "--version", r.ReactNativeVersion},
		Dir:  filepath.Dir(r.Project.RootPath),
	})
}

func (o *Orchestrator) removeDefaultTests(_ context.Context, r *Run) error {
	return o.deps.FS.RemoveAll(r.Project.Path("__tests__"))
}

func (o *Orchestrator) copyStatic(_ context.Context, r *Run) error {
	for _, tree := range boilerplate.StaticTrees {
		written, err := filesystem.CopyTree(o.deps.FS, boilerplate.Static(), tree, r.Project.Path(tree), boilerplate.IsTemplate)
		if err != nil {
			return fmt.Errorf("failed to copy %s: %w", tree, err)
		}
		o.logger.Debug("tree copied", "tree", tree, "files", len(written))
	}
	return nil
}

func (o *Orchestrator) renderTemplates(_ context.Context, r *Run) error {
	props := r.Props(o.version)

	for _, tmpl := range boilerplate.AppTemplates() {
		out, err := o.deps.Renderer.RenderDocument(boilerplate.FS(), tmpl, props)
		if err != nil {
			return err
		}
		if out.Skipped {
			continue
		}

		target := r.Project.Path(filepath.FromSlash(out.Path))
		if err := o.deps.FS.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", out.Path, err)
		}
		if err := o.deps.FS.WriteFile(target, out.Content, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", out.Path, err)
		}
		o.logger.Debug("file written", "path", out.Path, "template", path.Base(tmpl))
	}

	return nil
}

// appendFiles adds the CRLF rule for .bat files and ignores .env. Lines
// already in effect are not appended again.
func (o *Orchestrator) appendFiles(_ context.Context, r *Run) error {
	attributes := r.Project.Path(".gitattributes")
	if !o.containsLine(attributes, gitattributesLine) {
		if err := o.deps.FS.AppendFile(attributes, []byte(gitattributesLine+"\n"), 0644); err != nil {
			return fmt.Errorf("failed to update .gitattributes: %w", err)
		}
	}

	ignored, err := o.isIgnored(r.Project.RootPath, ".env")
	if err != nil {
		return err
	}
	if !ignored {
		if err := o.deps.FS.AppendFile(r.Project.Path(".gitignore"), []byte(gitignoreBlock), 0644); err != nil {
			return fmt.Errorf("failed to update .gitignore: %w", err)
		}
	}

	return nil
}

func (o *Orchestrator) containsLine(path, line string) bool {
	if !o.deps.FS.Exists(path) {
		return false
	}
	data, err := o.deps.FS.ReadFile(path)
	if err != nil {
		return false
	}
	for _, l := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(l) == line {
			return true
		}
	}
	return false
}

func (o *Orchestrator) isIgnored(root, rel string) (bool, error) {
	ignorePath := filepath.Join(root, ".gitignore")
	if !o.deps.FS.Exists(ignorePath) {
		return false, nil
	}

	data, err := o.deps.FS.ReadFile(ignorePath)
	if err != nil {
		return false, fmt.Errorf("failed to read .gitignore: %w", err)
	}

	ignore := gitignore.New(bytes.NewReader(data), root, nil)
	match := ignore.Relative(rel, false)
	return match != nil && match.Ignore(), nil
}

func (o *Orchestrator) mergeManifest(_ context.Context, r *Run) error {
	fragment, err := o.deps.Renderer.RenderFS(boilerplate.FS(), boilerplate.ManifestTemplate, r.Props(o.version))
	if err != nil {
		return err
	}

	merged, err := manifest.NewMerger(o.deps.FS).MergeFile(r.Project.ManifestPath(), fragment)
	if err != nil {
		return err
	}

	o.logger.Debug("manifest merged", "keys", merged.Keys())
	return nil
}

func (o *Orchestrator) linkNative(ctx context.Context, r *Run) error {
	return o.deps.Runner.Run(ctx, runner.Command{
		Name:  "npx",
		Args:  []string{"react-native", "link"},
		Dir:   r.Project.RootPath,
		Quiet: true,
	})
}

func (o *Orchestrator) addPlugins(ctx context.Context, r *Run) error {
	opts := r.Options

	if err := o.igniteAdd(ctx, r, opts.Boilerplate); err != nil {
		return err
	}

	// ignite add rewrites ignite/ignite.json; put the app settings back.
	store := config.ForProject(o.deps.FS, r.Project)
	if _, err := store.Save(pluginConfig(r)); err != nil {
		return err
	}
	o.out.Success("added %s", opts.Boilerplate)

	plugins := []string{"ignite-ir-boilerplate-2016"}
	if models.BoolValue(opts.DevScreens) {
		plugins = append(plugins, "dev-screens")
	}
	plugins = append(plugins, "vector-icons")
	for _, p := range plugins {
		if err := o.igniteAdd(ctx, r, p); err != nil {
			return err
		}
	}

	if opts.AuthType == models.AuthSession {
		if err := o.addModule(ctx, r, cookiesModule, cookiesVersion); err != nil {
			return err
		}
	}

	if models.BoolValue(opts.Animatable) {
		if err := o.igniteAdd(ctx, r, "animatable"); err != nil {
			return err
		}
	}

	if opts.SkipLint {
		return nil
	}

	if err := o.igniteAdd(ctx, r, "standard"); err != nil {
		return err
	}

	m, err := manifest.Read(o.deps.FS, r.Project.ManifestPath())
	if err != nil {
		return err
	}
	if err := manifest.SetStandardIgnore(m, standardIgnore); err != nil {
		return err
	}
	return manifest.Write(o.deps.FS, r.Project.ManifestPath(), m)
}

func (o *Orchestrator) igniteAdd(ctx context.Context, r *Run, plugin string) error {
	args := []string{"add", plugin}
	if r.Options.Debug {
		args = append(args, "--debug")
	}
	return o.deps.Runner.Run(ctx, runner.Command{Name: "ignite", Args: args, Dir: r.Project.RootPath})
}

func (o *Orchestrator) addModule(ctx context.Context, r *Run, module, version string) error {
	if err := o.deps.Runner.Run(ctx, runner.Command{
		Name: "npm",
		Args: []string{"install", "--save", module + "@" + version},
		Dir:  r.Project.RootPath,
	}); err != nil {
		return err
	}

	return o.deps.Runner.Run(ctx, runner.Command{
		Name:  "npx",
		Args:  []string{"react-native", "link", module},
		Dir:   r.Project.RootPath,
		Quiet: true,
	})
}

func pluginConfig(r *Run) models.ProjectConfig {
	return models.ProjectConfig{
		models.ConfigKeyName:         r.Options.Name,
		models.ConfigKeyAuthType:     string(r.Options.AuthType),
		models.ConfigKeySearchEngine: models.BoolValue(r.Options.SearchEngine),
		models.ConfigKeyDevScreens:   models.BoolValue(r.Options.DevScreens),
		models.ConfigKeyAnimatable:   models.BoolValue(r.Options.Animatable),
		models.ConfigKeyReactNative:  r.ReactNativeVersion,
		"boilerplate":                r.Options.Boilerplate,
	}
}

// initGit commits the new app when it is not inside a repository yet.
func (o *Orchestrator) initGit(ctx context.Context, r *Run) error {
	if r.Options.SkipGit {
		o.logger.Debug("git skipped", "reason", "skip-git")
		return nil
	}
	if o.deps.FS.Exists(r.Project.Path(".git")) {
		o.logger.Debug("git skipped", "reason", "repository exists")
		return nil
	}

	client := o.deps.Git(r.Project.RootPath).WithContext(ctx)
	if !client.Available() {
		o.logger.Debug("git skipped", "reason", "git not installed")
		return nil
	}

	if err := client.Init(); err != nil {
		return err
	}
	if err := client.AddAll(); err != nil {
		return err
	}
	if err := client.Commit(initialCommit); err != nil {
		return err
	}

	o.out.Success("configured git")
	return nil
}
