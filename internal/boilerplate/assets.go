// Package boilerplate holds the files written into a generated app: the
// static App, Tests and storybook trees, the app templates rendered during
// bootstrap and the per-entity templates.
package boilerplate

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed all:static all:templates
var assets embed.FS

const (
	// ManifestTemplate renders the package.json fragment merged into the
	// manifest created by react-native init.
	ManifestTemplate = "templates/package.json.tmpl"

	appTemplateDir    = "templates/app"
	entityTemplateDir = "templates/entity"

	// TemplateExt marks files that are rendered rather than copied.
	TemplateExt = ".tmpl"
)

// StaticTrees are the directories copied verbatim into a new app.
var StaticTrees = []string{"App", "Tests", "storybook"}

// FS exposes every embedded asset.
func FS() fs.FS {
	return assets
}

// Static returns the tree root of the verbatim-copied files.
func Static() fs.FS {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		panic(fmt.Sprintf("boilerplate: static assets missing: %v", err))
	}
	return sub
}

// IsTemplate reports whether name is rendered rather than copied.
func IsTemplate(name string) bool {
	return strings.HasSuffix(name, TemplateExt)
}

// AppTemplates lists the bootstrap templates in render order.
func AppTemplates() []string {
	return list(appTemplateDir)
}

// EntityTemplates lists the per-entity templates in render order.
func EntityTemplates() []string {
	return list(entityTemplateDir)
}

func list(dir string) []string {
	entries, err := fs.ReadDir(assets, dir)
	if err != nil {
		panic(fmt.Sprintf("boilerplate: %s missing: %v", dir, err))
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && IsTemplate(e.Name()) {
			names = append(names, path.Join(dir, e.Name()))
		}
	}
	sort.Strings(names)
	return names
}
