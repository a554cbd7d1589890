package models

import "path/filepath"

const (
	// ConfigFile is the plugin configuration path relative to the project root.
	ConfigFile = "ignite/ignite.json"

	// ManifestFile is the package manifest path relative to the project root.
	ManifestFile = "package.json"

	// EntityCacheDir holds the local copies of entity definitions.
	EntityCacheDir = ".jhipster"
)

// Project represents the mobile app being generated into.
type Project struct {
	// Name is the app name (the React Native project name)
	Name string

	// RootPath is the absolute path to the project root
	RootPath string
}

// NewProject creates a new Project instance
func NewProject(name, rootPath string) *Project {
	return &Project{
		Name:     name,
		RootPath: rootPath,
	}
}

// Path joins rel onto the project root.
func (p *Project) Path(rel ...string) string {
	return filepath.Join(append([]string{p.RootPath}, rel...)...)
}

// ConfigPath returns the absolute path of ignite/ignite.json.
func (p *Project) ConfigPath() string {
	return p.Path(ConfigFile)
}

// ManifestPath returns the absolute path of package.json.
func (p *Project) ManifestPath() string {
	return p.Path(ManifestFile)
}

// EntityCacheDir returns the absolute path of the local .jhipster directory.
func (p *Project) EntityCacheDir() string {
	return p.Path(EntityCacheDir)
}

// EntityCachePath returns the local cache path for an entity definition.
func (p *Project) EntityCachePath(entityName string) string {
	return filepath.Join(p.EntityCacheDir(), EntityFileName(entityName))
}

// EntityFileName returns "<Name>.json".
func EntityFileName(entityName string) string {
	return entityName + ".json"
}

// EntitySourcePath returns the path of an entity definition inside a backend
// project directory: <dir>/.jhipster/<Name>.json.
func EntitySourcePath(dir, entityName string) string {
	return filepath.Join(dir, EntityCacheDir, EntityFileName(entityName))
}
