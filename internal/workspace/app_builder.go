package workspace

import (
	"encoding/json"
	"path/filepath"

	"github.com/jakoblorz/go-ignite-jhipster/internal/filesystem"
	"github.com/jakoblorz/go-ignite-jhipster/internal/models"
)

// AppBuilder helps create test apps on a mock filesystem
type AppBuilder struct {
	fs   *filesystem.MockFileSystem
	root string
	cfg  models.ProjectConfig
}

// NewAppBuilder creates an app named after the last element of root, with
// the working directory set to root.
func NewAppBuilder(root string) *AppBuilder {
	fs := filesystem.NewMockFileSystem()
	fs.AddDir(root)
	fs.SetCurrentDir(root)

	return &AppBuilder{
		fs:   fs,
		root: root,
		cfg: models.ProjectConfig{
			models.ConfigKeyName:     filepath.Base(root),
			models.ConfigKeyAuthType: string(models.AuthJWT),
		},
	}
}

// SetConfig sets a key of ignite/ignite.json.
func (b *AppBuilder) SetConfig(key string, value any) *AppBuilder {
	b.cfg[key] = value
	return b
}

// AddEntity places an entity definition in <dir>/.jhipster. A relative dir
// is taken from the app root; use "." for the app's own cache.
func (b *AppBuilder) AddEntity(dir, name, definition string) *AppBuilder {
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(b.root, dir)
	}
	b.fs.AddFile(models.EntitySourcePath(dir, name), []byte(definition))
	return b
}

// AddFile adds a file relative to the app root.
func (b *AppBuilder) AddFile(rel, content string) *AppBuilder {
	b.fs.AddFile(filepath.Join(b.root, rel), []byte(content))
	return b
}

// Build writes ignite/ignite.json and returns the filesystem.
func (b *AppBuilder) Build() *filesystem.MockFileSystem {
	data, err := json.MarshalIndent(b.cfg, "", "\t")
	if err != nil {
		panic(err)
	}
	b.fs.AddFile(filepath.Join(b.root, models.ConfigFile), append(data, '\n'))
	return b.fs
}
