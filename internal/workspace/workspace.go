package workspace

import (
	"fmt"
	"path/filepath"

	"github.com/jakoblorz/go-ignite-jhipster/internal/config"
	"github.com/jakoblorz/go-ignite-jhipster/internal/filesystem"
	"github.com/jakoblorz/go-ignite-jhipster/internal/models"
)

// Workspace is the generated app a command operates on.
type Workspace struct {
	fs       filesystem.FileSystem
	RootPath string
	Project  *models.Project
	Config   models.ProjectConfig
}

// New creates a new Workspace instance.
func New(fs filesystem.FileSystem) *Workspace {
	return &Workspace{fs: fs}
}

// Detect finds the app containing dir by walking up to the nearest
// ignite/ignite.json, then loads its configuration.
func (w *Workspace) Detect(dir string) error {
	configPath, found, err := findFileUp(w.fs, dir, filepath.FromSlash(models.ConfigFile))
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%s is not inside an ignite-jhipster app: no %s found", dir, models.ConfigFile)
	}

	// <root>/ignite/ignite.json
	root := filepath.Dir(filepath.Dir(configPath))
	project := models.NewProject(filepath.Base(root), root)

	cfg, err := config.ForProject(w.fs, project).Load()
	if err != nil {
		return fmt.Errorf("failed to load app configuration: %w", err)
	}
	if name := cfg.String(models.ConfigKeyName); name != "" {
		project.Name = name
	}

	w.RootPath = root
	w.Project = project
	w.Config = cfg
	return nil
}
