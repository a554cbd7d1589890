package config

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/jakoblorz/go-ignite-jhipster/internal/filesystem"
	"github.com/jakoblorz/go-ignite-jhipster/internal/models"
	"github.com/tidwall/pretty"
)

var prettyOptions = &pretty.Options{
	Width:    0,
	Prefix:   "",
	Indent:   "\t",
	SortKeys: false,
}

// Store persists the plugin configuration (ignite/ignite.json) that carries
// defaults across invocations. Writes are plain overwrites: the file is a
// developer convenience cache, not a system of record.
type Store struct {
	fs   filesystem.FileSystem
	path string
}

// NewStore creates a store backed by the file at path.
func NewStore(fs filesystem.FileSystem, path string) *Store {
	return &Store{fs: fs, path: path}
}

// ForProject creates a store for the project's ignite/ignite.json.
func ForProject(fs filesystem.FileSystem, project *models.Project) *Store {
	return NewStore(fs, project.ConfigPath())
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the configuration. A missing file yields an empty config.
func (s *Store) Load() (models.ProjectConfig, error) {
	cfg, _, err := s.read()
	return cfg, err
}

// Save overlays partial onto the stored configuration (top-level keys of
// partial win) and writes the result back. It returns the merged config.
// Keys already in the file keep their position; new keys are appended in
// sorted order.
func (s *Store) Save(partial models.ProjectConfig) (models.ProjectConfig, error) {
	current, doc, err := s.read()
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(partial))
	for key := range partial {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		raw, err := json.Marshal(partial[key])
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s: %w", key, err)
		}
		doc.Set(key, raw)
	}

	if err := s.write(doc); err != nil {
		return nil, err
	}

	return models.Overlay(current, partial), nil
}

// Set persists a single key.
func (s *Store) Set(key string, value any) error {
	_, err := s.Save(models.ProjectConfig{key: value})
	return err
}

// read returns the decoded config and the same document with its key order.
func (s *Store) read() (models.ProjectConfig, *models.OrderedMap, error) {
	if !s.fs.Exists(s.path) {
		return models.ProjectConfig{}, models.NewOrderedMap(), nil
	}

	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	cfg := models.ProjectConfig{}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, nil, &models.ParseError{Path: s.path, Err: err}
	}
	if cfg == nil {
		return models.ProjectConfig{}, models.NewOrderedMap(), nil
	}

	doc := models.NewOrderedMap()
	if err := doc.UnmarshalJSON(data); err != nil {
		return nil, nil, &models.ParseError{Path: s.path, Err: err}
	}

	return cfg, doc, nil
}

func (s *Store) write(doc *models.OrderedMap) error {
	raw, err := doc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	data := pretty.PrettyOptions(raw, prettyOptions)

	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := s.fs.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}

	return nil
}
