package manifest

import (
	"encoding/json"
	"fmt"

	"github.com/jakoblorz/go-ignite-jhipster/internal/filesystem"
	"github.com/jakoblorz/go-ignite-jhipster/internal/models"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

var prettyOptions = &pretty.Options{
	Width:    0,
	Prefix:   "",
	Indent:   "  ",
	SortKeys: false,
}

// Parse decodes a package.json document.
func Parse(path string, data []byte) (*models.Manifest, error) {
	m := models.NewManifest()
	if err := m.UnmarshalJSON(data); err != nil {
		return nil, &models.ParseError{Path: path, Err: err}
	}
	return m, nil
}

// Encode renders a manifest with two-space indentation and a trailing newline.
func Encode(m *models.Manifest) ([]byte, error) {
	raw, err := m.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to encode manifest: %w", err)
	}
	return pretty.PrettyOptions(raw, prettyOptions), nil
}

// Read loads and parses the manifest at path.
func Read(fs filesystem.FileSystem, path string) (*models.Manifest, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Parse(path, data)
}

// Write encodes m and writes it to path.
func Write(fs filesystem.FileSystem, path string, m *models.Manifest) error {
	data, err := Encode(m)
	if err != nil {
		return err
	}
	if err := fs.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// SetStandardIgnore sets standard.ignore so the linter skips the given
// patterns, keeping any other "standard" settings.
func SetStandardIgnore(m *models.Manifest, patterns []string) error {
	current, ok := m.Extra.Get("standard")
	if !ok || len(current) == 0 || string(current) == "null" {
		current = json.RawMessage(`{}`)
	}

	updated, err := sjson.SetBytes(current, "ignore", patterns)
	if err != nil {
		return fmt.Errorf("failed to set standard.ignore: %w", err)
	}

	m.SetExtra("standard", updated)
	return nil
}
