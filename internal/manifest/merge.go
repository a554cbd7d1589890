package manifest

import (
	"fmt"

	"github.com/jakoblorz/go-ignite-jhipster/internal/filesystem"
	"github.com/jakoblorz/go-ignite-jhipster/internal/models"
)

var sections = []string{
	models.SectionDependencies,
	models.SectionDevDependencies,
	models.SectionScripts,
}

// Merge combines the manifest installed by the base template with a fragment
// rendered from our templates. Neither input is modified.
//
// dependencies, devDependencies and scripts are unioned key by key and the
// fragment wins on conflict. Any other fragment key is only added when base
// does not have it, so fields owned by the base installer (name, version...)
// are never clobbered.
func Merge(base, fragment *models.Manifest) *models.Manifest {
	out := models.NewManifest()

	for _, key := range base.Keys() {
		if models.IsSection(key) {
			switch {
			case base.Section(key) != nil:
				out.SetSection(key, base.Section(key).Clone())
			case fragment.Section(key) != nil:
				out.SetSection(key, models.NewOrderedMap())
			}
			continue
		}
		raw, _ := base.Extra.Get(key)
		out.SetExtra(key, raw)
	}

	for _, key := range sections {
		add := fragment.Section(key)
		if add == nil {
			continue
		}

		section := out.Section(key)
		if section == nil {
			section = models.NewOrderedMap()
		}
		for _, e := range add.Entries() {
			section.Set(e.Key, e.Value)
		}
		out.SetSection(key, section)
	}

	for _, key := range fragment.Keys() {
		if models.IsSection(key) || out.Has(key) {
			continue
		}
		raw, _ := fragment.Extra.Get(key)
		out.SetExtra(key, raw)
	}

	return out
}

// Merger merges a rendered fragment into the package.json on disk.
type Merger struct {
	fs filesystem.FileSystem
}

// NewMerger creates a Merger.
func NewMerger(fs filesystem.FileSystem) *Merger {
	return &Merger{fs: fs}
}

// MergeFile merges fragment into the manifest at path and writes the result
// back. The base manifest must already exist; it is produced by the base
// template installation.
func (m *Merger) MergeFile(path string, fragment []byte) (*models.Manifest, error) {
	if !m.fs.Exists(path) {
		return nil, fmt.Errorf("base manifest %s does not exist; was the base app installed?", path)
	}

	base, err := Read(m.fs, path)
	if err != nil {
		return nil, err
	}

	frag, err := Parse("rendered package.json", fragment)
	if err != nil {
		return nil, err
	}

	merged := Merge(base, frag)
	if err := Write(m.fs, path, merged); err != nil {
		return nil, err
	}

	return merged, nil
}
