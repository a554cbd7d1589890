package models

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// Manifest section keys that are merged key-wise.
const (
	SectionDependencies    = "dependencies"
	SectionDevDependencies = "devDependencies"
	SectionScripts         = "scripts"
)

// IsSection reports whether key is one of the key-wise merged sections.
func IsSection(key string) bool {
	switch key {
	case SectionDependencies, SectionDevDependencies, SectionScripts:
		return true
	default:
		return false
	}
}

// Entry is a single key/value pair of an OrderedMap.
type Entry struct {
	Key   string
	Value json.RawMessage
}

// OrderedMap is a JSON object that remembers key insertion order.
type OrderedMap struct {
	entries []Entry
	index   map[string]int
}

// NewOrderedMap creates an empty OrderedMap.
func NewOrderedMap() *OrderedMap {
	return &OrderedMap{index: make(map[string]int)}
}

// Len returns the number of keys.
func (m *OrderedMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// Keys returns the keys in order.
func (m *OrderedMap) Keys() []string {
	if m == nil {
		return nil
	}
	keys := make([]string, len(m.entries))
	for i, e := range m.entries {
		keys[i] = e.Key
	}
	return keys
}

// Entries returns a copy of the entries in order.
func (m *OrderedMap) Entries() []Entry {
	if m == nil {
		return nil
	}
	return append([]Entry(nil), m.entries...)
}

// Has reports whether key is present.
func (m *OrderedMap) Has(key string) bool {
	if m == nil {
		return false
	}
	_, ok := m.index[key]
	return ok
}

// Get returns the raw value for key.
func (m *OrderedMap) Get(key string) (json.RawMessage, bool) {
	if m == nil {
		return nil, false
	}
	i, ok := m.index[key]
	if !ok {
		return nil, false
	}
	return m.entries[i].Value, true
}

// GetString returns the value for key decoded as a string.
func (m *OrderedMap) GetString(key string) (string, bool) {
	raw, ok := m.Get(key)
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// Set replaces the value of an existing key in place or appends a new key.
func (m *OrderedMap) Set(key string, value json.RawMessage) {
	if m.index == nil {
		m.index = make(map[string]int)
	}
	if i, ok := m.index[key]; ok {
		m.entries[i].Value = value
		return
	}
	m.index[key] = len(m.entries)
	m.entries = append(m.entries, Entry{Key: key, Value: value})
}

// SetString sets key to a JSON string value.
func (m *OrderedMap) SetString(key, value string) {
	raw, _ := json.Marshal(value)
	m.Set(key, raw)
}

// Clone returns a deep copy of the map.
func (m *OrderedMap) Clone() *OrderedMap {
	out := NewOrderedMap()
	if m == nil {
		return out
	}
	for _, e := range m.entries {
		out.Set(e.Key, append(json.RawMessage(nil), e.Value...))
	}
	return out
}

// MarshalJSON writes the object with keys in insertion order.
func (m *OrderedMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	if m != nil {
		for i, e := range m.entries {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(e.Key)
			if err != nil {
				return nil, err
			}
			buf.Write(key)
			buf.WriteByte(':')
			if len(e.Value) == 0 {
				buf.WriteString("null")
			} else {
				buf.Write(e.Value)
			}
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object, keeping key order.
func (m *OrderedMap) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("invalid JSON")
	}
	result := gjson.ParseBytes(data)
	if !result.IsObject() {
		return fmt.Errorf("expected a JSON object, got %s", result.Type)
	}

	m.entries = nil
	m.index = make(map[string]int)
	result.ForEach(func(key, value gjson.Result) bool {
		m.Set(key.String(), json.RawMessage(value.Raw))
		return true
	})
	return nil
}

// Manifest is a package.json document. The three key-wise merged sections are
// held as typed fields; every other top-level key lives in Extra. Order keeps
// the position of all top-level keys so a rewrite does not reshuffle the file.
type Manifest struct {
	Dependencies    *OrderedMap
	DevDependencies *OrderedMap
	Scripts         *OrderedMap
	Extra           *OrderedMap

	order []string
}

// NewManifest creates an empty manifest.
func NewManifest() *Manifest {
	return &Manifest{Extra: NewOrderedMap()}
}

// Section returns the section for one of the special keys (nil when absent).
func (m *Manifest) Section(key string) *OrderedMap {
	switch key {
	case SectionDependencies:
		return m.Dependencies
	case SectionDevDependencies:
		return m.DevDependencies
	case SectionScripts:
		return m.Scripts
	default:
		return nil
	}
}

// SetSection assigns one of the special sections, recording its position.
func (m *Manifest) SetSection(key string, section *OrderedMap) {
	switch key {
	case SectionDependencies:
		m.Dependencies = section
	case SectionDevDependencies:
		m.DevDependencies = section
	case SectionScripts:
		m.Scripts = section
	default:
		return
	}
	m.touch(key)
}

// SetExtra sets a non-section top-level key.
func (m *Manifest) SetExtra(key string, value json.RawMessage) {
	if m.Extra == nil {
		m.Extra = NewOrderedMap()
	}
	m.Extra.Set(key, value)
	m.touch(key)
}

// Has reports whether the top-level key exists.
func (m *Manifest) Has(key string) bool {
	if IsSection(key) {
		return m.Section(key) != nil
	}
	return m.Extra.Has(key)
}

// Keys returns all top-level keys in document order.
func (m *Manifest) Keys() []string {
	return append([]string(nil), m.order...)
}

func (m *Manifest) touch(key string) {
	for _, k := range m.order {
		if k == key {
			return
		}
	}
	m.order = append(m.order, key)
}

// MarshalJSON writes the manifest with top-level keys in document order.
func (m *Manifest) MarshalJSON() ([]byte, error) {
	out := NewOrderedMap()
	for _, key := range m.order {
		if IsSection(key) {
			section := m.Section(key)
			if section == nil {
				continue
			}
			raw, err := section.MarshalJSON()
			if err != nil {
				return nil, err
			}
			out.Set(key, raw)
			continue
		}
		if raw, ok := m.Extra.Get(key); ok {
			out.Set(key, raw)
		}
	}
	return out.MarshalJSON()
}

// UnmarshalJSON decodes a package.json document.
func (m *Manifest) UnmarshalJSON(data []byte) error {
	var all OrderedMap
	if err := all.UnmarshalJSON(data); err != nil {
		return err
	}

	*m = Manifest{Extra: NewOrderedMap()}
	for _, e := range all.entries {
		if IsSection(e.Key) {
			if gjson.ParseBytes(e.Value).Type == gjson.Null {
				// absent, but a merged section keeps this position
				m.touch(e.Key)
				continue
			}
			section := NewOrderedMap()
			if err := section.UnmarshalJSON(e.Value); err != nil {
				return fmt.Errorf("%s: %w", e.Key, err)
			}
			m.SetSection(e.Key, section)
			continue
		}
		m.SetExtra(e.Key, e.Value)
	}
	return nil
}
