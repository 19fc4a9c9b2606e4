package condition

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// LibraryEntry is the static definition of one named condition, loaded
// from YAML. This is reference data, not per-encounter state.
type LibraryEntry struct {
	// Name is the unique condition name, lowercase (e.g. "poisoned").
	Name        string    `yaml:"name"`
	Description string    `yaml:"description"`
	Effects     EffectSet `yaml:"effects"`
	// Icon is a client-side icon reference.
	Icon string `yaml:"icon"`
	// LuaOnApply, LuaOnRemove, and LuaOnExpire name optional Lua hook
	// functions run by the scripting manager on the matching engine
	// event.
	LuaOnApply  string `yaml:"lua_on_apply"`
	LuaOnRemove string `yaml:"lua_on_remove"`
	LuaOnExpire string `yaml:"lua_on_expire"`
}

// Library is the catalog of known conditions keyed by name.
type Library struct {
	entries map[string]*LibraryEntry
}

// NewLibrary creates an empty Library.
func NewLibrary() *Library {
	return &Library{entries: make(map[string]*LibraryEntry)}
}

// Register adds entry to the library, overwriting any existing entry with
// the same name.
//
// Precondition: entry must not be nil and entry.Name must not be empty.
func (l *Library) Register(entry *LibraryEntry) {
	l.entries[strings.ToLower(entry.Name)] = entry
}

// Get returns the entry for name (case-insensitive), or (nil, false).
func (l *Library) Get(name string) (*LibraryEntry, bool) {
	e, ok := l.entries[strings.ToLower(name)]
	return e, ok
}

// All returns every entry sorted by name.
func (l *Library) All() []*LibraryEntry {
	out := make([]*LibraryEntry, 0, len(l.entries))
	for _, e := range l.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// LoadDirectory reads every *.yaml file in dir, parses each as a
// LibraryEntry with strict field checking, and returns a populated
// Library.
func LoadDirectory(dir string) (*Library, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("condition: reading library dir %q: %w", dir, err)
	}
	lib := NewLibrary()
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("condition: reading %q: %w", path, err)
		}
		var entry LibraryEntry
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&entry); err != nil {
			return nil, fmt.Errorf("condition: parsing %q: %w", path, err)
		}
		if entry.Name == "" {
			return nil, fmt.Errorf("condition: %q has no name", path)
		}
		lib.Register(&entry)
	}
	return lib, nil
}
