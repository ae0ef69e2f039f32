package registry

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/wpsmith/iinject/internal/yamlutil"
)

// Defaults applied to every entry that leaves the field unset.
const (
	DefaultMethod = "js"
	DefaultInHead = true
)

// Entry is one known asset.
type Entry struct {
	Src          string `yaml:"src"`
	Exists       string `yaml:"exists,omitempty"`
	DependentVar string `yaml:"dependentVar,omitempty"`
	Method       string `yaml:"method,omitempty"`
	InHead       *bool  `yaml:"inHead,omitempty"`
}

// Head reports the normalized placement of the entry.
func (e Entry) Head() bool {
	if e.InHead == nil {
		return DefaultInHead
	}
	return *e.InHead
}

// normalize fills unset fields with defaults. The InHead pointer is copied
// so callers cannot mutate the registry through a looked-up entry.
func (e Entry) normalize() Entry {
	if e.Method == "" {
		e.Method = DefaultMethod
	}
	head := e.Head()
	e.InHead = &head
	return e
}

// file is the on-disk layout of a registry YAML document.
type file struct {
	Assets map[string]Entry `yaml:"assets"`
}

// Registry is an immutable name → Entry table.
type Registry struct {
	entries map[string]Entry
}

// New builds a Registry from entries. Keys are lower-cased and every entry
// is normalized. The input map is not retained.
func New(entries map[string]Entry) (*Registry, error) {
	r := &Registry{entries: make(map[string]Entry, len(entries))}
	for name, e := range entries {
		if err := ValidateName(name); err != nil {
			return nil, err
		}
		key := strings.ToLower(name)
		if _, dup := r.entries[key]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, key)
		}
		r.entries[key] = e.normalize()
	}
	return r, nil
}

// Parse decodes a registry YAML document.
func Parse(data []byte) (*Registry, error) {
	var f file
	if err := yamlutil.UnmarshalStrict(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return New(f.Assets)
}

// Lookup returns the entry registered under the lower-cased name.
func (r *Registry) Lookup(name string) (Entry, bool) {
	if r == nil {
		return Entry{}, false
	}
	e, ok := r.entries[strings.ToLower(name)]
	if !ok {
		return Entry{}, false
	}
	return e.normalize(), true
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(r.entries))
}

// Len returns the number of entries.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.entries)
}

// Merge returns a new Registry holding base's entries replaced or extended
// by overlay's. Neither input is modified.
func Merge(base, overlay *Registry) *Registry {
	out := &Registry{entries: make(map[string]Entry, base.Len()+overlay.Len())}
	if base != nil {
		maps.Copy(out.entries, base.entries)
	}
	if overlay != nil {
		maps.Copy(out.entries, overlay.entries)
	}
	return out
}

// Marshal encodes the registry in the file layout Parse reads.
func (r *Registry) Marshal() ([]byte, error) {
	f := file{Assets: make(map[string]Entry, r.Len())}
	for _, name := range r.Names() {
		f.Assets[name], _ = r.Lookup(name)
	}
	return yamlutil.Marshal(f)
}
