package iinject

import (
	"fmt"

	"github.com/wpsmith/iinject/internal/registry"
)

// Registry is an immutable table of known assets keyed by lower-cased name.
type Registry = registry.Registry

// RegistryEntry is one known asset.
type RegistryEntry = registry.Entry

// DefaultRegistry returns the built-in registry (headjs, jquery, spservices).
func DefaultRegistry() (*Registry, error) {
	return registry.Default()
}

// NewRegistry builds a registry from entries.
func NewRegistry(entries map[string]RegistryEntry) (*Registry, error) {
	r, err := registry.New(entries)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRegistry, err)
	}
	if err := validateRegistry(r); err != nil {
		return nil, err
	}
	return r, nil
}

// LoadRegistry returns the built-in registry overlaid by the YAML file at
// path. An empty path returns the built-in registry.
func LoadRegistry(path string) (*Registry, error) {
	resolver, err := registry.NewResolver(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRegistry, err)
	}
	r, err := resolver.LoadRegistry()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRegistry, err)
	}
	if err := validateRegistry(r); err != nil {
		return nil, err
	}
	return r, nil
}

// validateRegistry rejects entries whose method is not a known strategy.
func validateRegistry(r *Registry) error {
	for _, name := range r.Names() {
		e, _ := r.Lookup(name)
		if _, err := ParseMethod(e.Method); err != nil {
			return fmt.Errorf("%w: entry %q: %w", ErrInvalidRegistry, name, err)
		}
	}
	return nil
}
