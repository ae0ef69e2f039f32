package registry

import (
	_ "embed"
	"sync"
)

//go:embed registry.yaml
var builtin []byte

// EmbeddedLoader loads the registry compiled into the binary.
// Implements Loader interface.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadRegistry returns the built-in registry.
func (e *EmbeddedLoader) LoadRegistry() (*Registry, error) {
	return Default()
}

// Default returns the built-in registry, parsed on first use.
var Default = sync.OnceValues(func() (*Registry, error) {
	return Parse(builtin)
})

// Compile-time interface check.
var _ Loader = (*EmbeddedLoader)(nil)
