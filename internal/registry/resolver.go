package registry

// Resolver combines the embedded registry with an optional custom file.
// Custom entries replace built-in entries of the same name; built-in entries
// the file does not mention stay available.
type Resolver struct {
	custom   Loader // nil if no custom file configured
	embedded Loader
}

// NewResolver creates a Resolver.
// If customPath is empty, only the embedded registry is used.
// Returns error if customPath is set but invalid.
func NewResolver(customPath string) (*Resolver, error) {
	resolver := &Resolver{
		embedded: NewEmbeddedLoader(),
	}

	if customPath != "" {
		fsLoader, err := NewFilesystemLoader(customPath)
		if err != nil {
			return nil, err
		}
		resolver.custom = fsLoader
	}

	return resolver, nil
}

// LoadRegistry returns the embedded registry overlaid by the custom file.
func (r *Resolver) LoadRegistry() (*Registry, error) {
	base, err := r.embedded.LoadRegistry()
	if err != nil {
		return nil, err
	}
	if r.custom == nil {
		return base, nil
	}

	overlay, err := r.custom.LoadRegistry()
	if err != nil {
		return nil, err
	}
	return Merge(base, overlay), nil
}

// HasCustomLoader returns true if a custom registry file is configured.
func (r *Resolver) HasCustomLoader() bool {
	return r.custom != nil
}

// Compile-time interface check.
var _ Loader = (*Resolver)(nil)
