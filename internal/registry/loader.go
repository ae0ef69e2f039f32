package registry

// Loader defines the contract for producing a Registry.
// Implementations may read embedded YAML, a file on disk, or combine sources.
type Loader interface {
	LoadRegistry() (*Registry, error)
}
