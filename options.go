package iinject

// Options are the per-load overrides a caller passes to Load or Resolve.
// Zero-valued fields fall back to the registry entry, then to defaults.
type Options struct {
	Src          string      // URL override
	Method       string      // "js", "css" or "inlineJS" (see ParseMethod)
	Exists       string      // global symbol to probe
	InHead       *bool       // nil = registry entry or true
	DependentVar string      // symbol of a prerequisite registry asset
	Inline       string      // script body for inlineJS
	OnLoad       func()      // fired by the host once the asset loaded
	OnError      func(error) // fired by the host on a failed load; wraps ErrLoadFailed
}

// Bool returns a pointer to b, for Options.InHead.
func Bool(b bool) *bool {
	return &b
}

// Option configures a Loader.
type Option func(*Loader)

// WithRegistry replaces the built-in registry.
func WithRegistry(r *Registry) Option {
	return func(l *Loader) {
		l.registry = r
	}
}

// WithRegistryFile overlays the built-in registry with entries from a YAML
// file. The file is read by New.
func WithRegistryFile(path string) Option {
	return func(l *Loader) {
		l.registryPath = path
	}
}

// WithLogf installs a printf-style sink for progress messages.
// The loader is silent without one.
func WithLogf(logf func(format string, args ...any)) Option {
	return func(l *Loader) {
		if logf != nil {
			l.logf = logf
		}
	}
}

// WithMinifiedInline minifies inline script bodies before injection.
func WithMinifiedInline() Option {
	return func(l *Loader) {
		l.minifyInline = true
	}
}
