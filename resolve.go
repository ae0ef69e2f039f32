package iinject

import (
	"fmt"
	"strings"
)

// Resolver turns a name and caller options into a Descriptor. It reads the
// registry and probes globals but never mutates the host.
type Resolver struct {
	registry *Registry
	prober   *Prober
}

// NewResolver creates a Resolver over reg, probing dependencies through g.
func NewResolver(reg *Registry, g Globals) *Resolver {
	return &Resolver{registry: reg, prober: NewProber(g)}
}

// Resolve builds the descriptor for name.
//
// Precedence is defaults, then the registry entry, then opts. When name is a
// registry entry whose source was not overridden, and its dependent symbol
// probes absent, the registry entry for that symbol becomes the descriptor's
// Dependency. Dependencies are resolved one level deep only, and skipped
// when the registry has no source for them.
func (r *Resolver) Resolve(name string, opts *Options) (*Descriptor, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrMissingName
	}
	if opts == nil {
		opts = &Options{}
	}

	d := &Descriptor{
		Name:   strings.ToLower(name),
		Method: ExternalScript,
		InHead: true,
	}

	entry, known := r.registry.Lookup(d.Name)
	if known {
		if err := applyEntry(d, entry); err != nil {
			return nil, err
		}
	}
	if err := applyOptions(d, opts); err != nil {
		return nil, err
	}

	if !known || opts.Src == "" {
		dep, err := r.dependency(d)
		if err != nil {
			return nil, err
		}
		d.Dependency = dep
	}

	if err := validateSource(d); err != nil {
		return nil, err
	}
	return d, nil
}

// dependency returns the prerequisite descriptor for d, or nil.
func (r *Resolver) dependency(d *Descriptor) (*Descriptor, error) {
	symbol := d.DependentSymbol
	if symbol == "" || r.prober.Exists(symbol) {
		return nil, nil
	}

	key := strings.ToLower(symbol)
	if key == d.Name {
		return nil, nil
	}
	entry, ok := r.registry.Lookup(key)
	if !ok || entry.Src == "" {
		return nil, nil
	}

	dep := &Descriptor{Name: key}
	if err := applyEntry(dep, entry); err != nil {
		return nil, err
	}
	if err := validateSource(dep); err != nil {
		return nil, fmt.Errorf("dependency %q: %w", key, err)
	}
	return dep, nil
}

func applyEntry(d *Descriptor, e RegistryEntry) error {
	m, err := ParseMethod(e.Method)
	if err != nil {
		return fmt.Errorf("%w: entry %q: %w", ErrInvalidRegistry, d.Name, err)
	}
	d.Src = e.Src
	d.Method = m
	d.ExistsSymbol = e.Exists
	d.DependentSymbol = e.DependentVar
	d.InHead = e.Head()
	return nil
}

func applyOptions(d *Descriptor, opts *Options) error {
	if opts.Method != "" {
		m, err := ParseMethod(opts.Method)
		if err != nil {
			return err
		}
		d.Method = m
	}
	if opts.Src != "" {
		d.Src = opts.Src
	}
	if opts.Exists != "" {
		d.ExistsSymbol = opts.Exists
	}
	if opts.InHead != nil {
		d.InHead = *opts.InHead
	}
	if opts.DependentVar != "" {
		d.DependentSymbol = opts.DependentVar
	}
	if opts.Inline != "" {
		d.Inline = opts.Inline
	}
	if opts.OnLoad != nil {
		d.OnLoad = opts.OnLoad
	}
	if opts.OnError != nil {
		d.OnError = opts.OnError
	}
	return nil
}

// validateSource checks the descriptor carries something to inject.
func validateSource(d *Descriptor) error {
	switch d.Method {
	case ExternalScript, ExternalStylesheet:
		if strings.TrimSpace(d.Src) == "" {
			return fmt.Errorf("%w: %q has no src", ErrInvalidSource, d.Name)
		}
	case InlineScript:
		if strings.TrimSpace(d.Inline) == "" {
			return fmt.Errorf("%w: %q has no inline body", ErrInvalidSource, d.Name)
		}
	default:
		return fmt.Errorf("%w: %v", ErrUnknownMethod, d.Method)
	}
	return nil
}
