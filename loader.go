package iinject

import (
	"context"
	"fmt"

	"github.com/wpsmith/iinject/internal/minify"
)

// Loader resolves assets against a registry and injects them into a Host.
// A Loader is safe for sequential use.
type Loader struct {
	host         Host
	registry     *Registry
	registryPath string
	resolver     *Resolver
	prober       *Prober
	injector     *injector
	logf         func(format string, args ...any)
	minifyInline bool
}

// New creates a Loader over host.
// Without WithRegistry or WithRegistryFile the built-in registry is used.
func New(host Host, opts ...Option) (*Loader, error) {
	if host == nil {
		return nil, ErrNilHost
	}

	l := &Loader{
		host: host,
		logf: func(string, ...any) {},
	}
	for _, opt := range opts {
		opt(l)
	}

	if err := l.initRegistry(); err != nil {
		return nil, err
	}

	l.prober = NewProber(host)
	l.resolver = NewResolver(l.registry, host)
	l.injector = &injector{}
	if l.minifyInline {
		l.injector.minifier = minify.New()
	}
	return l, nil
}

// initRegistry picks the registry: an explicit one, an overlay file, or
// the built-in table, in that order.
func (l *Loader) initRegistry() error {
	switch {
	case l.registry != nil:
		return validateRegistry(l.registry)
	case l.registryPath != "":
		r, err := LoadRegistry(l.registryPath)
		if err != nil {
			return err
		}
		l.logf("registry: %d entries (overlay %s)", r.Len(), l.registryPath)
		l.registry = r
	default:
		r, err := DefaultRegistry()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidRegistry, err)
		}
		l.registry = r
	}
	return nil
}

// Registry returns the registry the loader resolves against.
func (l *Loader) Registry() *Registry {
	return l.registry
}

// Resolve builds the descriptor tree for name without touching the host's
// document. Globals are read to decide whether a dependency is needed.
func (l *Loader) Resolve(name string, opts *Options) (*Descriptor, error) {
	return l.resolver.Resolve(name, opts)
}

// Load resolves name and executes the result.
func (l *Loader) Load(ctx context.Context, name string, opts *Options) (*Result, error) {
	d, err := l.Resolve(name, opts)
	if err != nil {
		return nil, err
	}
	return l.Execute(ctx, d)
}

// Execute walks d dependency-first. For each descriptor the existence probe
// runs first; a present asset is skipped without firing callbacks, an absent
// one is appended to the host.
//
// A dependency without its own OnError reports load failures through d's
// OnError, wrapped with the dependency's name.
//
// The returned Result holds the outcomes that completed before any error.
func (l *Loader) Execute(ctx context.Context, d *Descriptor) (*Result, error) {
	if d == nil {
		return nil, ErrNilDescriptor
	}

	res := &Result{}
	if d.Dependency != nil {
		dep := *d.Dependency
		if dep.OnError == nil {
			dep.OnError = d.OnError
		}
		if err := l.executeOne(ctx, &dep, res); err != nil {
			return res, fmt.Errorf("dependency %q of %q: %w", d.Dependency.Name, d.Name, err)
		}
	}
	if err := l.executeOne(ctx, d, res); err != nil {
		return res, err
	}
	return res, nil
}

func (l *Loader) executeOne(ctx context.Context, d *Descriptor, res *Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if l.prober.Exists(d.ExistsSymbol) {
		l.logf("%s: %s already present", d.Name, d.ExistsSymbol)
		res.add(d, StatusPresent)
		return nil
	}

	el, err := l.injector.element(d)
	if err != nil {
		return err
	}
	if err := l.host.Append(ctx, el, d.Target()); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrAppend, d.Name, err)
	}

	l.logf("%s: injected %s into %s", d.Name, d.Method, d.Target())
	res.add(d, StatusInjected)
	return nil
}
