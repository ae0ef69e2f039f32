package main

import (
	"context"
	"fmt"

	"github.com/wpsmith/iinject"
	"github.com/wpsmith/iinject/internal/yamlutil"
)

// descriptorView is the YAML shape of a resolved descriptor.
type descriptorView struct {
	Name         string          `yaml:"name"`
	Src          string          `yaml:"src,omitempty"`
	Method       string          `yaml:"method"`
	Exists       string          `yaml:"exists,omitempty"`
	Present      bool            `yaml:"present"`
	Target       string          `yaml:"target"`
	DependentVar string          `yaml:"dependentVar,omitempty"`
	Inline       string          `yaml:"inline,omitempty"`
	Dependency   *descriptorView `yaml:"dependency,omitempty"`
}

func newDescriptorView(d *iinject.Descriptor, p *iinject.Prober) *descriptorView {
	if d == nil {
		return nil
	}
	return &descriptorView{
		Name:         d.Name,
		Src:          d.Src,
		Method:       d.Method.String(),
		Exists:       d.ExistsSymbol,
		Present:      p.Exists(d.ExistsSymbol),
		Target:       d.Target().String(),
		DependentVar: d.DependentSymbol,
		Inline:       d.Inline,
		Dependency:   newDescriptorView(d.Dependency, p),
	}
}

// runResolve prints the descriptor tree for each name without injecting.
// Globals come from --declare and the config's page section.
func runResolve(_ context.Context, args []string, env *Environment) error {
	flags, names, err := parseResolveFlags(args, env.Stderr)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(&flags.common, loadEnvConfig())
	if err != nil {
		return err
	}

	page := iinject.NewPage()
	declareGlobals(page, flags.declare, cfg)

	loader, err := newLoader(page, cfg, false, flags.common.verbose, env.Stderr)
	if err != nil {
		return err
	}

	reqs, err := buildRequests(names, &flags.asset, cfg)
	if err != nil {
		return err
	}

	prober := iinject.NewProber(page)
	views := make([]any, 0, len(reqs))
	for _, req := range reqs {
		d, err := loader.Resolve(req.name, req.opts)
		if err != nil {
			return fmt.Errorf("resolving %q: %w", req.name, err)
		}
		views = append(views, newDescriptorView(d, prober))
	}

	out, err := yamlutil.MarshalStream(views...)
	if err != nil {
		return fmt.Errorf("encoding descriptors: %w", err)
	}
	_, err = env.Stdout.Write(out)
	return err
}
