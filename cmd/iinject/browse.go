package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/wpsmith/iinject"
	"github.com/wpsmith/iinject/internal/config"
	"github.com/wpsmith/iinject/internal/fileutil"
)

// defaultBrowseTimeout bounds the page load and each completion wait.
const defaultBrowseTimeout = 30 * time.Second

// browseReport is what happened to one requested asset.
type browseReport struct {
	name     string
	outcomes []iinject.Outcome
	errs     []error // load failure observed by the page, per outcome
}

// err returns the first load failure, or nil.
func (r *browseReport) err() error {
	for _, err := range r.errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// runBrowse loads assets into a live page in headless Chrome and waits for
// each script to finish loading.
func runBrowse(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseBrowseFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) == 0 {
		return fmt.Errorf("%w: browse needs a page URL", ErrUsage)
	}
	url, names := positional[0], positional[1:]
	if !fileutil.IsURL(url) && !fileutil.IsFileURL(url) {
		return fmt.Errorf("%w: %q (want http://, https:// or file://)", ErrInvalidURL, url)
	}

	envCfg := loadEnvConfig()
	if !flags.common.quiet {
		warnUnknownEnvVars(env.Stderr)
	}
	cfg, err := loadConfig(&flags.common, envCfg)
	if err != nil {
		return err
	}

	timeout, err := resolveTimeout(flags.timeout, cfg)
	if err != nil {
		return err
	}

	reqs, err := buildRequests(names, &flags.asset, cfg)
	if err != nil {
		return err
	}

	b, err := env.Launch(ctx, iinject.BrowserOptions{
		Bin:       cfg.Browser.Bin,
		NoSandbox: cfg.Browser.NoSandbox,
		Timeout:   timeout,
	})
	if err != nil {
		return err
	}
	defer func() { _ = b.Close() }()

	openCtx, cancel := context.WithTimeout(ctx, timeout)
	tab, err := b.Open(openCtx, url)
	cancel()
	if err != nil {
		return err
	}
	defer func() { _ = tab.Close() }()

	loader, err := newLoader(tab, cfg, false, flags.common.verbose, env.Stderr)
	if err != nil {
		return err
	}

	var failed error
	for _, req := range reqs {
		rep, err := loadAndWait(ctx, loader, req, timeout)
		if err != nil {
			return err
		}
		if !flags.common.quiet {
			printBrowseReport(env.Stderr, rep)
		}
		if err := rep.err(); err != nil && failed == nil {
			failed = err
		}
	}
	return failed
}

// loadAndWait resolves req, hooks completion signals onto the asset and
// its dependency, executes, and blocks until every injected script has
// loaded or failed. Stylesheets get no completion signal and are not
// waited on. One timeout bounds the whole wait.
func loadAndWait(ctx context.Context, loader *iinject.Loader, req loadRequest, timeout time.Duration) (*browseReport, error) {
	d, err := loader.Resolve(req.name, req.opts)
	if err != nil {
		return nil, fmt.Errorf("loading %q: %w", req.name, err)
	}

	// Execution order: dependency first, then the asset.
	chain := []*iinject.Descriptor{d}
	if d.Dependency != nil {
		chain = []*iinject.Descriptor{d.Dependency, d}
	}
	signals := make(map[string]chan error, len(chain))
	for _, desc := range chain {
		done := make(chan error, 1)
		desc.OnLoad = func() { done <- nil }
		desc.OnError = func(err error) { done <- err }
		signals[desc.Name] = done
	}

	res, err := loader.Execute(ctx, d)
	if err != nil {
		return nil, fmt.Errorf("loading %q: %w", req.name, err)
	}
	rep := &browseReport{name: req.name, outcomes: res.Outcomes, errs: make([]error, len(res.Outcomes))}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	expired := false
	for i, o := range res.Outcomes {
		if !awaited(o) {
			continue
		}
		if !expired {
			select {
			case rep.errs[i] = <-signals[o.Name]:
				continue
			case <-timer.C:
				expired = true
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
		select {
		case rep.errs[i] = <-signals[o.Name]:
		default:
			rep.errs[i] = fmt.Errorf("%w: %s: no load event after %s: %w", iinject.ErrLoadFailed, o.Name, timeout, context.DeadlineExceeded)
		}
	}
	return rep, nil
}

// awaited reports whether the page signals completion for o.
func awaited(o iinject.Outcome) bool {
	return o.Status == iinject.StatusInjected && o.Method != iinject.ExternalStylesheet
}

// printBrowseReport writes one line per handled asset.
func printBrowseReport(w io.Writer, rep *browseReport) {
	for i, o := range rep.outcomes {
		switch {
		case o.Status == iinject.StatusPresent:
			fmt.Fprintf(w, "present  %s\n", o.Name)
		case rep.errs[i] != nil:
			fmt.Fprintf(w, "failed   %s: %v\n", o.Name, rep.errs[i])
		case awaited(o):
			fmt.Fprintf(w, "loaded   %s (%s)\n", o.Name, o.Method)
		default:
			fmt.Fprintf(w, "injected %s (%s)\n", o.Name, o.Method)
		}
	}
}

// resolveTimeout picks the browse timeout: flag, then env or config, then
// the default.
func resolveTimeout(flag string, cfg *config.Config) (time.Duration, error) {
	if flag != "" {
		d, err := time.ParseDuration(flag)
		if err != nil {
			return 0, fmt.Errorf("%w: %q: %w", ErrInvalidTimeout, flag, err)
		}
		if d <= 0 {
			return 0, fmt.Errorf("%w: must be positive, got %s", ErrInvalidTimeout, d)
		}
		return d, nil
	}

	d, err := cfg.Browser.TimeoutDuration()
	if err != nil {
		return 0, errors.Join(ErrInvalidTimeout, err)
	}
	if d > 0 {
		return d, nil
	}
	return defaultBrowseTimeout, nil
}
