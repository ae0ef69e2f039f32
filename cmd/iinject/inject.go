package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/wpsmith/iinject"
	"github.com/wpsmith/iinject/internal/fileutil"
)

// runInject rewrites a static HTML page with the requested assets.
func runInject(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseInjectFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) == 0 {
		return fmt.Errorf("%w: inject needs a page path (or - for stdin)", ErrUsage)
	}
	pagePath, names := positional[0], positional[1:]

	envCfg := loadEnvConfig()
	if !flags.common.quiet {
		warnUnknownEnvVars(env.Stderr)
	}
	cfg, err := loadConfig(&flags.common, envCfg)
	if err != nil {
		return err
	}

	page, err := readPage(pagePath, env.Stdin, flags.minify || cfg.Output.Minify)
	if err != nil {
		return err
	}
	declareGlobals(page, flags.declare, cfg)

	loader, err := newLoader(page, cfg, flags.minify, flags.common.verbose, env.Stderr)
	if err != nil {
		return err
	}

	reqs, err := buildRequests(names, &flags.asset, cfg)
	if err != nil {
		return err
	}

	var outcomes []iinject.Outcome
	for _, req := range reqs {
		res, err := loader.Load(ctx, req.name, req.opts)
		if err != nil {
			return fmt.Errorf("loading %q: %w", req.name, err)
		}
		outcomes = append(outcomes, res.Outcomes...)
	}

	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}
	if err := writeOutput(flags.output, buf.Bytes(), env.Stdout); err != nil {
		return err
	}

	if !flags.common.quiet {
		printOutcomes(env.Stderr, outcomes)
		if flags.output != "" {
			fmt.Fprintf(env.Stderr, "Created %s\n", flags.output)
		}
	}
	return nil
}

// readPage parses the page at path, or stdin for "-".
func readPage(path string, stdin io.Reader, minified bool) (*iinject.Page, error) {
	var opts []iinject.PageOption
	if minified {
		opts = append(opts, iinject.WithMinifiedOutput())
	}

	r := stdin
	if path != "-" {
		f, err := os.Open(path) // #nosec G304 -- user-provided page path
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrReadPage, err)
		}
		defer f.Close()
		r = f
	}

	page, err := iinject.ParsePage(r, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadPage, path, err)
	}
	return page, nil
}

// writeOutput writes data to path, or to stdout when path is empty.
func writeOutput(path string, data []byte, stdout io.Writer) error {
	if path == "" {
		if _, err := stdout.Write(data); err != nil {
			return fmt.Errorf("%w: %w", ErrWriteOutput, err)
		}
		return nil
	}
	if err := fileutil.WriteFileAtomic(path, data, filePermissions); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteOutput, path, err)
	}
	return nil
}

// printOutcomes writes one line per handled asset.
func printOutcomes(w io.Writer, outcomes []iinject.Outcome) {
	for _, o := range outcomes {
		if o.Status == iinject.StatusPresent {
			fmt.Fprintf(w, "present  %s\n", o.Name)
			continue
		}
		fmt.Fprintf(w, "injected %s (%s)\n", o.Name, o.Method)
	}
}
