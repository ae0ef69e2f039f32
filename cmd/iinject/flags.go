package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config   string
	registry string
	quiet    bool
	verbose  bool
}

// assetFlags holds per-load overrides applied to every named asset.
type assetFlags struct {
	src       string
	method    string
	exists    string
	body      bool
	dependent string
	inline    string // literal body, or @path to read a file
}

// injectFlags holds all flags for the inject command.
type injectFlags struct {
	common  commonFlags
	asset   assetFlags
	declare []string
	output  string
	minify  bool
}

// resolveFlags holds all flags for the resolve command.
type resolveFlags struct {
	common  commonFlags
	asset   assetFlags
	declare []string
}

// listFlags holds all flags for the list command.
type listFlags struct {
	common commonFlags
	format string
}

// browseFlags holds all flags for the browse command.
type browseFlags struct {
	common  commonFlags
	asset   assetFlags
	timeout string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVar(&f.registry, "registry", "", "registry overlay YAML file")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show loader progress")
}

// addAssetFlags adds load override flags to a FlagSet.
func addAssetFlags(fs *flag.FlagSet, f *assetFlags) {
	fs.StringVar(&f.src, "src", "", "asset URL (overrides the registry)")
	fs.StringVar(&f.method, "method", "", "injection method: js, css, inlineJS")
	fs.StringVar(&f.exists, "exists", "", "global symbol that marks the asset as present")
	fs.BoolVar(&f.body, "body", false, "append to <body> instead of <head>")
	fs.StringVar(&f.dependent, "dependent", "", "global symbol of a prerequisite registry asset")
	fs.StringVar(&f.inline, "inline", "", "inline script body, or @file")
}

// addDeclareFlag adds the static-page globals flag to a FlagSet.
func addDeclareFlag(fs *flag.FlagSet, declare *[]string) {
	fs.StringArrayVar(declare, "declare", nil, "global already defined by the page (repeatable)")
}

// newFlagSet creates a FlagSet whose errors and usage go to w.
func newFlagSet(name string, w io.Writer, usage func(io.Writer)) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(w)
	fs.Usage = func() { usage(w) }
	return fs
}

// parse runs fs and wraps failures as usage errors.
func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return err
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	return nil
}

// parseInjectFlags parses inject command flags and returns positional args.
func parseInjectFlags(args []string, w io.Writer) (*injectFlags, []string, error) {
	f := &injectFlags{}
	fs := newFlagSet("inject", w, printInjectUsage)
	fs.StringVarP(&f.output, "output", "o", "", "output file (default: stdout)")
	fs.BoolVar(&f.minify, "minify", false, "minify the page and inline scripts")
	addCommonFlags(fs, &f.common)
	addAssetFlags(fs, &f.asset)
	addDeclareFlag(fs, &f.declare)

	if err := parse(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseResolveFlags parses resolve command flags and returns positional args.
func parseResolveFlags(args []string, w io.Writer) (*resolveFlags, []string, error) {
	f := &resolveFlags{}
	fs := newFlagSet("resolve", w, printResolveUsage)
	addCommonFlags(fs, &f.common)
	addAssetFlags(fs, &f.asset)
	addDeclareFlag(fs, &f.declare)

	if err := parse(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseListFlags parses list command flags and returns positional args.
func parseListFlags(args []string, w io.Writer) (*listFlags, []string, error) {
	f := &listFlags{}
	fs := newFlagSet("list", w, printListUsage)
	fs.StringVarP(&f.format, "format", "f", "text", "output format: text, markdown, html")
	addCommonFlags(fs, &f.common)

	if err := parse(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseBrowseFlags parses browse command flags and returns positional args.
func parseBrowseFlags(args []string, w io.Writer) (*browseFlags, []string, error) {
	f := &browseFlags{}
	fs := newFlagSet("browse", w, printBrowseUsage)
	fs.StringVarP(&f.timeout, "timeout", "t", "", "page load and completion timeout (e.g., 30s, 2m)")
	addCommonFlags(fs, &f.common)
	addAssetFlags(fs, &f.asset)

	if err := parse(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
