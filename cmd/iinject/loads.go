package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/wpsmith/iinject"
	"github.com/wpsmith/iinject/internal/config"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage          = errors.New("invalid usage")
	ErrNoAssets       = errors.New("no assets to load")
	ErrReadPage       = errors.New("failed to read page")
	ErrReadInline     = errors.New("failed to read inline script")
	ErrWriteOutput    = errors.New("failed to write output")
	ErrInvalidURL     = errors.New("invalid page URL")
	ErrInvalidFormat  = errors.New("invalid output format")
	ErrInvalidTimeout = errors.New("invalid timeout")
	ErrUnknownCommand = errors.New("unknown command")
)

// File permission constants.
const filePermissions = 0o644 // rw-r--r--: owner read+write, others read

// loadRequest is one asset the CLI asks the loader for.
type loadRequest struct {
	name string
	opts *iinject.Options
}

// loadConfig resolves the config file: --config, then IINJECT_CONFIG, then
// defaults. Environment values fill fields the file leaves empty.
func loadConfig(flags *commonFlags, env *envConfig) (*config.Config, error) {
	cfg := config.DefaultConfig()

	name := flags.config
	if name == "" {
		name = env.ConfigPath
	}
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	applyEnvConfig(env, cfg)

	// CLI wins
	if flags.registry != "" {
		cfg.Registry.Path = flags.registry
	}
	return cfg, nil
}

// newLoader builds a loader over host using cfg's registry.
func newLoader(host iinject.Host, cfg *config.Config, minifyInline, verbose bool, stderr io.Writer) (*iinject.Loader, error) {
	var opts []iinject.Option
	if cfg.Registry.Path != "" {
		opts = append(opts, iinject.WithRegistryFile(cfg.Registry.Path))
	}
	if minifyInline || cfg.Output.MinifyInline {
		opts = append(opts, iinject.WithMinifiedInline())
	}
	if verbose {
		opts = append(opts, iinject.WithLogf(func(format string, args ...any) {
			fmt.Fprintf(stderr, format+"\n", args...)
		}))
	}
	return iinject.New(host, opts...)
}

// buildRequests turns positional names plus flag overrides into requests.
// Without names, the config's loads are used.
func buildRequests(names []string, af *assetFlags, cfg *config.Config) ([]loadRequest, error) {
	if len(names) == 0 {
		return requestsFromConfig(cfg.Loads)
	}

	inline, err := readInline(af.inline)
	if err != nil {
		return nil, err
	}

	reqs := make([]loadRequest, 0, len(names))
	for _, name := range names {
		opts := &iinject.Options{
			Src:          af.src,
			Method:       af.method,
			Exists:       af.exists,
			DependentVar: af.dependent,
			Inline:       inline,
		}
		if af.body {
			opts.InHead = iinject.Bool(false)
		}
		reqs = append(reqs, loadRequest{name: name, opts: opts})
	}
	return reqs, nil
}

func requestsFromConfig(loads []config.AssetLoad) ([]loadRequest, error) {
	if len(loads) == 0 {
		return nil, fmt.Errorf("%w: name assets as arguments or under loads: in a config", ErrNoAssets)
	}

	reqs := make([]loadRequest, 0, len(loads))
	for _, l := range loads {
		inline := l.Inline
		if l.InlineFile != "" {
			body, err := readInline("@" + l.InlineFile)
			if err != nil {
				return nil, err
			}
			inline = body
		}
		reqs = append(reqs, loadRequest{
			name: l.Name,
			opts: &iinject.Options{
				Src:          l.Src,
				Method:       l.Method,
				Exists:       l.Exists,
				InHead:       l.InHead,
				DependentVar: l.DependentVar,
				Inline:       inline,
			},
		})
	}
	return reqs, nil
}

// readInline returns s, or the content of the file named after a leading @.
func readInline(s string) (string, error) {
	path, ok := strings.CutPrefix(s, "@")
	if !ok {
		return s, nil
	}
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided script path
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadInline, err)
	}
	return string(data), nil
}

// declareGlobals marks symbols on page. "object.member" declares a member
// on object's call result.
func declareGlobals(page *iinject.Page, declared []string, cfg *config.Config) {
	page.Declare(cfg.Page.Globals...)
	for _, m := range cfg.Page.Members {
		page.DeclareMember(m.Object, m.Member)
	}
	for _, d := range declared {
		if object, member, ok := strings.Cut(d, "."); ok && object != "" && member != "" {
			page.DeclareMember(object, member)
			continue
		}
		page.Declare(d)
	}
}
