package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/wpsmith/iinject"
	"github.com/wpsmith/iinject/internal/report"
)

// Output formats accepted by list --format.
const (
	formatText     = "text"
	formatMarkdown = "markdown"
	formatHTML     = "html"
)

// runList prints the effective registry: built-in entries overlaid by the
// configured registry file.
func runList(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseListFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) > 0 {
		return fmt.Errorf("%w: list takes no arguments, got %q", ErrUsage, positional[0])
	}

	format := strings.ToLower(flags.format)
	switch format {
	case formatText, formatMarkdown, "md", formatHTML:
	default:
		return fmt.Errorf("%w: %q (valid: text, markdown, html)", ErrInvalidFormat, flags.format)
	}

	cfg, err := loadConfig(&flags.common, loadEnvConfig())
	if err != nil {
		return err
	}

	reg, err := iinject.LoadRegistry(cfg.Registry.Path)
	if err != nil {
		return err
	}
	if flags.common.verbose && cfg.Registry.Path != "" {
		fmt.Fprintf(env.Stderr, "registry: built-in + %s\n", cfg.Registry.Path)
	}

	if format == formatText {
		return report.Text(env.Stdout, reg)
	}

	md, err := report.Markdown(reg)
	if err != nil {
		return err
	}
	if format != formatHTML {
		_, err = fmt.Fprint(env.Stdout, md)
		return err
	}

	page, err := report.NewConverter().ToHTML(ctx, md)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(env.Stdout, page)
	return err
}
