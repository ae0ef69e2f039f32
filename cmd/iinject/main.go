package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/wpsmith/iinject"
	"github.com/wpsmith/iinject/internal/config"
	"github.com/wpsmith/iinject/internal/hints"
	"github.com/wpsmith/iinject/internal/registry"
)

// Version is set at build time via ldflags.
var Version = "dev"

// commandFunc runs one subcommand.
type commandFunc func(ctx context.Context, args []string, env *Environment) error

var commands = map[string]commandFunc{
	"inject":  runInject,
	"resolve": runResolve,
	"list":    runList,
	"browse":  runBrowse,
}

func main() {
	ctx, stop := notifyContext(context.Background())
	defer stop()

	// Configure GOMAXPROCS with conditional logging
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if hasVerbose(os.Args) {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	code := runMain(ctx, os.Args, DefaultEnv())
	stop()
	os.Exit(code)
}

// runMain dispatches args[1] and returns the process exit code.
func runMain(ctx context.Context, args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	name, rest := args[1], args[2:]
	switch name {
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "iinject %s\n", Version)
		return ExitSuccess
	case "help", "-h", "--help":
		runHelp(rest, env)
		return ExitSuccess
	}

	cmd, ok := commands[name]
	if !ok {
		err := fmt.Errorf("%w: %s", ErrUnknownCommand, name)
		fmt.Fprintln(env.Stderr, err)
		printUsage(env.Stderr)
		return ExitUsage
	}

	err := cmd(ctx, rest, env)
	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// isCommand reports whether s names a subcommand.
func isCommand(s string) bool {
	_, ok := commands[s]
	return ok || s == "version" || s == "help"
}

// hasVerbose reports whether args request verbose output.
func hasVerbose(args []string) bool {
	return slices.Contains(args, "-v") || slices.Contains(args, "--verbose")
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error) string {
	switch {
	case errors.Is(err, iinject.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, iinject.ErrPageLoad),
		errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(triedPaths(err))
	case errors.Is(err, ErrWriteOutput):
		return hints.ForOutputDirectory()
	case errors.Is(err, iinject.ErrUnknownMethod):
		return hints.ForUnknownMethod(iinject.MethodNames())
	case errors.Is(err, iinject.ErrInvalidRegistry):
		return hints.ForRegistryFile()
	case errors.Is(err, iinject.ErrInvalidSource):
		var names []string
		if reg, regErr := registry.Default(); regErr == nil {
			names = reg.Names()
		}
		return hints.ForUnknownAsset(names)
	}
	return ""
}

// triedPaths extracts the searched locations from a config lookup error.
func triedPaths(err error) []string {
	_, list, ok := strings.Cut(err.Error(), "tried ")
	if !ok {
		return nil
	}
	return strings.Split(list, ", ")
}
