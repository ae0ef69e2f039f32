package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: iinject <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  inject     Add assets to a static HTML page")
	fmt.Fprintln(w, "  resolve    Show what would be loaded, without loading it")
	fmt.Fprintln(w, "  list       Show the asset registry")
	fmt.Fprintln(w, "  browse     Load assets into a live page in headless Chrome")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'iinject help <command>' for details on a specific command.")
}

// printCommonUsage prints flags every command accepts.
func printCommonUsage(w io.Writer) {
	fmt.Fprintln(w, "Common:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --registry <path>     Registry overlay YAML file")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show loader progress")
}

// printAssetUsage prints the per-load override flags.
func printAssetUsage(w io.Writer) {
	fmt.Fprintln(w, "Asset:")
	fmt.Fprintln(w, "      --src <url>           Asset URL (overrides the registry)")
	fmt.Fprintln(w, "      --method <s>          Injection method: js, css, inlineJS")
	fmt.Fprintln(w, "      --exists <symbol>     Global that marks the asset as present")
	fmt.Fprintln(w, "      --body                Append to <body> instead of <head>")
	fmt.Fprintln(w, "      --dependent <symbol>  Global of a prerequisite registry asset")
	fmt.Fprintln(w, "      --inline <s>          Inline script body, or @file")
}

// printInjectUsage prints usage for the inject command.
func printInjectUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: iinject inject <page> [name...] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Add assets to a static HTML page. Registry dependencies are added first;")
	fmt.Fprintln(w, "assets whose global is declared are left out.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  page     HTML file, or - for stdin")
	fmt.Fprintln(w, "  name     Asset names (optional if config has loads)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "      --declare <symbol>    Global the page already defines; obj.member")
	fmt.Fprintln(w, "                            declares a member (repeatable)")
	fmt.Fprintln(w, "  -o, --output <path>       Output file (default: stdout)")
	fmt.Fprintln(w, "      --minify              Minify the page and inline scripts")
	fmt.Fprintln(w)
	printAssetUsage(w)
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printResolveUsage prints usage for the resolve command.
func printResolveUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: iinject resolve [name...] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the resolved descriptor for each asset as YAML, dependency included.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "      --declare <symbol>    Global to treat as defined (repeatable)")
	fmt.Fprintln(w)
	printAssetUsage(w)
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printListUsage prints usage for the list command.
func printListUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: iinject list [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Show the built-in registry merged with any registry file.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -f, --format <s>          Format: text, markdown, html (default: text)")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printBrowseUsage prints usage for the browse command.
func printBrowseUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: iinject browse <url> [name...] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Open url in headless Chrome, load assets into it, and wait for each")
	fmt.Fprintln(w, "script's load event.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Browser:")
	fmt.Fprintln(w, "  -t, --timeout <d>         Page load and load-event timeout (default: 30s)")
	fmt.Fprintln(w)
	printAssetUsage(w)
	fmt.Fprintln(w)
	printCommonUsage(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  IINJECT_TIMEOUT           Default timeout")
	fmt.Fprintln(w, "  ROD_BROWSER_BIN           Chrome binary")
	fmt.Fprintln(w, "  ROD_NO_SANDBOX=1          Disable the Chrome sandbox (Docker/CI)")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "inject":
		printInjectUsage(env.Stdout)
	case "resolve":
		printResolveUsage(env.Stdout)
	case "list":
		printListUsage(env.Stdout)
	case "browse":
		printBrowseUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: iinject version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: iinject help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
