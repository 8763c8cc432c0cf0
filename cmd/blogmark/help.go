package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: blogmark <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build      Render markdown posts to HTML")
	fmt.Fprintln(w, "  css        Print the code highlighting stylesheet")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'blogmark help <command>' for details on a specific command.")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: blogmark build <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render markdown posts to HTML fragments or standalone pages.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown file or directory (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory (default: next to each post)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "  -t, --timeout <d>         Per-post timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w, "      --drafts              Render posts marked draft: true")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "  -s, --standalone          Wrap posts in a full HTML page")
	fmt.Fprintln(w, "      --page-style <s>      Page stylesheet name or file path")
	fmt.Fprintln(w, "      --template <name>     Page template name")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom asset directory")
	fmt.Fprintln(w, "      --lang <tag>          Page language (default: en)")
	fmt.Fprintln(w, "      --css <path>          Extra CSS file appended to the stylesheet")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Code Blocks:")
	fmt.Fprintln(w, "      --style <name>        Highlighting style (see 'blogmark css --list')")
	fmt.Fprintln(w, "      --profile <name>      Fence meta profile: ranges, caption, prompt, chroma")
	fmt.Fprintln(w, "      --no-line-numbers     Hide line numbers")
	fmt.Fprintln(w, "      --no-line-highlight   Ignore {1,3-5} line highlights")
	fmt.Fprintln(w, "      --no-language         Hide the language label")
	fmt.Fprintln(w, "      --no-captions         Hide code block captions")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Directives and Markdown:")
	fmt.Fprintln(w, "      --tag <name>          Element wrapping callouts (default: aside)")
	fmt.Fprintln(w, "      --client-embeds       Emit <lite-youtube> instead of iframes")
	fmt.Fprintln(w, "      --toc-min-depth <n>   Min heading depth for TOC (1-6)")
	fmt.Fprintln(w, "      --toc-max-depth <n>   Max heading depth for TOC (1-6)")
	fmt.Fprintln(w, "      --emoji               Render :shortcode: emoji")
	fmt.Fprintln(w, "      --unsafe              Pass raw HTML through")
	fmt.Fprintln(w, "      --no-rewrite-links    Keep links to .md files as written")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Dates:")
	fmt.Fprintln(w, "      --timezone <zone>     Zone for dates without offset (default: GMT)")
	fmt.Fprintln(w, "      --date-format <s>     Page date format or preset: iso, european, us, long")
	fmt.Fprintln(w, "                            Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug logs and timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  BLOGMARK_CONFIG, BLOGMARK_STYLE, BLOGMARK_PAGE_STYLE, BLOGMARK_TIMEOUT,")
	fmt.Fprintln(w, "  BLOGMARK_INPUT_DIR, BLOGMARK_OUTPUT_DIR, BLOGMARK_TIMEZONE, BLOGMARK_WORKERS")
}

// printCSSUsage prints usage for the css command.
func printCSSUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: blogmark css [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the code highlighting stylesheet.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --style <name>        Highlighting style (default: github)")
	fmt.Fprintln(w, "      --list                List highlighting styles")
	fmt.Fprintln(w, "      --page                Prepend the page stylesheet")
	fmt.Fprintln(w, "      --page-style <s>      Page stylesheet name or file path")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom asset directory")
	fmt.Fprintln(w, "  -o, --output <path>       Write to file instead of stdout")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return nil
	}

	switch args[0] {
	case "build":
		printBuildUsage(env.Stdout)
	case "css":
		printCSSUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: blogmark version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: blogmark help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		printUsage(env.Stderr)
		return fmt.Errorf("%w: unknown command %q", ErrUsage, args[0])
	}
	return nil
}
