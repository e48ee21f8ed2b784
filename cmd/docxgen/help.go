package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: docxgen <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build      Build .docx documents from reports or markdown")
	fmt.Fprintln(w, "  inspect    Print the block outline of a .docx file")
	fmt.Fprintln(w, "  reports    List built-in reports or print one")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'docxgen help <command>' for details on a specific command.")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: docxgen build [input...] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build Word documents.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Report name, .yaml report file, .md file, or directory")
	fmt.Fprintln(w, "           (default: the built-in \"novabank\" report)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output .docx file (single input) or directory")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "      --asset-path <dir>    Directory with custom reports/")
	fmt.Fprintln(w, "      --var <key=value>     Report variable (repeatable)")
	fmt.Fprintln(w, "                            \"auto\" or \"auto:FORMAT\" resolves to today's date")
	fmt.Fprintln(w, "                            Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D")
	fmt.Fprintln(w, "      --tables-xlsx         Also export tables to <output>.xlsx")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "      --font <s>            Default run font")
	fmt.Fprintln(w, "      --font-size <f>       Default font size in points")
	fmt.Fprintln(w, "      --locale <s>          Month names for auto dates: en, tr")
	fmt.Fprintln(w, "      --author <s>          Document author")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "  -p, --page-size <s>       Page size: letter, a4, legal")
	fmt.Fprintln(w, "      --orientation <s>     Orientation: portrait, landscape")
	fmt.Fprintln(w, "      --margin <f>          Margin in inches (0.25-3.0)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Footer:")
	fmt.Fprintln(w, "      --footer-text <s>     Footer text")
	fmt.Fprintln(w, "      --footer-align <s>    Alignment: left, center, right, justify")
	fmt.Fprintln(w, "      --footer-italic       Italic footer text")
	fmt.Fprintln(w, "      --footer-page-number  Show page numbers")
	fmt.Fprintln(w, "      --no-footer           Disable footer")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Markdown:")
	fmt.Fprintln(w, "      --code-font <s>       Font for code (default: Consolas)")
	fmt.Fprintln(w, "      --code-style <s>      Chroma style for code blocks (default: github)")
	fmt.Fprintln(w, "      --title-heading       Render the first H1 as the document title")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug logs and timing")
	fmt.Fprintln(w, "      --log-json            Write logs as JSON")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  DOCXGEN_CONFIG, DOCXGEN_OUTPUT_DIR, DOCXGEN_ASSET_PATH, DOCXGEN_FONT,")
	fmt.Fprintln(w, "  DOCXGEN_FONT_SIZE, DOCXGEN_LOCALE, DOCXGEN_AUTHOR, DOCXGEN_LOG_LEVEL,")
	fmt.Fprintln(w, "  DOCXGEN_WORKERS (a .env file in the working directory is loaded first)")
}

// printInspectUsage prints usage for the inspect command.
func printInspectUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: docxgen inspect <file.docx>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the block outline of a .docx file, one block per line.")
}

// printReportsUsage prints usage for the reports command.
func printReportsUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: docxgen reports [name] [--asset-path <dir>]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "List available reports, or print the definition of one report.")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "build":
		printBuildUsage(env.Stdout)
	case "inspect":
		printInspectUsage(env.Stdout)
	case "reports":
		printReportsUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: docxgen version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: docxgen help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
