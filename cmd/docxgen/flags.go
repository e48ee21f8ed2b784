package main

import (
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
	logJSON bool
}

// documentFlags holds document-wide formatting and metadata flags.
type documentFlags struct {
	font     string
	fontSize float64
	locale   string
	author   string
}

// pageFlags holds page layout flags.
type pageFlags struct {
	size        string
	orientation string
	margin      float64
}

// footerFlags holds footer-related flags.
type footerFlags struct {
	text       string
	align      string
	italic     bool
	pageNumber bool
	disabled   bool
}

// markdownFlags holds flags that only affect Markdown inputs.
type markdownFlags struct {
	codeFont     string
	codeStyle    string
	titleHeading bool
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	common     commonFlags
	output     string
	workers    int
	assetPath  string
	vars       []string
	tablesXLSX bool
	document   documentFlags
	page       pageFlags
	footer     footerFlags
	markdown   markdownFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logs and timing")
	fs.BoolVar(&f.logJSON, "log-json", false, "write logs as JSON")
}

// addDocumentFlags adds document flags to a FlagSet.
func addDocumentFlags(fs *flag.FlagSet, f *documentFlags) {
	fs.StringVar(&f.font, "font", "", "default run font (e.g. Calibri)")
	fs.Float64Var(&f.fontSize, "font-size", 0, "default font size in points")
	fs.StringVar(&f.locale, "locale", "", "month names for auto dates: en, tr")
	fs.StringVar(&f.author, "author", "", "document author")
}

// addPageFlags adds page layout flags to a FlagSet.
func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.StringVarP(&f.size, "page-size", "p", "", "page size: letter, a4, legal")
	fs.StringVar(&f.orientation, "orientation", "", "page orientation: portrait, landscape")
	fs.Float64Var(&f.margin, "margin", 0, "page margin in inches (0.25-3.0)")
}

// addFooterFlags adds footer flags to a FlagSet.
func addFooterFlags(fs *flag.FlagSet, f *footerFlags) {
	fs.StringVar(&f.text, "footer-text", "", "footer text")
	fs.StringVar(&f.align, "footer-align", "", "footer alignment: left, center, right, justify")
	fs.BoolVar(&f.italic, "footer-italic", false, "italicize footer text")
	fs.BoolVar(&f.pageNumber, "footer-page-number", false, "show page numbers in footer")
	fs.BoolVar(&f.disabled, "no-footer", false, "disable footer")
}

// addMarkdownFlags adds Markdown input flags to a FlagSet.
func addMarkdownFlags(fs *flag.FlagSet, f *markdownFlags) {
	fs.StringVar(&f.codeFont, "code-font", "", "font for code spans and blocks (default: Consolas)")
	fs.StringVar(&f.codeStyle, "code-style", "", "chroma style for code blocks (default: github)")
	fs.BoolVar(&f.titleHeading, "title-heading", false, "render the first H1 as the document title")
}

// parseBuildFlags parses build command flags and returns positional args.
func parseBuildFlags(args []string, env *Environment) (*buildFlags, []string, error) {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	f := &buildFlags{}

	// I/O flags
	fs.StringVarP(&f.output, "output", "o", "", "output .docx file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVar(&f.assetPath, "asset-path", "", "directory with custom reports/")
	fs.StringArrayVar(&f.vars, "var", nil, "report variable as key=value (repeatable)")
	fs.BoolVar(&f.tablesXLSX, "tables-xlsx", false, "also export document tables to <output>.xlsx")

	// Flag groups
	addCommonFlags(fs, &f.common)
	addDocumentFlags(fs, &f.document)
	addPageFlags(fs, &f.page)
	addFooterFlags(fs, &f.footer)
	addMarkdownFlags(fs, &f.markdown)

	fs.Usage = func() { printBuildUsage(env.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, parseError(err)
	}

	return f, fs.Args(), nil
}

// parseInspectFlags parses inspect command flags and returns positional args.
func parseInspectFlags(args []string, env *Environment) (*commonFlags, []string, error) {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	f := &commonFlags{}
	addCommonFlags(fs, f)
	fs.Usage = func() { printInspectUsage(env.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, parseError(err)
	}
	return f, fs.Args(), nil
}

// reportsFlags holds flags for the reports command.
type reportsFlags struct {
	common    commonFlags
	assetPath string
}

// parseReportsFlags parses reports command flags and returns positional args.
func parseReportsFlags(args []string, env *Environment) (*reportsFlags, []string, error) {
	fs := flag.NewFlagSet("reports", flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	f := &reportsFlags{}
	addCommonFlags(fs, &f.common)
	fs.StringVar(&f.assetPath, "asset-path", "", "directory with custom reports/")
	fs.Usage = func() { printReportsUsage(env.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, parseError(err)
	}
	return f, fs.Args(), nil
}

// parseError tags pflag failures as usage errors. flag.ErrHelp passes through
// so -h exits cleanly.
func parseError(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUsage, err)
}
