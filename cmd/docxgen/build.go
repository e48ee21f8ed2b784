package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/afero"

	"github.com/alnah/go-docxgen"
	"github.com/alnah/go-docxgen/internal/assets"
	"github.com/alnah/go-docxgen/internal/config"
	"github.com/alnah/go-docxgen/internal/fileutil"
	"github.com/alnah/go-docxgen/internal/hints"
	"github.com/alnah/go-docxgen/internal/logger"
	"github.com/alnah/go-docxgen/internal/markdown"
	"github.com/alnah/go-docxgen/internal/report"
	"github.com/alnah/go-docxgen/internal/tablexport"
)

// File permission constants.
const (
	dirPermissions = 0o750 // rwxr-x---: owner full, group read+execute
)

// errOutputDir reports a failure to create the output directory.
var errOutputDir = fmt.Errorf("%w: creating output directory", docxgen.ErrWriteDocument)

// buildParams groups settings shared by every job of a build.
type buildParams struct {
	fs         afero.Fs
	cfg        *config.Config
	loader     assets.ReportLoader
	now        time.Time
	locale     string // --locale: wins over the report's locale
	author     string // --author: wins over the report's author
	vars       map[string]string
	defaults   []docxgen.Option // config file and environment
	overrides  []docxgen.Option // CLI flags
	markdown   []markdown.Option
	tablesXLSX bool
	log        logger.Logger
	outputs    outputClaims
}

// runBuild orchestrates the build command.
func runBuild(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseBuildFlags(args, env)
	if err != nil {
		return err
	}

	// Validate worker count early
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}
	vars, err := parseVars(flags.vars)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(env, flags.common.config)
	if err != nil {
		return err
	}

	// Merge CLI flags into config (CLI wins)
	mergeFlags(flags, cfg)
	log := env.logFor(cfg).With("cmd", "build")

	jobs, err := discoverJobs(env.FS, positional, flags.output)
	if err != nil {
		return err
	}

	loader, err := reportLoader(env, cfg)
	if err != nil {
		return err
	}

	overrides, err := flagOptions(flags, cfg)
	if err != nil {
		return err
	}

	params := &buildParams{
		fs:         env.FS,
		cfg:        cfg,
		loader:     loader,
		now:        env.Now(),
		locale:     flags.document.locale,
		author:     flags.document.author,
		vars:       vars,
		defaults:   configOptions(cfg),
		overrides:  overrides,
		markdown:   markdownOptions(&flags.markdown),
		tablesXLSX: cfg.Export.TablesXLSX,
		log:        log,
	}
	params.defaults = append(params.defaults, docxgen.WithCreated(params.now))

	workers := resolvePoolSize(cfg.Build.Workers)
	log.Debug("starting build", "documents", len(jobs), "workers", workers)

	results := buildBatch(ctx, workers, jobs, params)
	return summarize(results, flags.common.quiet, flags.common.verbose, env)
}

// loadConfig resolves the configuration: injected config, --config, or
// DOCXGEN_CONFIG, then environment overrides. Environment values are
// validated like file values.
func loadConfig(env *Environment, flagPath string) (*config.Config, error) {
	envCfg := loadEnvConfig()
	warnUnknownEnvVars(env.logger())

	var cfg *config.Config
	switch name := firstNonEmpty(flagPath, envCfg.ConfigPath); {
	case env.Config != nil:
		c := *env.Config
		cfg = &c
	case name != "":
		loaded, err := config.LoadConfigFS(env.FS, name)
		if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
		}
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	default:
		cfg = config.DefaultConfig()
	}

	applyEnvConfig(envCfg, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}
	return cfg, nil
}

// mergeFlags applies CLI flags that are not document formatting to config.
func mergeFlags(flags *buildFlags, cfg *config.Config) {
	if flags.output != "" && !isDocxPath(flags.output) {
		cfg.Output.DefaultDir = flags.output
	}
	if flags.assetPath != "" {
		cfg.Assets.BasePath = flags.assetPath
	}
	if flags.tablesXLSX {
		cfg.Export.TablesXLSX = true
	}
	if flags.workers > 0 {
		cfg.Build.Workers = flags.workers
	}
	mergeLogFlags(&flags.common, cfg)
}

// mergeLogFlags maps --verbose/--quiet/--log-json onto the log config.
// --quiet wins when both are set.
func mergeLogFlags(flags *commonFlags, cfg *config.Config) {
	if flags.verbose {
		cfg.Log.Level = string(logger.DebugLevel)
	}
	if flags.quiet {
		cfg.Log.Level = string(logger.ErrorLevel)
	}
	if flags.logJSON {
		cfg.Log.JSON = true
	}
}

// reportLoader returns the injected loader or a resolver over the custom
// asset directory and the embedded reports.
func reportLoader(env *Environment, cfg *config.Config) (assets.ReportLoader, error) {
	if env.Assets != nil {
		return env.Assets, nil
	}
	r, err := assets.NewResolver(env.FS, cfg.Assets.BasePath)
	if err != nil {
		return nil, fmt.Errorf("asset path: %w", err)
	}
	return r, nil
}

// configOptions converts config file and environment values to document
// options. Reports may override them.
func configOptions(cfg *config.Config) []docxgen.Option {
	var opts []docxgen.Option
	if cfg.Document.Font != "" {
		opts = append(opts, docxgen.WithFont(cfg.Document.Font))
	}
	if cfg.Document.FontSize != 0 {
		opts = append(opts, docxgen.WithFontSize(cfg.Document.FontSize))
	}
	if cfg.Page != (config.PageConfig{}) {
		opts = append(opts, docxgen.WithPageSettings(pageSettings(cfg.Page)))
	}
	if cfg.Footer.Enabled {
		opts = append(opts, docxgen.WithFooter(footer(cfg.Footer)))
	}
	return opts
}

// flagOptions converts explicitly set CLI flags to document options. They
// are applied after the report's own settings. Partially specified page and
// footer flags are completed from config.
func flagOptions(flags *buildFlags, cfg *config.Config) ([]docxgen.Option, error) {
	var opts []docxgen.Option
	if flags.document.font != "" {
		opts = append(opts, docxgen.WithFont(flags.document.font))
	}
	if flags.document.fontSize != 0 {
		opts = append(opts, docxgen.WithFontSize(flags.document.fontSize))
	}

	p := flags.page
	if p.size != "" || p.orientation != "" || p.margin != 0 {
		page := cfg.Page
		page.Size = firstNonEmpty(p.size, page.Size)
		page.Orientation = firstNonEmpty(p.orientation, page.Orientation)
		if p.margin != 0 {
			page.Margin = p.margin
		}
		opts = append(opts, docxgen.WithPageSettings(pageSettings(page)))
	}

	f := flags.footer
	switch {
	case f.disabled && (f.text != "" || f.pageNumber):
		return nil, fmt.Errorf("%w: --no-footer conflicts with --footer-text and --footer-page-number", ErrUsage)
	case f.disabled:
		opts = append(opts, docxgen.WithFooter(nil))
	case f.text != "" || f.align != "" || f.italic || f.pageNumber:
		footerCfg := cfg.Footer
		footerCfg.Text = firstNonEmpty(f.text, footerCfg.Text)
		footerCfg.Align = firstNonEmpty(f.align, footerCfg.Align)
		footerCfg.Italic = footerCfg.Italic || f.italic
		footerCfg.PageNumber = footerCfg.PageNumber || f.pageNumber
		opts = append(opts, docxgen.WithFooter(footer(footerCfg)))
	}
	return opts, nil
}

func pageSettings(p config.PageConfig) *docxgen.PageSettings {
	return &docxgen.PageSettings{
		Size:        strings.ToLower(p.Size),
		Orientation: strings.ToLower(p.Orientation),
		Margin:      p.Margin,
	}
}

func footer(f config.FooterConfig) *docxgen.Footer {
	return &docxgen.Footer{
		Text:           f.Text,
		Align:          docxgen.Alignment(strings.ToLower(f.Align)),
		Italic:         f.Italic,
		ShowPageNumber: f.PageNumber,
	}
}

func markdownOptions(f *markdownFlags) []markdown.Option {
	var opts []markdown.Option
	if f.codeFont != "" {
		opts = append(opts, markdown.WithCodeFont(f.codeFont))
	}
	if f.codeStyle != "" {
		opts = append(opts, markdown.WithCodeStyle(f.codeStyle))
	}
	if f.titleHeading {
		opts = append(opts, markdown.WithTitleHeading())
	}
	return opts
}

// buildDocument loads one input and assembles its document. It returns the
// file name the input asks for.
func (p *buildParams) buildDocument(ctx context.Context, job buildJob) (*docxgen.Document, string, error) {
	switch job.Kind {
	case kindReport, kindReportFile:
		r, err := p.loadReport(job)
		if err != nil {
			return nil, "", err
		}
		doc, err := r.Build(report.BuildOptions{
			Now:       p.now,
			Locale:    p.locale,
			Vars:      p.vars,
			Defaults:  p.defaults,
			Overrides: p.overrides,
		})
		if err != nil {
			return nil, "", err
		}
		return doc, r.OutputName(), nil
	case kindMarkdown:
		return p.buildMarkdown(ctx, job)
	}
	return nil, "", fmt.Errorf("%w: %s", ErrUnsupportedInput, job.Input)
}

// loadReport reads and parses a report definition. Config supplies the
// author and locale when the report leaves them empty.
func (p *buildParams) loadReport(job buildJob) (*report.Report, error) {
	var data []byte
	var err error
	if job.Kind == kindReport {
		data, err = p.loader.LoadReport(job.Input)
	} else {
		data, err = afero.ReadFile(p.fs, job.Input)
		if err != nil {
			err = fmt.Errorf("%w: %w", ErrReadInput, err)
		}
	}
	if err != nil {
		return nil, err
	}

	r, err := report.Parse(data)
	if err != nil {
		return nil, err
	}
	switch {
	case p.author != "":
		r.Metadata.Author = p.author
	case r.Metadata.Author == "":
		r.Metadata.Author = p.cfg.Document.Author
	}
	if r.Document.Locale == "" {
		r.Document.Locale = p.cfg.Document.Locale
	}
	return r, nil
}

// buildMarkdown converts a Markdown file. The title comes from the first H1,
// else the file name.
func (p *buildParams) buildMarkdown(ctx context.Context, job buildJob) (*docxgen.Document, string, error) {
	src, err := afero.ReadFile(p.fs, job.Input)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrReadInput, err)
	}

	base := strings.TrimSuffix(filepath.Base(job.Input), filepath.Ext(job.Input))
	meta := docxgen.Metadata{
		Title:  firstNonEmpty(extractFirstHeading(string(src)), base),
		Author: firstNonEmpty(p.author, p.cfg.Document.Author),
	}

	opts := make([]docxgen.Option, 0, len(p.defaults)+len(p.overrides)+1)
	opts = append(opts, p.defaults...)
	opts = append(opts, docxgen.WithMetadata(meta))
	opts = append(opts, p.overrides...)

	doc, err := docxgen.NewDocument(opts...)
	if err != nil {
		return nil, "", err
	}
	if err := markdown.New(p.markdown...).Convert(ctx, src, doc); err != nil {
		return nil, "", err
	}
	return doc, base + ".docx", nil
}

// writeOutputs saves the document and, when enabled, its tables workbook.
func (p *buildParams) writeOutputs(doc *docxgen.Document, out string) error {
	if dir := filepath.Dir(out); !fileutil.DirExists(p.fs, dir) {
		if err := p.fs.MkdirAll(dir, dirPermissions); err != nil {
			return fmt.Errorf("%w %s: %w", errOutputDir, dir, err)
		}
	}
	if err := doc.SaveFS(p.fs, out); err != nil {
		return err
	}
	if !p.tablesXLSX {
		return nil
	}

	xlsx := strings.TrimSuffix(out, filepath.Ext(out)) + ".xlsx"
	err := tablexport.WriteFile(p.fs, xlsx, doc)
	switch {
	case errors.Is(err, tablexport.ErrNoTables):
		p.log.Warn("no tables to export", "output", out)
		return nil
	case err != nil:
		return err
	}
	p.log.Info("tables exported", "path", xlsx, "sheets", len(tablexport.Sheets(doc)))
	return nil
}

// firstHeadingPattern matches the first # heading in markdown content.
var firstHeadingPattern = regexp.MustCompile(`(?m)^#\s+(.+)$`)

// extractFirstHeading extracts the first # heading from markdown content.
func extractFirstHeading(markdown string) string {
	matches := firstHeadingPattern.FindStringSubmatch(markdown)
	if len(matches) >= 2 {
		return strings.TrimSpace(matches[1])
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
