package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/alnah/go-docxgen/internal/assets"
	"github.com/alnah/go-docxgen/internal/config"
)

// Sentinel errors for input discovery.
var (
	ErrNoInput            = errors.New("no buildable input found")
	ErrReadInput          = errors.New("failed to read input")
	ErrUnsupportedInput   = errors.New("input must be a report name, .yaml/.yml report, or .md/.markdown file")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrInvalidVar         = errors.New("invalid variable")

	// ErrOutputConflict indicates two inputs resolve to the same output file.
	ErrOutputConflict = fmt.Errorf("%w: output path conflict", ErrUsage)

	errOutputFile = fmt.Errorf("%w: --output names a single .docx file", ErrUsage)
)

// defaultReport is built when no input is given.
const defaultReport = "novabank"

// inputKind tells how a build job's input is loaded.
type inputKind int

const (
	kindReport     inputKind = iota // report name, resolved through the asset loader
	kindReportFile                  // YAML report definition on disk
	kindMarkdown                    // Markdown file on disk
)

func (k inputKind) String() string {
	switch k {
	case kindReport:
		return "report"
	case kindReportFile:
		return "report file"
	case kindMarkdown:
		return "markdown"
	}
	return "unknown"
}

// buildJob represents a single document to build.
type buildJob struct {
	Input  string
	Kind   inputKind
	Output string // explicit .docx path; empty means derived
	RelDir string // subdirectory of a walked input directory
}

// outputPath determines the .docx path for the job. name is the file name
// chosen by the input (report output name or markdown base name).
func (j buildJob) outputPath(outputDir, name string) string {
	if j.Output != "" {
		return j.Output
	}
	if outputDir != "" {
		return filepath.Join(outputDir, j.RelDir, name)
	}
	if j.Kind == kindReport {
		return name
	}
	return filepath.Join(filepath.Dir(j.Input), name)
}

// discoverJobs expands positional arguments into build jobs. Directories are
// walked for report and markdown files; arguments that do not exist on disk
// and look like asset names are treated as report names.
func discoverJobs(fsys afero.Fs, args []string, output string) ([]buildJob, error) {
	if len(args) == 0 {
		args = []string{defaultReport}
	}

	var jobs []buildJob
	for _, arg := range args {
		info, err := fsys.Stat(arg)
		switch {
		case err == nil && info.IsDir():
			found, err := walkInputs(fsys, arg)
			if err != nil {
				return nil, err
			}
			if len(found) == 0 {
				return nil, fmt.Errorf("%w in %s", ErrNoInput, arg)
			}
			jobs = append(jobs, found...)
		case err == nil:
			kind, err := kindOf(arg)
			if err != nil {
				return nil, err
			}
			jobs = append(jobs, buildJob{Input: arg, Kind: kind})
		case os.IsNotExist(err) && assets.ValidateAssetName(arg) == nil:
			jobs = append(jobs, buildJob{Input: arg, Kind: kindReport})
		default:
			return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
		}
	}

	if isDocxPath(output) {
		if len(jobs) != 1 {
			return nil, fmt.Errorf("%w: %s, but %d documents would be built", errOutputFile, output, len(jobs))
		}
		jobs[0].Output = output
	}
	return jobs, nil
}

// walkInputs collects buildable files under root in lexical order.
// Unsupported files are skipped.
func walkInputs(fsys afero.Fs, root string) ([]buildJob, error) {
	var jobs []buildJob
	err := afero.Walk(fsys, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fmt.Errorf("%w: scanning %s: %w", ErrReadInput, path, err)
		}
		if info.IsDir() {
			return nil
		}
		kind, err := kindOf(path)
		if err != nil {
			return nil
		}
		rel, err := filepath.Rel(root, filepath.Dir(path))
		if err != nil {
			rel = ""
		}
		jobs = append(jobs, buildJob{Input: path, Kind: kind, RelDir: rel})
		return nil
	})
	return jobs, err
}

// kindOf classifies a file by extension (case-insensitive).
func kindOf(path string) (inputKind, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return kindReportFile, nil
	case ".md", ".markdown":
		return kindMarkdown, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnsupportedInput, path)
}

// isDocxPath reports whether p names a .docx file rather than a directory.
func isDocxPath(p string) bool {
	return strings.EqualFold(filepath.Ext(p), ".docx")
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > config.MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, config.MaxWorkers)
	}
	return nil
}

// parseVars turns repeated key=value flags into a map. Later keys win.
func parseVars(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	vars := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: %q (want key=value)", ErrInvalidVar, pair)
		}
		vars[key] = value
	}
	return vars, nil
}
