package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// reportExtensions are tried in order.
var reportExtensions = []string{".yaml", ".yml"}

// FilesystemLoader loads report definitions from a directory.
// Implements ReportLoader interface.
type FilesystemLoader struct {
	basePath string
	fs       afero.Fs // rooted at basePath
}

// NewFilesystemLoader creates a FilesystemLoader for the given base path on fsys.
// Returns ErrInvalidBasePath if the path is not a valid, readable directory.
func NewFilesystemLoader(fsys afero.Fs, basePath string) (*FilesystemLoader, error) {
	if basePath == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}

	absPath, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}

	info, err := fsys.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: directory does not exist: %s", ErrInvalidBasePath, absPath)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: not a directory: %s", ErrInvalidBasePath, absPath)
	}

	// Verify read access by attempting to read directory
	if _, err := afero.ReadDir(fsys, absPath); err != nil {
		return nil, fmt.Errorf("%w: cannot read directory: %v", ErrInvalidBasePath, err)
	}

	return &FilesystemLoader{
		basePath: absPath,
		fs:       afero.NewBasePathFs(fsys, absPath),
	}, nil
}

// BasePath returns the absolute directory the loader reads from.
func (f *FilesystemLoader) BasePath() string {
	return f.basePath
}

// LoadReport loads a report definition from the filesystem.
// Looks for {basePath}/reports/{name}.yaml, then {name}.yml.
func (f *FilesystemLoader) LoadReport(name string) ([]byte, error) {
	if err := ValidateAssetName(name); err != nil {
		return nil, err
	}

	for _, ext := range reportExtensions {
		content, err := afero.ReadFile(f.fs, filepath.Join(string(filepath.Separator), reportsDir, name+ext))
		if err == nil {
			return content, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %v", ErrAssetRead, err)
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrReportNotFound, name)
}

// ListReports returns the names of the reports in {basePath}/reports.
// A missing reports directory yields an empty list.
func (f *FilesystemLoader) ListReports() ([]string, error) {
	entries, err := afero.ReadDir(f.fs, string(filepath.Separator)+reportsDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrAssetRead, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		base := strings.TrimSuffix(e.Name(), ext)
		if !isReportExtension(ext) || ValidateAssetName(base) != nil {
			continue
		}
		names = append(names, base)
	}
	sort.Strings(names)
	return names, nil
}

func isReportExtension(ext string) bool {
	for _, e := range reportExtensions {
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}

// Compile-time interface check.
var _ ReportLoader = (*FilesystemLoader)(nil)
