package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed reports/*.yaml
var reports embed.FS

const reportsDir = "reports"

// EmbeddedLoader loads report definitions compiled into the binary.
// Implements ReportLoader interface.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadReport loads a report definition from embedded assets by name.
// The name should not include the .yaml extension.
func (e *EmbeddedLoader) LoadReport(name string) ([]byte, error) {
	if err := ValidateAssetName(name); err != nil {
		return nil, err
	}

	content, err := reports.ReadFile(path.Join(reportsDir, name+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrReportNotFound, name)
	}

	return content, nil
}

// ListReports returns the names of the embedded reports.
func (e *EmbeddedLoader) ListReports() ([]string, error) {
	matches, err := fs.Glob(reports, path.Join(reportsDir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAssetRead, err)
	}

	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(path.Base(m), ".yaml"))
	}
	sort.Strings(names)
	return names, nil
}

// Compile-time interface check.
var _ ReportLoader = (*EmbeddedLoader)(nil)
