package assets

import (
	"errors"
	"sort"

	"github.com/spf13/afero"
)

// Resolver combines custom and embedded loaders with fallback logic.
// When a custom loader is configured, it tries custom first, then falls back
// to embedded if the report is not found in the custom location.
type Resolver struct {
	custom   ReportLoader // nil if no custom path configured
	embedded ReportLoader
}

// NewResolver creates a Resolver.
// If customBasePath is empty, only embedded reports are used.
// If customBasePath is set, custom reports take precedence with fallback to embedded.
// Returns error if customBasePath is set but invalid.
func NewResolver(fsys afero.Fs, customBasePath string) (*Resolver, error) {
	resolver := &Resolver{
		embedded: NewEmbeddedLoader(),
	}

	if customBasePath != "" {
		fsLoader, err := NewFilesystemLoader(fsys, customBasePath)
		if err != nil {
			return nil, err
		}
		resolver.custom = fsLoader
	}

	return resolver, nil
}

// LoadReport loads a report definition, trying the custom loader first if available.
func (r *Resolver) LoadReport(name string) ([]byte, error) {
	if r.custom == nil {
		return r.embedded.LoadReport(name)
	}

	content, err := r.custom.LoadReport(name)
	if err == nil {
		return content, nil
	}

	// Only fall back for "not found" errors, not validation or I/O errors
	if !errors.Is(err, ErrReportNotFound) {
		return nil, err
	}

	return r.embedded.LoadReport(name)
}

// ListReports returns the union of custom and embedded report names, sorted.
func (r *Resolver) ListReports() ([]string, error) {
	names, err := r.embedded.ListReports()
	if err != nil {
		return nil, err
	}
	if r.custom == nil {
		return names, nil
	}

	custom, err := r.custom.ListReports()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(names)+len(custom))
	merged := make([]string, 0, len(names)+len(custom))
	for _, n := range append(names, custom...) {
		if !seen[n] {
			seen[n] = true
			merged = append(merged, n)
		}
	}
	sort.Strings(merged)
	return merged, nil
}

// HasCustomLoader returns true if a custom report loader is configured.
func (r *Resolver) HasCustomLoader() bool {
	return r.custom != nil
}

// Compile-time interface check.
var _ ReportLoader = (*Resolver)(nil)
