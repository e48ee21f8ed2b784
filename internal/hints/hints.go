// Package hints provides actionable hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-docxgen/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	// Find a user config path (contains go-docxgen) to suggest
	for _, p := range searchedPaths {
		if strings.Contains(p, "go-docxgen") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForReportNotFound returns hints listing the reports that can be built.
func ForReportNotFound(available []string) string {
	if len(available) == 0 {
		return format("pass --asset-path with a reports/ directory")
	}
	return format("available: " + strings.Join(available, ", ") + "; add yours under <asset-path>/reports/")
}

// ForUndefinedVar returns hints for report variables without a value.
func ForUndefinedVar() string {
	return formatHints([]string{
		"define it under vars: in the report",
		"or pass --var name=value",
		"write $$ for a literal $",
	})
}

// ForOutputFile returns hints when a .docx output is given for several inputs.
func ForOutputFile() string {
	return format("pass a directory to --output when building several documents")
}

// ForOutputConflict returns hints when two inputs map to the same output file.
func ForOutputConflict() string {
	return formatHints([]string{
		"rename one of the inputs",
		"or give each report its own output: name",
	})
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
