package assets

// defaultLoader is the package-level embedded loader.
var defaultLoader = NewEmbeddedLoader()

// LoadReport loads a built-in report definition by name.
// Returns ErrReportNotFound if the report does not exist.
// Returns ErrInvalidAssetName if the name contains path separators or traversal.
func LoadReport(name string) ([]byte, error) {
	return defaultLoader.LoadReport(name)
}

// ListReports returns the names of the built-in reports.
func ListReports() ([]string, error) {
	return defaultLoader.ListReports()
}
