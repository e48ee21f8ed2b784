package assets

// ReportLoader defines the contract for loading report definitions.
type ReportLoader interface {
	// LoadReport loads a report definition by name (without extension).
	// Returns ErrReportNotFound if the report doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadReport(name string) ([]byte, error)

	// ListReports returns the names of the available reports, sorted.
	ListReports() ([]string, error)
}
