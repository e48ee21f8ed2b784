package main

import (
	"errors"
	"os"

	"github.com/alnah/go-docxgen"
	"github.com/alnah/go-docxgen/internal/assets"
	"github.com/alnah/go-docxgen/internal/config"
	"github.com/alnah/go-docxgen/internal/dateutil"
	"github.com/alnah/go-docxgen/internal/logger"
	"github.com/alnah/go-docxgen/internal/report"
	"github.com/alnah/go-docxgen/internal/tablexport"
)

// Exit codes for docxgen CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful build
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, report definition, or validation
	ExitIO      = 3 // File not found, permission denied, write failure
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrInvalidVar) ||
		errors.Is(err, ErrUnsupportedInput) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, docxgen.ErrValidation) ||
		errors.Is(err, docxgen.ErrIndexOutOfRange) ||
		errors.Is(err, report.ErrParse) ||
		errors.Is(err, report.ErrBlock) ||
		errors.Is(err, report.ErrUndefinedVar) ||
		errors.Is(err, assets.ErrReportNotFound) ||
		errors.Is(err, assets.ErrInvalidAssetName) ||
		errors.Is(err, assets.ErrInvalidBasePath) ||
		errors.Is(err, dateutil.ErrInvalidDateFormat) ||
		errors.Is(err, dateutil.ErrUnknownLocale) ||
		errors.Is(err, logger.ErrInvalidLevel) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, docxgen.ErrWriteDocument) ||
		errors.Is(err, docxgen.ErrReadDocument) ||
		errors.Is(err, tablexport.ErrExport) ||
		errors.Is(err, assets.ErrAssetRead) {
		return ExitIO
	}

	return ExitGeneral
}
