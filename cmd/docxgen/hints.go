package main

import (
	"errors"

	"github.com/alnah/go-docxgen/internal/assets"
	"github.com/alnah/go-docxgen/internal/hints"
	"github.com/alnah/go-docxgen/internal/report"
)

// hintFor returns an actionable hint to print after err, or "".
func hintFor(err error, env *Environment) string {
	switch {
	case errors.Is(err, assets.ErrReportNotFound):
		loader := env.Assets
		if loader == nil {
			loader = assets.NewEmbeddedLoader()
		}
		names, _ := loader.ListReports()
		return hints.ForReportNotFound(names)
	case errors.Is(err, report.ErrUndefinedVar):
		return hints.ForUndefinedVar()
	case errors.Is(err, errOutputFile):
		return hints.ForOutputFile()
	case errors.Is(err, ErrOutputConflict):
		return hints.ForOutputConflict()
	case errors.Is(err, errOutputDir):
		return hints.ForOutputDirectory()
	}
	return ""
}
