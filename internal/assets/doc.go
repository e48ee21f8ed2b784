// Package assets provides the report definitions shipped with docxgen.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	ReportLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in reports)
//	    ├── FilesystemLoader  - loads from a custom directory through afero
//	    └── Resolver          - combines both with custom-first fallback
//
// EmbeddedLoader provides the built-in reports (novabank) compiled into the
// binary.
//
// FilesystemLoader lets users keep their own report definitions in a
// directory. Reads go through an afero.BasePathFs rooted at that directory.
//
// Resolver is the loader used by the CLI. It tries the custom
// FilesystemLoader first and falls back to EmbeddedLoader when the report is
// not found, so a user directory can override a single built-in report.
//
// # Directory Structure
//
//	{basePath}/
//	└── reports/
//	    └── {name}.yaml          # or {name}.yml
//
// # Security
//
// Report names are validated to prevent path traversal; the base path
// filesystem rejects anything that still resolves outside basePath.
package assets
