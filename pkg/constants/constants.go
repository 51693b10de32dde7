// Package constants provides shared constants used throughout the repobook
// codebase. This includes timeouts, file permissions, and well-known paths
// that should be consistent across the application.
package constants

import "time"

// Timeout constants define various timeout durations used in the application
const (
	// DefaultFetchTimeout bounds the single metadata request per add --fetch
	DefaultFetchTimeout = 5 * time.Second

	// DefaultHTTPTimeout is the standard timeout for HTTP requests
	DefaultHTTPTimeout = 30 * time.Second
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Well-known file paths, relative to the working directory unless overridden
// through configuration.
const (
	// DefaultCatalogPath is the persisted catalog document
	DefaultCatalogPath = "repos.json"

	// DefaultReadmePath is the generated markdown summary document. It is
	// entirely derived from the catalog document and never read back.
	DefaultReadmePath = "GENERATED_README.md"
)

// DefaultSection is the grouping label for entries added without a section.
const DefaultSection = "Uncategorized"
