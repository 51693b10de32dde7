// Package cmd implements the repobook subcommands. Each command is built
// by a constructor taking an AppContext, which keeps commands decoupled
// from the concrete application and easy to test.
package cmd

import (
	"github.com/rs/zerolog"

	"github.com/Kumar2007/RepoBook/internal/metadata"
	"github.com/Kumar2007/RepoBook/pkg/catalog"
)

// AppContext defines the interface that commands need from the app.
type AppContext interface {
	// Store returns the catalog store.
	Store() *catalog.Store

	// Fetcher returns the metadata collaborator.
	Fetcher() metadata.Fetcher

	// Logger returns the application logger.
	Logger() *zerolog.Logger

	// ReadmePath returns the path of the generated summary document.
	ReadmePath() string

	// Format returns the requested output format ("" means auto-detect).
	Format() string

	// Quiet reports whether minimal output was requested.
	Quiet() bool
}
