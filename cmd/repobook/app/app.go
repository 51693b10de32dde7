// Package app provides the application context and dependency management
// for the repobook CLI. It centralizes configuration, logging, and the
// catalog store behind a single App value handed to every command.
package app

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/Kumar2007/RepoBook/internal/metadata"
	"github.com/Kumar2007/RepoBook/pkg/catalog"
)

// App represents the repobook application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger
}

// Option customizes an App during construction.
type Option func(*App) error

// New creates a new App instance with the given version information.
func New(version, commit, date string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// Store returns the catalog store bound to the configured document path.
func (a *App) Store() *catalog.Store {
	return catalog.NewStore(a.config.CatalogPath)
}

// Fetcher returns the metadata collaborator, authenticated when a GitHub
// token is configured.
func (a *App) Fetcher() metadata.Fetcher {
	return metadata.NewGitHub(
		metadata.WithToken(a.config.GitHubToken),
		metadata.WithTimeout(a.config.FetchTimeout),
	)
}

// ReadmePath returns the path of the generated summary document.
func (a *App) ReadmePath() string {
	return a.config.ReadmePath
}

// Format returns the requested output format ("" means auto-detect).
func (a *App) Format() string {
	return a.config.Format
}

// Quiet reports whether minimal output was requested.
func (a *App) Quiet() bool {
	return a.config.Quiet
}

// ContextWithSignals returns a context cancelled on SIGINT or SIGTERM.
func ContextWithSignals(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
}
