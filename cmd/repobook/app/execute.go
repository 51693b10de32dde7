package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/Kumar2007/RepoBook/cmd/repobook/cmd"
	"github.com/Kumar2007/RepoBook/pkg/errors"
)

// Exit codes per failure class. Every domain error maps to a distinct
// non-zero code; anything unclassified exits 1.
const (
	ExitOK              = 0
	ExitFailure         = 1
	ExitInvalidEntry    = 2
	ExitIndexOutOfRange = 3
	ExitCorruptStore    = 4
)

// Execute runs the repobook CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "repobook",
		Short:   "Manage a personal catalog of repository links",
		Version: a.version,
		Long: `Repobook is a personal catalog of repository links, stored locally
as a JSON document and rendered into a generated markdown directory.

Entries can optionally be enriched with metadata (description, star
count) fetched from the GitHub API at add time.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.PersistentFlags().BoolVarP(&a.config.Verbose, "verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	rootCmd.PersistentFlags().BoolVarP(&a.config.Quiet, "quiet", "q", false, "minimal output (shortcut for --log-level=warn)")
	rootCmd.PersistentFlags().BoolVar(&a.config.NoColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVarP(&a.config.Format, "format", "o", "", "output format: text, table, json, yaml")
	rootCmd.PersistentFlags().StringVar(&a.config.LogLevel, "log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")

	rootCmd.SetVersionTemplate("repobook {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(command *cobra.Command, _ []string) error {
	verbose := mustGetBool(command, "verbose")
	quiet := mustGetBool(command, "quiet")
	noColor := mustGetBool(command, "no-color")
	format := mustGetString(command, "format")
	logLevel := mustGetString(command, "log-level")

	a.config.UpdateFromFlags(verbose, quiet, noColor, format, logLevel)

	// Reinitialize logger with updated config
	logger := NewLogger(a.config)
	a.logger = &logger

	return nil
}

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(cmd.NewAddCommand(a))
	rootCmd.AddCommand(cmd.NewListCommand(a))
	rootCmd.AddCommand(cmd.NewSearchCommand(a))
	rootCmd.AddCommand(cmd.NewDeleteCommand(a))
	rootCmd.AddCommand(cmd.NewVersionCommand(a.version, a.commit, a.date))
}

// ExitCode maps an error to the process exit code for its failure class.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.IsInvalidEntry(err):
		return ExitInvalidEntry
	case errors.IsIndexOutOfRange(err):
		return ExitIndexOutOfRange
	case errors.IsCorruptStore(err):
		return ExitCorruptStore
	default:
		return ExitFailure
	}
}

// ExitOnError prints a one-line message to stderr and exits with the
// error's code. Meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(ExitCode(err))
	}
}

// mustGetBool retrieves a boolean flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetBool(command *cobra.Command, name string) bool {
	val, err := command.Flags().GetBool(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

// mustGetString retrieves a string flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetString(command *cobra.Command, name string) string {
	val, err := command.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
