package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(command *cobra.Command, _ []string) {
			fmt.Fprintf(command.OutOrStdout(), "repobook %s\n", version)
			fmt.Fprintf(command.OutOrStdout(), "  commit: %s\n", commit)
			fmt.Fprintf(command.OutOrStdout(), "  built:  %s\n", date)
		},
	}
}
