package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Kumar2007/RepoBook/internal/cmd/output"
	"github.com/Kumar2007/RepoBook/internal/render"
)

// NewListCommand creates the list command with app dependencies.
func NewListCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all saved repositories grouped by section",
		Long: `List prints the catalog grouped by section. Sections appear in the
order they first appear among the entries; entries keep their catalog
numbers, which delete accepts as positions.`,
		Example: `  repobook list
  repobook list -o table
  repobook list -o json`,
		Args: cobra.NoArgs,
		RunE: func(command *cobra.Command, _ []string) error {
			c, err := app.Store().Load()
			if err != nil {
				return err
			}

			format, err := output.ParseFormat(app.Format())
			if err != nil {
				return err
			}

			switch output.DetectFormat(string(format)) {
			case output.FormatText:
				fmt.Fprint(command.OutOrStdout(), render.Listing(c))
				return nil
			case output.FormatTable:
				formatter := output.NewFormatter(output.FormatTable)
				return formatter.Format(command.OutOrStdout(), output.CatalogTable(output.Matches(c)))
			default:
				formatter := output.NewFormatter(output.DetectFormat(string(format)))
				return formatter.Format(command.OutOrStdout(), c)
			}
		},
	}
}
