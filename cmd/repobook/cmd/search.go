package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Kumar2007/RepoBook/internal/cmd/output"
	"github.com/Kumar2007/RepoBook/internal/render"
)

// NewSearchCommand creates the search command with app dependencies.
func NewSearchCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search the catalog by keyword",
		Long: `Search matches the query as a case-insensitive substring against each
entry's url, tags, section, and fetched name. Results keep their catalog
numbers, which delete accepts as positions.`,
		Example: `  repobook search python
  repobook search networking -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			c, err := app.Store().Load()
			if err != nil {
				return err
			}

			matches := c.Search(args[0])

			format, err := output.ParseFormat(app.Format())
			if err != nil {
				return err
			}

			switch output.DetectFormat(string(format)) {
			case output.FormatText:
				fmt.Fprint(command.OutOrStdout(), render.SearchResults(matches))
				return nil
			case output.FormatTable:
				formatter := output.NewFormatter(output.FormatTable)
				return formatter.Format(command.OutOrStdout(), output.CatalogTable(matches))
			default:
				formatter := output.NewFormatter(output.DetectFormat(string(format)))
				return formatter.Format(command.OutOrStdout(), matches)
			}
		},
	}
}
