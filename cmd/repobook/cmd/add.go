package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Kumar2007/RepoBook/internal/render"
	"github.com/Kumar2007/RepoBook/pkg/catalog"
)

// NewAddCommand creates the add command with app dependencies.
func NewAddCommand(app AppContext) *cobra.Command {
	var (
		tags    []string
		section string
		fetch   bool
	)

	command := &cobra.Command{
		Use:   "add <url>",
		Short: "Add a repository link to the catalog",
		Long: `Add appends a repository link to the end of the catalog and
regenerates the markdown summary document.

With --fetch, the entry is enriched with metadata (description, star
count) from the GitHub API. The fetch is best-effort: on any failure the
entry is still added, without metadata.`,
		Example: `  repobook add https://github.com/golang/go
  repobook add https://github.com/golang/go --tags go,compiler --section Languages
  repobook add https://github.com/golang/go --fetch`,
		Args: cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			logger := app.Logger()
			store := app.Store()

			c, err := store.Load()
			if err != nil {
				return err
			}

			entry, err := catalog.NewEntry(args[0], tags, section)
			if err != nil {
				return err
			}

			if c.HasURL(entry.URL) {
				logger.Warn().Str("url", entry.URL).Msg("URL already present in catalog, adding anyway")
			}

			if fetch {
				meta, err := app.Fetcher().Fetch(command.Context(), entry.URL)
				if err != nil {
					logger.Warn().Err(err).Msg("Metadata fetch failed, adding entry without metadata")
				} else {
					entry.Metadata = meta
				}
			}

			c = c.Add(entry)

			if err := store.Save(c); err != nil {
				return err
			}
			if err := render.WriteREADME(app.ReadmePath(), c); err != nil {
				return err
			}

			logger.Debug().
				Str("url", entry.URL).
				Str("section", entry.Section).
				Int("entries", len(c)).
				Msg("Entry added")

			if !app.Quiet() {
				fmt.Fprintf(command.OutOrStdout(), "Added %s (%d entries)\n", entry.URL, len(c))
			}
			return nil
		},
	}

	command.Flags().StringSliceVar(&tags, "tags", nil, "tags for the entry (comma-separated or repeated)")
	command.Flags().StringVar(&section, "section", "", "section the entry is grouped under (default Uncategorized)")
	command.Flags().BoolVar(&fetch, "fetch", false, "fetch metadata from the GitHub API")

	return command
}
