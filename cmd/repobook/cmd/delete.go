package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Kumar2007/RepoBook/internal/render"
)

// NewDeleteCommand creates the delete command with app dependencies.
func NewDeleteCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <position>",
		Short: "Delete the entry at the given position",
		Long: `Delete removes the entry at the given 1-based position, as numbered by
list and search. Entries after the deleted one shift down by one
position. The markdown summary document is regenerated afterwards.`,
		Example: `  repobook delete 3`,
		Args:    cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			position, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid position %q: expected a number", args[0])
			}

			store := app.Store()
			c, err := store.Load()
			if err != nil {
				return err
			}

			c, removed, err := c.Delete(position)
			if err != nil {
				return err
			}

			if err := store.Save(c); err != nil {
				return err
			}
			if err := render.WriteREADME(app.ReadmePath(), c); err != nil {
				return err
			}

			app.Logger().Debug().
				Str("url", removed.URL).
				Int("position", position).
				Int("entries", len(c)).
				Msg("Entry deleted")

			if !app.Quiet() {
				fmt.Fprintf(command.OutOrStdout(), "Deleted %s (%d entries left)\n", removed.URL, len(c))
			}
			return nil
		},
	}
}
