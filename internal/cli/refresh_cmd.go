package cli

import (
	"fmt"

	"github.com/avikram/semtrack/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newRefreshCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Refetch the schedule document",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Reload(cmd.Context()); err != nil {
				return err
			}
			n := app.Schedule.ItemCount()
			fmt.Fprintf(cmd.OutOrStdout(), "Schedule reloaded: %d %s across %d %s.\n",
				n, formatter.Pluralize(n, "deadline", "deadlines"),
				len(app.Schedule.Courses),
				formatter.Pluralize(len(app.Schedule.Courses), "course", "courses"))
			return nil
		},
	}
}
