package cli

import (
	"fmt"
	"time"

	"github.com/avikram/semtrack/internal/cli/formatter"
	"github.com/avikram/semtrack/internal/deadline"
	"github.com/spf13/cobra"
)

func newListCmd(app *App) *cobra.Command {
	var showPastDue, showCompleted, showAll bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the deadline list",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := app.now()
			pastDue := app.State.ShowPastDue || showPastDue || showAll
			completed := app.State.ShowCompleted || showCompleted || showAll

			visible := deadline.Visible(app.Records, app.State.Selected,
				app.State.Completed, pastDue, completed, now)
			fmt.Fprint(cmd.OutOrStdout(),
				formatter.FormatDeadlineList(visible, app.State.Completed, now))
			return nil
		},
	}

	cmd.Flags().BoolVar(&showPastDue, "past-due", false, "Include deadlines that have already passed")
	cmd.Flags().BoolVar(&showCompleted, "completed", false, "Include deadlines marked done")
	cmd.Flags().BoolVarP(&showAll, "all", "a", false, "Include past-due and completed deadlines")

	return cmd
}

// renderList is the non-interactive fallback for the bare root command.
func renderList(app *App, now time.Time) string {
	return formatter.FormatDeadlineList(app.Visible(now), app.State.Completed, now)
}
