package cli

import (
	"fmt"

	"github.com/avikram/semtrack/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newReportCmd(app *App) *cobra.Command {
	var courseFlag string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show the report card",
		RunE: func(cmd *cobra.Command, args []string) error {
			sum := app.Summary()

			if courseFlag == "" {
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatReport(sum, app.State.Selected))
				return nil
			}

			course, err := resolveCourse(app.Schedule, courseFlag)
			if err != nil {
				return err
			}
			stats, ok := sum.Course(course.Name)
			if !ok {
				return fmt.Errorf("no stats for course %q", course.Name)
			}
			fmt.Fprint(cmd.OutOrStdout(),
				formatter.FormatGradeSheet(stats, app.Records, app.State.Completed, app.State.Scores))
			return nil
		},
	}

	cmd.Flags().StringVarP(&courseFlag, "course", "c", "", "Show the per-task grade sheet for one course")

	return cmd
}
