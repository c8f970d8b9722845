package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/avikram/semtrack/internal/cli/formatter"
	"github.com/avikram/semtrack/internal/deadline"
	"github.com/avikram/semtrack/internal/domain"
	"github.com/spf13/cobra"
)

// searchableRecords is every record of a tracked course, including the
// past-due and completed ones hidden from the list.
func searchableRecords(app *App, now time.Time) []domain.DeadlineRecord {
	return deadline.Visible(app.Records, app.State.Selected, app.State.Completed, true, true, now)
}

func newDoneCmd(app *App) *cobra.Command {
	var undo bool

	cmd := &cobra.Command{
		Use:   "done QUERY",
		Short: "Mark a deadline as complete",
		Long: "Mark a deadline as complete. QUERY is a row number from the list\n" +
			"command or a substring of the course or item name.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			now := app.now()
			rec, err := resolveRecord(app.Visible(now), searchableRecords(app, now), args[0])
			if err != nil {
				return err
			}

			if err := app.State.SetCompleted(cmd.Context(), rec.Key().String(), !undo); err != nil {
				return fmt.Errorf("saving completion: %w", err)
			}

			verb := "Done"
			if undo {
				verb = "Reopened"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s %s %s\n",
				verb, formatter.Bold(rec.CourseName), formatter.Dim("›"), rec.Title)
			return nil
		},
	}

	cmd.Flags().BoolVar(&undo, "undo", false, "Mark the deadline as not complete")

	return cmd
}

func newScoreCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score QUERY PERCENT",
		Short: "Record a score for a completed deadline",
		Long: "Record a percentage score for a deadline and mark it complete.\n" +
			"Scores feed the weighted grade on the report card.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			score, err := strconv.ParseFloat(args[1], 64)
			if err != nil || score < 0 || score > 100 {
				return fmt.Errorf("score must be a percentage between 0 and 100, got %q", args[1])
			}

			now := app.now()
			rec, err := resolveRecord(app.Visible(now), searchableRecords(app, now), args[0])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			key := rec.Key().String()
			if err := app.State.SetScore(ctx, key, score); err != nil {
				return fmt.Errorf("saving score: %w", err)
			}
			// A scored item counts toward the weighted grade only once
			// completed, so record both together.
			if !app.State.Completed[key] {
				if err := app.State.SetCompleted(ctx, key, true); err != nil {
					return fmt.Errorf("saving completion: %w", err)
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Scored %.0f%%: %s %s %s\n",
				score, formatter.Bold(rec.CourseName), formatter.Dim("›"), rec.Title)
			return nil
		},
	}

	return cmd
}
