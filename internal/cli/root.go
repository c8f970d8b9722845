package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/avikram/semtrack/internal/deadline"
	"github.com/avikram/semtrack/internal/domain"
	"github.com/avikram/semtrack/internal/schedule"
	"github.com/avikram/semtrack/internal/state"
	"github.com/spf13/cobra"
)

// App holds the loaded schedule, the user's persisted state, and the
// source to reload from. CLI commands and the TUI share one instance.
type App struct {
	Schedule *domain.Schedule
	Records  []domain.DeadlineRecord
	State    *state.UserState
	Source   schedule.Source

	// IsInteractive reports whether stdin is a terminal. Nil means no.
	IsInteractive func() bool

	// Clock overrides the wall clock in tests. Nil uses time.Now.
	Clock func() time.Time
}

func (a *App) now() time.Time {
	if a.Clock != nil {
		return a.Clock()
	}
	return time.Now()
}

// Reload refetches the schedule from its source and replaces the loaded
// document, keeping the canonical record order. Not safe to call from a
// background goroutine while the TUI is running; the dashboard fetches
// on a Cmd and applies the result in Update instead.
func (a *App) Reload(ctx context.Context) error {
	sched, err := a.Source.Load(ctx)
	if err != nil {
		return err
	}
	a.ApplySchedule(sched)
	return nil
}

// ApplySchedule replaces the loaded document wholesale. Callers inside
// the TUI must invoke it from Update so only the UI goroutine mutates
// shared state.
func (a *App) ApplySchedule(sched *domain.Schedule) {
	a.Schedule = sched
	a.Records = schedule.Flatten(sched)
}

// Visible returns the records that pass the current selection and
// visibility filters, in canonical order.
func (a *App) Visible(now time.Time) []domain.DeadlineRecord {
	return deadline.Visible(a.Records, a.State.Selected, a.State.Completed,
		a.State.ShowPastDue, a.State.ShowCompleted, now)
}

// Summary aggregates completion and grade progress for the loaded
// schedule against the current user state.
func (a *App) Summary() deadline.Summary {
	return deadline.Aggregate(a.Schedule, a.State.Completed, a.State.Scores, a.State.Selected)
}

// NewRootCmd creates the top-level "semtrack" command and registers all
// subcommands against the provided App. Running it bare opens the
// dashboard on a terminal and prints the deadline list otherwise.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "semtrack",
		Short: "Semester deadline tracker",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runDashboard(app)
			}
			fmt.Fprint(cmd.OutOrStdout(), renderList(app, app.now()))
			return nil
		},
	}

	root.AddCommand(
		newDashboardCmd(app),
		newListCmd(app),
		newReportCmd(app),
		newDoneCmd(app),
		newScoreCmd(app),
		newCoursesCmd(app),
		newRefreshCmd(app),
	)

	return root
}
