package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/avikram/semtrack/internal/cli/formatter"
	"github.com/avikram/semtrack/internal/deadline"
	"github.com/avikram/semtrack/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ── messages ─────────────────────────────────────────────────────────────────

// tickMsg advances the dashboard clock once per second so the countdowns
// stay live.
type tickMsg time.Time

// reloadDoneMsg carries the result of a schedule refetch. The fetched
// document rides in the message so the Cmd goroutine never touches
// shared state; Update applies it.
type reloadDoneMsg struct {
	sched *domain.Schedule
	err   error
}

// ── view ─────────────────────────────────────────────────────────────────────

// dashboardView is the home screen of the TUI: the live countdown list
// over the visible deadlines.
type dashboardView struct {
	state *SharedState
	now   time.Time

	cursor    int
	visible   []domain.DeadlineRecord
	reloading bool
}

func newDashboardView(state *SharedState) *dashboardView {
	v := &dashboardView{
		state: state,
		now:   state.App.now(),
	}
	v.recompute()
	return v
}

func (v *dashboardView) ID() ViewID    { return ViewDashboard }
func (v *dashboardView) Title() string { return "Deadlines" }

func (v *dashboardView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("space"), key.WithHelp("space", "done")),
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "score")),
		key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "courses")),
		key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "report")),
		key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "past due")),
		key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "completed")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func (v *dashboardView) Init() tea.Cmd {
	return v.tick()
}

func (v *dashboardView) tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// recompute refreshes the visible record list for the current clock and
// filters, keeping the cursor on a valid row.
func (v *dashboardView) recompute() {
	v.visible = v.state.App.Visible(v.now)
	if v.cursor >= len(v.visible) {
		v.cursor = max(0, len(v.visible)-1)
	}
}

func (v *dashboardView) reload() tea.Cmd {
	source := v.state.App.Source
	return func() tea.Msg {
		sched, err := source.Load(context.Background())
		return reloadDoneMsg{sched: sched, err: err}
	}
}

// ── update ───────────────────────────────────────────────────────────────────

func (v *dashboardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		v.now = time.Time(msg)
		v.recompute()
		return v, v.tick()

	case refreshViewMsg:
		v.recompute()
		return v, nil

	case reloadDoneMsg:
		v.reloading = false
		if msg.err != nil {
			return v, showStatus(formatter.StyleRed.Render("Reload failed: " + msg.err.Error()))
		}
		v.state.App.ApplySchedule(msg.sched)
		v.recompute()
		return v, showStatus(formatter.Dim("Schedule reloaded."))

	case tea.KeyMsg:
		return v.handleKey(msg)
	}

	return v, nil
}

func (v *dashboardView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	app := v.state.App
	ctx := context.Background()

	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}

	case "down", "j":
		if v.cursor < len(v.visible)-1 {
			v.cursor++
		}

	case " ":
		if v.cursor < len(v.visible) {
			rec := v.visible[v.cursor]
			k := rec.Key().String()
			if err := app.State.SetCompleted(ctx, k, !app.State.Completed[k]); err != nil {
				return v, showStatus(formatter.StyleRed.Render("Save failed: " + err.Error()))
			}
			v.recompute()
		}

	case "s":
		if v.cursor < len(v.visible) {
			return v, startScoreWizard(v.state, v.visible[v.cursor])
		}

	case "f":
		return v, startCourseWizard(v.state)

	case "g":
		return v, pushView(newReportView(v.state))

	case "p":
		if err := app.State.SetShowPastDue(ctx, !app.State.ShowPastDue); err != nil {
			return v, showStatus(formatter.StyleRed.Render("Save failed: " + err.Error()))
		}
		v.recompute()

	case "c":
		if err := app.State.SetShowCompleted(ctx, !app.State.ShowCompleted); err != nil {
			return v, showStatus(formatter.StyleRed.Render("Save failed: " + err.Error()))
		}
		v.recompute()

	case "x":
		if !app.State.DisclaimerDismissed {
			if err := app.State.DismissDisclaimer(ctx); err != nil {
				return v, showStatus(formatter.StyleRed.Render("Save failed: " + err.Error()))
			}
		}

	case "r":
		if !v.reloading {
			v.reloading = true
			return v, v.reload()
		}
	}

	return v, nil
}

// ── view rendering ───────────────────────────────────────────────────────────

func (v *dashboardView) View() string {
	app := v.state.App
	var b strings.Builder

	b.WriteString("\n")

	if !app.State.DisclaimerDismissed {
		b.WriteString("  " + formatter.StyleYellow.Render("Deadlines are maintained by hand and may be inaccurate."))
		b.WriteString(" " + formatter.Dim("Verify before relying on them. (x to hide)"))
		b.WriteString("\n\n")
	}

	upcoming := deadline.UpcomingCount(v.visible, v.now, deadline.UpcomingWindow)
	b.WriteString(fmt.Sprintf("  %s %s\n",
		formatter.Bold(strconv.Itoa(upcoming)),
		formatter.Dim(formatter.Pluralize(upcoming, "deadline", "deadlines")+" due within 5 days"+v.filterSuffix())))
	b.WriteString("\n")

	if v.reloading {
		b.WriteString("  " + formatter.Dim("Reloading schedule...") + "\n\n")
	}

	if len(v.visible) == 0 {
		b.WriteString("  " + formatter.Dim("Nothing due. Press f to pick courses, c to show completed."))
		b.WriteString("\n")
		return b.String()
	}

	headers := []string{"", "", "Course", "Item", "Due", "Remaining", ""}
	rows := make([][]string, 0, len(v.visible))
	for i, r := range v.visible {
		rows = append(rows, v.renderRow(i, r))
	}
	b.WriteString(formatter.RenderAlignedTable(headers, rows, nil))

	// Detail line for the row under the cursor.
	if v.cursor < len(v.visible) {
		r := v.visible[v.cursor]
		b.WriteString("\n  " + formatter.UrgencyLabel(deadline.Classify(deadline.Remaining(r.DueAt, v.now))))
		if r.URL != "" {
			b.WriteString("  " + formatter.Dim(r.URL))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (v *dashboardView) renderRow(i int, r domain.DeadlineRecord) []string {
	app := v.state.App
	remaining := deadline.Remaining(r.DueAt, v.now)
	urgency := deadline.Classify(remaining)

	cursor := " "
	title := r.Title
	if i == v.cursor {
		cursor = formatter.StyleGreen.Render("▸")
		title = formatter.Bold(r.Title)
	}

	course := r.CourseName
	if c := app.Schedule.CourseByName(r.CourseName); c != nil && c.ShortName != "" {
		course = c.ShortName
	}

	due := formatter.FormatDueDate(r.DueAt)
	if r.FinalExam {
		due = formatter.FinalExamLabel()
	}

	countdown := formatter.FormatCountdown(remaining)
	if app.State.Completed[r.Key().String()] {
		countdown = formatter.StyleGreen.Render("done")
	}

	hint := formatter.FormatOpensIn(r.OpenAt, v.now)

	return []string{cursor, formatter.UrgencyDot(urgency), course, title, due, countdown, hint}
}

// filterSuffix names the visibility toggles currently widening the list.
func (v *dashboardView) filterSuffix() string {
	var extras []string
	if v.state.App.State.ShowPastDue {
		extras = append(extras, "past due")
	}
	if v.state.App.State.ShowCompleted {
		extras = append(extras, "completed")
	}
	if len(extras) == 0 {
		return ""
	}
	return " · showing " + strings.Join(extras, ", ")
}
