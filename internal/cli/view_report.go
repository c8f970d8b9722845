package cli

import (
	"strings"

	"github.com/avikram/semtrack/internal/cli/formatter"
	"github.com/avikram/semtrack/internal/deadline"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// reportView shows the report card with a cursor over the selected
// courses. Enter drills into the per-task grade sheet.
type reportView struct {
	state  *SharedState
	sum    deadline.Summary
	names  []string // selected course names, document order
	cursor int
}

func newReportView(state *SharedState) *reportView {
	v := &reportView{state: state}
	v.recompute()
	return v
}

func (v *reportView) ID() ViewID    { return ViewReport }
func (v *reportView) Title() string { return "Report Card" }

func (v *reportView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "grade sheet")),
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "course")),
	}
}

func (v *reportView) Init() tea.Cmd { return nil }

func (v *reportView) recompute() {
	v.sum = v.state.App.Summary()
	v.names = selectedNames(v.state.App)
	if v.cursor >= len(v.names) {
		v.cursor = max(0, len(v.names)-1)
	}
}

func (v *reportView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshViewMsg:
		v.recompute()
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.names)-1 {
				v.cursor++
			}
		case "enter":
			if v.cursor < len(v.names) {
				if stats, ok := v.sum.Course(v.names[v.cursor]); ok {
					return v, pushView(newGradeSheetView(v.state, stats))
				}
			}
		}
	}

	return v, nil
}

func (v *reportView) View() string {
	var b strings.Builder
	b.WriteString("\n")

	body := formatter.FormatReport(v.sum, v.state.App.State.Selected)
	for _, line := range strings.Split(body, "\n") {
		b.WriteString("  " + line + "\n")
	}

	if v.cursor < len(v.names) {
		b.WriteString("\n  " + formatter.StyleGreen.Render("▸") + " " +
			formatter.Bold(v.names[v.cursor]) + " " +
			formatter.Dim("(enter for grade sheet)"))
		b.WriteString("\n")
	}

	return b.String()
}

// gradeSheetView is the static per-course task breakdown.
type gradeSheetView struct {
	state *SharedState
	stats deadline.CourseStats
}

func newGradeSheetView(state *SharedState, stats deadline.CourseStats) *gradeSheetView {
	return &gradeSheetView{state: state, stats: stats}
}

func (v *gradeSheetView) ID() ViewID    { return ViewGradeSheet }
func (v *gradeSheetView) Title() string { return v.stats.Name }

func (v *gradeSheetView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}

func (v *gradeSheetView) Init() tea.Cmd { return nil }

func (v *gradeSheetView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(refreshViewMsg); ok {
		if stats, found := v.state.App.Summary().Course(v.stats.Name); found {
			v.stats = stats
		}
	}
	return v, nil
}

func (v *gradeSheetView) View() string {
	app := v.state.App
	body := formatter.FormatGradeSheet(v.stats, app.Records, app.State.Completed, app.State.Scores)

	var b strings.Builder
	b.WriteString("\n")
	for _, line := range strings.Split(body, "\n") {
		b.WriteString("  " + line + "\n")
	}
	return b.String()
}
