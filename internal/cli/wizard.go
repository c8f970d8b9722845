package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/avikram/semtrack/internal/cli/formatter"
	"github.com/avikram/semtrack/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// semtrackHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func semtrackHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// wizardSelectCourses creates a huh form to pick the tracked courses.
// At least one course must stay selected.
func wizardSelectCourses(sched *domain.Schedule, result *[]string) *huh.Form {
	options := make([]huh.Option[string], 0, len(sched.Courses))
	for _, c := range sched.Courses {
		label := c.Name
		if c.ShortName != "" {
			label = fmt.Sprintf("%s — %s", c.ShortName, c.Name)
		}
		options = append(options, huh.NewOption(label, c.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Tracked Courses").
				Options(options...).
				Validate(func(selected []string) error {
					if len(selected) == 0 {
						return fmt.Errorf("keep at least one course selected")
					}
					return nil
				}).
				Value(result),
		),
	).WithTheme(semtrackHuhTheme()).WithShowHelp(false)
}

// validateScore accepts empty or a percentage between 0 and 100.
func validateScore(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 || v > 100 {
		return fmt.Errorf("enter a percentage between 0 and 100")
	}
	return nil
}

// wizardInputScore creates a huh form to enter a score percentage.
func wizardInputScore(title string, result *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Placeholder("0-100").
				Value(result).
				Validate(validateScore),
		),
	).WithTheme(semtrackHuhTheme()).WithShowHelp(false)
}

// startCourseWizard pushes the course multi-select form. On completion it
// applies the new selection through the user state.
func startCourseWizard(state *SharedState) tea.Cmd {
	app := state.App
	names := selectedNames(app)

	form := wizardSelectCourses(app.Schedule, &names)
	done := func() tea.Cmd {
		if err := applySelection(app, context.Background(), names); err != nil {
			return showStatus(formatter.StyleRed.Render(err.Error()))
		}
		return showStatus(formatter.Dim(fmt.Sprintf("Tracking %d %s.",
			len(names), formatter.Pluralize(len(names), "course", "courses"))))
	}

	return startWizardCmd(state, "Courses", form, done)
}

// startScoreWizard pushes the score input form for one deadline. The
// score is recorded and the item marked complete on submit.
func startScoreWizard(state *SharedState, rec domain.DeadlineRecord) tea.Cmd {
	app := state.App
	var input string
	if s, ok := app.State.Scores[rec.Key().String()]; ok {
		input = strconv.FormatFloat(s, 'f', -1, 64)
	}

	title := fmt.Sprintf("Score for %s (%% of %s)", rec.Title,
		strconv.FormatFloat(rec.WeightPct, 'f', -1, 64))
	form := wizardInputScore(title, &input)

	done := func() tea.Cmd {
		if input == "" {
			return nil
		}
		score, err := strconv.ParseFloat(input, 64)
		if err != nil {
			return nil // form validation already rejected this
		}
		ctx := context.Background()
		k := rec.Key().String()
		if err := app.State.SetScore(ctx, k, score); err != nil {
			return showStatus(formatter.StyleRed.Render("Save failed: " + err.Error()))
		}
		if !app.State.Completed[k] {
			if err := app.State.SetCompleted(ctx, k, true); err != nil {
				return showStatus(formatter.StyleRed.Render("Save failed: " + err.Error()))
			}
		}
		return showStatus(formatter.Dim(fmt.Sprintf("Scored %.0f%% on %s.", score, rec.Title)))
	}

	return startWizardCmd(state, "Score", form, done)
}
