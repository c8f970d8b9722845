package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/avikram/semtrack/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCoursesCmd(app *App) *cobra.Command {
	var selectNames, deselectNames []string
	var interactive bool

	cmd := &cobra.Command{
		Use:   "courses",
		Short: "Show or change which courses are tracked",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if interactive {
				names, err := runCoursePicker(app)
				if err != nil {
					return err
				}
				if err := applySelection(app, ctx, names); err != nil {
					return err
				}
			}

			for _, raw := range selectNames {
				course, err := resolveCourse(app.Schedule, raw)
				if err != nil {
					return err
				}
				if !app.State.Selected[course.Name] {
					if _, err := app.State.ToggleCourse(ctx, course.Name); err != nil {
						return fmt.Errorf("saving selection: %w", err)
					}
				}
			}

			for _, raw := range deselectNames {
				course, err := resolveCourse(app.Schedule, raw)
				if err != nil {
					return err
				}
				if !app.State.Selected[course.Name] {
					continue
				}
				changed, err := app.State.ToggleCourse(ctx, course.Name)
				if err != nil {
					return fmt.Errorf("saving selection: %w", err)
				}
				if !changed {
					return fmt.Errorf("cannot deselect %q: at least one course must stay selected", course.Name)
				}
			}

			fmt.Fprint(cmd.OutOrStdout(), renderCourses(app))
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&selectNames, "select", nil, "Course to start tracking (repeatable)")
	cmd.Flags().StringArrayVar(&deselectNames, "deselect", nil, "Course to stop tracking (repeatable)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Pick tracked courses with a form")

	return cmd
}

// runCoursePicker runs the standalone multi-select form and returns the
// chosen course names.
func runCoursePicker(app *App) ([]string, error) {
	names := selectedNames(app)
	form := wizardSelectCourses(app.Schedule, &names)
	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("course picker: %w", err)
	}
	return names, nil
}

// applySelection diffs the desired course set against the current one and
// toggles whatever changed, so each step is persisted individually.
func applySelection(app *App, ctx context.Context, names []string) error {
	want := map[string]bool{}
	for _, name := range names {
		want[name] = true
	}
	if len(want) == 0 {
		return fmt.Errorf("at least one course must stay selected")
	}

	// Select before deselecting so the never-empty rule can't trip on
	// an intermediate state.
	for _, name := range app.Schedule.CourseNames() {
		if want[name] && !app.State.Selected[name] {
			if _, err := app.State.ToggleCourse(ctx, name); err != nil {
				return fmt.Errorf("saving selection: %w", err)
			}
		}
	}
	for _, name := range app.Schedule.CourseNames() {
		if !want[name] && app.State.Selected[name] {
			if _, err := app.State.ToggleCourse(ctx, name); err != nil {
				return fmt.Errorf("saving selection: %w", err)
			}
		}
	}
	return nil
}

func selectedNames(app *App) []string {
	var names []string
	for _, name := range app.Schedule.CourseNames() {
		if app.State.Selected[name] {
			names = append(names, name)
		}
	}
	return names
}

func renderCourses(app *App) string {
	headers := []string{"", "Course", "Credits", "Deadlines"}
	aligns := []formatter.Align{formatter.AlignLeft, formatter.AlignLeft, formatter.AlignRight, formatter.AlignRight}

	rows := make([][]string, 0, len(app.Schedule.Courses))
	for _, c := range app.Schedule.Courses {
		mark := formatter.Dim("·")
		name := formatter.Dim(c.Name)
		if app.State.Selected[c.Name] {
			mark = formatter.StyleGreen.Render("✓")
			name = c.Name
		}
		credits := formatter.Dim("-")
		if c.Credits > 0 {
			credits = strconv.FormatFloat(c.Credits, 'f', -1, 64)
		}
		rows = append(rows, []string{mark, name, credits, strconv.Itoa(len(c.Items))})
	}

	return formatter.Header("Courses") + "\n\n" +
		formatter.RenderAlignedTable(headers, rows, aligns) + "\n" +
		formatter.Dim("semtrack courses --select NAME / --deselect NAME, or -i to pick interactively") + "\n"
}
