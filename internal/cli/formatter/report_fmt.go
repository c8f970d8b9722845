package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/avikram/semtrack/internal/deadline"
	"github.com/avikram/semtrack/internal/domain"
)

// FormatReport renders the report card: one row per selected course plus
// the overall completion and GPA summary.
func FormatReport(sum deadline.Summary, selected map[string]bool) string {
	var b strings.Builder

	b.WriteString(Header("Report Card"))
	b.WriteString("\n\n")

	headers := []string{"Course", "Credits", "Progress", "Score"}
	aligns := []Align{AlignLeft, AlignRight, AlignLeft, AlignRight}
	var rows [][]string
	for _, c := range sum.Courses {
		if !selected[c.Name] {
			continue
		}
		credits := Dim("-")
		if c.Credits > 0 {
			credits = strconv.FormatFloat(c.Credits, 'f', -1, 64)
		}
		rows = append(rows, []string{
			c.Name,
			credits,
			fmt.Sprintf("%s %s", RenderProgress(float64(c.Percentage)/100, 12),
				Dim(fmt.Sprintf("%d/%d", c.CompletedItems, c.TotalItems))),
			fmt.Sprintf("%.2f%% %s", c.WeightedGrade, Dim(fmt.Sprintf("of %.0f%%", c.MaxPossibleWeight))),
		})
	}
	b.WriteString(RenderAlignedTable(headers, rows, aligns))

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %d%% %s\n",
		Bold("Overall:"),
		sum.Overall.Percentage,
		Dim(fmt.Sprintf("(%d of %d tasks complete)", sum.Overall.CompletedItems, sum.Overall.TotalItems))))

	gpaLine := fmt.Sprintf("%s %s", Bold("GPA:"), StyleHeader.Render(sum.Overall.GPA))
	if sum.Overall.GPACredits > 0 {
		gpaLine += " " + Dim(fmt.Sprintf("over %.0f credits", sum.Overall.GPACredits))
	} else {
		gpaLine += " " + Dim("(no credited courses selected)")
	}
	b.WriteString(gpaLine)
	b.WriteString("\n")

	return b.String()
}

// FormatGradeSheet renders the per-course task breakdown: every item with
// its due date, weightage, completion status, and recorded score.
func FormatGradeSheet(
	course deadline.CourseStats,
	records []domain.DeadlineRecord,
	completed map[string]bool,
	scores map[string]float64,
) string {
	var b strings.Builder

	b.WriteString(Header(course.Name))
	b.WriteString("\n")
	if course.Credits > 0 {
		b.WriteString(Dim(fmt.Sprintf("%s credits", strconv.FormatFloat(course.Credits, 'f', -1, 64))))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	headers := []string{"Task", "Due", "Weight", "Status", "Score"}
	aligns := []Align{AlignLeft, AlignLeft, AlignRight, AlignLeft, AlignRight}
	var rows [][]string
	for _, r := range records {
		if r.CourseName != course.Name {
			continue
		}
		key := r.Key().String()

		due := FormatDueDate(r.DueAt)
		if r.FinalExam {
			due = FinalExamLabel()
		}

		status := StyleYellow.Render("pending")
		if completed[key] {
			status = StyleGreen.Render("done")
		}

		score := Dim("-")
		if s, ok := scores[key]; ok {
			score = fmt.Sprintf("%.0f%%", s)
		}

		rows = append(rows, []string{
			r.Title,
			due,
			fmt.Sprintf("%.0f%%", r.WeightPct),
			status,
			score,
		})
	}
	b.WriteString(RenderAlignedTable(headers, rows, aligns))

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %.2f%% %s\n",
		Bold("Current grade:"),
		course.WeightedGrade,
		Dim(fmt.Sprintf("of %.0f%% total weightage", course.MaxPossibleWeight))))

	return b.String()
}
