package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/avikram/semtrack/internal/deadline"
	"github.com/avikram/semtrack/internal/domain"
)

// FormatDeadlineList renders the numbered deadline table shown by the
// list command. Rows arrive already in canonical order; numbering is
// 1-based and matches what the done/score commands resolve against.
func FormatDeadlineList(records []domain.DeadlineRecord, completed map[string]bool, now time.Time) string {
	var b strings.Builder

	upcoming := deadline.UpcomingCount(records, now, deadline.UpcomingWindow)
	b.WriteString(Header("Deadlines"))
	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("%d %s due within 5 days", upcoming,
		Pluralize(upcoming, "deadline", "deadlines"))))
	b.WriteString("\n\n")

	if len(records) == 0 {
		b.WriteString(Dim("No deadlines to show."))
		b.WriteString("\n")
		return b.String()
	}

	headers := []string{"#", "", "Course", "Item", "Due", "Remaining"}
	rows := make([][]string, 0, len(records))
	for i, r := range records {
		remaining := deadline.Remaining(r.DueAt, now)
		urgency := deadline.Classify(remaining)

		due := FormatDueDate(r.DueAt)
		countdown := FormatCountdown(remaining)
		if r.FinalExam {
			due = FinalExamLabel()
		}
		if completed[r.Key().String()] {
			countdown = StyleGreen.Render("done")
		}

		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			UrgencyDot(urgency),
			r.CourseName,
			r.Title,
			due,
			countdown,
		})
	}

	b.WriteString(RenderAlignedTable(headers, rows, []Align{AlignRight}))
	return b.String()
}
