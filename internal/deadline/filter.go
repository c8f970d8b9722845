package deadline

import (
	"time"

	"github.com/avikram/semtrack/internal/domain"
)

// Visible applies the user's visibility settings to an already-sorted
// record list. Filters apply in order: course selection, then past-due,
// then completed. The surviving records keep their input order.
func Visible(
	records []domain.DeadlineRecord,
	selected map[string]bool,
	completed map[string]bool,
	showPastDue bool,
	showCompleted bool,
	now time.Time,
) []domain.DeadlineRecord {
	out := make([]domain.DeadlineRecord, 0, len(records))
	for _, r := range records {
		if !selected[r.CourseName] {
			continue
		}
		if !showPastDue && !r.DueAt.After(now) {
			continue
		}
		if !showCompleted && completed[r.Key().String()] {
			continue
		}
		out = append(out, r)
	}
	return out
}
