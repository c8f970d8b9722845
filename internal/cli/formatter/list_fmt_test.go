package formatter

import (
	"testing"
	"time"

	"github.com/avikram/semtrack/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatDeadlineList_Empty(t *testing.T) {
	got := FormatDeadlineList(nil, nil, time.Now())
	assert.Contains(t, got, "Deadlines")
	assert.Contains(t, got, "0 deadlines due within 5 days")
	assert.Contains(t, got, "No deadlines to show.")
}

func TestFormatDeadlineList_Rows(t *testing.T) {
	now := time.Date(2025, 12, 1, 12, 0, 0, 0, time.UTC)
	records := []domain.DeadlineRecord{
		{Title: "Quiz 1", CourseName: "General Biology", DueAt: now.Add(12 * time.Hour), DueRaw: "r1"},
		{Title: "Compre", CourseName: "General Biology", DueAt: now.Add(48 * time.Hour), DueRaw: "r2", FinalExam: true},
	}
	completed := map[string]bool{records[0].Key().String(): true}

	got := FormatDeadlineList(records, completed, now)

	assert.Contains(t, got, "2 deadlines due within 5 days")
	assert.Contains(t, got, "Quiz 1")
	assert.Contains(t, got, "done", "completed items show done instead of a countdown")
	assert.Contains(t, got, "Comprehensive Exam")
	assert.Contains(t, got, "02d 00h 00m 00s")
}
