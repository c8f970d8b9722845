package deadline

import (
	"testing"
	"time"

	"github.com/avikram/semtrack/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeRecord(course, title string, due time.Time) domain.DeadlineRecord {
	return domain.DeadlineRecord{
		Title:      title,
		CourseName: course,
		DueAt:      due,
		DueRaw:     due.Format(time.RFC3339),
	}
}

func TestVisible_CourseSelection(t *testing.T) {
	records := []domain.DeadlineRecord{
		makeRecord("Biology", "Quiz 1", now.Add(24*time.Hour)),
		makeRecord("Physics", "Quiz 1", now.Add(48*time.Hour)),
	}
	selected := map[string]bool{"Biology": true}

	got := Visible(records, selected, nil, false, false, now)

	require.Len(t, got, 1)
	assert.Equal(t, "Biology", got[0].CourseName)
}

func TestVisible_PastDueHiddenByDefault(t *testing.T) {
	records := []domain.DeadlineRecord{
		makeRecord("Biology", "Old Quiz", now.Add(-time.Hour)),
		makeRecord("Biology", "Due Now", now),
		makeRecord("Biology", "New Quiz", now.Add(time.Hour)),
	}
	selected := map[string]bool{"Biology": true}

	got := Visible(records, selected, nil, false, false, now)
	require.Len(t, got, 1)
	assert.Equal(t, "New Quiz", got[0].Title)

	// Toggling past-due back on restores the records in sort position.
	got = Visible(records, selected, nil, true, false, now)
	require.Len(t, got, 3)
	assert.Equal(t, "Old Quiz", got[0].Title)
	assert.Equal(t, "Due Now", got[1].Title)
	assert.Equal(t, "New Quiz", got[2].Title)
}

func TestVisible_CompletedHiddenByDefault(t *testing.T) {
	a := makeRecord("Biology", "Quiz 1", now.Add(24*time.Hour))
	b := makeRecord("Biology", "Quiz 2", now.Add(48*time.Hour))
	records := []domain.DeadlineRecord{a, b}
	selected := map[string]bool{"Biology": true}
	completed := map[string]bool{a.Key().String(): true}

	got := Visible(records, selected, completed, false, false, now)
	require.Len(t, got, 1)
	assert.Equal(t, "Quiz 2", got[0].Title)

	got = Visible(records, selected, completed, false, true, now)
	assert.Len(t, got, 2)
}

func TestVisible_OrderInherited(t *testing.T) {
	records := []domain.DeadlineRecord{
		makeRecord("Biology", "A", now.Add(1*time.Hour)),
		makeRecord("Physics", "B", now.Add(2*time.Hour)),
		makeRecord("Biology", "C", now.Add(3*time.Hour)),
		makeRecord("Physics", "D", now.Add(4*time.Hour)),
	}
	selected := map[string]bool{"Biology": true, "Physics": true}

	got := Visible(records, selected, nil, false, false, now)
	require.Len(t, got, 4)
	for i, want := range []string{"A", "B", "C", "D"} {
		assert.Equal(t, want, got[i].Title)
	}
}

func TestVisible_EmptyInput(t *testing.T) {
	got := Visible(nil, map[string]bool{"Biology": true}, nil, true, true, now)
	assert.Empty(t, got)
}
