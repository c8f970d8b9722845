package schedule

import (
	"testing"
	"time"

	"github.com/avikram/semtrack/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool        { return &b }
func strPtr(s string) *string     { return &s }

func TestConvert_Basic(t *testing.T) {
	doc := &Document{
		Cohort:   2024,
		Semester: 1,
		Term:     2,
		Courses: []CourseSchema{
			{
				CourseName:      "General Biology",
				CourseNameShort: "BIO",
				Credits:         floatPtr(4),
				Items: []ItemSchema{
					{
						Item:      "Quiz Week 1 & 2",
						DueDate:   "2025-12-17T23:59:00",
						Weightage: "10%",
						OpenDate:  strPtr("2025-12-10T00:00:00"),
						URL:       strPtr("https://example.com/quiz1"),
					},
					{
						Item:      "Comprehensive",
						DueDate:   "2026-03-01T09:00:00",
						Weightage: "40%",
						IsCompre:  boolPtr(true),
					},
				},
			},
		},
	}

	s, err := Convert(doc)
	require.NoError(t, err)

	assert.Equal(t, 2024, s.Cohort)
	require.Len(t, s.Courses, 1)

	c := s.Courses[0]
	assert.Equal(t, "General Biology", c.Name)
	assert.Equal(t, "BIO", c.ShortName)
	assert.Equal(t, 4.0, c.Credits)
	require.Len(t, c.Items, 2)

	quiz := c.Items[0]
	assert.Equal(t, 10.0, quiz.WeightPct)
	assert.Equal(t, "2025-12-17T23:59:00", quiz.DueRaw)
	assert.False(t, quiz.FinalExam)
	require.NotNil(t, quiz.OpenAt)
	assert.Equal(t, "https://example.com/quiz1", quiz.URL)

	assert.True(t, c.Items[1].FinalExam)
}

func TestConvert_DefaultsAndTolerance(t *testing.T) {
	doc := &Document{
		Courses: []CourseSchema{
			{
				CourseName: "Physics",
				Items: []ItemSchema{
					{Item: "Quiz", DueDate: "2025-12-17T23:59:00", Weightage: "garbage"},
				},
			},
		},
	}

	s, err := Convert(doc)
	require.NoError(t, err)

	c := s.Courses[0]
	assert.Equal(t, "Physics", c.ShortName, "short name falls back to name")
	assert.Zero(t, c.Credits)
	assert.Zero(t, c.Items[0].WeightPct, "malformed weightage parses to 0")
	assert.Nil(t, c.Items[0].OpenAt)
}

func TestConvert_MissingDueDateFails(t *testing.T) {
	doc := &Document{
		Courses: []CourseSchema{
			{CourseName: "Physics", Items: []ItemSchema{{Item: "Quiz"}}},
		},
	}
	_, err := Convert(doc)
	assert.ErrorContains(t, err, "no due_date")
}

func TestConvert_LegacyScheduleArray(t *testing.T) {
	doc := &Document{
		Schedules: []CourseSchema{
			{CourseName: "Biology", Items: []ItemSchema{
				{Item: "Quiz", DueDate: "2025-12-17T23:59:00", Weightage: "10%"},
			}},
		},
	}
	s, err := Convert(doc)
	require.NoError(t, err)
	require.Len(t, s.Courses, 1)
	assert.Equal(t, "Biology", s.Courses[0].Name)
}

func TestParseWeight(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"10%", 10},
		{"7.5%", 7.5},
		{" 25% ", 25},
		{"40", 40},
		{"", 0},
		{"N/A", 0},
		{"%", 0},
		{"NaN", 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseWeight(tt.in))
		})
	}
}

func TestFlatten_SortsByDueDate(t *testing.T) {
	base := time.Date(2025, 12, 1, 0, 0, 0, 0, time.Local)
	s := &domain.Schedule{
		Courses: []domain.Course{
			{Name: "B", Items: []domain.DeadlineItem{
				{Title: "late", DueAt: base.AddDate(0, 0, 10), DueRaw: "r1"},
				{Title: "early", DueAt: base, DueRaw: "r2"},
			}},
			{Name: "A", Items: []domain.DeadlineItem{
				{Title: "middle", DueAt: base.AddDate(0, 0, 5), DueRaw: "r3"},
			}},
		},
	}

	records := Flatten(s)
	require.Len(t, records, 3)
	assert.Equal(t, "early", records[0].Title)
	assert.Equal(t, "middle", records[1].Title)
	assert.Equal(t, "late", records[2].Title)
	assert.Equal(t, "B", records[0].CourseName)
}

func TestFlatten_FinalExamsAlwaysLast(t *testing.T) {
	base := time.Date(2025, 12, 1, 0, 0, 0, 0, time.Local)
	s := &domain.Schedule{
		Courses: []domain.Course{
			{Name: "A", Items: []domain.DeadlineItem{
				// Final exam dated before everything else still sorts last.
				{Title: "compre A", DueAt: base.AddDate(0, 0, -30), DueRaw: "r1", FinalExam: true},
				{Title: "quiz", DueAt: base, DueRaw: "r2"},
			}},
			{Name: "B", Items: []domain.DeadlineItem{
				{Title: "compre B", DueAt: base.AddDate(0, 0, -60), DueRaw: "r3", FinalExam: true},
			}},
		},
	}

	records := Flatten(s)
	require.Len(t, records, 3)
	assert.Equal(t, "quiz", records[0].Title)
	// Ties among finals preserve input order, not date order.
	assert.Equal(t, "compre A", records[1].Title)
	assert.Equal(t, "compre B", records[2].Title)
}

func TestSortRecords_Idempotent(t *testing.T) {
	base := time.Date(2025, 12, 1, 0, 0, 0, 0, time.Local)
	records := []domain.DeadlineRecord{
		{Title: "b", DueAt: base.AddDate(0, 0, 2)},
		{Title: "a", DueAt: base},
		{Title: "final", DueAt: base.AddDate(0, 0, 1), FinalExam: true},
	}
	SortRecords(records)
	once := make([]domain.DeadlineRecord, len(records))
	copy(once, records)

	SortRecords(records)
	assert.Equal(t, once, records)
}

func TestParseTimestamp_Layouts(t *testing.T) {
	for _, in := range []string{
		"2025-12-17T23:59:00Z",
		"2025-12-17T23:59:00",
		"2025-12-17T23:59",
		"2025-12-17",
	} {
		t.Run(in, func(t *testing.T) {
			ts, err := parseTimestamp(in)
			require.NoError(t, err)
			assert.Equal(t, 2025, ts.Year())
		})
	}

	_, err := parseTimestamp("next tuesday")
	assert.Error(t, err)
}
