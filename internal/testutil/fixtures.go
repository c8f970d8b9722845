package testutil

import (
	"time"

	"github.com/avikram/semtrack/internal/domain"
)

// FixtureBase is the reference "now" used by schedule fixtures. Item due
// dates are offsets from it so urgency buckets are deterministic.
var FixtureBase = time.Date(2025, 12, 1, 12, 0, 0, 0, time.UTC)

// ItemOption mutates a fixture deadline item.
type ItemOption func(*domain.DeadlineItem)

func WithWeight(pct float64) ItemOption {
	return func(i *domain.DeadlineItem) { i.WeightPct = pct }
}

func WithOpenAt(t time.Time) ItemOption {
	return func(i *domain.DeadlineItem) { i.OpenAt = &t }
}

func AsFinalExam() ItemOption {
	return func(i *domain.DeadlineItem) { i.FinalExam = true }
}

// NewItem builds a deadline item due the given number of hours after
// FixtureBase. DueRaw is derived from the computed time the same way the
// wire format carries it.
func NewItem(title string, dueInHours int, opts ...ItemOption) domain.DeadlineItem {
	due := FixtureBase.Add(time.Duration(dueInHours) * time.Hour)
	item := domain.DeadlineItem{
		Title:     title,
		DueAt:     due,
		DueRaw:    due.Format("2006-01-02T15:04:05"),
		WeightPct: 10,
	}
	for _, opt := range opts {
		opt(&item)
	}
	return item
}

// NewSchedule builds a two-course schedule covering the common cases:
// a past-due item, near and far deadlines, and a final exam.
func NewSchedule() *domain.Schedule {
	return &domain.Schedule{
		Cohort:   2024,
		Semester: 1,
		Term:     2,
		Courses: []domain.Course{
			{
				Name:      "General Biology",
				ShortName: "BIO",
				Credits:   4,
				Items: []domain.DeadlineItem{
					NewItem("Quiz Week 1 & 2", -48),
					NewItem("Quiz Week 3 & 4", 12),
					NewItem("Graded Assignment 1", 96, WithWeight(20)),
					NewItem("Comprehensive Exam", 24*30, WithWeight(40), AsFinalExam()),
				},
			},
			{
				Name:      "General Physics",
				ShortName: "PHY",
				Credits:   3,
				Items: []domain.DeadlineItem{
					NewItem("Quiz Week 1 & 2", 36),
					NewItem("Graded Assignment 1", 24*10, WithWeight(25)),
				},
			},
		},
	}
}
