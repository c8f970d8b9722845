package domain

import "time"

// DeadlineRecord is a flattened deadline item annotated with its course.
// The canonical record list is date-sorted with final exams last.
type DeadlineRecord struct {
	Title      string
	CourseName string
	DueAt      time.Time
	DueRaw     string
	OpenAt     *time.Time
	WeightPct  float64
	URL        string
	FinalExam  bool
}

// Key returns the record's composite identity key.
func (r DeadlineRecord) Key() ItemKey {
	return NewItemKey(r.CourseName, r.Title, r.DueRaw)
}
