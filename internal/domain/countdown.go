package domain

import "time"

// TimeRemaining is the truncated breakdown of the duration until a
// deadline. All fields are zero once the deadline has passed; no field
// is ever negative.
type TimeRemaining struct {
	Days    int
	Hours   int
	Minutes int
	Seconds int
	Total   time.Duration
}

// Expired reports whether the deadline has passed.
func (r TimeRemaining) Expired() bool {
	return r.Total <= 0
}
