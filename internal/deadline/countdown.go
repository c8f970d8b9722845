package deadline

import (
	"time"

	"github.com/avikram/semtrack/internal/domain"
)

// UpcomingWindow is the lookahead horizon used to flag deadlines as
// "upcoming" for highlighting and the dashboard header count. It is
// deliberately coarser than the urgency classification.
const UpcomingWindow = 5 * 24 * time.Hour

// Remaining computes the time left until target, truncated to whole
// units. A target at or before now yields the zero value.
func Remaining(target, now time.Time) domain.TimeRemaining {
	total := target.Sub(now)
	if total <= 0 {
		return domain.TimeRemaining{}
	}
	return domain.TimeRemaining{
		Days:    int(total / (24 * time.Hour)),
		Hours:   int(total/time.Hour) % 24,
		Minutes: int(total/time.Minute) % 60,
		Seconds: int(total/time.Second) % 60,
		Total:   total,
	}
}

// Classify buckets remaining time into an urgency level. Thresholds are
// strict and checked in order: exactly one day left is warning, not
// critical, and exactly three days left is normal, not warning.
func Classify(r domain.TimeRemaining) domain.Urgency {
	switch {
	case r.Total <= 0:
		return domain.UrgencyExpired
	case r.Days < 1:
		return domain.UrgencyCritical
	case r.Days < 3:
		return domain.UrgencyWarning
	default:
		return domain.UrgencyNormal
	}
}

// OpenNow reports whether an item is currently open for submission:
// openAt is set and openAt <= now < dueAt. An absent openAt returns
// false; callers omit the "opens in" display entirely rather than
// treating the item as always open.
func OpenNow(openAt *time.Time, dueAt, now time.Time) bool {
	if openAt == nil {
		return false
	}
	return !now.Before(*openAt) && now.Before(dueAt)
}

// WithinLookahead reports whether dueAt falls inside (now, now+window].
func WithinLookahead(dueAt, now time.Time, window time.Duration) bool {
	return now.Before(dueAt) && !dueAt.After(now.Add(window))
}

// UpcomingCount counts records due within the lookahead window.
func UpcomingCount(records []domain.DeadlineRecord, now time.Time, window time.Duration) int {
	n := 0
	for _, r := range records {
		if WithinLookahead(r.DueAt, now, window) {
			n++
		}
	}
	return n
}
