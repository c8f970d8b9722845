package formatter

import (
	"fmt"
	"time"

	"github.com/avikram/semtrack/internal/deadline"
	"github.com/avikram/semtrack/internal/domain"
)

// FormatCountdown renders remaining time as "01d 04h 09m 33s", zero-padded
// so the dashboard columns stay stable as digits tick over.
func FormatCountdown(r domain.TimeRemaining) string {
	if r.Expired() {
		return Dim("past due")
	}
	text := fmt.Sprintf("%02dd %02dh %02dm %02ds", r.Days, r.Hours, r.Minutes, r.Seconds)
	return UrgencyColor(deadline.Classify(r)).Render(text)
}

// FormatDueDate renders an absolute due timestamp like "Wed, Dec 17 11:59 PM".
func FormatDueDate(t time.Time) string {
	return t.Format("Mon, Jan 2 03:04 PM")
}

// FormatOpensIn renders the "opens in" hint for an item with a future
// open date; empty when openAt is absent or already open.
func FormatOpensIn(openAt *time.Time, now time.Time) string {
	if openAt == nil || !openAt.After(now) {
		return ""
	}
	days := int(openAt.Sub(now).Hours() / 24)
	if days > 0 {
		return Dim(fmt.Sprintf("opens in %dd", days))
	}
	hours := int(openAt.Sub(now).Hours())
	if hours > 0 {
		return Dim(fmt.Sprintf("opens in %dh", hours))
	}
	return Dim("opens soon")
}

// FinalExamLabel is shown in place of a countdown for comprehensive exams.
func FinalExamLabel() string {
	return StylePurple.Render("Comprehensive Exam")
}

// Pluralize returns the singular or plural form based on count.
func Pluralize(count int, singular, plural string) string {
	if count == 1 {
		return singular
	}
	return plural
}
