package domain

// Urgency classifies how close a deadline is. Expired means the due time
// has passed; the remaining buckets tighten as the deadline approaches.
type Urgency string

const (
	UrgencyExpired  Urgency = "expired"
	UrgencyCritical Urgency = "critical"
	UrgencyWarning  Urgency = "warning"
	UrgencyNormal   Urgency = "normal"
)
