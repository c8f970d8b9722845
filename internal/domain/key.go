package domain

import "fmt"

// ItemKey is the composite identity of a deadline record: course name,
// item title, and the exact due timestamp string. Two items are the same
// entity iff all three match. The key is not guaranteed unique when a
// course legitimately repeats a title and date; that is an accepted
// limitation of the source format.
type ItemKey struct {
	Course string
	Title  string
	Due    string
}

// NewItemKey builds an ItemKey from its three components. Due must be the
// raw timestamp string from the document, not a reformatted time.
func NewItemKey(course, title, due string) ItemKey {
	return ItemKey{Course: course, Title: title, Due: due}
}

// String returns the persisted form of the key. The "course-title-due"
// concatenation matches what earlier releases stored, so existing
// completion and score state keeps resolving.
func (k ItemKey) String() string {
	return fmt.Sprintf("%s-%s-%s", k.Course, k.Title, k.Due)
}
