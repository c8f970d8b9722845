package domain

import "time"

// Schedule is the root document for one term. It is immutable after load;
// refreshing the source replaces it wholesale.
type Schedule struct {
	Cohort   int
	Semester int
	Term     int
	Courses  []Course
}

// Course groups the deadline items of a single course. Name is unique
// within a document and serves as the course's identity.
type Course struct {
	Name      string
	ShortName string
	Credits   float64
	Items     []DeadlineItem
}

// DeadlineItem is one graded task inside a course.
type DeadlineItem struct {
	Title string
	DueAt time.Time
	// DueRaw is the exact timestamp string from the source document.
	// Identity keys are built from it so stored completion/score state
	// survives reloads without normalization drift.
	DueRaw    string
	OpenAt    *time.Time
	WeightPct float64 // sanitized at parse time, never NaN
	URL       string
	FinalExam bool
}

// CourseByName returns the course with the given name, or nil.
func (s *Schedule) CourseByName(name string) *Course {
	for i := range s.Courses {
		if s.Courses[i].Name == name {
			return &s.Courses[i]
		}
	}
	return nil
}

// CourseNames returns the course names in document order.
func (s *Schedule) CourseNames() []string {
	names := make([]string, 0, len(s.Courses))
	for _, c := range s.Courses {
		names = append(names, c.Name)
	}
	return names
}

// ItemCount returns the total number of deadline items across all courses.
func (s *Schedule) ItemCount() int {
	n := 0
	for _, c := range s.Courses {
		n += len(c.Items)
	}
	return n
}
