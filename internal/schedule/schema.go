package schedule

// Document is the top-level JSON structure of the published schedule.
type Document struct {
	Cohort   int            `json:"cohort"`
	Semester int            `json:"semester"`
	Term     int            `json:"term"`
	Courses  []CourseSchema `json:"courses"`
	// Schedules is the legacy name for the course array; older documents
	// still publish it. Convert prefers Courses when both are present.
	Schedules []CourseSchema `json:"schedules,omitempty"`
}

// CourseSchema defines one course in the schedule document.
type CourseSchema struct {
	CourseName      string       `json:"course_name"`
	CourseNameShort string       `json:"course_name_short"`
	Credits         *float64     `json:"credits,omitempty"`
	Items           []ItemSchema `json:"items"`
}

// ItemSchema defines one deadline item in the schedule document.
type ItemSchema struct {
	Item      string  `json:"item"`
	DueDate   string  `json:"due_date"`
	Weightage string  `json:"weightage"`
	OpenDate  *string `json:"open_date,omitempty"`
	URL       *string `json:"url,omitempty"`
	IsCompre  *bool   `json:"is_compre,omitempty"`
}

// courseList returns whichever course array the document carries.
func (d *Document) courseList() []CourseSchema {
	if len(d.Courses) > 0 {
		return d.Courses
	}
	return d.Schedules
}
