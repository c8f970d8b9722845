package schedule

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/avikram/semtrack/internal/domain"
)

// timestampLayouts are tried in order when parsing document timestamps.
// The published feed uses zone-less local timestamps; RFC3339 and bare
// dates are accepted for hand-edited files.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Convert transforms a parsed Document into the immutable domain schedule.
// A missing or unparseable due date is a document error and fails the
// whole load; weightage and open_date are best-effort.
func Convert(doc *Document) (*domain.Schedule, error) {
	s := &domain.Schedule{
		Cohort:   doc.Cohort,
		Semester: doc.Semester,
		Term:     doc.Term,
	}

	for _, cs := range doc.courseList() {
		if cs.CourseName == "" {
			return nil, fmt.Errorf("course with empty course_name")
		}
		course := domain.Course{
			Name:      cs.CourseName,
			ShortName: domain.CoalesceStr(cs.CourseNameShort, cs.CourseName),
			Credits:   domain.Float64FromPtrWithDefault(0, cs.Credits),
		}
		for _, is := range cs.Items {
			if is.DueDate == "" {
				return nil, fmt.Errorf("course %q: item %q has no due_date", cs.CourseName, is.Item)
			}
			due, err := parseTimestamp(is.DueDate)
			if err != nil {
				return nil, fmt.Errorf("course %q: item %q: %w", cs.CourseName, is.Item, err)
			}

			item := domain.DeadlineItem{
				Title:     is.Item,
				DueAt:     due,
				DueRaw:    is.DueDate,
				WeightPct: ParseWeight(is.Weightage),
				FinalExam: domain.BoolFromPtrWithDefault(false, is.IsCompre),
			}
			if is.URL != nil {
				item.URL = *is.URL
			}
			if is.OpenDate != nil && *is.OpenDate != "" {
				// An unparseable open date is dropped; the item then
				// simply has no "opens in" display.
				if open, err := parseTimestamp(*is.OpenDate); err == nil {
					item.OpenAt = &open
				}
			}
			course.Items = append(course.Items, item)
		}
		s.Courses = append(s.Courses, course)
	}
	return s, nil
}

// ParseWeight converts a "NN%" weightage string to its numeric value.
// It is the single sanitization point for weights: any parse failure,
// including NaN, yields zero so bad input never reaches aggregation.
func ParseWeight(s string) float64 {
	trimmed := strings.TrimSuffix(strings.TrimSpace(s), "%")
	w, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(w) {
		return 0
	}
	return w
}

// Flatten produces the canonical record list: every item tagged with its
// course, sorted ascending by due date. Final exams order after all
// non-final items regardless of date; the sort is stable so ties and
// final-exam groups keep document order.
func Flatten(s *domain.Schedule) []domain.DeadlineRecord {
	var records []domain.DeadlineRecord
	for _, course := range s.Courses {
		for _, item := range course.Items {
			records = append(records, domain.DeadlineRecord{
				Title:      item.Title,
				CourseName: course.Name,
				DueAt:      item.DueAt,
				DueRaw:     item.DueRaw,
				OpenAt:     item.OpenAt,
				WeightPct:  item.WeightPct,
				URL:        item.URL,
				FinalExam:  item.FinalExam,
			})
		}
	}
	SortRecords(records)
	return records
}

// SortRecords applies the canonical deadline ordering in place.
func SortRecords(records []domain.DeadlineRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if a.FinalExam != b.FinalExam {
			return !a.FinalExam
		}
		if a.FinalExam {
			return false // final exams keep input order
		}
		return a.DueAt.Before(b.DueAt)
	})
}

func parseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
}
