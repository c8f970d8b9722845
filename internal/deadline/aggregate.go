package deadline

import (
	"fmt"
	"math"

	"github.com/avikram/semtrack/internal/domain"
)

// CourseStats summarizes completion and grade progress for one course.
type CourseStats struct {
	Name           string
	ShortName      string
	Credits        float64
	TotalItems     int
	CompletedItems int
	// Percentage is completed/total rounded half-up to a whole percent.
	Percentage int
	// WeightedGrade is the sum of score/100 * weight over completed items.
	WeightedGrade float64
	// MaxPossibleWeight is the sum of all item weights. Ideally 100,
	// but the document does not guarantee it.
	MaxPossibleWeight float64
}

// OverallStats aggregates completion across the selected courses only.
type OverallStats struct {
	TotalItems     int
	CompletedItems int
	Percentage     int
	// GPA is the credit-weighted grade point on a 10-point scale,
	// fixed to two decimals. "0.00" when no credited course is selected.
	GPA string
	// GPACredits is the credit total the GPA was computed over.
	GPACredits float64
}

// Summary is the full output of an aggregation pass.
type Summary struct {
	Courses []CourseStats // all courses, document order
	Overall OverallStats
}

// Course returns the stats for the named course.
func (s Summary) Course(name string) (CourseStats, bool) {
	for _, c := range s.Courses {
		if c.Name == name {
			return c, true
		}
	}
	return CourseStats{}, false
}

// Aggregate derives per-course and overall progress from completion state
// and recorded scores. Scores are looked up by identity key and count
// only for completed items; a missing score contributes zero. Overall
// totals and the GPA are restricted to selected courses.
func Aggregate(
	s *domain.Schedule,
	completed map[string]bool,
	scores map[string]float64,
	selected map[string]bool,
) Summary {
	var sum Summary
	sum.Courses = make([]CourseStats, 0, len(s.Courses))

	var overallTotal, overallDone int
	var gradePoints, gpaCredits float64

	for _, course := range s.Courses {
		cs := CourseStats{
			Name:      course.Name,
			ShortName: course.ShortName,
			Credits:   course.Credits,
		}

		for _, item := range course.Items {
			cs.TotalItems++
			cs.MaxPossibleWeight += sanitize(item.WeightPct)

			key := domain.NewItemKey(course.Name, item.Title, item.DueRaw).String()
			if !completed[key] {
				continue
			}
			cs.CompletedItems++
			if score, ok := scores[key]; ok {
				// Single division keeps 80 * 10 / 100 exact.
				cs.WeightedGrade += sanitize(score) * sanitize(item.WeightPct) / 100
			}
		}
		cs.Percentage = roundPct(cs.CompletedItems, cs.TotalItems)
		sum.Courses = append(sum.Courses, cs)

		if !selected[course.Name] {
			continue
		}
		overallTotal += cs.TotalItems
		overallDone += cs.CompletedItems
		if course.Credits > 0 {
			gradePoints += cs.WeightedGrade / 10 * course.Credits
			gpaCredits += course.Credits
		}
	}

	sum.Overall = OverallStats{
		TotalItems:     overallTotal,
		CompletedItems: overallDone,
		Percentage:     roundPct(overallDone, overallTotal),
		GPA:            "0.00",
		GPACredits:     gpaCredits,
	}
	if gpaCredits > 0 {
		sum.Overall.GPA = fmt.Sprintf("%.2f", gradePoints/gpaCredits)
	}
	return sum
}

// roundPct rounds completed/total to a whole percentage, half-up.
// Zero totals yield zero rather than dividing.
func roundPct(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(completed) / float64(total)))
}

// sanitize replaces NaN with zero so malformed input can never leak
// into displayed totals.
func sanitize(f float64) float64 {
	if math.IsNaN(f) {
		return 0
	}
	return f
}
