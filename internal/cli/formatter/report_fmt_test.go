package formatter

import (
	"testing"
	"time"

	"github.com/avikram/semtrack/internal/deadline"
	"github.com/avikram/semtrack/internal/domain"
	"github.com/stretchr/testify/assert"
)

func reportSummary() deadline.Summary {
	return deadline.Summary{
		Courses: []deadline.CourseStats{
			{
				Name: "General Biology", ShortName: "BIO", Credits: 4,
				TotalItems: 4, CompletedItems: 2, Percentage: 50,
				WeightedGrade: 15.5, MaxPossibleWeight: 100,
			},
			{
				Name: "General Physics", ShortName: "PHY", Credits: 3,
				TotalItems: 2, CompletedItems: 0, Percentage: 0,
				MaxPossibleWeight: 100,
			},
		},
		Overall: deadline.OverallStats{
			TotalItems: 4, CompletedItems: 2, Percentage: 50,
			GPA: "1.55", GPACredits: 4,
		},
	}
}

func TestFormatReport_SelectedCoursesOnly(t *testing.T) {
	got := FormatReport(reportSummary(), map[string]bool{"General Biology": true})

	assert.Contains(t, got, "General Biology")
	assert.NotContains(t, got, "General Physics")
	assert.Contains(t, got, "15.50%")
	assert.Contains(t, got, "1.55")
	assert.Contains(t, got, "2 of 4 tasks complete")
}

func TestFormatReport_NoCreditedCourses(t *testing.T) {
	sum := reportSummary()
	sum.Overall.GPA = "0.00"
	sum.Overall.GPACredits = 0

	got := FormatReport(sum, map[string]bool{"General Biology": true})
	assert.Contains(t, got, "0.00")
	assert.Contains(t, got, "no credited courses")
}

func TestFormatGradeSheet(t *testing.T) {
	due := time.Date(2025, 12, 17, 23, 59, 0, 0, time.UTC)
	records := []domain.DeadlineRecord{
		{Title: "Quiz 1", CourseName: "General Biology", DueAt: due, DueRaw: "r1", WeightPct: 10},
		{Title: "Compre", CourseName: "General Biology", DueAt: due, DueRaw: "r2", WeightPct: 40, FinalExam: true},
		{Title: "Other", CourseName: "General Physics", DueAt: due, DueRaw: "r3", WeightPct: 100},
	}
	course := deadline.CourseStats{Name: "General Biology", Credits: 4, WeightedGrade: 8, MaxPossibleWeight: 50}
	completed := map[string]bool{records[0].Key().String(): true}
	scores := map[string]float64{records[0].Key().String(): 80}

	got := FormatGradeSheet(course, records, completed, scores)

	assert.Contains(t, got, "Quiz 1")
	assert.Contains(t, got, "done")
	assert.Contains(t, got, "80%")
	assert.Contains(t, got, "Comprehensive Exam")
	assert.NotContains(t, got, "Other", "items from other courses excluded")
	assert.Contains(t, got, "8.00%")
	assert.Contains(t, got, "of 50% total weightage")
}
