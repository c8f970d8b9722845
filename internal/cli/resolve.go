package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/avikram/semtrack/internal/domain"
)

// resolveRecord resolves a deadline identifier. The input can be:
//   - A 1-based row number into listed, the rows the list command printed
//   - A case-insensitive substring of the course or item title, searched
//     over every record of a tracked course so hidden past-due and
//     completed items stay reachable
//
// A substring matching more than one deadline is an error listing the
// candidates, so the caller can retype something unambiguous.
func resolveRecord(listed, searchable []domain.DeadlineRecord, input string) (domain.DeadlineRecord, error) {
	if n, err := strconv.Atoi(input); err == nil {
		if n < 1 || n > len(listed) {
			return domain.DeadlineRecord{}, fmt.Errorf("no deadline #%d: list shows %d", n, len(listed))
		}
		return listed[n-1], nil
	}

	needle := strings.ToLower(input)
	var matches []domain.DeadlineRecord
	for _, r := range searchable {
		if strings.Contains(strings.ToLower(r.CourseName), needle) ||
			strings.Contains(strings.ToLower(r.Title), needle) {
			matches = append(matches, r)
		}
	}

	switch len(matches) {
	case 0:
		return domain.DeadlineRecord{}, fmt.Errorf("no deadline matches %q", input)
	case 1:
		return matches[0], nil
	}

	var names []string
	for _, r := range matches {
		names = append(names, fmt.Sprintf("%s: %s", r.CourseName, r.Title))
	}
	return domain.DeadlineRecord{}, fmt.Errorf("%q matches %d deadlines:\n  %s",
		input, len(matches), strings.Join(names, "\n  "))
}

// resolveCourse resolves a course identifier: exact name, short name, or
// a case-insensitive unique substring of either.
func resolveCourse(sched *domain.Schedule, input string) (*domain.Course, error) {
	for i := range sched.Courses {
		c := &sched.Courses[i]
		if strings.EqualFold(c.Name, input) || strings.EqualFold(c.ShortName, input) {
			return c, nil
		}
	}

	needle := strings.ToLower(input)
	var matches []*domain.Course
	for i := range sched.Courses {
		c := &sched.Courses[i]
		if strings.Contains(strings.ToLower(c.Name), needle) ||
			strings.Contains(strings.ToLower(c.ShortName), needle) {
			matches = append(matches, c)
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("no course matches %q", input)
	case 1:
		return matches[0], nil
	}

	var names []string
	for _, c := range matches {
		names = append(names, c.Name)
	}
	return nil, fmt.Errorf("%q matches %d courses: %s", input, len(matches), strings.Join(names, ", "))
}
