// Package state holds the user's session-durable preferences: course
// selection, completed items, scores, and visibility toggles. Every
// mutation is mirrored to the preference store immediately so nothing is
// lost across a reload. Corrupt or missing stored values are recovered
// silently by substituting documented defaults.
package state

import (
	"context"
	"encoding/json"
	"math"
	"sort"
	"strconv"

	"github.com/avikram/semtrack/internal/domain"
)

// Persisted preference keys. Values are the ones earlier releases wrote,
// so existing state keeps loading.
const (
	keySelectedCourses = "selectedCourses"
	keyCompletedItems  = "completedItems"
	keyScores          = "scores"
	keyShowPastDue     = "showPastDue"
	keyShowCompleted   = "showCompleted"
	keyDisclaimer      = "disclaimerDismissed"
)

// DefaultExcludedCourse is left out of the default selection on first
// run. Matches the published dashboard's behavior.
const DefaultExcludedCourse = "General Physics"

// Store is the durable key-value contract this package needs.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// UserState is the mutable per-user state. Mutate only through the
// methods so every change is persisted.
type UserState struct {
	store Store

	Selected            map[string]bool
	Completed           map[string]bool
	Scores              map[string]float64
	ShowPastDue         bool
	ShowCompleted       bool
	DisclaimerDismissed bool
}

// Load hydrates user state from the store, validating stored course
// names against the loaded schedule. Hydration never fails: any absent
// or unparseable value falls back to its default.
func Load(ctx context.Context, store Store, sched *domain.Schedule) *UserState {
	s := &UserState{
		store:     store,
		Completed: map[string]bool{},
		Scores:    map[string]float64{},
	}

	s.Selected = loadSelected(ctx, store, sched)

	if raw, err := store.Get(ctx, keyCompletedItems); err == nil {
		var keys []string
		if json.Unmarshal([]byte(raw), &keys) == nil {
			for _, k := range keys {
				s.Completed[k] = true
			}
		}
	}

	if raw, err := store.Get(ctx, keyScores); err == nil {
		var scores map[string]float64
		if json.Unmarshal([]byte(raw), &scores) == nil && scores != nil {
			for k, v := range scores {
				if !math.IsNaN(v) {
					s.Scores[k] = v
				}
			}
		}
	}

	s.ShowPastDue = loadBool(ctx, store, keyShowPastDue)
	s.ShowCompleted = loadBool(ctx, store, keyShowCompleted)
	s.DisclaimerDismissed = loadBool(ctx, store, keyDisclaimer)

	return s
}

func loadSelected(ctx context.Context, store Store, sched *domain.Schedule) map[string]bool {
	if raw, err := store.Get(ctx, keySelectedCourses); err == nil {
		var names []string
		if json.Unmarshal([]byte(raw), &names) == nil {
			selected := map[string]bool{}
			for _, name := range names {
				if sched.CourseByName(name) != nil {
					selected[name] = true
				}
			}
			if len(selected) > 0 {
				return selected
			}
		}
	}
	return defaultSelection(sched)
}

// defaultSelection selects every course except the default-excluded one.
// If that would leave nothing selected, every course is selected instead;
// the selection must never initialize empty.
func defaultSelection(sched *domain.Schedule) map[string]bool {
	selected := map[string]bool{}
	for _, name := range sched.CourseNames() {
		if name != DefaultExcludedCourse {
			selected[name] = true
		}
	}
	if len(selected) == 0 {
		for _, name := range sched.CourseNames() {
			selected[name] = true
		}
	}
	return selected
}

func loadBool(ctx context.Context, store Store, key string) bool {
	raw, err := store.Get(ctx, key)
	if err != nil {
		return false
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false
	}
	return b
}

// ToggleCourse flips a course's selection. Deselecting the last selected
// course is rejected as a no-op: changed is false and the state is
// untouched.
func (s *UserState) ToggleCourse(ctx context.Context, name string) (changed bool, err error) {
	if s.Selected[name] {
		if len(s.Selected) <= 1 {
			return false, nil
		}
		delete(s.Selected, name)
	} else {
		s.Selected[name] = true
	}
	return true, s.saveSelected(ctx)
}

// SetCompleted marks or unmarks an item as complete.
func (s *UserState) SetCompleted(ctx context.Context, key string, done bool) error {
	if done {
		s.Completed[key] = true
	} else {
		delete(s.Completed, key)
	}
	return s.saveStringSet(ctx, keyCompletedItems, s.Completed)
}

// SetScore records a percentage score for an item. NaN is stored as zero.
func (s *UserState) SetScore(ctx context.Context, key string, score float64) error {
	if math.IsNaN(score) {
		score = 0
	}
	s.Scores[key] = score
	data, _ := json.Marshal(s.Scores)
	return s.store.Set(ctx, keyScores, string(data))
}

// SetShowPastDue updates the past-due visibility toggle.
func (s *UserState) SetShowPastDue(ctx context.Context, show bool) error {
	s.ShowPastDue = show
	return s.store.Set(ctx, keyShowPastDue, strconv.FormatBool(show))
}

// SetShowCompleted updates the completed-item visibility toggle.
func (s *UserState) SetShowCompleted(ctx context.Context, show bool) error {
	s.ShowCompleted = show
	return s.store.Set(ctx, keyShowCompleted, strconv.FormatBool(show))
}

// DismissDisclaimer records that the first-run notice has been seen.
func (s *UserState) DismissDisclaimer(ctx context.Context) error {
	s.DisclaimerDismissed = true
	return s.store.Set(ctx, keyDisclaimer, strconv.FormatBool(true))
}

func (s *UserState) saveSelected(ctx context.Context) error {
	return s.saveStringSet(ctx, keySelectedCourses, s.Selected)
}

// saveStringSet persists a set as a sorted JSON array for deterministic
// storage.
func (s *UserState) saveStringSet(ctx context.Context, key string, set map[string]bool) error {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	data, _ := json.Marshal(names)
	return s.store.Set(ctx, key, string(data))
}
