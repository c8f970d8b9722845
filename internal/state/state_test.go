package state

import (
	"context"
	"math"
	"testing"

	"github.com/avikram/semtrack/internal/repository"
	"github.com/avikram/semtrack/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) Store {
	t.Helper()
	return repository.NewSQLitePreferenceRepo(testutil.NewTestDB(t))
}

func TestLoad_Defaults(t *testing.T) {
	sched := testutil.NewSchedule()
	s := Load(context.Background(), newStore(t), sched)

	assert.Equal(t, map[string]bool{"General Biology": true}, s.Selected,
		"default selection excludes General Physics")
	assert.Empty(t, s.Completed)
	assert.Empty(t, s.Scores)
	assert.False(t, s.ShowPastDue)
	assert.False(t, s.ShowCompleted)
	assert.False(t, s.DisclaimerDismissed)
}

func TestLoad_DefaultNeverEmpty(t *testing.T) {
	sched := testutil.NewSchedule()
	sched.Courses = sched.Courses[1:] // only the default-excluded course remains

	s := Load(context.Background(), newStore(t), sched)
	assert.Equal(t, map[string]bool{"General Physics": true}, s.Selected)
}

func TestLoad_CorruptValuesFallBack(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	require.NoError(t, store.Set(ctx, "selectedCourses", "{not json"))
	require.NoError(t, store.Set(ctx, "completedItems", "42"))
	require.NoError(t, store.Set(ctx, "scores", `["wrong","shape"]`))
	require.NoError(t, store.Set(ctx, "showPastDue", "maybe"))

	s := Load(ctx, store, testutil.NewSchedule())

	assert.Equal(t, map[string]bool{"General Biology": true}, s.Selected)
	assert.Empty(t, s.Completed)
	assert.Empty(t, s.Scores)
	assert.False(t, s.ShowPastDue)
}

func TestLoad_UnknownCoursesFiltered(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	require.NoError(t, store.Set(ctx, "selectedCourses", `["General Physics","Dropped Course"]`))

	s := Load(ctx, store, testutil.NewSchedule())
	assert.Equal(t, map[string]bool{"General Physics": true}, s.Selected)
}

func TestLoad_AllStoredCoursesUnknown(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	require.NoError(t, store.Set(ctx, "selectedCourses", `["Gone 1","Gone 2"]`))

	s := Load(ctx, store, testutil.NewSchedule())
	assert.Equal(t, map[string]bool{"General Biology": true}, s.Selected,
		"falls back to default when nothing valid survives")
}

func TestRoundTrip_CompletedAndScores(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	sched := testutil.NewSchedule()

	s := Load(ctx, store, sched)
	require.NoError(t, s.SetCompleted(ctx, "k1", true))
	require.NoError(t, s.SetCompleted(ctx, "k2", true))
	require.NoError(t, s.SetCompleted(ctx, "k2", false))
	require.NoError(t, s.SetScore(ctx, "k1", 87.5))
	require.NoError(t, s.SetShowPastDue(ctx, true))
	require.NoError(t, s.DismissDisclaimer(ctx))

	reloaded := Load(ctx, store, sched)
	assert.Equal(t, map[string]bool{"k1": true}, reloaded.Completed)
	assert.Equal(t, map[string]float64{"k1": 87.5}, reloaded.Scores)
	assert.True(t, reloaded.ShowPastDue)
	assert.False(t, reloaded.ShowCompleted)
	assert.True(t, reloaded.DisclaimerDismissed)
}

func TestToggleCourse_RejectsLastCourse(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	s := Load(ctx, store, testutil.NewSchedule())
	require.Len(t, s.Selected, 1)

	changed, err := s.ToggleCourse(ctx, "General Biology")
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, map[string]bool{"General Biology": true}, s.Selected)
}

func TestToggleCourse_AddAndRemove(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	sched := testutil.NewSchedule()
	s := Load(ctx, store, sched)

	changed, err := s.ToggleCourse(ctx, "General Physics")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Len(t, s.Selected, 2)

	changed, err = s.ToggleCourse(ctx, "General Biology")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, map[string]bool{"General Physics": true}, s.Selected)

	// Selection survives a reload.
	reloaded := Load(ctx, store, sched)
	assert.Equal(t, map[string]bool{"General Physics": true}, reloaded.Selected)
}

func TestSetScore_SanitizesNaN(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	s := Load(ctx, store, testutil.NewSchedule())

	require.NoError(t, s.SetScore(ctx, "k1", math.NaN()))
	assert.Zero(t, s.Scores["k1"])

	reloaded := Load(ctx, store, testutil.NewSchedule())
	assert.Zero(t, reloaded.Scores["k1"])
}
