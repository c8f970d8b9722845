package repository

import (
	"context"
	"testing"

	"github.com/avikram/semtrack/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferenceRepo_GetMissing(t *testing.T) {
	repo := NewSQLitePreferenceRepo(testutil.NewTestDB(t))

	_, err := repo.Get(context.Background(), "selectedCourses")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPreferenceRepo_SetGetRoundTrip(t *testing.T) {
	repo := NewSQLitePreferenceRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "showPastDue", "true"))

	got, err := repo.Get(ctx, "showPastDue")
	require.NoError(t, err)
	assert.Equal(t, "true", got)
}

func TestPreferenceRepo_SetOverwrites(t *testing.T) {
	repo := NewSQLitePreferenceRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "scores", `{"a":80}`))
	require.NoError(t, repo.Set(ctx, "scores", `{"a":95}`))

	got, err := repo.Get(ctx, "scores")
	require.NoError(t, err)
	assert.Equal(t, `{"a":95}`, got)
}
