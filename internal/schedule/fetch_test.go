package schedule

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDoc = `{
	"cohort": 2024, "semester": 1, "term": 2,
	"courses": [
		{
			"course_name": "General Biology",
			"course_name_short": "BIO",
			"credits": 4,
			"items": [
				{"item": "Quiz Week 1 & 2", "due_date": "2025-12-17T23:59:00", "weightage": "10%"}
			]
		}
	]
}`

func TestFetch_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleDoc))
	}))
	defer srv.Close()

	s, err := Fetch(context.Background(), srv.Client(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, 2024, s.Cohort)
	require.Len(t, s.Courses, 1)
	assert.Equal(t, "General Biology", s.Courses[0].Name)
}

func TestFetch_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := Fetch(context.Background(), srv.Client(), srv.URL)
	assert.ErrorContains(t, err, "unexpected status")
}

func TestFetch_MalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{not json"))
	}))
	defer srv.Close()

	_, err := Fetch(context.Background(), srv.Client(), srv.URL)
	assert.ErrorContains(t, err, "parsing schedule")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedule.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleDoc), 0644))

	s, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Semester)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestSource_PathWinsOverURL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedule.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleDoc), 0644))

	src := Source{URL: "http://127.0.0.1:1/unreachable", Path: path}
	s, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, s.Courses, 1)
}

func TestSource_Unconfigured(t *testing.T) {
	_, err := Source{}.Load(context.Background())
	assert.ErrorContains(t, err, "no schedule source")
}
