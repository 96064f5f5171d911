package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/learnhub/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressHandler_Stats(t *testing.T) {
	router := newTestRouter(
		models.UserProgress{ID: "p1", CourseID: "c1", CompletedLessons: []string{"A"}},
		models.UserProgress{ID: "p2", CourseID: "c2", CompletedLessons: []string{"D"}},
	)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/progress/stats", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.OverallStats{
		TotalCourses:     2,
		CompletedCourses: 1,
		TotalLessons:     4,
		CompletedLessons: 2,
		AverageProgress:  67,
		Certificates:     1,
	}, decodeBody[models.OverallStats](t, rec))
}

func TestProgressHandler_Recent(t *testing.T) {
	router := newTestRouter(
		models.UserProgress{ID: "p1", CourseID: "c1", LastAccessed: testNow.Add(-2 * time.Hour)},
		models.UserProgress{ID: "p2", CourseID: "c2", LastAccessed: testNow.Add(-1 * time.Hour)},
	)

	tests := []struct {
		name           string
		query          string
		expectedStatus int
		expected       []string
	}{
		{name: "default limit", query: "", expectedStatus: http.StatusOK, expected: []string{"c2", "c1"}},
		{name: "limit one", query: "?limit=1", expectedStatus: http.StatusOK, expected: []string{"c2"}},
		{name: "invalid limit", query: "?limit=abc", expectedStatus: http.StatusBadRequest},
		{name: "zero limit", query: "?limit=0", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, router, http.MethodGet, "/api/v1/progress/recent"+tt.query, nil)

			require.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus != http.StatusOK {
				return
			}
			items := decodeBody[[]models.CourseProgressItem](t, rec)
			ids := make([]string, 0, len(items))
			for _, item := range items {
				ids = append(ids, item.CourseID)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}
}

func TestProgressHandler_CoursesAndList(t *testing.T) {
	router := newTestRouter(models.UserProgress{ID: "p1", CourseID: "c1", CompletedLessons: []string{"A", "B"}})

	rec := doRequest(t, router, http.MethodGet, "/api/v1/progress/courses", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	items := decodeBody[[]models.CourseProgressItem](t, rec)
	require.Len(t, items, 1)
	assert.Equal(t, 67, items[0].RoundedPercent)
	assert.False(t, items[0].Completed)

	rec = doRequest(t, router, http.MethodGet, "/api/v1/progress", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]models.UserProgress](t, rec), 1)
}

func TestProgressHandler_GetForCourse(t *testing.T) {
	router := newTestRouter(models.UserProgress{ID: "p1", CourseID: "c1"})

	rec := doRequest(t, router, http.MethodGet, "/api/v1/courses/c1/progress", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "p1", decodeBody[models.UserProgress](t, rec).ID)

	rec = doRequest(t, router, http.MethodGet, "/api/v1/courses/c2/progress", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
