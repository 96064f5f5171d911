package handlers

import (
	"net/http"
	"testing"

	"github.com/learnhub/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLessonHandler_Enroll(t *testing.T) {
	router := newTestRouter()

	rec := doRequest(t, router, http.MethodPost, "/api/v1/courses/c1/enroll", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	first := decodeBody[models.UserProgress](t, rec)
	assert.Equal(t, "c1", first.CourseID)
	assert.Equal(t, []string{}, first.CompletedLessons)

	rec = doRequest(t, router, http.MethodPost, "/api/v1/courses/c1/enroll", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	second := decodeBody[models.UserProgress](t, rec)
	assert.Equal(t, first.ID, second.ID)

	rec = doRequest(t, router, http.MethodPost, "/api/v1/courses/missing/enroll", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLessonHandler_GetLesson(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		expectedStatus int
	}{
		{name: "enrolled", path: "/api/v1/courses/c1/lessons/B", expectedStatus: http.StatusOK},
		{name: "unknown lesson", path: "/api/v1/courses/c1/lessons/Z", expectedStatus: http.StatusNotFound},
		{name: "unknown course", path: "/api/v1/courses/zz/lessons/A", expectedStatus: http.StatusNotFound},
		{name: "not enrolled", path: "/api/v1/courses/c2/lessons/D", expectedStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(models.UserProgress{ID: "p1", CourseID: "c1", Notes: map[string]string{"B": "note on B"}})

			rec := doRequest(t, router, http.MethodGet, tt.path, nil)

			require.Equal(t, tt.expectedStatus, rec.Code, rec.Body.String())
			if tt.expectedStatus != http.StatusOK {
				return
			}
			view := decodeBody[models.LessonViewResponse](t, rec)
			assert.Equal(t, 1, view.Position.FlatIndex)
			assert.Equal(t, "module1", view.Position.ModuleTitle)
			assert.Equal(t, "A", view.Position.PrevLesson.ID)
			assert.Equal(t, "C", view.Position.NextLesson.ID)
			assert.Equal(t, 3, view.Position.TotalLessons)
			assert.Equal(t, "note on B", view.Note)
			require.NotNil(t, view.Quiz)
			assert.Equal(t, "q1", view.Quiz.ID)
		})
	}
}

func TestLessonHandler_CompleteAndUncomplete(t *testing.T) {
	router := newTestRouter(models.UserProgress{ID: "p1", CourseID: "c1"})

	for _, id := range []string{"A", "B", "C"} {
		rec := doRequest(t, router, http.MethodPost, "/api/v1/courses/c1/lessons/"+id+"/complete", nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	}

	rec := doRequest(t, router, http.MethodGet, "/api/v1/courses/c1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 100.0, decodeBody[models.CourseDetailResponse](t, rec).PercentComplete)

	rec = doRequest(t, router, http.MethodPost, "/api/v1/courses/c1/lessons/A/complete", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[models.LessonCompletionResponse](t, rec)
	assert.Equal(t, []string{"A", "B", "C"}, resp.Progress.CompletedLessons)
	require.NotNil(t, resp.NextLesson)
	assert.Equal(t, "B", resp.NextLesson.ID)
	assert.False(t, resp.HasQuiz)

	rec = doRequest(t, router, http.MethodDelete, "/api/v1/courses/c1/lessons/B/complete", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"A", "C"}, decodeBody[models.UserProgress](t, rec).CompletedLessons)

	rec = doRequest(t, router, http.MethodPost, "/api/v1/courses/c2/lessons/D/complete", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
