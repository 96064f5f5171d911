package handlers

import (
	"net/http"
	"testing"

	"github.com/learnhub/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuizHandler_Submit(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		body           any
		expectedStatus int
		expectedScore  int
		expectedPassed bool
	}{
		{
			name:           "half correct",
			path:           "/api/v1/courses/c1/quizzes/q1/submit",
			body:           `{"answers":{"0":1,"1":1}}`,
			expectedStatus: http.StatusOK,
			expectedScore:  50,
		},
		{
			name:           "all correct",
			path:           "/api/v1/courses/c1/quizzes/q1/submit",
			body:           models.QuizAnswersRequest{Answers: map[int]int{0: 1, 1: 0}},
			expectedStatus: http.StatusOK,
			expectedScore:  100,
			expectedPassed: true,
		},
		{
			name:           "unanswered question",
			path:           "/api/v1/courses/c1/quizzes/q1/submit",
			body:           `{"answers":{"0":1}}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "quiz of another course",
			path:           "/api/v1/courses/c2/quizzes/q1/submit",
			body:           `{"answers":{"0":1,"1":0}}`,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "unknown quiz",
			path:           "/api/v1/courses/c1/quizzes/nope/submit",
			body:           `{"answers":{"0":1,"1":0}}`,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "malformed body",
			path:           "/api/v1/courses/c1/quizzes/q1/submit",
			body:           `{"answers":[1,0]}`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(models.UserProgress{ID: "p1", CourseID: "c1"})

			rec := doRequest(t, router, http.MethodPost, tt.path, tt.body)

			require.Equal(t, tt.expectedStatus, rec.Code, rec.Body.String())
			if tt.expectedStatus != http.StatusOK {
				return
			}
			resp := decodeBody[models.QuizSubmissionResponse](t, rec)
			assert.Equal(t, tt.expectedScore, resp.Score)
			assert.Equal(t, tt.expectedPassed, resp.Passed)
			assert.Equal(t, 2, resp.TotalQuestions)
			assert.Equal(t, 70, resp.PassingScore)
			assert.Equal(t, models.QuizScore{Score: tt.expectedScore, Passed: tt.expectedPassed}, resp.Progress.QuizScores["q1"])
		})
	}
}

func TestQuizHandler_SubmitNotEnrolled(t *testing.T) {
	router := newTestRouter()

	rec := doRequest(t, router, http.MethodPost, "/api/v1/courses/c1/quizzes/q1/submit", `{"answers":{"0":1,"1":0}}`)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestQuizHandler_Preview(t *testing.T) {
	router := newTestRouter()

	rec := doRequest(t, router, http.MethodPost, "/api/v1/quizzes/q1/preview", `{"answers":{"0":1}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	result := decodeBody[models.QuizResult](t, rec)
	assert.Equal(t, models.QuizResult{Score: 50, Passed: false, CorrectCount: 1, TotalQuestions: 2}, result)

	rec = doRequest(t, router, http.MethodGet, "/api/v1/progress", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeBody[[]models.UserProgress](t, rec))
}

func TestQuizHandler_CRUD(t *testing.T) {
	router := newTestRouter()

	rec := doRequest(t, router, http.MethodGet, "/api/v1/quizzes/q1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "B", decodeBody[models.Quiz](t, rec).LessonID)

	rec = doRequest(t, router, http.MethodGet, "/api/v1/lessons/B/quiz", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "q1", decodeBody[models.Quiz](t, rec).ID)

	rec = doRequest(t, router, http.MethodGet, "/api/v1/lessons/A/quiz", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/api/v1/quizzes", `{"lessonId":"B"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/api/v1/quizzes", `{"lessonId":"C","questions":[{"question":"?","options":["a","b"],"correctAnswer":1}]}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody[models.Quiz](t, rec)
	assert.Equal(t, models.DefaultPassingScore, created.PassingScore)

	rec = doRequest(t, router, http.MethodPatch, "/api/v1/quizzes/"+created.ID, `{"passingScore":90}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 90, decodeBody[models.Quiz](t, rec).PassingScore)

	rec = doRequest(t, router, http.MethodPatch, "/api/v1/quizzes/"+created.ID, `{"passingScore":101}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, router, http.MethodDelete, "/api/v1/quizzes/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/api/v1/quizzes/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
