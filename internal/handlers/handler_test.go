package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/learnhub/backend/internal/models"
	"github.com/learnhub/backend/internal/repositories"
	"github.com/learnhub/backend/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testNow = time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)

func testLesson(id string) models.Lesson {
	return models.Lesson{ID: id, Title: "Lesson " + id, Type: "reading", Duration: 10}
}

func testCourses() []models.Course {
	return []models.Course{
		{
			ID:         "c1",
			Title:      "Go Basics",
			Instructor: "Maria",
			Category:   "programming",
			Difficulty: models.DifficultyBeginner,
			Modules: []models.Module{
				{ID: "m1", Title: "module1", Lessons: []models.Lesson{testLesson("A"), testLesson("B")}},
				{ID: "m2", Title: "module2", Lessons: []models.Lesson{testLesson("C")}},
			},
		},
		{
			ID:         "c2",
			Title:      "Charts",
			Instructor: "Daniel",
			Category:   "data",
			Difficulty: models.DifficultyIntermediate,
			Modules: []models.Module{
				{ID: "m3", Title: "module3", Lessons: []models.Lesson{testLesson("D")}},
			},
		},
	}
}

func testQuizzes() []models.Quiz {
	return []models.Quiz{{
		ID:           "q1",
		LessonID:     "B",
		PassingScore: 70,
		Questions: []models.Question{
			{Question: "first", Options: []string{"x", "y"}, CorrectAnswer: 1},
			{Question: "second", Options: []string{"x", "y"}, CorrectAnswer: 0},
		},
	}}
}

// newTestRouter wires every handler onto a chi router backed by in-memory repositories
func newTestRouter(progress ...models.UserProgress) chi.Router {
	logger := zap.NewNop()
	clock := repositories.WithClock(func() time.Time { return testNow })

	courseRepo := repositories.NewCourseRepository(testCourses(), clock)
	quizRepo := repositories.NewQuizRepository(testQuizzes(), clock)
	progressRepo := repositories.NewUserProgressRepository(progress, clock)

	r := chi.NewRouter()
	r.Route("/api/v1", func(r chi.Router) {
		NewCourseHandler(services.NewCatalogService(courseRepo, progressRepo, logger), logger).RegisterRoutes(r)
		NewLessonHandler(services.NewLearningService(courseRepo, quizRepo, progressRepo, logger), logger).RegisterRoutes(r)
		NewQuizHandler(services.NewQuizService(quizRepo, courseRepo, progressRepo, logger), logger).RegisterRoutes(r)
		NewProgressHandler(services.NewProgressService(courseRepo, progressRepo, logger), logger).RegisterRoutes(r)
		NewNoteHandler(services.NewNotesService(courseRepo, progressRepo, logger), logger).RegisterRoutes(r)
	})
	return r
}

func doRequest(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestRespondServiceError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedBody   string
	}{
		{name: "not found", err: fmt.Errorf("failed to get course: %w", models.NewNotFoundError("course", "x")), expectedStatus: http.StatusNotFound, expectedBody: "course not found: x"},
		{name: "invalid input", err: fmt.Errorf("%w: title is required", models.ErrInvalidInput), expectedStatus: http.StatusBadRequest, expectedBody: "invalid input: title is required"},
		{name: "incomplete submission", err: models.ErrIncompleteSubmission, expectedStatus: http.StatusBadRequest, expectedBody: "all questions must be answered"},
		{name: "not enrolled", err: fmt.Errorf("%w: c1", models.ErrNotEnrolled), expectedStatus: http.StatusForbidden, expectedBody: "not enrolled in course: c1"},
		{name: "already exists", err: models.ErrAlreadyExists, expectedStatus: http.StatusConflict, expectedBody: "already exists"},
		{name: "unclassified", err: errors.New("disk on fire"), expectedStatus: http.StatusInternalServerError, expectedBody: "internal server error"},
		{name: "context canceled", err: context.Canceled, expectedStatus: http.StatusInternalServerError, expectedBody: "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := BaseHandler{Logger: zap.NewNop()}
			rec := httptest.NewRecorder()

			h.RespondServiceError(rec, tt.err, "test")

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			body := decodeBody[map[string]string](t, rec)
			assert.Equal(t, tt.expectedBody, body["error"])
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expectError bool
	}{
		{name: "valid", body: `{"content":"hello"}`},
		{name: "empty body", body: "", expectError: true},
		{name: "malformed", body: `{"content":`, expectError: true},
		{name: "unknown field", body: `{"content":"x","extra":1}`, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := BaseHandler{Logger: zap.NewNop()}
			req := httptest.NewRequest(http.MethodPut, "/", bytes.NewBufferString(tt.body))

			var dst models.SaveNoteRequest
			err := h.DecodeJSON(req, &dst)

			if tt.expectError {
				assert.ErrorIs(t, err, models.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "hello", dst.Content)
		})
	}
}
