package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/learnhub/backend/internal/models"
	"go.uber.org/zap"
)

// QuizService is the interface that wraps methods for quiz business logic
type QuizService interface {
	// GetQuiz retrieves a quiz by its ID
	GetQuiz(ctx context.Context, id string) (*models.Quiz, error)
	// GetQuizForLesson retrieves the quiz attached to a lesson
	//
	// Returns a models.NotFoundError if the lesson has no quiz.
	GetQuizForLesson(ctx context.Context, lessonID string) (*models.Quiz, error)
	// CreateQuiz validates and stores a new quiz
	//
	// Returns an error wrapping models.ErrAlreadyExists if the lesson already has a quiz.
	CreateQuiz(ctx context.Context, req *models.CreateQuizRequest) (*models.Quiz, error)
	// UpdateQuiz validates and applies a partial quiz update
	UpdateQuiz(ctx context.Context, id string, req *models.UpdateQuizRequest) (*models.Quiz, error)
	// DeleteQuiz removes a quiz
	DeleteQuiz(ctx context.Context, id string) error
	// PreviewQuiz grades an answer set without storing it
	//
	// "answers" maps question index to the selected option index; unanswered questions count as wrong.
	PreviewQuiz(ctx context.Context, quizID string, answers map[int]int) (*models.QuizResult, error)
	// SubmitQuiz grades a fully answered attempt and stores the score in the course progress
	//
	// "ctx" is the context for the request.
	// "courseID" is the course the quiz is taken in; the quiz's lesson must belong to it.
	// "quizID" is the ID of the quiz.
	// "answers" maps question index to the selected option index.
	//
	// Returns models.ErrIncompleteSubmission if a question is unanswered and an error
	// wrapping models.ErrNotEnrolled if the user is not enrolled in the course.
	SubmitQuiz(ctx context.Context, courseID, quizID string, answers map[int]int) (*models.QuizSubmissionResponse, error)
}

// QuizHandler handles HTTP requests for quizzes
type QuizHandler struct {
	BaseHandler
	service QuizService
}

// NewQuizHandler creates a new quiz handler
func NewQuizHandler(svc QuizService, logger *zap.Logger) *QuizHandler {
	return &QuizHandler{
		service:     svc,
		BaseHandler: BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers all quiz handler routes
func (h *QuizHandler) RegisterRoutes(r chi.Router) {
	r.Post("/courses/{courseId}/quizzes/{quizId}/submit", h.Submit)
	r.Get("/lessons/{lessonId}/quiz", h.GetForLesson)
	r.Route("/quizzes", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/{quizId}", h.GetByID)
		r.Patch("/{quizId}", h.Update)
		r.Delete("/{quizId}", h.Delete)
		r.Post("/{quizId}/preview", h.Preview)
	})
}

// GetByID handles GET /quizzes/{quizId}
// @Summary Get a quiz
// @Tags quizzes
// @Produce json
// @Param quizId path string true "Quiz ID"
// @Success 200 {object} models.Quiz "Quiz"
// @Failure 404 {object} map[string]string "Quiz not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /quizzes/{quizId} [get]
func (h *QuizHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	quiz, err := h.service.GetQuiz(r.Context(), chi.URLParam(r, "quizId"))
	if err != nil {
		h.RespondServiceError(w, err, "get quiz")
		return
	}

	h.RespondJSON(w, http.StatusOK, quiz)
}

// GetForLesson handles GET /lessons/{lessonId}/quiz
// @Summary Get the quiz of a lesson
// @Tags quizzes
// @Produce json
// @Param lessonId path string true "Lesson ID"
// @Success 200 {object} models.Quiz "Quiz"
// @Failure 404 {object} map[string]string "Lesson has no quiz"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /lessons/{lessonId}/quiz [get]
func (h *QuizHandler) GetForLesson(w http.ResponseWriter, r *http.Request) {
	quiz, err := h.service.GetQuizForLesson(r.Context(), chi.URLParam(r, "lessonId"))
	if err != nil {
		h.RespondServiceError(w, err, "get quiz for lesson")
		return
	}

	h.RespondJSON(w, http.StatusOK, quiz)
}

// Create handles POST /quizzes
// @Summary Create a quiz
// @Description Create a quiz for a lesson; passingScore defaults to 70
// @Tags quizzes
// @Accept json
// @Produce json
// @Param quiz body models.CreateQuizRequest true "Quiz"
// @Success 201 {object} models.Quiz "Created quiz"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 409 {object} map[string]string "Lesson already has a quiz"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /quizzes [post]
func (h *QuizHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateQuizRequest
	if err := h.DecodeJSON(r, &req); err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	quiz, err := h.service.CreateQuiz(r.Context(), &req)
	if err != nil {
		h.RespondServiceError(w, err, "create quiz")
		return
	}

	h.RespondJSON(w, http.StatusCreated, quiz)
}

// Update handles PATCH /quizzes/{quizId}
// @Summary Update a quiz
// @Tags quizzes
// @Accept json
// @Produce json
// @Param quizId path string true "Quiz ID"
// @Param quiz body models.UpdateQuizRequest true "Fields to update"
// @Success 200 {object} models.Quiz "Updated quiz"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 404 {object} map[string]string "Quiz not found"
// @Failure 409 {object} map[string]string "Lesson already has a quiz"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /quizzes/{quizId} [patch]
func (h *QuizHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateQuizRequest
	if err := h.DecodeJSON(r, &req); err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	quiz, err := h.service.UpdateQuiz(r.Context(), chi.URLParam(r, "quizId"), &req)
	if err != nil {
		h.RespondServiceError(w, err, "update quiz")
		return
	}

	h.RespondJSON(w, http.StatusOK, quiz)
}

// Delete handles DELETE /quizzes/{quizId}
// @Summary Delete a quiz
// @Tags quizzes
// @Param quizId path string true "Quiz ID"
// @Success 204 "Quiz deleted"
// @Failure 404 {object} map[string]string "Quiz not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /quizzes/{quizId} [delete]
func (h *QuizHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteQuiz(r.Context(), chi.URLParam(r, "quizId")); err != nil {
		h.RespondServiceError(w, err, "delete quiz")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Preview handles POST /quizzes/{quizId}/preview
// @Summary Grade answers without saving
// @Tags quizzes
// @Accept json
// @Produce json
// @Param quizId path string true "Quiz ID"
// @Param answers body models.QuizAnswersRequest true "Selected option per question index"
// @Success 200 {object} models.QuizResult "Grading result"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 404 {object} map[string]string "Quiz not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /quizzes/{quizId}/preview [post]
func (h *QuizHandler) Preview(w http.ResponseWriter, r *http.Request) {
	var req models.QuizAnswersRequest
	if err := h.DecodeJSON(r, &req); err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.PreviewQuiz(r.Context(), chi.URLParam(r, "quizId"), req.Answers)
	if err != nil {
		h.RespondServiceError(w, err, "preview quiz")
		return
	}

	h.RespondJSON(w, http.StatusOK, result)
}

// Submit handles POST /courses/{courseId}/quizzes/{quizId}/submit
// @Summary Submit a quiz attempt
// @Description Grade a fully answered attempt and store the score; a retake overwrites the previous score
// @Tags quizzes
// @Accept json
// @Produce json
// @Param courseId path string true "Course ID"
// @Param quizId path string true "Quiz ID"
// @Param answers body models.QuizAnswersRequest true "Selected option per question index"
// @Success 200 {object} models.QuizSubmissionResponse "Grading result and updated progress"
// @Failure 400 {object} map[string]string "Invalid body or unanswered questions"
// @Failure 403 {object} map[string]string "Not enrolled"
// @Failure 404 {object} map[string]string "Course, quiz or lesson not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /courses/{courseId}/quizzes/{quizId}/submit [post]
func (h *QuizHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.QuizAnswersRequest
	if err := h.DecodeJSON(r, &req); err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.service.SubmitQuiz(r.Context(), chi.URLParam(r, "courseId"), chi.URLParam(r, "quizId"), req.Answers)
	if err != nil {
		h.RespondServiceError(w, err, "submit quiz")
		return
	}

	h.RespondJSON(w, http.StatusOK, resp)
}
