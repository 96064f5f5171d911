package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/learnhub/backend/internal/models"
	"go.uber.org/zap"
)

// LearningService is the interface that wraps methods for enrollment and lesson study
type LearningService interface {
	// Enroll creates the progress record for a course
	//
	// "ctx" is the context for the request.
	// "courseID" is the ID of the course.
	//
	// Returns the progress record and whether it was created by this call.
	// Enrolling in an already enrolled course returns the existing record.
	Enroll(ctx context.Context, courseID string) (*models.UserProgress, bool, error)
	// GetLessonView retrieves a lesson with navigation, completion state, note and quiz
	//
	// Returns a models.NotFoundError for an unknown course or lesson, and an error
	// wrapping models.ErrNotEnrolled if the user is not enrolled in the course.
	GetLessonView(ctx context.Context, courseID, lessonID string) (*models.LessonViewResponse, error)
	// CompleteLesson marks a lesson as completed
	//
	// Returns the updated progress and the next lesson in course order, if any.
	CompleteLesson(ctx context.Context, courseID, lessonID string) (*models.LessonCompletionResponse, error)
	// UncompleteLesson removes a lesson from the completed set
	UncompleteLesson(ctx context.Context, courseID, lessonID string) (*models.UserProgress, error)
}

// LessonHandler handles HTTP requests for enrollment and lessons
type LessonHandler struct {
	BaseHandler
	service LearningService
}

// NewLessonHandler creates a new lesson handler
func NewLessonHandler(svc LearningService, logger *zap.Logger) *LessonHandler {
	return &LessonHandler{
		service:     svc,
		BaseHandler: BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers all lesson handler routes
func (h *LessonHandler) RegisterRoutes(r chi.Router) {
	r.Post("/courses/{courseId}/enroll", h.Enroll)
	r.Get("/courses/{courseId}/lessons/{lessonId}", h.GetLesson)
	r.Post("/courses/{courseId}/lessons/{lessonId}/complete", h.Complete)
	r.Delete("/courses/{courseId}/lessons/{lessonId}/complete", h.Uncomplete)
}

// Enroll handles POST /courses/{courseId}/enroll
// @Summary Enroll in a course
// @Description Create the progress record of a course. Enrolling twice returns the existing record with status 200.
// @Tags lessons
// @Produce json
// @Param courseId path string true "Course ID"
// @Success 201 {object} models.UserProgress "Enrolled"
// @Success 200 {object} models.UserProgress "Already enrolled"
// @Failure 404 {object} map[string]string "Course not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /courses/{courseId}/enroll [post]
func (h *LessonHandler) Enroll(w http.ResponseWriter, r *http.Request) {
	progress, created, err := h.service.Enroll(r.Context(), chi.URLParam(r, "courseId"))
	if err != nil {
		h.RespondServiceError(w, err, "enroll")
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	h.RespondJSON(w, status, progress)
}

// GetLesson handles GET /courses/{courseId}/lessons/{lessonId}
// @Summary Get a lesson
// @Description Get a lesson with its position in the course, completion state, note and quiz
// @Tags lessons
// @Produce json
// @Param courseId path string true "Course ID"
// @Param lessonId path string true "Lesson ID"
// @Success 200 {object} models.LessonViewResponse "Lesson"
// @Failure 403 {object} map[string]string "Not enrolled"
// @Failure 404 {object} map[string]string "Course or lesson not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /courses/{courseId}/lessons/{lessonId} [get]
func (h *LessonHandler) GetLesson(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.GetLessonView(r.Context(), chi.URLParam(r, "courseId"), chi.URLParam(r, "lessonId"))
	if err != nil {
		h.RespondServiceError(w, err, "get lesson")
		return
	}

	h.RespondJSON(w, http.StatusOK, view)
}

// Complete handles POST /courses/{courseId}/lessons/{lessonId}/complete
// @Summary Complete a lesson
// @Tags lessons
// @Produce json
// @Param courseId path string true "Course ID"
// @Param lessonId path string true "Lesson ID"
// @Success 200 {object} models.LessonCompletionResponse "Updated progress and next lesson"
// @Failure 403 {object} map[string]string "Not enrolled"
// @Failure 404 {object} map[string]string "Course or lesson not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /courses/{courseId}/lessons/{lessonId}/complete [post]
func (h *LessonHandler) Complete(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.CompleteLesson(r.Context(), chi.URLParam(r, "courseId"), chi.URLParam(r, "lessonId"))
	if err != nil {
		h.RespondServiceError(w, err, "complete lesson")
		return
	}

	h.RespondJSON(w, http.StatusOK, resp)
}

// Uncomplete handles DELETE /courses/{courseId}/lessons/{lessonId}/complete
// @Summary Mark a lesson as not completed
// @Tags lessons
// @Produce json
// @Param courseId path string true "Course ID"
// @Param lessonId path string true "Lesson ID"
// @Success 200 {object} models.UserProgress "Updated progress"
// @Failure 403 {object} map[string]string "Not enrolled"
// @Failure 404 {object} map[string]string "Course or lesson not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /courses/{courseId}/lessons/{lessonId}/complete [delete]
func (h *LessonHandler) Uncomplete(w http.ResponseWriter, r *http.Request) {
	progress, err := h.service.UncompleteLesson(r.Context(), chi.URLParam(r, "courseId"), chi.URLParam(r, "lessonId"))
	if err != nil {
		h.RespondServiceError(w, err, "uncomplete lesson")
		return
	}

	h.RespondJSON(w, http.StatusOK, progress)
}
