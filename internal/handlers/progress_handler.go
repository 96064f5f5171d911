package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/learnhub/backend/internal/models"
	"go.uber.org/zap"
)

// ProgressService is the interface that wraps methods for learning progress reporting
type ProgressService interface {
	// ListProgress retrieves every progress record
	ListProgress(ctx context.Context) ([]models.UserProgress, error)
	// GetProgress retrieves the progress record of a course
	//
	// Returns a models.NotFoundError if the course does not exist or the user is not enrolled.
	GetProgress(ctx context.Context, courseID string) (*models.UserProgress, error)
	// GetCourseProgressList retrieves every enrolled course with its completion state
	GetCourseProgressList(ctx context.Context) ([]models.CourseProgressItem, error)
	// GetOverallStats aggregates completion across enrolled courses
	GetOverallStats(ctx context.Context) (*models.OverallStats, error)
	// GetRecentActivity retrieves the most recently accessed enrolled courses
	//
	// "limit" caps the number of items; a non-positive value uses the default of 5.
	GetRecentActivity(ctx context.Context, limit int) ([]models.CourseProgressItem, error)
}

// ProgressHandler handles HTTP requests for progress and statistics
type ProgressHandler struct {
	BaseHandler
	service ProgressService
}

// NewProgressHandler creates a new progress handler
func NewProgressHandler(svc ProgressService, logger *zap.Logger) *ProgressHandler {
	return &ProgressHandler{
		service:     svc,
		BaseHandler: BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers all progress handler routes
func (h *ProgressHandler) RegisterRoutes(r chi.Router) {
	r.Get("/courses/{courseId}/progress", h.GetForCourse)
	r.Route("/progress", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/stats", h.GetStats)
		r.Get("/recent", h.GetRecent)
		r.Get("/courses", h.GetCourses)
	})
}

// List handles GET /progress
// @Summary List progress records
// @Tags progress
// @Produce json
// @Success 200 {array} models.UserProgress "Progress records"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /progress [get]
func (h *ProgressHandler) List(w http.ResponseWriter, r *http.Request) {
	progress, err := h.service.ListProgress(r.Context())
	if err != nil {
		h.RespondServiceError(w, err, "list progress")
		return
	}

	h.RespondJSON(w, http.StatusOK, progress)
}

// GetForCourse handles GET /courses/{courseId}/progress
// @Summary Get the progress of a course
// @Tags progress
// @Produce json
// @Param courseId path string true "Course ID"
// @Success 200 {object} models.UserProgress "Progress"
// @Failure 404 {object} map[string]string "Course not found or not enrolled"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /courses/{courseId}/progress [get]
func (h *ProgressHandler) GetForCourse(w http.ResponseWriter, r *http.Request) {
	progress, err := h.service.GetProgress(r.Context(), chi.URLParam(r, "courseId"))
	if err != nil {
		h.RespondServiceError(w, err, "get progress")
		return
	}

	h.RespondJSON(w, http.StatusOK, progress)
}

// GetStats handles GET /progress/stats
// @Summary Get overall statistics
// @Description Totals of courses and lessons, completed counts, average progress and certificates
// @Tags progress
// @Produce json
// @Success 200 {object} models.OverallStats "Statistics"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /progress/stats [get]
func (h *ProgressHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetOverallStats(r.Context())
	if err != nil {
		h.RespondServiceError(w, err, "get statistics")
		return
	}

	h.RespondJSON(w, http.StatusOK, stats)
}

// GetRecent handles GET /progress/recent
// @Summary Get recent activity
// @Tags progress
// @Produce json
// @Param limit query int false "Maximum number of courses (default: 5)"
// @Success 200 {array} models.CourseProgressItem "Recently accessed courses"
// @Failure 400 {object} map[string]string "Invalid limit"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /progress/recent [get]
func (h *ProgressHandler) GetRecent(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		l, err := strconv.Atoi(limitStr)
		if err != nil || l <= 0 {
			h.RespondError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = l
	}

	items, err := h.service.GetRecentActivity(r.Context(), limit)
	if err != nil {
		h.RespondServiceError(w, err, "get recent activity")
		return
	}

	h.RespondJSON(w, http.StatusOK, items)
}

// GetCourses handles GET /progress/courses
// @Summary Get progress per enrolled course
// @Tags progress
// @Produce json
// @Success 200 {array} models.CourseProgressItem "Enrolled courses"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /progress/courses [get]
func (h *ProgressHandler) GetCourses(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.GetCourseProgressList(r.Context())
	if err != nil {
		h.RespondServiceError(w, err, "get course progress")
		return
	}

	h.RespondJSON(w, http.StatusOK, items)
}
