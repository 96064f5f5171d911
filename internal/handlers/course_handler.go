package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/learnhub/backend/internal/models"
	"go.uber.org/zap"
)

// CourseService is the interface that wraps methods for course catalog business logic
type CourseService interface {
	// ListCourses retrieves the courses matching the browse filter
	//
	// "ctx" is the context for the request.
	// "filter" holds the search text, category and difficulty; an empty value or "all" disables a filter.
	//
	// Returns the matching courses in catalog order and an error if any.
	ListCourses(ctx context.Context, filter models.CourseFilter) ([]models.Course, error)
	// GetCourseDetail retrieves a course together with its totals and the user's enrollment state
	//
	// "ctx" is the context for the request.
	// "id" is the ID of the course.
	//
	// Returns the course detail, or a models.NotFoundError if the course does not exist.
	GetCourseDetail(ctx context.Context, id string) (*models.CourseDetailResponse, error)
	// CreateCourse validates and stores a new course
	//
	// Returns the stored course, or an error wrapping models.ErrInvalidInput if validation fails.
	CreateCourse(ctx context.Context, req *models.CreateCourseRequest) (*models.Course, error)
	// UpdateCourse validates and applies a partial course update
	//
	// Returns the updated course, a models.NotFoundError or an error wrapping models.ErrInvalidInput.
	UpdateCourse(ctx context.Context, id string, req *models.UpdateCourseRequest) (*models.Course, error)
	// DeleteCourse removes a course
	//
	// Returns a models.NotFoundError if the course does not exist.
	DeleteCourse(ctx context.Context, id string) error
}

// CourseHandler handles HTTP requests for the course catalog
type CourseHandler struct {
	BaseHandler
	service CourseService
}

// NewCourseHandler creates a new course handler
func NewCourseHandler(svc CourseService, logger *zap.Logger) *CourseHandler {
	return &CourseHandler{
		service:     svc,
		BaseHandler: BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers all course handler routes
func (h *CourseHandler) RegisterRoutes(r chi.Router) {
	r.Get("/courses", h.List)
	r.Post("/courses", h.Create)
	r.Get("/courses/{courseId}", h.GetByID)
	r.Patch("/courses/{courseId}", h.Update)
	r.Delete("/courses/{courseId}", h.Delete)
}

// List handles GET /courses
// @Summary Browse courses
// @Description Get the course catalog filtered by search text, category and difficulty
// @Tags courses
// @Produce json
// @Param search query string false "Case-insensitive search over title, description and instructor"
// @Param category query string false "Category, or all"
// @Param difficulty query string false "Difficulty (beginner, intermediate, advanced), or all"
// @Success 200 {array} models.Course "List of courses"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /courses [get]
func (h *CourseHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := models.CourseFilter{
		Search:     query.Get("search"),
		Category:   query.Get("category"),
		Difficulty: query.Get("difficulty"),
	}

	courses, err := h.service.ListCourses(r.Context(), filter)
	if err != nil {
		h.RespondServiceError(w, err, "list courses")
		return
	}

	h.RespondJSON(w, http.StatusOK, courses)
}

// GetByID handles GET /courses/{courseId}
// @Summary Get course detail
// @Description Get a course with its modules, lesson totals and enrollment state
// @Tags courses
// @Produce json
// @Param courseId path string true "Course ID"
// @Success 200 {object} models.CourseDetailResponse "Course detail"
// @Failure 404 {object} map[string]string "Course not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /courses/{courseId} [get]
func (h *CourseHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	detail, err := h.service.GetCourseDetail(r.Context(), chi.URLParam(r, "courseId"))
	if err != nil {
		h.RespondServiceError(w, err, "get course")
		return
	}

	h.RespondJSON(w, http.StatusOK, detail)
}

// Create handles POST /courses
// @Summary Create a course
// @Tags courses
// @Accept json
// @Produce json
// @Param course body models.CreateCourseRequest true "Course"
// @Success 201 {object} models.Course "Created course"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /courses [post]
func (h *CourseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCourseRequest
	if err := h.DecodeJSON(r, &req); err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	course, err := h.service.CreateCourse(r.Context(), &req)
	if err != nil {
		h.RespondServiceError(w, err, "create course")
		return
	}

	h.RespondJSON(w, http.StatusCreated, course)
}

// Update handles PATCH /courses/{courseId}
// @Summary Update a course
// @Description Apply a partial update; absent fields are left untouched
// @Tags courses
// @Accept json
// @Produce json
// @Param courseId path string true "Course ID"
// @Param course body models.UpdateCourseRequest true "Fields to update"
// @Success 200 {object} models.Course "Updated course"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 404 {object} map[string]string "Course not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /courses/{courseId} [patch]
func (h *CourseHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateCourseRequest
	if err := h.DecodeJSON(r, &req); err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	course, err := h.service.UpdateCourse(r.Context(), chi.URLParam(r, "courseId"), &req)
	if err != nil {
		h.RespondServiceError(w, err, "update course")
		return
	}

	h.RespondJSON(w, http.StatusOK, course)
}

// Delete handles DELETE /courses/{courseId}
// @Summary Delete a course
// @Tags courses
// @Param courseId path string true "Course ID"
// @Success 204 "Course deleted"
// @Failure 404 {object} map[string]string "Course not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /courses/{courseId} [delete]
func (h *CourseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteCourse(r.Context(), chi.URLParam(r, "courseId")); err != nil {
		h.RespondServiceError(w, err, "delete course")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
