package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/learnhub/backend/internal/models"
	"go.uber.org/zap"
)

// NotesService is the interface that wraps methods for lesson notes
type NotesService interface {
	// SaveNote stores the note of a lesson, replacing any previous one
	//
	// Returns the updated progress, a models.NotFoundError for an unknown course or lesson,
	// or an error wrapping models.ErrNotEnrolled.
	SaveNote(ctx context.Context, courseID, lessonID, content string) (*models.UserProgress, error)
	// DeleteNote removes the note of a lesson
	//
	// Returns a models.NotFoundError if the lesson has no note.
	DeleteNote(ctx context.Context, courseID, lessonID string) (*models.UserProgress, error)
	// ListNotes retrieves the notes of every enrolled course, most recently modified first
	ListNotes(ctx context.Context, filter models.NoteFilter) ([]models.Note, error)
}

// NoteHandler handles HTTP requests for lesson notes
type NoteHandler struct {
	BaseHandler
	service NotesService
}

// NewNoteHandler creates a new note handler
func NewNoteHandler(svc NotesService, logger *zap.Logger) *NoteHandler {
	return &NoteHandler{
		service:     svc,
		BaseHandler: BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers all note handler routes
func (h *NoteHandler) RegisterRoutes(r chi.Router) {
	r.Get("/notes", h.List)
	r.Put("/courses/{courseId}/lessons/{lessonId}/note", h.Save)
	r.Delete("/courses/{courseId}/lessons/{lessonId}/note", h.Delete)
}

// List handles GET /notes
// @Summary List notes
// @Description List non-blank notes newest first, optionally filtered by course and search text
// @Tags notes
// @Produce json
// @Param search query string false "Case-insensitive search over note content, course title and lesson title"
// @Param courseId query string false "Course ID, or all"
// @Success 200 {array} models.Note "Notes"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /notes [get]
func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	notes, err := h.service.ListNotes(r.Context(), models.NoteFilter{
		Search:   query.Get("search"),
		CourseID: query.Get("courseId"),
	})
	if err != nil {
		h.RespondServiceError(w, err, "list notes")
		return
	}

	h.RespondJSON(w, http.StatusOK, notes)
}

// Save handles PUT /courses/{courseId}/lessons/{lessonId}/note
// @Summary Save a lesson note
// @Tags notes
// @Accept json
// @Produce json
// @Param courseId path string true "Course ID"
// @Param lessonId path string true "Lesson ID"
// @Param note body models.SaveNoteRequest true "Note"
// @Success 200 {object} models.UserProgress "Updated progress"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 403 {object} map[string]string "Not enrolled"
// @Failure 404 {object} map[string]string "Course or lesson not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /courses/{courseId}/lessons/{lessonId}/note [put]
func (h *NoteHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req models.SaveNoteRequest
	if err := h.DecodeJSON(r, &req); err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	progress, err := h.service.SaveNote(r.Context(), chi.URLParam(r, "courseId"), chi.URLParam(r, "lessonId"), req.Content)
	if err != nil {
		h.RespondServiceError(w, err, "save note")
		return
	}

	h.RespondJSON(w, http.StatusOK, progress)
}

// Delete handles DELETE /courses/{courseId}/lessons/{lessonId}/note
// @Summary Delete a lesson note
// @Tags notes
// @Produce json
// @Param courseId path string true "Course ID"
// @Param lessonId path string true "Lesson ID"
// @Success 200 {object} models.UserProgress "Updated progress"
// @Failure 403 {object} map[string]string "Not enrolled"
// @Failure 404 {object} map[string]string "Course, lesson or note not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /courses/{courseId}/lessons/{lessonId}/note [delete]
func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	progress, err := h.service.DeleteNote(r.Context(), chi.URLParam(r, "courseId"), chi.URLParam(r, "lessonId"))
	if err != nil {
		h.RespondServiceError(w, err, "delete note")
		return
	}

	h.RespondJSON(w, http.StatusOK, progress)
}
