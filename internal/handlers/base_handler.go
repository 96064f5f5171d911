package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/learnhub/backend/internal/models"
	"go.uber.org/zap"
)

// BaseHandler provides common handler functionality
type BaseHandler struct {
	Logger *zap.Logger
}

// RespondJSON sends a JSON response
func (h *BaseHandler) RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.Logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// RespondError sends an error JSON response
func (h *BaseHandler) RespondError(w http.ResponseWriter, status int, message string) {
	h.RespondJSON(w, status, map[string]string{"error": message})
}

// RespondServiceError maps a service error onto its HTTP status.
// Unclassified errors are logged and reported as a generic 500.
func (h *BaseHandler) RespondServiceError(w http.ResponseWriter, err error, action string) {
	var notFound *models.NotFoundError
	switch {
	case errors.As(err, &notFound):
		h.RespondError(w, http.StatusNotFound, notFound.Error())
	case errors.Is(err, models.ErrInvalidInput), errors.Is(err, models.ErrIncompleteSubmission):
		h.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrNotEnrolled):
		h.RespondError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, models.ErrAlreadyExists):
		h.RespondError(w, http.StatusConflict, err.Error())
	default:
		h.Logger.Error("failed to "+action, zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "internal server error")
	}
}

// DecodeJSON decodes the request body into dst, rejecting unknown fields
func (h *BaseHandler) DecodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: request body is empty", models.ErrInvalidInput)
		}
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return fmt.Errorf("%w: request body too large", models.ErrInvalidInput)
		}
		return fmt.Errorf("%w: invalid request body: %v", models.ErrInvalidInput, err)
	}
	return nil
}
