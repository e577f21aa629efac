package server

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/jonathan/talent-matcher/internal/embedding"
	"github.com/jonathan/talent-matcher/internal/extraction"
	"github.com/jonathan/talent-matcher/internal/schemas"
)

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// handleError maps pipeline and store failures onto HTTP statuses:
// unsupported or unreadable document 400, encoder unavailable 503,
// schema validation 422, everything else 500.
func (s *Server) handleError(w http.ResponseWriter, err error) {
	var extractionErr *extraction.ExtractionError
	switch {
	case errors.Is(err, extraction.ErrUnsupportedFormat):
		s.errorResponse(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &extractionErr):
		s.errorResponse(w, http.StatusBadRequest, extractionErr.Error())
	case errors.Is(err, embedding.ErrModelUnavailable):
		s.errorResponse(w, http.StatusServiceUnavailable, "embedding model unavailable, retry later")
	default:
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			s.validationErrorResponse(w, validationErr)
			return
		}
		s.logger.Error("internal error", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "internal error")
	}
}

// validationErrorResponse writes a 422 with per-field details
func (s *Server) validationErrorResponse(w http.ResponseWriter, validationErr *schemas.ValidationError) {
	fields := make([]map[string]string, 0, len(validationErr.Errors))
	for _, fieldErr := range validationErr.Errors {
		fields = append(fields, map[string]string{
			"field":   fieldErr.Field,
			"message": fieldErr.Message,
		})
	}
	s.jsonResponse(w, http.StatusUnprocessableEntity, map[string]any{
		"error":  "validation failed",
		"fields": fields,
	})
}
