package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"vehicles-api/internal/domain"
)

// VehicleService defines the service interface.
// This allows testing handlers without real service implementation.
type VehicleService interface {
	Create(ctx context.Context, v *domain.Vehicle) (*domain.Vehicle, error)
	Get(ctx context.Context, id int64) (*domain.Vehicle, error)
	Update(ctx context.Context, id int64, v *domain.Vehicle) (*domain.Vehicle, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, f domain.Filters) ([]*domain.Vehicle, error)
}

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	service VehicleService
	logger  *slog.Logger
}

// New creates a new Handler with the given dependencies.
// A nil logger falls back to slog.Default().
func New(service VehicleService, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		service: service,
		logger:  logger,
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (h *Handler) writeError(w http.ResponseWriter, status int, code, message string) {
	h.writeJSON(w, status, ErrorResponse{
		Error:   code,
		Message: message,
	})
}

// writeServiceError maps service errors onto HTTP responses.
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error, action string) {
	var verr *domain.ValidationError
	var merr *domain.MalformedInputError

	switch {
	case errors.As(err, &verr):
		resp := ErrorResponse{
			Error:   "validation_error",
			Message: verr.Error(),
		}
		for _, v := range verr.Violations {
			resp.Violations = append(resp.Violations, ViolationResponse{Field: v.Field, Message: v.Message})
		}
		h.writeJSON(w, http.StatusBadRequest, resp)
	case errors.As(err, &merr):
		h.writeError(w, http.StatusBadRequest, "invalid_query", merr.Error())
	case errors.Is(err, domain.ErrNotFound):
		h.writeError(w, http.StatusNotFound, "not_found", "vehicle not found")
	default:
		h.logger.ErrorContext(r.Context(), "request failed", "action", action, "error", err)
		h.writeError(w, http.StatusInternalServerError, "internal_error", "failed to "+action)
	}
}
