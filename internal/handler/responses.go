package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/FreshMeal_Go/internal/domain"
	"github.com/osse101/FreshMeal_Go/internal/logger"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload any) {
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode before writing headers so a failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		http.Error(w, ErrMsgServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Message: message})
}

// RespondError writes the API error body for middleware outside this package
func RespondError(w http.ResponseWriter, status int, message string) {
	respondError(w, status, message)
}

// respondServiceError logs err and writes the response mapServiceError picks for it
func respondServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status, body := mapServiceError(err)

	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(LogMsgServiceError, "operation", op, "error", err)
	} else {
		log.Warn(LogMsgRejectedRequest, "operation", op, "status", status, "error", err)
	}
	respondJSON(w, status, body)
}

// notFoundMessages keeps the wording of the planner API for its 404s
var notFoundMessages = []struct {
	err     error
	message string
}{
	{domain.ErrRecipeNotFound, ErrMsgRecipeNotFound},
	{domain.ErrDefaultPlanNotFound, ErrMsgDefaultPlanNotFound},
	{domain.ErrPlanNotFound, ErrMsgPlanNotFound},
	{domain.ErrPlannedMealNotFound, ErrMsgPlannedMealNotFound},
	{domain.ErrShoppingItemNotFound, ErrMsgShoppingItemNotFound},
}

// mapServiceError converts a service error into an HTTP status and body.
// Anything outside the domain taxonomy is a 500 with a generic message.
func mapServiceError(err error) (int, ErrorResponse) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, ErrorResponse{Message: ErrMsgServerError}

	case errors.Is(err, domain.ErrNotFound):
		for _, nf := range notFoundMessages {
			if errors.Is(err, nf.err) {
				return http.StatusNotFound, ErrorResponse{Message: nf.message}
			}
		}
		return http.StatusNotFound, ErrorResponse{Message: ErrMsgNotFound}

	case errors.Is(err, domain.ErrValidation):
		resp := ErrorResponse{Message: domain.Message(err)}
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			resp.Message = ErrMsgValidationFailed
			resp.Fields = map[string]string{ve.Field: ve.Message}
		}
		if resp.Message == "" {
			resp.Message = ErrMsgValidationFailed
		}
		return http.StatusBadRequest, resp

	case errors.Is(err, domain.ErrRecipeInUse):
		return http.StatusConflict, ErrorResponse{Message: ErrMsgRecipeInUse}

	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, ErrorResponse{Message: ErrMsgConflict}
	}

	return http.StatusInternalServerError, ErrorResponse{Message: ErrMsgServerError}
}
