package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/FreshMeal_Go/internal/domain"
	"github.com/osse101/FreshMeal_Go/internal/logger"
)

// maxBodyBytes caps request bodies; recipes are the largest payload
const maxBodyBytes = 1 << 20

// DecodeAndValidateRequest decodes a JSON request body into req and validates it.
// On failure the 400 response has already been written and the handler should return.
//
//	var req CreateShoppingItemRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Add shopping item"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req any, actionName string) error {
	log := logger.FromContext(r.Context())

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(req); err != nil {
		log.Warn(LogMsgDecodeFailed, "action", actionName, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}
	log.Debug(LogMsgRequestDecoded, "action", actionName)

	if err := GetValidator().ValidateStruct(req); err != nil {
		log.Warn(LogMsgValidationFailed, "action", actionName, "error", err)
		respondJSON(w, http.StatusBadRequest, ErrorResponse{
			Message: ErrMsgValidationFailed,
			Fields:  FormatValidationError(err),
		})
		return err
	}
	return nil
}

// GetOptionalQueryParam returns the query parameter or defaultValue when it is absent
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	if value := r.URL.Query().Get(paramName); value != "" {
		return value
	}
	return defaultValue
}

// optionalDateParam parses an optional YYYY-MM-DD query parameter. A nil date means absent.
// On a malformed value the 400 has been written and ok is false.
func optionalDateParam(w http.ResponseWriter, r *http.Request, paramName string) (*domain.Date, bool) {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return nil, true
	}
	d, err := domain.ParseDate(value)
	if err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidDateParam, paramName))
		return nil, false
	}
	return &d, true
}

// dateURLParam parses a YYYY-MM-DD path parameter
func dateURLParam(w http.ResponseWriter, r *http.Request, paramName string) (domain.Date, bool) {
	d, err := domain.ParseDate(chi.URLParam(r, paramName))
	if err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidDateParam, paramName))
		return domain.Date{}, false
	}
	return d, true
}

// int64URLParam parses a positive integer path parameter
func int64URLParam(w http.ResponseWriter, r *http.Request, paramName string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, paramName), 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidIDParam, paramName))
		return 0, false
	}
	return id, true
}
