package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/FreshMeal_Go/internal/domain"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   ErrorResponse
	}{
		{"recipe not found", domain.ErrRecipeNotFound, http.StatusNotFound, ErrorResponse{Message: ErrMsgRecipeNotFound}},
		{"wrapped planned meal not found", fmt.Errorf("remove: %w", domain.ErrPlannedMealNotFound), http.StatusNotFound, ErrorResponse{Message: ErrMsgPlannedMealNotFound}},
		{"default plan not found", domain.ErrDefaultPlanNotFound, http.StatusNotFound, ErrorResponse{Message: ErrMsgDefaultPlanNotFound}},
		{"bare not found", domain.ErrNotFound, http.StatusNotFound, ErrorResponse{Message: ErrMsgNotFound}},
		{"past date", domain.ErrPastDate, http.StatusBadRequest, ErrorResponse{Message: domain.ErrMsgPastDate}},
		{"invalid date with detail", fmt.Errorf("%w: %q", domain.ErrInvalidDate, "x"), http.StatusBadRequest, ErrorResponse{Message: domain.ErrMsgInvalidDate}},
		{"field error", domain.NewValidationError("name", "is required"), http.StatusBadRequest, ErrorResponse{
			Message: ErrMsgValidationFailed,
			Fields:  map[string]string{"name": "is required"},
		}},
		{"bare validation", domain.ErrValidation, http.StatusBadRequest, ErrorResponse{Message: ErrMsgValidationFailed}},
		{"recipe in use", domain.ErrRecipeInUse, http.StatusConflict, ErrorResponse{Message: ErrMsgRecipeInUse}},
		{"conflict", fmt.Errorf("insert: %w", domain.ErrConflict), http.StatusConflict, ErrorResponse{Message: ErrMsgConflict}},
		{"internal", errors.New("pq: connection reset"), http.StatusInternalServerError, ErrorResponse{Message: ErrMsgServerError}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := mapServiceError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantBody, body)
		})
	}
}

func TestRespondJSON(t *testing.T) {
	w := httptest.NewRecorder()
	respondJSON(w, http.StatusCreated, SuccessResponse{Message: "done"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message":"done"}`, w.Body.String())
}

func TestRespondJSON_EncodeFailure(t *testing.T) {
	w := httptest.NewRecorder()
	respondJSON(w, http.StatusOK, map[string]any{"bad": make(chan int)})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgServerError)
}
