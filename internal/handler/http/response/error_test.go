package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cmlabs-hris/timesheet-portal/internal/domain/employee"
	"github.com/cmlabs-hris/timesheet-portal/internal/domain/worklog"
	"github.com/cmlabs-hris/timesheet-portal/internal/pkg/backend"
	"github.com/cmlabs-hris/timesheet-portal/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{"validation", validator.ValidationErrors{{Field: "email", Message: "bad"}}, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed"},
		{"invalid week", worklog.ErrInvalidWeekStart, http.StatusBadRequest, "BAD_REQUEST", worklog.ErrInvalidWeekStart.Error()},
		{"save in progress", worklog.ErrSaveInProgress, http.StatusConflict, "CONFLICT", worklog.ErrSaveInProgress.Error()},
		{"session gone", worklog.ErrSessionNotFound, http.StatusNotFound, "NOT_FOUND", "Session not found or expired"},
		{"employee wrapped", fmt.Errorf("x: %w", employee.ErrEmployeeNotFound), http.StatusNotFound, "NOT_FOUND", "Employee not found"},
		{"unavailable", fmt.Errorf("get: %w", backend.ErrUnavailable), http.StatusBadGateway, "BACKEND_ERROR", "Timesheet backend unavailable"},
		{"backend 400", fmt.Errorf("x: %w", &backend.APIError{StatusCode: 400, Message: "Invalid log_date"}), http.StatusBadRequest, "BAD_REQUEST", "Invalid log_date"},
		{"backend 500", &backend.APIError{StatusCode: 500, Message: "db down"}, http.StatusBadGateway, "BACKEND_ERROR", "db down"},
		{"unknown", fmt.Errorf("boom"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "An unexpected error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantMsg, body.Error.Message)
		})
	}
}
