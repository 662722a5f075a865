package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/timesheet-portal/internal/domain/employee"
	"github.com/cmlabs-hris/timesheet-portal/internal/domain/notification"
	"github.com/cmlabs-hris/timesheet-portal/internal/domain/timesheet"
	"github.com/cmlabs-hris/timesheet-portal/internal/domain/worklog"
	"github.com/cmlabs-hris/timesheet-portal/internal/pkg/backend"
	"github.com/cmlabs-hris/timesheet-portal/internal/pkg/validator"
)

// HandleError maps domain, validation and backend errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Worklog domain errors
	case errors.Is(err, worklog.ErrInvalidWeekStart),
		errors.Is(err, worklog.ErrInvalidField),
		errors.Is(err, worklog.ErrInvalidTime),
		errors.Is(err, worklog.ErrInvalidLogID),
		errors.Is(err, worklog.ErrDayNotInWeek),
		errors.Is(err, worklog.ErrNoEmployee),
		errors.Is(err, worklog.ErrSessionRequired):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, worklog.ErrNoWeekLoaded),
		errors.Is(err, worklog.ErrNoTimesheet),
		errors.Is(err, worklog.ErrSaveInProgress):
		Conflict(w, err.Error())
	case errors.Is(err, worklog.ErrSessionNotFound):
		NotFound(w, "Session not found or expired")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailRequired),
		errors.Is(err, employee.ErrInvalidEmail):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Timesheet domain errors
	case errors.Is(err, timesheet.ErrTimesheetNotFound):
		NotFound(w, "Timesheet not found")
	case errors.Is(err, timesheet.ErrDailyLogNotFound):
		NotFound(w, "Daily log not found")
	case errors.Is(err, timesheet.ErrInvalidTimesheetID),
		errors.Is(err, timesheet.ErrEmployeeNameRequired):
		BadRequest(w, err.Error(), nil)

	case errors.Is(err, notification.ErrStreamingUnsupported):
		InternalServerError(w, "Streaming not supported")

	// Backend errors
	case errors.Is(err, backend.ErrUnavailable):
		slog.Error("Timesheet backend unavailable", "error", err)
		BadGateway(w, "Timesheet backend unavailable")
	default:
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) {
			handleAPIError(w, apiErr)
			return
		}
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}

// handleAPIError passes the backend's own message through with a matching status
func handleAPIError(w http.ResponseWriter, apiErr *backend.APIError) {
	switch apiErr.StatusCode {
	case http.StatusNotFound:
		NotFound(w, apiErr.Message)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		BadRequest(w, apiErr.Message, nil)
	case http.StatusConflict:
		Conflict(w, apiErr.Message)
	default:
		slog.Warn("Timesheet backend error", "status", apiErr.StatusCode, "path", apiErr.Path, "message", apiErr.Message)
		BadGateway(w, apiErr.Message)
	}
}
