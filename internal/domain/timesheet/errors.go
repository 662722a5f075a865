package timesheet

import "errors"

var (
	ErrTimesheetNotFound    = errors.New("timesheet not found")
	ErrDailyLogNotFound     = errors.New("daily log not found")
	ErrInvalidTimesheetID   = errors.New("invalid timesheet id")
	ErrEmployeeNameRequired = errors.New("employee_name is required")
)
