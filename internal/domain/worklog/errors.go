package worklog

import "errors"

var (
	ErrInvalidWeekStart = errors.New("week_starting must be a valid YYYY-MM-DD date")
	ErrNoWeekLoaded     = errors.New("no week loaded in this session")
	ErrDayNotInWeek     = errors.New("date is not part of the loaded week")
	ErrInvalidField     = errors.New("field must be one of morning_in, morning_out, afternoon_in, afternoon_out")
	ErrInvalidTime      = errors.New("time must be in HH:MM format")
	ErrNoEmployee       = errors.New("no employee bound to this session")
	ErrNoTimesheet      = errors.New("no timesheet for the loaded week")
	ErrSaveInProgress   = errors.New("a save is already in progress for this session")
	ErrSessionNotFound  = errors.New("session not found or expired")
	ErrSessionRequired  = errors.New("X-Session-ID header is required")
	ErrInvalidLogID     = errors.New("invalid daily log id")
)
