package admin

import "github.com/cmlabs-hris/timesheet-portal/internal/domain/timesheet"

type TimesheetResponse struct {
	ID           int64  `json:"id"`
	EmployeeID   int64  `json:"employee_id"`
	WeekStarting string `json:"week_starting"`
}

func NewTimesheetResponse(t timesheet.Timesheet) TimesheetResponse {
	return TimesheetResponse{ID: t.ID, EmployeeID: t.EmployeeID, WeekStarting: t.WeekStarting}
}

// DailyLogResponse is a stored log with its total recomputed from its times
type DailyLogResponse struct {
	ID           int64  `json:"id"`
	TimesheetID  int64  `json:"timesheet_id"`
	LogDate      string `json:"log_date"`
	DayOfWeek    string `json:"day_of_week"`
	MorningIn    string `json:"morning_in"`
	MorningOut   string `json:"morning_out"`
	AfternoonIn  string `json:"afternoon_in"`
	AfternoonOut string `json:"afternoon_out"`
	TotalHours   string `json:"total_hours"`
	Description  string `json:"description"`
}

type TimesheetDetail struct {
	Timesheet  TimesheetResponse  `json:"timesheet"`
	DailyLogs  []DailyLogResponse `json:"daily_logs"`
	TotalHours string             `json:"total_hours"`
}

type EmployeeOverview struct {
	EmployeeName string            `json:"employee_name"`
	Timesheets   []TimesheetDetail `json:"timesheets"`
	TotalHours   string            `json:"total_hours"`
}
