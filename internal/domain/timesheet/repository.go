package timesheet

import (
	"context"

	"github.com/cmlabs-hris/timesheet-portal/internal/domain/employee"
)

type TimesheetRepository interface {
	List(ctx context.Context) ([]Timesheet, error)
	ListByEmployeeName(ctx context.Context, employeeName string) ([]Timesheet, error)
	// GetByEmployeeNameWeek returns ErrTimesheetNotFound when the week was never opened
	GetByEmployeeNameWeek(ctx context.Context, employeeName, weekStarting string) (Timesheet, error)
	Create(ctx context.Context, employeeName, weekStarting string) (Timesheet, error)
}

type DailyLogRepository interface {
	ListByTimesheet(ctx context.Context, timesheetID int64) ([]DailyLog, error)
	// GetByDate returns ErrDailyLogNotFound when no row exists for the date
	GetByDate(ctx context.Context, timesheetID int64, logDate string) (DailyLog, error)
	Create(ctx context.Context, timesheetID int64, fields LogFields) (DailyLog, error)
	Update(ctx context.Context, id int64, fields LogFields) (DailyLog, error)
	SaveBulk(ctx context.Context, entries []BulkEntry) error
	AddChange(ctx context.Context, dailyLogID int64, newDescription string) (Change, error)
	ListChanges(ctx context.Context, dailyLogID int64) ([]Change, error)
}

// WeekSnapshot is everything the employee page needs for one week
type WeekSnapshot struct {
	Employee   employee.Employee
	Managers   []*employee.Node
	Timesheets []Timesheet
	Logs       []DailyLog
}

// DashboardRepository loads the combined employee week view
type DashboardRepository interface {
	GetWeek(ctx context.Context, email, weekStarting string) (WeekSnapshot, error)
}
