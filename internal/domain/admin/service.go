package admin

import "context"

// AdminService backs the admin browse page
type AdminService interface {
	ListTimesheets(ctx context.Context) ([]TimesheetResponse, error)
	TimesheetsByEmployee(ctx context.Context, employeeName string) ([]TimesheetResponse, error)
	DailyLogsForTimesheet(ctx context.Context, timesheetID int64) (TimesheetDetail, error)
	// EmployeeOverview loads every timesheet of an employee with its logs
	EmployeeOverview(ctx context.Context, employeeName string) (EmployeeOverview, error)
}
