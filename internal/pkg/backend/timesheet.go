package backend

import (
	"context"
	"fmt"
	"net/url"
)

// ListTimesheets returns every timesheet
func (c *Client) ListTimesheets(ctx context.Context) ([]Timesheet, error) {
	var out []Timesheet
	if err := c.get(ctx, "/api/timesheets", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateTimesheet creates the week for an employee; WeekStarting is YYYY-MM-DD
func (c *Client) CreateTimesheet(ctx context.Context, req CreateTimesheetRequest) (*Timesheet, error) {
	var out Timesheet
	if err := c.post(ctx, "/api/timesheets", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TimesheetsByEmployeeName lists an employee's timesheets
func (c *Client) TimesheetsByEmployeeName(ctx context.Context, employeeName string) ([]Timesheet, error) {
	var out []Timesheet
	q := url.Values{"employee_name": {employeeName}}
	if err := c.get(ctx, "/api/timesheets/by-employee-name", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// TimesheetByEmployeeNameWeek finds one timesheet; weekStarting is YYYY-MM-DD.
// A missing timesheet yields an error matching ErrNotFound.
func (c *Client) TimesheetByEmployeeNameWeek(ctx context.Context, employeeName, weekStarting string) (*Timesheet, error) {
	var out Timesheet
	q := url.Values{"employee_name": {employeeName}, "week_starting": {weekStarting}}
	if err := c.get(ctx, "/api/timesheets/by-employee-name-week", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TimesheetDailyLogs lists the logs of one timesheet
func (c *Client) TimesheetDailyLogs(ctx context.Context, timesheetID int64) ([]DailyLog, error) {
	var out []DailyLog
	if err := c.get(ctx, fmt.Sprintf("/api/timesheets/%d/daily-logs", timesheetID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
