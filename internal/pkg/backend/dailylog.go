package backend

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// CreateDailyLog creates one log row
func (c *Client) CreateDailyLog(ctx context.Context, req CreateDailyLogRequest) (*DailyLog, error) {
	var out DailyLog
	if err := c.post(ctx, "/api/daily-logs", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateDailyLog updates one log row by id
func (c *Client) UpdateDailyLog(ctx context.Context, id int64, req UpdateDailyLogRequest) (*DailyLog, error) {
	var out DailyLog
	if err := c.put(ctx, fmt.Sprintf("/api/daily-logs/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DailyLogsByTimesheet lists logs through the query-string variant
func (c *Client) DailyLogsByTimesheet(ctx context.Context, timesheetID int64) ([]DailyLog, error) {
	var out []DailyLog
	q := url.Values{"timesheet_id": {strconv.FormatInt(timesheetID, 10)}}
	if err := c.get(ctx, "/api/daily-logs", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DailyLogByDate finds the row for one date; logDate is YYYY-MM-DD.
// A missing row yields an error matching ErrNotFound.
func (c *Client) DailyLogByDate(ctx context.Context, timesheetID int64, logDate string) (*DailyLog, error) {
	var out DailyLog
	q := url.Values{
		"timesheet_id": {strconv.FormatInt(timesheetID, 10)},
		"log_date":     {logDate},
	}
	if err := c.get(ctx, "/api/daily-logs/by-date", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SaveDailyLogs bulk-upserts a week of logs
func (c *Client) SaveDailyLogs(ctx context.Context, logs []BulkLog) error {
	return c.post(ctx, "/api/daily-logs/save", logs, nil)
}

// CreateDailyLogChange appends a description history entry
func (c *Client) CreateDailyLogChange(ctx context.Context, req CreateChangeRequest) (*DailyLogChange, error) {
	var out DailyLogChange
	if err := c.post(ctx, "/api/daily-log-changes", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DailyLogChanges returns the history of one log in backend order
func (c *Client) DailyLogChanges(ctx context.Context, id int64) ([]DailyLogChange, error) {
	var out []DailyLogChange
	if err := c.get(ctx, fmt.Sprintf("/api/daily-logs/%d/changes", id), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
