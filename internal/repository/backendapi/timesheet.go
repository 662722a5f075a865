package backendapi

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/timesheet-portal/internal/domain/timesheet"
	"github.com/cmlabs-hris/timesheet-portal/internal/pkg/backend"
)

type timesheetRepositoryImpl struct {
	client *backend.Client
}

func NewTimesheetRepository(client *backend.Client) timesheet.TimesheetRepository {
	return &timesheetRepositoryImpl{client: client}
}

// List implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) List(ctx context.Context) ([]timesheet.Timesheet, error) {
	ts, err := r.client.ListTimesheets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list timesheets: %w", err)
	}
	return toTimesheets(ts), nil
}

// ListByEmployeeName implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) ListByEmployeeName(ctx context.Context, employeeName string) ([]timesheet.Timesheet, error) {
	ts, err := r.client.TimesheetsByEmployeeName(ctx, employeeName)
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			return []timesheet.Timesheet{}, nil
		}
		return nil, fmt.Errorf("failed to list timesheets for %s: %w", employeeName, err)
	}
	return toTimesheets(ts), nil
}

// GetByEmployeeNameWeek implements timesheet.TimesheetRepository.
// weekStarting is ISO and is sent as-is.
func (r *timesheetRepositoryImpl) GetByEmployeeNameWeek(ctx context.Context, employeeName, weekStarting string) (timesheet.Timesheet, error) {
	t, err := r.client.TimesheetByEmployeeNameWeek(ctx, employeeName, weekStarting)
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			return timesheet.Timesheet{}, fmt.Errorf("week %s for %s: %w", weekStarting, employeeName, timesheet.ErrTimesheetNotFound)
		}
		return timesheet.Timesheet{}, fmt.Errorf("failed to find timesheet: %w", err)
	}
	return toTimesheet(*t), nil
}

// Create implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) Create(ctx context.Context, employeeName, weekStarting string) (timesheet.Timesheet, error) {
	t, err := r.client.CreateTimesheet(ctx, backend.CreateTimesheetRequest{
		EmployeeName: employeeName,
		WeekStarting: weekStarting,
	})
	if err != nil {
		return timesheet.Timesheet{}, fmt.Errorf("failed to create timesheet: %w", err)
	}
	return toTimesheet(*t), nil
}
