package backendapi

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/timesheet-portal/internal/domain/timesheet"
	"github.com/cmlabs-hris/timesheet-portal/internal/pkg/backend"
	"github.com/cmlabs-hris/timesheet-portal/internal/pkg/utils"
)

type dailyLogRepositoryImpl struct {
	client *backend.Client
}

func NewDailyLogRepository(client *backend.Client) timesheet.DailyLogRepository {
	return &dailyLogRepositoryImpl{client: client}
}

// ListByTimesheet implements timesheet.DailyLogRepository.
func (r *dailyLogRepositoryImpl) ListByTimesheet(ctx context.Context, timesheetID int64) ([]timesheet.DailyLog, error) {
	ls, err := r.client.DailyLogsByTimesheet(ctx, timesheetID)
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			// older backends answer the query variant with 404; the nested route is equivalent
			ls, err = r.client.TimesheetDailyLogs(ctx, timesheetID)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list daily logs for timesheet %d: %w", timesheetID, err)
		}
	}
	return toDailyLogs(ls), nil
}

// GetByDate implements timesheet.DailyLogRepository.
func (r *dailyLogRepositoryImpl) GetByDate(ctx context.Context, timesheetID int64, logDate string) (timesheet.DailyLog, error) {
	l, err := r.client.DailyLogByDate(ctx, timesheetID, logDate)
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			return timesheet.DailyLog{}, fmt.Errorf("log for %s: %w", logDate, timesheet.ErrDailyLogNotFound)
		}
		return timesheet.DailyLog{}, fmt.Errorf("failed to look up daily log: %w", err)
	}
	// some backends answer 200 with an empty object instead of 404
	if l.ID == 0 {
		return timesheet.DailyLog{}, fmt.Errorf("log for %s: %w", logDate, timesheet.ErrDailyLogNotFound)
	}
	return toDailyLog(*l), nil
}

// Create implements timesheet.DailyLogRepository.
func (r *dailyLogRepositoryImpl) Create(ctx context.Context, timesheetID int64, f timesheet.LogFields) (timesheet.DailyLog, error) {
	l, err := r.client.CreateDailyLog(ctx, backend.CreateDailyLogRequest{
		TimesheetID:  timesheetID,
		LogDate:      f.LogDate,
		MorningIn:    nullable(f.MorningIn),
		MorningOut:   nullable(f.MorningOut),
		AfternoonIn:  nullable(f.AfternoonIn),
		AfternoonOut: nullable(f.AfternoonOut),
		Description:  f.Description,
		TotalHours:   f.TotalHours,
	})
	if err != nil {
		return timesheet.DailyLog{}, fmt.Errorf("failed to create daily log: %w", err)
	}
	return toDailyLog(*l), nil
}

// Update implements timesheet.DailyLogRepository.
func (r *dailyLogRepositoryImpl) Update(ctx context.Context, id int64, f timesheet.LogFields) (timesheet.DailyLog, error) {
	l, err := r.client.UpdateDailyLog(ctx, id, backend.UpdateDailyLogRequest{
		LogDate:      f.LogDate,
		MorningIn:    nullable(f.MorningIn),
		MorningOut:   nullable(f.MorningOut),
		AfternoonIn:  nullable(f.AfternoonIn),
		AfternoonOut: nullable(f.AfternoonOut),
		Description:  f.Description,
		TotalHours:   f.TotalHours,
	})
	if err != nil {
		return timesheet.DailyLog{}, fmt.Errorf("failed to update daily log %d: %w", id, err)
	}
	return toDailyLog(*l), nil
}

// SaveBulk implements timesheet.DailyLogRepository. The bulk endpoint takes
// MM/DD/YYYY for both week_starting and date.
func (r *dailyLogRepositoryImpl) SaveBulk(ctx context.Context, entries []timesheet.BulkEntry) error {
	logs := make([]backend.BulkLog, 0, len(entries))
	for _, e := range entries {
		logs = append(logs, backend.BulkLog{
			ID:           e.ID,
			EmployeeID:   e.EmployeeID,
			WeekStarting: utils.ToMMDDYYYY(e.WeekStarting),
			Date:         utils.ToMMDDYYYY(e.LogDate),
			TimeInAM:     e.MorningIn,
			TimeOutAM:    e.MorningOut,
			TimeInPM:     e.AfternoonIn,
			TimeOutPM:    e.AfternoonOut,
			Description:  e.Description,
			TotalHours:   e.TotalHours,
		})
	}
	if err := r.client.SaveDailyLogs(ctx, logs); err != nil {
		return fmt.Errorf("failed to save week: %w", err)
	}
	return nil
}

// AddChange implements timesheet.DailyLogRepository.
func (r *dailyLogRepositoryImpl) AddChange(ctx context.Context, dailyLogID int64, newDescription string) (timesheet.Change, error) {
	c, err := r.client.CreateDailyLogChange(ctx, backend.CreateChangeRequest{
		DailyLogID:     dailyLogID,
		NewDescription: newDescription,
	})
	if err != nil {
		return timesheet.Change{}, fmt.Errorf("failed to record description change: %w", err)
	}
	return toChange(*c), nil
}

// ListChanges implements timesheet.DailyLogRepository.
func (r *dailyLogRepositoryImpl) ListChanges(ctx context.Context, dailyLogID int64) ([]timesheet.Change, error) {
	cs, err := r.client.DailyLogChanges(ctx, dailyLogID)
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			return nil, fmt.Errorf("log %d: %w", dailyLogID, timesheet.ErrDailyLogNotFound)
		}
		return nil, fmt.Errorf("failed to list changes: %w", err)
	}
	out := make([]timesheet.Change, 0, len(cs))
	for _, c := range cs {
		out = append(out, toChange(c))
	}
	return out, nil
}
