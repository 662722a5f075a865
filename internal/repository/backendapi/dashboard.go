package backendapi

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/timesheet-portal/internal/domain/employee"
	"github.com/cmlabs-hris/timesheet-portal/internal/domain/timesheet"
	"github.com/cmlabs-hris/timesheet-portal/internal/pkg/backend"
	"github.com/cmlabs-hris/timesheet-portal/internal/pkg/utils"
)

type dashboardRepositoryImpl struct {
	client *backend.Client
}

func NewDashboardRepository(client *backend.Client) timesheet.DashboardRepository {
	return &dashboardRepositoryImpl{client: client}
}

// GetWeek implements timesheet.DashboardRepository. weekStarting is ISO; the
// dashboard endpoint wants MM/DD/YYYY.
func (r *dashboardRepositoryImpl) GetWeek(ctx context.Context, email, weekStarting string) (timesheet.WeekSnapshot, error) {
	d, err := r.client.Dashboard(ctx, email, utils.ToMMDDYYYY(weekStarting))
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			return timesheet.WeekSnapshot{}, fmt.Errorf("dashboard for %s: %w", email, employee.ErrEmployeeNotFound)
		}
		return timesheet.WeekSnapshot{}, fmt.Errorf("failed to load dashboard: %w", err)
	}
	return timesheet.WeekSnapshot{
		Employee:   toEmployee(d.Employee),
		Managers:   toNodes(d.ManagerHierarchy),
		Timesheets: toTimesheets(d.Timesheets),
		Logs:       toDailyLogs(d.DailyLogs),
	}, nil
}
