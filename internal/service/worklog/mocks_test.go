package worklog

import (
	"context"
	"sync"

	"github.com/cmlabs-hris/timesheet-portal/internal/domain/employee"
	"github.com/cmlabs-hris/timesheet-portal/internal/domain/notification"
	"github.com/cmlabs-hris/timesheet-portal/internal/domain/timesheet"
	"github.com/stretchr/testify/mock"
)

type mockEmployeeService struct{ mock.Mock }

func (m *mockEmployeeService) GetProfile(ctx context.Context, email string) (employee.Profile, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(employee.Profile), args.Error(1)
}

func (m *mockEmployeeService) GetHierarchy(ctx context.Context, email string, expanded *employee.ExpandSet) (employee.HierarchyResponse, error) {
	args := m.Called(ctx, email, expanded)
	return args.Get(0).(employee.HierarchyResponse), args.Error(1)
}

func (m *mockEmployeeService) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]employee.EmployeeResponse)
	return out, args.Error(1)
}

func (m *mockEmployeeService) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(employee.EmployeeResponse), args.Error(1)
}

type mockDashboardRepo struct{ mock.Mock }

func (m *mockDashboardRepo) GetWeek(ctx context.Context, email, weekStarting string) (timesheet.WeekSnapshot, error) {
	args := m.Called(ctx, email, weekStarting)
	return args.Get(0).(timesheet.WeekSnapshot), args.Error(1)
}

type mockTimesheetRepo struct{ mock.Mock }

func (m *mockTimesheetRepo) List(ctx context.Context) ([]timesheet.Timesheet, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]timesheet.Timesheet)
	return out, args.Error(1)
}

func (m *mockTimesheetRepo) ListByEmployeeName(ctx context.Context, employeeName string) ([]timesheet.Timesheet, error) {
	args := m.Called(ctx, employeeName)
	out, _ := args.Get(0).([]timesheet.Timesheet)
	return out, args.Error(1)
}

func (m *mockTimesheetRepo) GetByEmployeeNameWeek(ctx context.Context, employeeName, weekStarting string) (timesheet.Timesheet, error) {
	args := m.Called(ctx, employeeName, weekStarting)
	return args.Get(0).(timesheet.Timesheet), args.Error(1)
}

func (m *mockTimesheetRepo) Create(ctx context.Context, employeeName, weekStarting string) (timesheet.Timesheet, error) {
	args := m.Called(ctx, employeeName, weekStarting)
	return args.Get(0).(timesheet.Timesheet), args.Error(1)
}

type mockDailyLogRepo struct{ mock.Mock }

func (m *mockDailyLogRepo) ListByTimesheet(ctx context.Context, timesheetID int64) ([]timesheet.DailyLog, error) {
	args := m.Called(ctx, timesheetID)
	out, _ := args.Get(0).([]timesheet.DailyLog)
	return out, args.Error(1)
}

func (m *mockDailyLogRepo) GetByDate(ctx context.Context, timesheetID int64, logDate string) (timesheet.DailyLog, error) {
	args := m.Called(ctx, timesheetID, logDate)
	return args.Get(0).(timesheet.DailyLog), args.Error(1)
}

func (m *mockDailyLogRepo) Create(ctx context.Context, timesheetID int64, fields timesheet.LogFields) (timesheet.DailyLog, error) {
	args := m.Called(ctx, timesheetID, fields)
	return args.Get(0).(timesheet.DailyLog), args.Error(1)
}

func (m *mockDailyLogRepo) Update(ctx context.Context, id int64, fields timesheet.LogFields) (timesheet.DailyLog, error) {
	args := m.Called(ctx, id, fields)
	return args.Get(0).(timesheet.DailyLog), args.Error(1)
}

func (m *mockDailyLogRepo) SaveBulk(ctx context.Context, entries []timesheet.BulkEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *mockDailyLogRepo) AddChange(ctx context.Context, dailyLogID int64, newDescription string) (timesheet.Change, error) {
	args := m.Called(ctx, dailyLogID, newDescription)
	return args.Get(0).(timesheet.Change), args.Error(1)
}

func (m *mockDailyLogRepo) ListChanges(ctx context.Context, dailyLogID int64) ([]timesheet.Change, error) {
	args := m.Called(ctx, dailyLogID)
	out, _ := args.Get(0).([]timesheet.Change)
	return out, args.Error(1)
}

// recordingNotifier keeps every toast it is given
type recordingNotifier struct {
	mu     sync.Mutex
	toasts []notification.Toast
}

func (n *recordingNotifier) Notify(ctx context.Context, sessionID string, level notification.Level, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.toasts = append(n.toasts, notification.Toast{SessionID: sessionID, Level: level, Message: message})
}

func (n *recordingNotifier) messages(level notification.Level) []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	var out []string
	for _, t := range n.toasts {
		if t.Level == level {
			out = append(out, t.Message)
		}
	}
	return out
}
