package http

import (
	"context"

	"github.com/cmlabs-hris/timesheet-portal/internal/domain/admin"
	"github.com/cmlabs-hris/timesheet-portal/internal/domain/employee"
	"github.com/cmlabs-hris/timesheet-portal/internal/domain/worklog"
	"github.com/stretchr/testify/mock"
)

type mockWorklogService struct{ mock.Mock }

func (m *mockWorklogService) StartSession(ctx context.Context, req worklog.StartSessionRequest) (worklog.SessionResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(worklog.SessionResponse), args.Error(1)
}

func (m *mockWorklogService) GetSession(ctx context.Context, id string) (*worklog.Session, error) {
	args := m.Called(ctx, id)
	sess, _ := args.Get(0).(*worklog.Session)
	return sess, args.Error(1)
}

func (m *mockWorklogService) EndSession(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockWorklogService) LoadWeek(ctx context.Context, s *worklog.Session, weekStarting string) (worklog.WeekResponse, error) {
	args := m.Called(ctx, s, weekStarting)
	return args.Get(0).(worklog.WeekResponse), args.Error(1)
}

func (m *mockWorklogService) OpenWeek(ctx context.Context, s *worklog.Session, weekStarting string) (worklog.WeekResponse, error) {
	args := m.Called(ctx, s, weekStarting)
	return args.Get(0).(worklog.WeekResponse), args.Error(1)
}

func (m *mockWorklogService) SetTime(ctx context.Context, s *worklog.Session, date string, req worklog.SetTimeRequest) (worklog.EditResponse, error) {
	args := m.Called(ctx, s, date, req)
	return args.Get(0).(worklog.EditResponse), args.Error(1)
}

func (m *mockWorklogService) FocusTime(ctx context.Context, s *worklog.Session, date string, req worklog.FocusTimeRequest) (worklog.EditResponse, error) {
	args := m.Called(ctx, s, date, req)
	return args.Get(0).(worklog.EditResponse), args.Error(1)
}

func (m *mockWorklogService) SetDescription(ctx context.Context, s *worklog.Session, date string, req worklog.SetDescriptionRequest) (worklog.EditResponse, error) {
	args := m.Called(ctx, s, date, req)
	return args.Get(0).(worklog.EditResponse), args.Error(1)
}

func (m *mockWorklogService) SaveDay(ctx context.Context, s *worklog.Session, date string) (worklog.SaveResponse, error) {
	args := m.Called(ctx, s, date)
	return args.Get(0).(worklog.SaveResponse), args.Error(1)
}

func (m *mockWorklogService) SaveWeek(ctx context.Context, s *worklog.Session) (worklog.SaveResponse, error) {
	args := m.Called(ctx, s)
	return args.Get(0).(worklog.SaveResponse), args.Error(1)
}

func (m *mockWorklogService) ChangeHistory(ctx context.Context, dailyLogID int64) ([]worklog.ChangeHistoryItem, error) {
	args := m.Called(ctx, dailyLogID)
	out, _ := args.Get(0).([]worklog.ChangeHistoryItem)
	return out, args.Error(1)
}

func (m *mockWorklogService) View(s *worklog.Session) worklog.WeekResponse {
	return m.Called(s).Get(0).(worklog.WeekResponse)
}

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

type mockAdminService struct{ mock.Mock }

func (m *mockAdminService) ListTimesheets(ctx context.Context) ([]admin.TimesheetResponse, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]admin.TimesheetResponse)
	return out, args.Error(1)
}

func (m *mockAdminService) TimesheetsByEmployee(ctx context.Context, employeeName string) ([]admin.TimesheetResponse, error) {
	args := m.Called(ctx, employeeName)
	out, _ := args.Get(0).([]admin.TimesheetResponse)
	return out, args.Error(1)
}

func (m *mockAdminService) DailyLogsForTimesheet(ctx context.Context, timesheetID int64) (admin.TimesheetDetail, error) {
	args := m.Called(ctx, timesheetID)
	return args.Get(0).(admin.TimesheetDetail), args.Error(1)
}

func (m *mockAdminService) EmployeeOverview(ctx context.Context, employeeName string) (admin.EmployeeOverview, error) {
	args := m.Called(ctx, employeeName)
	return args.Get(0).(admin.EmployeeOverview), args.Error(1)
}
