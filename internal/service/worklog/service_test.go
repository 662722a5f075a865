package worklog

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/cmlabs-hris/timesheet-portal/internal/domain/employee"
	"github.com/cmlabs-hris/timesheet-portal/internal/domain/notification"
	"github.com/cmlabs-hris/timesheet-portal/internal/domain/timesheet"
	"github.com/cmlabs-hris/timesheet-portal/internal/domain/worklog"
	"github.com/cmlabs-hris/timesheet-portal/internal/pkg/backend"
	"github.com/cmlabs-hris/timesheet-portal/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testWeek = "2025-06-02"

var (
	testLead     = employee.Employee{ID: 3, Name: "Lead", Email: "lead@example.com"}
	testEmployee = employee.Employee{ID: 7, Name: "Ana", Email: "ana@example.com", ReportsTo: &testLead.ID}
)

type fixture struct {
	svc        *worklogServiceImpl
	employees  *mockEmployeeService
	dashboard  *mockDashboardRepo
	timesheets *mockTimesheetRepo
	logs       *mockDailyLogRepo
	notifier   *recordingNotifier
	sessions   worklog.SessionRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		employees:  &mockEmployeeService{},
		dashboard:  &mockDashboardRepo{},
		timesheets: &mockTimesheetRepo{},
		logs:       &mockDailyLogRepo{},
		notifier:   &recordingNotifier{},
		sessions:   memory.NewSessionRepository(),
	}
	f.svc = NewWorklogService(f.sessions, f.employees, f.dashboard, f.timesheets, f.logs, f.notifier, "ana@example.com").(*worklogServiceImpl)
	t.Cleanup(func() {
		f.employees.AssertExpectations(t)
		f.dashboard.AssertExpectations(t)
		f.timesheets.AssertExpectations(t)
		f.logs.AssertExpectations(t)
	})
	return f
}

// loadedSession returns a session with the test week already reconciled against logs
func (f *fixture) loadedSession(logs ...timesheet.DailyLog) *worklog.Session {
	sess := worklog.NewSession("sess-1", time.Now())
	sess.Employee = testEmployee
	sess.Managers = []*employee.Node{employee.NewNode(testLead)}
	sess.WeekStarting = testWeek
	sess.Days = GenerateWeek(testWeek)
	sess.TimesheetID = 11
	sess.Records = f.svc.reconciler.Reconcile(sess.Days, logs)
	return sess
}

// expectRefetch answers the dashboard reload that follows a save
func (f *fixture) expectRefetch(logs ...timesheet.DailyLog) *mock.Call {
	return f.dashboard.On("GetWeek", mock.Anything, "ana@example.com", testWeek).Return(timesheet.WeekSnapshot{
		Employee:   testEmployee,
		Timesheets: []timesheet.Timesheet{{ID: 11, WeekStarting: testWeek}},
		Logs:       logs,
	}, nil)
}

func notFound(err error) error {
	return fmt.Errorf("lookup: %w", err)
}

func TestWorklogService_StartSession_UsesDefaultEmail(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.employees.On("GetProfile", mock.Anything, "ana@example.com").
		Return(employee.Profile{Employee: testEmployee, Managers: []*employee.Node{employee.NewNode(testLead)}}, nil).Once()

	resp, err := f.svc.StartSession(ctx, worklog.StartSessionRequest{})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.SessionID)
	require.NotNil(t, resp.Employee)
	assert.Equal(t, "Ana", resp.Employee.EmployeeName)
	require.Len(t, resp.Chain, 2)
	assert.Equal(t, "Lead", resp.Chain[0].EmployeeName)
	assert.Equal(t, "Ana", resp.Chain[1].EmployeeName)

	sess, err := f.svc.GetSession(ctx, resp.SessionID)
	require.NoError(t, err)
	assert.Equal(t, testEmployee.ID, sess.Employee.ID)
}

func TestWorklogService_StartSession_RequiresEmail(t *testing.T) {
	f := newFixture(t)
	f.svc.defaultEmail = ""

	_, err := f.svc.StartSession(context.Background(), worklog.StartSessionRequest{})
	assert.ErrorIs(t, err, employee.ErrEmailRequired)
}

func TestWorklogService_GetSession(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.GetSession(ctx, "")
	assert.ErrorIs(t, err, worklog.ErrSessionRequired)

	_, err = f.svc.GetSession(ctx, "missing")
	assert.ErrorIs(t, err, worklog.ErrSessionNotFound)
}

func TestWorklogService_LoadWeek(t *testing.T) {
	f := newFixture(t)
	sess := worklog.NewSession("sess-1", time.Now())
	sess.Employee = testEmployee

	f.dashboard.On("GetWeek", mock.Anything, "ana@example.com", testWeek).Return(timesheet.WeekSnapshot{
		Employee:   testEmployee,
		Timesheets: []timesheet.Timesheet{{ID: 9, WeekStarting: "2025-05-26"}, {ID: 11, WeekStarting: testWeek}},
		Logs: []timesheet.DailyLog{
			{ID: 40, TimesheetID: 11, LogDate: "2025-06-03", MorningIn: "08:00", MorningOut: "12:00", AfternoonIn: "13:00", AfternoonOut: "17:00"},
		},
	}, nil).Once()

	week, err := f.svc.LoadWeek(context.Background(), sess, testWeek)
	require.NoError(t, err)

	require.Len(t, week.Days, 7)
	require.NotNil(t, week.TimesheetID)
	assert.Equal(t, int64(11), *week.TimesheetID)
	assert.Equal(t, "2025-06-02", week.Days[0].Date)
	assert.Equal(t, "Monday", week.Days[0].Weekday)
	assert.Equal(t, worklog.KindProvisional, week.Days[0].Kind)
	assert.Equal(t, worklog.KindPersisted, week.Days[1].Kind)
	assert.Equal(t, "8:00", week.Days[1].TotalHours)
	assert.Equal(t, "8:00", week.GrandTotal)
}

func TestWorklogService_LoadWeek_InvalidStartClearsWeek(t *testing.T) {
	f := newFixture(t)
	sess := f.loadedSession()

	_, err := f.svc.LoadWeek(context.Background(), sess, "2025-02-30")
	assert.ErrorIs(t, err, worklog.ErrInvalidWeekStart)
	assert.False(t, sess.HasWeek())
	assert.Empty(t, sess.Records)
	assert.Len(t, f.notifier.messages(notification.LevelError), 1)
}

func TestWorklogService_LoadWeek_BackendFailureClearsWeek(t *testing.T) {
	f := newFixture(t)
	sess := f.loadedSession()

	f.dashboard.On("GetWeek", mock.Anything, "ana@example.com", "2025-06-09").
		Return(timesheet.WeekSnapshot{}, fmt.Errorf("load: %w", backend.ErrUnavailable)).Once()

	_, err := f.svc.LoadWeek(context.Background(), sess, "2025-06-09")
	assert.ErrorIs(t, err, backend.ErrUnavailable)
	assert.False(t, sess.HasWeek())
	assert.Equal(t, int64(0), sess.TimesheetID)
}

func TestWorklogService_OpenWeek(t *testing.T) {
	tests := []struct {
		name      string
		existing  bool
		wantLevel notification.Level
		wantMsg   string
	}{
		{"existing week", true, notification.LevelInfo, "Week already exists. Showing records."},
		{"new week", false, notification.LevelSuccess, "Week starting date saved successfully!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			sess := worklog.NewSession("sess-1", time.Now())
			sess.Employee = testEmployee

			if tt.existing {
				f.timesheets.On("GetByEmployeeNameWeek", mock.Anything, "Ana", testWeek).
					Return(timesheet.Timesheet{ID: 11, WeekStarting: testWeek}, nil).Once()
			} else {
				f.timesheets.On("GetByEmployeeNameWeek", mock.Anything, "Ana", testWeek).
					Return(timesheet.Timesheet{}, notFound(timesheet.ErrTimesheetNotFound)).Once()
				f.timesheets.On("Create", mock.Anything, "Ana", testWeek).
					Return(timesheet.Timesheet{ID: 11, WeekStarting: testWeek}, nil).Once()
			}
			f.logs.On("ListByTimesheet", mock.Anything, int64(11)).Return([]timesheet.DailyLog{}, nil).Once()

			week, err := f.svc.OpenWeek(context.Background(), sess, testWeek)
			require.NoError(t, err)
			assert.Len(t, week.Days, 7)
			assert.Equal(t, int64(11), sess.TimesheetID)
			assert.Equal(t, []string{tt.wantMsg}, f.notifier.messages(tt.wantLevel))
		})
	}
}

func TestWorklogService_SetTime(t *testing.T) {
	f := newFixture(t)
	sess := f.loadedSession()
	ctx := context.Background()

	_, err := f.svc.SetTime(ctx, sess, testWeek, worklog.SetTimeRequest{Field: "morning_in", Value: "09:00:00"})
	require.NoError(t, err)
	resp, err := f.svc.SetTime(ctx, sess, testWeek, worklog.SetTimeRequest{Field: "morning_out", Value: "08:30"})
	require.NoError(t, err)

	assert.Equal(t, "09:00", resp.Day.MorningIn)
	assert.Equal(t, "0:00", resp.Day.TotalHours)
	require.Len(t, resp.Warnings, 1)
	assert.Equal(t, "morning", resp.Warnings[0].Pair)
	assert.Len(t, f.notifier.messages(notification.LevelWarning), 1)

	resp, err = f.svc.SetTime(ctx, sess, "06/02/2025", worklog.SetTimeRequest{Field: "morning_out", Value: "12:30"})
	require.NoError(t, err)
	assert.Equal(t, "3:30", resp.Day.TotalHours)
	assert.Empty(t, resp.Warnings)
	assert.Equal(t, "3:30", resp.GrandTotal)
}

func TestWorklogService_SetTime_Errors(t *testing.T) {
	f := newFixture(t)
	sess := f.loadedSession()
	ctx := context.Background()

	_, err := f.svc.SetTime(ctx, sess, testWeek, worklog.SetTimeRequest{Field: "morning_in", Value: "8am"})
	assert.ErrorIs(t, err, worklog.ErrInvalidTime)

	_, err = f.svc.SetTime(ctx, sess, "2025-06-20", worklog.SetTimeRequest{Field: "morning_in", Value: "08:00"})
	assert.ErrorIs(t, err, worklog.ErrDayNotInWeek)

	_, err = f.svc.SetTime(ctx, sess, testWeek, worklog.SetTimeRequest{Field: "lunch", Value: "08:00"})
	assert.Error(t, err)

	empty := worklog.NewSession("empty", time.Now())
	_, err = f.svc.SetTime(ctx, empty, testWeek, worklog.SetTimeRequest{Field: "morning_in", Value: "08:00"})
	assert.ErrorIs(t, err, worklog.ErrNoWeekLoaded)

	assert.Equal(t, "0:00", sess.Records[testWeek].TotalHours)
}

func TestWorklogService_SetTime_ClearingRecomputes(t *testing.T) {
	f := newFixture(t)
	sess := f.loadedSession(timesheet.DailyLog{ID: 1, LogDate: testWeek, AfternoonIn: "13:00", AfternoonOut: "17:30"})

	resp, err := f.svc.SetTime(context.Background(), sess, testWeek, worklog.SetTimeRequest{Field: "afternoon_out", Value: ""})
	require.NoError(t, err)
	assert.Equal(t, "0:00", resp.Day.TotalHours)
}

func TestWorklogService_FocusTime_FillsOnlyEmpty(t *testing.T) {
	f := newFixture(t)
	sess := f.loadedSession()
	ctx := context.Background()

	for _, field := range worklog.AllFields() {
		_, err := f.svc.FocusTime(ctx, sess, testWeek, worklog.FocusTimeRequest{Field: string(field)})
		require.NoError(t, err)
	}
	rec := sess.Records[testWeek]
	assert.Equal(t, worklog.Times{MorningIn: "08:00", MorningOut: "12:00", AfternoonIn: "13:00", AfternoonOut: "17:00"}, rec.Times)
	assert.Equal(t, "8:00", rec.TotalHours)

	_, err := f.svc.SetTime(ctx, sess, testWeek, worklog.SetTimeRequest{Field: "morning_in", Value: "07:30"})
	require.NoError(t, err)
	resp, err := f.svc.FocusTime(ctx, sess, testWeek, worklog.FocusTimeRequest{Field: "morning_in"})
	require.NoError(t, err)
	assert.Equal(t, "07:30", resp.Day.MorningIn)
	assert.Equal(t, "8:30", resp.Day.TotalHours)
}

func TestWorklogService_SaveDay_CreateThenUpdate(t *testing.T) {
	f := newFixture(t)
	sess := f.loadedSession()
	ctx := context.Background()

	_, err := f.svc.SetTime(ctx, sess, testWeek, worklog.SetTimeRequest{Field: "morning_in", Value: "08:00"})
	require.NoError(t, err)
	_, err = f.svc.SetTime(ctx, sess, testWeek, worklog.SetTimeRequest{Field: "morning_out", Value: "12:00"})
	require.NoError(t, err)

	f.logs.On("GetByDate", mock.Anything, int64(11), testWeek).
		Return(timesheet.DailyLog{}, notFound(timesheet.ErrDailyLogNotFound)).Once()
	f.logs.On("Create", mock.Anything, int64(11), mock.MatchedBy(func(lf timesheet.LogFields) bool {
		return lf.LogDate == testWeek && lf.MorningIn == "08:00" && lf.MorningOut == "12:00" && lf.TotalHours == "4:00"
	})).Return(timesheet.DailyLog{ID: 50, TimesheetID: 11, LogDate: testWeek}, nil).Once()
	f.expectRefetch(timesheet.DailyLog{ID: 50, TimesheetID: 11, LogDate: testWeek, MorningIn: "08:00", MorningOut: "12:00"}).Twice()

	resp, err := f.svc.SaveDay(ctx, sess, testWeek)
	require.NoError(t, err)
	assert.True(t, resp.Created)
	assert.False(t, resp.HistoryRecorded)
	require.Len(t, resp.Week.Days, 7)
	require.NotNil(t, resp.Week.Days[0].ID)
	assert.Equal(t, int64(50), *resp.Week.Days[0].ID)
	assert.Equal(t, worklog.Persisted{ID: 50}, sess.Records[testWeek].Identity)

	// the second save of the same day must update, never create again
	_, err = f.svc.SetDescription(ctx, sess, testWeek, worklog.SetDescriptionRequest{Description: "sprint planning"})
	require.NoError(t, err)
	f.logs.On("Update", mock.Anything, int64(50), mock.MatchedBy(func(lf timesheet.LogFields) bool {
		return lf.Description == "sprint planning"
	})).Return(timesheet.DailyLog{ID: 50}, nil).Once()
	f.logs.On("AddChange", mock.Anything, int64(50), "sprint planning").Return(timesheet.Change{ID: 1}, nil).Once()

	resp, err = f.svc.SaveDay(ctx, sess, testWeek)
	require.NoError(t, err)
	assert.False(t, resp.Created)
	assert.True(t, resp.HistoryRecorded)

	f.logs.AssertNumberOfCalls(t, "Create", 1)
	f.logs.AssertNumberOfCalls(t, "GetByDate", 1)
	assert.Equal(t, []string{"Log saved successfully!", "Log saved successfully!"}, f.notifier.messages(notification.LevelSuccess))
}

func TestWorklogService_SaveDay_AdoptsExistingRow(t *testing.T) {
	f := newFixture(t)
	sess := f.loadedSession()
	ctx := context.Background()

	_, err := f.svc.SetDescription(ctx, sess, testWeek, worklog.SetDescriptionRequest{Description: "same"})
	require.NoError(t, err)

	f.logs.On("GetByDate", mock.Anything, int64(11), testWeek).
		Return(timesheet.DailyLog{ID: 77, LogDate: testWeek, Description: "same"}, nil).Once()
	f.logs.On("Update", mock.Anything, int64(77), mock.Anything).Return(timesheet.DailyLog{ID: 77}, nil).Once()
	f.expectRefetch(timesheet.DailyLog{ID: 77, LogDate: testWeek, Description: "same"}).Once()

	resp, err := f.svc.SaveDay(ctx, sess, testWeek)
	require.NoError(t, err)
	assert.True(t, resp.Adopted)
	assert.False(t, resp.Created)
	assert.False(t, resp.HistoryRecorded)
	assert.Equal(t, []string{"Log already exists. Updating instead."}, f.notifier.messages(notification.LevelInfo))
	f.logs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	f.logs.AssertNotCalled(t, "AddChange", mock.Anything, mock.Anything, mock.Anything)
}

func TestWorklogService_SaveDay_HistoryOnlyWhenDescriptionChanged(t *testing.T) {
	tests := []struct {
		name        string
		description string
		wantHistory bool
	}{
		{"unchanged", "original", false},
		{"changed", "revised", true},
		{"cleared", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			row := timesheet.DailyLog{ID: 5, LogDate: testWeek, Description: "original"}
			sess := f.loadedSession(row)
			ctx := context.Background()

			_, err := f.svc.SetDescription(ctx, sess, testWeek, worklog.SetDescriptionRequest{Description: tt.description})
			require.NoError(t, err)

			f.logs.On("Update", mock.Anything, int64(5), mock.Anything).Return(row, nil).Once()
			if tt.wantHistory {
				f.logs.On("AddChange", mock.Anything, int64(5), tt.description).Return(timesheet.Change{ID: 1}, nil).Once()
			}
			f.expectRefetch(row).Once()

			resp, err := f.svc.SaveDay(ctx, sess, testWeek)
			require.NoError(t, err)
			assert.Equal(t, tt.wantHistory, resp.HistoryRecorded)
			if !tt.wantHistory {
				f.logs.AssertNotCalled(t, "AddChange", mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}

func TestWorklogService_SaveDay_HistoryFailureIsWarning(t *testing.T) {
	f := newFixture(t)
	row := timesheet.DailyLog{ID: 5, LogDate: testWeek, Description: "original"}
	sess := f.loadedSession(row)
	ctx := context.Background()

	_, err := f.svc.SetDescription(ctx, sess, testWeek, worklog.SetDescriptionRequest{Description: "revised"})
	require.NoError(t, err)

	f.logs.On("Update", mock.Anything, int64(5), mock.Anything).Return(row, nil).Once()
	f.logs.On("AddChange", mock.Anything, int64(5), "revised").Return(timesheet.Change{}, errors.New("boom")).Once()
	f.expectRefetch(row).Once()

	resp, err := f.svc.SaveDay(ctx, sess, testWeek)
	require.NoError(t, err)
	assert.False(t, resp.HistoryRecorded)
	assert.Len(t, resp.Notices, 1)
	assert.Len(t, f.notifier.messages(notification.LevelWarning), 1)
}

func TestWorklogService_SaveDay_FailureLeavesRecordUntouched(t *testing.T) {
	f := newFixture(t)
	sess := f.loadedSession()
	ctx := context.Background()

	_, err := f.svc.SetTime(ctx, sess, testWeek, worklog.SetTimeRequest{Field: "afternoon_in", Value: "13:00"})
	require.NoError(t, err)
	before := *sess.Records[testWeek]

	apiErr := &backend.APIError{StatusCode: 400, Method: "POST", Path: "/api/daily-logs", Message: "Invalid log_date"}
	f.logs.On("GetByDate", mock.Anything, int64(11), testWeek).
		Return(timesheet.DailyLog{}, notFound(timesheet.ErrDailyLogNotFound)).Once()
	f.logs.On("Create", mock.Anything, int64(11), mock.Anything).
		Return(timesheet.DailyLog{}, fmt.Errorf("failed to create daily log: %w", apiErr)).Once()

	_, err = f.svc.SaveDay(ctx, sess, testWeek)
	require.Error(t, err)

	var got *backend.APIError
	require.ErrorAs(t, err, &got)
	assert.Equal(t, before, *sess.Records[testWeek])
	assert.False(t, sess.Records[testWeek].IsPersisted())
	assert.Equal(t, []string{"Error saving log: Invalid log_date"}, f.notifier.messages(notification.LevelError))
	f.dashboard.AssertNotCalled(t, "GetWeek", mock.Anything, mock.Anything, mock.Anything)
}

func TestWorklogService_SaveDay_CreatesMissingTimesheet(t *testing.T) {
	f := newFixture(t)
	sess := f.loadedSession()
	sess.TimesheetID = 0
	ctx := context.Background()

	f.timesheets.On("GetByEmployeeNameWeek", mock.Anything, "Ana", testWeek).
		Return(timesheet.Timesheet{}, notFound(timesheet.ErrTimesheetNotFound)).Once()
	f.timesheets.On("Create", mock.Anything, "Ana", testWeek).Return(timesheet.Timesheet{ID: 12}, nil).Once()
	f.logs.On("GetByDate", mock.Anything, int64(12), testWeek).
		Return(timesheet.DailyLog{}, notFound(timesheet.ErrDailyLogNotFound)).Once()
	f.logs.On("Create", mock.Anything, int64(12), mock.Anything).Return(timesheet.DailyLog{ID: 1}, nil).Once()
	f.dashboard.On("GetWeek", mock.Anything, "ana@example.com", testWeek).
		Return(timesheet.WeekSnapshot{Employee: testEmployee, Logs: []timesheet.DailyLog{{ID: 1, LogDate: testWeek}}}, nil).Once()

	resp, err := f.svc.SaveDay(ctx, sess, testWeek)
	require.NoError(t, err)
	require.NotNil(t, resp.Week.TimesheetID)
	assert.Equal(t, int64(12), *resp.Week.TimesheetID)
}

func TestWorklogService_SaveDay_FailedWriteKeepsSessionUnbound(t *testing.T) {
	f := newFixture(t)
	sess := f.loadedSession()
	sess.TimesheetID = 0
	ctx := context.Background()

	f.timesheets.On("GetByEmployeeNameWeek", mock.Anything, "Ana", testWeek).
		Return(timesheet.Timesheet{}, notFound(timesheet.ErrTimesheetNotFound)).Once()
	f.timesheets.On("Create", mock.Anything, "Ana", testWeek).Return(timesheet.Timesheet{ID: 12}, nil).Once()
	f.logs.On("GetByDate", mock.Anything, int64(12), testWeek).
		Return(timesheet.DailyLog{}, notFound(timesheet.ErrDailyLogNotFound)).Once()
	f.logs.On("Create", mock.Anything, int64(12), mock.Anything).
		Return(timesheet.DailyLog{}, &backend.APIError{StatusCode: 500, Message: "db down"}).Once()

	_, err := f.svc.SaveDay(ctx, sess, testWeek)
	require.Error(t, err)
	assert.Equal(t, int64(0), sess.TimesheetID)
	assert.False(t, sess.Records[testWeek].IsPersisted())
}

func TestWorklogService_SaveDay_SheetStartingMidWeek(t *testing.T) {
	f := newFixture(t)
	sess := worklog.NewSession("sess-1", time.Now())
	sess.Employee = testEmployee
	ctx := context.Background()

	stored := timesheet.DailyLog{ID: 77, TimesheetID: 50, LogDate: "2025-06-04", MorningIn: "08:00", MorningOut: "12:00"}
	sheets := []timesheet.Timesheet{{ID: 50, EmployeeID: 7, WeekStarting: "2025-06-03"}}
	f.dashboard.On("GetWeek", mock.Anything, "ana@example.com", testWeek).
		Return(timesheet.WeekSnapshot{Employee: testEmployee, Timesheets: sheets, Logs: []timesheet.DailyLog{stored}}, nil).Once()

	_, err := f.svc.LoadWeek(ctx, sess, testWeek)
	require.NoError(t, err)
	assert.Equal(t, int64(50), sess.TimesheetID)

	f.logs.On("GetByDate", mock.Anything, int64(50), testWeek).
		Return(timesheet.DailyLog{}, notFound(timesheet.ErrDailyLogNotFound)).Once()
	f.logs.On("Create", mock.Anything, int64(50), mock.Anything).
		Return(timesheet.DailyLog{ID: 90, TimesheetID: 50, LogDate: testWeek}, nil).Once()
	f.dashboard.On("GetWeek", mock.Anything, "ana@example.com", testWeek).
		Return(timesheet.WeekSnapshot{Employee: testEmployee, Timesheets: sheets, Logs: []timesheet.DailyLog{
			{ID: 90, TimesheetID: 50, LogDate: testWeek},
			stored,
		}}, nil).Once()

	resp, err := f.svc.SaveDay(ctx, sess, testWeek)
	require.NoError(t, err)

	f.timesheets.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	assert.Equal(t, int64(50), sess.TimesheetID)
	assert.Equal(t, worklog.Persisted{ID: 77}, sess.Records["2025-06-04"].Identity)
	require.NotNil(t, resp.Week.Days[2].ID)
	assert.Equal(t, int64(77), *resp.Week.Days[2].ID)
}

func TestBindTimesheet(t *testing.T) {
	tests := []struct {
		name   string
		sheets []timesheet.Timesheet
		want   int64
	}{
		{"exact start wins", []timesheet.Timesheet{{ID: 50, WeekStarting: "2025-06-03"}, {ID: 11, WeekStarting: testWeek}}, 11},
		{"falls back to first", []timesheet.Timesheet{{ID: 50, WeekStarting: "2025-06-03"}, {ID: 51, WeekStarting: "2025-06-05"}}, 50},
		{"none", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, bindTimesheet(tt.sheets, testWeek))
		})
	}
}

func TestWorklogService_SaveGate(t *testing.T) {
	f := newFixture(t)
	sess := f.loadedSession()
	ctx := context.Background()

	entered := make(chan struct{})
	release := make(chan struct{})
	f.logs.On("GetByDate", mock.Anything, int64(11), testWeek).
		Return(timesheet.DailyLog{}, notFound(timesheet.ErrDailyLogNotFound)).Once()
	f.logs.On("Create", mock.Anything, int64(11), mock.Anything).
		Run(func(mock.Arguments) {
			close(entered)
			<-release
		}).
		Return(timesheet.DailyLog{ID: 50}, nil).Once()
	f.expectRefetch(timesheet.DailyLog{ID: 50, LogDate: testWeek}).Once()

	done := make(chan error, 1)
	go func() {
		_, err := f.svc.SaveDay(ctx, sess, testWeek)
		done <- err
	}()
	<-entered

	_, err := f.svc.SaveDay(ctx, sess, "2025-06-03")
	assert.ErrorIs(t, err, worklog.ErrSaveInProgress)
	_, err = f.svc.SaveWeek(ctx, sess)
	assert.ErrorIs(t, err, worklog.ErrSaveInProgress)

	close(release)
	require.NoError(t, <-done)
	assert.False(t, sess.Saving())
}

func TestWorklogService_SaveWeek(t *testing.T) {
	f := newFixture(t)
	sess := f.loadedSession(timesheet.DailyLog{ID: 10, LogDate: "2025-06-03", MorningIn: "08:00", MorningOut: "12:00"})
	ctx := context.Background()

	f.logs.On("SaveBulk", mock.Anything, mock.MatchedBy(func(entries []timesheet.BulkEntry) bool {
		if len(entries) != 7 {
			return false
		}
		mon, tue := entries[0], entries[1]
		return mon.ID == nil && mon.LogDate == testWeek && mon.WeekStarting == testWeek && mon.EmployeeID == 7 &&
			tue.ID != nil && *tue.ID == 10 && tue.TotalHours == "4:00"
	})).Return(nil).Once()
	f.dashboard.On("GetWeek", mock.Anything, "ana@example.com", testWeek).Return(timesheet.WeekSnapshot{
		Employee:   testEmployee,
		Timesheets: []timesheet.Timesheet{{ID: 11, WeekStarting: testWeek}},
		Logs: []timesheet.DailyLog{
			{ID: 10, LogDate: "2025-06-03", MorningIn: "08:00", MorningOut: "12:00"},
			{ID: 11, LogDate: testWeek},
		},
	}, nil).Once()

	resp, err := f.svc.SaveWeek(ctx, sess)
	require.NoError(t, err)
	assert.Equal(t, worklog.KindPersisted, resp.Week.Days[0].Kind)
	assert.Equal(t, "4:00", resp.Week.GrandTotal)
	assert.Equal(t, []string{"Changes saved successfully!"}, f.notifier.messages(notification.LevelSuccess))
}

func TestWorklogService_SaveWeek_RequiresWeek(t *testing.T) {
	f := newFixture(t)
	sess := worklog.NewSession("sess-1", time.Now())
	sess.Employee = testEmployee

	_, err := f.svc.SaveWeek(context.Background(), sess)
	assert.ErrorIs(t, err, worklog.ErrNoWeekLoaded)
	assert.False(t, sess.Saving())
}

func TestWorklogService_ChangeHistory(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.ChangeHistory(ctx, 0)
	assert.ErrorIs(t, err, worklog.ErrInvalidLogID)

	f.logs.On("ListChanges", mock.Anything, int64(5)).Return([]timesheet.Change{
		{ID: 1, DailyLogID: 5, NewDescription: "a", ChangedAt: "2025-06-02T10:00:00"},
		{ID: 2, DailyLogID: 5, NewDescription: "b", ChangedAt: "2025-06-02T11:00:00"},
	}, nil).Once()

	items, err := f.svc.ChangeHistory(ctx, 5)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "a", items[0].NewDescription)
	assert.Equal(t, "b", items[1].NewDescription)
}

func TestWorklogService_View_EmptySession(t *testing.T) {
	f := newFixture(t)
	view := f.svc.View(worklog.NewSession("s", time.Now()))
	assert.Empty(t, view.Days)
	assert.NotNil(t, view.Days)
	assert.Nil(t, view.Employee)
	assert.Equal(t, "0:00", view.GrandTotal)
}
