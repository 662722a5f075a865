package worklog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cmlabs-hris/timesheet-portal/internal/domain/employee"
	"github.com/cmlabs-hris/timesheet-portal/internal/domain/notification"
	"github.com/cmlabs-hris/timesheet-portal/internal/domain/timesheet"
	"github.com/cmlabs-hris/timesheet-portal/internal/domain/worklog"
	"github.com/cmlabs-hris/timesheet-portal/internal/pkg/backend"
	"github.com/cmlabs-hris/timesheet-portal/internal/pkg/utils"
	"github.com/cmlabs-hris/timesheet-portal/internal/pkg/validator"
	"github.com/google/uuid"
)

type worklogServiceImpl struct {
	sessions     worklog.SessionRepository
	employees    employee.EmployeeService
	dashboard    timesheet.DashboardRepository
	timesheets   timesheet.TimesheetRepository
	logs         timesheet.DailyLogRepository
	notifier     notification.Notifier
	calc         *HoursCalculator
	reconciler   *Reconciler
	defaultEmail string
	now          func() time.Time
}

func NewWorklogService(
	sessions worklog.SessionRepository,
	employees employee.EmployeeService,
	dashboard timesheet.DashboardRepository,
	timesheets timesheet.TimesheetRepository,
	logs timesheet.DailyLogRepository,
	notifier notification.Notifier,
	defaultEmail string,
) worklog.WorklogService {
	calc := NewHoursCalculator()
	return &worklogServiceImpl{
		sessions:     sessions,
		employees:    employees,
		dashboard:    dashboard,
		timesheets:   timesheets,
		logs:         logs,
		notifier:     notifier,
		calc:         calc,
		reconciler:   NewReconciler(calc),
		defaultEmail: defaultEmail,
		now:          time.Now,
	}
}

// StartSession implements worklog.WorklogService.
func (s *worklogServiceImpl) StartSession(ctx context.Context, req worklog.StartSessionRequest) (worklog.SessionResponse, error) {
	if err := req.Validate(); err != nil {
		return worklog.SessionResponse{}, err
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		email = s.defaultEmail
	}
	if email == "" {
		return worklog.SessionResponse{}, employee.ErrEmailRequired
	}

	profile, err := s.employees.GetProfile(ctx, email)
	if err != nil {
		return worklog.SessionResponse{}, err
	}

	sess := worklog.NewSession(uuid.NewString(), s.now())
	sess.Employee = profile.Employee
	sess.Managers = profile.Managers
	if err := s.sessions.Create(ctx, sess); err != nil {
		return worklog.SessionResponse{}, fmt.Errorf("failed to store session: %w", err)
	}
	slog.Info("Session started", "session_id", sess.ID, "employee_id", sess.Employee.ID)

	empResp := employee.NewEmployeeResponse(sess.Employee)
	return worklog.SessionResponse{
		SessionID: sess.ID,
		Employee:  &empResp,
		Chain:     chainResponses(sess.Chain()),
	}, nil
}

// GetSession implements worklog.WorklogService.
func (s *worklogServiceImpl) GetSession(ctx context.Context, id string) (*worklog.Session, error) {
	if id == "" {
		return nil, worklog.ErrSessionRequired
	}
	sess, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	sess.Touch(s.now())
	return sess, nil
}

// EndSession implements worklog.WorklogService.
func (s *worklogServiceImpl) EndSession(ctx context.Context, id string) error {
	return s.sessions.Delete(ctx, id)
}

// LoadWeek implements worklog.WorklogService.
func (s *worklogServiceImpl) LoadWeek(ctx context.Context, sess *worklog.Session, weekStarting string) (worklog.WeekResponse, error) {
	sess.Lock()
	defer sess.Unlock()

	if err := s.loadWeekLocked(ctx, sess, weekStarting, 0); err != nil {
		return worklog.WeekResponse{}, s.fail(ctx, sess, "Error fetching dashboard", err)
	}
	return s.viewLocked(sess), nil
}

// loadWeekLocked rebuilds the week from the dashboard. A non-zero timesheetID
// keeps that sheet bound; otherwise the sheet starting on weekStarting wins,
// then the first sheet the dashboard returns for the week. Any failure leaves
// the session with no week loaded.
func (s *worklogServiceImpl) loadWeekLocked(ctx context.Context, sess *worklog.Session, weekStarting string, timesheetID int64) error {
	days := GenerateWeek(weekStarting)
	if days == nil {
		sess.ClearWeek()
		return worklog.ErrInvalidWeekStart
	}
	if sess.Employee.Email == "" {
		sess.ClearWeek()
		return worklog.ErrNoEmployee
	}

	snap, err := s.dashboard.GetWeek(ctx, sess.Employee.Email, weekStarting)
	if err != nil {
		sess.ClearWeek()
		return err
	}

	if snap.Employee.ID != 0 {
		sess.Employee = snap.Employee
	}
	if len(snap.Managers) > 0 {
		sess.Managers = snap.Managers
	}

	if timesheetID == 0 {
		timesheetID = bindTimesheet(snap.Timesheets, weekStarting)
	}

	sess.WeekStarting = weekStarting
	sess.Days = days
	sess.TimesheetID = timesheetID
	sess.Records = s.reconciler.Reconcile(days, snap.Logs)
	return nil
}

// bindTimesheet picks the sheet for a week out of the dashboard's timesheets,
// which cover every sheet starting within the seven days
func bindTimesheet(sheets []timesheet.Timesheet, weekStarting string) int64 {
	for _, ts := range sheets {
		if ts.WeekStarting == weekStarting {
			return ts.ID
		}
	}
	if len(sheets) > 0 {
		return sheets[0].ID
	}
	return 0
}

// OpenWeek implements worklog.WorklogService.
func (s *worklogServiceImpl) OpenWeek(ctx context.Context, sess *worklog.Session, weekStarting string) (worklog.WeekResponse, error) {
	if !sess.TryBeginSave() {
		return worklog.WeekResponse{}, s.fail(ctx, sess, "Error saving week", worklog.ErrSaveInProgress)
	}
	defer sess.EndSave()

	sess.Lock()
	defer sess.Unlock()

	days := GenerateWeek(weekStarting)
	if days == nil {
		sess.ClearWeek()
		return worklog.WeekResponse{}, s.fail(ctx, sess, "Please select a valid week starting date", worklog.ErrInvalidWeekStart)
	}
	if sess.Employee.ID == 0 {
		return worklog.WeekResponse{}, s.fail(ctx, sess, "Error saving week", worklog.ErrNoEmployee)
	}

	ts, existed, err := s.findOrCreateTimesheet(ctx, sess.Employee.Name, weekStarting)
	if err != nil {
		sess.ClearWeek()
		return worklog.WeekResponse{}, s.fail(ctx, sess, "Error saving week", err)
	}

	logs, err := s.logs.ListByTimesheet(ctx, ts.ID)
	if err != nil {
		sess.ClearWeek()
		return worklog.WeekResponse{}, s.fail(ctx, sess, "Error saving week", err)
	}

	sess.WeekStarting = weekStarting
	sess.Days = days
	sess.TimesheetID = ts.ID
	sess.Records = s.reconciler.Reconcile(days, logs)

	if existed {
		s.notifier.Notify(ctx, sess.ID, notification.LevelInfo, "Week already exists. Showing records.")
	} else {
		s.notifier.Notify(ctx, sess.ID, notification.LevelSuccess, "Week starting date saved successfully!")
	}
	return s.viewLocked(sess), nil
}

func (s *worklogServiceImpl) findOrCreateTimesheet(ctx context.Context, employeeName, weekStarting string) (timesheet.Timesheet, bool, error) {
	ts, err := s.timesheets.GetByEmployeeNameWeek(ctx, employeeName, weekStarting)
	if err == nil {
		return ts, true, nil
	}
	if !errors.Is(err, timesheet.ErrTimesheetNotFound) {
		return timesheet.Timesheet{}, false, err
	}
	ts, err = s.timesheets.Create(ctx, employeeName, weekStarting)
	if err != nil {
		return timesheet.Timesheet{}, false, err
	}
	return ts, false, nil
}

// SetTime implements worklog.WorklogService.
func (s *worklogServiceImpl) SetTime(ctx context.Context, sess *worklog.Session, date string, req worklog.SetTimeRequest) (worklog.EditResponse, error) {
	if err := req.Validate(); err != nil {
		return worklog.EditResponse{}, err
	}
	field := worklog.Field(req.Field)
	value := utils.NormalizeTime(req.Value)
	if value != "" && !validator.IsValidClock(value) {
		return worklog.EditResponse{}, s.fail(ctx, sess, "Invalid time", worklog.ErrInvalidTime)
	}

	sess.Lock()
	defer sess.Unlock()

	rec, err := s.record(sess, date)
	if err != nil {
		return worklog.EditResponse{}, s.fail(ctx, sess, "Error updating log", err)
	}
	rec.Times.Set(field, value)
	warnings := s.calc.Apply(rec)
	s.warn(ctx, sess, warnings)
	return s.editResponse(sess, rec, warnings), nil
}

// FocusTime implements worklog.WorklogService.
func (s *worklogServiceImpl) FocusTime(ctx context.Context, sess *worklog.Session, date string, req worklog.FocusTimeRequest) (worklog.EditResponse, error) {
	if err := req.Validate(); err != nil {
		return worklog.EditResponse{}, err
	}
	field := worklog.Field(req.Field)

	sess.Lock()
	defer sess.Unlock()

	rec, err := s.record(sess, date)
	if err != nil {
		return worklog.EditResponse{}, s.fail(ctx, sess, "Error updating log", err)
	}
	if rec.Times.Get(field) == "" {
		rec.Times.Set(field, field.Default())
	}
	warnings := s.calc.Apply(rec)
	s.warn(ctx, sess, warnings)
	return s.editResponse(sess, rec, warnings), nil
}

// SetDescription implements worklog.WorklogService.
func (s *worklogServiceImpl) SetDescription(ctx context.Context, sess *worklog.Session, date string, req worklog.SetDescriptionRequest) (worklog.EditResponse, error) {
	if err := req.Validate(); err != nil {
		return worklog.EditResponse{}, err
	}

	sess.Lock()
	defer sess.Unlock()

	rec, err := s.record(sess, date)
	if err != nil {
		return worklog.EditResponse{}, s.fail(ctx, sess, "Error updating log", err)
	}
	rec.Description = req.Description
	warnings := s.calc.Apply(rec)
	return s.editResponse(sess, rec, warnings), nil
}

// SaveDay implements worklog.WorklogService. A provisional day is looked up by
// date first so a row created elsewhere is updated rather than duplicated.
// The record is only touched once the backend has accepted the write.
func (s *worklogServiceImpl) SaveDay(ctx context.Context, sess *worklog.Session, date string) (worklog.SaveResponse, error) {
	if !sess.TryBeginSave() {
		return worklog.SaveResponse{}, s.fail(ctx, sess, "Error saving log", worklog.ErrSaveInProgress)
	}
	defer sess.EndSave()

	sess.Lock()
	defer sess.Unlock()

	rec, err := s.record(sess, date)
	if err != nil {
		return worklog.SaveResponse{}, s.fail(ctx, sess, "Error saving log", err)
	}
	if sess.Employee.ID == 0 {
		return worklog.SaveResponse{}, s.fail(ctx, sess, "Employee or timesheet not available", worklog.ErrNoEmployee)
	}
	timesheetID, err := s.ensureTimesheet(ctx, sess)
	if err != nil {
		return worklog.SaveResponse{}, s.fail(ctx, sess, "Employee or timesheet not available", err)
	}

	var resp worklog.SaveResponse
	fields := logFields(rec)
	baseline := rec.PersistedDescription

	id, persisted := worklog.PersistedID(rec.Identity)
	if !persisted {
		existing, err := s.logs.GetByDate(ctx, timesheetID, rec.Date)
		switch {
		case err == nil:
			id, persisted = existing.ID, true
			baseline = existing.Description
			resp.Adopted = true
			resp.Notices = append(resp.Notices, "Log already exists. Updating instead.")
			s.notifier.Notify(ctx, sess.ID, notification.LevelInfo, "Log already exists. Updating instead.")
		case errors.Is(err, timesheet.ErrDailyLogNotFound):
		default:
			return worklog.SaveResponse{}, s.fail(ctx, sess, "Error saving log", err)
		}
	}

	if persisted {
		if _, err := s.logs.Update(ctx, id, fields); err != nil {
			return worklog.SaveResponse{}, s.fail(ctx, sess, "Error saving log", err)
		}
		if rec.Description != "" && rec.Description != baseline {
			if _, err := s.logs.AddChange(ctx, id, rec.Description); err != nil {
				slog.Warn("Failed to record description change", "daily_log_id", id, "error", err)
				resp.Notices = append(resp.Notices, "Log saved, but the description history was not recorded.")
				s.notifier.Notify(ctx, sess.ID, notification.LevelWarning, "Log saved, but the description history was not recorded.")
			} else {
				resp.HistoryRecorded = true
			}
		}
	} else {
		created, err := s.logs.Create(ctx, timesheetID, fields)
		if err != nil {
			return worklog.SaveResponse{}, s.fail(ctx, sess, "Error saving log", err)
		}
		id = created.ID
		resp.Created = true
	}

	sess.TimesheetID = timesheetID
	if id != 0 {
		rec.Identity = worklog.Persisted{ID: id}
		rec.PersistedDescription = rec.Description
	}
	s.notifier.Notify(ctx, sess.ID, notification.LevelSuccess, "Log saved successfully!")

	// the dashboard returns the week's rows across every sheet, so rows stored
	// under another sheet keep their ids
	if err := s.loadWeekLocked(ctx, sess, sess.WeekStarting, timesheetID); err != nil {
		resp.Notices = append(resp.Notices, "Log saved, but the week could not be reloaded.")
		_ = s.fail(ctx, sess, "Error fetching dashboard", err)
	}

	resp.Week = s.viewLocked(sess)
	return resp, nil
}

// ensureTimesheet returns the bound sheet, finding or creating one when the
// week has none. The session is only rebound once a log write succeeds.
func (s *worklogServiceImpl) ensureTimesheet(ctx context.Context, sess *worklog.Session) (int64, error) {
	if sess.TimesheetID != 0 {
		return sess.TimesheetID, nil
	}
	ts, _, err := s.findOrCreateTimesheet(ctx, sess.Employee.Name, sess.WeekStarting)
	if err != nil {
		return 0, err
	}
	return ts.ID, nil
}

// SaveWeek implements worklog.WorklogService.
func (s *worklogServiceImpl) SaveWeek(ctx context.Context, sess *worklog.Session) (worklog.SaveResponse, error) {
	if !sess.TryBeginSave() {
		return worklog.SaveResponse{}, s.fail(ctx, sess, "Error saving logs", worklog.ErrSaveInProgress)
	}
	defer sess.EndSave()

	sess.Lock()
	defer sess.Unlock()

	if !sess.HasWeek() {
		return worklog.SaveResponse{}, s.fail(ctx, sess, "Error saving logs", worklog.ErrNoWeekLoaded)
	}
	if sess.Employee.ID == 0 {
		return worklog.SaveResponse{}, s.fail(ctx, sess, "No employee data available to save logs", worklog.ErrNoEmployee)
	}

	records := sess.OrderedRecords()
	entries := make([]timesheet.BulkEntry, 0, len(records))
	for _, rec := range records {
		entry := timesheet.BulkEntry{
			EmployeeID:   sess.Employee.ID,
			WeekStarting: sess.WeekStarting,
			LogFields:    logFields(rec),
		}
		if id, ok := worklog.PersistedID(rec.Identity); ok {
			entry.ID = &id
		}
		entries = append(entries, entry)
	}

	if err := s.logs.SaveBulk(ctx, entries); err != nil {
		return worklog.SaveResponse{}, s.fail(ctx, sess, "Error saving logs", err)
	}
	s.notifier.Notify(ctx, sess.ID, notification.LevelSuccess, "Changes saved successfully!")

	var resp worklog.SaveResponse
	if err := s.loadWeekLocked(ctx, sess, sess.WeekStarting, sess.TimesheetID); err != nil {
		resp.Notices = append(resp.Notices, "Changes saved, but the week could not be reloaded.")
		_ = s.fail(ctx, sess, "Error fetching dashboard", err)
	}
	resp.Week = s.viewLocked(sess)
	return resp, nil
}

// ChangeHistory implements worklog.WorklogService.
func (s *worklogServiceImpl) ChangeHistory(ctx context.Context, dailyLogID int64) ([]worklog.ChangeHistoryItem, error) {
	if dailyLogID <= 0 {
		return nil, worklog.ErrInvalidLogID
	}
	changes, err := s.logs.ListChanges(ctx, dailyLogID)
	if err != nil {
		return nil, err
	}
	items := make([]worklog.ChangeHistoryItem, 0, len(changes))
	for _, c := range changes {
		items = append(items, worklog.ChangeHistoryItem{
			ID:             c.ID,
			DailyLogID:     c.DailyLogID,
			NewDescription: c.NewDescription,
			ChangedAt:      c.ChangedAt,
		})
	}
	return items, nil
}

// View implements worklog.WorklogService.
func (s *worklogServiceImpl) View(sess *worklog.Session) worklog.WeekResponse {
	sess.Lock()
	defer sess.Unlock()
	return s.viewLocked(sess)
}

func (s *worklogServiceImpl) viewLocked(sess *worklog.Session) worklog.WeekResponse {
	resp := worklog.WeekResponse{
		SessionID:    sess.ID,
		WeekStarting: sess.WeekStarting,
		Chain:        chainResponses(sess.Chain()),
		Days:         []worklog.DayResponse{},
	}
	if sess.Employee.ID != 0 {
		e := employee.NewEmployeeResponse(sess.Employee)
		resp.Employee = &e
	}
	if sess.TimesheetID != 0 {
		id := sess.TimesheetID
		resp.TimesheetID = &id
	}

	totals := make([]string, 0, len(sess.Records))
	for _, rec := range sess.OrderedRecords() {
		resp.Days = append(resp.Days, worklog.NewDayResponse(rec))
		totals = append(totals, rec.TotalHours)
	}
	resp.GrandTotal = SumTotals(totals...)
	return resp
}

func (s *worklogServiceImpl) editResponse(sess *worklog.Session, rec *worklog.DayRecord, warnings []worklog.PairWarning) worklog.EditResponse {
	totals := make([]string, 0, len(sess.Records))
	for _, r := range sess.Records {
		totals = append(totals, r.TotalHours)
	}
	return worklog.EditResponse{
		Day:        worklog.NewDayResponse(rec),
		Warnings:   worklog.NewWarningResponses(warnings),
		GrandTotal: SumTotals(totals...),
	}
}

// record finds the day for date, which may be ISO or MM/DD/YYYY
func (s *worklogServiceImpl) record(sess *worklog.Session, date string) (*worklog.DayRecord, error) {
	if !sess.HasWeek() {
		return nil, worklog.ErrNoWeekLoaded
	}
	rec, ok := sess.Records[utils.NormalizeDate(date)]
	if !ok {
		return nil, worklog.ErrDayNotInWeek
	}
	return rec, nil
}

func (s *worklogServiceImpl) warn(ctx context.Context, sess *worklog.Session, warnings []worklog.PairWarning) {
	for _, w := range warnings {
		s.notifier.Notify(ctx, sess.ID, notification.LevelWarning, w.Message())
	}
}

// fail publishes an error toast for err and returns it unchanged
func (s *worklogServiceImpl) fail(ctx context.Context, sess *worklog.Session, prefix string, err error) error {
	s.notifier.Notify(ctx, sess.ID, notification.LevelError, prefix+": "+userMessage(err))
	return err
}

// userMessage prefers the backend's own wording over the wrapped error chain
func userMessage(err error) string {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}

func logFields(rec *worklog.DayRecord) timesheet.LogFields {
	return timesheet.LogFields{
		LogDate:      rec.Date,
		MorningIn:    rec.Times.MorningIn,
		MorningOut:   rec.Times.MorningOut,
		AfternoonIn:  rec.Times.AfternoonIn,
		AfternoonOut: rec.Times.AfternoonOut,
		Description:  rec.Description,
		TotalHours:   rec.TotalHours,
	}
}

func chainResponses(chain []employee.Employee) []employee.EmployeeResponse {
	out := make([]employee.EmployeeResponse, 0, len(chain))
	for _, e := range chain {
		out = append(out, employee.NewEmployeeResponse(e))
	}
	return out
}
