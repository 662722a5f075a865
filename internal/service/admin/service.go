package admin

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/cmlabs-hris/timesheet-portal/internal/domain/admin"
	"github.com/cmlabs-hris/timesheet-portal/internal/domain/timesheet"
	"github.com/cmlabs-hris/timesheet-portal/internal/domain/worklog"
	worklogservice "github.com/cmlabs-hris/timesheet-portal/internal/service/worklog"
	"golang.org/x/sync/errgroup"
)

const overviewConcurrency = 4

type AdminServiceImpl struct {
	timesheetRepo timesheet.TimesheetRepository
	dailyLogRepo  timesheet.DailyLogRepository
	calc          *worklogservice.HoursCalculator
}

func NewAdminService(timesheetRepo timesheet.TimesheetRepository, dailyLogRepo timesheet.DailyLogRepository) admin.AdminService {
	return &AdminServiceImpl{
		timesheetRepo: timesheetRepo,
		dailyLogRepo:  dailyLogRepo,
		calc:          worklogservice.NewHoursCalculator(),
	}
}

// ListTimesheets implements admin.AdminService.
func (s *AdminServiceImpl) ListTimesheets(ctx context.Context) ([]admin.TimesheetResponse, error) {
	ts, err := s.timesheetRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toTimesheetResponses(ts), nil
}

// TimesheetsByEmployee implements admin.AdminService.
func (s *AdminServiceImpl) TimesheetsByEmployee(ctx context.Context, employeeName string) ([]admin.TimesheetResponse, error) {
	employeeName = strings.TrimSpace(employeeName)
	if employeeName == "" {
		return nil, timesheet.ErrEmployeeNameRequired
	}
	ts, err := s.timesheetRepo.ListByEmployeeName(ctx, employeeName)
	if err != nil {
		return nil, err
	}
	return toTimesheetResponses(ts), nil
}

// DailyLogsForTimesheet implements admin.AdminService.
func (s *AdminServiceImpl) DailyLogsForTimesheet(ctx context.Context, timesheetID int64) (admin.TimesheetDetail, error) {
	if timesheetID <= 0 {
		return admin.TimesheetDetail{}, timesheet.ErrInvalidTimesheetID
	}

	var (
		sheets []timesheet.Timesheet
		logs   []timesheet.DailyLog
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		sheets, err = s.timesheetRepo.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		logs, err = s.dailyLogRepo.ListByTimesheet(gctx, timesheetID)
		return err
	})
	if err := g.Wait(); err != nil {
		return admin.TimesheetDetail{}, err
	}

	for _, ts := range sheets {
		if ts.ID == timesheetID {
			return s.detail(ts, logs), nil
		}
	}
	return admin.TimesheetDetail{}, fmt.Errorf("timesheet %d: %w", timesheetID, timesheet.ErrTimesheetNotFound)
}

// EmployeeOverview implements admin.AdminService.
func (s *AdminServiceImpl) EmployeeOverview(ctx context.Context, employeeName string) (admin.EmployeeOverview, error) {
	employeeName = strings.TrimSpace(employeeName)
	if employeeName == "" {
		return admin.EmployeeOverview{}, timesheet.ErrEmployeeNameRequired
	}

	sheets, err := s.timesheetRepo.ListByEmployeeName(ctx, employeeName)
	if err != nil {
		return admin.EmployeeOverview{}, err
	}

	details := make([]admin.TimesheetDetail, len(sheets))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(overviewConcurrency)
	for i, ts := range sheets {
		g.Go(func() error {
			logs, err := s.dailyLogRepo.ListByTimesheet(gctx, ts.ID)
			if err != nil {
				return err
			}
			details[i] = s.detail(ts, logs)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return admin.EmployeeOverview{}, err
	}

	sort.SliceStable(details, func(i, j int) bool {
		return details[i].Timesheet.WeekStarting > details[j].Timesheet.WeekStarting
	})

	totals := make([]string, 0, len(details))
	for _, d := range details {
		totals = append(totals, d.TotalHours)
	}
	return admin.EmployeeOverview{
		EmployeeName: employeeName,
		Timesheets:   details,
		TotalHours:   worklogservice.SumTotals(totals...),
	}, nil
}

// detail orders logs by date and recomputes each total from its times
func (s *AdminServiceImpl) detail(ts timesheet.Timesheet, logs []timesheet.DailyLog) admin.TimesheetDetail {
	sort.SliceStable(logs, func(i, j int) bool { return logs[i].LogDate < logs[j].LogDate })

	out := admin.TimesheetDetail{
		Timesheet: admin.NewTimesheetResponse(ts),
		DailyLogs: make([]admin.DailyLogResponse, 0, len(logs)),
	}
	totals := make([]string, 0, len(logs))
	for _, l := range logs {
		res := s.calc.Calculate(worklog.Times{
			MorningIn:    l.MorningIn,
			MorningOut:   l.MorningOut,
			AfternoonIn:  l.AfternoonIn,
			AfternoonOut: l.AfternoonOut,
		})
		totals = append(totals, res.Total)
		out.DailyLogs = append(out.DailyLogs, admin.DailyLogResponse{
			ID:           l.ID,
			TimesheetID:  l.TimesheetID,
			LogDate:      l.LogDate,
			DayOfWeek:    l.DayOfWeek,
			MorningIn:    l.MorningIn,
			MorningOut:   l.MorningOut,
			AfternoonIn:  l.AfternoonIn,
			AfternoonOut: l.AfternoonOut,
			TotalHours:   res.Total,
			Description:  l.Description,
		})
	}
	out.TotalHours = worklogservice.SumTotals(totals...)
	return out
}

func toTimesheetResponses(ts []timesheet.Timesheet) []admin.TimesheetResponse {
	out := make([]admin.TimesheetResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, admin.NewTimesheetResponse(t))
	}
	return out
}
