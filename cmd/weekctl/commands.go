package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/cmlabs-hris/timesheet-portal/internal/domain/notification"
	"github.com/cmlabs-hris/timesheet-portal/internal/domain/worklog"
	"github.com/cmlabs-hris/timesheet-portal/internal/pkg/backend"
	"github.com/cmlabs-hris/timesheet-portal/internal/repository/backendapi"
	"github.com/cmlabs-hris/timesheet-portal/internal/repository/memory"
	employeeService "github.com/cmlabs-hris/timesheet-portal/internal/service/employee"
	worklogService "github.com/cmlabs-hris/timesheet-portal/internal/service/worklog"
)

// Context is handed to every command's Run
type Context struct {
	Client *backend.Client
	Out    io.Writer
}

func (c *Context) worklog() worklog.WorklogService {
	employeeRepo := backendapi.NewEmployeeRepository(c.Client)
	return worklogService.NewWorklogService(
		memory.NewSessionRepository(),
		employeeService.NewEmployeeService(employeeRepo),
		backendapi.NewDashboardRepository(c.Client),
		backendapi.NewTimesheetRepository(c.Client),
		backendapi.NewDailyLogRepository(c.Client),
		writerNotifier{out: c.Out},
		"",
	)
}

// writerNotifier prints toasts inline with command output
type writerNotifier struct {
	out io.Writer
}

func (n writerNotifier) Notify(_ context.Context, _ string, level notification.Level, message string) {
	fmt.Fprintf(n.out, "[%s] %s\n", level, message)
}

type WeekCmd struct {
	Email string `help:"Employee email." required:""`
	Week  string `help:"Week start (YYYY-MM-DD)." required:""`
}

func (c *WeekCmd) Run(ctx *Context) error {
	bg := context.Background()
	svc := ctx.worklog()

	started, err := svc.StartSession(bg, worklog.StartSessionRequest{Email: c.Email})
	if err != nil {
		return err
	}
	sess, err := svc.GetSession(bg, started.SessionID)
	if err != nil {
		return err
	}
	week, err := svc.LoadWeek(bg, sess, c.Week)
	if err != nil {
		return err
	}

	if week.Employee != nil {
		fmt.Fprintf(ctx.Out, "%s <%s>\n", week.Employee.EmployeeName, week.Employee.Email)
	}
	if len(week.Chain) > 1 {
		names := make([]string, 0, len(week.Chain))
		for _, e := range week.Chain {
			names = append(names, e.EmployeeName)
		}
		fmt.Fprintf(ctx.Out, "Reports: %s\n", strings.Join(names, " > "))
	}
	fmt.Fprintf(ctx.Out, "Week of %s\n\n", week.WeekStarting)

	writeWeek(ctx.Out, week)
	return nil
}

func writeWeek(out io.Writer, week worklog.WeekResponse) {
	fmt.Fprintf(out, "%-10s  %-9s  %-5s  %-5s  %-5s  %-5s  %6s  %s\n",
		"Date", "Day", "In", "Out", "In", "Out", "Total", "Description")
	for _, d := range week.Days {
		marker := " "
		if d.Kind == worklog.KindProvisional {
			marker = "*"
		}
		fmt.Fprintf(out, "%-10s  %-9s  %-5s  %-5s  %-5s  %-5s  %6s  %s%s\n",
			d.Date, d.Weekday, d.MorningIn, d.MorningOut, d.AfternoonIn, d.AfternoonOut, d.TotalHours, marker, d.Description)
	}
	fmt.Fprintf(out, "\nGrand total: %s   (* not saved yet)\n", week.GrandTotal)
}

type HoursCmd struct {
	MorningIn    string `arg:"" help:"Morning in (HH:MM)."`
	MorningOut   string `arg:"" help:"Morning out (HH:MM)."`
	AfternoonIn  string `arg:"" help:"Afternoon in (HH:MM)."`
	AfternoonOut string `arg:"" help:"Afternoon out (HH:MM)."`
}

func (c *HoursCmd) Run(ctx *Context) error {
	times := worklog.Times{
		MorningIn:    c.MorningIn,
		MorningOut:   c.MorningOut,
		AfternoonIn:  c.AfternoonIn,
		AfternoonOut: c.AfternoonOut,
	}
	result := worklogService.NewHoursCalculator().Calculate(times)

	fmt.Fprintf(ctx.Out, "Total: %s\n", result.Total)
	for _, w := range result.Warnings {
		fmt.Fprintf(ctx.Out, "Warning: %s\n", w.Message())
	}
	return nil
}

type HistoryCmd struct {
	LogID int64 `arg:"" name:"log-id" help:"Daily log id."`
}

func (c *HistoryCmd) Run(ctx *Context) error {
	items, err := ctx.worklog().ChangeHistory(context.Background(), c.LogID)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(ctx.Out, "No changes recorded")
		return nil
	}
	for _, item := range items {
		fmt.Fprintf(ctx.Out, "%s  %s\n", item.ChangedAt, item.NewDescription)
	}
	return nil
}
