package backendapi

import (
	"github.com/cmlabs-hris/timesheet-portal/internal/domain/employee"
	"github.com/cmlabs-hris/timesheet-portal/internal/domain/timesheet"
	"github.com/cmlabs-hris/timesheet-portal/internal/pkg/backend"
	"github.com/cmlabs-hris/timesheet-portal/internal/pkg/utils"
)

func toEmployee(e backend.Employee) employee.Employee {
	return employee.Employee{
		ID:        e.ID,
		Name:      e.EmployeeName,
		Email:     e.Email,
		ReportsTo: e.ReportsTo,
	}
}

func toNode(h backend.HierarchyNode) *employee.Node {
	children := make([]*employee.Node, 0, len(h.Subordinates))
	for _, s := range h.Subordinates {
		children = append(children, toNode(s))
	}
	return employee.NewNode(employee.Employee{
		ID:        h.ID,
		Name:      h.EmployeeName,
		Email:     h.Email,
		ReportsTo: h.ReportsTo,
	}, children...)
}

func toNodes(hs []backend.HierarchyNode) []*employee.Node {
	nodes := make([]*employee.Node, 0, len(hs))
	for _, h := range hs {
		nodes = append(nodes, toNode(h))
	}
	return nodes
}

func toTimesheet(t backend.Timesheet) timesheet.Timesheet {
	return timesheet.Timesheet{
		ID:           t.ID,
		EmployeeID:   t.EmployeeID,
		WeekStarting: utils.NormalizeDate(t.WeekStarting),
	}
}

func toTimesheets(ts []backend.Timesheet) []timesheet.Timesheet {
	out := make([]timesheet.Timesheet, 0, len(ts))
	for _, t := range ts {
		out = append(out, toTimesheet(t))
	}
	return out
}

// toDailyLog normalizes dates to ISO and times to HH:MM. A date the backend
// sent in an unknown shape is kept verbatim so callers can report it.
func toDailyLog(l backend.DailyLog) timesheet.DailyLog {
	date := utils.NormalizeDate(l.LogDate)
	if date == "" {
		date = l.LogDate
	}
	return timesheet.DailyLog{
		ID:           l.ID,
		TimesheetID:  l.TimesheetID,
		LogDate:      date,
		DayOfWeek:    l.DayOfWeek,
		MorningIn:    utils.NormalizeTime(l.MorningIn),
		MorningOut:   utils.NormalizeTime(l.MorningOut),
		AfternoonIn:  utils.NormalizeTime(l.AfternoonIn),
		AfternoonOut: utils.NormalizeTime(l.AfternoonOut),
		TotalHours:   l.TotalHours,
		Description:  l.Description,
	}
}

func toDailyLogs(ls []backend.DailyLog) []timesheet.DailyLog {
	out := make([]timesheet.DailyLog, 0, len(ls))
	for _, l := range ls {
		out = append(out, toDailyLog(l))
	}
	return out
}

func toChange(c backend.DailyLogChange) timesheet.Change {
	return timesheet.Change{
		ID:             c.ID,
		DailyLogID:     c.DailyLogID,
		NewDescription: c.NewDescription,
		ChangedAt:      c.ChangedAt,
	}
}

// nullable maps "" to a JSON null
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
