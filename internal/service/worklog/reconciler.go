package worklog

import (
	"log/slog"

	"github.com/cmlabs-hris/timesheet-portal/internal/domain/timesheet"
	"github.com/cmlabs-hris/timesheet-portal/internal/domain/worklog"
	"github.com/google/uuid"
)

// Reconciler merges a generated week with the rows the backend returned
type Reconciler struct {
	calc     *HoursCalculator
	newToken func() string
}

func NewReconciler(calc *HoursCalculator) *Reconciler {
	return &Reconciler{calc: calc, newToken: uuid.NewString}
}

// Reconcile returns exactly one record per generated day. Days with a row are
// persisted; the rest get a fresh provisional identity. Rows outside the week
// are ignored and, for duplicate dates, the last row wins.
func (r *Reconciler) Reconcile(days []worklog.WeekDay, logs []timesheet.DailyLog) map[string]*worklog.DayRecord {
	byDate := make(map[string]timesheet.DailyLog, len(logs))
	for _, l := range logs {
		if l.LogDate == "" {
			continue
		}
		if prev, dup := byDate[l.LogDate]; dup {
			slog.Warn("duplicate daily log for date, keeping the later row",
				"date", l.LogDate, "dropped_id", prev.ID, "kept_id", l.ID)
		}
		byDate[l.LogDate] = l
	}

	records := make(map[string]*worklog.DayRecord, len(days))
	for _, d := range days {
		rec := &worklog.DayRecord{Date: d.Date, Weekday: d.Weekday}
		if l, ok := byDate[d.Date]; ok {
			rec.Identity = worklog.Persisted{ID: l.ID}
			rec.Times = worklog.Times{
				MorningIn:    l.MorningIn,
				MorningOut:   l.MorningOut,
				AfternoonIn:  l.AfternoonIn,
				AfternoonOut: l.AfternoonOut,
			}
			rec.Description = l.Description
			rec.PersistedDescription = l.Description
		} else {
			rec.Identity = worklog.Provisional{Token: r.newToken() + "-" + d.Date}
		}
		r.calc.Apply(rec)
		records[d.Date] = rec
	}
	return records
}
