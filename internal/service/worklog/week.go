package worklog

import (
	"github.com/cmlabs-hris/timesheet-portal/internal/domain/worklog"
	"github.com/cmlabs-hris/timesheet-portal/internal/pkg/validator"
	"github.com/cmlabs-hris/timesheet-portal/internal/pkg/utils"
)

// GenerateWeek returns the 7 consecutive days starting at start. Anything that
// is not a real YYYY-MM-DD date yields nil.
func GenerateWeek(start string) []worklog.WeekDay {
	t, ok := validator.IsValidDate(start)
	if !ok {
		return nil
	}
	days := make([]worklog.WeekDay, 0, 7)
	for i := 0; i < 7; i++ {
		d := t.AddDate(0, 0, i)
		days = append(days, worklog.WeekDay{
			Date:    d.Format(utils.ISODate),
			Weekday: d.Weekday().String(),
		})
	}
	return days
}
