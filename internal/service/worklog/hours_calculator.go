package worklog

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/cmlabs-hris/timesheet-portal/internal/domain/worklog"
	"github.com/cmlabs-hris/timesheet-portal/internal/pkg/validator"
)

// HoursResult is the outcome of one calculation
type HoursResult struct {
	Minutes  int
	Total    string
	Warnings []worklog.PairWarning
}

type HoursCalculator struct {
}

func NewHoursCalculator() *HoursCalculator {
	return &HoursCalculator{}
}

// Calculate totals the morning and afternoon pairs of a day. Unparseable
// values count as absent. A pair whose out is not after its in contributes
// zero and produces a warning.
func (c *HoursCalculator) Calculate(t worklog.Times) HoursResult {
	var res HoursResult

	minutes, warn := c.pairMinutes(worklog.PairMorning, t.MorningIn, t.MorningOut)
	res.Minutes += minutes
	if warn != nil {
		res.Warnings = append(res.Warnings, *warn)
	}

	minutes, warn = c.pairMinutes(worklog.PairAfternoon, t.AfternoonIn, t.AfternoonOut)
	res.Minutes += minutes
	if warn != nil {
		res.Warnings = append(res.Warnings, *warn)
	}

	if res.Minutes < 0 {
		slog.Error("negative worked minutes clamped to zero", "minutes", res.Minutes)
		res.Minutes = 0
	}
	res.Total = FormatMinutes(res.Minutes)
	return res
}

func (c *HoursCalculator) pairMinutes(pair worklog.Pair, in, out string) (int, *worklog.PairWarning) {
	inMin, okIn := parseClock(in)
	outMin, okOut := parseClock(out)
	if !okIn || !okOut {
		return 0, nil
	}
	if outMin <= inMin {
		return 0, &worklog.PairWarning{Pair: pair, In: in, Out: out}
	}
	return outMin - inMin, nil
}

// Apply recomputes a record's total in place and returns any pair warnings
func (c *HoursCalculator) Apply(r *worklog.DayRecord) []worklog.PairWarning {
	res := c.Calculate(r.Times)
	r.TotalHours = res.Total
	return res.Warnings
}

// parseClock reads HH:MM into minutes since midnight
func parseClock(s string) (int, bool) {
	if !validator.IsValidClock(s) {
		return 0, false
	}
	h, _ := strconv.Atoi(s[:2])
	m, _ := strconv.Atoi(s[3:])
	return h*60 + m, true
}

// FormatMinutes renders minutes as H:MM with unpadded hours
func FormatMinutes(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%d:%02d", minutes/60, minutes%60)
}

// ParseTotal reads an H:MM total back into minutes. Malformed totals count as zero.
func ParseTotal(total string) int {
	h, m, ok := strings.Cut(total, ":")
	if !ok {
		return 0
	}
	hours, err := strconv.Atoi(h)
	if err != nil || hours < 0 {
		return 0
	}
	mins, err := strconv.Atoi(m)
	if err != nil || mins < 0 || mins > 59 || len(m) != 2 {
		return 0
	}
	return hours*60 + mins
}

// SumTotals adds H:MM totals into a grand total
func SumTotals(totals ...string) string {
	sum := 0
	for _, t := range totals {
		sum += ParseTotal(t)
	}
	return FormatMinutes(sum)
}
