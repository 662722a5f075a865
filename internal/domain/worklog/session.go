package worklog

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cmlabs-hris/timesheet-portal/internal/domain/employee"
)

// Session is the state one browser page holds while editing a week.
// Callers hold Lock while reading or mutating the exported fields.
type Session struct {
	ID string

	mu       sync.Mutex
	saving   atomic.Bool
	lastSeen atomic.Int64

	Employee     employee.Employee
	Managers     []*employee.Node
	Expanded     employee.ExpandSet
	WeekStarting string
	Days         []WeekDay
	TimesheetID  int64
	Records      map[string]*DayRecord
}

func NewSession(id string, now time.Time) *Session {
	s := &Session{ID: id, Records: map[string]*DayRecord{}}
	s.Touch(now)
	return s
}

func (s *Session) Lock()   { s.mu.Lock() }
func (s *Session) Unlock() { s.mu.Unlock() }

// TryBeginSave claims the session's save gate. It returns false when another
// save is already running.
func (s *Session) TryBeginSave() bool {
	return s.saving.CompareAndSwap(false, true)
}

func (s *Session) EndSave() {
	s.saving.Store(false)
}

func (s *Session) Saving() bool {
	return s.saving.Load()
}

func (s *Session) Touch(now time.Time) {
	s.lastSeen.Store(now.UnixNano())
}

func (s *Session) LastSeen() time.Time {
	return time.Unix(0, s.lastSeen.Load())
}

// Chain returns managers from the top down followed by the employee
func (s *Session) Chain() []employee.Employee {
	if s.Employee.ID == 0 {
		return nil
	}
	return employee.Profile{Employee: s.Employee, Managers: s.Managers}.Chain()
}

// HasWeek reports whether a week is loaded
func (s *Session) HasWeek() bool {
	return len(s.Days) == 7
}

// ClearWeek drops the loaded week, leaving the session in the empty state
func (s *Session) ClearWeek() {
	s.WeekStarting = ""
	s.Days = nil
	s.TimesheetID = 0
	s.Records = map[string]*DayRecord{}
}

// OrderedRecords returns the records in date order
func (s *Session) OrderedRecords() []*DayRecord {
	out := make([]*DayRecord, 0, len(s.Records))
	for _, r := range s.Records {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}
