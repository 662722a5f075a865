package timesheet

// Timesheet anchors one employee week. WeekStarting is always ISO YYYY-MM-DD
// once it leaves the repository layer.
type Timesheet struct {
	ID           int64
	EmployeeID   int64
	WeekStarting string
}

// DailyLog is one persisted day row. LogDate is ISO and times are HH:MM or "".
type DailyLog struct {
	ID           int64
	TimesheetID  int64
	LogDate      string
	DayOfWeek    string
	MorningIn    string
	MorningOut   string
	AfternoonIn  string
	AfternoonOut string
	TotalHours   string
	Description  string
}

// Change is one append-only description history entry
type Change struct {
	ID             int64
	DailyLogID     int64
	NewDescription string
	ChangedAt      string
}

// LogFields are the writable columns of a daily log
type LogFields struct {
	LogDate      string
	MorningIn    string
	MorningOut   string
	AfternoonIn  string
	AfternoonOut string
	Description  string
	TotalHours   string
}

// BulkEntry is one day of a whole-week upsert. ID is nil for days never saved.
type BulkEntry struct {
	ID           *int64
	EmployeeID   int64
	WeekStarting string
	LogFields
}
