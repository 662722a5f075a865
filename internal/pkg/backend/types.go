package backend

// Employee as returned by the employee endpoints
type Employee struct {
	ID           int64  `json:"id"`
	EmployeeName string `json:"employee_name"`
	Email        string `json:"email"`
	ReportsTo    *int64 `json:"reports_to"`
}

// HierarchyNode is an employee with optional nested subordinates
type HierarchyNode struct {
	ID           int64           `json:"id"`
	EmployeeName string          `json:"employee_name"`
	Email        string          `json:"email"`
	ReportsTo    *int64          `json:"reports_to"`
	Subordinates []HierarchyNode `json:"subordinates,omitempty"`
}

// Timesheet anchors one employee week
type Timesheet struct {
	ID           int64  `json:"id"`
	EmployeeID   int64  `json:"employee_id"`
	WeekStarting string `json:"week_starting"`
}

// DailyLog is a persisted row. Null columns decode to "".
type DailyLog struct {
	ID           int64  `json:"id"`
	TimesheetID  int64  `json:"timesheet_id"`
	LogDate      string `json:"log_date"`
	DayOfWeek    string `json:"day_of_week"`
	MorningIn    string `json:"morning_in"`
	MorningOut   string `json:"morning_out"`
	AfternoonIn  string `json:"afternoon_in"`
	AfternoonOut string `json:"afternoon_out"`
	TotalHours   string `json:"total_hours"`
	Description  string `json:"description"`
}

// DailyLogChange is one append-only description history entry
type DailyLogChange struct {
	ID             int64  `json:"id"`
	DailyLogID     int64  `json:"daily_log_id"`
	NewDescription string `json:"new_description"`
	ChangedAt      string `json:"changed_at"`
}

// Dashboard is the combined employee/week payload
type Dashboard struct {
	Employee         Employee        `json:"employee"`
	ManagerHierarchy []HierarchyNode `json:"manager_hierarchy"`
	Timesheets       []Timesheet     `json:"timesheets"`
	DailyLogs        []DailyLog      `json:"daily_logs"`
}

// Profile is an employee with their manager chain, nearest manager first
type Profile struct {
	Employee         Employee        `json:"employee"`
	ManagerHierarchy []HierarchyNode `json:"manager_hierarchy"`
}

// CreateEmployeeRequest is the POST /api/employees body
type CreateEmployeeRequest struct {
	EmployeeName string `json:"employee_name" validate:"required,max=100"`
	Email        string `json:"email" validate:"required,email,max=100"`
	ReportsTo    *int64 `json:"reports_to,omitempty" validate:"omitempty,gt=0"`
}

// CreateTimesheetRequest is the POST /api/timesheets body; WeekStarting is YYYY-MM-DD
type CreateTimesheetRequest struct {
	EmployeeName string `json:"employee_name"`
	WeekStarting string `json:"week_starting"`
}

// CreateDailyLogRequest is the POST /api/daily-logs body; LogDate is YYYY-MM-DD.
// Absent times are sent as null.
type CreateDailyLogRequest struct {
	TimesheetID  int64   `json:"timesheet_id"`
	LogDate      string  `json:"log_date"`
	MorningIn    *string `json:"morning_in"`
	MorningOut   *string `json:"morning_out"`
	AfternoonIn  *string `json:"afternoon_in"`
	AfternoonOut *string `json:"afternoon_out"`
	Description  string  `json:"description"`
	TotalHours   string  `json:"total_hours"`
}

// UpdateDailyLogRequest is the PUT /api/daily-logs/{id} body
type UpdateDailyLogRequest struct {
	LogDate      string  `json:"log_date"`
	MorningIn    *string `json:"morning_in"`
	MorningOut   *string `json:"morning_out"`
	AfternoonIn  *string `json:"afternoon_in"`
	AfternoonOut *string `json:"afternoon_out"`
	Description  string  `json:"description"`
	TotalHours   string  `json:"total_hours"`
}

// BulkLog is one element of the POST /api/daily-logs/save array.
// WeekStarting and Date are MM/DD/YYYY.
type BulkLog struct {
	ID           *int64 `json:"id,omitempty"`
	EmployeeID   int64  `json:"employee_id"`
	WeekStarting string `json:"week_starting"`
	Date         string `json:"date"`
	TimeInAM     string `json:"time_in_am"`
	TimeOutAM    string `json:"time_out_am"`
	TimeInPM     string `json:"time_in_pm"`
	TimeOutPM    string `json:"time_out_pm"`
	Description  string `json:"description"`
	TotalHours   string `json:"total_hours"`
}

// CreateChangeRequest is the POST /api/daily-log-changes body
type CreateChangeRequest struct {
	DailyLogID     int64  `json:"daily_log_id"`
	NewDescription string `json:"new_description"`
}
