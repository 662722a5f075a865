package worklog

import (
	"github.com/cmlabs-hris/timesheet-portal/internal/domain/employee"
	"github.com/cmlabs-hris/timesheet-portal/internal/pkg/validator"
)

type StartSessionRequest struct {
	Email string `json:"email" validate:"omitempty,email,max=100"`
}

func (r *StartSessionRequest) Validate() error {
	return validator.Struct(r)
}

// WeekRequest carries the week start. Its format is checked by the service so
// that a bad value clears the loaded week instead of leaving it stale.
type WeekRequest struct {
	WeekStarting string `json:"week_starting" validate:"required"`
}

func (r *WeekRequest) Validate() error {
	return validator.Struct(r)
}

type SetTimeRequest struct {
	Field string `json:"field" validate:"required,oneof=morning_in morning_out afternoon_in afternoon_out"`
	Value string `json:"value"`
}

func (r *SetTimeRequest) Validate() error {
	return validator.Struct(r)
}

type FocusTimeRequest struct {
	Field string `json:"field" validate:"required,oneof=morning_in morning_out afternoon_in afternoon_out"`
}

func (r *FocusTimeRequest) Validate() error {
	return validator.Struct(r)
}

type SetDescriptionRequest struct {
	Description string `json:"description" validate:"max=2000"`
}

func (r *SetDescriptionRequest) Validate() error {
	return validator.Struct(r)
}

type SessionResponse struct {
	SessionID string                      `json:"session_id"`
	Employee  *employee.EmployeeResponse  `json:"employee"`
	Chain     []employee.EmployeeResponse `json:"chain"`
}

type DayResponse struct {
	Date         string `json:"date"`
	Weekday      string `json:"weekday"`
	Kind         string `json:"kind"`
	ID           *int64 `json:"id"`
	Key          string `json:"key"`
	MorningIn    string `json:"morning_in"`
	MorningOut   string `json:"morning_out"`
	AfternoonIn  string `json:"afternoon_in"`
	AfternoonOut string `json:"afternoon_out"`
	Description  string `json:"description"`
	TotalHours   string `json:"total_hours"`
}

const (
	KindProvisional = "provisional"
	KindPersisted   = "persisted"
)

func NewDayResponse(r *DayRecord) DayResponse {
	resp := DayResponse{
		Date:         r.Date,
		Weekday:      r.Weekday,
		Kind:         KindProvisional,
		Key:          r.Identity.Key(),
		MorningIn:    r.Times.MorningIn,
		MorningOut:   r.Times.MorningOut,
		AfternoonIn:  r.Times.AfternoonIn,
		AfternoonOut: r.Times.AfternoonOut,
		Description:  r.Description,
		TotalHours:   r.TotalHours,
	}
	if id, ok := PersistedID(r.Identity); ok {
		resp.Kind = KindPersisted
		resp.ID = &id
	}
	return resp
}

type WeekResponse struct {
	SessionID    string                      `json:"session_id"`
	Employee     *employee.EmployeeResponse  `json:"employee"`
	Chain        []employee.EmployeeResponse `json:"chain"`
	WeekStarting string                      `json:"week_starting"`
	TimesheetID  *int64                      `json:"timesheet_id"`
	Days         []DayResponse               `json:"days"`
	GrandTotal   string                      `json:"grand_total"`
}

type WarningResponse struct {
	Pair    string `json:"pair"`
	In      string `json:"in"`
	Out     string `json:"out"`
	Message string `json:"message"`
}

func NewWarningResponses(ws []PairWarning) []WarningResponse {
	out := make([]WarningResponse, 0, len(ws))
	for _, w := range ws {
		out = append(out, WarningResponse{Pair: string(w.Pair), In: w.In, Out: w.Out, Message: w.Message()})
	}
	return out
}

type EditResponse struct {
	Day        DayResponse       `json:"day"`
	Warnings   []WarningResponse `json:"warnings"`
	GrandTotal string            `json:"grand_total"`
}

type SaveResponse struct {
	Week WeekResponse `json:"week"`
	// Created is true when a provisional day was created on the backend
	Created bool `json:"created"`
	// Adopted is true when a provisional day matched an existing backend row
	Adopted         bool     `json:"adopted"`
	HistoryRecorded bool     `json:"history_recorded"`
	Notices         []string `json:"notices"`
}

type ChangeHistoryItem struct {
	ID             int64  `json:"id"`
	DailyLogID     int64  `json:"daily_log_id"`
	NewDescription string `json:"new_description"`
	ChangedAt      string `json:"changed_at"`
}
