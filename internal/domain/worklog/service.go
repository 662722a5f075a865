package worklog

import "context"

// WorklogService drives the employee week page. Every operation that takes a
// Session serializes on it; saves additionally go through its save gate.
type WorklogService interface {
	StartSession(ctx context.Context, req StartSessionRequest) (SessionResponse, error)
	GetSession(ctx context.Context, id string) (*Session, error)
	EndSession(ctx context.Context, id string) error

	// LoadWeek rebuilds the week from the dashboard endpoint
	LoadWeek(ctx context.Context, s *Session, weekStarting string) (WeekResponse, error)
	// OpenWeek finds or creates the timesheet for the week, then rebuilds it
	OpenWeek(ctx context.Context, s *Session, weekStarting string) (WeekResponse, error)

	SetTime(ctx context.Context, s *Session, date string, req SetTimeRequest) (EditResponse, error)
	FocusTime(ctx context.Context, s *Session, date string, req FocusTimeRequest) (EditResponse, error)
	SetDescription(ctx context.Context, s *Session, date string, req SetDescriptionRequest) (EditResponse, error)

	SaveDay(ctx context.Context, s *Session, date string) (SaveResponse, error)
	SaveWeek(ctx context.Context, s *Session) (SaveResponse, error)

	ChangeHistory(ctx context.Context, dailyLogID int64) ([]ChangeHistoryItem, error)
	View(s *Session) WeekResponse
}
