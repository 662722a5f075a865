package notification

import (
	"context"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/timesheet-portal/internal/domain/notification"
	"github.com/cmlabs-hris/timesheet-portal/internal/pkg/sse"
)

const eventToast = "toast"

// Config holds notification service configuration
type Config struct {
	BufferSize int // default: 16
}

type service struct {
	hub    *sse.Hub
	config Config
	now    func() time.Time
}

// NewNotificationService publishes toasts through the hub
func NewNotificationService(hub *sse.Hub, cfg Config) notification.Service {
	if cfg.BufferSize == 0 {
		cfg.BufferSize = 16
	}
	return &service{hub: hub, config: cfg, now: time.Now}
}

// Notify implements notification.Notifier. Toasts for sessions with no open
// stream are dropped; operations also return their messages inline.
func (s *service) Notify(ctx context.Context, sessionID string, level notification.Level, message string) {
	if sessionID == "" {
		return
	}
	toast := notification.Toast{
		SessionID: sessionID,
		Level:     level,
		Message:   message,
		CreatedAt: s.now(),
	}
	delivered := s.hub.Publish(sessionID, sse.Event{SessionID: sessionID, Event: eventToast, Data: toast})
	slog.Debug("Toast published", "session_id", sessionID, "level", level, "delivered", delivered)
}

// Subscribe implements notification.Service.
func (s *service) Subscribe(ctx context.Context, sessionID string) (<-chan notification.Toast, func()) {
	events, cleanup := s.hub.Subscribe(sessionID)
	out := make(chan notification.Toast, s.config.BufferSize)

	go func() {
		defer close(out)
		for ev := range events {
			toast, ok := ev.Data.(notification.Toast)
			if !ok {
				continue
			}
			select {
			case out <- toast:
			default:
			}
		}
	}()

	return out, cleanup
}

// Drop implements notification.Service.
func (s *service) Drop(sessionID string) {
	s.hub.Drop(sessionID)
}
