package worklog

import (
	"context"
	"time"
)

// SessionRepository stores live page sessions
type SessionRepository interface {
	Create(ctx context.Context, s *Session) error
	// Get returns ErrSessionNotFound for unknown or evicted ids
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
	// Sweep evicts sessions not touched since cutoff and returns their ids
	Sweep(ctx context.Context, cutoff time.Time) ([]string, error)
	Count(ctx context.Context) (int, error)
}
