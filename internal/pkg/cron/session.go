package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/timesheet-portal/internal/domain/worklog"
)

// SessionDropper closes whatever a session holds outside the repository,
// such as open event streams
type SessionDropper interface {
	Drop(sessionID string)
}

type SessionJobs struct {
	sessions worklog.SessionRepository
	dropper  SessionDropper
	ttl      time.Duration
	interval time.Duration
	now      func() time.Time
}

func NewSessionJobs(sessions worklog.SessionRepository, dropper SessionDropper, ttl, interval time.Duration) *SessionJobs {
	return &SessionJobs{
		sessions: sessions,
		dropper:  dropper,
		ttl:      ttl,
		interval: interval,
		now:      time.Now,
	}
}

func (j *SessionJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("sweep_idle_sessions", j.interval, j.SweepIdleSessions)
}

// SweepIdleSessions evicts sessions idle longer than the TTL and closes their streams
func (j *SessionJobs) SweepIdleSessions(ctx context.Context) error {
	evicted, err := j.sessions.Sweep(ctx, j.now().Add(-j.ttl))
	if err != nil {
		return fmt.Errorf("failed to sweep sessions: %w", err)
	}
	for _, id := range evicted {
		j.dropper.Drop(id)
	}
	active, err := j.sessions.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count sessions: %w", err)
	}
	if len(evicted) > 0 {
		slog.Info("Cron: Evicted idle sessions", "count", len(evicted), "active", active)
	} else {
		slog.Debug("Cron: No idle sessions", "active", active)
	}
	return nil
}
