package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/cmlabs-hris/timesheet-portal/internal/domain/worklog"
)

type sessionRepositoryImpl struct {
	mu       sync.RWMutex
	sessions map[string]*worklog.Session
}

// NewSessionRepository keeps sessions in process memory. Sessions do not
// survive a restart; pages start a new one.
func NewSessionRepository() worklog.SessionRepository {
	return &sessionRepositoryImpl{sessions: make(map[string]*worklog.Session)}
}

// Create implements worklog.SessionRepository.
func (r *sessionRepositoryImpl) Create(ctx context.Context, s *worklog.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[s.ID]; exists {
		return fmt.Errorf("session %s already exists", s.ID)
	}
	r.sessions[s.ID] = s
	return nil
}

// Get implements worklog.SessionRepository.
func (r *sessionRepositoryImpl) Get(ctx context.Context, id string) (*worklog.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, worklog.ErrSessionNotFound
	}
	return s, nil
}

// Delete implements worklog.SessionRepository.
func (r *sessionRepositoryImpl) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return worklog.ErrSessionNotFound
	}
	delete(r.sessions, id)
	return nil
}

// Sweep implements worklog.SessionRepository. Sessions with a save in flight
// are kept until the next sweep.
func (r *sessionRepositoryImpl) Sweep(ctx context.Context, cutoff time.Time) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var evicted []string
	for id, s := range r.sessions {
		if s.Saving() || !s.LastSeen().Before(cutoff) {
			continue
		}
		delete(r.sessions, id)
		evicted = append(evicted, id)
	}
	return evicted, nil
}

// Count implements worklog.SessionRepository.
func (r *sessionRepositoryImpl) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions), nil
}
