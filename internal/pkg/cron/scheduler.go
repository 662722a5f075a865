package cron

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Job is a function run on a fixed interval
type Job struct {
	Name     string
	Interval time.Duration
	Fn       func(ctx context.Context) error
}

// Scheduler runs registered jobs until stopped
type Scheduler struct {
	mu       sync.Mutex
	jobs     []Job
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	started  bool
	stopOnce sync.Once
}

func NewScheduler() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{ctx: ctx, cancel: cancel}
}

// AddJob registers a job. Jobs added after Start are ignored.
func (s *Scheduler) AddJob(name string, interval time.Duration, fn func(ctx context.Context) error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		slog.Warn("Cron job registered after start, ignoring", "name", name)
		return
	}
	s.jobs = append(s.jobs, Job{Name: name, Interval: interval, Fn: fn})
	slog.Info("Cron job registered", "name", name, "interval", interval)
}

// Start launches one goroutine per job. Each job first fires after one interval.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return
	}
	s.started = true
	for _, job := range s.jobs {
		s.wg.Add(1)
		go s.runJob(job)
	}
	slog.Info("Cron scheduler started", "job_count", len(s.jobs))
}

// Stop cancels all jobs and waits for running ones to return
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		slog.Info("Stopping cron scheduler...")
		s.cancel()
		s.wg.Wait()
		slog.Info("Cron scheduler stopped")
	})
}

func (s *Scheduler) runJob(job Job) {
	defer s.wg.Done()

	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			slog.Debug("Cron job stopping", "name", job.Name)
			return
		case <-ticker.C:
			s.executeJob(s.ctx, job)
		}
	}
}

func (s *Scheduler) executeJob(ctx context.Context, job Job) {
	start := time.Now()
	if err := job.Fn(ctx); err != nil {
		slog.Error("Cron job failed", "name", job.Name, "error", err, "duration", time.Since(start))
		return
	}
	slog.Debug("Cron job completed", "name", job.Name, "duration", time.Since(start))
}

// runOnce runs every job once on the caller's goroutine
func (s *Scheduler) runOnce(ctx context.Context) {
	s.mu.Lock()
	jobs := append([]Job(nil), s.jobs...)
	s.mu.Unlock()

	for _, job := range jobs {
		s.executeJob(ctx, job)
	}
}
