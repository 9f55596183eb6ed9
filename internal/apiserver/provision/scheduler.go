package provision

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Scheduler fires the provisioner once a day at a configured wall-clock time.
type Scheduler struct {
	provisioner *Provisioner
	clock       Clock
	loc         *time.Location
	runAt       string
	logger      *zap.Logger

	mu      sync.Mutex
	cancel  context.CancelFunc
	running bool
}

// NewScheduler creates a scheduler that runs at runAt ("HH:MM") in loc.
func NewScheduler(p *Provisioner, clock Clock, loc *time.Location, runAt string, logger *zap.Logger) (*Scheduler, error) {
	if _, err := time.Parse("15:04", runAt); err != nil {
		return nil, fmt.Errorf("invalid run_at %q: %w", runAt, err)
	}
	return &Scheduler{
		provisioner: p,
		clock:       clock,
		loc:         loc,
		runAt:       runAt,
		logger:      logger.Named("provision-scheduler"),
	}, nil
}

// Start launches the scheduling loop. Calling Start on a running scheduler
// is a no-op.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.running = true
	go s.loop(ctx)
	s.logger.Info("scheduler started", zap.String("run_at", s.runAt), zap.String("timezone", s.loc.String()))
}

// Stop cancels the scheduling loop.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}
	s.cancel()
	s.running = false
	s.logger.Info("scheduler stopped")
}

func (s *Scheduler) loop(ctx context.Context) {
	for {
		wait := s.untilNextRun()
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
			if err := s.provisioner.Run(ctx); err != nil {
				s.logger.Error("scheduled provision run failed", zap.Error(err))
			}
		}
	}
}

// untilNextRun computes the duration until the next occurrence of runAt.
func (s *Scheduler) untilNextRun() time.Duration {
	at, _ := time.Parse("15:04", s.runAt)
	now := s.clock.Now().In(s.loc)
	next := time.Date(now.Year(), now.Month(), now.Day(), at.Hour(), at.Minute(), 0, 0, s.loc)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(now)
}
