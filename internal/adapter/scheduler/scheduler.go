// Package scheduler triggers scrape runs on a fixed interval.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"adwatch/internal/core/port"
)

// Scheduler calls RunOnce every interval. Ticks that arrive while a run is
// still going are dropped by the ticker, and manual runs started meanwhile
// are rejected by the run guard.
type Scheduler struct {
	runner   port.ScrapeUseCase
	interval time.Duration
	onStart  bool
	logger   *slog.Logger
}

func New(runner port.ScrapeUseCase, interval time.Duration, onStart bool, logger *slog.Logger) *Scheduler {
	return &Scheduler{runner: runner, interval: interval, onStart: onStart, logger: logger}
}

// Start launches the loop. The returned func stops it and waits for a run
// in progress to return.
func (s *Scheduler) Start(parent context.Context) (stop func()) {
	ctx, cancel := context.WithCancel(parent)
	done := make(chan struct{})

	go func() {
		defer close(done)
		if s.onStart {
			s.run(ctx)
		}
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.run(ctx)
			}
		}
	}()

	s.logger.Info("scheduler started", "interval", s.interval, "run_on_start", s.onStart)
	return func() {
		cancel()
		<-done
	}
}

func (s *Scheduler) run(ctx context.Context) {
	summary, err := s.runner.RunOnce(ctx)
	if err != nil {
		s.logger.Error("scheduled run failed", "error", err)
		return
	}
	s.logger.Debug("scheduled run done", "run_id", summary.RunID, "status", summary.Status)
}
