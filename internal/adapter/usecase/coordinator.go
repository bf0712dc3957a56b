package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"adwatch/internal/core/domain"
	"adwatch/internal/core/port"
)

// Coordinator runs one scrape pass over every business under a RunGuard.
type Coordinator struct {
	guard      port.RunGuard
	businesses port.BusinessRepository
	source     port.SnapshotSource
	reconciler port.Reconciler
	observer   port.RunObserver
	now        func() time.Time
	logger     *slog.Logger
}

// NewCoordinator wires a coordinator. observer may be nil.
func NewCoordinator(
	guard port.RunGuard,
	businesses port.BusinessRepository,
	source port.SnapshotSource,
	reconciler port.Reconciler,
	observer port.RunObserver,
	logger *slog.Logger,
) *Coordinator {
	return &Coordinator{
		guard:      guard,
		businesses: businesses,
		source:     source,
		reconciler: reconciler,
		observer:   observer,
		now:        time.Now,
		logger:     logger,
	}
}

// RunOnce implements port.ScrapeUseCase.
func (c *Coordinator) RunOnce(ctx context.Context) (domain.RunSummary, error) {
	summary := domain.RunSummary{RunID: uuid.New(), StartedAt: c.now()}
	log := c.logger.With("run_id", summary.RunID)

	release, ok, err := c.guard.TryAcquire(ctx)
	if err != nil {
		c.finish(&summary, domain.RunFailed)
		return domain.RunSummary{}, fmt.Errorf("acquire run guard: %w", err)
	}
	if !ok {
		log.Info("scrape run skipped, another run is in progress")
		c.finish(&summary, domain.RunSkipped)
		return summary, nil
	}
	defer release()

	businesses, err := c.businesses.List(ctx)
	if err != nil {
		c.finish(&summary, domain.RunFailed)
		return domain.RunSummary{}, fmt.Errorf("list businesses: %w", err)
	}
	if len(businesses) == 0 {
		log.Info("scrape run has no businesses to process")
		c.finish(&summary, domain.RunNoBusinesses)
		return summary, nil
	}

	log.Info("scrape run started", "businesses", len(businesses))
	for _, b := range businesses {
		o := c.process(ctx, log, b)
		summary.Add(o)
	}
	c.finish(&summary, domain.RunCompleted)

	log.Info("scrape run finished",
		"created", summary.Created,
		"refreshed", summary.Refreshed,
		"deactivated", summary.Deactivated,
		"parse_failures", summary.ParseFailures,
		"failed_businesses", summary.Failed,
		"elapsed", summary.FinishedAt.Sub(summary.StartedAt),
	)
	return summary, nil
}

// process scrapes and reconciles one business. Panics are turned into a
// failed outcome so the remaining businesses still run.
func (c *Coordinator) process(ctx context.Context, log *slog.Logger, b domain.Business) (o domain.BusinessOutcome) {
	o.Business = b
	stage := domain.StageScrape
	defer func() {
		if r := recover(); r != nil {
			o = domain.BusinessOutcome{Business: b, Stage: stage, Error: fmt.Sprintf("panic: %v", r)}
			log.Error("business processing panicked", "business", b.PageID, "stage", stage, "panic", r)
		}
	}()

	snap, err := c.source.Snapshot(ctx, b)
	if err != nil {
		log.Error("scrape failed", "business", b.PageID, "error", err)
		o.Stage, o.Error = stage, err.Error()
		return o
	}

	stage = domain.StageReconcile
	res, err := c.reconciler.Reconcile(ctx, b, snap)
	if err != nil {
		log.Error("reconcile failed", "business", b.PageID, "error", err)
		o.Stage, o.Error = stage, err.Error()
		return o
	}
	if res.EmptySnapshot() {
		log.Warn("no ads observed", "business", b.PageID, "deactivated", res.Deactivated)
	}
	log.Debug("business reconciled",
		"business", b.PageID,
		"observed", res.Observed,
		"created", res.Created,
		"refreshed", res.Refreshed,
		"deactivated", res.Deactivated,
		"parse_failures", len(res.ParseFailures),
	)
	o.Result = &res
	return o
}

func (c *Coordinator) finish(s *domain.RunSummary, status domain.RunStatus) {
	s.Status = status
	s.FinishedAt = c.now()
	if c.observer != nil {
		c.observer.ObserveRun(*s)
	}
}
