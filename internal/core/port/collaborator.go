package port

import (
	"context"

	"adwatch/internal/core/domain"
)

// SnapshotSource observes the ads a business is currently running.
type SnapshotSource interface {
	Snapshot(ctx context.Context, b domain.Business) (domain.Snapshot, error)
}

// KnownCreatives reports which ad ids are already stored. A snapshot source
// uses it to skip image work for ads whose image data is never updated.
type KnownCreatives interface {
	KnownAdIDs(ctx context.Context, adIDs []string) (map[string]bool, error)
}

// Reconciler applies one business's snapshot to stored state.
type Reconciler interface {
	Reconcile(ctx context.Context, b domain.Business, snap domain.Snapshot) (domain.ReconciliationResult, error)
}

// RunGuard lets at most one scrape run proceed at a time. TryAcquire never
// waits: when another run holds the guard it returns ok == false. The
// release func is safe to call more than once.
type RunGuard interface {
	TryAcquire(ctx context.Context) (release func(), ok bool, err error)
}

// RunObserver is told about every finished or skipped run.
type RunObserver interface {
	ObserveRun(s domain.RunSummary)
}
