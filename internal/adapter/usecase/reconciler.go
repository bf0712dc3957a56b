package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"adwatch/internal/core/domain"
	"adwatch/internal/core/port"
)

// Reconciler applies snapshots to stored creatives. Each call runs in its
// own transaction, so a failing business leaves no partial changes.
type Reconciler struct {
	creatives port.CreativeRepository
	loc       *time.Location
	now       func() time.Time
	logger    *slog.Logger
}

// NewReconciler creates a reconciler. loc decides which calendar day counts
// as today.
func NewReconciler(creatives port.CreativeRepository, loc *time.Location, logger *slog.Logger) *Reconciler {
	if loc == nil {
		loc = time.UTC
	}
	return &Reconciler{creatives: creatives, loc: loc, now: time.Now, logger: logger}
}

// Reconcile refreshes creatives seen again, creates the new ones and
// deactivates the active creatives of b that are missing from snap.
func (r *Reconciler) Reconcile(ctx context.Context, b domain.Business, snap domain.Snapshot) (domain.ReconciliationResult, error) {
	today := domain.DayOf(r.now(), r.loc)
	observed := snap.Index()
	var res domain.ReconciliationResult

	err := r.creatives.InTx(ctx, func(tx port.CreativeTx) error {
		res = domain.ReconciliationResult{BusinessID: b.ID, Observed: len(observed)}

		ids := snap.AdIDs()

		stored, err := tx.FindByAdIDs(ctx, ids)
		if err != nil {
			return fmt.Errorf("find stored creatives: %w", err)
		}
		known := make(map[string]domain.AdCreative, len(stored))
		for _, c := range stored {
			known[c.AdID] = c
		}

		for _, id := range ids {
			if c, ok := known[id]; ok {
				if err = tx.Refresh(ctx, c.ID, today, domain.DurationDays(c.StartDate, today)); err != nil {
					return fmt.Errorf("refresh creative %s: %w", id, err)
				}
				res.Refreshed++
				continue
			}

			o := observed[id]
			start, perr := domain.ParseStartDate(o.RawStartText)
			if perr != nil {
				r.logger.Warn("skipping ad with unreadable start date",
					"business", b.PageID, "ad_id", id, "error", perr)
				res.ParseFailures = append(res.ParseFailures, domain.ParseFailure{AdID: id, Reason: perr.Error()})
				continue
			}
			c := &domain.AdCreative{
				AdID:           id,
				BusinessID:     b.ID,
				ImageURL:       o.ImageURL,
				LocalPath:      o.LocalPath,
				Fingerprint:    o.Fingerprint,
				SimilarityHint: o.SimilarityHint,
				StartDate:      start,
				DurationDays:   domain.DurationDays(start, today),
				Active:         true,
				LastSeen:       today,
			}
			if err = tx.Create(ctx, c); err != nil {
				return fmt.Errorf("create creative %s: %w", id, err)
			}
			res.Created++
		}

		active, err := tx.ListActiveByBusiness(ctx, b.ID)
		if err != nil {
			return fmt.Errorf("list active creatives: %w", err)
		}
		var gone []int64
		for _, c := range active {
			if _, ok := observed[c.AdID]; !ok {
				gone = append(gone, c.ID)
			}
		}
		if len(gone) > 0 {
			if err = tx.Deactivate(ctx, gone, today); err != nil {
				return fmt.Errorf("deactivate creatives: %w", err)
			}
		}
		res.Deactivated = len(gone)
		return nil
	})
	if err != nil {
		return domain.ReconciliationResult{BusinessID: b.ID, Observed: len(observed)}, err
	}
	return res, nil
}

