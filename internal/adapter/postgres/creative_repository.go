package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adwatch/internal/core/domain"
	"adwatch/internal/core/port"
)

const creativeColumns = `
    c.id,
    c.ad_id,
    c.business_id,
    b.name,
    COALESCE(c.image_url, ''),
    COALESCE(c.local_path, ''),
    c.phash,
    c.similarity_hint,
    c.start_date,
    c.end_date,
    c.duration_days,
    c.is_active,
    c.last_seen`

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// CreativeRepository implements port.CreativeRepository using pgxpool.
type CreativeRepository struct {
	pool *pgxpool.Pool
}

func NewCreativeRepository(pool *pgxpool.Pool) *CreativeRepository {
	return &CreativeRepository{pool: pool}
}

// InTx runs fn in a read committed transaction. The transaction is rolled
// back when fn fails or panics.
func (r *CreativeRepository) InTx(ctx context.Context, fn func(tx port.CreativeTx) error) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		if err = tx.Commit(ctx); err != nil {
			err = fmt.Errorf("commit: %w", err)
		}
	}()
	return fn(&creativeTx{tx: tx})
}

// List returns creatives with their business name, filtered and ordered
// as f asks.
func (r *CreativeRepository) List(ctx context.Context, f port.CreativeFilter) ([]domain.AdCreative, error) {
	query, args := listQuery(f)
	return collectCreatives(ctx, r.pool, query, args...)
}

func listQuery(f port.CreativeFilter) (string, []any) {
	var (
		where []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if f.BusinessID != nil {
		where = append(where, "c.business_id = "+arg(*f.BusinessID))
	}
	if f.ActiveOnly {
		where = append(where, "c.is_active")
	}
	if f.StartOn != nil {
		where = append(where, "c.start_date = "+arg(*f.StartOn))
	}
	if f.StartFrom != nil {
		where = append(where, "c.start_date >= "+arg(*f.StartFrom))
	}

	query := `SELECT` + creativeColumns + `
        FROM ad_creatives c
        JOIN businesses b ON b.id = c.business_id`
	if len(where) > 0 {
		query += "\n        WHERE " + strings.Join(where, " AND ")
	}
	switch f.Order {
	case port.OrderBusinessStartDesc:
		query += "\n        ORDER BY c.business_id, c.start_date DESC, c.id"
	default:
		query += "\n        ORDER BY c.start_date DESC, c.id"
	}
	return query, args
}

func (r *CreativeRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM ad_creatives`).Scan(&n)
	return n, err
}

// KnownAdIDs implements port.KnownCreatives.
func (r *CreativeRepository) KnownAdIDs(ctx context.Context, adIDs []string) (map[string]bool, error) {
	known := make(map[string]bool)
	if len(adIDs) == 0 {
		return known, nil
	}
	rows, err := r.pool.Query(ctx, `SELECT ad_id FROM ad_creatives WHERE ad_id = ANY($1)`, adIDs)
	if err != nil {
		return nil, err
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		known[id] = true
	}
	return known, nil
}

type creativeTx struct {
	tx pgx.Tx
}

// FindByAdIDs locks the returned rows until the transaction ends.
func (t *creativeTx) FindByAdIDs(ctx context.Context, adIDs []string) ([]domain.AdCreative, error) {
	if len(adIDs) == 0 {
		return nil, nil
	}
	query := `SELECT` + creativeColumns + `
        FROM ad_creatives c
        JOIN businesses b ON b.id = c.business_id
        WHERE c.ad_id = ANY($1)
        FOR UPDATE OF c`
	return collectCreatives(ctx, t.tx, query, adIDs)
}

func (t *creativeTx) Refresh(ctx context.Context, id int64, lastSeen time.Time, durationDays int) error {
	_, err := t.tx.Exec(ctx, `UPDATE ad_creatives
        SET is_active = TRUE, last_seen = $2, duration_days = $3
        WHERE id = $1`, id, lastSeen, durationDays)
	return err
}

func (t *creativeTx) Create(ctx context.Context, c *domain.AdCreative) error {
	var phash *string
	if c.Fingerprint != nil {
		s := c.Fingerprint.String()
		phash = &s
	}
	return t.tx.QueryRow(ctx, `INSERT INTO ad_creatives
        (ad_id, business_id, image_url, local_path, phash, similarity_hint,
         start_date, end_date, duration_days, is_active, last_seen)
        VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5, $6, $7, $8, $9, $10, $11)
        RETURNING id`,
		c.AdID, c.BusinessID, c.ImageURL, c.LocalPath, phash, c.SimilarityHint,
		c.StartDate, c.EndDate, c.DurationDays, c.Active, c.LastSeen,
	).Scan(&c.ID)
}

func (t *creativeTx) ListActiveByBusiness(ctx context.Context, businessID int64) ([]domain.AdCreative, error) {
	query := `SELECT` + creativeColumns + `
        FROM ad_creatives c
        JOIN businesses b ON b.id = c.business_id
        WHERE c.business_id = $1 AND c.is_active
        ORDER BY c.id`
	return collectCreatives(ctx, t.tx, query, businessID)
}

// deactivateQuery keeps an end_date that is already set.
const deactivateQuery = `UPDATE ad_creatives
        SET is_active = FALSE, end_date = COALESCE(end_date, $2)
        WHERE id = ANY($1)`

func (t *creativeTx) Deactivate(ctx context.Context, ids []int64, endDate time.Time) error {
	_, err := t.tx.Exec(ctx, deactivateQuery, ids, endDate)
	return err
}

func collectCreatives(ctx context.Context, q querier, query string, args ...any) ([]domain.AdCreative, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.AdCreative, error) {
		var (
			c     domain.AdCreative
			phash *string
		)
		err := row.Scan(
			&c.ID,
			&c.AdID,
			&c.BusinessID,
			&c.BusinessName,
			&c.ImageURL,
			&c.LocalPath,
			&phash,
			&c.SimilarityHint,
			&c.StartDate,
			&c.EndDate,
			&c.DurationDays,
			&c.Active,
			&c.LastSeen,
		)
		if err != nil {
			return c, err
		}
		if phash != nil {
			f, err := domain.ParseFingerprint(*phash)
			if err != nil {
				return c, fmt.Errorf("creative %s: %w", c.AdID, err)
			}
			c.Fingerprint = &f
		}
		return c, nil
	})
}
