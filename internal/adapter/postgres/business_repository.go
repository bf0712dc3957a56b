package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"adwatch/internal/core/domain"
	"adwatch/internal/core/port"
)

const uniqueViolation = "23505"

// BusinessRepository implements port.BusinessRepository using pgxpool.
type BusinessRepository struct {
	pool *pgxpool.Pool
}

func NewBusinessRepository(pool *pgxpool.Pool) *BusinessRepository {
	return &BusinessRepository{pool: pool}
}

func (r *BusinessRepository) List(ctx context.Context) ([]domain.Business, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, page_id FROM businesses ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Business, error) {
		var b domain.Business
		err := row.Scan(&b.ID, &b.Name, &b.PageID)
		return b, err
	})
}

func (r *BusinessRepository) Get(ctx context.Context, id int64) (domain.Business, error) {
	var b domain.Business
	err := r.pool.QueryRow(ctx, `SELECT id, name, page_id FROM businesses WHERE id = $1`, id).
		Scan(&b.ID, &b.Name, &b.PageID)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Business{}, port.ErrNotFound
	}
	return b, err
}

// Create inserts b and sets its id.
func (r *BusinessRepository) Create(ctx context.Context, b *domain.Business) error {
	err := r.pool.QueryRow(ctx, `INSERT INTO businesses (name, page_id) VALUES ($1, $2) RETURNING id`, b.Name, b.PageID).
		Scan(&b.ID)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return port.ErrBusinessExists
	}
	return err
}

// DeleteByPageID removes the business. Its creatives go with it through
// the ON DELETE CASCADE foreign key.
func (r *BusinessRepository) DeleteByPageID(ctx context.Context, pageID string) (domain.Business, error) {
	var b domain.Business
	err := r.pool.QueryRow(ctx, `DELETE FROM businesses WHERE page_id = $1 RETURNING id, name, page_id`, pageID).
		Scan(&b.ID, &b.Name, &b.PageID)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Business{}, port.ErrNotFound
	}
	return b, err
}
