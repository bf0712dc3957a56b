package db

import (
	"context"
	"slices"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts the configured businesses, keyed by page id. Page ids that
// already exist are left untouched. It returns the number of inserted rows.
func Seed(ctx context.Context, db *pgxpool.Pool, businesses map[string]string) (int64, error) {
	pageIDs := make([]string, 0, len(businesses))
	for id := range businesses {
		pageIDs = append(pageIDs, id)
	}
	slices.Sort(pageIDs)

	var inserted int64
	for _, id := range pageIDs {
		name := strings.TrimSpace(businesses[id])
		tag, err := db.Exec(ctx, `INSERT INTO businesses (name, page_id)
VALUES ($1, $2) ON CONFLICT (page_id) DO NOTHING`, name, strings.TrimSpace(id))
		if err != nil {
			return inserted, err
		}
		inserted += tag.RowsAffected()
	}
	return inserted, nil
}
