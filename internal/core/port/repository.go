package port

import (
	"context"
	"errors"
	"time"

	"adwatch/internal/core/domain"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrBusinessExists = errors.New("business already exists")
)

// BusinessRepository stores monitored businesses.
type BusinessRepository interface {
	// List returns all businesses ordered by id.
	List(ctx context.Context) ([]domain.Business, error)
	// Get returns a business by internal id or ErrNotFound.
	Get(ctx context.Context, id int64) (domain.Business, error)
	// Create inserts a business and fills its id. It returns
	// ErrBusinessExists when the page id is already monitored.
	Create(ctx context.Context, b *domain.Business) error
	// DeleteByPageID removes a business and its creatives and returns the
	// removed business, or ErrNotFound.
	DeleteByPageID(ctx context.Context, pageID string) (domain.Business, error)
}

// CreativeOrder selects the sort order of CreativeRepository.List.
type CreativeOrder int

const (
	// OrderStartDesc sorts by start date, newest first.
	OrderStartDesc CreativeOrder = iota
	// OrderBusinessStartDesc sorts by business id, then start date newest
	// first.
	OrderBusinessStartDesc
)

// CreativeFilter narrows CreativeRepository.List. Zero values mean no
// constraint.
type CreativeFilter struct {
	BusinessID *int64
	ActiveOnly bool
	StartOn    *time.Time
	StartFrom  *time.Time
	Order      CreativeOrder
}

// CreativeRepository stores ad creatives. Reads are not isolated from a
// reconciliation running at the same time.
type CreativeRepository interface {
	// InTx runs fn in one transaction. The transaction commits when fn
	// returns nil and rolls back otherwise.
	InTx(ctx context.Context, fn func(tx CreativeTx) error) error
	// List returns creatives matching f with BusinessName filled in.
	List(ctx context.Context, f CreativeFilter) ([]domain.AdCreative, error)
	// Count returns the number of stored creatives.
	Count(ctx context.Context) (int64, error)
}

// CreativeTx is the write side of CreativeRepository, bound to one
// transaction.
type CreativeTx interface {
	// FindByAdIDs returns the stored creatives among adIDs, in any order.
	FindByAdIDs(ctx context.Context, adIDs []string) ([]domain.AdCreative, error)
	// Refresh marks a creative as seen on lastSeen: it becomes active and
	// gets the given duration. No other field changes.
	Refresh(ctx context.Context, id int64, lastSeen time.Time, durationDays int) error
	// Create inserts a creative and fills its id.
	Create(ctx context.Context, c *domain.AdCreative) error
	// ListActiveByBusiness returns the active creatives of a business.
	ListActiveByBusiness(ctx context.Context, businessID int64) ([]domain.AdCreative, error)
	// Deactivate marks creatives inactive. end_date is set to endDate only
	// where it is still empty.
	Deactivate(ctx context.Context, ids []int64, endDate time.Time) error
}
