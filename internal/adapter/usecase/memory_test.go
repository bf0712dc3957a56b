package usecase

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"adwatch/internal/core/domain"
	"adwatch/internal/core/port"
)

// memCreatives is an in-memory port.CreativeRepository. Writes made inside
// InTx are applied to a copy and only kept when fn succeeds.
type memCreatives struct {
	mu     sync.Mutex
	rows   []domain.AdCreative
	nextID int64
	names  map[int64]string
	// fail makes the named CreativeTx method return the error.
	fail map[string]error
}

func newMemCreatives() *memCreatives {
	return &memCreatives{names: map[int64]string{}, fail: map[string]error{}}
}

func (m *memCreatives) InTx(ctx context.Context, fn func(tx port.CreativeTx) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	tx := &memTx{m: m, rows: cloneRows(m.rows), nextID: m.nextID}
	if err := fn(tx); err != nil {
		return err
	}
	m.rows, m.nextID = tx.rows, tx.nextID
	return nil
}

func (m *memCreatives) List(_ context.Context, f port.CreativeFilter) ([]domain.AdCreative, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []domain.AdCreative
	for _, c := range cloneRows(m.rows) {
		switch {
		case f.BusinessID != nil && c.BusinessID != *f.BusinessID:
			continue
		case f.ActiveOnly && !c.Active:
			continue
		case f.StartOn != nil && !c.StartDate.Equal(*f.StartOn):
			continue
		case f.StartFrom != nil && c.StartDate.Before(*f.StartFrom):
			continue
		}
		c.BusinessName = m.names[c.BusinessID]
		out = append(out, c)
	}
	slices.SortStableFunc(out, func(a, b domain.AdCreative) int {
		if f.Order == port.OrderBusinessStartDesc && a.BusinessID != b.BusinessID {
			return cmp.Compare(a.BusinessID, b.BusinessID)
		}
		return b.StartDate.Compare(a.StartDate)
	})
	return out, nil
}

func (m *memCreatives) Count(context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.rows)), nil
}

func (m *memCreatives) byAdID(adID string) (domain.AdCreative, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.rows {
		if c.AdID == adID {
			return c, true
		}
	}
	return domain.AdCreative{}, false
}

type memTx struct {
	m      *memCreatives
	rows   []domain.AdCreative
	nextID int64
}

func (t *memTx) FindByAdIDs(_ context.Context, adIDs []string) ([]domain.AdCreative, error) {
	if err := t.m.fail["FindByAdIDs"]; err != nil {
		return nil, err
	}
	var out []domain.AdCreative
	for _, c := range t.rows {
		if slices.Contains(adIDs, c.AdID) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (t *memTx) Refresh(_ context.Context, id int64, lastSeen time.Time, durationDays int) error {
	if err := t.m.fail["Refresh"]; err != nil {
		return err
	}
	for i := range t.rows {
		if t.rows[i].ID == id {
			t.rows[i].Active = true
			t.rows[i].LastSeen = lastSeen
			t.rows[i].DurationDays = durationDays
		}
	}
	return nil
}

func (t *memTx) Create(_ context.Context, c *domain.AdCreative) error {
	if err := t.m.fail["Create"]; err != nil {
		return err
	}
	t.nextID++
	c.ID = t.nextID
	t.rows = append(t.rows, *c)
	return nil
}

func (t *memTx) ListActiveByBusiness(_ context.Context, businessID int64) ([]domain.AdCreative, error) {
	if err := t.m.fail["ListActiveByBusiness"]; err != nil {
		return nil, err
	}
	var out []domain.AdCreative
	for _, c := range t.rows {
		if c.BusinessID == businessID && c.Active {
			out = append(out, c)
		}
	}
	return out, nil
}

func (t *memTx) Deactivate(_ context.Context, ids []int64, endDate time.Time) error {
	if err := t.m.fail["Deactivate"]; err != nil {
		return err
	}
	for i := range t.rows {
		if !slices.Contains(ids, t.rows[i].ID) {
			continue
		}
		t.rows[i].Active = false
		if t.rows[i].EndDate == nil {
			end := endDate
			t.rows[i].EndDate = &end
		}
	}
	return nil
}

func cloneRows(rows []domain.AdCreative) []domain.AdCreative {
	out := make([]domain.AdCreative, len(rows))
	for i, c := range rows {
		if c.EndDate != nil {
			end := *c.EndDate
			c.EndDate = &end
		}
		out[i] = c
	}
	return out
}
