package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adwatch/internal/core/domain"
	"adwatch/internal/core/port"
	"adwatch/internal/core/port/mocks"
)

type testGuard struct {
	mu       sync.Mutex
	held     bool
	releases int
}

func (g *testGuard) TryAcquire(context.Context) (func(), bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.held {
		return nil, false, nil
	}
	g.held = true
	return func() {
		g.mu.Lock()
		defer g.mu.Unlock()
		g.held = false
		g.releases++
	}, true, nil
}

type recordingObserver struct {
	runs []domain.RunSummary
}

func (o *recordingObserver) ObserveRun(s domain.RunSummary) {
	o.runs = append(o.runs, s)
}

func TestRunOnceProcessesEveryBusiness(t *testing.T) {
	ctx := context.Background()
	businesses := mocks.NewMockBusinessRepository(t)
	source := mocks.NewMockSnapshotSource(t)
	store := newMemCreatives()
	guard := &testGuard{}
	observer := &recordingObserver{}

	b1 := domain.Business{ID: 1, Name: "one", PageID: "p1"}
	b2 := domain.Business{ID: 2, Name: "two", PageID: "p2"}
	b3 := domain.Business{ID: 3, Name: "three", PageID: "p3"}
	businesses.EXPECT().List(mock.Anything).Return([]domain.Business{b1, b2, b3}, nil)

	source.EXPECT().Snapshot(mock.Anything, b1).Return(domain.Snapshot{obs("1", fp(1)), obs("2", nil)}, nil)
	source.EXPECT().Snapshot(mock.Anything, b2).Return(nil, errors.New("navigation timeout"))
	source.EXPECT().Snapshot(mock.Anything, b3).Return(domain.Snapshot{obs("3", nil)}, nil)

	c := NewCoordinator(guard, businesses, source, newTestReconciler(store, day(2024, 1, 1)), observer, discard)
	summary, err := c.RunOnce(ctx)
	require.NoError(t, err)

	assert.Equal(t, domain.RunCompleted, summary.Status)
	assert.Equal(t, 3, summary.Created)
	assert.Equal(t, 1, summary.Failed)
	require.Len(t, summary.Businesses, 3)
	assert.Equal(t, domain.StageScrape, summary.Businesses[1].Stage)
	assert.Equal(t, "navigation timeout", summary.Businesses[1].Error)
	assert.NotNil(t, summary.Businesses[2].Result)

	assert.False(t, guard.held)
	assert.Equal(t, 1, guard.releases)
	require.Len(t, observer.runs, 1)
	assert.Equal(t, summary.RunID, observer.runs[0].RunID)
}

func TestRunOnceSkipsWhileRunning(t *testing.T) {
	ctx := context.Background()
	businesses := mocks.NewMockBusinessRepository(t)
	source := mocks.NewMockSnapshotSource(t)
	store := newMemCreatives()
	guard := &testGuard{held: true}

	require.NoError(t, store.InTx(ctx, func(tx port.CreativeTx) error {
		return tx.Create(ctx, &domain.AdCreative{AdID: "x", BusinessID: 1, Active: true})
	}))
	before, _ := store.Count(ctx)

	c := NewCoordinator(guard, businesses, source, newTestReconciler(store, day(2024, 1, 1)), nil, discard)
	summary, err := c.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.RunSkipped, summary.Status)
	assert.Empty(t, summary.Businesses)

	after, _ := store.Count(ctx)
	assert.Equal(t, before, after)
	x, _ := store.byAdID("x")
	assert.True(t, x.Active)
	assert.True(t, guard.held)
	assert.Zero(t, guard.releases)
}

func TestRunOnceListFailureIsRunLevel(t *testing.T) {
	businesses := mocks.NewMockBusinessRepository(t)
	source := mocks.NewMockSnapshotSource(t)
	guard := &testGuard{}
	observer := &recordingObserver{}

	boom := errors.New("dial tcp: connection refused")
	businesses.EXPECT().List(mock.Anything).Return(nil, boom)

	c := NewCoordinator(guard, businesses, source, newTestReconciler(newMemCreatives(), day(2024, 1, 1)), observer, discard)
	summary, err := c.RunOnce(context.Background())
	require.ErrorIs(t, err, boom)
	assert.Empty(t, summary.Businesses)
	assert.Equal(t, 1, guard.releases)
	require.Len(t, observer.runs, 1)
	assert.Equal(t, domain.RunFailed, observer.runs[0].Status)
}

func TestRunOnceNoBusinesses(t *testing.T) {
	businesses := mocks.NewMockBusinessRepository(t)
	source := mocks.NewMockSnapshotSource(t)
	guard := &testGuard{}

	businesses.EXPECT().List(mock.Anything).Return([]domain.Business{}, nil)

	c := NewCoordinator(guard, businesses, source, newTestReconciler(newMemCreatives(), day(2024, 1, 1)), nil, discard)
	summary, err := c.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.RunNoBusinesses, summary.Status)
	assert.Equal(t, 1, guard.releases)
}

func TestRunOnceRecoversPanicAndReleases(t *testing.T) {
	businesses := mocks.NewMockBusinessRepository(t)
	source := mocks.NewMockSnapshotSource(t)
	store := newMemCreatives()
	guard := &testGuard{}

	b1 := domain.Business{ID: 1, PageID: "p1"}
	b2 := domain.Business{ID: 2, PageID: "p2"}
	businesses.EXPECT().List(mock.Anything).Return([]domain.Business{b1, b2}, nil)
	source.EXPECT().Snapshot(mock.Anything, b1).
		RunAndReturn(func(context.Context, domain.Business) (domain.Snapshot, error) {
			panic("nil element")
		})
	source.EXPECT().Snapshot(mock.Anything, b2).Return(domain.Snapshot{obs("2", nil)}, nil)

	c := NewCoordinator(guard, businesses, source, newTestReconciler(store, day(2024, 1, 1)), nil, discard)
	summary, err := c.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, 1, summary.Created)
	assert.Contains(t, summary.Businesses[0].Error, "nil element")
	assert.False(t, guard.held)
}

func TestRunOnceReconcileFailureContinues(t *testing.T) {
	businesses := mocks.NewMockBusinessRepository(t)
	source := mocks.NewMockSnapshotSource(t)
	store := newMemCreatives()
	store.fail["Create"] = errors.New("disk full")

	b1 := domain.Business{ID: 1, PageID: "p1"}
	businesses.EXPECT().List(mock.Anything).Return([]domain.Business{b1}, nil)
	source.EXPECT().Snapshot(mock.Anything, b1).Return(domain.Snapshot{obs("1", nil)}, nil)

	c := NewCoordinator(&testGuard{}, businesses, source, newTestReconciler(store, day(2024, 1, 1)), nil, discard)
	summary, err := c.RunOnce(context.Background())
	require.NoError(t, err)
	require.Len(t, summary.Businesses, 1)
	assert.Equal(t, domain.StageReconcile, summary.Businesses[0].Stage)
	assert.Contains(t, summary.Businesses[0].Error, "disk full")
	n, _ := store.Count(context.Background())
	assert.Zero(t, n)
}
