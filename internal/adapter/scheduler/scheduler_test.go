package scheduler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"adwatch/internal/core/domain"
	"adwatch/internal/core/port/mocks"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestSchedulerRunsOnStartAndOnTick(t *testing.T) {
	runner := mocks.NewMockScrapeUseCase(t)
	var calls atomic.Int32
	runner.EXPECT().RunOnce(mock.Anything).
		RunAndReturn(func(context.Context) (domain.RunSummary, error) {
			if calls.Add(1) == 2 {
				return domain.RunSummary{}, errors.New("db down")
			}
			return domain.RunSummary{Status: domain.RunCompleted}, nil
		})

	stop := New(runner, 10*time.Millisecond, true, discard).Start(context.Background())
	assert.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
	stop()

	n := calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, n, calls.Load())
}

func TestSchedulerWithoutRunOnStart(t *testing.T) {
	runner := mocks.NewMockScrapeUseCase(t)
	stop := New(runner, time.Hour, false, discard).Start(context.Background())
	time.Sleep(20 * time.Millisecond)
	stop()
	runner.AssertNotCalled(t, "RunOnce", mock.Anything)
}

func TestSchedulerStopsWithParentContext(t *testing.T) {
	runner := mocks.NewMockScrapeUseCase(t)
	ctx, cancel := context.WithCancel(context.Background())
	stop := New(runner, time.Hour, false, discard).Start(ctx)
	cancel()

	done := make(chan struct{})
	go func() {
		stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
}
