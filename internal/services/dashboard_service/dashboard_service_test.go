package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var (
	testCtx = context.Background()
	testLog = slog.New(slog.NewTextHandler(io.Discard, nil))
)

func fixedCounter(n int, calls *int) Counter {
	return func(ctx context.Context) (int, error) {
		*calls++
		return n, nil
	}
}

func TestStats_CollectsCounts(t *testing.T) {
	var calls int
	service := NewDashboardService(testLog, time.Minute,
		fixedCounter(3, &calls),
		fixedCounter(12, &calls),
		fixedCounter(4, &calls),
		fixedCounter(2, &calls),
	)

	stats, err := service.Stats(testCtx)

	assert.NoError(t, err)
	assert.Equal(t, 3, stats.Events)
	assert.Equal(t, 12, stats.MenuItems)
	assert.Equal(t, 4, stats.Categories)
	assert.Equal(t, 2, stats.Menus)
}

func TestStats_CachesWithinTTL(t *testing.T) {
	var calls int
	service := NewDashboardService(testLog, time.Minute,
		fixedCounter(1, &calls),
		fixedCounter(1, &calls),
		fixedCounter(1, &calls),
		fixedCounter(1, &calls),
	)

	_, err := service.Stats(testCtx)
	assert.NoError(t, err)

	_, err = service.Stats(testCtx)
	assert.NoError(t, err)

	// Second call must be served from cache.
	assert.Equal(t, 4, calls)
}

func TestStats_CounterErrorIsNotCached(t *testing.T) {
	expectedErr := errors.New("db down")
	var calls int

	failing := func(ctx context.Context) (int, error) {
		calls++
		if calls == 1 {
			return 0, expectedErr
		}
		return 7, nil
	}

	var rest int
	service := NewDashboardService(testLog, time.Minute,
		failing,
		fixedCounter(1, &rest),
		fixedCounter(1, &rest),
		fixedCounter(1, &rest),
	)

	_, err := service.Stats(testCtx)
	assert.ErrorIs(t, err, expectedErr)

	stats, err := service.Stats(testCtx)
	assert.NoError(t, err)
	assert.Equal(t, 7, stats.Events)
}
