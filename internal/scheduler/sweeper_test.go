//go:build unit

package scheduler_test

import (
	"context"
	"testing"
	"time"

	"hutbook/internal/pkg/config"
	"hutbook/internal/scheduler"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubExpirer struct {
	calls chan struct{}
	ids   []uuid.UUID
}

func (s *stubExpirer) ExpireStale(ctx context.Context) ([]uuid.UUID, error) {
	select {
	case s.calls <- struct{}{}:
	default:
	}
	return s.ids, nil
}

func TestSweeperRunsOnInterval(t *testing.T) {
	expirer := &stubExpirer{
		calls: make(chan struct{}, 1),
		ids:   []uuid.UUID{uuid.New()},
	}

	sweeper := scheduler.NewSweeper(expirer, config.BookingConfig{
		SweepInterval: time.Second,
	})
	require.NoError(t, sweeper.Start())
	defer sweeper.Stop()

	select {
	case <-expirer.calls:
	case <-time.After(3 * time.Second):
		t.Fatal("sweep did not run within the interval")
	}
}

func TestSweeperStopWaitsForCompletion(t *testing.T) {
	expirer := &stubExpirer{calls: make(chan struct{}, 1)}

	sweeper := scheduler.NewSweeper(expirer, config.BookingConfig{
		SweepInterval: time.Hour,
	})
	require.NoError(t, sweeper.Start())

	done := make(chan struct{})
	go func() {
		sweeper.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return")
	}
	assert.Empty(t, expirer.calls)
}
