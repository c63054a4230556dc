package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"hutbook/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

type bookingExpirer interface {
	ExpireStale(ctx context.Context) ([]uuid.UUID, error)
}

// Sweeper periodically expires unpaid bookings so their slots free up.
type Sweeper struct {
	cron     *cron.Cron
	expirer  bookingExpirer
	interval time.Duration
}

func NewSweeper(expirer bookingExpirer, cfg config.BookingConfig) *Sweeper {
	return &Sweeper{
		cron:     cron.New(),
		expirer:  expirer,
		interval: cfg.SweepInterval,
	}
}

func (s *Sweeper) Start() error {
	spec := fmt.Sprintf("@every %s", s.interval)
	if _, err := s.cron.AddFunc(spec, s.runOnce); err != nil {
		return err
	}
	s.cron.Start()
	slog.Info("booking sweeper started", "interval", s.interval.String())
	return nil
}

// Stop waits for an in-flight sweep to finish.
func (s *Sweeper) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	slog.Info("booking sweeper stopped")
}

func (s *Sweeper) runOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	ids, err := s.expirer.ExpireStale(ctx)
	if err != nil {
		slog.Error("booking sweep failed", "error", err.Error())
		return
	}
	if len(ids) == 0 {
		return
	}

	slog.Info("expired stale bookings", "count", len(ids))
	for _, id := range ids {
		slog.Info("booking expired", "booking_id", id.String())
	}
}
