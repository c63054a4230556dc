package commands

import (
	"context"

	"hutbook/internal/domain/booking"
	"hutbook/internal/pkg/clock"
	"hutbook/internal/pkg/config"
	"hutbook/internal/pkg/errs"
	"hutbook/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrSweepFailed = errs.New("failed to sweep stale bookings")

type SweepUseCase interface {
	ExpireStale(ctx context.Context) ([]uuid.UUID, error)
}

// SweepCommands releases slots held by bookings whose advance payment
// never arrived.
type SweepCommands struct {
	uow   shared.UnitOfWork
	clock clock.Clock
	cfg   config.BookingConfig
}

func NewSweepCommands(uow shared.UnitOfWork, clk clock.Clock, cfg config.BookingConfig) SweepUseCase {
	return &SweepCommands{uow: uow, clock: clk, cfg: cfg}
}

// ExpireStale moves every unpaid booking past its TTL to Expired and
// returns the affected IDs. The cutoff is inclusive, so a booking created
// at T expires at exactly T+TTL.
func (c *SweepCommands) ExpireStale(ctx context.Context) ([]uuid.UUID, error) {
	now := c.clock.Now()
	cutoff := now.Add(-c.cfg.ExpiryTTL)

	statuses := []booking.Status{booking.StatusPending}
	if c.cfg.SweepIncludeWaiting {
		statuses = append(statuses, booking.StatusWaiting)
	}

	var ids []uuid.UUID
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		expired, err := tx.Bookings().ExpireStale(ctx, tx.DB(), statuses, cutoff, now)
		if err != nil {
			return errs.Mark(err, ErrSweepFailed)
		}
		ids = expired
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}
