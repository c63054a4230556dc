package queries

import (
	"context"
	"time"

	"hutbook/internal/domain/booking"
	"hutbook/internal/domain/property"
	"hutbook/internal/infra"
	"hutbook/internal/pkg/config"
	"hutbook/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrUnknownShift     = errs.New("unknown shift")
	ErrAvailabilityScan = errs.New("failed to check availability")
)

type AvailabilityReadStore interface {
	// CountConflicts evaluates one probe against blocking bookings.
	CountConflicts(ctx context.Context, propertyID uuid.UUID, date time.Time, shifts []booking.Shift, statuses []booking.Status) (int64, error)
	// PropertiesWithConflicts returns every property holding a blocking
	// booking that matches any of the probes.
	PropertiesWithConflicts(ctx context.Context, probes []booking.Probe, statuses []booking.Status) ([]uuid.UUID, error)
}

type PropertyReadStore interface {
	FindAll(ctx context.Context) ([]PropertyCandidate, error)
	RateFor(ctx context.Context, propertyID uuid.UUID, weekday time.Weekday, shift booking.Shift) (int64, error)
}

type PropertyCandidate struct {
	ID             uuid.UUID
	Name           string
	Location       string
	Capacity       int
	AdvancePercent int
}

// PropertyQuote is a candidate priced for a specific date and shift.
type PropertyQuote struct {
	PropertyCandidate
	TotalCents     int64
	AdvanceCents   int64
	RemainingCents int64
}

type AvailabilityUseCase interface {
	IsAvailable(ctx context.Context, propertyID uuid.UUID, date time.Time, shiftRaw string) (bool, error)
	SearchProperties(ctx context.Context, guests int, date time.Time, shiftRaw string) ([]PropertyQuote, error)
}

type AvailabilityQueries struct {
	avail  AvailabilityReadStore
	props  PropertyReadStore
	policy booking.OverlapPolicy
	slack  int
}

func NewAvailabilityQueries(avail AvailabilityReadStore, props PropertyReadStore, cfg config.BookingConfig) AvailabilityUseCase {
	return &AvailabilityQueries{
		avail:  avail,
		props:  props,
		policy: booking.OverlapPolicy{WaitingBlocks: cfg.WaitingBlocks},
		slack:  cfg.CapacitySlack,
	}
}

// IsAvailable reports whether the slot is free of blocking bookings.
// An unrecognized shift is an error, never a free slot.
func (q *AvailabilityQueries) IsAvailable(ctx context.Context, propertyID uuid.UUID, date time.Time, shiftRaw string) (bool, error) {
	shift, err := booking.ParseShift(shiftRaw)
	if err != nil {
		return false, errs.Mark(err, ErrUnknownShift)
	}

	probes, err := booking.ConflictProbes(date, shift)
	if err != nil {
		return false, errs.Mark(err, ErrUnknownShift)
	}

	statuses := q.policy.BlockingStatuses()
	for _, probe := range probes {
		n, err := q.avail.CountConflicts(ctx, propertyID, probe.Date, probe.Shifts, statuses)
		if err != nil {
			return false, errs.Mark(err, ErrAvailabilityScan)
		}
		if n > 0 {
			return false, nil
		}
	}
	return true, nil
}

// SearchProperties lists free, priced properties for a slot. Capacity is
// filtered with slack so slightly oversized groups still see options.
func (q *AvailabilityQueries) SearchProperties(ctx context.Context, guests int, date time.Time, shiftRaw string) ([]PropertyQuote, error) {
	shift, err := booking.ParseShift(shiftRaw)
	if err != nil {
		return nil, errs.Mark(err, ErrUnknownShift)
	}
	probes, err := booking.ConflictProbes(date, shift)
	if err != nil {
		return nil, errs.Mark(err, ErrUnknownShift)
	}

	all, err := q.props.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrAvailabilityScan)
	}
	candidates := make([]PropertyCandidate, 0, len(all))
	for _, cand := range all {
		if property.FitsGuests(cand.Capacity, guests, q.slack) {
			candidates = append(candidates, cand)
		}
	}
	if len(candidates) == 0 {
		return []PropertyQuote{}, nil
	}

	conflicted, err := q.avail.PropertiesWithConflicts(ctx, probes, q.policy.BlockingStatuses())
	if err != nil {
		return nil, errs.Mark(err, ErrAvailabilityScan)
	}
	blocked := make(map[uuid.UUID]struct{}, len(conflicted))
	for _, id := range conflicted {
		blocked[id] = struct{}{}
	}

	quotes := make([]PropertyQuote, 0, len(candidates))
	for _, cand := range candidates {
		if _, ok := blocked[cand.ID]; ok {
			continue
		}
		rate, err := q.props.RateFor(ctx, cand.ID, date.Weekday(), shift)
		if err != nil {
			// A property without a rate for this slot is simply not offered.
			if infra.IsKind(err, infra.KindNotFound) {
				continue
			}
			return nil, errs.Mark(err, ErrAvailabilityScan)
		}
		pq := property.NewPriceQuote(booking.NewMoney(rate), cand.AdvancePercent)
		quotes = append(quotes, PropertyQuote{
			PropertyCandidate: cand,
			TotalCents:        pq.Total.Cents(),
			AdvanceCents:      pq.Advance.Cents(),
			RemainingCents:    pq.Remaining.Cents(),
		})
	}
	return quotes, nil
}
