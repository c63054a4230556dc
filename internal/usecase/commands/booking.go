package commands

import (
	"context"
	"time"

	"hutbook/internal/domain/booking"
	"hutbook/internal/domain/customer"
	"hutbook/internal/infra"
	"hutbook/internal/pkg/clock"
	"hutbook/internal/pkg/config"
	"hutbook/internal/pkg/errs"
	"hutbook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrPropertyNotFound       = errs.New("property not found")
	ErrCustomerNotFound       = errs.New("customer not found")
	ErrCustomerIdentity       = errs.New("customer name and national ID are required")
	ErrBookingNotFound        = errs.New("booking not found")
	ErrSlotTaken              = errs.New("slot already taken")
	ErrRateNotFound           = errs.New("no rate configured for this slot")
	ErrConcurrentModification = errs.New("booking was modified concurrently")
	ErrBookingFailed          = errs.New("failed to process booking")
)

// CreateBookingInput identifies the customer either by ID or inline by
// name and national ID; inline identities are registered on the fly.
type CreateBookingInput struct {
	PropertyID   uuid.UUID
	CustomerID   *uuid.UUID
	CustomerName string
	NationalID   string
	Phone        string
	Date         time.Time
	Shift        string
	Source       string
}

type BookingUseCase interface {
	CreateBooking(ctx context.Context, in CreateBookingInput) (uuid.UUID, error)
	SubmitPaymentEvidence(ctx context.Context, id uuid.UUID, evidenceRef string) error
	ConfirmBooking(ctx context.Context, id uuid.UUID) error
	RejectBooking(ctx context.Context, id uuid.UUID, reason string) error
	CancelBooking(ctx context.Context, id uuid.UUID, reason *string) error
	CompleteBooking(ctx context.Context, id uuid.UUID) error
}

type BookingCommands struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	policy booking.OverlapPolicy
}

func NewBookingCommands(uow shared.UnitOfWork, clk clock.Clock, cfg config.BookingConfig) BookingUseCase {
	return &BookingCommands{
		uow:    uow,
		clock:  clk,
		policy: booking.OverlapPolicy{WaitingBlocks: cfg.WaitingBlocks},
	}
}

// CreateBooking runs the availability check and the insert in one
// serializable transaction, so two concurrent requests for overlapping
// slots cannot both succeed.
func (c *BookingCommands) CreateBooking(ctx context.Context, in CreateBookingInput) (uuid.UUID, error) {
	shift, err := booking.ParseShift(in.Shift)
	if err != nil {
		return uuid.Nil, err
	}
	source, err := booking.ParseSource(in.Source)
	if err != nil {
		return uuid.Nil, err
	}
	date := booking.NormalizeDate(in.Date)
	if date.IsZero() {
		return uuid.Nil, booking.ErrDateRequired
	}

	probes, err := booking.ConflictProbes(date, shift)
	if err != nil {
		return uuid.Nil, err
	}

	now := c.clock.Now()
	var bookingID uuid.UUID

	err = c.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		prop, err := tx.Reads().PropertyByID(ctx, in.PropertyID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrPropertyNotFound)
			}
			return errs.Mark(err, ErrBookingFailed)
		}

		cust, err := c.resolveCustomer(ctx, tx, in, now)
		if err != nil {
			return err
		}

		statuses := c.policy.BlockingStatuses()
		for _, probe := range probes {
			n, err := tx.Reads().CountConflicts(ctx, in.PropertyID, probe.Date, probe.Shifts, statuses)
			if err != nil {
				return errs.Mark(err, ErrBookingFailed)
			}
			if n > 0 {
				return ErrSlotTaken
			}
		}

		rate, err := tx.Reads().RateFor(ctx, prop.ID, date.Weekday(), shift)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrRateNotFound)
			}
			return errs.Mark(err, ErrBookingFailed)
		}
		total, err := booking.NewMoneyFromInt64(rate)
		if err != nil {
			return errs.Mark(err, ErrRateNotFound)
		}

		b, err := booking.NewBooking(now, prop.ID, cust.ID, cust.Name, date, shift, source,
			total, prop.AdvancePercent)
		if err != nil {
			return err
		}

		id, err := tx.Bookings().Create(ctx, tx.DB(), b)
		if err != nil {
			// The exclusion constraint is the backstop for races the
			// serializable check did not see.
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, ErrSlotTaken)
			}
			return errs.Mark(err, ErrBookingFailed)
		}
		bookingID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return bookingID, nil
}

func (c *BookingCommands) resolveCustomer(ctx context.Context, tx shared.Tx, in CreateBookingInput, now time.Time) (*shared.CustomerSnapshot, error) {
	if in.CustomerID != nil {
		snap, err := tx.Reads().CustomerByID(ctx, *in.CustomerID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, errs.Mark(err, ErrCustomerNotFound)
			}
			return nil, errs.Mark(err, ErrBookingFailed)
		}
		if snap.Name == "" || snap.NationalID == "" {
			return nil, ErrCustomerIdentity
		}
		return snap, nil
	}

	nationalID, err := customer.NewNationalID(in.NationalID)
	if err != nil {
		return nil, err
	}

	// Returning customers are matched by national ID instead of being
	// registered twice.
	snap, err := tx.Reads().CustomerByNationalID(ctx, nationalID.String())
	if err == nil {
		return snap, nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, ErrBookingFailed)
	}

	cust, err := customer.NewCustomer(in.CustomerName, nationalID, in.Phone)
	if err != nil {
		return nil, err
	}
	if !cust.ReadyToBook() {
		return nil, ErrCustomerIdentity
	}
	id, err := tx.Customers().Create(ctx, tx.DB(), cust)
	if err != nil {
		return nil, errs.Mark(err, ErrBookingFailed)
	}
	return &shared.CustomerSnapshot{
		ID:         id,
		Name:       cust.Name(),
		NationalID: cust.NationalID().String(),
		Phone:      cust.Phone(),
	}, nil
}

func (c *BookingCommands) SubmitPaymentEvidence(ctx context.Context, id uuid.UUID, evidenceRef string) error {
	return c.transition(ctx, id, func(b *booking.Booking, now time.Time) error {
		return b.SubmitPaymentEvidence(now, evidenceRef)
	})
}

func (c *BookingCommands) ConfirmBooking(ctx context.Context, id uuid.UUID) error {
	return c.transition(ctx, id, func(b *booking.Booking, now time.Time) error {
		return b.Confirm(now)
	})
}

func (c *BookingCommands) RejectBooking(ctx context.Context, id uuid.UUID, reason string) error {
	return c.transition(ctx, id, func(b *booking.Booking, now time.Time) error {
		return b.Reject(now, reason)
	})
}

func (c *BookingCommands) CancelBooking(ctx context.Context, id uuid.UUID, reason *string) error {
	return c.transition(ctx, id, func(b *booking.Booking, now time.Time) error {
		return b.Cancel(now, reason)
	})
}

func (c *BookingCommands) CompleteBooking(ctx context.Context, id uuid.UUID) error {
	return c.transition(ctx, id, func(b *booking.Booking, now time.Time) error {
		return b.Complete(now)
	})
}

// transition loads the booking, applies the domain rule, and persists the
// result guarded on the status the rule saw. A guard miss means another
// writer got there first.
func (c *BookingCommands) transition(ctx context.Context, id uuid.UUID, apply func(b *booking.Booking, now time.Time) error) error {
	now := c.clock.Now()

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().BookingByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrBookingNotFound)
			}
			return errs.Mark(err, ErrBookingFailed)
		}

		b := reconstruct(snap)
		before := b.Status()
		if err := apply(b, now); err != nil {
			return err
		}
		if b.Status() == before && ptrEq(b.PaymentRef(), snap.PaymentRef) && ptrEq(b.Reason(), snap.Reason) {
			// No-op transitions (idempotent confirm) need no write.
			return nil
		}

		upd := shared.StatusUpdate{
			ID:   id,
			From: []booking.Status{before},
			To:   b.Status(),
			Now:  now,
		}
		if !ptrEq(b.PaymentRef(), snap.PaymentRef) {
			if b.PaymentRef() == nil {
				upd.ClearPaymentRef = true
			} else {
				upd.PaymentRef = b.PaymentRef()
			}
		}
		if !ptrEq(b.Reason(), snap.Reason) {
			upd.Reason = b.Reason()
		}

		affected, err := tx.Bookings().UpdateStatus(ctx, tx.DB(), upd)
		if err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				// Moving back into a blocking status can collide with a
				// booking created while this one was waiting.
				return errs.Mark(err, ErrSlotTaken)
			}
			return errs.Mark(err, ErrBookingFailed)
		}
		if affected == 0 {
			return ErrConcurrentModification
		}
		return nil
	})
}

func reconstruct(snap *shared.BookingSnapshot) *booking.Booking {
	return booking.ReconstructBooking(
		snap.ID,
		booking.ReconstructReference(snap.Reference),
		snap.PropertyID,
		snap.CustomerID,
		snap.BookingDate,
		snap.Shift,
		snap.Status,
		snap.Source,
		booking.NewMoney(snap.TotalCents),
		booking.NewMoney(snap.AdvanceCents),
		snap.PaymentRef,
		snap.Reason,
		snap.CreatedAt,
		snap.UpdatedAt,
	)
}

func ptrEq(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
