package booking

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrCustomerNameRequired = errors.New("customer name is required")
	ErrDateRequired         = errors.New("booking date is required")
	ErrReasonRequired       = errors.New("a non-empty reason is required")
	ErrNotAwaitingPayment   = errors.New("booking is not awaiting payment")
	ErrNotUnderReview       = errors.New("booking is not under payment review")
	ErrNotConfirmed         = errors.New("booking is not confirmed")
	ErrAlreadyCancelled     = errors.New("booking is already cancelled")
	ErrAlreadyCompleted     = errors.New("booking is already completed")
	ErrBookingFinalized     = errors.New("booking has reached a terminal state")
)

type Booking struct {
	id          uuid.UUID
	reference   Reference
	propertyID  uuid.UUID
	customerID  uuid.UUID
	bookingDate time.Time
	shift       Shift
	status      Status
	source      Source
	totalCost   Money
	advance     Money
	paymentRef  *string
	reason      *string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewBooking(
	now time.Time,
	propertyID, customerID uuid.UUID,
	customerName string,
	date time.Time,
	shift Shift,
	source Source,
	totalCost Money,
	advancePercent int,
) (*Booking, error) {
	if strings.TrimSpace(customerName) == "" {
		return nil, ErrCustomerNameRequired
	}
	if date.IsZero() {
		return nil, ErrDateRequired
	}
	if !shift.IsValid() {
		return nil, ErrInvalidShift
	}
	if !source.IsValid() {
		return nil, ErrInvalidSource
	}

	advance, _ := totalCost.SplitAdvance(advancePercent)

	return &Booking{
		id:          uuid.New(),
		reference:   NewReference(customerName, date, shift),
		propertyID:  propertyID,
		customerID:  customerID,
		bookingDate: NormalizeDate(date),
		shift:       shift,
		status:      StatusPending,
		source:      source,
		totalCost:   totalCost,
		advance:     advance,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructBooking(
	id uuid.UUID,
	reference Reference,
	propertyID, customerID uuid.UUID,
	bookingDate time.Time,
	shift Shift,
	status Status,
	source Source,
	totalCost, advance Money,
	paymentRef, reason *string,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:          id,
		reference:   reference,
		propertyID:  propertyID,
		customerID:  customerID,
		bookingDate: NormalizeDate(bookingDate),
		shift:       shift,
		status:      status,
		source:      source,
		totalCost:   totalCost,
		advance:     advance,
		paymentRef:  paymentRef,
		reason:      reason,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// SubmitPaymentEvidence records a payment proof reference and moves the
// booking under review. Allowed from Pending and Waiting (resubmission).
func (b *Booking) SubmitPaymentEvidence(now time.Time, evidenceRef string) error {
	switch b.status {
	case StatusPending, StatusWaiting:
		b.status = StatusWaiting
		b.paymentRef = &evidenceRef
		b.updatedAt = now
		return nil
	case StatusCancelled:
		return ErrAlreadyCancelled
	default:
		return ErrBookingFinalized
	}
}

// Confirm finalizes payment review. Confirming an already-confirmed
// booking is a no-op success, not an error.
func (b *Booking) Confirm(now time.Time) error {
	switch b.status {
	case StatusConfirmed:
		return nil
	case StatusPending, StatusWaiting:
		b.status = StatusConfirmed
		b.updatedAt = now
		return nil
	case StatusCancelled:
		return ErrAlreadyCancelled
	default:
		return ErrBookingFinalized
	}
}

// Reject sends a booking under review back to Pending so the customer can
// retry payment. It never terminates the booking.
func (b *Booking) Reject(now time.Time, reason string) error {
	if strings.TrimSpace(reason) == "" {
		return ErrReasonRequired
	}
	switch b.status {
	case StatusWaiting:
		b.status = StatusPending
		b.reason = &reason
		b.paymentRef = nil
		b.updatedAt = now
		return nil
	case StatusCancelled:
		return ErrAlreadyCancelled
	default:
		return ErrNotUnderReview
	}
}

func (b *Booking) Cancel(now time.Time, reason *string) error {
	switch b.status {
	case StatusCancelled:
		return ErrAlreadyCancelled
	case StatusCompleted:
		return ErrAlreadyCompleted
	default:
		b.status = StatusCancelled
		if reason != nil {
			b.reason = reason
		}
		b.updatedAt = now
		return nil
	}
}

func (b *Booking) Complete(now time.Time) error {
	switch b.status {
	case StatusConfirmed:
		b.status = StatusCompleted
		b.updatedAt = now
		return nil
	case StatusCompleted:
		return ErrAlreadyCompleted
	default:
		return ErrNotConfirmed
	}
}

// ExpireEligible reports whether the sweep may expire this booking: still
// unpaid and created at or before now-ttl. The boundary is inclusive, so a
// booking created at T becomes eligible at exactly T+ttl.
func (b *Booking) ExpireEligible(now time.Time, ttl time.Duration, includeWaiting bool) bool {
	switch b.status {
	case StatusPending:
	case StatusWaiting:
		if !includeWaiting {
			return false
		}
	default:
		return false
	}
	cutoff := now.Add(-ttl)
	return !b.createdAt.After(cutoff)
}

func (b *Booking) Expire(now time.Time) error {
	switch b.status {
	case StatusPending, StatusWaiting:
		b.status = StatusExpired
		b.updatedAt = now
		return nil
	default:
		return ErrBookingFinalized
	}
}

func (b *Booking) RemainingCost() Money {
	return b.totalCost.Sub(b.advance)
}

func (b *Booking) ID() uuid.UUID          { return b.id }
func (b *Booking) Reference() Reference   { return b.reference }
func (b *Booking) PropertyID() uuid.UUID  { return b.propertyID }
func (b *Booking) CustomerID() uuid.UUID  { return b.customerID }
func (b *Booking) BookingDate() time.Time { return b.bookingDate }
func (b *Booking) Shift() Shift           { return b.shift }
func (b *Booking) Status() Status         { return b.status }
func (b *Booking) Source() Source         { return b.source }
func (b *Booking) TotalCost() Money       { return b.totalCost }
func (b *Booking) Advance() Money         { return b.advance }
func (b *Booking) PaymentRef() *string    { return b.paymentRef }
func (b *Booking) Reason() *string        { return b.reason }
func (b *Booking) CreatedAt() time.Time   { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time   { return b.updatedAt }
