package queries

import (
	"context"
	"time"

	"hutbook/internal/infra"
	"hutbook/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound  = errs.New("booking not found")
	ErrCustomerNotFound = errs.New("customer not found")
	ErrBookingQuery     = errs.New("failed to query bookings")
)

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]BookingView, error)
}

type CustomerReadStore interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// BookingView joins the booking row with its property and customer names
// for display.
type BookingView struct {
	ID             uuid.UUID
	Reference      string
	PropertyID     uuid.UUID
	PropertyName   string
	CustomerID     uuid.UUID
	CustomerName   string
	BookingDate    time.Time
	Shift          string
	Status         string
	Source         string
	TotalCents     int64
	AdvanceCents   int64
	RemainingCents int64
	PaymentRef     *string
	Reason         *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type BookingQueryUseCase interface {
	GetBooking(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListCustomerBookings(ctx context.Context, customerID uuid.UUID) ([]BookingView, error)
}

type BookingQueries struct {
	bookings  BookingReadStore
	customers CustomerReadStore
}

func NewBookingQueries(bookings BookingReadStore, customers CustomerReadStore) BookingQueryUseCase {
	return &BookingQueries{bookings: bookings, customers: customers}
}

func (q *BookingQueries) GetBooking(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.bookings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrBookingNotFound)
		}
		return nil, errs.Mark(err, ErrBookingQuery)
	}
	return view, nil
}

func (q *BookingQueries) ListCustomerBookings(ctx context.Context, customerID uuid.UUID) ([]BookingView, error) {
	exists, err := q.customers.Exists(ctx, customerID)
	if err != nil {
		return nil, errs.Mark(err, ErrBookingQuery)
	}
	if !exists {
		return nil, ErrCustomerNotFound
	}

	views, err := q.bookings.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, errs.Mark(err, ErrBookingQuery)
	}
	if views == nil {
		views = []BookingView{}
	}
	return views, nil
}
