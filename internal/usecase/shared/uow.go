package shared

import (
	"context"
	"time"

	"hutbook/internal/domain/booking"
	"hutbook/internal/domain/customer"
	"hutbook/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Read-committed transaction for plain write operations
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinSerializable: Serializable transaction for the
	// availability-check-then-insert sequence; retried on 40001/40P01
	WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Customers() CustomerRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	PropertyByID(ctx context.Context, id uuid.UUID) (*PropertySnapshot, error)
	RateFor(ctx context.Context, propertyID uuid.UUID, weekday time.Weekday, shift booking.Shift) (int64, error)
	CustomerByID(ctx context.Context, id uuid.UUID) (*CustomerSnapshot, error)
	CustomerByNationalID(ctx context.Context, nationalID string) (*CustomerSnapshot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	// CountConflicts evaluates one overlap probe: blocking bookings on the
	// property at (date, any of shifts) in any of the given statuses.
	CountConflicts(ctx context.Context, propertyID uuid.UUID, date time.Time, shifts []booking.Shift, statuses []booking.Status) (int64, error)
}

// Minimal snapshots for command read operations
type PropertySnapshot struct {
	ID             uuid.UUID
	Name           string
	Capacity       int
	AdvancePercent int
}

type CustomerSnapshot struct {
	ID         uuid.UUID
	Name       string
	NationalID string
	Phone      string
}

type BookingSnapshot struct {
	ID           uuid.UUID
	Reference    string
	PropertyID   uuid.UUID
	CustomerID   uuid.UUID
	BookingDate  time.Time
	Shift        booking.Shift
	Status       booking.Status
	Source       booking.Source
	TotalCents   int64
	AdvanceCents int64
	PaymentRef   *string
	Reason       *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// StatusUpdate is a guarded single-row transition: the row is updated
// only while its status is still one of From.
type StatusUpdate struct {
	ID              uuid.UUID
	From            []booking.Status
	To              booking.Status
	PaymentRef      *string
	Reason          *string
	ClearPaymentRef bool
	Now             time.Time
}

type BookingRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, dbtx db.DBTX, upd StatusUpdate) (int64, error)
	// ExpireStale flips every booking in one of the given statuses created
	// at or before cutoff to Expired, returning the affected IDs.
	ExpireStale(ctx context.Context, dbtx db.DBTX, statuses []booking.Status, cutoff, now time.Time) ([]uuid.UUID, error)
}

type CustomerRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, c *customer.Customer) (uuid.UUID, error)
}
