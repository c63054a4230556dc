//go:build unit || e2e

package builder

import (
	"time"

	dombooking "hutbook/internal/domain/booking"
	reqdto "hutbook/internal/handler/dto/request"
	"hutbook/internal/usecase/commands"
	"hutbook/internal/usecase/queries"
	"hutbook/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID             uuid.UUID
	PropertyID     uuid.UUID
	PropertyName   string
	CustomerID     uuid.UUID
	CustomerName   string
	NationalID     string
	Phone          string
	Date           time.Time
	Shift          dombooking.Shift
	Status         dombooking.Status
	Source         dombooking.Source
	TotalCents     int64
	AdvancePercent int
	PaymentRef     *string
	Reason         *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		ID:             uuid.New(),
		PropertyID:     uuid.New(),
		PropertyName:   "Sunset Farmhouse",
		CustomerID:     uuid.New(),
		CustomerName:   "Ahmed Khan",
		NationalID:     "3520212345671",
		Phone:          "+923001234567",
		Date:           time.Date(2026, 2, 13, 0, 0, 0, 0, time.UTC),
		Shift:          dombooking.ShiftDay,
		Status:         dombooking.StatusPending,
		Source:         dombooking.SourceWeb,
		TotalCents:     500000,
		AdvancePercent: 30,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	return dombooking.NewBooking(
		b.CreatedAt,
		b.PropertyID, b.CustomerID,
		b.CustomerName,
		b.Date,
		b.Shift,
		b.Source,
		dombooking.NewMoney(b.TotalCents),
		b.AdvancePercent,
	)
}

func (b *BookingBuilder) BuildSnapshot() *shared.BookingSnapshot {
	advance, _ := dombooking.NewMoney(b.TotalCents).SplitAdvance(b.AdvancePercent)
	return &shared.BookingSnapshot{
		ID:           b.ID,
		Reference:    dombooking.NewReference(b.CustomerName, b.Date, b.Shift).String(),
		PropertyID:   b.PropertyID,
		CustomerID:   b.CustomerID,
		BookingDate:  b.Date,
		Shift:        b.Shift,
		Status:       b.Status,
		Source:       b.Source,
		TotalCents:   b.TotalCents,
		AdvanceCents: advance.Cents(),
		PaymentRef:   b.PaymentRef,
		Reason:       b.Reason,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	snap := b.BuildSnapshot()
	return &queries.BookingView{
		ID:             snap.ID,
		Reference:      snap.Reference,
		PropertyID:     snap.PropertyID,
		PropertyName:   b.PropertyName,
		CustomerID:     snap.CustomerID,
		CustomerName:   b.CustomerName,
		BookingDate:    snap.BookingDate,
		Shift:          string(snap.Shift),
		Status:         string(snap.Status),
		Source:         string(snap.Source),
		TotalCents:     snap.TotalCents,
		AdvanceCents:   snap.AdvanceCents,
		RemainingCents: snap.TotalCents - snap.AdvanceCents,
		PaymentRef:     snap.PaymentRef,
		Reason:         snap.Reason,
		CreatedAt:      snap.CreatedAt,
		UpdatedAt:      snap.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildCreateInput() commands.CreateBookingInput {
	return commands.CreateBookingInput{
		PropertyID:   b.PropertyID,
		CustomerName: b.CustomerName,
		NationalID:   b.NationalID,
		Phone:        b.Phone,
		Date:         b.Date,
		Shift:        string(b.Shift),
		Source:       string(b.Source),
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		PropertyID:   b.PropertyID,
		CustomerName: b.CustomerName,
		NationalID:   b.NationalID,
		Phone:        b.Phone,
		Date:         b.Date.Format("2006-01-02"),
		Shift:        string(b.Shift),
		Source:       string(b.Source),
	}
}

func (b *BookingBuilder) BuildPropertySnapshot() *shared.PropertySnapshot {
	return &shared.PropertySnapshot{
		ID:             b.PropertyID,
		Name:           b.PropertyName,
		Capacity:       12,
		AdvancePercent: b.AdvancePercent,
	}
}

func (b *BookingBuilder) BuildCustomerSnapshot() *shared.CustomerSnapshot {
	return &shared.CustomerSnapshot{
		ID:         b.CustomerID,
		Name:       b.CustomerName,
		NationalID: b.NationalID,
		Phone:      b.Phone,
	}
}
