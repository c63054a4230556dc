package response

import (
	"time"

	"hutbook/internal/usecase/queries"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

type BookingResponse struct {
	ID             uuid.UUID `json:"id"`
	Reference      string    `json:"reference"`
	PropertyID     uuid.UUID `json:"property_id"`
	PropertyName   string    `json:"property_name"`
	CustomerID     uuid.UUID `json:"customer_id"`
	CustomerName   string    `json:"customer_name"`
	Date           string    `json:"date"`
	Shift          string    `json:"shift"`
	Status         string    `json:"status"`
	Source         string    `json:"source"`
	TotalCents     int64     `json:"total_cents"`
	AdvanceCents   int64     `json:"advance_cents"`
	RemainingCents int64     `json:"remaining_cents"`
	PaymentRef     *string   `json:"payment_ref,omitempty"`
	Reason         *string   `json:"reason,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:             v.ID,
		Reference:      v.Reference,
		PropertyID:     v.PropertyID,
		PropertyName:   v.PropertyName,
		CustomerID:     v.CustomerID,
		CustomerName:   v.CustomerName,
		Date:           v.BookingDate.Format(dateLayout),
		Shift:          v.Shift,
		Status:         v.Status,
		Source:         v.Source,
		TotalCents:     v.TotalCents,
		AdvanceCents:   v.AdvanceCents,
		RemainingCents: v.RemainingCents,
		PaymentRef:     v.PaymentRef,
		Reason:         v.Reason,
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.UpdatedAt,
	}
}

type SweepResponse struct {
	ExpiredCount int         `json:"expired_count"`
	ExpiredIDs   []uuid.UUID `json:"expired_ids"`
}
