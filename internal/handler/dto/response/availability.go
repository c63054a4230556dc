package response

import (
	"hutbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type AvailabilityResponse struct {
	PropertyID uuid.UUID `json:"property_id"`
	Date       string    `json:"date"`
	Shift      string    `json:"shift"`
	Available  bool      `json:"available"`
}

type PropertyQuoteResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Location       string    `json:"location"`
	Capacity       int       `json:"capacity"`
	TotalCents     int64     `json:"total_cents"`
	AdvanceCents   int64     `json:"advance_cents"`
	RemainingCents int64     `json:"remaining_cents"`
}

func FromPropertyQuote(q queries.PropertyQuote) PropertyQuoteResponse {
	return PropertyQuoteResponse{
		ID:             q.ID,
		Name:           q.Name,
		Location:       q.Location,
		Capacity:       q.Capacity,
		TotalCents:     q.TotalCents,
		AdvanceCents:   q.AdvanceCents,
		RemainingCents: q.RemainingCents,
	}
}
