package request

import (
	"time"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type CreateBookingRequest struct {
	PropertyID   uuid.UUID  `json:"property_id" binding:"required"`
	CustomerID   *uuid.UUID `json:"customer_id"`
	CustomerName string     `json:"customer_name"`
	NationalID   string     `json:"national_id"`
	Phone        string     `json:"phone"`
	Date         string     `json:"date" binding:"required"`
	Shift        string     `json:"shift" binding:"required"`
	Source       string     `json:"source" binding:"required"`
}

func (r *CreateBookingRequest) ParseDate() (time.Time, error) {
	return time.Parse(dateLayout, r.Date)
}

type PaymentEvidenceRequest struct {
	EvidenceRef string `json:"evidence_ref" binding:"required"`
}

type RejectBookingRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type CancelBookingRequest struct {
	Reason *string `json:"reason"`
}
