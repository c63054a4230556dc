package request

import "time"

type AvailabilityQuery struct {
	PropertyID string `form:"property_id" binding:"required"`
	Date       string `form:"date" binding:"required"`
	Shift      string `form:"shift" binding:"required"`
}

func (q *AvailabilityQuery) ParseDate() (time.Time, error) {
	return time.Parse(dateLayout, q.Date)
}

type PropertySearchQuery struct {
	Guests int    `form:"guests" binding:"required,min=1"`
	Date   string `form:"date" binding:"required"`
	Shift  string `form:"shift" binding:"required"`
}

func (q *PropertySearchQuery) ParseDate() (time.Time, error) {
	return time.Parse(dateLayout, q.Date)
}
