//go:build unit

package property_test

import (
	"testing"

	"hutbook/internal/domain/booking"
	"hutbook/internal/domain/property"

	"github.com/stretchr/testify/assert"
)

func TestFitsGuests(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		guests   int
		slack    int
		want     bool
	}{
		{"well under capacity", 12, 8, 10, true},
		{"exactly at capacity plus slack", 12, 22, 10, true},
		{"one over the slack", 12, 23, 10, false},
		{"zero guests always fits", 12, 0, 10, true},
		{"no slack is a hard cap", 12, 13, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, property.FitsGuests(tc.capacity, tc.guests, tc.slack))
		})
	}
}

func TestNewPriceQuote(t *testing.T) {
	q := property.NewPriceQuote(booking.NewMoney(500000), 30)

	assert.Equal(t, int64(500000), q.Total.Cents())
	assert.Equal(t, int64(150000), q.Advance.Cents())
	assert.Equal(t, int64(350000), q.Remaining.Cents())
}
