package property

import (
	"hutbook/internal/domain/booking"
)

// FitsGuests applies the capacity rule used by property search. The slack
// admits parties slightly above nominal capacity; day-only groups often
// bring a few extra guests.
func FitsGuests(capacity, guests, slack int) bool {
	if guests <= 0 {
		return true
	}
	return capacity+slack >= guests
}

// PriceQuote is the cost breakdown computed at booking creation from the
// property's weekly rate table and advance percent.
type PriceQuote struct {
	Total     booking.Money
	Advance   booking.Money
	Remaining booking.Money
}

func NewPriceQuote(total booking.Money, advancePercent int) PriceQuote {
	advance, remaining := total.SplitAdvance(advancePercent)
	return PriceQuote{
		Total:     total,
		Advance:   advance,
		Remaining: remaining,
	}
}
