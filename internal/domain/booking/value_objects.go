package booking

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func NewMoneyFromInt64(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errors.New("money cannot be negative")
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Sub(other Money) Money {
	return Money{cents: m.cents - other.cents}
}

// SplitAdvance cuts the total into the upfront advance and the remainder
// due on arrival. The advance rounds down to a whole cent.
func (m Money) SplitAdvance(percent int) (advance, remaining Money) {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	advance = Money{cents: m.cents * int64(percent) / 100}
	remaining = Money{cents: m.cents - advance.cents}
	return advance, remaining
}

// Reference is the human-readable booking label shown in chat:
// "customer-name-2026-02-13-day". It carries no uniqueness guarantee;
// the surrogate UUID is the real key.
type Reference struct {
	value string
}

func NewReference(customerName string, date time.Time, shift Shift) Reference {
	slug := strings.ToLower(strings.TrimSpace(customerName))
	slug = strings.Join(strings.Fields(slug), "-")
	return Reference{value: fmt.Sprintf("%s-%s-%s", slug, NormalizeDate(date).Format("2006-01-02"), shift)}
}

func ReconstructReference(value string) Reference {
	return Reference{value: value}
}

func (r Reference) String() string {
	return r.value
}
