//go:build unit

package booking_test

import (
	"testing"
	"time"

	"hutbook/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var thursday = time.Date(2026, 2, 13, 0, 0, 0, 0, time.UTC)

func probeFor(t *testing.T, probes []booking.Probe, date time.Time) []booking.Shift {
	t.Helper()
	for _, p := range probes {
		if p.Date.Equal(date) {
			return p.Shifts
		}
	}
	return nil
}

func TestConflictProbes(t *testing.T) {
	prev := thursday.AddDate(0, 0, -1)
	next := thursday.AddDate(0, 0, 1)

	testCases := []struct {
		name      string
		shift     booking.Shift
		sameDate  []booking.Shift
		prevDate  []booking.Shift
		nextDate  []booking.Shift
	}{
		{
			name:     "day conflicts with day and full day, plus previous full night",
			shift:    booking.ShiftDay,
			sameDate: []booking.Shift{booking.ShiftDay, booking.ShiftFullDay},
			prevDate: []booking.Shift{booking.ShiftFullNight},
		},
		{
			name:     "night conflicts only on the same date",
			shift:    booking.ShiftNight,
			sameDate: []booking.Shift{booking.ShiftNight, booking.ShiftFullDay, booking.ShiftFullNight},
		},
		{
			name:     "full day conflicts with everything same date plus previous full night",
			shift:    booking.ShiftFullDay,
			sameDate: []booking.Shift{booking.ShiftDay, booking.ShiftNight, booking.ShiftFullDay, booking.ShiftFullNight},
			prevDate: []booking.Shift{booking.ShiftFullNight},
		},
		{
			name:     "full night spans into the next date",
			shift:    booking.ShiftFullNight,
			sameDate: []booking.Shift{booking.ShiftNight, booking.ShiftFullDay, booking.ShiftFullNight},
			nextDate: []booking.Shift{booking.ShiftDay, booking.ShiftFullDay, booking.ShiftFullNight},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			probes, err := booking.ConflictProbes(thursday, tc.shift)
			require.NoError(t, err)

			assert.ElementsMatch(t, tc.sameDate, probeFor(t, probes, thursday))
			assert.ElementsMatch(t, tc.prevDate, probeFor(t, probes, prev))
			assert.ElementsMatch(t, tc.nextDate, probeFor(t, probes, next))
		})
	}

	t.Run("unknown shift fails closed", func(t *testing.T) {
		_, err := booking.ConflictProbes(thursday, booking.Shift("brunch"))
		assert.ErrorIs(t, err, booking.ErrInvalidShift)
	})

	t.Run("time of day is stripped from probe dates", func(t *testing.T) {
		probes, err := booking.ConflictProbes(thursday.Add(17*time.Hour+30*time.Minute), booking.ShiftNight)
		require.NoError(t, err)
		require.Len(t, probes, 1)
		assert.Equal(t, thursday, probes[0].Date)
	})
}

// The probe table must agree with the half-day window expansion: a
// requested shift probes exactly the (date, shift) pairs whose occupied
// windows intersect its own.
func TestConflictProbes_MatchesOccupiedWindows(t *testing.T) {
	shifts := []booking.Shift{booking.ShiftDay, booking.ShiftNight, booking.ShiftFullDay, booking.ShiftFullNight}
	offsets := []int{-2, -1, 0, 1, 2}

	for _, requested := range shifts {
		probes, err := booking.ConflictProbes(thursday, requested)
		require.NoError(t, err)
		requestedWindows := requested.Occupies(thursday)

		for _, existing := range shifts {
			for _, offset := range offsets {
				existingDate := thursday.AddDate(0, 0, offset)
				intersects := windowsIntersect(requestedWindows, existing.Occupies(existingDate))
				probed := probesCover(probes, existingDate, existing)

				assert.Equalf(t, intersects, probed,
					"requested %s vs existing %s at offset %+d", requested, existing, offset)
			}
		}
	}
}

func windowsIntersect(a, b []booking.HalfDay) bool {
	for _, wa := range a {
		for _, wb := range b {
			if wa.Date.Equal(wb.Date) && wa.Night == wb.Night {
				return true
			}
		}
	}
	return false
}

func probesCover(probes []booking.Probe, date time.Time, shift booking.Shift) bool {
	for _, p := range probes {
		if !p.Date.Equal(date) {
			continue
		}
		for _, s := range p.Shifts {
			if s == shift {
				return true
			}
		}
	}
	return false
}

func TestOverlapPolicy_BlockingStatuses(t *testing.T) {
	t.Run("waiting does not block by default", func(t *testing.T) {
		blocking := booking.OverlapPolicy{}.BlockingStatuses()
		assert.ElementsMatch(t, []booking.Status{booking.StatusPending, booking.StatusConfirmed}, blocking)
	})

	t.Run("waiting blocks when the policy says so", func(t *testing.T) {
		blocking := booking.OverlapPolicy{WaitingBlocks: true}.BlockingStatuses()
		assert.ElementsMatch(t, []booking.Status{booking.StatusPending, booking.StatusConfirmed, booking.StatusWaiting}, blocking)
	})

	t.Run("cancelled and expired never block", func(t *testing.T) {
		for _, policy := range []booking.OverlapPolicy{{}, {WaitingBlocks: true}} {
			assert.NotContains(t, policy.BlockingStatuses(), booking.StatusCancelled)
			assert.NotContains(t, policy.BlockingStatuses(), booking.StatusExpired)
		}
	})
}
