package readstore

import "hutbook/internal/domain/booking"

func shiftStrings(shifts []booking.Shift) []string {
	out := make([]string, len(shifts))
	for i, s := range shifts {
		out[i] = string(s)
	}
	return out
}

func statusStrings(statuses []booking.Status) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
