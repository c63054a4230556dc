package booking

import (
	"errors"
	"time"
)

var (
	ErrInvalidShift  = errors.New("invalid shift")
	ErrInvalidStatus = errors.New("invalid booking status")
	ErrInvalidSource = errors.New("invalid booking source")
)

// Shift is one of the four windows a property can be reserved for.
// Day and Night are atomic half-day windows on the same calendar date.
// FullDay spans Day+Night of one date; FullNight spans Night of date D
// plus Day of date D+1, crossing midnight.
type Shift string

const (
	ShiftDay       Shift = "day"
	ShiftNight     Shift = "night"
	ShiftFullDay   Shift = "full_day"
	ShiftFullNight Shift = "full_night"
)

func ParseShift(s string) (Shift, error) {
	switch Shift(s) {
	case ShiftDay, ShiftNight, ShiftFullDay, ShiftFullNight:
		return Shift(s), nil
	default:
		return "", ErrInvalidShift
	}
}

func (s Shift) String() string {
	return string(s)
}

func (s Shift) IsValid() bool {
	switch s {
	case ShiftDay, ShiftNight, ShiftFullDay, ShiftFullNight:
		return true
	default:
		return false
	}
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusWaiting   Status = "waiting"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusExpired   Status = "expired"
	StatusCompleted Status = "completed"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusWaiting, StatusConfirmed, StatusCancelled, StatusExpired, StatusCompleted:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether no further customer-initiated transition is
// possible from this status.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusCancelled, StatusExpired, StatusCompleted:
		return true
	default:
		return false
	}
}

type Source string

const (
	SourceWhatsApp Source = "whatsapp"
	SourceWeb      Source = "web"
	SourceAdmin    Source = "admin"
)

func ParseSource(s string) (Source, error) {
	switch Source(s) {
	case SourceWhatsApp, SourceWeb, SourceAdmin:
		return Source(s), nil
	default:
		return "", ErrInvalidSource
	}
}

func (s Source) String() string {
	return string(s)
}

func (s Source) IsValid() bool {
	switch s {
	case SourceWhatsApp, SourceWeb, SourceAdmin:
		return true
	default:
		return false
	}
}

// NormalizeDate strips the time-of-day component; booking dates are
// calendar days, always compared in UTC.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
