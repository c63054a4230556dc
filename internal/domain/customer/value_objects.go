package customer

import (
	"errors"
	"regexp"
)

var ErrInvalidNationalID = errors.New("national ID must be exactly 13 digits")

// 13-digit CNIC-style identifier, digits only
var nationalIDPattern = regexp.MustCompile(`^\d{13}$`)

type NationalID struct {
	value string
}

func NewNationalID(value string) (NationalID, error) {
	if !nationalIDPattern.MatchString(value) {
		return NationalID{}, ErrInvalidNationalID
	}
	return NationalID{value: value}, nil
}

func ReconstructNationalID(value string) NationalID {
	return NationalID{value: value}
}

func (n NationalID) String() string {
	return n.value
}

func (n NationalID) IsZero() bool {
	return n.value == ""
}
