package support

import "errors"

var (
	// ErrInvalidCode is returned when a currency code is not three letters.
	ErrInvalidCode = errors.New("invalid currency code")

	// ErrInvalidDate is returned when a value cannot be read as an ISO
	// calendar date.
	ErrInvalidDate = errors.New("invalid date")
)
