package forex

import "errors"

var (
	// ErrInvalidOptions is returned when a query's options fail
	// validation (unknown format, round out of range).
	ErrInvalidOptions = errors.New("invalid options")

	// ErrDateNotFound is returned when the historic series has no rate
	// set for a requested calendar date.
	ErrDateNotFound = errors.New("rate not found for date")

	// ErrEmptyPayload is returned when a feed produced no daily rate
	// sets; the payload contract requires at least one.
	ErrEmptyPayload = errors.New("empty rates payload")
)
