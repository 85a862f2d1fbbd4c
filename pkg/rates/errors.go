package rates

import "errors"

var (
	// ErrBaseCurrencyNotFound is returned when a rebase target is not in
	// the currency registry.
	ErrBaseCurrencyNotFound = errors.New("base currency not found")

	// ErrInvalidCurrency is returned when a conversion names an unknown
	// or malformed currency code.
	ErrInvalidCurrency = errors.New("invalid currency")

	// ErrInvalidExchange is returned when an exchange is called with a
	// malformed amount.
	ErrInvalidExchange = errors.New("invalid exchange")

	// ErrRateNotFound is returned when a rate set has no quote for a
	// currency involved in a conversion.
	ErrRateNotFound = errors.New("rate not found")
)
