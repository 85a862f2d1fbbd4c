package support

import (
	"github.com/shopspring/decimal"
)

// NoRounding disables rounding when passed as the places argument.
const NoRounding = -1

func init() {
	// Rate rebasing divides and re-divides through the base quote; the
	// default division precision of 16 digits is not enough to keep a
	// double rebase stable at 15 requested places.
	if decimal.DivisionPrecision < 24 {
		decimal.DivisionPrecision = 24
	}
}

// Round rounds d half-up to the given number of decimal places. NoRounding
// returns d unchanged.
func Round(d decimal.Decimal, places int) decimal.Decimal {
	if places == NoRounding {
		return d
	}
	return d.Round(int32(places))
}

// RoundAll applies Round to every value of the map, returning a new map.
func RoundAll(values map[string]decimal.Decimal, places int) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(values))
	for code, v := range values {
		out[code] = Round(v, places)
	}
	return out
}
