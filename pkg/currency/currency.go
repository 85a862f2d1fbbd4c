// Package currency is the static registry of currencies the ECB reference
// feeds have ever quoted. Enabled entries appear in today's feed; disabled
// entries only show up in the historic series.
package currency

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/finbound/forex/pkg/support"
)

// ErrNotFound is returned when a currency code is not in the registry.
var ErrNotFound = errors.New("currency not found")

// KeyCase selects how registry and rate maps are keyed.
type KeyCase int

const (
	// KeysUpper keys maps by the upper-case ISO code, e.g. "USD".
	KeysUpper KeyCase = iota
	// KeysLower keys maps by the lower-cased ISO code, e.g. "usd".
	KeysLower
)

// Currency describes one entry of the registry.
type Currency struct {
	Name        string          `json:"name"`
	ISOAlpha    string          `json:"iso_alpha"`
	ISONumeric  string          `json:"iso_numeric"`
	Symbol      string          `json:"symbol"`
	Subunit     decimal.Decimal `json:"subunit"`
	SubunitName string          `json:"subunit_name"`
	AltNames    []string        `json:"alt_names,omitempty"`
	AltSymbols  []string        `json:"alt_symbols,omitempty"`
	Enabled     bool            `json:"enabled"`
}

// All returns every registered currency keyed per keys.
func All(keys KeyCase) map[string]Currency {
	return collect(keys, func(Currency) bool { return true })
}

// Available returns the currencies present in today's feed.
func Available(keys KeyCase) map[string]Currency {
	return collect(keys, func(c Currency) bool { return c.Enabled })
}

// Disabled returns the currencies that only appear in the historic series.
func Disabled(keys KeyCase) map[string]Currency {
	return collect(keys, func(c Currency) bool { return !c.Enabled })
}

// Get looks up a currency by code. Lookup is case-insensitive; malformed
// codes report not found rather than failing.
func Get(code string) (Currency, bool) {
	c, err := support.NormalizeCode(code)
	if err != nil {
		return Currency{}, false
	}
	cur, ok := table[c]
	return cur, ok
}

// GetOrFail is Get with an error for absent or malformed codes.
func GetOrFail(code string) (Currency, error) {
	cur, ok := Get(code)
	if !ok {
		return Currency{}, fmt.Errorf("%w: %q", ErrNotFound, code)
	}
	return cur, nil
}

// MustGet is GetOrFail panicking on failure.
func MustGet(code string) Currency {
	cur, err := GetOrFail(code)
	if err != nil {
		panic(err)
	}
	return cur
}

// Exists reports whether code names a registered currency.
func Exists(code string) bool {
	_, ok := Get(code)
	return ok
}

func collect(keys KeyCase, keep func(Currency) bool) map[string]Currency {
	out := make(map[string]Currency, len(table))
	for code, cur := range table {
		if !keep(cur) {
			continue
		}
		if keys == KeysLower {
			code = strings.ToLower(code)
		}
		out[code] = cur
	}
	return out
}
