// Package rates holds the EUR-quoted rate model and the rebasing, filtering
// and amount-conversion algorithms on top of it.
package rates

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finbound/forex/pkg/currency"
	"github.com/finbound/forex/pkg/support"
)

// BaseCurrency is the base every feed payload is quoted against.
const BaseCurrency = "EUR"

// Rate is one EUR quote: one euro buys Value units of Currency.
type Rate struct {
	Currency string          `json:"currency"`
	Value    decimal.Decimal `json:"rate"`
}

// DailyRates is the rate set of one calendar day expressed against Base.
type DailyRates struct {
	Date  time.Time                  `json:"date"`
	Base  string                     `json:"base"`
	Rates map[string]decimal.Decimal `json:"rates"`
}

// Payload is an ordered sequence of daily rate sets, most recent first.
type Payload []DailyRates

// Day returns the rate set for the given calendar date, if present.
func (p Payload) Day(date time.Time) (DailyRates, bool) {
	want := support.Midnight(date)
	for _, d := range p {
		if support.Midnight(d.Date).Equal(want) {
			return d, true
		}
	}
	return DailyRates{}, false
}

// Between returns the subsequence whose dates fall inside [from, to],
// keeping the payload's most-recent-first order.
func (p Payload) Between(from, to time.Time) Payload {
	lo, hi := support.Midnight(from), support.Midnight(to)
	var out Payload
	for _, d := range p {
		day := support.Midnight(d.Date)
		if !day.Before(lo) && !day.After(hi) {
			out = append(out, d)
		}
	}
	return out
}

// WithEUR returns list with the EUR quote synthesized at 1 when the upstream
// feed omitted it. The input order is preserved, EUR first when added.
func WithEUR(list []Rate) []Rate {
	for _, r := range list {
		if strings.EqualFold(r.Currency, BaseCurrency) {
			return list
		}
	}
	out := make([]Rate, 0, len(list)+1)
	out = append(out, Rate{Currency: BaseCurrency, Value: decimal.New(1, 0)})
	return append(out, list...)
}

// FilterSymbols keeps only the rates whose currency is in symbols.
// A nil or empty set keeps everything. Membership is case-insensitive.
func FilterSymbols(list []Rate, symbols []string) []Rate {
	if len(symbols) == 0 {
		return list
	}
	keep := make(map[string]struct{}, len(symbols))
	for _, s := range symbols {
		if c, err := support.NormalizeCode(s); err == nil {
			keep[c] = struct{}{}
		}
	}
	out := make([]Rate, 0, len(list))
	for _, r := range list {
		if _, ok := keep[strings.ToUpper(r.Currency)]; ok {
			out = append(out, r)
		}
	}
	return out
}

// Rebase re-expresses an EUR-quoted rate list against the given base.
//
// EUR returns the list unchanged. A base missing from the registry is an
// error; a registered base missing from the list returns the list unchanged,
// since there is no EUR quote to divide through. Iteration order and the
// original capitalization of the currency codes are preserved, and the base
// itself is pinned to exactly 1.
func Rebase(list []Rate, base string) ([]Rate, error) {
	code, err := support.NormalizeCode(base)
	if err != nil || !currency.Exists(code) {
		return nil, fmt.Errorf("%w: %q", ErrBaseCurrencyNotFound, base)
	}
	if code == BaseCurrency {
		return list, nil
	}

	var baseQuote decimal.Decimal
	found := false
	for _, r := range list {
		if strings.EqualFold(r.Currency, code) {
			baseQuote = r.Value
			found = true
			break
		}
	}
	if !found {
		return list, nil
	}

	out := make([]Rate, len(list))
	for i, r := range list {
		if strings.EqualFold(r.Currency, code) {
			out[i] = Rate{Currency: r.Currency, Value: decimal.New(1, 0)}
			continue
		}
		out[i] = Rate{Currency: r.Currency, Value: r.Value.Div(baseQuote)}
	}
	return out, nil
}

// Map converts a rate list to a code-keyed map using the requested key case.
func Map(list []Rate, keys currency.KeyCase) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(list))
	for _, r := range list {
		code := strings.ToUpper(r.Currency)
		if keys == currency.KeysLower {
			code = strings.ToLower(code)
		}
		out[code] = r.Value
	}
	return out
}

// List converts a daily rate map back to an EUR-quoted list. Ordering is not
// specified; callers that care about order work with lists throughout.
func List(m map[string]decimal.Decimal) []Rate {
	out := make([]Rate, 0, len(m))
	for code, v := range m {
		out = append(out, Rate{Currency: code, Value: v})
	}
	return out
}
