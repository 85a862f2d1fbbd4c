package forex

import (
	"time"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"github.com/finbound/forex/pkg/support"
)

// Rates is one day's rate set as exposed to callers: rebased, filtered,
// rounded and carrying the representation chosen by the format and round
// options.
type Rates struct {
	Date  time.Time                  `json:"-"`
	Base  string                     `json:"-"`
	Rates map[string]decimal.Decimal `json:"-"`

	format Format
	round  int
}

// Strings renders every value at the scale the call's rounding asked for: a
// set rounded to two places renders "1.00", not "1".
func (r *Rates) Strings() map[string]string {
	out := make(map[string]string, len(r.Rates))
	for code, v := range r.Rates {
		out[code] = renderString(v, r.round)
	}
	return out
}

// MarshalJSON renders the set with its format option: decimal values become
// JSON numbers, string values quoted decimal strings.
func (r *Rates) MarshalJSON() ([]byte, error) {
	doc := struct {
		Date  string         `json:"date"`
		Base  string         `json:"base"`
		Rates map[string]any `json:"rates"`
	}{
		Date:  support.FormatDate(r.Date),
		Base:  r.Base,
		Rates: make(map[string]any, len(r.Rates)),
	}
	for code, v := range r.Rates {
		doc.Rates[code] = renderValue(v, r.format, r.round)
	}
	return json.Marshal(doc)
}

// Value is a single converted amount carrying its format and round options.
type Value struct {
	Decimal decimal.Decimal

	format Format
	round  int
}

// String renders the amount at the requested scale.
func (v Value) String() string { return renderString(v.Decimal, v.round) }

// MarshalJSON renders the amount per its format option.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(renderValue(v.Decimal, v.format, v.round))
}

// renderString keeps the requested number of fractional digits, padding with
// zeros where the decimal's own form is shorter. NoRounding keeps the
// canonical form.
func renderString(d decimal.Decimal, round int) string {
	if round == NoRounding {
		return d.String()
	}
	return d.StringFixed(int32(round))
}

func renderValue(d decimal.Decimal, format Format, round int) any {
	s := renderString(d, round)
	if format == FormatString {
		return s
	}
	return json.RawMessage(s)
}
