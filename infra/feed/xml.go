package feed

import (
	"encoding/xml"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/finbound/forex/pkg/currency"
	"github.com/finbound/forex/pkg/feed"
	"github.com/finbound/forex/pkg/rates"
	"github.com/finbound/forex/pkg/support"
)

// XML parses the ECB envelope: an outer Cube wrapping per-day Cubes with a
// time attribute, each wrapping per-currency Cubes with currency and rate
// attributes. EUR is never enumerated and is synthesized at 1.
type XML struct{}

// NewXML returns the envelope parser.
func NewXML() *XML { return &XML{} }

type envelope struct {
	XMLName xml.Name `xml:"Envelope"`
	Cube    struct {
		Days []struct {
			Time  string `xml:"time,attr"`
			Rates []struct {
				Currency string `xml:"currency,attr"`
				Rate     string `xml:"rate,attr"`
			} `xml:"Cube"`
		} `xml:"Cube"`
	} `xml:"Cube"`
}

// Parse decodes one feed body into its payload, most recent day first as
// published. Malformed dates or rate strings fail the whole parse; silently
// dropping bad upstream data would hide feed corruption.
func (p *XML) Parse(body []byte) (rates.Payload, error) {
	var env envelope
	if err := xml.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}
	if len(env.Cube.Days) == 0 {
		return nil, fmt.Errorf("empty feed envelope")
	}

	payload := make(rates.Payload, 0, len(env.Cube.Days))
	for _, day := range env.Cube.Days {
		date, err := support.ParseDate(day.Time)
		if err != nil {
			return nil, fmt.Errorf("day %q: %w", day.Time, err)
		}

		list := make([]rates.Rate, 0, len(day.Rates)+1)
		for _, r := range day.Rates {
			code, err := support.NormalizeCode(r.Currency)
			if err != nil {
				return nil, fmt.Errorf("day %s: %w", day.Time, err)
			}
			value, err := decimal.NewFromString(r.Rate)
			if err != nil {
				return nil, fmt.Errorf("day %s: rate %q for %s: %w", day.Time, r.Rate, code, err)
			}
			list = append(list, rates.Rate{Currency: code, Value: value})
		}

		payload = append(payload, rates.DailyRates{
			Date:  date,
			Base:  rates.BaseCurrency,
			Rates: rates.Map(rates.WithEUR(list), currency.KeysUpper),
		})
	}
	return payload, nil
}

var _ feed.Parser = (*XML)(nil)
