package rates

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/finbound/forex/pkg/currency"
	"github.com/finbound/forex/pkg/support"
)

// Amount is anything Exchange can read as a number: ints, float64, a
// decimal.Decimal, or a numeric string.
type Amount = any

// Exchange converts amount from one currency into another using an
// EUR-quoted rate list. EUR is synthesized at 1, so either side of the pair
// may be the euro even when the list omits it.
//
// The result is amount * (r_to / r_from), unrounded; callers apply their own
// rounding and formatting.
func Exchange(list []Rate, amount Amount, from, to string) (decimal.Decimal, error) {
	value, err := toDecimal(amount)
	if err != nil {
		return decimal.Decimal{}, err
	}

	fromCode, err := lookupCode(from)
	if err != nil {
		return decimal.Decimal{}, err
	}
	toCode, err := lookupCode(to)
	if err != nil {
		return decimal.Decimal{}, err
	}

	quotes := Map(WithEUR(list), currency.KeysUpper)
	rFrom, ok := quotes[fromCode]
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("%w: %s", ErrRateNotFound, fromCode)
	}
	rTo, ok := quotes[toCode]
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("%w: %s", ErrRateNotFound, toCode)
	}
	if rFrom.IsZero() {
		return decimal.Decimal{}, fmt.Errorf("%w: zero quote for %s", ErrInvalidExchange, fromCode)
	}

	return value.Mul(rTo.Div(rFrom)), nil
}

// MustExchange is Exchange panicking on failure.
func MustExchange(list []Rate, amount Amount, from, to string) decimal.Decimal {
	v, err := Exchange(list, amount, from, to)
	if err != nil {
		panic(err)
	}
	return v
}

func lookupCode(code string) (string, error) {
	c, err := support.NormalizeCode(code)
	if err != nil || !currency.Exists(c) {
		return "", fmt.Errorf("%w: %q", ErrInvalidCurrency, code)
	}
	return c, nil
}

func toDecimal(amount Amount) (decimal.Decimal, error) {
	switch a := amount.(type) {
	case decimal.Decimal:
		return a, nil
	case int:
		return decimal.NewFromInt(int64(a)), nil
	case int32:
		return decimal.NewFromInt32(a), nil
	case int64:
		return decimal.NewFromInt(a), nil
	case float64:
		return decimal.NewFromFloat(a), nil
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(a))
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("%w: amount %q", ErrInvalidExchange, a)
		}
		return d, nil
	default:
		return decimal.Decimal{}, fmt.Errorf("%w: amount of type %T", ErrInvalidExchange, amount)
	}
}
