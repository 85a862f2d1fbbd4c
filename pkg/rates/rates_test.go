package rates

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finbound/forex/pkg/currency"
)

func sampleList() []Rate {
	return []Rate{
		{Currency: "USD", Value: decimal.RequireFromString("1.0772")},
		{Currency: "GBP", Value: decimal.RequireFromString("0.83188")},
		{Currency: "JPY", Value: decimal.RequireFromString("164.18")},
	}
}

func TestWithEUR(t *testing.T) {
	t.Run("synthesized at 1", func(t *testing.T) {
		out := WithEUR(sampleList())
		require.Len(t, out, 4)
		assert.Equal(t, "EUR", out[0].Currency)
		assert.True(t, out[0].Value.Equal(decimal.New(1, 0)))
	})

	t.Run("already present", func(t *testing.T) {
		in := append([]Rate{{Currency: "eur", Value: decimal.New(1, 0)}}, sampleList()...)
		out := WithEUR(in)
		assert.Len(t, out, 4)
	})
}

func TestFilterSymbols(t *testing.T) {
	list := sampleList()

	t.Run("empty keeps all", func(t *testing.T) {
		assert.Len(t, FilterSymbols(list, nil), 3)
		assert.Len(t, FilterSymbols(list, []string{}), 3)
	})

	t.Run("case insensitive", func(t *testing.T) {
		out := FilterSymbols(list, []string{"usd", "Jpy"})
		require.Len(t, out, 2)
		assert.Equal(t, "USD", out[0].Currency)
		assert.Equal(t, "JPY", out[1].Currency)
	})

	t.Run("unknown symbol filters everything", func(t *testing.T) {
		assert.Empty(t, FilterSymbols(list, []string{"XXX"}))
	})
}

func TestRebase(t *testing.T) {
	list := sampleList()

	t.Run("eur is identity", func(t *testing.T) {
		out, err := Rebase(list, "EUR")
		require.NoError(t, err)
		assert.Equal(t, list, out)
	})

	t.Run("base pinned to one", func(t *testing.T) {
		out, err := Rebase(list, "usd")
		require.NoError(t, err)
		require.Len(t, out, 3)
		assert.Equal(t, "USD", out[0].Currency)
		assert.Equal(t, "1", out[0].Value.String())
	})

	t.Run("cross rate", func(t *testing.T) {
		out, err := Rebase(list, "USD")
		require.NoError(t, err)
		// GBP/USD = 0.83188 / 1.0772
		want := decimal.RequireFromString("0.83188").Div(decimal.RequireFromString("1.0772"))
		assert.True(t, out[1].Value.Equal(want))
	})

	t.Run("unknown base", func(t *testing.T) {
		_, err := Rebase(list, "XXX")
		assert.ErrorIs(t, err, ErrBaseCurrencyNotFound)
		_, err = Rebase(list, "not-a-code")
		assert.ErrorIs(t, err, ErrBaseCurrencyNotFound)
	})

	t.Run("registered base missing from list", func(t *testing.T) {
		out, err := Rebase(list, "CHF")
		require.NoError(t, err)
		assert.Equal(t, list, out)
	})

	t.Run("round trip", func(t *testing.T) {
		rebased, err := Rebase(list, "USD")
		require.NoError(t, err)
		// Multiplying by the original USD quote undoes the rebase.
		back := make([]Rate, len(rebased))
		usd := decimal.RequireFromString("1.0772")
		for i, r := range rebased {
			back[i] = Rate{Currency: r.Currency, Value: r.Value.Mul(usd)}
		}
		for i, r := range back {
			diff := r.Value.Sub(list[i].Value).Abs()
			assert.True(t, diff.LessThan(decimal.New(1, -15)),
				"%s drifted by %s", r.Currency, diff)
		}
	})
}

func TestPayloadDay(t *testing.T) {
	p := Payload{
		{Date: time.Date(2024, 11, 8, 0, 0, 0, 0, time.UTC)},
		{Date: time.Date(2024, 11, 7, 0, 0, 0, 0, time.UTC)},
	}

	_, ok := p.Day(time.Date(2024, 11, 7, 15, 30, 0, 0, time.UTC))
	assert.True(t, ok, "intra-day timestamps match on the calendar date")

	_, ok = p.Day(time.Date(2024, 11, 6, 0, 0, 0, 0, time.UTC))
	assert.False(t, ok)
}

func TestPayloadBetween(t *testing.T) {
	p := Payload{
		{Date: time.Date(2024, 11, 8, 0, 0, 0, 0, time.UTC)},
		{Date: time.Date(2024, 11, 7, 0, 0, 0, 0, time.UTC)},
		{Date: time.Date(2024, 11, 6, 0, 0, 0, 0, time.UTC)},
	}

	out := p.Between(
		time.Date(2024, 11, 7, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 11, 8, 0, 0, 0, 0, time.UTC),
	)
	require.Len(t, out, 2)
	assert.Equal(t, 8, out[0].Date.Day(), "order stays most recent first")
	assert.Equal(t, 7, out[1].Date.Day())

	assert.Empty(t, p.Between(
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
	))
}

func TestMapAndList(t *testing.T) {
	m := Map(sampleList(), currency.KeysLower)
	_, ok := m["usd"]
	assert.True(t, ok)

	back := List(map[string]decimal.Decimal{"USD": decimal.New(1, 0)})
	require.Len(t, back, 1)
	assert.Equal(t, "USD", back[0].Currency)
}

func TestExchange(t *testing.T) {
	list := sampleList()

	t.Run("eur to usd", func(t *testing.T) {
		got, err := Exchange(list, 100, "EUR", "USD")
		require.NoError(t, err)
		assert.Equal(t, "107.72", got.String())
	})

	t.Run("usd to eur", func(t *testing.T) {
		got, err := Exchange(list, decimal.RequireFromString("1.0772"), "USD", "EUR")
		require.NoError(t, err)
		diff := got.Sub(decimal.New(1, 0)).Abs()
		assert.True(t, diff.LessThan(decimal.New(1, -15)), "drift %s", diff)
	})

	t.Run("eur to eur", func(t *testing.T) {
		got, err := Exchange(list, "12.5", "EUR", "EUR")
		require.NoError(t, err)
		assert.True(t, got.Equal(decimal.RequireFromString("12.5")))
	})

	t.Run("zero amount", func(t *testing.T) {
		got, err := Exchange(list, 0, "USD", "JPY")
		require.NoError(t, err)
		assert.True(t, got.IsZero())
	})

	t.Run("negative amount negates", func(t *testing.T) {
		pos, err := Exchange(list, 50, "USD", "GBP")
		require.NoError(t, err)
		neg, err := Exchange(list, -50, "USD", "GBP")
		require.NoError(t, err)
		assert.True(t, neg.Equal(pos.Neg()))
	})

	t.Run("round trip near identity", func(t *testing.T) {
		there, err := Exchange(list, 100, "USD", "JPY")
		require.NoError(t, err)
		back, err := Exchange(list, there, "JPY", "USD")
		require.NoError(t, err)
		diff := back.Sub(decimal.NewFromInt(100)).Abs()
		assert.True(t, diff.LessThan(decimal.New(1, -15)), "drift %s", diff)
	})

	t.Run("amount types", func(t *testing.T) {
		for _, amount := range []Amount{
			int(5), int32(5), int64(5), float64(5), "5", decimal.NewFromInt(5),
		} {
			got, err := Exchange(list, amount, "EUR", "EUR")
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.NewFromInt(5)), "amount %T", amount)
		}
	})

	t.Run("bad amount", func(t *testing.T) {
		_, err := Exchange(list, "five", "EUR", "USD")
		assert.ErrorIs(t, err, ErrInvalidExchange)
		_, err = Exchange(list, []int{1}, "EUR", "USD")
		assert.ErrorIs(t, err, ErrInvalidExchange)
	})

	t.Run("unregistered currency", func(t *testing.T) {
		_, err := Exchange(list, 1, "XXX", "USD")
		assert.ErrorIs(t, err, ErrInvalidCurrency)
	})

	t.Run("registered but unquoted", func(t *testing.T) {
		_, err := Exchange(list, 1, "CHF", "USD")
		assert.ErrorIs(t, err, ErrRateNotFound)
	})
}

func TestMustExchange(t *testing.T) {
	assert.NotPanics(t, func() { MustExchange(sampleList(), 1, "EUR", "USD") })
	assert.Panics(t, func() { MustExchange(sampleList(), 1, "XXX", "USD") })
}
