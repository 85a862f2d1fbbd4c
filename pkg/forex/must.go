package forex

import (
	"context"

	"github.com/finbound/forex/pkg/rates"
)

// The Must variants panic instead of returning an error. They suit program
// initialization and scripts; long-running callers want the safe forms.

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// MustLatestRates is LatestRates, panicking on error.
func (s *Service) MustLatestRates(ctx context.Context, opts ...Option) *Rates {
	return must(s.LatestRates(ctx, opts...))
}

// MustLastNinetyDaysRates is LastNinetyDaysRates, panicking on error.
func (s *Service) MustLastNinetyDaysRates(ctx context.Context, opts ...Option) []*Rates {
	return must(s.LastNinetyDaysRates(ctx, opts...))
}

// MustHistoricRates is HistoricRates, panicking on error.
func (s *Service) MustHistoricRates(ctx context.Context, opts ...Option) []*Rates {
	return must(s.HistoricRates(ctx, opts...))
}

// MustHistoricRate is HistoricRate, panicking on error.
func (s *Service) MustHistoricRate(ctx context.Context, date any, opts ...Option) *Rates {
	return must(s.HistoricRate(ctx, date, opts...))
}

// MustHistoricRatesBetween is HistoricRatesBetween, panicking on error.
func (s *Service) MustHistoricRatesBetween(ctx context.Context, from, to any, opts ...Option) []*Rates {
	return must(s.HistoricRatesBetween(ctx, from, to, opts...))
}

// MustExchange is Exchange, panicking on error.
func (s *Service) MustExchange(ctx context.Context, amount rates.Amount, from, to string, opts ...Option) Value {
	return must(s.Exchange(ctx, amount, from, to, opts...))
}

// MustExchangeHistoric is ExchangeHistoric, panicking on error.
func (s *Service) MustExchangeHistoric(ctx context.Context, amount rates.Amount, from, to string, date any, opts ...Option) Value {
	return must(s.ExchangeHistoric(ctx, amount, from, to, date, opts...))
}
