// Package forex is the public face of the library: queries over the ECB
// reference rates backed by the supervised fetcher and its cache.
package forex

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	infracache "github.com/finbound/forex/infra/cache"
	infrafeed "github.com/finbound/forex/infra/feed"
	"github.com/finbound/forex/pkg/cache"
	"github.com/finbound/forex/pkg/config"
	"github.com/finbound/forex/pkg/currency"
	"github.com/finbound/forex/pkg/feed"
	"github.com/finbound/forex/pkg/fetcher"
	"github.com/finbound/forex/pkg/jsonenc"
	"github.com/finbound/forex/pkg/rates"
	"github.com/finbound/forex/pkg/supervisor"
	"github.com/finbound/forex/pkg/support"
)

const ratesBase = rates.BaseCurrency

// Service answers rate queries. Construct one per process; it owns its
// fetcher and cache.
type Service struct {
	cfg    *config.App
	store  cache.Cache
	feeds  *feed.Service
	sup    *supervisor.Supervisor
	logger *slog.Logger
}

// New wires a service from configuration: cache backend, feed adapters,
// fetcher and supervisor.
func New(cfg *config.App, logger *slog.Logger) (*Service, error) {
	if logger == nil {
		logger = slog.Default()
	}

	store, err := newCacheBackend(cfg.Cache)
	if err != nil {
		return nil, err
	}
	downloader := infrafeed.NewHTTP(cfg.Feed.BaseURL, cfg.Feed.HTTPTimeout, logger)
	feeds := feed.NewService(downloader, infrafeed.NewXML(), logger)

	return NewWithDeps(cfg, store, feeds, logger)
}

// NewWithDeps wires a service from explicit collaborators; tests use it to
// inject fixture feeds and scratch caches.
func NewWithDeps(cfg *config.App, store cache.Cache, feeds *feed.Service, logger *slog.Logger) (*Service, error) {
	if logger == nil {
		logger = slog.Default()
	}

	factory := func(fc fetcher.Config) (*fetcher.Fetcher, error) {
		return fetcher.New(fc, store, feeds, logger)
	}
	sup, err := supervisor.New(factory, supervisor.Options{
		AutoStart: cfg.Supervisor.AutoStart,
		Fetcher: fetcher.Config{
			UseCache: cfg.Fetcher.UseCache,
			Interval: cfg.Fetcher.Interval,
		},
	}, logger)
	if err != nil {
		return nil, err
	}

	return &Service{cfg: cfg, store: store, feeds: feeds, sup: sup, logger: logger}, nil
}

// newCacheBackend builds the configured cache backend. Unknown names fall
// back to the in-memory backend.
func newCacheBackend(cfg config.Cache) (cache.Cache, error) {
	switch cfg.Backend {
	case "file":
		codec, err := jsonenc.New(cfg.JSONCodec)
		if err != nil {
			return nil, err
		}
		path := cfg.FilePath
		if path == "" {
			path = config.DefaultCachePath()
		}
		return infracache.NewFile(path, codec), nil
	default:
		return infracache.NewMemory(), nil
	}
}

// Supervisor exposes the fetcher lifecycle.
func (s *Service) Supervisor() *supervisor.Supervisor { return s.sup }

// Close stops the supervisor and its fetcher.
func (s *Service) Close() error { return s.sup.Stop() }

// LatestRates returns today's rate set.
func (s *Service) LatestRates(ctx context.Context, opts ...Option) (*Rates, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	payload, err := s.payload(ctx, cache.KeyLatest, o)
	if err != nil {
		return nil, err
	}
	return s.build(payload[0], o)
}

// LastNinetyDaysRates returns the rolling 90-day series, most recent first.
func (s *Service) LastNinetyDaysRates(ctx context.Context, opts ...Option) ([]*Rates, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	payload, err := s.payload(ctx, cache.KeyNinetyDays, o)
	if err != nil {
		return nil, err
	}
	return s.buildAll(payload, o)
}

// HistoricRates returns the full series since 1999-01-04, most recent first.
func (s *Service) HistoricRates(ctx context.Context, opts ...Option) ([]*Rates, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	payload, err := s.payload(ctx, cache.KeyHistoric, o)
	if err != nil {
		return nil, err
	}
	return s.buildAll(payload, o)
}

// HistoricRate returns the rate set of one past calendar date. The date may
// be an ISO string, an RFC 3339 datetime, a time.Time or a support.YMD.
func (s *Service) HistoricRate(ctx context.Context, date any, opts ...Option) (*Rates, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	day, err := support.ParseDate(date)
	if err != nil {
		return nil, err
	}
	payload, err := s.payload(ctx, cache.KeyHistoric, o)
	if err != nil {
		return nil, err
	}
	set, ok := payload.Day(day)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrDateNotFound, support.FormatDate(day))
	}
	return s.build(set, o)
}

// HistoricRatesBetween returns the historic subsequence inside [from, to].
// Bounds given in either order are normalized.
func (s *Service) HistoricRatesBetween(ctx context.Context, from, to any, opts ...Option) ([]*Rates, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	lo, err := support.ParseDate(from)
	if err != nil {
		return nil, err
	}
	hi, err := support.ParseDate(to)
	if err != nil {
		return nil, err
	}
	if lo.After(hi) {
		lo, hi = hi, lo
	}
	payload, err := s.payload(ctx, cache.KeyHistoric, o)
	if err != nil {
		return nil, err
	}
	return s.buildAll(payload.Between(lo, hi), o)
}

// Exchange converts an amount between two currencies at today's rates.
// Amount may be an int, float64, decimal.Decimal or numeric string.
func (s *Service) Exchange(ctx context.Context, amount rates.Amount, from, to string, opts ...Option) (Value, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return Value{}, err
	}
	payload, err := s.payload(ctx, cache.KeyLatest, o)
	if err != nil {
		return Value{}, err
	}
	return exchangeAt(payload[0], amount, from, to, o)
}

// ExchangeHistoric converts an amount at the rates of a past calendar date.
func (s *Service) ExchangeHistoric(ctx context.Context, amount rates.Amount, from, to string, date any, opts ...Option) (Value, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return Value{}, err
	}
	day, err := support.ParseDate(date)
	if err != nil {
		return Value{}, err
	}
	payload, err := s.payload(ctx, cache.KeyHistoric, o)
	if err != nil {
		return Value{}, err
	}
	set, ok := payload.Day(day)
	if !ok {
		return Value{}, fmt.Errorf("%w: %s", ErrDateNotFound, support.FormatDate(day))
	}
	return exchangeAt(set, amount, from, to, o)
}

// Currencies returns the full currency registry.
func (s *Service) Currencies(keys currency.KeyCase) map[string]currency.Currency {
	return currency.All(keys)
}

// AvailableCurrencies returns the currencies of today's feed.
func (s *Service) AvailableCurrencies(keys currency.KeyCase) map[string]currency.Currency {
	return currency.Available(keys)
}

// DisabledCurrencies returns the historic-only currencies.
func (s *Service) DisabledCurrencies(keys currency.KeyCase) map[string]currency.Currency {
	return currency.Disabled(keys)
}

// payload obtains one feed's payload, honoring the per-call cache and feed
// overrides. The result is guaranteed non-empty.
func (s *Service) payload(ctx context.Context, key cache.Key, o options) (rates.Payload, error) {
	payload, err := s.fetchPayload(ctx, key, o)
	if err != nil {
		return nil, err
	}
	if len(payload) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyPayload, key.String())
	}
	return payload, nil
}

func (s *Service) fetchPayload(ctx context.Context, key cache.Key, o options) (rates.Payload, error) {
	resolver := s.resolverFor(key, o)

	if !o.UseCache {
		// Bypass: never read, never write.
		return resolver.ResolveRates(ctx)
	}
	if o.FeedFn == nil && s.sup.FetcherRunning() {
		if f := s.sup.Fetcher(); f != nil {
			return f.Get(ctx, key)
		}
	}
	if s.store.Initialized() {
		return s.store.Resolve(ctx, key, resolver, s.interval())
	}
	return resolver.ResolveRates(ctx)
}

func (s *Service) resolverFor(key cache.Key, o options) cache.Resolver {
	if o.FeedFn != nil {
		return o.FeedFn
	}
	kind := feed.KindLatest
	switch key {
	case cache.KeyNinetyDays:
		kind = feed.KindNinetyDays
	case cache.KeyHistoric:
		kind = feed.KindHistoric
	}
	return feed.Call{Service: s.feeds, Kind: kind}
}

func (s *Service) interval() time.Duration {
	if s.cfg.Fetcher.Interval > 0 {
		return s.cfg.Fetcher.Interval
	}
	return fetcher.DefaultInterval
}

// build runs one daily set through the query pipeline: symbol filter, then
// rebase, then rounding and key-casing.
func (s *Service) build(day rates.DailyRates, o options) (*Rates, error) {
	list := rates.List(day.Rates)
	list = rates.FilterSymbols(list, o.Symbols)
	list, err := rates.Rebase(list, o.Base)
	if err != nil {
		return nil, err
	}

	base, _ := support.NormalizeCode(o.Base)
	return &Rates{
		Date:   support.Midnight(day.Date),
		Base:   base,
		Rates:  support.RoundAll(rates.Map(list, o.Keys), o.Round),
		format: o.Format,
		round:  o.Round,
	}, nil
}

func (s *Service) buildAll(payload rates.Payload, o options) ([]*Rates, error) {
	out := make([]*Rates, 0, len(payload))
	for _, day := range payload {
		r, err := s.build(day, o)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func exchangeAt(day rates.DailyRates, amount rates.Amount, from, to string, o options) (Value, error) {
	result, err := rates.Exchange(rates.List(day.Rates), amount, from, to)
	if err != nil {
		return Value{}, err
	}
	return Value{Decimal: support.Round(result, o.Round), format: o.Format, round: o.Round}, nil
}
