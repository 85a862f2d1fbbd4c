package forex

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/finbound/forex/pkg/cache"
	"github.com/finbound/forex/pkg/currency"
	"github.com/finbound/forex/pkg/support"
)

// Format selects how rate values are rendered.
type Format string

const (
	// FormatDecimal renders values as decimals (JSON numbers).
	FormatDecimal Format = "decimal"
	// FormatString renders values as canonical decimal strings.
	FormatString Format = "string"
)

// NoRounding disables rounding for one call.
const NoRounding = support.NoRounding

// DefaultRound is the rounding applied when no round option is given.
const DefaultRound = 5

// options carries the per-call settings of every rates query.
type options struct {
	Base     string  `validate:"required"`
	Format   Format  `validate:"oneof=decimal string"`
	Round    int     `validate:"gte=-1,lte=15"`
	Symbols  []string
	Keys     currency.KeyCase `validate:"gte=0,lte=1"`
	UseCache bool
	FeedFn   cache.Resolver
}

// Option adjusts one query's options.
type Option func(*options)

// WithBase rebases the returned rates onto the given currency.
func WithBase(base string) Option { return func(o *options) { o.Base = base } }

// WithFormat selects the value representation.
func WithFormat(format Format) Option { return func(o *options) { o.Format = format } }

// WithRound sets the number of decimal places (0–15); NoRounding disables
// rounding.
func WithRound(places int) Option { return func(o *options) { o.Round = places } }

// WithSymbols restricts the returned rates to the given currency codes. The
// filter runs before rebasing, so an explicitly included base still works.
func WithSymbols(symbols ...string) Option {
	return func(o *options) { o.Symbols = symbols }
}

// WithKeys selects the map-key style of returned rate sets.
func WithKeys(keys currency.KeyCase) Option { return func(o *options) { o.Keys = keys } }

// WithoutCache bypasses the cache for one call; nothing is written.
func WithoutCache() Option { return func(o *options) { o.UseCache = false } }

// WithFeedFn overrides the feed dispatch for one call. Tests inject error
// or fixture producers here.
func WithFeedFn(fn cache.Resolver) Option { return func(o *options) { o.FeedFn = fn } }

var validate = validator.New()

// buildOptions applies opts over the defaults and validates the result.
func buildOptions(opts []Option) (options, error) {
	o := options{
		Base:     ratesBase,
		Format:   FormatDecimal,
		Round:    DefaultRound,
		Keys:     currency.KeysUpper,
		UseCache: true,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if err := validate.Struct(o); err != nil {
		return options{}, fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}
	return o, nil
}
