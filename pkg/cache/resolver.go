package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/finbound/forex/pkg/rates"
)

// ErrResolverFailed is returned when a Resolve miss could not be filled;
// the cache is left unwritten.
var ErrResolverFailed = errors.New("cache resolver failed")

// Resolver produces the value for a cache miss. Two shapes are provided:
// the ResolverFunc closure and the reified feed.Call descriptor. A nil
// resolver is a configuration error rejected before any resolution runs.
type Resolver interface {
	ResolveRates(ctx context.Context) (rates.Payload, error)
}

// ResolverFunc adapts a closure into a Resolver.
type ResolverFunc func(ctx context.Context) (rates.Payload, error)

// ResolveRates invokes the closure.
func (f ResolverFunc) ResolveRates(ctx context.Context) (rates.Payload, error) {
	return f(ctx)
}

// Flight implements the single-flight read-through on top of any backend.
// Backends embed it and delegate their Resolve to it. Collapsing concurrent
// misses is a throughput measure; correctness only requires that a store
// happens at most once per successful resolution.
type Flight struct {
	group singleflight.Group
}

// Resolve returns the cached value under key if present, otherwise runs the
// resolver. A successful resolution is written with updated_at = now; any
// failure leaves the cache untouched and reports ErrResolverFailed.
func (f *Flight) Resolve(ctx context.Context, store Cache, key Key, resolver Resolver, ttl time.Duration) (rates.Payload, error) {
	if resolver == nil {
		return nil, fmt.Errorf("%w: nil resolver", ErrResolverFailed)
	}

	if v, ok, err := store.Get(key, ttl); err == nil && ok {
		return v, nil
	}

	out, err, _ := f.group.Do(key.String(), func() (any, error) {
		// Re-check under the flight: a concurrent caller may have
		// stored while this one queued.
		if v, ok, err := store.Get(key, ttl); err == nil && ok {
			return v, nil
		}
		v, err := resolver.ResolveRates(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrResolverFailed, err)
		}
		if _, err := store.Put(key, v, Now()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrResolverFailed, err)
		}
		return v, nil
	})
	if err != nil {
		return nil, err
	}
	return out.(rates.Payload), nil
}
