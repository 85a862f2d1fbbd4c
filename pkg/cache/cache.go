// Package cache defines the behavioral contract shared by the rate-cache
// backends and the single-flight read-through used on top of them.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/finbound/forex/pkg/rates"
)

// Key identifies a cached feed. The set is closed: no other keys are valid.
type Key int

const (
	// KeyLatest caches today's rates.
	KeyLatest Key = iota
	// KeyNinetyDays caches the rolling last-90-days series.
	KeyNinetyDays
	// KeyHistoric caches the full historic series.
	KeyHistoric
)

// Keys lists every valid cache key.
func Keys() []Key { return []Key{KeyLatest, KeyNinetyDays, KeyHistoric} }

// String returns the key's symbolic identifier.
func (k Key) String() string {
	switch k {
	case KeyLatest:
		return "latest_rates"
	case KeyNinetyDays:
		return "last_ninety_days_rates"
	case KeyHistoric:
		return "historic_rates"
	default:
		return fmt.Sprintf("cache.Key(%d)", int(k))
	}
}

// ParseKey maps a symbolic identifier back to its Key.
func ParseKey(s string) (Key, error) {
	for _, k := range Keys() {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown cache key %q", s)
}

// Entry is one stored value with its write instant.
type Entry struct {
	Value     rates.Payload `json:"value"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// Cache is the contract every backend implements. TTL expiry is lazy: an
// expired entry is evicted by the read that observed the expiry. A ttl of
// zero or below means no expiry.
type Cache interface {
	// Init ensures the backing store exists. Idempotent.
	Init() error
	// Initialized reports whether the backing store exists.
	Initialized() bool
	// Get returns the stored value, evicting it first when older than ttl.
	Get(key Key, ttl time.Duration) (rates.Payload, bool, error)
	// Put upserts and returns the stored value.
	Put(key Key, value rates.Payload, updatedAt time.Time) (rates.Payload, error)
	// Delete removes one key, succeeding whether or not it existed.
	Delete(key Key) error
	// LastUpdated returns the write instant of every present key.
	LastUpdated() (map[Key]time.Time, error)
	// LastUpdatedAt returns the write instant of one key.
	LastUpdatedAt(key Key) (time.Time, bool, error)
	// Reset clears all entries, reinitializing an empty store.
	Reset() error
	// Terminate releases backing resources.
	Terminate() error
	// Resolve is the single-flight read-through: cached value when
	// present, otherwise the resolver's result, stored on success only.
	Resolve(ctx context.Context, key Key, resolver Resolver, ttl time.Duration) (rates.Payload, error)
}

// Now is the instant recorded for cache writes: UTC at millisecond
// resolution, which is what the on-disk format round-trips.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
