// Package cache provides the concrete backends of the rate-cache contract:
// a process-wide in-memory map and an on-disk key/value file.
package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/finbound/forex/pkg/cache"
	"github.com/finbound/forex/pkg/rates"
)

// Memory is the in-memory backend: a shared mutable map safe for many
// readers and few writers.
type Memory struct {
	flight cache.Flight

	mu          sync.RWMutex
	entries     map[cache.Key]cache.Entry
	initialized bool
}

// NewMemory creates an uninitialized in-memory backend.
func NewMemory() *Memory {
	return &Memory{}
}

// Init allocates the store. Idempotent.
func (m *Memory) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.initialized {
		m.entries = make(map[cache.Key]cache.Entry)
		m.initialized = true
	}
	return nil
}

// Initialized reports whether the store exists.
func (m *Memory) Initialized() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.initialized
}

// Get returns the value under key, evicting it first when older than ttl.
func (m *Memory) Get(key cache.Key, ttl time.Duration) (rates.Payload, bool, error) {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}

	if expired(entry, ttl) {
		m.mu.Lock()
		// Only evict the observed write; a fresher concurrent Put stays.
		if current, ok := m.entries[key]; ok && current.UpdatedAt.Equal(entry.UpdatedAt) {
			delete(m.entries, key)
		}
		m.mu.Unlock()
		return nil, false, nil
	}
	return entry.Value, true, nil
}

// Put upserts the value under key. Writing to an uninitialized store is an
// error; an in-flight write racing a Terminate must be lost, not resurrect
// the store.
func (m *Memory) Put(key cache.Key, value rates.Payload, updatedAt time.Time) (rates.Payload, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.initialized {
		return nil, fmt.Errorf("memory cache not initialized")
	}
	m.entries[key] = cache.Entry{Value: value, UpdatedAt: updatedAt.UTC().Truncate(time.Millisecond)}
	return value, nil
}

// Delete removes one key.
func (m *Memory) Delete(key cache.Key) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}

// LastUpdated returns the write instant of every present key.
func (m *Memory) LastUpdated() (map[cache.Key]time.Time, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[cache.Key]time.Time, len(m.entries))
	for k, e := range m.entries {
		out[k] = e.UpdatedAt
	}
	return out, nil
}

// LastUpdatedAt returns the write instant of one key.
func (m *Memory) LastUpdatedAt(key cache.Key) (time.Time, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.entries[key]
	if !ok {
		return time.Time{}, false, nil
	}
	return e.UpdatedAt, true, nil
}

// Reset clears all entries, keeping the store initialized.
func (m *Memory) Reset() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = make(map[cache.Key]cache.Entry)
	m.initialized = true
	return nil
}

// Terminate drops the store.
func (m *Memory) Terminate() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = nil
	m.initialized = false
	return nil
}

// Resolve is the single-flight read-through.
func (m *Memory) Resolve(ctx context.Context, key cache.Key, resolver cache.Resolver, ttl time.Duration) (rates.Payload, error) {
	return m.flight.Resolve(ctx, m, key, resolver, ttl)
}

func expired(entry cache.Entry, ttl time.Duration) bool {
	if ttl <= 0 {
		return false
	}
	return time.Since(entry.UpdatedAt) > ttl
}

var _ cache.Cache = (*Memory)(nil)
