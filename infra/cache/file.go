package cache

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/finbound/forex/pkg/cache"
	"github.com/finbound/forex/pkg/jsonenc"
	"github.com/finbound/forex/pkg/rates"
)

// File is the on-disk backend. The whole store lives in a single JSON
// document whose format is private to this package; it survives a
// Terminate/Init round trip with timestamps intact at millisecond
// resolution. Writes are atomic (temp file + rename).
type File struct {
	flight cache.Flight

	path  string
	codec jsonenc.Codec

	mu      sync.RWMutex
	entries map[string]fileEntry
	loaded  bool
}

type fileEntry struct {
	Value       rates.Payload `json:"value"`
	UpdatedAtMS int64         `json:"updated_at_ms"`
}

type fileDoc struct {
	Entries map[string]fileEntry `json:"entries"`
}

// NewFile creates an on-disk backend at path using the given JSON codec.
func NewFile(path string, codec jsonenc.Codec) *File {
	if codec == nil {
		codec, _ = jsonenc.New("stdlib")
	}
	return &File{path: path, codec: codec}
}

// Path returns the store's file path.
func (f *File) Path() string { return f.path }

// Init creates parent directories, loads the existing store if the file is
// present and creates an empty one otherwise. Idempotent: a second Init does
// not reopen anything.
func (f *File) Init() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loaded {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("create cache directory: %w", err)
	}

	data, err := os.ReadFile(f.path)
	switch {
	case os.IsNotExist(err):
		f.entries = make(map[string]fileEntry)
		if err := f.persistLocked(); err != nil {
			return err
		}
	case err != nil:
		return fmt.Errorf("read cache file: %w", err)
	default:
		var doc fileDoc
		if len(data) > 0 {
			if err := f.codec.Unmarshal(data, &doc); err != nil {
				return fmt.Errorf("decode cache file: %w", err)
			}
		}
		if doc.Entries == nil {
			doc.Entries = make(map[string]fileEntry)
		}
		f.entries = doc.Entries
	}

	f.loaded = true
	return nil
}

// Initialized reports whether the store has been loaded.
func (f *File) Initialized() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.loaded
}

// Get returns the value under key, evicting it first when older than ttl.
func (f *File) Get(key cache.Key, ttl time.Duration) (rates.Payload, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.loaded {
		return nil, false, nil
	}

	entry, ok := f.entries[key.String()]
	if !ok {
		return nil, false, nil
	}
	updatedAt := time.UnixMilli(entry.UpdatedAtMS).UTC()
	if ttl > 0 && time.Since(updatedAt) > ttl {
		delete(f.entries, key.String())
		if err := f.persistLocked(); err != nil {
			return nil, false, err
		}
		return nil, false, nil
	}
	return entry.Value, true, nil
}

// Put upserts the value under key and flushes the store.
func (f *File) Put(key cache.Key, value rates.Payload, updatedAt time.Time) (rates.Payload, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.loaded {
		return nil, fmt.Errorf("cache file %s not initialized", f.path)
	}
	f.entries[key.String()] = fileEntry{
		Value:       value,
		UpdatedAtMS: updatedAt.UTC().Truncate(time.Millisecond).UnixMilli(),
	}
	if err := f.persistLocked(); err != nil {
		return nil, err
	}
	return value, nil
}

// Delete removes one key.
func (f *File) Delete(key cache.Key) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.loaded {
		return nil
	}
	if _, ok := f.entries[key.String()]; !ok {
		return nil
	}
	delete(f.entries, key.String())
	return f.persistLocked()
}

// LastUpdated returns the write instant of every present key.
func (f *File) LastUpdated() (map[cache.Key]time.Time, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make(map[cache.Key]time.Time, len(f.entries))
	for name, e := range f.entries {
		key, err := cache.ParseKey(name)
		if err != nil {
			continue
		}
		out[key] = time.UnixMilli(e.UpdatedAtMS).UTC()
	}
	return out, nil
}

// LastUpdatedAt returns the write instant of one key.
func (f *File) LastUpdatedAt(key cache.Key) (time.Time, bool, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	e, ok := f.entries[key.String()]
	if !ok {
		return time.Time{}, false, nil
	}
	return time.UnixMilli(e.UpdatedAtMS).UTC(), true, nil
}

// Reset truncates the store to empty, keeping it initialized.
func (f *File) Reset() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = make(map[string]fileEntry)
	f.loaded = true
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("create cache directory: %w", err)
	}
	return f.persistLocked()
}

// Terminate flushes and drops the in-memory image. The file stays on disk
// for the next Init.
func (f *File) Terminate() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.loaded {
		return nil
	}
	if err := f.persistLocked(); err != nil {
		return err
	}
	f.entries = nil
	f.loaded = false
	return nil
}

// Resolve is the single-flight read-through.
func (f *File) Resolve(ctx context.Context, key cache.Key, resolver cache.Resolver, ttl time.Duration) (rates.Payload, error) {
	return f.flight.Resolve(ctx, f, key, resolver, ttl)
}

func (f *File) persistLocked() error {
	data, err := f.codec.Marshal(fileDoc{Entries: f.entries})
	if err != nil {
		return fmt.Errorf("encode cache file: %w", err)
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write cache file: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replace cache file: %w", err)
	}
	return nil
}

var _ cache.Cache = (*File)(nil)
