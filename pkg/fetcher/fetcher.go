// Package fetcher runs the supervised background worker that keeps the rate
// cache warm: an initial parallel warm-up, periodic refreshes of the two
// scheduled keys, and synchronous on-demand reads.
package fetcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"

	"github.com/finbound/forex/pkg/cache"
	"github.com/finbound/forex/pkg/feed"
	"github.com/finbound/forex/pkg/rates"
)

const (
	// DefaultInterval is the scheduler cadence. The ECB publishes once
	// each business day around 16:00 CET, so twice a day is plenty.
	DefaultInterval = 12 * time.Hour

	// warmupTimeout bounds the joint initial refresh of the scheduled
	// keys. Timing out is a partial failure, not a crash.
	warmupTimeout = 20 * time.Second
)

// scheduledKeys are refreshed on a timer. The historic series is fetched on
// demand only; its file spans decades.
var scheduledKeys = []cache.Key{cache.KeyLatest, cache.KeyNinetyDays}

// ErrStopped is returned by Get after the fetcher has been stopped.
var ErrStopped = errors.New("fetcher stopped")

// Config is the fetcher's construction-time state.
type Config struct {
	// UseCache routes reads through the cache. When false the feed is
	// invoked directly and nothing is ever written.
	UseCache bool
	// Interval is the scheduler cadence and doubles as the cache TTL.
	Interval time.Duration
	// FeedFn overrides the default feed dispatch; tests inject error or
	// fixture producers here.
	FeedFn cache.Resolver
}

// Fetcher is the background worker. Refresh ticks are processed serially by
// one loop goroutine; Get runs on the caller's goroutine and synchronizes
// through the cache.
type Fetcher struct {
	cfg    Config
	store  cache.Cache
	feeds  *feed.Service
	logger *slog.Logger

	cron *cron.Cron
	cmds chan cache.Key
	done chan struct{}

	mu      sync.Mutex
	started bool
	stopped bool
}

// New builds a fetcher. A feed service is required unless a FeedFn override
// supplies every payload.
func New(cfg Config, store cache.Cache, feeds *feed.Service, logger *slog.Logger) (*Fetcher, error) {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if feeds == nil && cfg.FeedFn == nil {
		return nil, fmt.Errorf("fetcher: feed service or feed fn override required")
	}
	if cfg.UseCache && store == nil {
		return nil, fmt.Errorf("fetcher: cache required when use_cache is set")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Fetcher{
		cfg:    cfg,
		store:  store,
		feeds:  feeds,
		logger: logger,
		cmds:   make(chan cache.Key, 8),
		done:   make(chan struct{}),
	}, nil
}

// Start initializes the cache, performs (or skips) the warm-up and launches
// the scheduler. It returns once the worker is running.
func (f *Fetcher) Start(ctx context.Context) error {
	f.mu.Lock()
	if f.started {
		f.mu.Unlock()
		return fmt.Errorf("fetcher already started")
	}
	f.started = true
	f.mu.Unlock()

	if f.cfg.UseCache {
		if err := f.store.Init(); err != nil {
			return fmt.Errorf("init cache: %w", err)
		}
	}

	if f.cfg.UseCache && f.warm() {
		f.logger.Info("cache warm, skipping initial refresh",
			"ttl", f.cfg.Interval)
	} else {
		f.warmup(ctx)
	}

	f.cron = cron.New()
	for _, key := range scheduledKeys {
		key := key
		f.cron.Schedule(cron.Every(f.cfg.Interval), cron.FuncJob(func() {
			select {
			case f.cmds <- key:
			default:
				// Loop is behind; this tick is redundant anyway.
				f.logger.Debug("refresh tick dropped", "key", key.String())
			}
		}))
	}
	f.cron.Start()
	go f.loop()

	f.logger.Info("fetcher started",
		"interval", f.cfg.Interval, "use_cache", f.cfg.UseCache)
	return nil
}

// Get serves one feed synchronously. With an initialized cache it is a
// single-flight read-through at the scheduler-interval TTL; otherwise the
// feed is invoked directly and the cache is never written.
func (f *Fetcher) Get(ctx context.Context, key cache.Key) (rates.Payload, error) {
	select {
	case <-f.done:
		return nil, ErrStopped
	default:
	}

	if f.cfg.UseCache && f.store.Initialized() {
		return f.store.Resolve(ctx, key, f.feedFn(key), f.cfg.Interval)
	}
	return f.feedFn(key).ResolveRates(ctx)
}

// Stop halts the scheduler and the loop, then releases the cache.
func (f *Fetcher) Stop() error {
	f.mu.Lock()
	if !f.started || f.stopped {
		f.mu.Unlock()
		return nil
	}
	f.stopped = true
	f.mu.Unlock()

	if f.cron != nil {
		<-f.cron.Stop().Done()
	}
	close(f.done)

	if f.cfg.UseCache {
		if err := f.store.Terminate(); err != nil {
			return fmt.Errorf("terminate cache: %w", err)
		}
	}
	f.logger.Info("fetcher stopped")
	return nil
}

// loop processes refresh ticks serially until Stop.
func (f *Fetcher) loop() {
	for {
		select {
		case key := <-f.cmds:
			f.refresh(context.Background(), key)
		case <-f.done:
			return
		}
	}
}

// warm reports whether every scheduled key holds a non-expired entry, which
// lets a persistent cache short-circuit the initial network fetch.
func (f *Fetcher) warm() bool {
	for _, key := range scheduledKeys {
		if _, ok, err := f.store.Get(key, f.cfg.Interval); err != nil || !ok {
			return false
		}
	}
	return true
}

// warmup refreshes the scheduled keys in parallel under one 20 s deadline.
// Partial failure is logged and survived.
func (f *Fetcher) warmup(ctx context.Context) {
	run := uuid.New().String()
	ctx, cancel := context.WithTimeout(ctx, warmupTimeout)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	for _, key := range scheduledKeys {
		key := key
		g.Go(func() error { return f.refresh(ctx, key) })
	}
	if err := g.Wait(); err != nil {
		f.logger.Warn("initial refresh incomplete", "run", run, "error", err)
		return
	}
	f.logger.Info("initial refresh complete", "run", run)
}

// refresh refetches one key. An upstream error leaves any previously cached
// value and its TTL untouched.
func (f *Fetcher) refresh(ctx context.Context, key cache.Key) error {
	run := uuid.New().String()
	payload, err := f.feedFn(key).ResolveRates(ctx)
	if err != nil {
		f.logger.Warn("scheduled refresh failed",
			"run", run, "key", key.String(), "error", err)
		return err
	}

	if f.cfg.UseCache && f.store.Initialized() {
		if _, err := f.store.Put(key, payload, cache.Now()); err != nil {
			f.logger.Warn("cache write failed",
				"run", run, "key", key.String(), "error", err)
			return err
		}
	}
	f.logger.Info("rates refreshed",
		"run", run, "key", key.String(), "days", len(payload))
	return nil
}

// feedFn resolves the call producing one key's payload: the configured
// override when present, otherwise the default feed dispatch.
func (f *Fetcher) feedFn(key cache.Key) cache.Resolver {
	if f.cfg.FeedFn != nil {
		return f.cfg.FeedFn
	}
	return feed.Call{Service: f.feeds, Kind: kindFor(key)}
}

func kindFor(key cache.Key) feed.Kind {
	switch key {
	case cache.KeyNinetyDays:
		return feed.KindNinetyDays
	case cache.KeyHistoric:
		return feed.KindHistoric
	default:
		return feed.KindLatest
	}
}
