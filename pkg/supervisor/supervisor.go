// Package supervisor owns the lifecycle of one fetcher child:
// not_started → running ⇄ stopped → deleted (back to not_started).
package supervisor

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/finbound/forex/pkg/fetcher"
)

var (
	// ErrAlreadyStarted is returned by a start while the child runs.
	ErrAlreadyStarted = errors.New("fetcher already started")
	// ErrNotRunning is returned by a stop without a running child.
	ErrNotRunning = errors.New("fetcher not running")
	// ErrNotStopped is returned by restart/delete outside stopped.
	ErrNotStopped = errors.New("fetcher not stopped")
)

// Status is the fetcher child's lifecycle state.
type Status int

const (
	StatusNotStarted Status = iota
	StatusStopped
	StatusRunning
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusStopped:
		return "stopped"
	default:
		return "not_started"
	}
}

// Factory builds a fresh fetcher for one start. The supervisor never reuses
// a stopped fetcher; restart constructs a new one with the same config.
type Factory func(cfg fetcher.Config) (*fetcher.Fetcher, error)

// Options configures the supervisor.
type Options struct {
	// AutoStart launches the fetcher at construction. Defaults to true
	// through config.
	AutoStart bool
	// Fetcher is the config used by AutoStart and RestartFetcher until a
	// StartFetcher call replaces it.
	Fetcher fetcher.Config
}

// Supervisor controls a single fetcher child.
type Supervisor struct {
	factory Factory
	logger  *slog.Logger

	mu      sync.Mutex
	status  Status
	child   *fetcher.Fetcher
	lastCfg fetcher.Config
}

// New builds a supervisor, auto-starting the child when asked to.
func New(factory Factory, opts Options, logger *slog.Logger) (*Supervisor, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Supervisor{factory: factory, logger: logger, lastCfg: opts.Fetcher}
	if opts.AutoStart {
		if err := s.StartFetcher(context.Background(), opts.Fetcher); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// StartFetcher starts the child from not_started or stopped.
func (s *Supervisor) StartFetcher(ctx context.Context, cfg fetcher.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status == StatusRunning {
		return ErrAlreadyStarted
	}

	child, err := s.factory(cfg)
	if err != nil {
		return err
	}
	if err := child.Start(ctx); err != nil {
		return err
	}
	s.child = child
	s.lastCfg = cfg
	s.status = StatusRunning
	s.logger.Info("fetcher child started")
	return nil
}

// StopFetcher stops the running child.
func (s *Supervisor) StopFetcher() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != StatusRunning {
		return ErrNotRunning
	}
	if err := s.child.Stop(); err != nil {
		return err
	}
	s.status = StatusStopped
	s.logger.Info("fetcher child stopped")
	return nil
}

// RestartFetcher starts a stopped child again with its last config.
func (s *Supervisor) RestartFetcher(ctx context.Context) error {
	s.mu.Lock()
	if s.status != StatusStopped {
		s.mu.Unlock()
		return ErrNotStopped
	}
	cfg := s.lastCfg
	s.mu.Unlock()
	return s.StartFetcher(ctx, cfg)
}

// DeleteFetcher discards a stopped child, returning to not_started.
func (s *Supervisor) DeleteFetcher() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != StatusStopped {
		return ErrNotStopped
	}
	s.child = nil
	s.status = StatusNotStarted
	s.logger.Info("fetcher child deleted")
	return nil
}

// FetcherStatus reports the child's lifecycle state.
func (s *Supervisor) FetcherStatus() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// FetcherInitiated reports whether a child exists (running or stopped).
func (s *Supervisor) FetcherInitiated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status != StatusNotStarted
}

// FetcherRunning reports whether the child is running.
func (s *Supervisor) FetcherRunning() bool {
	return s.FetcherStatus() == StatusRunning
}

// Fetcher returns the current child, or nil outside running/stopped.
func (s *Supervisor) Fetcher() *fetcher.Fetcher {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.child
}

// Stop shuts the supervisor down, stopping a running child first.
func (s *Supervisor) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status == StatusRunning {
		if err := s.child.Stop(); err != nil {
			return err
		}
		s.status = StatusStopped
	}
	s.logger.Info("supervisor stopped")
	return nil
}
