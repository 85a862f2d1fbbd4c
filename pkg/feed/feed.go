// Package feed orchestrates retrieval of the three ECB reference-rate XML
// feeds. Transport and parsing are pluggable; the orchestrator only knows the
// feed addresses and how to normalize failures.
package feed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/finbound/forex/pkg/rates"
)

// BaseURL is where the ECB publishes the reference-rate feeds.
const BaseURL = "https://www.ecb.europa.eu/stats/eurofxref"

// Kind identifies one of the three feeds.
type Kind int

const (
	// KindLatest is today's rates, one day per fetch.
	KindLatest Kind = iota
	// KindNinetyDays is the rolling last-90-days series.
	KindNinetyDays
	// KindHistoric is the full series since 1999-01-04.
	KindHistoric
)

// String returns the feed name used in logs and errors.
func (k Kind) String() string {
	switch k {
	case KindLatest:
		return "latest"
	case KindNinetyDays:
		return "ninety_days"
	case KindHistoric:
		return "historic"
	default:
		return fmt.Sprintf("feed.Kind(%d)", int(k))
	}
}

// Path returns the feed's path under BaseURL.
func (k Kind) Path() string {
	switch k {
	case KindLatest:
		return "/eurofxref-daily.xml"
	case KindNinetyDays:
		return "/eurofxref-hist-90d.xml"
	case KindHistoric:
		return "/eurofxref-hist.xml"
	default:
		return ""
	}
}

// URL returns the feed's full URL.
func (k Kind) URL() string { return BaseURL + k.Path() }

// Downloader retrieves a raw feed body.
type Downloader interface {
	Download(ctx context.Context, kind Kind) ([]byte, error)
}

// Parser turns a raw feed body into the structured payload.
type Parser interface {
	Parse(body []byte) (rates.Payload, error)
}

// Service is the feed orchestrator. It performs no retries; failure policy
// belongs to the fetcher.
type Service struct {
	downloader Downloader
	parser     Parser
	logger     *slog.Logger
}

// NewService builds an orchestrator from a transport and a parser.
func NewService(downloader Downloader, parser Parser, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{downloader: downloader, parser: parser, logger: logger}
}

// Fetch downloads and parses one feed. Errors from either stage surface as a
// *feed.Error carrying the upstream reason.
func (s *Service) Fetch(ctx context.Context, kind Kind) (rates.Payload, error) {
	body, err := s.downloader.Download(ctx, kind)
	if err != nil {
		s.logger.Warn("feed download failed", "feed", kind.String(), "error", err)
		return nil, &Error{Kind: kind, Stage: StageDownload, Err: err}
	}

	payload, err := s.parser.Parse(body)
	if err != nil {
		s.logger.Warn("feed parse failed", "feed", kind.String(), "error", err)
		return nil, &Error{Kind: kind, Stage: StageParse, Err: err}
	}

	s.logger.Debug("feed fetched", "feed", kind.String(), "days", len(payload))
	return payload, nil
}

// Call is a reified feed invocation: Fetch of one kind on one service. It
// satisfies the cache resolver contract so fetchers can hand the cache a
// named call instead of a closure.
type Call struct {
	Service *Service
	Kind    Kind
}

// ResolveRates performs the call.
func (c Call) ResolveRates(ctx context.Context) (rates.Payload, error) {
	return c.Service.Fetch(ctx, c.Kind)
}
