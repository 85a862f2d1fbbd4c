// Package feed provides the concrete feed adapters: the HTTP transport that
// retrieves the ECB XML bodies and the parser for the nested-Cube envelope.
package feed

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/finbound/forex/pkg/feed"
)

// HTTP downloads feed bodies with a shared http.Client.
type HTTP struct {
	client  *http.Client
	baseURL string
	logger  *slog.Logger
}

// NewHTTP builds the transport. An empty baseURL means the ECB publication
// address.
func NewHTTP(baseURL string, timeout time.Duration, logger *slog.Logger) *HTTP {
	if baseURL == "" {
		baseURL = feed.BaseURL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &HTTP{
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
		logger:  logger,
	}
}

// Download retrieves one feed body. The historic file spans decades, so its
// request asks for gzip and decompresses the response here; the smaller
// feeds rely on the transport's default handling.
func (h *HTTP) Download(ctx context.Context, kind feed.Kind) ([]byte, error) {
	url := h.baseURL + kind.Path()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if kind == feed.KindHistoric {
		req.Header.Set("Accept-Encoding", "gzip")
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", url, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("get %s: status %d", url, resp.StatusCode)
	}

	body := io.Reader(resp.Body)
	if resp.Header.Get("Content-Encoding") == "gzip" {
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("open gzip body: %w", err)
		}
		defer gz.Close() //nolint:errcheck
		body = gz
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	h.logger.Debug("feed body downloaded", "feed", kind.String(), "bytes", len(data))
	return data, nil
}

var _ feed.Downloader = (*HTTP)(nil)
