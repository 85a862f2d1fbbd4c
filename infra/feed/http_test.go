package feed

import (
	"compress/gzip"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finbound/forex/pkg/feed"
)

func TestHTTPDownload(t *testing.T) {
	body := fixture(t, "eurofxref-daily.xml")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, feed.KindLatest.Path(), r.URL.Path)
		w.Write(body) //nolint:errcheck
	}))
	defer srv.Close()

	dl := NewHTTP(srv.URL, 5*time.Second, nil)
	got, err := dl.Download(context.Background(), feed.KindLatest)
	require.NoError(t, err)
	assert.Equal(t, body, got)
}

func TestHTTPDownloadHistoricGzip(t *testing.T) {
	body := fixture(t, "eurofxref-hist-90d.xml")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, feed.KindHistoric.Path(), r.URL.Path)
		assert.Contains(t, r.Header.Get("Accept-Encoding"), "gzip")

		w.Header().Set("Content-Encoding", "gzip")
		gz := gzip.NewWriter(w)
		gz.Write(body) //nolint:errcheck
		gz.Close()     //nolint:errcheck
	}))
	defer srv.Close()

	dl := NewHTTP(srv.URL, 5*time.Second, nil)
	got, err := dl.Download(context.Background(), feed.KindHistoric)
	require.NoError(t, err)
	assert.Equal(t, body, got, "body arrives decompressed")
}

func TestHTTPDownloadStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "maintenance", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	dl := NewHTTP(srv.URL, 5*time.Second, nil)
	_, err := dl.Download(context.Background(), feed.KindLatest)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 503")
}

func TestHTTPDownloadContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dl := NewHTTP(srv.URL, 5*time.Second, nil)
	_, err := dl.Download(ctx, feed.KindLatest)
	assert.Error(t, err)
}

func TestHTTPDefaultBaseURL(t *testing.T) {
	dl := NewHTTP("", time.Second, nil)
	assert.Equal(t, feed.BaseURL, dl.baseURL)
}
