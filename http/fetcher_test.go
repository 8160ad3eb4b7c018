package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	pghttp "github.com/fwojciec/pagesig/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns the response body", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html><body>ok</body></html>"))
		}))
		defer srv.Close()

		f := pghttp.NewFetcher()
		defer f.Close()

		html, err := f.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Equal(t, "<html><body>ok</body></html>", html)
	})

	t.Run("sends the configured user agent", func(t *testing.T) {
		t.Parallel()

		var gotUA string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.Header.Get("User-Agent")
		}))
		defer srv.Close()

		f := pghttp.NewFetcher(pghttp.WithUserAgent("custom-agent/2.0"))
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Equal(t, "custom-agent/2.0", gotUA)
	})

	t.Run("non-200 status is an error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "gone", http.StatusNotFound)
		}))
		defer srv.Close()

		f := pghttp.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "HTTP 404")
	})

	t.Run("retries with configured delays until success", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int64
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) < 3 {
				http.Error(w, "flaky", http.StatusServiceUnavailable)
				return
			}
			_, _ = w.Write([]byte("recovered"))
		}))
		defer srv.Close()

		f := pghttp.NewFetcher(pghttp.WithRetryDelays([]time.Duration{0, 0}))
		defer f.Close()

		html, err := f.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Equal(t, "recovered", html)
		assert.Equal(t, int64(3), calls.Load())
	})

	t.Run("returns the last error when retries are exhausted", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "down", http.StatusBadGateway)
		}))
		defer srv.Close()

		f := pghttp.NewFetcher(pghttp.WithRetryDelays([]time.Duration{0}))
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "HTTP 502")
	})

	t.Run("honors context cancellation between retries", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "down", http.StatusBadGateway)
		}))
		defer srv.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		f := pghttp.NewFetcher(pghttp.WithRetryDelays([]time.Duration{time.Minute}))
		defer f.Close()

		_, err := f.Fetch(ctx, srv.URL)

		assert.ErrorIs(t, err, context.Canceled)
	})
}
