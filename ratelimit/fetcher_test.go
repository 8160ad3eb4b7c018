package ratelimit_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/pagesig/mock"
	"github.com/fwojciec/pagesig/ratelimit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_DelegatesToWrapped(t *testing.T) {
	t.Parallel()

	next := &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) (string, error) {
			return "<html>" + url + "</html>", nil
		},
		CloseFn: func() error { return nil },
	}

	f := ratelimit.NewFetcher(next, 100)
	defer f.Close()

	html, err := f.Fetch(context.Background(), "https://example.com/a.html")

	require.NoError(t, err)
	assert.Equal(t, "<html>https://example.com/a.html</html>", html)
}

func TestFetcher_SpacesRequestsWithinDomain(t *testing.T) {
	t.Parallel()

	next := &mock.Fetcher{
		FetchFn: func(context.Context, string) (string, error) { return "", nil },
	}

	// 10 rps: the second same-domain request must wait ~100ms.
	f := ratelimit.NewFetcher(next, 10)

	start := time.Now()
	_, err := f.Fetch(context.Background(), "https://example.com/one")
	require.NoError(t, err)
	_, err = f.Fetch(context.Background(), "https://example.com/two")
	require.NoError(t, err)

	assert.GreaterOrEqual(t, time.Since(start), 90*time.Millisecond)
}

func TestFetcher_HonorsContextCancellation(t *testing.T) {
	t.Parallel()

	next := &mock.Fetcher{
		FetchFn: func(context.Context, string) (string, error) { return "", nil },
	}

	f := ratelimit.NewFetcher(next, 0.001)

	// First request consumes the burst; the second would wait for minutes.
	_, err := f.Fetch(context.Background(), "https://example.com/one")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = f.Fetch(ctx, "https://example.com/two")

	assert.Error(t, err)
}
