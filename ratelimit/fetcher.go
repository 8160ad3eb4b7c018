// Package ratelimit provides a per-domain rate-limiting decorator for
// pagesig.Fetcher. Rate limiting is a fetch-side concern: the analysis
// core never throttles.
package ratelimit

import (
	"context"
	"sync"

	"github.com/fwojciec/pagesig"
	"golang.org/x/time/rate"
)

// Ensure Fetcher implements pagesig.Fetcher at compile time.
var _ pagesig.Fetcher = (*Fetcher)(nil)

// Fetcher wraps another fetcher with per-domain token-bucket rate
// limiting. Each domain gets its own limiter with a burst of 1, so
// requests to different domains proceed concurrently while requests
// within a domain are spaced out.
type Fetcher struct {
	next pagesig.Fetcher
	rps  float64

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// NewFetcher creates a rate-limited Fetcher allowing rps requests per
// second per domain.
func NewFetcher(next pagesig.Fetcher, rps float64) *Fetcher {
	return &Fetcher{
		next:     next,
		rps:      rps,
		limiters: make(map[string]*rate.Limiter),
	}
}

// Fetch waits for the domain's rate limit, then delegates to the wrapped
// fetcher. Returns an error if the context is canceled while waiting.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := f.wait(ctx, pagesig.Domain(url)); err != nil {
		return "", err
	}
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *Fetcher) Close() error {
	return f.next.Close()
}

func (f *Fetcher) wait(ctx context.Context, domain string) error {
	f.mu.Lock()
	limiter, ok := f.limiters[domain]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(f.rps), 1)
		f.limiters[domain] = limiter
	}
	f.mu.Unlock()

	return limiter.Wait(ctx)
}
