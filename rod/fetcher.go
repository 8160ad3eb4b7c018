// Package rod provides a browser-based implementation of pagesig.Fetcher
// for pages that require JavaScript rendering.
package rod

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/pagesig"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultFetchTimeout bounds a single page render.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements pagesig.Fetcher at compile time.
var _ pagesig.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser
// automation. Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	browser     *rod.Browser
	renderDelay time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithRenderDelay adds a fixed delay after page load before the HTML is
// captured. SPA pages often fill in content asynchronously after the load
// event fires.
func WithRenderDelay(d time.Duration) Option {
	return func(f *Fetcher) {
		f.renderDelay = d
	}
}

// NewFetcher creates a new Fetcher that launches a headless Chrome
// browser. Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	l := launcher.New().Headless(true)
	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill() // Clean up launched process on connection failure
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	f := &Fetcher{browser: browser}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// Fetch navigates to the URL and returns the rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	page, err := f.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", err
	}

	if err := page.WaitLoad(); err != nil {
		return "", err
	}

	if f.renderDelay > 0 {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(f.renderDelay):
		}
	}

	return page.HTML()
}

// Close shuts down the browser.
func (f *Fetcher) Close() error {
	return f.browser.Close()
}
