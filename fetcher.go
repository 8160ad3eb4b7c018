package pagesig

import "context"

// Fetcher retrieves raw HTML from URLs.
// Implementations may use browser automation to handle JavaScript-rendered
// content. Timeouts and retries are the fetcher's responsibility; the
// analysis core treats any fetch failure as an opaque per-document error.
type Fetcher interface {
	// Fetch retrieves the HTML content of the URL.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases fetcher resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
