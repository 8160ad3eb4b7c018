package goquery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyze_Links(t *testing.T) {
	t.Parallel()

	t.Run("applies the inclusion policy", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><article>
			<nav><a href="https://nav.example.com/page.html">nav link</a></nav>
			<footer><a href="https://footer.example.com/page.html">footer link</a></footer>
			<a href="#section">fragment</a>
			<a href="/about">bare relative</a>
			<a href="https://example.com/a.html">good</a>
		</article></body></html>`

		signals := analyze(t, html, "")

		assert.Equal(t, []string{"https://example.com/a.html"}, signals.Links)
	})

	t.Run("nav exclusion wins over the dot rule", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<nav><div><a href="https://example.com/nested.html">deeply nested nav link</a></div></nav>
			<a href="https://example.com/keep.html">keep</a>
		</body></html>`

		signals := analyze(t, html, "")

		assert.Equal(t, []string{"https://example.com/keep.html"}, signals.Links)
	})

	t.Run("relative path with a dot passes the heuristic", func(t *testing.T) {
		t.Parallel()

		// Known false positive of the dot-in-href proxy; the behavior is
		// pinned, not a bug.
		html := `<html><body><a href="/downloads/report.pdf">report</a></body></html>`

		signals := analyze(t, html, "")

		assert.Equal(t, []string{"/downloads/report.pdf"}, signals.Links)
	})

	t.Run("de-duplicates in first-occurrence order", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<a href="https://b.example.com/x.html">one</a>
			<a href="https://a.example.com/y.html">two</a>
			<a href="https://b.example.com/x.html">repeat</a>
		</body></html>`

		signals := analyze(t, html, "")

		assert.Equal(t, []string{
			"https://b.example.com/x.html",
			"https://a.example.com/y.html",
		}, signals.Links)
	})

	t.Run("links outside the region are ignored", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<a href="https://outside.example.com/z.html">outside</a>
			<article><a href="https://inside.example.com/z.html">inside</a></article>
		</body></html>`

		signals := analyze(t, html, "")

		assert.Equal(t, []string{"https://inside.example.com/z.html"}, signals.Links)
	})

	t.Run("no anchors yields an empty set", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><p>plain text only</p></body></html>`

		signals := analyze(t, html, "")

		assert.Empty(t, signals.Links)
	})
}
