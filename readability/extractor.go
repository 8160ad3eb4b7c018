// Package readability provides a boilerplate-stripping implementation of
// pagesig.Extractor backed by go-readability.
package readability

import (
	"strings"

	"github.com/fwojciec/pagesig"
	readability "github.com/go-shiori/go-readability"
)

// Ensure Extractor implements pagesig.Extractor at compile time.
var _ pagesig.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content as clean HTML
// with navigation, sidebars, and other boilerplate removed.
func (e *Extractor) Extract(rawHTML string) (string, error) {
	if rawHTML == "" {
		return "", pagesig.Errorf(pagesig.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return "", err
	}

	return article.Content, nil
}
