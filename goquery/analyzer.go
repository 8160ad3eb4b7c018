// Package goquery implements pagesig.Analyzer on top of a goquery document
// tree. It locates the content region, extracts paragraph text, counts
// sections, resolves the author, filters outbound links, and computes the
// keyword relevancy score.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagesig"
)

// Ensure Analyzer implements pagesig.Analyzer at compile time.
var _ pagesig.Analyzer = (*Analyzer)(nil)

// Analyzer extracts page signals from raw HTML. The zero value is not
// usable; construct with NewAnalyzer. Analyzer is stateless and safe for
// concurrent use.
type Analyzer struct {
	extractor pagesig.Extractor
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithExtractor narrows the content region using a boilerplate-stripping
// extractor (e.g. readability) before the locator chain runs. Author and
// title resolution still see the full document. When the extractor fails
// or returns nothing the locator chain runs on the full document instead.
func WithExtractor(e pagesig.Extractor) Option {
	return func(a *Analyzer) {
		a.extractor = e
	}
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze parses rawHTML and returns the extracted signals.
func (a *Analyzer) Analyze(rawHTML string, keyword string) (*pagesig.PageSignals, error) {
	if rawHTML == "" {
		return nil, pagesig.Errorf(pagesig.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, err
	}

	region := a.region(doc, rawHTML)

	signals := &pagesig.PageSignals{
		Title:        strings.TrimSpace(doc.Find("title").First().Text()),
		Author:       resolveAuthor(doc),
		SectionCount: countSections(region),
		Links:        extractLinks(region),
	}
	signals.Paragraphs, signals.WordCount = extractText(region)

	if strings.TrimSpace(keyword) != "" {
		fullText := strings.Join(signals.Paragraphs, " ")
		if score, ok := pagesig.Relevancy(fullText, signals.Title, keyword); ok {
			signals.Relevancy = &score
		}
	}

	return signals, nil
}

// region selects the sub-tree treated as the article body. With an
// extractor configured, the cleaned content replaces the document for
// region location; otherwise the locator chain runs on the full document.
func (a *Analyzer) region(doc *goquery.Document, rawHTML string) *goquery.Selection {
	if a.extractor != nil {
		if content, err := a.extractor.Extract(rawHTML); err == nil && strings.TrimSpace(content) != "" {
			if cleaned, err := goquery.NewDocumentFromReader(strings.NewReader(content)); err == nil {
				return locate(cleaned)
			}
		}
		// Extraction is best-effort; fall through to the full document.
	}
	return locate(doc)
}

// regionLocators is the ordered fallback chain for content location:
// explicit main region beats article beats ARIA role. Evaluated in order
// with early exit on first match; reordering or adding a strategy is a
// one-line change.
var regionLocators = []func(*goquery.Document) *goquery.Selection{
	func(doc *goquery.Document) *goquery.Selection { return doc.Find("main") },
	func(doc *goquery.Document) *goquery.Selection { return doc.Find("article") },
	func(doc *goquery.Document) *goquery.Selection { return doc.Find(`[role="main"]`) },
}

// locate returns the content region for a document. It never fails: the
// document body (or root, for fragments without one) is the guaranteed
// last resort.
func locate(doc *goquery.Document) *goquery.Selection {
	for _, find := range regionLocators {
		if sel := find(doc); sel.Length() > 0 {
			return sel.First()
		}
	}
	if body := doc.Find("body"); body.Length() > 0 {
		return body.First()
	}
	return doc.Selection
}
