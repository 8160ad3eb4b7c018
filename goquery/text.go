package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// extractText collects the trimmed text of every paragraph element within
// the region, in document order, and counts the whitespace-delimited
// tokens of the space-joined result. An empty region yields a zero count,
// not an error.
func extractText(region *goquery.Selection) (paragraphs []string, wordCount int) {
	region.Find("p").Each(func(_ int, p *goquery.Selection) {
		paragraphs = append(paragraphs, strings.TrimSpace(p.Text()))
	})
	wordCount = len(strings.Fields(strings.Join(paragraphs, " ")))
	return paragraphs, wordCount
}

// countSections counts heading elements h1 through h6 within the region at
// any nesting depth. No validation of heading hierarchy is performed; the
// count is a structural-richness proxy only.
func countSections(region *goquery.Selection) int {
	return region.Find("h1, h2, h3, h4, h5, h6").Length()
}
