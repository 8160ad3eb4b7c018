package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// extractLinks returns the hrefs of outbound, content-relevant anchors
// within the region, de-duplicated in first-occurrence order. Three
// filters successively remove boilerplate: anchors nested in navigation
// or footer elements, in-page fragment references, and bare relative
// paths. The dot-in-href check is a coarse proxy for "points to a domain
// or a file with an extension"; it has known false positives and
// negatives but its behavior is pinned, so don't improve it silently.
func extractLinks(region *goquery.Selection) []string {
	seen := make(map[string]bool)
	var links []string

	region.Find("a[href]").Each(func(_ int, anchor *goquery.Selection) {
		href, _ := anchor.Attr("href")
		if strings.HasPrefix(href, "#") {
			return
		}
		if !strings.Contains(href, ".") {
			return
		}
		if anchor.ParentsFiltered("nav, footer").Length() > 0 {
			return
		}
		if seen[href] {
			return
		}
		seen[href] = true
		links = append(links, href)
	})

	return links
}
