package goquery

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// authorResolvers is the ordered fallback chain for byline resolution,
// authority-first: explicit machine-readable metadata beats structured
// data beats semantic-tag heuristics. Each stage returns an empty string
// when it finds nothing.
var authorResolvers = []func(*goquery.Document) string{
	resolveMetaAuthor,
	resolveStructuredDataAuthor,
	resolveRelAuthor,
}

// resolveAuthor runs the resolver chain and returns the first non-empty
// result, or an empty string when every stage comes up empty.
func resolveAuthor(doc *goquery.Document) string {
	for _, resolve := range authorResolvers {
		if author := resolve(doc); author != "" {
			return author
		}
	}
	return ""
}

// resolveMetaAuthor checks the author meta tags.
func resolveMetaAuthor(doc *goquery.Document) string {
	for _, selector := range []string{`meta[name="author"]`, `meta[property="article:author"]`} {
		if content, ok := doc.Find(selector).First().Attr("content"); ok {
			if author := strings.TrimSpace(content); author != "" {
				return author
			}
		}
	}
	return ""
}

// resolveStructuredDataAuthor scans JSON-LD blocks for an author field.
// The author may be an object with a name or a plain string. Blocks are
// frequently malformed in the wild: anything that fails to parse as a
// JSON object is skipped silently and resolution continues.
func resolveStructuredDataAuthor(doc *goquery.Document) string {
	var author string
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, block *goquery.Selection) bool {
		var data map[string]any
		if err := json.Unmarshal([]byte(block.Text()), &data); err != nil {
			return true
		}

		switch v := data["author"].(type) {
		case map[string]any:
			if name, ok := v["name"].(string); ok {
				author = strings.TrimSpace(name)
			}
		case string:
			author = strings.TrimSpace(v)
		}
		return author == ""
	})
	return author
}

// resolveRelAuthor returns the visible text of the first anchor whose rel
// attribute marks it as the author.
func resolveRelAuthor(doc *goquery.Document) string {
	return strings.TrimSpace(doc.Find(`a[rel~="author"]`).First().Text())
}
