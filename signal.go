package pagesig

// PageSignals holds the signals extracted from a single document.
// It is the output of per-document analysis, before any batch-wide
// normalization or scoring.
type PageSignals struct {
	// Title is the document title, used by the relevancy scorer.
	Title string `json:"title"`

	// Paragraphs are the trimmed texts of paragraph elements within the
	// content region, in document order.
	Paragraphs []string `json:"paragraphs"`

	// WordCount is the number of whitespace-delimited tokens in the
	// space-joined paragraph text.
	WordCount int `json:"wordCount"`

	// SectionCount is the number of heading elements (h1-h6) within the
	// content region at any depth.
	SectionCount int `json:"sectionCount"`

	// Author is the resolved byline, or empty if no resolver stage matched.
	Author string `json:"author,omitempty"`

	// Links are the outbound content links, de-duplicated in
	// first-occurrence order.
	Links []string `json:"links"`

	// Relevancy is the keyword relevancy score in [0,1].
	// Nil when no keyword was supplied (absent, not zero).
	Relevancy *float64 `json:"relevancy,omitempty"`
}

// Record is the per-document result of a batch run. Exactly one of
// (signal fields populated) or (Err populated) holds; a record never
// mixes partial success with an error.
type Record struct {
	Domain        string   `json:"domain"`
	URL           string   `json:"url"`
	WordCount     int      `json:"wordCount"`
	Relevancy     *float64 `json:"relevancy,omitempty"`
	SectionCount  int      `json:"sectionCount"`
	Author        string   `json:"author,omitempty"`
	AuthorPresent bool     `json:"authorPresent"`
	OutboundLinks int      `json:"outboundLinkCount"`
	Err           string   `json:"error,omitempty"`

	// Overall is the weighted composite score, set by ScoreRecords.
	// Nil for records with an error.
	Overall *float64 `json:"overallScore,omitempty"`
}

// Validate returns an error if the record contains invalid fields.
func (r *Record) Validate() error {
	if r.URL == "" {
		return Errorf(EINVALID, "record URL required")
	}
	if r.Err != "" && (r.WordCount != 0 || r.SectionCount != 0 || r.OutboundLinks != 0 || r.Relevancy != nil) {
		return Errorf(EINVALID, "record mixes error with signal values")
	}
	return nil
}

// DomainScore is the mean composite score for all scored records sharing
// a domain. A read-only derived view over a batch result.
type DomainScore struct {
	Domain string  `json:"domain"`
	Mean   float64 `json:"meanScore"`
	Count  int     `json:"count"`
}

// BatchResult is the outcome of analyzing a batch of URLs.
// Records preserve input URL order.
type BatchResult struct {
	Records []Record      `json:"records"`
	Domains []DomainScore `json:"domains,omitempty"`
}
