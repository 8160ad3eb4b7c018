package pagesig

// Analyzer extracts signals from a single document's raw HTML.
// Analysis is a pure, synchronous computation: implementations perform no
// I/O and must not retain the parsed document across calls, so a single
// Analyzer is safe for concurrent per-document use.
type Analyzer interface {
	// Analyze parses rawHTML and returns the extracted signals.
	// An empty keyword leaves PageSignals.Relevancy unset.
	Analyze(rawHTML string, keyword string) (*PageSignals, error)
}

// Extractor strips boilerplate from raw HTML before content-region
// location, returning the main content as clean HTML. It only narrows the
// region used for text, section, and link extraction; author and title
// resolution always see the full document.
type Extractor interface {
	Extract(rawHTML string) (contentHTML string, err error)
}
