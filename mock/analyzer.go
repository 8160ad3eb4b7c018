package mock

import "github.com/fwojciec/pagesig"

var _ pagesig.Analyzer = (*Analyzer)(nil)

// Analyzer is a mock implementation of pagesig.Analyzer.
type Analyzer struct {
	AnalyzeFn func(rawHTML string, keyword string) (*pagesig.PageSignals, error)
}

func (a *Analyzer) Analyze(rawHTML string, keyword string) (*pagesig.PageSignals, error) {
	return a.AnalyzeFn(rawHTML, keyword)
}
