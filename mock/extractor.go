package mock

import "github.com/fwojciec/pagesig"

var _ pagesig.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of pagesig.Extractor.
type Extractor struct {
	ExtractFn func(rawHTML string) (string, error)
}

func (e *Extractor) Extract(rawHTML string) (string, error) {
	return e.ExtractFn(rawHTML)
}
