package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/pagesig"
)

// Ensure Analyzer implements pagesig.Analyzer.
var _ pagesig.Analyzer = (*Analyzer)(nil)

// Analyzer wraps a pagesig.Analyzer with debug logging of extracted signals.
type Analyzer struct {
	next   pagesig.Analyzer
	logger *slog.Logger
}

// NewAnalyzer creates a new logging Analyzer.
func NewAnalyzer(next pagesig.Analyzer, logger *slog.Logger) *Analyzer {
	return &Analyzer{next: next, logger: logger}
}

// Analyze delegates to the wrapped analyzer and logs the extracted signals.
func (a *Analyzer) Analyze(rawHTML string, keyword string) (*pagesig.PageSignals, error) {
	begin := time.Now()
	signals, err := a.next.Analyze(rawHTML, keyword)
	if err != nil {
		a.logger.Error("analysis failed",
			"duration", time.Since(begin),
			"error", err,
		)
		return nil, err
	}
	a.logger.Info("analysis",
		"words", signals.WordCount,
		"sections", signals.SectionCount,
		"links", len(signals.Links),
		"author", signals.Author != "",
		"duration", time.Since(begin),
	)
	return signals, nil
}
