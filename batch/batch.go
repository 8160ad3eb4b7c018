// Package batch orchestrates signal extraction over a list of URLs.
// It drives one document at a time through fetch and analysis, isolates
// per-document failures, and runs cross-document normalization and
// composite scoring strictly after every record has been collected.
package batch

import (
	"context"

	"github.com/fwojciec/pagesig"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the bounded worker count used when Runner.
// Concurrency is unset.
const DefaultConcurrency = 10

// Runner analyzes a batch of URLs.
type Runner struct {
	Fetcher     pagesig.Fetcher
	Analyzer    pagesig.Analyzer
	Weights     pagesig.WeightConfig
	Concurrency int
}

// ProgressEvent reports progress during a batch run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress. Events may
// arrive in any order while workers run concurrently.
type ProgressFunc func(event ProgressEvent)

// Run analyzes each URL independently and returns the scored batch.
// One document's failure never aborts the batch: fetch and analysis
// errors are captured in that record's error field and processing
// continues. Records preserve input URL order regardless of worker
// scheduling. Run returns an error only when the context is canceled
// before all records are collected.
func (r *Runner) Run(ctx context.Context, urls []string, keyword string, progress ProgressFunc) (*pagesig.BatchResult, error) {
	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	total := len(urls)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	type indexed struct {
		position int
		record   pagesig.Record
	}
	resultCh := make(chan indexed, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, url := range urls {
			i, url := i, url
			g.Go(func() error {
				resultCh <- indexed{position: i, record: r.processURL(gctx, url, keyword)}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect by position so output order is input order.
	records := make([]pagesig.Record, total)
	completed := 0
	for result := range resultCh {
		completed++
		records[result.position] = result.record

		if progress != nil {
			event := ProgressEvent{
				Type:      ProgressCompleted,
				Completed: completed,
				Total:     total,
				URL:       result.record.URL,
			}
			if result.record.Err != "" {
				event.Type = ProgressFailed
				event.Error = pagesig.Errorf(pagesig.EINTERNAL, "%s", result.record.Err)
			}
			progress(event)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	// Normalization is a barrier: it must only run once every record,
	// success or error, is present.
	scored := pagesig.ScoreRecords(records, r.Weights)

	return &pagesig.BatchResult{
		Records: scored,
		Domains: pagesig.GroupByDomain(scored),
	}, nil
}

// processURL fetches and analyzes a single URL, capturing any failure
// into the record's error field.
func (r *Runner) processURL(ctx context.Context, url string, keyword string) pagesig.Record {
	record := pagesig.Record{
		Domain: pagesig.Domain(url),
		URL:    url,
	}

	html, err := r.Fetcher.Fetch(ctx, url)
	if err != nil {
		record.Err = err.Error()
		return record
	}

	signals, err := r.Analyzer.Analyze(html, keyword)
	if err != nil {
		record.Err = err.Error()
		return record
	}

	record.WordCount = signals.WordCount
	record.SectionCount = signals.SectionCount
	record.Author = signals.Author
	record.AuthorPresent = signals.Author != ""
	record.OutboundLinks = len(signals.Links)
	record.Relevancy = signals.Relevancy
	return record
}
