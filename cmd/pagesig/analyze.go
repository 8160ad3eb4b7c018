package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fwojciec/pagesig"
	"github.com/fwojciec/pagesig/batch"
)

// Run executes the analyze command.
func (c *AnalyzeCmd) Run(deps *Dependencies) error {
	weights, err := c.resolveWeights()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagesig.ErrorMessage(err))
		return err
	}
	deps.Runner.Weights = weights

	progress := func(event batch.ProgressEvent) {
		switch event.Type {
		case batch.ProgressStarted:
			fmt.Fprintf(deps.Stderr, "Analyzing %d URLs\n", event.Total)
		case batch.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  [%d/%d] failed: %s: %s\n",
				event.Completed, event.Total, event.URL, pagesig.ErrorMessage(event.Error))
		case batch.ProgressCompleted:
			fmt.Fprintf(deps.Stderr, "  [%d/%d] %s\n", event.Completed, event.Total, event.URL)
		}
	}

	result, err := deps.Runner.Run(deps.Ctx, c.URLs, c.Keyword, progress)
	if err != nil {
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	printRecords(deps.Stdout, result.Records)
	if c.ByDomain {
		fmt.Fprintln(deps.Stdout)
		printDomains(deps.Stdout, result.Domains)
	}
	return nil
}

// resolveWeights layers the weight sources: defaults, then the YAML config
// file, then explicit flags.
func (c *AnalyzeCmd) resolveWeights() (pagesig.WeightConfig, error) {
	weights := pagesig.DefaultWeights()

	if c.Config != "" {
		loaded, err := loadWeights(c.Config)
		if err != nil {
			return pagesig.WeightConfig{}, err
		}
		weights = loaded
	}

	if c.WRelevancy != nil {
		weights.Relevancy = *c.WRelevancy
	}
	if c.WWords != nil {
		weights.WordCount = *c.WWords
	}
	if c.WLinks != nil {
		weights.Links = *c.WLinks
	}
	if c.WSections != nil {
		weights.Sections = *c.WSections
	}
	if c.WAuthor != nil {
		weights.Author = *c.WAuthor
	}

	if err := weights.Validate(); err != nil {
		return pagesig.WeightConfig{}, err
	}
	return weights, nil
}

func printRecords(w io.Writer, records []pagesig.Record) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "URL\tWORDS\tSECTIONS\tLINKS\tAUTHOR\tRELEVANCY\tSCORE\tERROR")
	for _, r := range records {
		if r.Err != "" {
			fmt.Fprintf(tw, "%s\t-\t-\t-\t-\t-\t-\t%s\n", r.URL, r.Err)
			continue
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%s\t%s\t%s\t\n",
			r.URL, r.WordCount, r.SectionCount, r.OutboundLinks,
			orDash(r.Author), formatScore(r.Relevancy), formatScore(r.Overall))
	}
	tw.Flush()
}

func printDomains(w io.Writer, domains []pagesig.DomainScore) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DOMAIN\tPAGES\tMEAN SCORE\t")
	for _, d := range domains {
		fmt.Fprintf(tw, "%s\t%d\t%.3f\t%s\n", d.Domain, d.Count, d.Mean, scoreBar(d.Mean))
	}
	tw.Flush()
}

// scoreBar renders a crude horizontal bar for a score in [0,1].
func scoreBar(score float64) string {
	n := int(score*20 + 0.5)
	if n < 0 {
		n = 0
	} else if n > 20 {
		n = 20
	}
	return strings.Repeat("#", n)
}

func formatScore(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.3f", *v)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
