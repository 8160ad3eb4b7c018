package pagesig

import (
	"net/url"
	"sort"
	"strings"
)

// ScoreRecords computes the weighted composite score for each successful
// record and returns a new slice; the input is not modified. Word, section,
// and link counts are normalized into [0,1] against the maxima of the
// error-free subset (a metric whose maximum is 0 normalizes to 0 for all
// records), author presence contributes as {0,1}, and relevancy is used
// unnormalized. Records with an error receive no score. If all weights are
// zero the composite score is 0 for every successful record.
//
// Normalization is a barrier: maxima are only known once every record is
// present, so this must run after the whole batch has been collected.
func ScoreRecords(records []Record, weights WeightConfig) []Record {
	out := make([]Record, len(records))
	copy(out, records)

	norm, ok := weights.Normalized()
	if !ok {
		for i := range out {
			if out[i].Err == "" {
				zero := 0.0
				out[i].Overall = &zero
			}
		}
		return out
	}

	var maxWords, maxSections, maxLinks int
	var any bool
	for _, r := range out {
		if r.Err != "" {
			continue
		}
		any = true
		maxWords = max(maxWords, r.WordCount)
		maxSections = max(maxSections, r.SectionCount)
		maxLinks = max(maxLinks, r.OutboundLinks)
	}
	if !any {
		return out
	}

	for i := range out {
		if out[i].Err != "" {
			continue
		}
		score := norm.WordCount*normalizeCount(out[i].WordCount, maxWords) +
			norm.Sections*normalizeCount(out[i].SectionCount, maxSections) +
			norm.Links*normalizeCount(out[i].OutboundLinks, maxLinks)
		if out[i].AuthorPresent {
			score += norm.Author
		}
		if out[i].Relevancy != nil {
			score += norm.Relevancy * *out[i].Relevancy
		}
		out[i].Overall = &score
	}
	return out
}

// normalizeCount maps v into [0,1] against the batch maximum.
func normalizeCount(v, maxV int) float64 {
	if maxV == 0 {
		return 0
	}
	return float64(v) / float64(maxV)
}

// GroupByDomain computes the mean composite score per domain over the
// scored records, ordered by descending mean (ties broken by domain name).
// Records without a score are skipped.
func GroupByDomain(records []Record) []DomainScore {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, r := range records {
		if r.Overall == nil {
			continue
		}
		sums[r.Domain] += *r.Overall
		counts[r.Domain]++
	}

	out := make([]DomainScore, 0, len(sums))
	for domain, sum := range sums {
		out = append(out, DomainScore{
			Domain: domain,
			Mean:   sum / float64(counts[domain]),
			Count:  counts[domain],
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Mean != out[j].Mean {
			return out[i].Mean > out[j].Mean
		}
		return out[i].Domain < out[j].Domain
	})
	return out
}

// Domain returns the host component of rawURL, lowercased, without port,
// and with a leading "www." prefix stripped. Returns an empty string when
// the URL has no parseable host.
func Domain(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	host := strings.ToLower(u.Hostname())
	return strings.TrimPrefix(host, "www.")
}
