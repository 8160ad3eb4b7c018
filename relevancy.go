package pagesig

import (
	"math"
	"strings"
	"unicode"
)

// Relevancy computes the cosine similarity between a keyword and a
// document under a TF-IDF model fitted over exactly this two-document
// corpus: {keyword, title + " " + fullText}. The score is corpus-relative,
// measuring how prominently the keyword's vocabulary appears in the
// document, not absolute topical relevance.
//
// Returns ok=false when the keyword is empty or blank: relevancy is then
// absent, not zero, since zero would falsely imply "measured and found no
// overlap".
func Relevancy(fullText, title, keyword string) (score float64, ok bool) {
	if strings.TrimSpace(keyword) == "" {
		return 0, false
	}

	keywordTerms := tokenize(keyword)
	docTerms := tokenize(title + " " + fullText)

	idf := inverseDocFreqs(keywordTerms, docTerms)

	a := normalize(termWeights(keywordTerms, idf))
	b := normalize(termWeights(docTerms, idf))

	var dot float64
	for term, wa := range a {
		dot += wa * b[term]
	}
	return dot, true
}

// tokenize lowercases text and splits it into terms of two or more
// word characters, matching the vectorizer behavior the scoring model
// was calibrated against. Single-character tokens are dropped.
func tokenize(text string) []string {
	isSep := func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
	}

	var terms []string
	for _, tok := range strings.FieldsFunc(strings.ToLower(text), isSep) {
		if len([]rune(tok)) >= 2 {
			terms = append(terms, tok)
		}
	}
	return terms
}

// inverseDocFreqs computes smoothed idf values, ln((1+n)/(1+df))+1 with
// n=2, over the union vocabulary of the two term lists.
func inverseDocFreqs(docs ...[]string) map[string]float64 {
	n := float64(len(docs))

	df := make(map[string]float64)
	for _, doc := range docs {
		seen := make(map[string]bool, len(doc))
		for _, term := range doc {
			if !seen[term] {
				seen[term] = true
				df[term]++
			}
		}
	}

	idf := make(map[string]float64, len(df))
	for term, freq := range df {
		idf[term] = math.Log((1+n)/(1+freq)) + 1
	}
	return idf
}

// termWeights returns tf*idf weights for the terms of one document.
func termWeights(terms []string, idf map[string]float64) map[string]float64 {
	w := make(map[string]float64, len(terms))
	for _, term := range terms {
		w[term] += idf[term]
	}
	return w
}

// normalize scales a weight vector to unit (l2) length.
// A zero vector is returned unchanged so its cosine with anything is 0.
func normalize(w map[string]float64) map[string]float64 {
	var sumSquares float64
	for _, v := range w {
		sumSquares += v * v
	}
	if sumSquares == 0 {
		return w
	}
	norm := math.Sqrt(sumSquares)
	for term, v := range w {
		w[term] = v / norm
	}
	return w
}
