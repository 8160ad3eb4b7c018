package pagesig_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/pagesig"
	"github.com/stretchr/testify/assert"
)

func TestRelevancy(t *testing.T) {
	t.Parallel()

	t.Run("absent when keyword is empty", func(t *testing.T) {
		t.Parallel()

		_, ok := pagesig.Relevancy("some document text", "Title", "")

		assert.False(t, ok)
	})

	t.Run("absent when keyword is blank", func(t *testing.T) {
		t.Parallel()

		_, ok := pagesig.Relevancy("some document text", "Title", "   ")

		assert.False(t, ok)
	})

	t.Run("dominant keyword scores higher than a single mention", func(t *testing.T) {
		t.Parallel()

		dominated := strings.Repeat("rust ", 500)

		// 1,000 unrelated words plus a single "rust".
		unrelated := make([]string, 0, 1001)
		for i := 0; i < 1000; i++ {
			unrelated = append(unrelated, "filler"+string(rune('a'+i%26)))
		}
		unrelated = append(unrelated, "rust")
		sparse := strings.Join(unrelated, " ")

		high, ok := pagesig.Relevancy(dominated, "", "rust")
		assert.True(t, ok)
		low, ok := pagesig.Relevancy(sparse, "", "rust")
		assert.True(t, ok)

		assert.Greater(t, high, low)
	})

	t.Run("score is within unit interval", func(t *testing.T) {
		t.Parallel()

		score, ok := pagesig.Relevancy("concurrency in go is built on goroutines", "Go Concurrency", "goroutines")

		assert.True(t, ok)
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 1.0)
		assert.Positive(t, score)
	})

	t.Run("no vocabulary overlap scores zero", func(t *testing.T) {
		t.Parallel()

		score, ok := pagesig.Relevancy("cooking pasta with tomatoes", "Dinner", "kubernetes")

		assert.True(t, ok)
		assert.Zero(t, score)
	})

	t.Run("document consisting of the keyword scores one", func(t *testing.T) {
		t.Parallel()

		score, ok := pagesig.Relevancy("rust rust rust", "", "rust")

		assert.True(t, ok)
		assert.InDelta(t, 1.0, score, 1e-9)
	})

	t.Run("title participates in the document vector", func(t *testing.T) {
		t.Parallel()

		withTitle, _ := pagesig.Relevancy("unrelated body text entirely", "rust programming", "rust")
		withoutTitle, _ := pagesig.Relevancy("unrelated body text entirely", "", "rust")

		assert.Greater(t, withTitle, withoutTitle)
	})

	t.Run("single character keyword vectorizes to zero", func(t *testing.T) {
		t.Parallel()

		// Tokens shorter than two characters are dropped, so the keyword
		// vector is empty and the cosine is 0 (still measured, not absent).
		score, ok := pagesig.Relevancy("a a a", "", "a")

		assert.True(t, ok)
		assert.Zero(t, score)
	})
}
