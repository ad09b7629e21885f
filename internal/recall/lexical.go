package recall

import (
	"context"
	"strings"
)

// LexicalSimilarity scores texts with a normalized Levenshtein ratio:
// 1 - distance/max(len). It needs no network and is the default
// strategy.
type LexicalSimilarity struct{}

// NewLexicalSimilarity creates the lexical strategy.
func NewLexicalSimilarity() *LexicalSimilarity {
	return &LexicalSimilarity{}
}

// Name returns the strategy identifier.
func (l *LexicalSimilarity) Name() string { return "lexical" }

// Score returns one ratio per corpus entry.
func (l *LexicalSimilarity) Score(ctx context.Context, query string, corpus []string) ([]float64, error) {
	scores := make([]float64, len(corpus))
	for i, text := range corpus {
		scores[i] = Ratio(query, text)
	}
	return scores, nil
}

// Ratio computes the normalized edit-distance similarity of two
// strings, case-insensitively. Identical strings score 1.0, strings
// with nothing in common score 0.0, and the function is symmetric.
func Ratio(a, b string) float64 {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))

	if a == b {
		return 1.0
	}

	ra := []rune(a)
	rb := []rune(b)
	longest := len(ra)
	if len(rb) > longest {
		longest = len(rb)
	}
	if longest == 0 {
		return 1.0
	}

	return 1.0 - float64(levenshtein(ra, rb))/float64(longest)
}

// levenshtein computes the edit distance between two rune slices using
// a two-row dynamic programming table.
func levenshtein(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			curr[j] = prev[j-1] + cost
			if del := prev[j] + 1; del < curr[j] {
				curr[j] = del
			}
			if ins := curr[j-1] + 1; ins < curr[j] {
				curr[j] = ins
			}
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}
