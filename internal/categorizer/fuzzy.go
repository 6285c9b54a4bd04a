package categorizer

import (
	"math"
	"strings"
)

// ratio computes a similarity score between two strings on a 0–100 scale from
// their Levenshtein edit distance:
//
//	ratio = round(100 * (len(a)+len(b)-lev(a,b)) / (len(a)+len(b)))
//
// Identical strings score 100; strings sharing nothing score near 0.
func ratio(a, b string) int {
	if a == b {
		return 100
	}
	total := len(a) + len(b)
	if total == 0 {
		return 100
	}
	distance := levenshtein(a, b)
	return int(math.Round(100 * float64(total-distance) / float64(total)))
}

// levenshtein computes the edit distance between two strings using the
// two-row dynamic programming formulation.
func levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = minInt(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func minInt(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}

// tokenOverlap returns the fraction of query tokens that also appear in the
// candidate, in [0,1]. This is the coarse fallback measure used when the edit
// distance pass produces no candidates at all.
func tokenOverlap(query, candidate string) float64 {
	queryTokens := strings.Fields(query)
	if len(queryTokens) == 0 {
		return 0
	}
	candidateTokens := make(map[string]struct{})
	for _, tok := range strings.Fields(candidate) {
		candidateTokens[tok] = struct{}{}
	}
	matched := 0
	for _, tok := range queryTokens {
		if _, ok := candidateTokens[tok]; ok {
			matched++
		}
	}
	return float64(matched) / float64(len(queryTokens))
}
