package search

import (
	"strings"
	"unicode"
)

// normalizeText lowercases, replaces non-alphanumeric runes with spaces,
// and collapses whitespace, so that scores ignore case and punctuation.
// Alphanumeric is Unicode-aware, keeping accented label text intact.
func normalizeText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// stringRatio is a normalized indel similarity in [0, 100]: 100 for
// identical strings after normalization, 0 for strings sharing nothing.
func stringRatio(a, b string) float64 {
	a = normalizeText(a)
	b = normalizeText(b)
	if a == b {
		return 100
	}
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	ra := []rune(a)
	rb := []rune(b)
	common := lcsLength(ra, rb)
	return 100 * float64(2*common) / float64(len(ra)+len(rb))
}

// lcsLength computes the longest-common-subsequence length with a
// rolling single-row table.
func lcsLength(a, b []rune) int {
	row := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		prev := 0
		for j := 1; j <= len(b); j++ {
			current := row[j]
			if a[i-1] == b[j-1] {
				row[j] = prev + 1
			} else if row[j-1] > row[j] {
				row[j] = row[j-1]
			}
			prev = current
		}
	}
	return row[len(b)]
}

// tokenSetRatio scores by shared-token coverage of the query: 100 when
// every query token appears in the candidate, 0 when none do. Suited to
// matching short queries against long free text such as definitions.
func tokenSetRatio(query, candidate string) float64 {
	queryTokens := strings.Fields(normalizeText(query))
	if len(queryTokens) == 0 {
		return 0
	}

	candidateTokens := make(map[string]bool)
	for _, token := range strings.Fields(normalizeText(candidate)) {
		candidateTokens[token] = true
	}

	shared := 0
	for _, token := range queryTokens {
		if candidateTokens[token] {
			shared++
		}
	}
	return 100 * float64(shared) / float64(len(queryTokens))
}
