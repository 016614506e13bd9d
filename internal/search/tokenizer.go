// Package search implements keyword ranking over a store snapshot:
// TF-IDF relevance, exponential time decay, and importance weighting.
package search

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// minTokenLen filters single-character noise out of the term stream.
const minTokenLen = 2

// Tokenize lower-cases text and splits it on any non-letter,
// non-digit boundary, dropping tokens shorter than two runes. No
// stemming, no stop words: same input always yields the same terms.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	terms := fields[:0]
	for _, f := range fields {
		if utf8.RuneCountInString(f) >= minTokenLen {
			terms = append(terms, f)
		}
	}
	return terms
}

// queryTerms tokenizes a query and collapses repeated terms so a term
// contributes once no matter how often it appears in the query.
func queryTerms(query string) []string {
	seen := map[string]bool{}
	var terms []string
	for _, t := range Tokenize(query) {
		if !seen[t] {
			seen[t] = true
			terms = append(terms, t)
		}
	}
	return terms
}
