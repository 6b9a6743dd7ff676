// file: internal/textmatch/textmatch.go
// version: 1.2.0
// guid: 8d4b6a2e-1f3c-4d5e-9a7b-0c1d2e3f4a5b

package textmatch

import (
	"strings"
	"unicode/utf8"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// DefaultThreshold is the similarity cutoff used for approximate word
// matching throughout the engine.
const DefaultThreshold = 0.6

// Distance returns the Levenshtein edit distance between a and b.
// Comparison is case-insensitive: both inputs are lowered first.
func Distance(a, b string) int {
	return fuzzy.LevenshteinDistance(strings.ToLower(a), strings.ToLower(b))
}

// Similarity returns a normalized similarity score in [0,1]:
// 1 - distance/max(len). Two empty strings are a perfect match.
func Similarity(a, b string) float64 {
	maxLen := utf8.RuneCountInString(a)
	if l := utf8.RuneCountInString(b); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 1
	}
	return 1 - float64(Distance(a, b))/float64(maxLen)
}

// WordsMatch reports whether two single words are similar enough to be
// treated as the same word.
func WordsMatch(queryWord, targetWord string, threshold float64) bool {
	return Similarity(queryWord, targetWord) >= threshold
}

// AnyWordMatches splits both query and target on whitespace and reports
// whether any query word approximately matches any target word. Empty
// inputs produce no words and therefore never match.
//
// Cost is O(words(query) * words(target)) per call, which is fine for the
// short titles and descriptions in the catalog. Don't point it at large
// documents in a tight loop.
func AnyWordMatches(query, target string, threshold float64) bool {
	queryWords := strings.Fields(strings.ToLower(query))
	targetWords := strings.Fields(strings.ToLower(target))

	for _, qw := range queryWords {
		for _, tw := range targetWords {
			if WordsMatch(qw, tw, threshold) {
				return true
			}
		}
	}
	return false
}
