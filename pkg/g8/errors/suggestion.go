package errors

import (
	"fmt"
	"strings"
)

// Helpers lists the conditional helpers accepted by the template language.
var Helpers = []string{"truthy", "present"}

// SuggestName suggests the closest of the candidate names for an unknown one.
// kind is used in the fallback listing, e.g. "formatters".
func SuggestName(unknown string, candidates []string, kind string) string {
	if len(candidates) == 0 {
		return ""
	}

	minDistance := 1000
	var bestMatch string

	for _, candidate := range candidates {
		dist := levenshteinDistance(unknown, candidate)
		if dist < minDistance {
			minDistance = dist
			bestMatch = candidate
		}
	}

	if minDistance < 3 && minDistance < len([]rune(unknown)) {
		return fmt.Sprintf("Did you mean '%s'?", bestMatch)
	}

	if len(candidates) > 5 {
		return fmt.Sprintf("Valid %s include: %s, ...", kind, strings.Join(candidates[:5], ", "))
	}
	return fmt.Sprintf("Valid %s: %s", kind, strings.Join(candidates, ", "))
}

// SuggestHelper suggests the valid conditional helpers.
func SuggestHelper(unknown string) string {
	return SuggestName(unknown, Helpers, "helpers")
}

// levenshteinDistance computes the edit distance between two strings in runes.
func levenshteinDistance(s1, s2 string) int {
	if s1 == s2 {
		return 0
	}

	r1, r2 := []rune(s1), []rune(s2)
	prev := make([]int, len(r2)+1)
	curr := make([]int, len(r2)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(r1); i++ {
		curr[0] = i
		for j := 1; j <= len(r2); j++ {
			cost := 1
			if r1[i-1] == r2[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(r2)]
}
