package search

import (
	"regexp"
	"strings"
)

// Score computes the relevance of a result from its title and description.
//
// The heuristic is additive and deterministic:
//   - exact case-insensitive title match: 100
//   - otherwise, title substring match 50 plus a 30 word-boundary bonus
//   - description substring match 25 plus a 15 word-boundary bonus
//
// The word-boundary bonus rewards whole-word hits over partial substring
// hits: "cat" inside "category" scores lower than "cat" as its own word.
// Empty title or description are valid and simply contribute nothing.
func Score(query, title, description string) int {
	q := strings.ToLower(query)
	if q == "" {
		return 0
	}

	score := 0
	boundary := wordBoundaryPattern(query)

	if strings.ToLower(title) == q {
		score += 100
	} else {
		if strings.Contains(strings.ToLower(title), q) {
			score += 50
		}
		if boundary.MatchString(title) {
			score += 30
		}
	}

	if strings.Contains(strings.ToLower(description), q) {
		score += 25
	}
	if boundary.MatchString(description) {
		score += 15
	}

	return score
}

// wordBoundaryPattern compiles a case-insensitive whole-word pattern for the
// query. The query is quoted, so user input is matched literally.
func wordBoundaryPattern(query string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(query) + `\b`)
}
