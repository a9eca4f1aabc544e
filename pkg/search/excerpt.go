package search

import (
	"strings"
	"unicode/utf8"
)

const (
	// excerptWindow is the number of characters kept on each side of the
	// first query occurrence.
	excerptWindow = 50

	// excerptMaxLength caps the fallback excerpt when the query is not
	// found in the text (e.g. it matched a field that is not displayed).
	excerptMaxLength = 150
)

// Excerpt returns a short window of text around the first case-insensitive
// occurrence of query, with ellipsis markers on truncated boundaries. When
// the query does not occur, the first excerptMaxLength characters are
// returned, with a trailing ellipsis if the text was longer.
func Excerpt(text, query string) string {
	if text == "" {
		return ""
	}

	idx := -1
	if query != "" {
		idx = strings.Index(strings.ToLower(text), strings.ToLower(query))
	}
	if idx < 0 {
		if len(text) <= excerptMaxLength {
			return text
		}
		return text[:runeStart(text, excerptMaxLength)] + "..."
	}

	start := idx - excerptWindow
	prefix := ""
	if start < 0 {
		start = 0
	} else if start > 0 {
		start = runeStart(text, start)
		prefix = "..."
	}

	end := idx + len(query) + excerptWindow
	suffix := ""
	if end >= len(text) {
		end = len(text)
	} else {
		end = runeStart(text, end)
		suffix = "..."
	}

	return prefix + text[start:end] + suffix
}

// runeStart moves a byte offset back to the nearest rune boundary so slicing
// never cuts a multi-byte character in half.
func runeStart(s string, i int) int {
	for i > 0 && !utf8.RuneStart(s[i]) {
		i--
	}
	return i
}
