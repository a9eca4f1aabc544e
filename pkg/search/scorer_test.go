package search

import "testing"

func TestScore(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		title       string
		description string
		want        int
	}{
		{"exact title match", "acme", "Acme", "", 100},
		{"substring but not whole word", "cme", "Acme Corp", "", 50},
		{"substring plus word boundary", "acme", "Acme Corp", "", 80},
		{"title and description whole-word hits", "corp", "Acme Corp", "A technology corp", 120},
		{"description only substring", "server", "Printer", "the server room", 40},
		{"partial inside longer word", "cat", "category", "", 50},
		{"whole word beats partial", "cat", "cat", "", 100},
		{"no match at all", "zebra", "Acme Corp", "A technology corp", 0},
		{"empty query", "", "Acme", "whatever", 0},
		{"empty title and description", "acme", "", "", 0},
		{"case-insensitive exact", "ACME", "acme", "", 100},
		{"exact match does not add title word bonus", "acme", "Acme", "acme is a corp", 140},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.query, tt.title, tt.description); got != tt.want {
				t.Errorf("Score(%q, %q, %q) = %d, want %d", tt.query, tt.title, tt.description, got, tt.want)
			}
		})
	}
}

func TestScoreNonNegative(t *testing.T) {
	queries := []string{"a", "acme", "ZZZ", "100%", "(paren)"}
	for _, q := range queries {
		if got := Score(q, "Some Title", "some description"); got < 0 {
			t.Errorf("Score(%q, ...) = %d, want >= 0", q, got)
		}
	}
}

func TestScoreQuotesRegexMetacharacters(t *testing.T) {
	// A query containing regex metacharacters must be matched literally,
	// not compiled as a pattern.
	if got := Score("10.0.0.1", "Gateway 10.0.0.1", ""); got != 80 {
		t.Errorf("Score with dotted query = %d, want 80", got)
	}
	if got := Score("a+b", "notes about a+b", ""); got < 50 {
		t.Errorf("Score with + in query = %d, want at least 50", got)
	}
}
