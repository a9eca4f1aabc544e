package core

import (
	"testing"
	"time"
)

func TestResultTypeValid(t *testing.T) {
	for _, rt := range ResultTypes {
		if !rt.Valid() {
			t.Errorf("type %q should be valid", rt)
		}
	}
	if ResultType("maintenance_window").Valid() {
		t.Error("unknown type should not be valid")
	}
	if ResultType("").Valid() {
		t.Error("empty type should not be valid")
	}
}

func TestFiltersEmpty(t *testing.T) {
	if !(Filters{}).Empty() {
		t.Error("zero-value filters should be empty")
	}
	if (Filters{Categories: []string{"network"}}).Empty() {
		t.Error("filters with a category should not be empty")
	}
}

func TestFiltersMatch(t *testing.T) {
	created := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	result := SearchResult{
		Type:           TypeContact,
		OrganizationID: "org-1",
		Category:       "people",
		CreatedAt:      &created,
	}

	tests := []struct {
		name    string
		filters Filters
		want    bool
	}{
		{"empty filters match everything", Filters{}, true},
		{"matching content type", Filters{ContentTypes: []ResultType{TypeContact}}, true},
		{"non-matching content type", Filters{ContentTypes: []ResultType{TypeDocument}}, false},
		{"matching organization", Filters{OrganizationIDs: []string{"org-1", "org-2"}}, true},
		{"non-matching organization", Filters{OrganizationIDs: []string{"org-9"}}, false},
		{"matching category", Filters{Categories: []string{"people"}}, true},
		{"non-matching category", Filters{Categories: []string{"network"}}, false},
		{
			"date range containing creation time",
			Filters{DateRange: &DateRange{
				Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
				End:   time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
			}},
			true,
		},
		{
			"date range boundary is inclusive",
			Filters{DateRange: &DateRange{Start: created, End: created}},
			true,
		},
		{
			"date range excluding creation time",
			Filters{DateRange: &DateRange{
				Start: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
				End:   time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
			}},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filters.Match(result); got != tt.want {
				t.Errorf("Match() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFiltersMatchNoCreationTime(t *testing.T) {
	// Results without a creation time pass date filtering unconditionally.
	filters := Filters{DateRange: &DateRange{
		Start: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2030, 12, 31, 0, 0, 0, 0, time.UTC),
	}}
	if !filters.Match(SearchResult{Type: TypeAsset}) {
		t.Error("result without created_at should pass date-range filter")
	}
}
