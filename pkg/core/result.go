// Package core defines the shared domain types of the orgdocs search system:
// the normalized SearchResult shape every source maps its rows into, the
// search scope and filter types, and the Searcher capability interface that
// per-entity sources implement.
package core

import "time"

// ResultType identifies which entity type produced a search result.
// The set is closed: sources must not invent new values at runtime.
type ResultType string

const (
	TypeSidebarItem   ResultType = "sidebar_item"
	TypePageContent   ResultType = "page_content"
	TypeOrganization  ResultType = "organization"
	TypeContact       ResultType = "contact"
	TypeLocation      ResultType = "location"
	TypeDocument      ResultType = "document"
	TypePassword      ResultType = "password"
	TypeConfiguration ResultType = "configuration"
	TypeDomain        ResultType = "domain"
	TypeAsset         ResultType = "asset"
	TypeCustomField   ResultType = "custom_field"
)

// ResultTypes lists every valid ResultType in the fixed order sources are
// aggregated. The order matters: score ties preserve it.
var ResultTypes = []ResultType{
	TypeSidebarItem,
	TypePageContent,
	TypeOrganization,
	TypeContact,
	TypeLocation,
	TypeDocument,
	TypePassword,
	TypeConfiguration,
	TypeDomain,
	TypeAsset,
	TypeCustomField,
}

// Valid reports whether t is one of the closed enumeration values.
func (t ResultType) Valid() bool {
	for _, known := range ResultTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Scope selects whether a search spans all tenants or a single organization.
type Scope string

const (
	ScopeGlobal       Scope = "global"
	ScopeOrganization Scope = "organization"
)

// SearchResult is the normalized projection every source maps its rows into.
// Results are constructed fresh on every search and never persisted; the
// cache stores result lists, not entity state.
type SearchResult struct {
	ID               string         `json:"id"`
	Title            string         `json:"title"`
	Description      string         `json:"description,omitempty"`
	Type             ResultType     `json:"type"`
	Subtype          string         `json:"subtype,omitempty"`
	OrganizationID   string         `json:"organization_id,omitempty"`
	OrganizationName string         `json:"organization_name,omitempty"`
	Category         string         `json:"category,omitempty"`
	URL              string         `json:"url,omitempty"`
	MatchedFields    []string       `json:"matched_fields"`
	MatchedText      string         `json:"matched_text,omitempty"`
	RelevanceScore   int            `json:"relevance_score"`
	Metadata         map[string]any `json:"metadata,omitempty"`
	CreatedAt        *time.Time     `json:"created_at,omitempty"`
	UpdatedAt        *time.Time     `json:"updated_at,omitempty"`
}

// DateRange bounds results by creation time. Both bounds are inclusive.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Filters narrows an aggregated result set after merging. Empty slices and
// a nil date range mean "no restriction", never an error.
type Filters struct {
	ContentTypes    []ResultType `json:"content_types,omitempty"`
	OrganizationIDs []string     `json:"organization_ids,omitempty"`
	Categories      []string     `json:"categories,omitempty"`
	DateRange       *DateRange   `json:"date_range,omitempty"`
}

// Empty reports whether the filter set restricts nothing.
func (f Filters) Empty() bool {
	return len(f.ContentTypes) == 0 &&
		len(f.OrganizationIDs) == 0 &&
		len(f.Categories) == 0 &&
		f.DateRange == nil
}

// Match reports whether a single result passes the filter set.
// Results without a creation time pass the date-range filter unconditionally.
func (f Filters) Match(r SearchResult) bool {
	if len(f.ContentTypes) > 0 && !containsType(f.ContentTypes, r.Type) {
		return false
	}
	if len(f.OrganizationIDs) > 0 && !containsString(f.OrganizationIDs, r.OrganizationID) {
		return false
	}
	if len(f.Categories) > 0 && !containsString(f.Categories, r.Category) {
		return false
	}
	if f.DateRange != nil && r.CreatedAt != nil {
		if r.CreatedAt.Before(f.DateRange.Start) || r.CreatedAt.After(f.DateRange.End) {
			return false
		}
	}
	return true
}

func containsType(haystack []ResultType, needle ResultType) bool {
	for _, t := range haystack {
		if t == needle {
			return true
		}
	}
	return false
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
