// Package sources implements the per-entity search sources. Each source
// queries its backing table with a case-insensitive substring filter,
// optionally restricted to one organization, and maps matching rows into the
// normalized core.SearchResult shape.
//
// Sources are aggregated in a fixed order (sidebar items, page contents,
// organizations, contacts, locations, documents, passwords, configurations,
// domains, assets, custom fields); All returns them in that order. Score
// ties preserve it, so changing the order is a behavior change.
package sources

import (
	"context"
	"strings"
	"time"

	"github.com/orgdocs/orgdocs/pkg/core"
	"github.com/orgdocs/orgdocs/pkg/log"
	"github.com/orgdocs/orgdocs/pkg/storage"
)

// All returns every search source wired to the store, in the fixed
// aggregation order.
func All(store *storage.Store) []core.Searcher {
	return []core.Searcher{
		NewSidebarItems(store),
		NewPageContents(store),
		NewOrganizations(store),
		NewContacts(store),
		NewLocations(store),
		NewDocuments(store),
		NewPasswords(store),
		NewConfigurations(store),
		NewDomains(store),
		NewAssets(store),
		NewCustomFields(store),
	}
}

// tenantID returns the tenant restriction for a query: empty (all tenants)
// unless the search is organization-scoped with a concrete organization.
func tenantID(scope core.Scope, orgID string) string {
	if scope == core.ScopeOrganization {
		return orgID
	}
	return ""
}

// matchedFields returns the searched fields whose value contains the query,
// case-insensitively, in search order.
func matchedFields(query string, row storage.Row, fields []string) []string {
	q := strings.ToLower(query)
	var matched []string
	for _, field := range fields {
		if strings.Contains(strings.ToLower(row[field]), q) {
			matched = append(matched, field)
		}
	}
	return matched
}

// parseTime parses a stored RFC 3339 timestamp, returning nil for empty or
// malformed values. Timestamps are display metadata; a bad one must not fail
// a search.
func parseTime(value string) *time.Time {
	if value == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil
	}
	return &t
}

// orgDisplayName denormalizes the organization name for display. Lookup
// failures are logged and degrade to an empty name.
func orgDisplayName(ctx context.Context, store *storage.Store, logger *log.Logger, orgID string) string {
	name, err := store.OrganizationName(ctx, orgID)
	if err != nil {
		logger.Warnf("looking up organization name for %s: %v", orgID, err)
		return ""
	}
	return name
}

// joinNonEmpty concatenates the non-empty parts with sep.
func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, part := range parts {
		if strings.TrimSpace(part) != "" {
			kept = append(kept, strings.TrimSpace(part))
		}
	}
	return strings.Join(kept, sep)
}
