package sources

import (
	"context"

	"github.com/orgdocs/orgdocs/pkg/core"
	"github.com/orgdocs/orgdocs/pkg/log"
	"github.com/orgdocs/orgdocs/pkg/search"
	"github.com/orgdocs/orgdocs/pkg/storage"
)

const sidebarItemLimit = 10

var sidebarItemFields = []string{"label", "slug", "category"}

// SidebarItems searches the runtime-configurable navigation entries.
// Sidebar items support direct navigation, so their URL is item-level.
type SidebarItems struct {
	store  *storage.Store
	logger *log.Logger
}

func NewSidebarItems(store *storage.Store) *SidebarItems {
	return &SidebarItems{store: store, logger: log.ForSource("sidebar_items")}
}

func (s *SidebarItems) Type() core.ResultType { return core.TypeSidebarItem }

func (s *SidebarItems) Search(ctx context.Context, query string, scope core.Scope, orgID string) ([]core.SearchResult, error) {
	rows, err := s.store.Select(ctx, storage.Query{
		Table:        "sidebar_items",
		Columns:      []string{"id", "organization_id", "label", "slug", "icon", "category", "created_at", "updated_at"},
		MatchColumns: sidebarItemFields,
		Term:         query,
		OrgColumn:    "organization_id",
		OrgID:        tenantID(scope, orgID),
		Limit:        sidebarItemLimit,
	})
	if err != nil {
		return nil, err
	}

	results := make([]core.SearchResult, 0, len(rows))
	for _, row := range rows {
		title := row["label"]
		if title == "" {
			title = "Unnamed Sidebar Item"
		}
		description := row["category"]

		results = append(results, core.SearchResult{
			ID:               row["id"],
			Title:            title,
			Description:      description,
			Type:             core.TypeSidebarItem,
			OrganizationID:   row["organization_id"],
			OrganizationName: orgDisplayName(ctx, s.store, s.logger, row["organization_id"]),
			Category:         row["category"],
			URL:              "/organizations/" + row["organization_id"] + "/" + row["slug"],
			MatchedFields:    matchedFields(query, row, sidebarItemFields),
			MatchedText:      search.Excerpt(joinNonEmpty(" ", title, description), query),
			RelevanceScore:   search.Score(query, title, description),
			Metadata: map[string]any{
				"slug": row["slug"],
				"icon": row["icon"],
			},
			CreatedAt: parseTime(row["created_at"]),
			UpdatedAt: parseTime(row["updated_at"]),
		})
	}
	return results, nil
}
