package sources

import (
	"context"

	"github.com/orgdocs/orgdocs/pkg/core"
	"github.com/orgdocs/orgdocs/pkg/log"
	"github.com/orgdocs/orgdocs/pkg/search"
	"github.com/orgdocs/orgdocs/pkg/storage"
)

const organizationLimit = 10

var organizationFields = []string{"name", "description", "website", "phone"}

// Organizations searches the tenant roots themselves. In organization scope
// this source returns nothing: organizations are not sub-resources of
// themselves.
type Organizations struct {
	store  *storage.Store
	logger *log.Logger
}

func NewOrganizations(store *storage.Store) *Organizations {
	return &Organizations{store: store, logger: log.ForSource("organizations")}
}

func (s *Organizations) Type() core.ResultType { return core.TypeOrganization }

func (s *Organizations) Search(ctx context.Context, query string, scope core.Scope, orgID string) ([]core.SearchResult, error) {
	if scope == core.ScopeOrganization {
		return nil, nil
	}

	rows, err := s.store.Select(ctx, storage.Query{
		Table:        "organizations",
		Columns:      []string{"id", "name", "description", "website", "phone", "created_at", "updated_at"},
		MatchColumns: organizationFields,
		Term:         query,
		Limit:        organizationLimit,
	})
	if err != nil {
		return nil, err
	}

	results := make([]core.SearchResult, 0, len(rows))
	for _, row := range rows {
		title := row["name"]
		if title == "" {
			title = "Unnamed Organization"
		}
		description := row["description"]

		results = append(results, core.SearchResult{
			ID:             row["id"],
			Title:          title,
			Description:    description,
			Type:           core.TypeOrganization,
			URL:            "/organizations/" + row["id"],
			MatchedFields:  matchedFields(query, row, organizationFields),
			MatchedText:    search.Excerpt(joinNonEmpty(" ", title, description), query),
			RelevanceScore: search.Score(query, title, description),
			Metadata: map[string]any{
				"website": row["website"],
				"phone":   row["phone"],
			},
			CreatedAt: parseTime(row["created_at"]),
			UpdatedAt: parseTime(row["updated_at"]),
		})
	}
	return results, nil
}
