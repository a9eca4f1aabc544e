package sources

import (
	"context"

	"github.com/orgdocs/orgdocs/pkg/core"
	"github.com/orgdocs/orgdocs/pkg/log"
	"github.com/orgdocs/orgdocs/pkg/search"
	"github.com/orgdocs/orgdocs/pkg/storage"
)

const customFieldLimit = 8

var customFieldFields = []string{"name", "value"}

// CustomFields searches user-defined fields attached to other entities.
type CustomFields struct {
	store  *storage.Store
	logger *log.Logger
}

func NewCustomFields(store *storage.Store) *CustomFields {
	return &CustomFields{store: store, logger: log.ForSource("custom_fields")}
}

func (s *CustomFields) Type() core.ResultType { return core.TypeCustomField }

func (s *CustomFields) Search(ctx context.Context, query string, scope core.Scope, orgID string) ([]core.SearchResult, error) {
	rows, err := s.store.Select(ctx, storage.Query{
		Table:        "custom_fields",
		Columns:      []string{"id", "organization_id", "entity_type", "name", "value", "created_at", "updated_at"},
		MatchColumns: customFieldFields,
		Term:         query,
		OrgColumn:    "organization_id",
		OrgID:        tenantID(scope, orgID),
		Limit:        customFieldLimit,
	})
	if err != nil {
		return nil, err
	}

	results := make([]core.SearchResult, 0, len(rows))
	for _, row := range rows {
		title := row["name"]
		if title == "" {
			title = "Unnamed Field"
		}
		description := row["value"]

		results = append(results, core.SearchResult{
			ID:               row["id"],
			Title:            title,
			Description:      description,
			Type:             core.TypeCustomField,
			Subtype:          row["entity_type"],
			OrganizationID:   row["organization_id"],
			OrganizationName: orgDisplayName(ctx, s.store, s.logger, row["organization_id"]),
			URL:              "/organizations/" + row["organization_id"] + "/custom-fields",
			MatchedFields:    matchedFields(query, row, customFieldFields),
			MatchedText:      search.Excerpt(joinNonEmpty(" ", title, description), query),
			RelevanceScore:   search.Score(query, title, description),
			CreatedAt:        parseTime(row["created_at"]),
			UpdatedAt:        parseTime(row["updated_at"]),
		})
	}
	return results, nil
}
