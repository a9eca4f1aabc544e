package sources

import (
	"context"

	"github.com/orgdocs/orgdocs/pkg/core"
	"github.com/orgdocs/orgdocs/pkg/log"
	"github.com/orgdocs/orgdocs/pkg/search"
	"github.com/orgdocs/orgdocs/pkg/storage"
)

const assetLimit = 15

var assetFields = []string{"name", "asset_type", "manufacturer", "model", "serial_number", "location", "notes"}

// Assets searches tracked hardware and software assets.
type Assets struct {
	store  *storage.Store
	logger *log.Logger
}

func NewAssets(store *storage.Store) *Assets {
	return &Assets{store: store, logger: log.ForSource("assets")}
}

func (s *Assets) Type() core.ResultType { return core.TypeAsset }

func (s *Assets) Search(ctx context.Context, query string, scope core.Scope, orgID string) ([]core.SearchResult, error) {
	rows, err := s.store.Select(ctx, storage.Query{
		Table:        "assets",
		Columns:      []string{"id", "organization_id", "name", "asset_type", "manufacturer", "model", "serial_number", "location", "notes", "created_at", "updated_at"},
		MatchColumns: assetFields,
		Term:         query,
		OrgColumn:    "organization_id",
		OrgID:        tenantID(scope, orgID),
		Limit:        assetLimit,
	})
	if err != nil {
		return nil, err
	}

	results := make([]core.SearchResult, 0, len(rows))
	for _, row := range rows {
		title := row["name"]
		if title == "" {
			title = "Unnamed Asset"
		}
		description := joinNonEmpty(" ", row["manufacturer"], row["model"])

		results = append(results, core.SearchResult{
			ID:               row["id"],
			Title:            title,
			Description:      description,
			Type:             core.TypeAsset,
			Subtype:          row["asset_type"],
			OrganizationID:   row["organization_id"],
			OrganizationName: orgDisplayName(ctx, s.store, s.logger, row["organization_id"]),
			URL:              "/organizations/" + row["organization_id"] + "/assets",
			MatchedFields:    matchedFields(query, row, assetFields),
			MatchedText:      search.Excerpt(joinNonEmpty(" ", title, description), query),
			RelevanceScore:   search.Score(query, title, description),
			Metadata: map[string]any{
				"serial_number": row["serial_number"],
				"location":      row["location"],
			},
			CreatedAt: parseTime(row["created_at"]),
			UpdatedAt: parseTime(row["updated_at"]),
		})
	}
	return results, nil
}
