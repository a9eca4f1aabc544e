package sources

import (
	"context"

	"github.com/orgdocs/orgdocs/pkg/core"
	"github.com/orgdocs/orgdocs/pkg/log"
	"github.com/orgdocs/orgdocs/pkg/search"
	"github.com/orgdocs/orgdocs/pkg/storage"
)

const locationLimit = 10

var locationFields = []string{"name", "address", "city", "state", "postal_code", "country", "notes"}

// Locations searches the physical sites of each organization.
type Locations struct {
	store  *storage.Store
	logger *log.Logger
}

func NewLocations(store *storage.Store) *Locations {
	return &Locations{store: store, logger: log.ForSource("locations")}
}

func (s *Locations) Type() core.ResultType { return core.TypeLocation }

func (s *Locations) Search(ctx context.Context, query string, scope core.Scope, orgID string) ([]core.SearchResult, error) {
	rows, err := s.store.Select(ctx, storage.Query{
		Table:        "locations",
		Columns:      []string{"id", "organization_id", "name", "address", "city", "state", "postal_code", "country", "phone", "notes", "created_at", "updated_at"},
		MatchColumns: locationFields,
		Term:         query,
		OrgColumn:    "organization_id",
		OrgID:        tenantID(scope, orgID),
		Limit:        locationLimit,
	})
	if err != nil {
		return nil, err
	}

	results := make([]core.SearchResult, 0, len(rows))
	for _, row := range rows {
		title := row["name"]
		if title == "" {
			title = "Unnamed Location"
		}
		description := joinNonEmpty(", ", row["address"], row["city"], row["state"], row["country"])

		results = append(results, core.SearchResult{
			ID:               row["id"],
			Title:            title,
			Description:      description,
			Type:             core.TypeLocation,
			OrganizationID:   row["organization_id"],
			OrganizationName: orgDisplayName(ctx, s.store, s.logger, row["organization_id"]),
			URL:              "/organizations/" + row["organization_id"] + "/locations",
			MatchedFields:    matchedFields(query, row, locationFields),
			MatchedText:      search.Excerpt(joinNonEmpty(" ", title, description), query),
			RelevanceScore:   search.Score(query, title, description),
			Metadata: map[string]any{
				"phone": row["phone"],
			},
			CreatedAt: parseTime(row["created_at"]),
			UpdatedAt: parseTime(row["updated_at"]),
		})
	}
	return results, nil
}
