package sources

import (
	"context"

	"github.com/orgdocs/orgdocs/pkg/core"
	"github.com/orgdocs/orgdocs/pkg/log"
	"github.com/orgdocs/orgdocs/pkg/search"
	"github.com/orgdocs/orgdocs/pkg/storage"
)

const configurationLimit = 15

var configurationFields = []string{"name", "config_type", "hostname", "ip_address", "manufacturer", "model", "serial_number", "notes"}

// Configurations searches network and device configuration records.
type Configurations struct {
	store  *storage.Store
	logger *log.Logger
}

func NewConfigurations(store *storage.Store) *Configurations {
	return &Configurations{store: store, logger: log.ForSource("configurations")}
}

func (s *Configurations) Type() core.ResultType { return core.TypeConfiguration }

func (s *Configurations) Search(ctx context.Context, query string, scope core.Scope, orgID string) ([]core.SearchResult, error) {
	rows, err := s.store.Select(ctx, storage.Query{
		Table:        "configurations",
		Columns:      []string{"id", "organization_id", "name", "config_type", "hostname", "ip_address", "manufacturer", "model", "serial_number", "notes", "created_at", "updated_at"},
		MatchColumns: configurationFields,
		Term:         query,
		OrgColumn:    "organization_id",
		OrgID:        tenantID(scope, orgID),
		Limit:        configurationLimit,
	})
	if err != nil {
		return nil, err
	}

	results := make([]core.SearchResult, 0, len(rows))
	for _, row := range rows {
		title := row["name"]
		if title == "" {
			title = "Unnamed Configuration"
		}
		description := joinNonEmpty(", ", row["hostname"], row["ip_address"])

		results = append(results, core.SearchResult{
			ID:               row["id"],
			Title:            title,
			Description:      description,
			Type:             core.TypeConfiguration,
			Subtype:          row["config_type"],
			OrganizationID:   row["organization_id"],
			OrganizationName: orgDisplayName(ctx, s.store, s.logger, row["organization_id"]),
			URL:              "/organizations/" + row["organization_id"] + "/configurations",
			MatchedFields:    matchedFields(query, row, configurationFields),
			MatchedText:      search.Excerpt(joinNonEmpty(" ", title, description), query),
			RelevanceScore:   search.Score(query, title, description),
			Metadata: map[string]any{
				"manufacturer":  row["manufacturer"],
				"model":         row["model"],
				"serial_number": row["serial_number"],
			},
			CreatedAt: parseTime(row["created_at"]),
			UpdatedAt: parseTime(row["updated_at"]),
		})
	}
	return results, nil
}
