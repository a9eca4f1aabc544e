package sources

import (
	"context"

	"github.com/orgdocs/orgdocs/pkg/core"
	"github.com/orgdocs/orgdocs/pkg/log"
	"github.com/orgdocs/orgdocs/pkg/search"
	"github.com/orgdocs/orgdocs/pkg/storage"
)

const domainLimit = 10

var domainFields = []string{"name", "registrar", "notes"}

// Domains searches tracked DNS domains.
type Domains struct {
	store  *storage.Store
	logger *log.Logger
}

func NewDomains(store *storage.Store) *Domains {
	return &Domains{store: store, logger: log.ForSource("domains")}
}

func (s *Domains) Type() core.ResultType { return core.TypeDomain }

func (s *Domains) Search(ctx context.Context, query string, scope core.Scope, orgID string) ([]core.SearchResult, error) {
	rows, err := s.store.Select(ctx, storage.Query{
		Table:        "domains",
		Columns:      []string{"id", "organization_id", "name", "registrar", "expires_at", "notes", "created_at", "updated_at"},
		MatchColumns: domainFields,
		Term:         query,
		OrgColumn:    "organization_id",
		OrgID:        tenantID(scope, orgID),
		Limit:        domainLimit,
	})
	if err != nil {
		return nil, err
	}

	results := make([]core.SearchResult, 0, len(rows))
	for _, row := range rows {
		title := row["name"]
		if title == "" {
			title = "Unnamed Domain"
		}
		description := row["registrar"]

		results = append(results, core.SearchResult{
			ID:               row["id"],
			Title:            title,
			Description:      description,
			Type:             core.TypeDomain,
			OrganizationID:   row["organization_id"],
			OrganizationName: orgDisplayName(ctx, s.store, s.logger, row["organization_id"]),
			URL:              "/organizations/" + row["organization_id"] + "/domains",
			MatchedFields:    matchedFields(query, row, domainFields),
			MatchedText:      search.Excerpt(joinNonEmpty(" ", title, description), query),
			RelevanceScore:   search.Score(query, title, description),
			Metadata: map[string]any{
				"expires_at": row["expires_at"],
			},
			CreatedAt: parseTime(row["created_at"]),
			UpdatedAt: parseTime(row["updated_at"]),
		})
	}
	return results, nil
}
