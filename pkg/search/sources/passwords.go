package sources

import (
	"context"

	"github.com/orgdocs/orgdocs/pkg/core"
	"github.com/orgdocs/orgdocs/pkg/log"
	"github.com/orgdocs/orgdocs/pkg/search"
	"github.com/orgdocs/orgdocs/pkg/storage"
)

const passwordLimit = 10

// The secret column is never searched, projected, or echoed into results.
var passwordFields = []string{"name", "username", "url", "category", "notes"}

// Passwords searches credential entries by their descriptive fields only.
type Passwords struct {
	store  *storage.Store
	logger *log.Logger
}

func NewPasswords(store *storage.Store) *Passwords {
	return &Passwords{store: store, logger: log.ForSource("passwords")}
}

func (s *Passwords) Type() core.ResultType { return core.TypePassword }

func (s *Passwords) Search(ctx context.Context, query string, scope core.Scope, orgID string) ([]core.SearchResult, error) {
	rows, err := s.store.Select(ctx, storage.Query{
		Table:        "passwords",
		Columns:      []string{"id", "organization_id", "name", "username", "url", "category", "notes", "created_at", "updated_at"},
		MatchColumns: passwordFields,
		Term:         query,
		OrgColumn:    "organization_id",
		OrgID:        tenantID(scope, orgID),
		Limit:        passwordLimit,
	})
	if err != nil {
		return nil, err
	}

	results := make([]core.SearchResult, 0, len(rows))
	for _, row := range rows {
		title := row["name"]
		if title == "" {
			title = "Untitled Password"
		}
		description := joinNonEmpty(" @ ", row["username"], row["url"])

		results = append(results, core.SearchResult{
			ID:               row["id"],
			Title:            title,
			Description:      description,
			Type:             core.TypePassword,
			OrganizationID:   row["organization_id"],
			OrganizationName: orgDisplayName(ctx, s.store, s.logger, row["organization_id"]),
			Category:         row["category"],
			URL:              "/organizations/" + row["organization_id"] + "/passwords",
			MatchedFields:    matchedFields(query, row, passwordFields),
			MatchedText:      search.Excerpt(joinNonEmpty(" ", title, description, row["notes"]), query),
			RelevanceScore:   search.Score(query, title, description),
			CreatedAt:        parseTime(row["created_at"]),
			UpdatedAt:        parseTime(row["updated_at"]),
		})
	}
	return results, nil
}
