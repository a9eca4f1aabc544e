package sources

import (
	"context"
	"strings"

	"github.com/orgdocs/orgdocs/pkg/core"
	"github.com/orgdocs/orgdocs/pkg/log"
	"github.com/orgdocs/orgdocs/pkg/search"
	"github.com/orgdocs/orgdocs/pkg/storage"
)

const contactLimit = 20

var contactFields = []string{"first_name", "last_name", "company", "email", "phone", "notes"}

// Contacts searches the people directory of each organization.
type Contacts struct {
	store  *storage.Store
	logger *log.Logger
}

func NewContacts(store *storage.Store) *Contacts {
	return &Contacts{store: store, logger: log.ForSource("contacts")}
}

func (s *Contacts) Type() core.ResultType { return core.TypeContact }

func (s *Contacts) Search(ctx context.Context, query string, scope core.Scope, orgID string) ([]core.SearchResult, error) {
	rows, err := s.store.Select(ctx, storage.Query{
		Table:        "contacts",
		Columns:      []string{"id", "organization_id", "first_name", "last_name", "title", "company", "email", "phone", "notes", "created_at", "updated_at"},
		MatchColumns: contactFields,
		Term:         query,
		OrgColumn:    "organization_id",
		OrgID:        tenantID(scope, orgID),
		Limit:        contactLimit,
	})
	if err != nil {
		return nil, err
	}

	results := make([]core.SearchResult, 0, len(rows))
	for _, row := range rows {
		title := strings.TrimSpace(row["first_name"] + " " + row["last_name"])
		if title == "" {
			title = "Unnamed Contact"
		}
		description := joinNonEmpty(", ", row["title"], row["company"], row["email"])

		results = append(results, core.SearchResult{
			ID:               row["id"],
			Title:            title,
			Description:      description,
			Type:             core.TypeContact,
			OrganizationID:   row["organization_id"],
			OrganizationName: orgDisplayName(ctx, s.store, s.logger, row["organization_id"]),
			URL:              "/organizations/" + row["organization_id"] + "/contacts",
			MatchedFields:    matchedFields(query, row, contactFields),
			MatchedText:      search.Excerpt(joinNonEmpty(" ", title, description), query),
			RelevanceScore:   search.Score(query, title, description),
			Metadata: map[string]any{
				"email": row["email"],
				"phone": row["phone"],
			},
			CreatedAt: parseTime(row["created_at"]),
			UpdatedAt: parseTime(row["updated_at"]),
		})
	}
	return results, nil
}
