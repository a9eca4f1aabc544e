package sources

import (
	"context"

	"github.com/orgdocs/orgdocs/pkg/core"
	"github.com/orgdocs/orgdocs/pkg/log"
	"github.com/orgdocs/orgdocs/pkg/search"
	"github.com/orgdocs/orgdocs/pkg/storage"
)

const documentLimit = 30

var documentFields = []string{"name", "description", "folder"}

// Documents searches the document index. The subtype carries the file's
// mime type so the UI can pick an icon.
type Documents struct {
	store  *storage.Store
	logger *log.Logger
}

func NewDocuments(store *storage.Store) *Documents {
	return &Documents{store: store, logger: log.ForSource("documents")}
}

func (s *Documents) Type() core.ResultType { return core.TypeDocument }

func (s *Documents) Search(ctx context.Context, query string, scope core.Scope, orgID string) ([]core.SearchResult, error) {
	rows, err := s.store.Select(ctx, storage.Query{
		Table:        "documents",
		Columns:      []string{"id", "organization_id", "name", "description", "mime_type", "folder", "created_at", "updated_at"},
		MatchColumns: documentFields,
		Term:         query,
		OrgColumn:    "organization_id",
		OrgID:        tenantID(scope, orgID),
		Limit:        documentLimit,
	})
	if err != nil {
		return nil, err
	}

	results := make([]core.SearchResult, 0, len(rows))
	for _, row := range rows {
		title := row["name"]
		if title == "" {
			title = "Untitled Document"
		}
		description := row["description"]

		results = append(results, core.SearchResult{
			ID:               row["id"],
			Title:            title,
			Description:      description,
			Type:             core.TypeDocument,
			Subtype:          row["mime_type"],
			OrganizationID:   row["organization_id"],
			OrganizationName: orgDisplayName(ctx, s.store, s.logger, row["organization_id"]),
			Category:         row["folder"],
			URL:              "/organizations/" + row["organization_id"] + "/documents",
			MatchedFields:    matchedFields(query, row, documentFields),
			MatchedText:      search.Excerpt(joinNonEmpty(" ", title, description), query),
			RelevanceScore:   search.Score(query, title, description),
			Metadata: map[string]any{
				"folder": row["folder"],
			},
			CreatedAt: parseTime(row["created_at"]),
			UpdatedAt: parseTime(row["updated_at"]),
		})
	}
	return results, nil
}
