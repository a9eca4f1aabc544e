package sources

import (
	"context"
	"strings"

	"github.com/orgdocs/orgdocs/pkg/core"
	"github.com/orgdocs/orgdocs/pkg/log"
	"github.com/orgdocs/orgdocs/pkg/search"
	"github.com/orgdocs/orgdocs/pkg/storage"
)

const pageContentLimit = 15

// PageContents searches the dynamic page-content blocks. Candidate rows are
// filtered in the store against the title and the raw payload; the payload is
// then flattened by content type so the excerpt and the matched-field list
// reflect the text a user actually sees.
type PageContents struct {
	store  *storage.Store
	logger *log.Logger
}

func NewPageContents(store *storage.Store) *PageContents {
	return &PageContents{store: store, logger: log.ForSource("page_contents")}
}

func (s *PageContents) Type() core.ResultType { return core.TypePageContent }

func (s *PageContents) Search(ctx context.Context, query string, scope core.Scope, orgID string) ([]core.SearchResult, error) {
	rows, err := s.store.Select(ctx, storage.Query{
		Table:        "page_contents",
		Columns:      []string{"id", "organization_id", "title", "content_type", "payload", "category", "created_at", "updated_at"},
		MatchColumns: []string{"title", "payload", "category"},
		Term:         query,
		OrgColumn:    "organization_id",
		OrgID:        tenantID(scope, orgID),
		Limit:        pageContentLimit,
	})
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	results := make([]core.SearchResult, 0, len(rows))
	for _, row := range rows {
		title := row["title"]
		if title == "" {
			title = "Untitled Page"
		}
		flattened := FlattenContent(row["content_type"], row["payload"])

		matched := matchedFields(query, row, []string{"title", "category"})
		if strings.Contains(strings.ToLower(flattened), q) {
			matched = append(matched, "content")
		}

		results = append(results, core.SearchResult{
			ID:               row["id"],
			Title:            title,
			Description:      search.Excerpt(flattened, ""),
			Type:             core.TypePageContent,
			Subtype:          row["content_type"],
			OrganizationID:   row["organization_id"],
			OrganizationName: orgDisplayName(ctx, s.store, s.logger, row["organization_id"]),
			Category:         row["category"],
			URL:              "/organizations/" + row["organization_id"] + "/pages/" + row["id"],
			MatchedFields:    matched,
			MatchedText:      search.Excerpt(flattened, query),
			RelevanceScore:   search.Score(query, title, flattened),
			Metadata: map[string]any{
				"content_type": row["content_type"],
			},
			CreatedAt: parseTime(row["created_at"]),
			UpdatedAt: parseTime(row["updated_at"]),
		})
	}
	return results, nil
}
