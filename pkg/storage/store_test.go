package storage

import (
	"context"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "orgdocs.db"))
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("closing store: %v", err)
		}
	})
	if err := store.InitSchema(context.Background()); err != nil {
		t.Fatalf("initializing schema: %v", err)
	}
	return store
}

func TestInitSchemaCreatesAllTables(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, table := range Tables {
		if _, err := store.Count(ctx, table); err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}
}

func TestSelectSubstringMatch(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	rows := []Row{
		{"id": "c1", "organization_id": "org-1", "first_name": "Jane", "last_name": "Doe", "email": "jane@acme.com", "created_at": "2024-01-02T00:00:00Z"},
		{"id": "c2", "organization_id": "org-1", "first_name": "Bob", "last_name": "Smith", "email": "bob@acme.com", "created_at": "2024-01-03T00:00:00Z"},
		{"id": "c3", "organization_id": "org-2", "first_name": "Janet", "last_name": "Reed", "email": "janet@example.com", "created_at": "2024-01-04T00:00:00Z"},
	}
	for _, row := range rows {
		if err := store.Insert(ctx, "contacts", row); err != nil {
			t.Fatalf("inserting contact: %v", err)
		}
	}

	query := Query{
		Table:        "contacts",
		Columns:      []string{"id", "first_name", "last_name", "email"},
		MatchColumns: []string{"first_name", "last_name", "email"},
		Term:         "jane",
		OrgColumn:    "organization_id",
		Limit:        10,
	}

	got, err := store.Select(ctx, query)
	if err != nil {
		t.Fatalf("selecting: %v", err)
	}
	// "jane" is a substring of both "Jane" and "Janet"/"janet@example.com".
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}

	query.OrgID = "org-1"
	got, err = store.Select(ctx, query)
	if err != nil {
		t.Fatalf("selecting with tenant filter: %v", err)
	}
	if len(got) != 1 || got[0]["id"] != "c1" {
		t.Fatalf("expected only c1 for org-1, got %v", got)
	}
}

func TestSelectCaseInsensitive(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Insert(ctx, "documents", Row{
		"id": "d1", "organization_id": "org-1", "name": "Network Diagram",
		"created_at": "2024-01-01T00:00:00Z",
	}); err != nil {
		t.Fatalf("inserting document: %v", err)
	}

	got, err := store.Select(ctx, Query{
		Table:        "documents",
		Columns:      []string{"id", "name"},
		MatchColumns: []string{"name", "description"},
		Term:         "NETWORK",
		OrgColumn:    "organization_id",
		Limit:        5,
	})
	if err != nil {
		t.Fatalf("selecting: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("case-insensitive match failed, got %d rows", len(got))
	}
}

func TestSelectEscapesLikeWildcards(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Insert(ctx, "documents", Row{
		"id": "d1", "organization_id": "org-1", "name": "Budget 100%",
		"created_at": "2024-01-01T00:00:00Z",
	}); err != nil {
		t.Fatalf("inserting document: %v", err)
	}
	if err := store.Insert(ctx, "documents", Row{
		"id": "d2", "organization_id": "org-1", "name": "Budget 100x",
		"created_at": "2024-01-01T00:00:00Z",
	}); err != nil {
		t.Fatalf("inserting document: %v", err)
	}

	got, err := store.Select(ctx, Query{
		Table:        "documents",
		Columns:      []string{"id"},
		MatchColumns: []string{"name"},
		Term:         "100%",
		OrgColumn:    "organization_id",
		Limit:        5,
	})
	if err != nil {
		t.Fatalf("selecting: %v", err)
	}
	if len(got) != 1 || got[0]["id"] != "d1" {
		t.Fatalf("%% should match literally, got %v", got)
	}
}

func TestSelectLimit(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if err := store.Insert(ctx, "assets", Row{
			"id":              string(rune('a' + i)),
			"organization_id": "org-1",
			"name":            "printer",
			"created_at":      "2024-01-01T00:00:00Z",
		}); err != nil {
			t.Fatalf("inserting asset: %v", err)
		}
	}

	got, err := store.Select(ctx, Query{
		Table:        "assets",
		Columns:      []string{"id"},
		MatchColumns: []string{"name"},
		Term:         "printer",
		OrgColumn:    "organization_id",
		Limit:        3,
	})
	if err != nil {
		t.Fatalf("selecting: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected limit of 3, got %d rows", len(got))
	}
}

func TestOrganizationName(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Insert(ctx, "organizations", Row{
		"id": "org-1", "name": "Acme Corp", "created_at": "2024-01-01T00:00:00Z",
	}); err != nil {
		t.Fatalf("inserting organization: %v", err)
	}

	name, err := store.OrganizationName(ctx, "org-1")
	if err != nil {
		t.Fatalf("looking up name: %v", err)
	}
	if name != "Acme Corp" {
		t.Errorf("expected Acme Corp, got %q", name)
	}

	name, err = store.OrganizationName(ctx, "missing")
	if err != nil {
		t.Fatalf("looking up missing org: %v", err)
	}
	if name != "" {
		t.Errorf("expected empty name for missing org, got %q", name)
	}
}

func TestAllAndCount(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, id := range []string{"s1", "s2"} {
		if err := store.Insert(ctx, "sidebar_items", Row{
			"id": id, "organization_id": "org-1", "label": "Runbooks",
			"created_at": "2024-01-01T00:00:00Z",
		}); err != nil {
			t.Fatalf("inserting sidebar item: %v", err)
		}
	}

	n, err := store.Count(ctx, "sidebar_items")
	if err != nil {
		t.Fatalf("counting: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 rows, got %d", n)
	}

	rows, err := store.All(ctx, "sidebar_items")
	if err != nil {
		t.Fatalf("reading all rows: %v", err)
	}
	if len(rows) != 2 || rows[0]["id"] != "s1" {
		t.Errorf("unexpected rows: %v", rows)
	}
}
