// Package storage provides the relational backing store for orgdocs.
//
// The search core only needs a narrow tabular contract from its storage
// layer: select-with-projection, a case-insensitive substring filter
// OR-combined across multiple columns, an equality filter on the tenant
// column, and a row limit. Store.Select implements exactly that, so any
// backend offering the same contract could replace it.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// Store wraps a single SQLite database holding all entity tables.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at dbPath and applies the
// performance pragmas.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 30000",
		"PRAGMA cache_size = -64000",
		"PRAGMA temp_store = memory",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return nil, fmt.Errorf("applying pragma %q: %w", pragma, err)
		}
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying database handle.
func (s *Store) DB() *sql.DB {
	return s.db
}

// InitSchema creates all entity tables and indexes if missing.
func (s *Store) InitSchema(ctx context.Context) error {
	for _, ddl := range schemaDDL {
		if _, err := s.db.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("creating schema: %w", err)
		}
	}
	return nil
}

// Row is one selected row, column name to text value. NULLs scan as "".
type Row map[string]string

// Query describes one tabular search: which table, which columns to project,
// which columns the substring term is matched against, and the optional
// tenant restriction.
type Query struct {
	Table        string
	Columns      []string
	MatchColumns []string
	Term         string
	OrgColumn    string // empty when the table has no tenant column
	OrgID        string // empty searches across all tenants
	Limit        int
}

// Select runs a case-insensitive substring query. The term is matched with
// OR semantics across MatchColumns; rows are ordered newest first so the
// per-source cap keeps the freshest matches.
func (s *Store) Select(ctx context.Context, q Query) ([]Row, error) {
	if q.Table == "" || len(q.Columns) == 0 || len(q.MatchColumns) == 0 {
		return nil, fmt.Errorf("incomplete query for table %q", q.Table)
	}

	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(strings.Join(q.Columns, ", "))
	sb.WriteString(" FROM ")
	sb.WriteString(q.Table)
	sb.WriteString(" WHERE (")

	pattern := "%" + escapeLike(strings.ToLower(q.Term)) + "%"
	args := make([]any, 0, len(q.MatchColumns)+2)
	for i, col := range q.MatchColumns {
		if i > 0 {
			sb.WriteString(" OR ")
		}
		sb.WriteString("lower(")
		sb.WriteString(col)
		sb.WriteString(") LIKE ? ESCAPE '\\'")
		args = append(args, pattern)
	}
	sb.WriteString(")")

	if q.OrgColumn != "" && q.OrgID != "" {
		sb.WriteString(" AND ")
		sb.WriteString(q.OrgColumn)
		sb.WriteString(" = ?")
		args = append(args, q.OrgID)
	}

	sb.WriteString(" ORDER BY created_at DESC, id LIMIT ?")
	args = append(args, q.Limit)

	rows, err := s.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", q.Table, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var results []Row
	for rows.Next() {
		values := make([]sql.NullString, len(q.Columns))
		scanTargets := make([]any, len(q.Columns))
		for i := range values {
			scanTargets[i] = &values[i]
		}
		if err := rows.Scan(scanTargets...); err != nil {
			return nil, fmt.Errorf("scanning %s row: %w", q.Table, err)
		}
		row := make(Row, len(q.Columns))
		for i, col := range q.Columns {
			if values[i].Valid {
				row[col] = values[i].String
			} else {
				row[col] = ""
			}
		}
		results = append(results, row)
	}

	return results, rows.Err()
}

// Insert writes one row into a table, replacing any row with the same id.
// Used by the import command and tests; the serving path is read-only.
func (s *Store) Insert(ctx context.Context, table string, row Row) error {
	if len(row) == 0 {
		return fmt.Errorf("empty row for table %q", table)
	}

	cols := make([]string, 0, len(row))
	for col := range row {
		cols = append(cols, col)
	}
	sort.Strings(cols)

	placeholders := make([]string, len(cols))
	args := make([]any, len(cols))
	for i, col := range cols {
		placeholders[i] = "?"
		args[i] = row[col]
	}

	query := fmt.Sprintf(
		"INSERT OR REPLACE INTO %s (%s) VALUES (%s)",
		table, strings.Join(cols, ", "), strings.Join(placeholders, ", "),
	)
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("inserting into %s: %w", table, err)
	}
	return nil
}

// Count returns the number of rows in a table.
func (s *Store) Count(ctx context.Context, table string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting %s: %w", table, err)
	}
	return n, nil
}

// All returns every row of a table ordered by id. Used by the export command.
func (s *Store) All(ctx context.Context, table string) ([]Row, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT * FROM "+table+" ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", table, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("reading %s columns: %w", table, err)
	}

	var results []Row
	for rows.Next() {
		values := make([]sql.NullString, len(cols))
		scanTargets := make([]any, len(cols))
		for i := range values {
			scanTargets[i] = &values[i]
		}
		if err := rows.Scan(scanTargets...); err != nil {
			return nil, fmt.Errorf("scanning %s row: %w", table, err)
		}
		row := make(Row, len(cols))
		for i, col := range cols {
			if values[i].Valid {
				row[col] = values[i].String
			}
		}
		results = append(results, row)
	}

	return results, rows.Err()
}

// OrganizationName returns the display name for a tenant, or "" when the
// organization does not exist. Sources use it to denormalize results.
func (s *Store) OrganizationName(ctx context.Context, orgID string) (string, error) {
	if orgID == "" {
		return "", nil
	}
	var name string
	err := s.db.QueryRowContext(ctx, "SELECT name FROM organizations WHERE id = ?", orgID).Scan(&name)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("looking up organization %s: %w", orgID, err)
	}
	return name, nil
}

// escapeLike escapes the LIKE wildcards so a literal % or _ in the user's
// query matches itself.
func escapeLike(term string) string {
	term = strings.ReplaceAll(term, `\`, `\\`)
	term = strings.ReplaceAll(term, `%`, `\%`)
	term = strings.ReplaceAll(term, `_`, `\_`)
	return term
}
