package core

import "context"

// Searcher is the capability interface every per-entity search source
// implements. Implementations must:
//   - apply a case-insensitive substring filter across their entity's
//     text-bearing fields,
//   - restrict to one tenant when scope is ScopeOrganization and orgID is
//     non-empty, and search across all tenants otherwise,
//   - cap their own result count so one noisy source cannot starve the
//     merged set,
//   - return an error instead of panicking; the aggregator isolates it.
type Searcher interface {
	// Type returns the fixed ResultType this source produces.
	Type() ResultType

	// Search runs the substring query and maps matching rows to results.
	Search(ctx context.Context, query string, scope Scope, orgID string) ([]SearchResult, error)
}
