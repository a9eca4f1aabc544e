// Package search implements the federated search core: the relevance
// scorer, the excerpt builder, the TTL result cache, and the Service that
// fans a query out across every entity source, merges, filters, sorts and
// truncates the results.
package search

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/orgdocs/orgdocs/pkg/core"
	"github.com/orgdocs/orgdocs/pkg/log"
)

const (
	// DefaultLimit is the result cap when the caller does not pick one.
	DefaultLimit = 50

	// MinQueryLength is the minimum trimmed query length; shorter queries
	// short-circuit to an empty result set without touching any source or
	// the cache.
	MinQueryLength = 2
)

// Params configures one aggregated search call.
type Params struct {
	Query          string
	Scope          core.Scope
	OrganizationID string
	Filters        core.Filters
	Limit          int
}

// Service orchestrates the per-entity sources. It is stateless per call
// apart from the result cache; callers issuing overlapping queries are
// responsible for discarding stale responses (e.g. by sequence-numbering
// requests).
type Service struct {
	sources []core.Searcher
	cache   *Cache
	logger  *log.Logger
}

// NewService creates a search service over the given sources. The slice
// order is the merge order and must stay fixed: score ties preserve it.
func NewService(srcs []core.Searcher, cache *Cache) *Service {
	if cache == nil {
		cache = NewCache(DefaultCacheTTL)
	}
	return &Service{
		sources: srcs,
		cache:   cache,
		logger:  log.ForSource("search"),
	}
}

// Search runs the full aggregation pipeline: guard, cache lookup, concurrent
// fan-out, merge in source order, filter, stable sort by descending score,
// truncate, cache.
//
// Search never fails: a failing source contributes nothing and is logged,
// so the caller sees fewer or zero results instead of an error.
func (s *Service) Search(ctx context.Context, params Params) []core.SearchResult {
	query := strings.TrimSpace(params.Query)
	if len(query) < MinQueryLength {
		return []core.SearchResult{}
	}
	if params.Scope == "" {
		params.Scope = core.ScopeGlobal
	}
	if params.Limit <= 0 {
		params.Limit = DefaultLimit
	}

	key := CacheKey(query, params.Scope, params.OrganizationID, params.Filters)
	if cached, ok := s.cache.Get(key, params.Limit); ok {
		s.logger.Debugf("cache hit for %q", query)
		return cached
	}

	merged := s.fanOut(ctx, query, params.Scope, params.OrganizationID)

	filtered := merged
	if !params.Filters.Empty() {
		filtered = make([]core.SearchResult, 0, len(merged))
		for _, result := range merged {
			if params.Filters.Match(result) {
				filtered = append(filtered, result)
			}
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].RelevanceScore > filtered[j].RelevanceScore
	})

	if len(filtered) > params.Limit {
		filtered = filtered[:params.Limit]
	}

	s.cache.Put(key, filtered)
	return filtered
}

// fanOut runs every source concurrently and concatenates their results in
// the fixed source order. A source failure (error or panic) is logged and
// contributes an empty list; it never cancels the other sources.
func (s *Service) fanOut(ctx context.Context, query string, scope core.Scope, orgID string) []core.SearchResult {
	perSource := make([][]core.SearchResult, len(s.sources))

	var wg sync.WaitGroup
	for i, src := range s.sources {
		wg.Add(1)
		go func(i int, src core.Searcher) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					s.logger.Errorf("source %s panicked: %v", src.Type(), r)
				}
			}()
			results, err := src.Search(ctx, query, scope, orgID)
			if err != nil {
				s.logger.Errorf("searching %s: %v", src.Type(), err)
				return
			}
			perSource[i] = results
		}(i, src)
	}
	wg.Wait()

	var merged []core.SearchResult
	for _, results := range perSource {
		merged = append(merged, results...)
	}
	return merged
}

// LegacySearch is the pre-aggregator behavior selected by deep=false: it
// consults only the sidebar-items source, uncached and unfiltered.
func (s *Service) LegacySearch(ctx context.Context, query string, scope core.Scope, orgID string, limit int) []core.SearchResult {
	query = strings.TrimSpace(query)
	if len(query) < MinQueryLength {
		return []core.SearchResult{}
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	for _, src := range s.sources {
		if src.Type() != core.TypeSidebarItem {
			continue
		}
		results, err := src.Search(ctx, query, scope, orgID)
		if err != nil {
			s.logger.Errorf("legacy search: %v", err)
			return []core.SearchResult{}
		}
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].RelevanceScore > results[j].RelevanceScore
		})
		if len(results) > limit {
			results = results[:limit]
		}
		return results
	}
	return []core.SearchResult{}
}

// ClearCache drops every cached result list. Called when the underlying
// data is known to have changed.
func (s *Service) ClearCache() {
	s.cache.Clear()
}

// CacheSize returns the number of cached result lists.
func (s *Service) CacheSize() int {
	return s.cache.Len()
}
