package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/orgdocs/orgdocs/pkg/core"
	"github.com/orgdocs/orgdocs/pkg/search"
	"github.com/orgdocs/orgdocs/pkg/storage"
	"github.com/orgdocs/orgdocs/pkg/version"
)

// HandleGlobalSearch serves GET /api/search/global.
//
// Query parameters: q (the raw query), scope (global|organization),
// organization_id (required iff scope=organization), deep (true|false,
// selects the multi-source aggregator or the legacy sidebar-only search),
// filters (JSON-encoded), limit.
//
// A search that matches nothing, fails internally, or is too short still
// answers 200 with an empty results array. The only 400s are contract
// violations the caller can fix.
func (s *Server) HandleGlobalSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	scope := core.Scope(q.Get("scope"))
	if scope == "" {
		scope = core.ScopeGlobal
	}
	if scope != core.ScopeGlobal && scope != core.ScopeOrganization {
		s.writeError(w, http.StatusBadRequest, "Invalid scope", "scope must be 'global' or 'organization'")
		return
	}

	orgID := q.Get("organization_id")
	if scope == core.ScopeOrganization && orgID == "" {
		s.writeError(w, http.StatusBadRequest, "Missing organization", "organization_id is required when scope=organization")
		return
	}

	limit := 0
	if raw := q.Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			s.writeError(w, http.StatusBadRequest, "Invalid limit", "limit must be a non-negative integer")
			return
		}
		limit = parsed
	}

	// Malformed filters degrade to no restriction, never to an error.
	var filters core.Filters
	if raw := q.Get("filters"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &filters); err != nil {
			s.logger.Warnf("ignoring malformed filters %q: %v", raw, err)
			filters = core.Filters{}
		}
	}

	deep := true
	if raw := q.Get("deep"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err == nil {
			deep = parsed
		}
	}

	query := q.Get("q")

	var results []core.SearchResult
	searchType := SearchTypeDeep
	if deep {
		results = s.service.Search(r.Context(), search.Params{
			Query:          query,
			Scope:          scope,
			OrganizationID: orgID,
			Filters:        filters,
			Limit:          limit,
		})
	} else {
		searchType = SearchTypeLegacy
		results = s.service.LegacySearch(r.Context(), query, scope, orgID, limit)
	}

	if results == nil {
		results = []core.SearchResult{}
	}

	s.writeJSON(w, http.StatusOK, SearchResponse{
		Results:    results,
		SearchType: searchType,
	})
}

// HandleClearCache serves DELETE /api/search/cache. Importers call it
// after writing so searches do not serve stale lists for a full TTL.
func (s *Server) HandleClearCache(w http.ResponseWriter, r *http.Request) {
	s.service.ClearCache()
	s.hub.Publish(realtimeReloadEvent())
	s.writeJSON(w, http.StatusOK, CacheClearedResponse{Status: "ok", Cleared: true})
}

func (s *Server) HandleStats(w http.ResponseWriter, r *http.Request) {
	tables := make(map[string]int, len(storage.Tables))
	total := 0
	for _, table := range storage.Tables {
		count, err := s.store.Count(r.Context(), table)
		if err != nil {
			s.writeError(w, http.StatusInternalServerError, "Failed to get stats", err.Error())
			return
		}
		tables[table] = count
		total += count
	}

	s.writeJSON(w, http.StatusOK, StatsResponse{
		Tables:    tables,
		TotalRows: total,
		CacheSize: s.service.CacheSize(),
		Listeners: s.hub.ListenerCount(),
	})
}

func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	health := HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
		Version:   version.APIVersion(),
	}

	s.writeJSON(w, http.StatusOK, health)
}
