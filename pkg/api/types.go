package api

import (
	"time"

	"github.com/orgdocs/orgdocs/pkg/core"
)

// SearchType distinguishes the two search paths a request can take.
const (
	SearchTypeLegacy = "legacy"
	SearchTypeDeep   = "deep"
)

type SearchResponse struct {
	Results    []core.SearchResult `json:"results"`
	SearchType string              `json:"searchType"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}

type StatsResponse struct {
	Tables    map[string]int `json:"tables"`
	TotalRows int            `json:"total_rows"`
	CacheSize int            `json:"cache_size"`
	Listeners int            `json:"listeners"`
}

type CacheClearedResponse struct {
	Status  string `json:"status"`
	Cleared bool   `json:"cleared"`
}
