package search

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/orgdocs/orgdocs/pkg/core"
)

// DefaultCacheTTL is how long a cached result list stays live.
const DefaultCacheTTL = 30 * time.Second

// Cache holds recently computed result lists keyed by the full search tuple
// (query, scope, organization, serialized filters). Entries are not swept;
// staleness is checked lazily on Get and stale entries are recomputed by the
// caller. The cache has no size bound — acceptable given the short TTL and
// the low cardinality of distinct tuples in a session, but a known
// limitation.
type Cache struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]cacheEntry
}

type cacheEntry struct {
	results  []core.SearchResult
	storedAt time.Time
}

// NewCache creates a cache with the given TTL. A ttl <= 0 falls back to
// DefaultCacheTTL.
func NewCache(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Cache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]cacheEntry),
	}
}

// CacheKey serializes the search tuple into a cache key. Filters marshal
// deterministically (struct field order), so equal filter sets produce equal
// keys.
func CacheKey(query string, scope core.Scope, orgID string, filters core.Filters) string {
	serialized, err := json.Marshal(filters)
	if err != nil {
		// Filters contain only marshalable types; this is unreachable in
		// practice but a distinct key keeps a failure from aliasing entries.
		serialized = []byte(fmt.Sprintf("unserializable:%v", err))
	}
	return fmt.Sprintf("%s|%s|%s|%s", query, scope, orgID, serialized)
}

// Get returns up to limit entries of a live cached list. A limit <= 0
// returns the full list.
func (c *Cache) Get(key string, limit int) ([]core.SearchResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(entry.storedAt) >= c.ttl {
		delete(c.entries, key)
		return nil, false
	}

	results := entry.results
	if limit > 0 && limit < len(results) {
		results = results[:limit]
	}
	return results, true
}

// Put stores a result list under the key with the current timestamp.
// Concurrent identical searches may race to repopulate the same key; last
// write wins, which is benign because the values are equivalent.
func (c *Cache) Put(key string, results []core.SearchResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{results: results, storedAt: c.now()}
}

// Clear empties the cache. Called when the underlying data is known to have
// changed so stale results are not served for up to a full TTL.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry)
}

// Len returns the number of cached entries, live or stale.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
