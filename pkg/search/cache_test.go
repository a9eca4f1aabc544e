package search

import (
	"testing"
	"time"

	"github.com/orgdocs/orgdocs/pkg/core"
)

func TestCachePutGet(t *testing.T) {
	cache := NewCache(30 * time.Second)
	key := CacheKey("router", core.ScopeGlobal, "", core.Filters{})

	if _, ok := cache.Get(key, 10); ok {
		t.Fatal("empty cache should miss")
	}

	results := []core.SearchResult{
		{ID: "1", Type: core.TypeDocument, RelevanceScore: 80},
		{ID: "2", Type: core.TypeContact, RelevanceScore: 50},
	}
	cache.Put(key, results)

	got, ok := cache.Get(key, 10)
	if !ok {
		t.Fatal("expected cache hit")
	}
	if len(got) != 2 || got[0].ID != "1" {
		t.Errorf("unexpected cached results: %v", got)
	}

	got, ok = cache.Get(key, 1)
	if !ok || len(got) != 1 {
		t.Errorf("limit should truncate the cached list, got %d results", len(got))
	}
}

func TestCacheExpiry(t *testing.T) {
	cache := NewCache(30 * time.Second)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }

	key := CacheKey("switch", core.ScopeGlobal, "", core.Filters{})
	cache.Put(key, []core.SearchResult{{ID: "1"}})

	now = now.Add(29 * time.Second)
	if _, ok := cache.Get(key, 10); !ok {
		t.Error("entry should still be live just before the TTL")
	}

	now = now.Add(time.Second)
	if _, ok := cache.Get(key, 10); ok {
		t.Error("entry should be stale once the TTL has elapsed")
	}
}

func TestCacheKeyDistinguishesTuples(t *testing.T) {
	base := CacheKey("router", core.ScopeGlobal, "", core.Filters{})
	keys := []string{
		CacheKey("switch", core.ScopeGlobal, "", core.Filters{}),
		CacheKey("router", core.ScopeOrganization, "org-1", core.Filters{}),
		CacheKey("router", core.ScopeGlobal, "", core.Filters{Categories: []string{"network"}}),
		CacheKey("router", core.ScopeGlobal, "", core.Filters{ContentTypes: []core.ResultType{core.TypeContact}}),
	}
	for _, key := range keys {
		if key == base {
			t.Errorf("key %q should differ from base key", key)
		}
	}

	same := CacheKey("router", core.ScopeGlobal, "", core.Filters{})
	if same != base {
		t.Error("identical tuples must produce identical keys")
	}
}

func TestCacheClear(t *testing.T) {
	cache := NewCache(time.Minute)
	cache.Put("a", []core.SearchResult{{ID: "1"}})
	cache.Put("b", []core.SearchResult{{ID: "2"}})
	if cache.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", cache.Len())
	}
	cache.Clear()
	if cache.Len() != 0 {
		t.Errorf("expected empty cache after Clear, got %d entries", cache.Len())
	}
}
