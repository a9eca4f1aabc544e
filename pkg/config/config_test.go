package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadConfigDefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("loading missing config: %v", err)
	}
	if cfg.ListenAddr != ":8080" {
		t.Errorf("listen_addr = %q", cfg.ListenAddr)
	}
	if cfg.CacheTTL.Duration != 30*time.Second {
		t.Errorf("cache_ttl = %v", cfg.CacheTTL.Duration)
	}
	if cfg.SearchLimit != 50 {
		t.Errorf("search_limit = %d", cfg.SearchLimit)
	}
	if cfg.DBPath == "" {
		t.Error("db_path should default to the data directory")
	}
}

func TestLoadConfigParsesAndFillsGaps(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
db_path = '/tmp/custom.db'
cache_ttl = '2m'
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("loading config: %v", err)
	}
	if cfg.DBPath != "/tmp/custom.db" {
		t.Errorf("db_path = %q", cfg.DBPath)
	}
	if cfg.CacheTTL.Duration != 2*time.Minute {
		t.Errorf("cache_ttl = %v", cfg.CacheTTL.Duration)
	}
	if cfg.ListenAddr != ":8080" {
		t.Errorf("listen_addr should default, got %q", cfg.ListenAddr)
	}
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")
	cfg := &Config{
		DBPath:      "/tmp/rt.db",
		ListenAddr:  ":9090",
		CacheTTL:    Duration{45 * time.Second},
		SearchLimit: 25,
	}
	if err := cfg.SaveConfig(path); err != nil {
		t.Fatalf("saving config: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("reloading config: %v", err)
	}
	if loaded.DBPath != cfg.DBPath || loaded.ListenAddr != cfg.ListenAddr {
		t.Errorf("round trip mismatch: %+v", loaded)
	}
	if loaded.CacheTTL.Duration != 45*time.Second {
		t.Errorf("cache_ttl = %v", loaded.CacheTTL.Duration)
	}
}

func TestSaveTemplateConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := &Config{DBPath: "/data/orgdocs.db"}
	if err := cfg.SaveTemplateConfig(path); err != nil {
		t.Fatalf("saving template: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(data); !strings.Contains(got, "/data/orgdocs.db") {
		t.Errorf("template should contain the db path, got:\n%s", got)
	}
}
