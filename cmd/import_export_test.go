package cmd

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"
)

func writeTestConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.toml")
	content := "db_path = '" + filepath.Join(dir, "orgdocs.db") + "'\n"
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return configPath
}

func TestImportExportRoundTrip(t *testing.T) {
	ctx := context.Background()
	configPath := writeTestConfig(t)

	data := dump{
		"contacts": {
			{"organization_id": "org-1", "first_name": "Jane", "last_name": "Doe"},
		},
		"documents": {
			{"id": "d1", "organization_id": "org-1", "name": "Runbook"},
		},
	}
	inputPath := filepath.Join(t.TempDir(), "seed.json")
	raw, err := json.Marshal(data)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(inputPath, raw, 0644); err != nil {
		t.Fatal(err)
	}

	if err := importData(ctx, configPath, inputPath); err != nil {
		t.Fatalf("importing: %v", err)
	}

	outputPath := filepath.Join(t.TempDir(), "dump.json")
	if err := exportData(ctx, configPath, outputPath); err != nil {
		t.Fatalf("exporting: %v", err)
	}

	exported, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatal(err)
	}
	var roundTrip dump
	if err := json.Unmarshal(exported, &roundTrip); err != nil {
		t.Fatalf("decoding export: %v", err)
	}
	if len(roundTrip["contacts"]) != 1 || len(roundTrip["documents"]) != 1 {
		t.Fatalf("unexpected export contents: %v", roundTrip)
	}
	// The contact had no id; import must mint one.
	if roundTrip["contacts"][0]["id"] == "" {
		t.Error("import should assign ids to rows without one")
	}
	if roundTrip["contacts"][0]["created_at"] == "" {
		t.Error("import should stamp created_at on rows without one")
	}
}

func TestImportZstdCompressedDump(t *testing.T) {
	ctx := context.Background()
	configPath := writeTestConfig(t)

	data := dump{
		"assets": {
			{"id": "a1", "organization_id": "org-1", "name": "Edge router"},
		},
	}
	raw, err := json.Marshal(data)
	if err != nil {
		t.Fatal(err)
	}

	inputPath := filepath.Join(t.TempDir(), "seed.json.zst")
	f, err := os.Create(inputPath)
	if err != nil {
		t.Fatal(err)
	}
	encoder, err := zstd.NewWriter(f)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := encoder.Write(raw); err != nil {
		t.Fatal(err)
	}
	if err := encoder.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	if err := importData(ctx, configPath, inputPath); err != nil {
		t.Fatalf("importing compressed dump: %v", err)
	}

	outputPath := filepath.Join(t.TempDir(), "dump.json.zst")
	if err := exportData(ctx, configPath, outputPath); err != nil {
		t.Fatalf("exporting compressed dump: %v", err)
	}
	if _, err := os.Stat(outputPath); err != nil {
		t.Fatal(err)
	}
}

func TestImportRejectsUnknownTable(t *testing.T) {
	ctx := context.Background()
	configPath := writeTestConfig(t)

	inputPath := filepath.Join(t.TempDir(), "seed.json")
	if err := os.WriteFile(inputPath, []byte(`{"widgets": [{"id": "w1"}]}`), 0644); err != nil {
		t.Fatal(err)
	}

	if err := importData(ctx, configPath, inputPath); err == nil {
		t.Error("unknown tables must be rejected")
	}
}
