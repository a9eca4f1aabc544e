package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
	"github.com/urfave/cli/v3"

	"github.com/orgdocs/orgdocs/pkg/storage"
)

// ImportCommand creates the import command
func ImportCommand() *cli.Command {
	return &cli.Command{
		Name:      "import",
		Usage:     "Import entity data from a JSON dump",
		ArgsUsage: "<file.json|file.json.zst>",
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() != 1 {
				return fmt.Errorf("expected exactly one input file")
			}
			return importData(ctx, c.String("config"), c.Args().First())
		},
	}
}

// dump is the on-disk interchange format: table name to rows.
type dump map[string][]storage.Row

func importData(ctx context.Context, configPath, inputPath string) error {
	_, store, err := openStore(configPath)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			fmt.Printf("Warning: failed to close database: %v\n", err)
		}
	}()

	if err := store.InitSchema(ctx); err != nil {
		return fmt.Errorf("initializing schema: %w", err)
	}

	f, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("opening input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var reader io.Reader = f
	if strings.HasSuffix(inputPath, ".zst") {
		decoder, err := zstd.NewReader(f)
		if err != nil {
			return fmt.Errorf("creating zstd decoder: %w", err)
		}
		defer decoder.Close()
		reader = decoder
	}

	var data dump
	if err := json.NewDecoder(reader).Decode(&data); err != nil {
		return fmt.Errorf("decoding dump: %w", err)
	}

	known := make(map[string]bool, len(storage.Tables))
	for _, table := range storage.Tables {
		known[table] = true
	}

	now := time.Now().UTC().Format(time.RFC3339)
	total := 0
	for table, rows := range data {
		if !known[table] {
			return fmt.Errorf("unknown table %q in dump", table)
		}
		for _, row := range rows {
			if row["id"] == "" {
				row["id"] = uuid.NewString()
			}
			if row["created_at"] == "" {
				row["created_at"] = now
			}
			if err := store.Insert(ctx, table, row); err != nil {
				return fmt.Errorf("inserting into %s: %w", table, err)
			}
			total++
		}
		fmt.Printf("  %s: %d rows\n", table, len(rows))
	}

	fmt.Printf("Imported %d rows from %s\n", total, inputPath)
	return nil
}
