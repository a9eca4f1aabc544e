package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/urfave/cli/v3"

	"github.com/orgdocs/orgdocs/pkg/storage"
)

// ExportCommand creates the export command
func ExportCommand() *cli.Command {
	return &cli.Command{
		Name:      "export",
		Usage:     "Export all entity data to a JSON dump",
		ArgsUsage: "<file.json|file.json.zst>",
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() != 1 {
				return fmt.Errorf("expected exactly one output file")
			}
			return exportData(ctx, c.String("config"), c.Args().First())
		},
	}
}

func exportData(ctx context.Context, configPath, outputPath string) error {
	_, store, err := openStore(configPath)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			fmt.Printf("Warning: failed to close database: %v\n", err)
		}
	}()

	data := make(dump, len(storage.Tables))
	total := 0
	for _, table := range storage.Tables {
		rows, err := store.All(ctx, table)
		if err != nil {
			return fmt.Errorf("reading %s: %w", table, err)
		}
		if len(rows) == 0 {
			continue
		}
		data[table] = rows
		total += len(rows)
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var writer io.Writer = f
	var encoder *zstd.Encoder
	if strings.HasSuffix(outputPath, ".zst") {
		encoder, err = zstd.NewWriter(f)
		if err != nil {
			return fmt.Errorf("creating zstd encoder: %w", err)
		}
		writer = encoder
	}

	enc := json.NewEncoder(writer)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("encoding dump: %w", err)
	}
	if encoder != nil {
		if err := encoder.Close(); err != nil {
			return fmt.Errorf("flushing zstd stream: %w", err)
		}
	}

	fmt.Printf("Exported %d rows across %d tables to %s\n", total, len(data), outputPath)
	return nil
}
