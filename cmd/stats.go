package cmd

import (
	"context"
	"fmt"
	"sort"

	"github.com/urfave/cli/v3"

	"github.com/orgdocs/orgdocs/pkg/storage"
)

// StatsCommand creates the stats command
func StatsCommand() *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Show database statistics",
		Action: func(ctx context.Context, c *cli.Command) error {
			return showStats(ctx, c.String("config"))
		},
	}
}

func showStats(ctx context.Context, configPath string) error {
	cfg, store, err := openStore(configPath)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			fmt.Printf("Warning: failed to close database: %v\n", err)
		}
	}()

	counts := make(map[string]int, len(storage.Tables))
	total := 0
	for _, table := range storage.Tables {
		count, err := store.Count(ctx, table)
		if err != nil {
			return fmt.Errorf("counting %s: %w", table, err)
		}
		counts[table] = count
		total += count
	}

	tables := make([]string, 0, len(counts))
	for table := range counts {
		tables = append(tables, table)
	}
	sort.Strings(tables)

	fmt.Printf("Database: %s\n\n", cfg.DBPath)
	for _, table := range tables {
		fmt.Printf("  %-15s %s\n", table, formatNumber(counts[table]))
	}
	fmt.Printf("\nTotal: %s rows\n", formatNumber(total))
	return nil
}
