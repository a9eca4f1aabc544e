package cmd

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/orgdocs/orgdocs/pkg/config"
	"github.com/orgdocs/orgdocs/pkg/storage"
)

// InitCommand creates the init command
func InitCommand() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Initialize configuration and database schema",
		Action: func(ctx context.Context, c *cli.Command) error {
			return initConfig(ctx, c.String("config"))
		},
	}
}

func initConfig(ctx context.Context, configPath string) error {
	cfg, err := config.GetDefaultConfig()
	if err != nil {
		return fmt.Errorf("building default config: %w", err)
	}
	if err := cfg.SaveTemplateConfig(configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			fmt.Printf("Warning: failed to close database: %v\n", err)
		}
	}()
	if err := store.InitSchema(ctx); err != nil {
		return fmt.Errorf("initializing schema: %w", err)
	}

	fmt.Printf("Configuration initialized at %s\n", configPath)
	fmt.Printf("Database initialized at %s\n", cfg.DBPath)
	return nil
}
