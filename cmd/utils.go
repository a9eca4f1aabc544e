package cmd

import (
	"fmt"

	"github.com/orgdocs/orgdocs/pkg/config"
	"github.com/orgdocs/orgdocs/pkg/storage"
)

// openStore loads the config and opens the database it points at.
// Callers own closing the returned store.
func openStore(configPath string) (*config.Config, *storage.Store, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}

	return cfg, store, nil
}
