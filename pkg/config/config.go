package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

//go:embed config.toml.sample
var configTemplate string

// Config holds the settings for the API server and search core.
type Config struct {
	DBPath       string   `toml:"db_path"`
	ListenAddr   string   `toml:"listen_addr"`
	CacheTTL     Duration `toml:"cache_ttl"`
	SearchLimit  int      `toml:"search_limit"`
	WatchChanges bool     `toml:"watch_changes"`
}

// Duration wraps time.Duration so it round-trips through TOML as a
// human-readable string like "30s".
type Duration struct {
	time.Duration
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// GetDefaultConfig returns a config with stock values and the database
// placed in the user's data directory.
func GetDefaultConfig() (*Config, error) {
	dbPath, err := GetDefaultDBPath()
	if err != nil {
		return nil, fmt.Errorf("getting default database path: %w", err)
	}
	return &Config{
		DBPath:       dbPath,
		ListenAddr:   ":8080",
		CacheTTL:     Duration{30 * time.Second},
		SearchLimit:  50,
		WatchChanges: true,
	}, nil
}

// LoadConfig reads a TOML config file, filling in defaults for absent
// fields. A missing file yields the default config.
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return GetDefaultConfig()
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if config.DBPath == "" {
		dbPath, err := GetDefaultDBPath()
		if err != nil {
			return nil, fmt.Errorf("getting default database path: %w", err)
		}
		config.DBPath = dbPath
	}
	if config.ListenAddr == "" {
		config.ListenAddr = ":8080"
	}
	if config.CacheTTL.Duration == 0 {
		config.CacheTTL = Duration{30 * time.Second}
	}
	if config.SearchLimit <= 0 {
		config.SearchLimit = 50
	}

	return &config, nil
}

func (c *Config) SaveConfig(configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	return os.WriteFile(configPath, data, 0644)
}

// SaveTemplateConfig writes the commented sample config, with the
// db_path placeholder replaced by the real default path.
func (c *Config) SaveTemplateConfig(configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	dbPath := c.DBPath
	if dbPath == "" {
		var err error
		dbPath, err = GetDefaultDBPath()
		if err != nil {
			return fmt.Errorf("getting default database path: %w", err)
		}
	}

	template := strings.Replace(configTemplate, "/home/user/.local/share/orgdocs/orgdocs.db", dbPath, 1)
	return os.WriteFile(configPath, []byte(template), 0644)
}

// GetDefaultStorageDir returns the data directory for the database,
// creating it if needed. XDG_DATA_HOME takes precedence over
// ~/.local/share.
func GetDefaultStorageDir() (string, error) {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("getting user home directory: %w", err)
		}
		dataDir = filepath.Join(homeDir, ".local", "share")
	}

	storageDir := filepath.Join(dataDir, "orgdocs")
	if err := os.MkdirAll(storageDir, 0755); err != nil {
		return "", fmt.Errorf("creating storage directory %s: %w", storageDir, err)
	}

	return storageDir, nil
}

// GetDefaultDBPath returns the default database path in the user's data
// directory.
func GetDefaultDBPath() (string, error) {
	storageDir, err := GetDefaultStorageDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(storageDir, "orgdocs.db"), nil
}

// GetConfigDir returns the configuration directory, creating it if
// needed. XDG_CONFIG_HOME takes precedence over ~/.config.
func GetConfigDir() (string, error) {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("getting user home directory: %w", err)
		}
		configDir = filepath.Join(homeDir, ".config")
	}

	appConfigDir := filepath.Join(configDir, "orgdocs")
	if err := os.MkdirAll(appConfigDir, 0755); err != nil {
		return "", fmt.Errorf("creating config directory %s: %w", appConfigDir, err)
	}

	return appConfigDir, nil
}

// GetDefaultConfigPath returns the default configuration file path.
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}
