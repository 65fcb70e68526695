// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/techtracker/internal/roadmap"
	"github.com/jonathan/techtracker/internal/store"
)

// DefaultRoadmapName is used for exports when no name is given
const DefaultRoadmapName = roadmap.DefaultName

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Storage
	StoreDriver string `json:"store_driver,omitempty"` // sqlite, postgres, redis or memory
	DataPath    string `json:"data_path,omitempty"`    // SQLite database file
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	RedisURL    string `json:"redis_url,omitempty"`    // Redis connection URL
	RedisPrefix string `json:"redis_prefix,omitempty"` // Key prefix for the redis driver

	// Behavior
	RoadmapName string `json:"roadmap_name,omitempty"` // Default export roadmap name
	Verbose     bool   `json:"verbose,omitempty"`      // Debug logging
	SeedOnEmpty *bool  `json:"seed_on_empty,omitempty"`
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Defaults returns the built-in configuration. The SQLite file lives under
// the user's config directory.
func Defaults() Config {
	dataPath := filepath.Join(".techtracker", "tracker.db")
	if dir, err := os.UserConfigDir(); err == nil {
		dataPath = filepath.Join(dir, "techtracker", "tracker.db")
	}
	seed := true
	return Config{
		StoreDriver: store.DriverSQLite,
		DataPath:    dataPath,
		RedisPrefix: "techtracker:",
		RoadmapName: DefaultRoadmapName,
		SeedOnEmpty: &seed,
	}
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case "", store.DriverSQLite, store.DriverMemory:
	case store.DriverPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("config error: 'database_url' is required for the postgres store")
		}
	case store.DriverRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("config error: 'redis_url' is required for the redis store")
		}
	default:
		return fmt.Errorf("config error: unknown 'store_driver' %q", c.StoreDriver)
	}

	if c.StoreDriver == store.DriverSQLite && c.DataPath != "" {
		if info, err := os.Stat(c.DataPath); err == nil && info.IsDir() {
			return fmt.Errorf("config error: 'data_path' is a directory: %s", c.DataPath)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.StoreDriver == "" {
		result.StoreDriver = defaults.StoreDriver
	}
	if result.DataPath == "" {
		result.DataPath = defaults.DataPath
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.RedisURL == "" {
		result.RedisURL = defaults.RedisURL
	}
	if result.RedisPrefix == "" {
		result.RedisPrefix = defaults.RedisPrefix
	}
	if result.RoadmapName == "" {
		result.RoadmapName = defaults.RoadmapName
	}

	// Pointer bools distinguish unset from false
	if result.SeedOnEmpty == nil {
		result.SeedOnEmpty = defaults.SeedOnEmpty
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// StoreOptions converts the storage settings for store.Open
func (c *Config) StoreOptions() store.Options {
	return store.Options{
		Driver:      c.StoreDriver,
		Path:        c.DataPath,
		DatabaseURL: c.DatabaseURL,
		RedisURL:    c.RedisURL,
		RedisPrefix: c.RedisPrefix,
	}
}

// ShouldSeed reports whether an empty store is seeded with starter technologies
func (c *Config) ShouldSeed() bool {
	return c.SeedOnEmpty == nil || *c.SeedOnEmpty
}
