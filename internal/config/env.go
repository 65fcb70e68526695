package config

import (
	"fmt"
	"os"
	"strconv"
)

// FromEnv reads configuration from environment variables:
// TECHTRACKER_STORE, TECHTRACKER_DATA_PATH, DATABASE_URL, REDIS_URL,
// TECHTRACKER_REDIS_PREFIX, TECHTRACKER_ROADMAP_NAME, TECHTRACKER_VERBOSE
// and TECHTRACKER_SEED. Unset variables leave fields empty.
func FromEnv() (*Config, error) {
	cfg := &Config{
		StoreDriver: os.Getenv("TECHTRACKER_STORE"),
		DataPath:    os.Getenv("TECHTRACKER_DATA_PATH"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisURL:    os.Getenv("REDIS_URL"),
		RedisPrefix: os.Getenv("TECHTRACKER_REDIS_PREFIX"),
		RoadmapName: os.Getenv("TECHTRACKER_ROADMAP_NAME"),
	}

	if v := os.Getenv("TECHTRACKER_VERBOSE"); v != "" {
		verbose, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid TECHTRACKER_VERBOSE: %v", err)
		}
		cfg.Verbose = verbose
	}

	if v := os.Getenv("TECHTRACKER_SEED"); v != "" {
		seed, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid TECHTRACKER_SEED: %v", err)
		}
		cfg.SeedOnEmpty = &seed
	}

	return cfg, nil
}

// Resolve layers configuration: config file (if path is set) over environment
// over built-in defaults
func Resolve(path string) (*Config, error) {
	env, err := FromEnv()
	if err != nil {
		return nil, err
	}
	merged := env.MergeWithDefaults(Defaults())

	if path != "" {
		file, err := LoadConfig(path)
		if err != nil {
			return nil, err
		}
		verbose := file.Verbose || merged.Verbose
		merged = file.MergeWithDefaults(merged)
		merged.Verbose = verbose
	}

	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}
