package store

import (
	"context"
	"fmt"
)

// Drivers understood by Open
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverMemory   = "memory"
)

// Options selects and configures a Store driver
type Options struct {
	Driver      string
	Path        string // sqlite database file
	DatabaseURL string // postgres connection URL
	RedisURL    string
	RedisPrefix string
}

// Open connects to the store named by opts.Driver. An empty driver means sqlite.
func Open(ctx context.Context, opts Options) (Store, error) {
	switch opts.Driver {
	case "", DriverSQLite:
		if opts.Path == "" {
			return nil, fmt.Errorf("sqlite store requires a database path")
		}
		return OpenSQLite(ctx, opts.Path)
	case DriverPostgres:
		if opts.DatabaseURL == "" {
			return nil, fmt.Errorf("postgres store requires a database URL")
		}
		return ConnectPostgres(ctx, opts.DatabaseURL)
	case DriverRedis:
		if opts.RedisURL == "" {
			return nil, fmt.Errorf("redis store requires a redis URL")
		}
		return ConnectRedis(ctx, opts.RedisURL, opts.RedisPrefix)
	case DriverMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", opts.Driver)
	}
}
