// Package store provides the key-value persistence used to keep the
// technology collection and display preferences between runs.
package store

import (
	"context"
	"encoding/json"
	"fmt"
)

// Keys used by the tracker
const (
	KeyTechnologies = "technologies"
	KeyDarkMode     = "darkMode"
)

// Store is a key-value store holding JSON-encoded values.
// The last write for a key wins.
type Store interface {
	// Load decodes the value stored at key into dest.
	// It reports false, leaving dest untouched, when the key has never been saved.
	Load(ctx context.Context, key string, dest any) (bool, error)
	// Save encodes value as JSON and stores it at key
	Save(ctx context.Context, key string, value any) error
	Close() error
}

// LoadOrDefault returns the value stored at key, or def when the key is absent
func LoadOrDefault[T any](ctx context.Context, s Store, key string, def T) (T, error) {
	var value T
	found, err := s.Load(ctx, key, &value)
	if err != nil {
		return def, err
	}
	if !found {
		return def, nil
	}
	return value, nil
}

func encode(key string, value any) ([]byte, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("failed to encode value for key %s: %w", key, err)
	}
	return data, nil
}

func decode(key string, data []byte, dest any) error {
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("failed to decode value for key %s: %w", key, err)
	}
	return nil
}
