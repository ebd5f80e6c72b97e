// Package store keeps generated reports for a limited time.
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"cosmicmatch/internal/config"
)

var (
	// ErrNotFound is returned for missing and expired keys
	ErrNotFound = errors.New("key not found")
	// ErrInvalidTTL is returned when a value is stored without a positive TTL
	ErrInvalidTTL = errors.New("ttl must be positive")
)

// Store is a key-value store whose entries expire
type Store interface {
	Put(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
	Close() error
}

// HealthChecker is implemented by stores that depend on an external server
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Health pings s if it has a server to ping; in-process stores are always healthy
func Health(ctx context.Context, s Store) error {
	if hc, ok := s.(HealthChecker); ok {
		return hc.Health(ctx)
	}
	return nil
}

// New opens the store selected by cfg.Driver
func New(ctx context.Context, cfg config.StoreConfig, logger *slog.Logger) (Store, error) {
	switch strings.ToLower(cfg.Driver) {
	case "", "memory":
		return NewMemoryStore(cfg.MaxEntries, cfg.SweepInterval, logger), nil
	case "redis":
		return NewRedisStoreFromURL(ctx, cfg.RedisURL, logger)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}

func validateTTL(ttl time.Duration) error {
	if ttl <= 0 {
		return fmt.Errorf("%w: got %s", ErrInvalidTTL, ttl)
	}
	return nil
}
