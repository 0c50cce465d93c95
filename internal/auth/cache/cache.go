// Package cache holds the lookup cache used for role and department codes.
// An in-process driver backed by go-cache is the default, Redis is used when
// REDIS_URL is set so several replicas share entries.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by Get on a miss.
var ErrNotFound = errors.New("cache: key not found")

// Client is the minimal key/value surface the service needs.
type Client interface {
	// Get returns ErrNotFound on a miss.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value for ttl. A zero ttl uses the driver default.
	Set(ctx context.Context, key, value string, ttl time.Duration) error

	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
}

type Config struct {
	// RedisURL selects the redis driver when non-empty.
	RedisURL   string
	Prefix     string
	DefaultTTL time.Duration
}

// New picks a driver from cfg.
func New(ctx context.Context, cfg Config) (Client, error) {
	if cfg.RedisURL != "" {
		return NewRedis(ctx, cfg.RedisURL, cfg.Prefix)
	}
	return NewMemory(cfg.Prefix, cfg.DefaultTTL), nil
}

func prefixed(prefix, k string) string {
	if prefix == "" {
		return k
	}
	return prefix + ":" + k
}
