package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by Get when the key has never been written or has
// expired.
var ErrNotFound = errors.New("store: key not found")

// Store abstracts the key/value persistence the service needs: rotation
// state, feedback records, nothing else. Implementations: Redis (production)
// or in-memory (tests, local runs without Redis).
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	// Set writes value under key. ttl <= 0 means no expiry.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Ping(ctx context.Context) error
	Close() error
}
