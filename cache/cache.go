package cache

import (
	"context"
	"errors"
	"time"

	"github.com/zetaops/zetagate/command"
)

// Sentinel errors for cache operations.
var (
	ErrNilCache = errors.New("cache: cache is nil")
)

// Cache is the interface for caching command results.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: Lookup never errors; it returns (zero, false) on miss.
// - Keys: callers derive keys via command.Spec.Key and must produce
//   deterministic argument ordering.
type Cache interface {
	// Lookup retrieves a cached result. Returns (zero, false) on miss or
	// when the entry has outlived its TTL.
	Lookup(ctx context.Context, key string) (command.Result, bool)

	// Store inserts or overwrites a result with the given TTL.
	// TTL<=0 falls back to the policy default.
	Store(ctx context.Context, key string, value command.Result, ttl time.Duration) error

	// Clear unconditionally empties the cache. Safe at any time, including
	// concurrently with in-flight Lookup/Store calls.
	Clear(ctx context.Context) error

	// Len reports the current entry count, expired entries included.
	Len() int
}
