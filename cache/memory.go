package cache

import (
	"context"
	"sync"
	"time"

	"github.com/zetaops/zetagate/command"
)

// MemoryCache is the in-memory, single-process Cache implementation.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]*entry
	policy  Policy

	stop     chan struct{}
	stopOnce sync.Once
}

// entry is never mutated in place, only overwritten.
type entry struct {
	value     command.Result
	createdAt time.Time
	ttl       time.Duration
}

func (e *entry) expired(now time.Time) bool {
	return now.Sub(e.createdAt) >= e.ttl
}

// NewMemoryCache creates a new in-memory cache with the given policy. If
// the policy sets SweepInterval, a background sweeper runs until Close.
func NewMemoryCache(policy Policy) *MemoryCache {
	c := &MemoryCache{
		entries: make(map[string]*entry),
		policy:  policy,
		stop:    make(chan struct{}),
	}

	if policy.SweepInterval > 0 {
		go c.sweepLoop(policy.SweepInterval)
	}

	return c
}

// Close stops the background sweeper. Idempotent.
func (c *MemoryCache) Close() {
	c.stopOnce.Do(func() { close(c.stop) })
}

// Lookup retrieves a cached result. An entry past its TTL is evicted and
// reported as a miss.
func (c *MemoryCache) Lookup(_ context.Context, key string) (command.Result, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return command.Result{}, false
	}

	if e.expired(time.Now()) {
		c.mu.Lock()
		// Recheck under the write lock: Store may have overwritten the
		// entry since the read lock was dropped.
		if cur, ok := c.entries[key]; ok && cur == e {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return command.Result{}, false
	}

	return e.value, true
}

// Store inserts or overwrites a result unconditionally. The effective TTL
// applies the policy default and MaxTTL clamp; a policy with caching
// disabled makes Store a no-op.
func (c *MemoryCache) Store(_ context.Context, key string, value command.Result, ttl time.Duration) error {
	if err := command.ValidateKey(key); err != nil {
		return err
	}

	ttl = c.policy.EffectiveTTL(ttl)
	if ttl <= 0 {
		return nil
	}

	c.mu.Lock()
	c.entries[key] = &entry{
		value:     value,
		createdAt: time.Now(),
		ttl:       ttl,
	}
	over := c.policy.MaxEntries > 0 && len(c.entries) > c.policy.MaxEntries
	c.mu.Unlock()

	// Soft cap exceeded: run an eager cleanup pass rather than waiting
	// for the next sweep.
	if over {
		c.Sweep()
	}

	return nil
}

// Clear unconditionally empties the cache.
func (c *MemoryCache) Clear(_ context.Context) error {
	c.mu.Lock()
	c.entries = make(map[string]*entry)
	c.mu.Unlock()
	return nil
}

// Len reports the current entry count, expired entries included.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Sweep evicts all entries past their TTL and returns how many were
// removed. Runs on a fixed interval in the background; exported so
// operators and tests can force a pass.
func (c *MemoryCache) Sweep() int {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	evicted := 0
	for key, e := range c.entries {
		if e.expired(now) {
			delete(c.entries, key)
			evicted++
		}
	}
	return evicted
}

func (c *MemoryCache) sweepLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.Sweep()
		case <-c.stop:
			return
		}
	}
}

// Ensure MemoryCache implements Cache
var _ Cache = (*MemoryCache)(nil)
