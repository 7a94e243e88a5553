package health

import (
	"context"
	"fmt"

	"github.com/zetaops/zetagate/resolve"
)

// PathResolver is satisfied by *resolve.Resolver.
type PathResolver interface {
	Resolve() (resolve.Path, error)
}

// CLIChecker reports whether the ZetaChain CLI can be located.
type CLIChecker struct {
	resolver PathResolver
}

// NewCLIChecker creates a checker over the given resolver.
func NewCLIChecker(resolver PathResolver) *CLIChecker {
	return &CLIChecker{resolver: resolver}
}

// Name returns the name of this checker.
func (c *CLIChecker) Name() string {
	return "cli"
}

// Check probes for the CLI binary. A missing binary is unhealthy: the
// gateway cannot serve any call without it.
func (c *CLIChecker) Check(ctx context.Context) Result {
	path, err := c.resolver.Resolve()
	if err != nil {
		return Unhealthy("cli binary not found", err)
	}
	return Healthy("cli binary available").WithDetails(map[string]any{
		"path":   path.Location,
		"origin": path.Origin.String(),
	})
}

// EntryCounter is satisfied by *cache.MemoryCache.
type EntryCounter interface {
	Len() int
}

// CacheChecker reports on result-cache occupancy relative to its soft cap.
type CacheChecker struct {
	cache      EntryCounter
	maxEntries int
}

// NewCacheChecker creates a checker over the given cache. maxEntries
// of zero disables the occupancy comparison.
func NewCacheChecker(cache EntryCounter, maxEntries int) *CacheChecker {
	return &CacheChecker{cache: cache, maxEntries: maxEntries}
}

// Name returns the name of this checker.
func (c *CacheChecker) Name() string {
	return "cache"
}

// Check reports degraded once the entry count exceeds the soft cap.
// The cache stays usable past the cap, so this never goes unhealthy.
func (c *CacheChecker) Check(ctx context.Context) Result {
	n := c.cache.Len()
	details := map[string]any{
		"entries":     n,
		"max_entries": c.maxEntries,
	}
	if c.maxEntries > 0 && n > c.maxEntries {
		return Degraded(fmt.Sprintf("cache over soft cap: %d > %d", n, c.maxEntries)).WithDetails(details)
	}
	return Healthy("cache within capacity").WithDetails(details)
}
