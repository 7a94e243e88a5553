package cache

import "time"

// Policy configures caching behavior.
type Policy struct {
	// DefaultTTL is the TTL used when a call site does not pick one.
	// If zero, caching is disabled by default.
	DefaultTTL time.Duration

	// MaxTTL is the maximum allowed TTL. Call-site TTLs are clamped to it.
	// If zero, no maximum is enforced.
	MaxTTL time.Duration

	// MaxEntries is a soft cap on entry count. Exceeding it on Store
	// triggers an eager cleanup pass between sweeps. If zero, no cap.
	MaxEntries int

	// SweepInterval is how often the background sweep evicts expired
	// entries. If zero, no background sweep runs.
	SweepInterval time.Duration
}

// DefaultPolicy returns the default caching policy: short generic TTL,
// bounded entry count, minutely sweep.
func DefaultPolicy() Policy {
	return Policy{
		DefaultTTL:    30 * time.Second,
		MaxTTL:        10 * time.Minute,
		MaxEntries:    256,
		SweepInterval: time.Minute,
	}
}

// NoCachePolicy returns a policy that disables caching entirely.
func NoCachePolicy() Policy {
	return Policy{}
}

// ShouldCache reports whether caching is enabled by this policy.
func (p Policy) ShouldCache() bool {
	return p.DefaultTTL > 0
}

// EffectiveTTL returns the TTL to use for an entry, applying the default
// and clamping to MaxTTL.
func (p Policy) EffectiveTTL(override time.Duration) time.Duration {
	ttl := override
	if ttl <= 0 {
		ttl = p.DefaultTTL
	}
	if p.MaxTTL > 0 && ttl > p.MaxTTL {
		ttl = p.MaxTTL
	}
	return ttl
}
