// Package cache provides the in-memory result cache for side-effect-free
// CLI commands.
//
// Entries carry a per-entry TTL chosen at the call site. Expired entries
// are evicted lazily on lookup and by a periodic sweep that bounds memory
// even for keys that are never looked up again. A soft cap on entry count
// triggers an eager cleanup pass between sweeps.
package cache
