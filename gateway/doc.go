// Package gateway is the single entry point for executing ZetaChain CLI
// commands. It composes path resolution, process invocation, the result
// cache, and call metrics behind one Execute call.
//
// Flow: cacheable commands are looked up first; on a hit the gateway
// returns immediately and skips invocation. Otherwise the CLI path is
// resolved (memoized for the process lifetime), the process is spawned
// under a timeout and output ceiling, and successful cacheable results
// are stored with the call-site TTL. Every call is recorded, cache hits
// included.
//
// No state persists between calls except the path memo and cache
// contents. All shared state lives in fields of an explicitly
// constructed Gateway, so tests can instantiate independent instances.
package gateway
