// Package health provides the operator-facing diagnostic surface for the
// gateway: health checks over the CLI installation and result cache,
// aggregation into a composite status, and HTTP handlers for probes plus
// the maintenance operations (cache clear, call-metric snapshot).
package health
