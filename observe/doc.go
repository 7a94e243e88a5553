// Package observe provides observability primitives for the execution
// gateway: structured logging, OpenTelemetry metrics and spans, and a
// bounded in-memory call-metric recorder for operator snapshots.
//
// It is a pure instrumentation library: no execution, no transport, no
// I/O beyond exporter setup. The gateway wires an Observer into its
// execution path.
package observe
