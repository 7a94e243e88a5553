// Package invoke spawns the ZetaChain CLI for a single command, enforcing
// a wall-clock timeout and a combined output-size ceiling, and classifying
// failures into the gateway's error taxonomy.
//
// Both stdout and stderr are always captured: the CLI emits non-fatal
// warnings on stderr even when it succeeds, and on failure stderr is the
// primary diagnostic signal.
package invoke
