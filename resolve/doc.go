// Package resolve locates the installed ZetaChain CLI, preferring a
// project-local copy over a globally installed one, and memoizes the
// result for the lifetime of the process.
//
// The probe order encodes a policy: the version pinned to the project
// wins over whatever happens to be on PATH, preventing silent behavioral
// drift across machines. A failed resolution is never memoized; the
// program might be installed later, so every call retries both probes.
package resolve
