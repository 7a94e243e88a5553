package command

import (
	"strings"
	"time"
)

// Spec describes a single invocation of the external CLI.
//
// A Spec is immutable once built: it is created per call, handed to the
// gateway, and consumed once. The Cacheable flag is derived from the
// argument list at construction time and never recomputed.
type Spec struct {
	// Operation is the logical operation name used for metrics and logging
	// (e.g. "list_chains"). It never reaches the spawned process.
	Operation string

	// Args is the exact argument list passed to the external program.
	Args []string

	// Cacheable reports whether the result of this command is safe to
	// serve from cache. Derived via IsCacheable.
	Cacheable bool

	// TTL is the call-site cache lifetime for the result. Zero means the
	// cache policy default applies.
	TTL time.Duration
}

// New builds a Spec for the given logical operation and argument list,
// deriving the cacheable flag from the arguments.
func New(operation string, args ...string) Spec {
	return Spec{
		Operation: operation,
		Args:      args,
		Cacheable: IsCacheable(strings.Join(args, " ")),
	}
}

// WithTTL returns a copy of the spec with the given call-site TTL.
func (s Spec) WithTTL(ttl time.Duration) Spec {
	s.TTL = ttl
	return s
}

// Key derives the canonical cache key: the command text itself. Callers
// must produce deterministic argument ordering so identical logical
// requests yield identical keys.
func (s Spec) Key() string {
	return strings.Join(s.Args, " ")
}

// String returns the command text with secret arguments masked. Safe to
// embed in log and error output.
func (s Spec) String() string {
	return strings.Join(Redact(s.Args), " ")
}

// Validate checks that the spec can be executed and cached under its key.
func (s Spec) Validate() error {
	if len(s.Args) == 0 {
		return ErrEmptyCommand
	}
	return ValidateKey(s.Key())
}

// Result holds the captured output of a finished invocation. Stderr is
// kept even on success because the CLI emits non-fatal warnings there.
type Result struct {
	Stdout string
	Stderr string
}

// ValidateKey checks whether a derived key is usable as a cache key.
func ValidateKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return ErrInvalidKey
	}
	if len(key) > MaxKeyLength {
		return ErrKeyTooLong
	}
	if strings.ContainsAny(key, "\n\r") {
		return ErrInvalidKey
	}
	return nil
}
