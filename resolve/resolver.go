package resolve

import (
	"os"
	"os/exec"
	"path/filepath"
	"sync"
)

// Origin identifies which probe located the CLI.
type Origin int

const (
	// OriginLocal means the project-local install was used.
	OriginLocal Origin = iota
	// OriginGlobal means the program was found on PATH.
	OriginGlobal
)

// String returns the string representation of the origin.
func (o Origin) String() string {
	switch o {
	case OriginLocal:
		return "local"
	case OriginGlobal:
		return "global"
	default:
		return "unknown"
	}
}

// Path is a successful resolution: the invocable location of the CLI and
// where it came from. Created once per process lifetime and immutable
// afterward. Disappearance later surfaces as an invocation failure, not
// a re-resolution.
type Path struct {
	Location string
	Origin   Origin
}

// Config configures a Resolver.
type Config struct {
	// Program is the bare program name probed on PATH.
	// Default: "zetachain"
	Program string

	// LocalDir is the project-relative directory holding a pinned copy of
	// the program. Default: "node_modules/.bin"
	LocalDir string
}

// DefaultProgram is the CLI program name.
const DefaultProgram = "zetachain"

// DefaultLocalDir is the project-relative location of a pinned install.
const DefaultLocalDir = "node_modules/.bin"

// Resolver locates the CLI and memoizes a successful resolution.
//
// Contract:
// - Concurrency: safe for concurrent use.
// - Errors: Resolve returns ErrCLINotFound when both probes fail; the
//   failure is never memoized.
type Resolver struct {
	config Config

	mu   sync.Mutex
	memo *Path

	// Probe seams, replaceable in tests.
	statFile func(path string) bool
	lookPath func(name string) (string, error)
}

// NewResolver creates a Resolver with the given configuration.
func NewResolver(config Config) *Resolver {
	if config.Program == "" {
		config.Program = DefaultProgram
	}
	if config.LocalDir == "" {
		config.LocalDir = DefaultLocalDir
	}

	return &Resolver{
		config:   config,
		statFile: fileExists,
		lookPath: exec.LookPath,
	}
}

// Resolve returns the memoized path if present, otherwise probes the
// project-local location first and PATH second. A success is memoized
// for the process lifetime; a failure is not.
func (r *Resolver) Resolve() (Path, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.memo != nil {
		return *r.memo, nil
	}

	local := filepath.Join(r.config.LocalDir, r.config.Program)
	if r.statFile(local) {
		r.memo = &Path{Location: local, Origin: OriginLocal}
		return *r.memo, nil
	}

	if global, err := r.lookPath(r.config.Program); err == nil {
		r.memo = &Path{Location: global, Origin: OriginGlobal}
		return *r.memo, nil
	}

	return Path{}, ErrCLINotFound
}

// Resolved reports whether a resolution has been memoized.
func (r *Resolver) Resolved() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.memo != nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
