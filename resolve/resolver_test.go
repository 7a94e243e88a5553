package resolve

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

// countingProbes instruments the two probe seams for call counting.
type countingProbes struct {
	statCalls int
	lookCalls int
	statOK    bool
	lookPath  string
	lookErr   error
}

func (p *countingProbes) install(r *Resolver) {
	r.statFile = func(string) bool {
		p.statCalls++
		return p.statOK
	}
	r.lookPath = func(string) (string, error) {
		p.lookCalls++
		return p.lookPath, p.lookErr
	}
}

func TestResolver_PrefersLocal(t *testing.T) {
	r := NewResolver(Config{})
	probes := &countingProbes{statOK: true, lookPath: "/usr/bin/zetachain"}
	probes.install(r)

	path, err := r.Resolve()
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if path.Origin != OriginLocal {
		t.Errorf("Origin = %v, want local", path.Origin)
	}
	if want := filepath.Join(DefaultLocalDir, DefaultProgram); path.Location != want {
		t.Errorf("Location = %q, want %q", path.Location, want)
	}
	if probes.lookCalls != 0 {
		t.Error("global probe must not run when the local probe succeeds")
	}
}

func TestResolver_FallsBackToGlobal(t *testing.T) {
	r := NewResolver(Config{})
	probes := &countingProbes{statOK: false, lookPath: "/usr/bin/zetachain"}
	probes.install(r)

	path, err := r.Resolve()
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if path.Origin != OriginGlobal {
		t.Errorf("Origin = %v, want global", path.Origin)
	}
	if path.Location != "/usr/bin/zetachain" {
		t.Errorf("Location = %q, want /usr/bin/zetachain", path.Location)
	}
}

func TestResolver_MemoizesSuccess(t *testing.T) {
	r := NewResolver(Config{})
	probes := &countingProbes{statOK: true}
	probes.install(r)

	if _, err := r.Resolve(); err != nil {
		t.Fatalf("first Resolve failed: %v", err)
	}
	first := probes.statCalls + probes.lookCalls

	if _, err := r.Resolve(); err != nil {
		t.Fatalf("second Resolve failed: %v", err)
	}
	if got := probes.statCalls + probes.lookCalls; got != first {
		t.Errorf("second Resolve performed %d extra probes, want 0", got-first)
	}
	if !r.Resolved() {
		t.Error("Resolved() = false after successful Resolve")
	}
}

func TestResolver_NeverMemoizesFailure(t *testing.T) {
	r := NewResolver(Config{})
	probes := &countingProbes{statOK: false, lookErr: errors.New("not found")}
	probes.install(r)

	if _, err := r.Resolve(); !errors.Is(err, ErrCLINotFound) {
		t.Fatalf("Resolve = %v, want ErrCLINotFound", err)
	}
	if r.Resolved() {
		t.Error("failed resolution must not be memoized")
	}

	// The program gets installed later; the next call must re-probe and
	// pick it up.
	probes.statOK = true
	path, err := r.Resolve()
	if err != nil {
		t.Fatalf("Resolve after install failed: %v", err)
	}
	if path.Origin != OriginLocal {
		t.Errorf("Origin = %v, want local", path.Origin)
	}
	if probes.statCalls != 2 {
		t.Errorf("statCalls = %d, want 2 (failure retried)", probes.statCalls)
	}
}

func TestResolver_RealLocalProbe(t *testing.T) {
	dir := t.TempDir()
	program := filepath.Join(dir, "zetachain")
	if err := os.WriteFile(program, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatal(err)
	}

	r := NewResolver(Config{LocalDir: dir})
	path, err := r.Resolve()
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if path.Location != program {
		t.Errorf("Location = %q, want %q", path.Location, program)
	}
	if path.Origin != OriginLocal {
		t.Errorf("Origin = %v, want local", path.Origin)
	}
}

func TestResolver_ConcurrentResolve(t *testing.T) {
	r := NewResolver(Config{})
	probes := &countingProbes{statOK: true}
	probes.install(r)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := r.Resolve(); err != nil {
				t.Errorf("Resolve failed: %v", err)
			}
		}()
	}
	wg.Wait()

	if probes.statCalls != 1 {
		t.Errorf("statCalls = %d, want 1 (memo shared across goroutines)", probes.statCalls)
	}
}

func TestOrigin_String(t *testing.T) {
	tests := []struct {
		origin Origin
		want   string
	}{
		{OriginLocal, "local"},
		{OriginGlobal, "global"},
		{Origin(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.origin.String(); got != tt.want {
			t.Errorf("Origin(%d).String() = %q, want %q", tt.origin, got, tt.want)
		}
	}
}
