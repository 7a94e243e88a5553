package invoke

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"sync"
	"time"

	"github.com/zetaops/zetagate/command"
	"github.com/zetaops/zetagate/resolve"
)

// Defaults for invocation limits.
const (
	// DefaultTimeout is the wall-clock budget for a single invocation.
	DefaultTimeout = 15 * time.Second

	// DefaultMaxOutputBytes caps combined stdout+stderr.
	DefaultMaxOutputBytes = 1 << 20 // 1 MiB
)

// Options configures an Invoker.
type Options struct {
	// Timeout is the wall-clock budget per invocation.
	// Default: DefaultTimeout
	Timeout time.Duration

	// MaxOutputBytes caps combined stdout+stderr per invocation.
	// Default: DefaultMaxOutputBytes
	MaxOutputBytes int64
}

// Invoker spawns the resolved CLI for individual commands.
//
// Contract:
// - Concurrency: safe for concurrent use; each Run spawns its own process.
// - Context: Run honors cancellation; the spawned process is killed when
//   the context ends.
// - Errors: failures classify as resolve.ErrCLINotFound, ErrTimeout,
//   ErrOutputTooLarge, or *ExitError.
type Invoker struct {
	opts Options
}

// NewInvoker creates an Invoker, applying defaults for unset options.
func NewInvoker(opts Options) *Invoker {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.MaxOutputBytes <= 0 {
		opts.MaxOutputBytes = DefaultMaxOutputBytes
	}
	return &Invoker{opts: opts}
}

// Options returns the effective invoker options.
func (i *Invoker) Options() Options {
	return i.opts
}

// Run executes the command against the resolved program and collects both
// output streams. The process is forcibly terminated when the timeout
// elapses or the output ceiling is exceeded.
func (i *Invoker) Run(ctx context.Context, path resolve.Path, spec command.Spec) (command.Result, error) {
	if err := spec.Validate(); err != nil {
		return command.Result{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, i.opts.Timeout)
	defer cancel()

	budget := &outputBudget{limit: i.opts.MaxOutputBytes, abort: cancel}
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, path.Location, spec.Args...)
	cmd.Stdout = budget.stream(&stdout)
	cmd.Stderr = budget.stream(&stderr)
	cmd.WaitDelay = 5 * time.Second

	err := cmd.Run()

	switch {
	case budget.exceeded():
		return command.Result{}, ErrOutputTooLarge
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return command.Result{}, ErrTimeout
	case ctx.Err() != nil:
		// Caller abandoned the request; the process has been killed.
		return command.Result{}, ctx.Err()
	case err == nil:
		return command.Result{Stdout: stdout.String(), Stderr: stderr.String()}, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return command.Result{}, &ExitError{Code: exitErr.ExitCode(), Stderr: stderr.String()}
	}

	// The program could not be started at all: it disappeared after
	// resolution, or is not executable.
	return command.Result{}, fmt.Errorf("%w: %v", resolve.ErrCLINotFound, err)
}

// errBudgetExceeded aborts the stream copiers once the ceiling is hit.
var errBudgetExceeded = errors.New("invoke: output budget exceeded")

// outputBudget enforces a combined byte ceiling over both streams. The
// first write to cross the ceiling marks the budget exceeded and kills
// the process via abort.
type outputBudget struct {
	mu    sync.Mutex
	limit int64
	used  int64
	over  bool
	abort context.CancelFunc
}

func (b *outputBudget) exceeded() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.over
}

func (b *outputBudget) stream(buf *bytes.Buffer) *budgetWriter {
	return &budgetWriter{budget: b, buf: buf}
}

type budgetWriter struct {
	budget *outputBudget
	buf    *bytes.Buffer
}

func (w *budgetWriter) Write(p []byte) (int, error) {
	b := w.budget
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.over {
		return 0, errBudgetExceeded
	}
	if b.used+int64(len(p)) > b.limit {
		b.over = true
		b.abort()
		return 0, errBudgetExceeded
	}

	b.used += int64(len(p))
	return w.buf.Write(p)
}
