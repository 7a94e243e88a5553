package health

import (
	"context"
	"sync"
	"time"
)

// DefaultCheckTimeout bounds each individual check within CheckAll.
const DefaultCheckTimeout = 5 * time.Second

// Aggregator runs a set of named checkers and combines their results.
type Aggregator struct {
	mu       sync.RWMutex
	checkers map[string]Checker
	timeout  time.Duration
}

// NewAggregator creates an aggregator with the default per-check timeout.
func NewAggregator() *Aggregator {
	return &Aggregator{
		checkers: make(map[string]Checker),
		timeout:  DefaultCheckTimeout,
	}
}

// WithTimeout overrides the per-check timeout. Non-positive values are
// ignored.
func (a *Aggregator) WithTimeout(timeout time.Duration) *Aggregator {
	if timeout > 0 {
		a.timeout = timeout
	}
	return a
}

// Register adds a checker. A checker registered under an existing name
// replaces the previous one.
func (a *Aggregator) Register(c Checker) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.checkers[c.Name()] = c
}

// Check runs a single named checker.
func (a *Aggregator) Check(ctx context.Context, name string) (Result, error) {
	a.mu.RLock()
	c, ok := a.checkers[name]
	a.mu.RUnlock()
	if !ok {
		return Result{}, ErrCheckerNotFound
	}
	return a.runCheck(ctx, c), nil
}

// CheckAll runs every registered checker concurrently and returns the
// results keyed by checker name.
func (a *Aggregator) CheckAll(ctx context.Context) map[string]Result {
	a.mu.RLock()
	checkers := make([]Checker, 0, len(a.checkers))
	for _, c := range a.checkers {
		checkers = append(checkers, c)
	}
	a.mu.RUnlock()

	results := make(map[string]Result, len(checkers))
	var (
		wg sync.WaitGroup
		rm sync.Mutex
	)
	for _, c := range checkers {
		wg.Add(1)
		go func(c Checker) {
			defer wg.Done()
			r := a.runCheck(ctx, c)
			rm.Lock()
			results[c.Name()] = r
			rm.Unlock()
		}(c)
	}
	wg.Wait()
	return results
}

// OverallStatus reduces a result set to a single status: unhealthy wins
// over degraded, degraded over healthy.
func OverallStatus(results map[string]Result) Status {
	status := StatusHealthy
	for _, r := range results {
		switch r.Status {
		case StatusUnhealthy:
			return StatusUnhealthy
		case StatusDegraded:
			status = StatusDegraded
		}
	}
	return status
}

func (a *Aggregator) runCheck(ctx context.Context, c Checker) Result {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	start := time.Now()
	done := make(chan Result, 1)
	go func() {
		done <- c.Check(ctx)
	}()

	select {
	case r := <-done:
		r.Duration = time.Since(start)
		if r.Timestamp.IsZero() {
			r.Timestamp = time.Now()
		}
		return r
	case <-ctx.Done():
		r := Unhealthy("check timed out", ErrCheckTimeout)
		r.Duration = time.Since(start)
		return r
	}
}
