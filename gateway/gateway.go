package gateway

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"

	"github.com/zetaops/zetagate/cache"
	"github.com/zetaops/zetagate/command"
	"github.com/zetaops/zetagate/invoke"
	"github.com/zetaops/zetagate/observe"
	"github.com/zetaops/zetagate/resolve"
)

// PathResolver locates the external CLI.
type PathResolver interface {
	Resolve() (resolve.Path, error)
}

// Runner spawns the external CLI for one command.
type Runner interface {
	Run(ctx context.Context, path resolve.Path, spec command.Spec) (command.Result, error)
}

// Config configures a Gateway. Zero-value fields get working defaults so
// tests and embedders can override only what they care about.
type Config struct {
	// Resolver locates the CLI. Default: resolve.NewResolver(resolve.Config{}).
	Resolver PathResolver

	// Runner spawns the CLI. Default: invoke.NewInvoker(invoke.Options{}).
	Runner Runner

	// Cache stores results of side-effect-free commands.
	// Default: cache.NewMemoryCache(cache.DefaultPolicy()), owned and
	// closed by the Gateway.
	Cache cache.Cache

	// Recorder keeps the bounded call-metric list.
	// Default: observe.NewRecorder(0).
	Recorder *observe.Recorder

	// Observer supplies telemetry components. Default: noop.
	Observer observe.Observer

	// SingleFlight de-duplicates concurrent identical cacheable
	// invocations. Off by default: two concurrent misses for the same key
	// may both invoke and both store, last write wins.
	SingleFlight bool
}

// Gateway executes CLI commands with caching, classification, and metrics.
//
// Contract:
// - Concurrency: safe for concurrent use.
// - Errors: Execute failures classify via Classify into NotFound,
//   Timeout, OutputTooLarge, CommandError, or Other; all propagate
//   unmodified to the caller.
type Gateway struct {
	resolver PathResolver
	runner   Runner
	cache    cache.Cache
	recorder *observe.Recorder
	metrics  observe.Metrics
	tracer   observe.Tracer
	logger   observe.Logger
	sf       *singleflight.Group

	ownedCache *cache.MemoryCache
}

// New creates a Gateway, applying defaults for unset configuration.
func New(cfg Config) (*Gateway, error) {
	g := &Gateway{
		resolver: cfg.Resolver,
		runner:   cfg.Runner,
		cache:    cfg.Cache,
		recorder: cfg.Recorder,
	}

	if g.resolver == nil {
		g.resolver = resolve.NewResolver(resolve.Config{})
	}
	if g.runner == nil {
		g.runner = invoke.NewInvoker(invoke.Options{})
	}
	if g.cache == nil {
		g.ownedCache = cache.NewMemoryCache(cache.DefaultPolicy())
		g.cache = g.ownedCache
	}
	if g.recorder == nil {
		g.recorder = observe.NewRecorder(0)
	}

	obs := cfg.Observer
	if obs == nil {
		obs = observe.NewNoopObserver()
	}
	metrics, err := observe.NewMetrics(obs.Meter())
	if err != nil {
		return nil, err
	}
	g.metrics = metrics
	g.tracer = observe.NewTracer(obs.Tracer())
	g.logger = obs.Logger()

	if cfg.SingleFlight {
		g.sf = &singleflight.Group{}
	}

	return g, nil
}

// Close releases resources the Gateway owns (the default cache's sweeper).
// Injected caches are the caller's to close.
func (g *Gateway) Close() {
	if g.ownedCache != nil {
		g.ownedCache.Close()
	}
}

// Execute runs one command through the gateway. When useCache is true and
// the command is classified cacheable, a fresh cached result short-circuits
// the invocation; a successful invocation is stored with the spec's
// call-site TTL. Every call is recorded, cache hits included.
func (g *Gateway) Execute(ctx context.Context, spec command.Spec, useCache bool) (command.Result, error) {
	start := time.Now()
	meta := observe.OpMeta{Name: spec.Operation}
	ctx, span := g.tracer.StartSpan(ctx, meta)

	cacheable := useCache && spec.Cacheable
	key := spec.Key()

	if cacheable {
		if result, ok := g.cache.Lookup(ctx, key); ok {
			g.finish(ctx, span, meta, spec, start, true, nil)
			return result, nil
		}
	}

	var result command.Result
	var err error
	if g.sf != nil && cacheable {
		// Concurrent identical cacheable misses collapse to one invocation.
		var v any
		v, err, _ = g.sf.Do(key, func() (any, error) {
			return g.invokeOnce(ctx, spec)
		})
		if err == nil {
			result = v.(command.Result)
		}
	} else {
		result, err = g.invokeOnce(ctx, spec)
	}

	if err == nil && cacheable {
		if storeErr := g.cache.Store(ctx, key, result, spec.TTL); storeErr != nil {
			g.logger.WithOp(meta).Warn(ctx, "cache store failed",
				observe.Field{Key: "error", Value: storeErr.Error()})
		}
	}

	g.finish(ctx, span, meta, spec, start, false, err)
	return result, err
}

// invokeOnce resolves the CLI and runs the command. A resolution failure
// propagates without attempting invocation.
func (g *Gateway) invokeOnce(ctx context.Context, spec command.Spec) (command.Result, error) {
	path, err := g.resolver.Resolve()
	if err != nil {
		return command.Result{}, err
	}
	return g.runner.Run(ctx, path, spec)
}

// ClearCache unconditionally empties the result cache. Exposed for the
// operator-facing maintenance surface.
func (g *Gateway) ClearCache(ctx context.Context) error {
	return g.cache.Clear(ctx)
}

// CacheLen reports the current result-cache entry count.
func (g *Gateway) CacheLen() int {
	return g.cache.Len()
}

// MetricsSnapshot returns a copy of the recorded call metrics, oldest
// first. Exposed for the operator-facing maintenance surface.
func (g *Gateway) MetricsSnapshot() []observe.CallMetric {
	return g.recorder.Snapshot()
}

func (g *Gateway) finish(ctx context.Context, span trace.Span, meta observe.OpMeta, spec command.Spec, start time.Time, cacheHit bool, err error) {
	duration := time.Since(start)

	g.tracer.EndSpan(span, err)
	g.metrics.RecordCall(ctx, meta, duration, cacheHit, err)
	g.recorder.Record(observe.CallMetric{
		Operation: spec.Operation,
		Duration:  duration,
		Timestamp: start,
		Success:   err == nil,
		CacheHit:  cacheHit,
	})

	logger := g.logger.WithOp(meta)
	fields := []observe.Field{
		{Key: "command", Value: spec.String()},
		{Key: "duration_ms", Value: float64(duration.Milliseconds())},
		{Key: "cache_hit", Value: cacheHit},
	}
	if err != nil {
		fields = append(fields,
			observe.Field{Key: "error", Value: err.Error()},
			observe.Field{Key: "kind", Value: Classify(err).String()},
		)
		logger.Error(ctx, "command failed", fields...)
		return
	}
	logger.Info(ctx, "command completed", fields...)
}
