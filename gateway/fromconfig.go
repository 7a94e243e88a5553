package gateway

import (
	"github.com/zetaops/zetagate/cache"
	"github.com/zetaops/zetagate/config"
	"github.com/zetaops/zetagate/invoke"
	"github.com/zetaops/zetagate/observe"
	"github.com/zetaops/zetagate/resolve"
)

// NewFromConfig builds a Gateway from a loaded configuration file,
// translating each section into its component's own settings. The
// Observer stays caller-supplied: telemetry provider lifecycles belong
// to the embedding process, not the gateway.
func NewFromConfig(cfg config.Config, obs observe.Observer) (*Gateway, error) {
	mem := cache.NewMemoryCache(cache.Policy{
		DefaultTTL:    cfg.Cache.DefaultTTL,
		MaxTTL:        cfg.Cache.MaxTTL,
		MaxEntries:    cfg.Cache.MaxEntries,
		SweepInterval: cfg.Cache.SweepInterval,
	})

	g, err := New(Config{
		Resolver: resolve.NewResolver(resolve.Config{
			Program:  cfg.CLI.Program,
			LocalDir: cfg.CLI.LocalDir,
		}),
		Runner: invoke.NewInvoker(invoke.Options{
			Timeout:        cfg.CLI.Timeout,
			MaxOutputBytes: cfg.CLI.MaxOutputBytes,
		}),
		Cache:    mem,
		Observer: obs,
	})
	if err != nil {
		mem.Close()
		return nil, err
	}
	g.ownedCache = mem
	return g, nil
}
