package cache_test

import (
	"context"
	"fmt"
	"time"

	"github.com/zetaops/zetagate/cache"
	"github.com/zetaops/zetagate/command"
)

func ExampleNewMemoryCache() {
	c := cache.NewMemoryCache(cache.DefaultPolicy())
	defer c.Close()

	ctx := context.Background()

	// Store a command result
	_ = c.Store(ctx, "chains list", command.Result{Stdout: "zetachain\nethereum"}, 5*time.Minute)

	// Retrieve it
	result, ok := c.Lookup(ctx, "chains list")
	if ok {
		fmt.Println("Stdout:", result.Stdout)
	}
	// Output:
	// Stdout: zetachain
	// ethereum
}

func ExampleMemoryCache_Lookup() {
	c := cache.NewMemoryCache(cache.DefaultPolicy())
	defer c.Close()
	ctx := context.Background()

	// Miss - key doesn't exist
	_, ok := c.Lookup(ctx, "missing")
	fmt.Println("Missing key found:", ok)

	// Store and look up
	_ = c.Store(ctx, "query balances addr1", command.Result{Stdout: "100azeta"}, time.Minute)
	result, ok := c.Lookup(ctx, "query balances addr1")
	fmt.Println("Existing key found:", ok)
	fmt.Println("Stdout:", result.Stdout)
	// Output:
	// Missing key found: false
	// Existing key found: true
	// Stdout: 100azeta
}

func ExamplePolicy_EffectiveTTL() {
	policy := cache.Policy{DefaultTTL: 30 * time.Second, MaxTTL: 10 * time.Minute}

	// Zero falls back to the default
	fmt.Println(policy.EffectiveTTL(0))

	// Oversized TTLs clamp to the maximum
	fmt.Println(policy.EffectiveTTL(time.Hour))
	// Output:
	// 30s
	// 10m0s
}
