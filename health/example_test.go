package health_test

import (
	"context"
	"fmt"

	"github.com/zetaops/zetagate/health"
)

func ExampleAggregator() {
	agg := health.NewAggregator()
	agg.Register(health.NewCheckerFunc("cli", func(context.Context) health.Result {
		return health.Healthy("cli binary available")
	}))
	agg.Register(health.NewCheckerFunc("cache", func(context.Context) health.Result {
		return health.Degraded("cache over soft cap: 300 > 256")
	}))

	results := agg.CheckAll(context.Background())
	fmt.Println("overall:", health.OverallStatus(results))
	fmt.Println("cli:", results["cli"].Status)
	fmt.Println("cache:", results["cache"].Status)
	// Output:
	// overall: degraded
	// cli: healthy
	// cache: degraded
}
