package partial_test

import (
	"context"
	"fmt"

	"github.com/jonwraymond/funcops/callable"
	"github.com/jonwraymond/funcops/partial"
)

func ExampleNew() {
	describe := func(_ context.Context, args callable.Args) (string, error) {
		return fmt.Sprintf("%v %v", args.Positional, args.Keywords["unit"]), nil
	}

	fn := partial.New(describe,
		partial.WithCallbacks(func() any { return "sensor-1" }),
		partial.WithKeyword("unit", func() any { return "celsius" }),
	)

	ctx := context.Background()
	a, _ := fn(ctx, callable.NewArgs(21.5))
	b, _ := fn(ctx, callable.NewArgs(70.7).With("unit", "fahrenheit"))

	fmt.Println(a)
	fmt.Println(b)
	// Output:
	// [sensor-1 21.5] celsius
	// [sensor-1 70.7] fahrenheit
}
