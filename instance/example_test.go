package instance_test

import (
	"fmt"

	"github.com/jonwraymond/funcops/instance"
)

func ExampleOf() {
	items := []any{"a", 1, "b", 2.0}

	fmt.Println(instance.Filter(items, instance.Of(instance.Type[string]())))
	fmt.Println(instance.Filter(items, instance.Of(instance.Type[int](), instance.Type[float64]())))
	// Output:
	// [a b]
	// [1 2]
}
