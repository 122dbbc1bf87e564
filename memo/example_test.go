package memo_test

import (
	"context"
	"fmt"

	"github.com/jonwraymond/funcops/memo"
)

type Report struct {
	Cache *memo.Cache
	Title string
}

var render = memo.Method[*Report, string, string]("")(
	func(r *Report, _ context.Context, format string) (string, error) {
		fmt.Println("rendering", format)
		return r.Title + "." + format, nil
	})

func ExampleMethod() {
	r := &Report{Cache: memo.NewCache(), Title: "q3"}
	ctx := context.Background()

	a, _ := render(r, ctx, "pdf")
	b, _ := render(r, ctx, "html")

	fmt.Println(a, b)
	// Output:
	// rendering pdf
	// q3.pdf q3.pdf
}
