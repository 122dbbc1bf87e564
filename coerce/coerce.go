package coerce

import (
	"context"
	"iter"
	"maps"
	"slices"

	"github.com/jonwraymond/funcops/callable"
)

// Returning returns a decorator passing the wrapped function's result
// through conv.
func Returning[In, Out, R any](conv func(Out) (R, error)) func(callable.Func[In, Out]) callable.Func[In, R] {
	return func(fn callable.Func[In, Out]) callable.Func[In, R] {
		return func(ctx context.Context, in In) (R, error) {
			out, err := fn(ctx, in)
			if err != nil {
				var zero R
				return zero, err
			}
			return conv(out)
		}
	}
}

// To is Returning for converters that cannot fail.
func To[In, Out, R any](conv func(Out) R) func(callable.Func[In, Out]) callable.Func[In, R] {
	return Returning[In](func(out Out) (R, error) {
		return conv(out), nil
	})
}

// Slice collects seq into a new slice.
func Slice[T any](seq iter.Seq[T]) []T {
	return slices.Collect(seq)
}

// Set collects seq into a new set.
func Set[T comparable](seq iter.Seq[T]) map[T]struct{} {
	set := make(map[T]struct{})
	for v := range seq {
		set[v] = struct{}{}
	}
	return set
}

// Map collects seq into a new map.
func Map[K comparable, V any](seq iter.Seq2[K, V]) map[K]V {
	return maps.Collect(seq)
}
