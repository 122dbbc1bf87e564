package limit

import (
	"context"

	"github.com/jonwraymond/funcops/callable"
)

// Limited is a function bound to its own Limiter.
type Limited[In, Out any] struct {
	limiter *Limiter
	fn      callable.Func[In, Out]
}

// Wrap binds fn to a fresh limiter allowing limit executions.
func Wrap[In, Out any](limit int, fn callable.Func[In, Out]) *Limited[In, Out] {
	return &Limited[In, Out]{
		limiter: NewLimiter(limit),
		fn:      fn,
	}
}

// Call invokes the target if an execution slot is available.
//
// The boolean reports whether the target ran. When it is false the zero
// value and a nil error are returned; this is the no-result sentinel, not a
// failure. Errors from the target are returned unchanged.
func (l *Limited[In, Out]) Call(ctx context.Context, in In) (Out, bool, error) {
	if !l.limiter.Acquire() {
		var zero Out
		return zero, false, nil
	}
	out, err := l.fn(ctx, in)
	return out, true, err
}

// Func returns a callable.Func view of l. Calls past the limit return the
// zero value and a nil error.
func (l *Limited[In, Out]) Func() callable.Func[In, Out] {
	return func(ctx context.Context, in In) (Out, error) {
		out, _, err := l.Call(ctx, in)
		return out, err
	}
}

// Limiter returns the limiter guarding l.
func (l *Limited[In, Out]) Limiter() *Limiter {
	return l.limiter
}

// Executions returns a decorator limiting the wrapped function to limit
// executions. Every application of the decorator gets its own counter.
func Executions[In, Out any](limit int) callable.Decorator[In, Out] {
	return func(fn callable.Func[In, Out]) callable.Func[In, Out] {
		return Wrap(limit, fn).Func()
	}
}

// Once is Executions(1).
func Once[In, Out any]() callable.Decorator[In, Out] {
	return Executions[In, Out](1)
}
