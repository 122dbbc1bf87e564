package callable

import "context"

// Func is the signature wrapped by every decorator in this module.
//
// Errors returned by a Func are propagated unchanged by all decorators.
type Func[In, Out any] func(ctx context.Context, in In) (Out, error)

// Call invokes f. It exists so Func values satisfy interfaces that expect a
// Call method.
func (f Func[In, Out]) Call(ctx context.Context, in In) (Out, error) {
	return f(ctx, in)
}

// Decorator wraps a Func and returns a Func with the same signature.
type Decorator[In, Out any] func(Func[In, Out]) Func[In, Out]

// Chain composes decorators into one.
//
// The first decorator is the outermost: Chain(a, b)(fn) behaves like
// a(b(fn)). Nil decorators are skipped.
func Chain[In, Out any](decorators ...Decorator[In, Out]) Decorator[In, Out] {
	return func(fn Func[In, Out]) Func[In, Out] {
		// Build the chain from inside out
		wrapped := fn
		for i := len(decorators) - 1; i >= 0; i-- {
			if decorators[i] == nil {
				continue
			}
			wrapped = decorators[i](wrapped)
		}
		return wrapped
	}
}

// Lift adapts a context-free function into a Func.
func Lift[In, Out any](fn func(In) (Out, error)) Func[In, Out] {
	return func(_ context.Context, in In) (Out, error) {
		return fn(in)
	}
}
