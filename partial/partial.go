package partial

import (
	"context"
	"time"

	"github.com/jonwraymond/funcops/callable"
)

// Callback produces an argument value. It is called with no arguments on
// every invocation of the wrapper.
type Callback func() any

type keyword struct {
	name string
	cb   Callback
}

type options struct {
	positional []Callback
	keywords   []keyword
	clock      func() time.Time
}

// Option configures a partial wrapper.
type Option func(*options)

// WithCallbacks appends positional callbacks. Their results are passed in
// the order given, before the caller's positional arguments.
func WithCallbacks(cbs ...Callback) Option {
	return func(o *options) {
		o.positional = append(o.positional, cbs...)
	}
}

// WithKeyword adds a keyword callback. A keyword supplied by the caller under
// the same name takes precedence over the callback's result.
func WithKeyword(name string, cb Callback) Option {
	return func(o *options) {
		o.keywords = append(o.keywords, keyword{name: name, cb: cb})
	}
}

// WithClock sets the clock used by DateTimeNow.
// Default: time.Now
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// New returns fn with callback-derived arguments injected on every call.
//
// The caller's Args are not modified.
func New[Out any](fn callable.ArgsFunc[Out], opts ...Option) callable.ArgsFunc[Out] {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	// Callbacks are fixed at wrap time
	positional := append([]Callback(nil), o.positional...)
	keywords := append([]keyword(nil), o.keywords...)

	return func(ctx context.Context, args callable.Args) (Out, error) {
		values := make([]any, 0, len(positional)+len(args.Positional))
		for _, cb := range positional {
			values = append(values, cb())
		}
		values = append(values, args.Positional...)

		var kw map[string]any
		if len(keywords) > 0 || len(args.Keywords) > 0 {
			kw = make(map[string]any, len(keywords)+len(args.Keywords))
			for _, k := range keywords {
				kw[k.name] = k.cb()
			}
			for name, v := range args.Keywords {
				kw[name] = v
			}
		}

		return fn(ctx, callable.Args{Positional: values, Keywords: kw})
	}
}

// DateTimeNow passes the current time as the first positional argument.
func DateTimeNow[Out any](fn callable.ArgsFunc[Out], opts ...Option) callable.ArgsFunc[Out] {
	o := &options{clock: time.Now}
	for _, opt := range opts {
		opt(o)
	}
	clock := o.clock
	now := func() any { return clock() }
	return New(fn, append([]Option{WithCallbacks(now)}, opts...)...)
}

// Prepend binds the first argument of fn to the result of cb, evaluated on
// every call.
func Prepend[A, In, Out any](fn func(context.Context, A, In) (Out, error), cb func() A) callable.Func[In, Out] {
	return func(ctx context.Context, in In) (Out, error) {
		return fn(ctx, cb(), in)
	}
}

// Now binds the first argument of fn to time.Now().
func Now[In, Out any](fn func(context.Context, time.Time, In) (Out, error)) callable.Func[In, Out] {
	return Prepend(fn, time.Now)
}
