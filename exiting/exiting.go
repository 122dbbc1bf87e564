package exiting

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"reflect"

	"github.com/jonwraymond/funcops/callable"
	"github.com/jonwraymond/funcops/observe"
)

// ExitCoder is implemented by values and errors carrying their own status.
type ExitCoder interface {
	ExitCode() int
}

// Error is an error with an explicit exit status.
type Error struct {
	Code int
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

// ExitCode returns the exit status.
func (e *Error) ExitCode() int { return e.Code }

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error { return e.Err }

// WithCode wraps err so that it exits with code.
func WithCode(code int, err error) error {
	return &Error{Code: code, Err: err}
}

type options struct {
	exit   func(int)
	stderr io.Writer
	logger observe.Logger
}

// Option configures Wrap.
type Option func(*options)

// WithExit sets the function terminating the process.
// Default: os.Exit
func WithExit(exit func(code int)) Option {
	return func(o *options) {
		o.exit = exit
	}
}

// WithStderr sets where status messages are written.
// Default: os.Stderr
func WithStderr(w io.Writer) Option {
	return func(o *options) {
		o.stderr = w
	}
}

// WithLogger sets a logger receiving the final status at debug level.
func WithLogger(logger observe.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Wrap returns a function that calls fn and exits with the status derived
// from its result.
func Wrap[In any](fn callable.Func[In, any], opts ...Option) func(ctx context.Context, in In) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	// Apply defaults
	if o.exit == nil {
		o.exit = os.Exit
	}
	if o.stderr == nil {
		o.stderr = os.Stderr
	}
	if o.logger == nil {
		o.logger = observe.NopLogger()
	}

	name := callable.Name(fn)

	return func(ctx context.Context, in In) {
		out, err := fn(ctx, in)

		var code int
		var msg string
		if err != nil {
			code, msg = Status(err)
		} else {
			code, msg = Status(out)
		}

		if msg != "" {
			_, _ = fmt.Fprintln(o.stderr, msg)
		}
		o.logger.Debug(ctx, "exiting",
			observe.Field{Key: "func", Value: name},
			observe.Field{Key: "status", Value: code},
		)
		o.exit(code)
	}
}

// Main calls fn with ctx and exits with the status derived from its result.
func Main(ctx context.Context, fn func(ctx context.Context) (any, error), opts ...Option) {
	Wrap(func(ctx context.Context, _ struct{}) (any, error) {
		return fn(ctx)
	}, opts...)(ctx, struct{}{})
}

// Status maps a result to an exit status and an optional message for
// stderr.
func Status(v any) (code int, msg string) {
	if v == nil {
		return 0, ""
	}

	switch val := v.(type) {
	case error:
		var coder ExitCoder
		if errors.As(val, &coder) {
			return coder.ExitCode(), val.Error()
		}
		return 1, val.Error()
	case ExitCoder:
		return val.ExitCode(), ""
	case bool:
		if val {
			return 1, ""
		}
		return 0, ""
	case string:
		return 1, val
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return clamp(rv.Int()), ""
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt32 {
			return math.MaxInt32, ""
		}
		return int(u), ""
	}

	return 1, fmt.Sprint(v)
}

func clamp(n int64) int {
	switch {
	case n > math.MaxInt32:
		return math.MaxInt32
	case n < math.MinInt32:
		return math.MinInt32
	default:
		return int(n)
	}
}
