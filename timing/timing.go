package timing

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jonwraymond/funcops/callable"
)

// Report describes one timed call.
type Report struct {
	// Name identifies the timed function.
	Name string

	// Start is when the call began.
	Start time.Time

	// Elapsed is the monotonic duration of the call.
	Elapsed time.Duration

	// Err is the error returned by the call, if any.
	Err error

	// Panicked is true when the call ended by panic.
	Panicked bool
}

// String formats the report as a single line without a trailing newline.
func (r Report) String() string {
	s := fmt.Sprintf("%s took %s", r.Name, r.Elapsed)
	switch {
	case r.Panicked:
		s += " (panicked)"
	case r.Err != nil:
		s += fmt.Sprintf(" (error: %v)", r.Err)
	}
	return s
}

// Config configures Timeit.
type Config struct {
	// Sink receives one line per call.
	// Default: os.Stderr
	Sink io.Writer

	// Flush forces the sink to flush after each line when it provides a
	// Flush() error or Sync() error method.
	// Default: false
	Flush bool

	// Name overrides the reported function name.
	// Default: callable.Name of the wrapped function
	Name string

	// Reporter, when set, receives every report in addition to the sink.
	Reporter func(Report)

	// Clock returns the current time. It must return readings that carry the
	// monotonic clock for durations to be immune to wall-clock changes.
	// Default: time.Now
	Clock func() time.Time
}

// Option configures Timeit.
type Option func(*Config)

// WithSink sets the writer receiving report lines.
func WithSink(w io.Writer) Option {
	return func(c *Config) {
		c.Sink = w
	}
}

// WithFlush enables flushing the sink after every line.
func WithFlush(flush bool) Option {
	return func(c *Config) {
		c.Flush = flush
	}
}

// WithName sets the reported name.
func WithName(name string) Option {
	return func(c *Config) {
		c.Name = name
	}
}

// WithReporter sets a callback receiving every report.
func WithReporter(fn func(Report)) Option {
	return func(c *Config) {
		c.Reporter = fn
	}
}

// WithClock sets the clock used for measurements.
func WithClock(clock func() time.Time) Option {
	return func(c *Config) {
		c.Clock = clock
	}
}

// Timeit returns a decorator reporting the duration of every call.
func Timeit[In, Out any](opts ...Option) callable.Decorator[In, Out] {
	cfg := Config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	// Apply defaults
	if cfg.Sink == nil {
		cfg.Sink = os.Stderr
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}

	return func(fn callable.Func[In, Out]) callable.Func[In, Out] {
		name := cfg.Name
		if name == "" {
			name = callable.Name(fn)
		}

		return func(ctx context.Context, in In) (out Out, err error) {
			start := cfg.Clock()
			defer func() {
				p := recover()
				r := Report{
					Name:     name,
					Start:    start,
					Elapsed:  cfg.Clock().Sub(start),
					Err:      err,
					Panicked: p != nil,
				}
				emit(cfg, r)
				if p != nil {
					panic(p)
				}
			}()

			return fn(ctx, in)
		}
	}
}

// Measure runs fn and returns its result together with its duration.
func Measure[Out any](fn func() (Out, error)) (Out, time.Duration, error) {
	start := time.Now()
	out, err := fn()
	return out, time.Since(start), err
}

func emit(cfg Config, r Report) {
	// Reporting is best-effort: write failures never reach the caller
	_, _ = io.WriteString(cfg.Sink, r.String()+"\n")
	if cfg.Flush {
		flush(cfg.Sink)
	}
	if cfg.Reporter != nil {
		cfg.Reporter(r)
	}
}

type flusher interface {
	Flush() error
}

type syncer interface {
	Sync() error
}

func flush(w io.Writer) {
	switch f := w.(type) {
	case flusher:
		_ = f.Flush()
	case syncer:
		_ = f.Sync()
	}
}
