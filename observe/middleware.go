package observe

import (
	"context"
	"time"

	"github.com/jonwraymond/funcops/callable"
	"github.com/jonwraymond/funcops/timing"
)

// ExecuteFunc is the dynamic call shape Wrap instruments.
type ExecuteFunc func(ctx context.Context, meta FuncMeta, input any) (any, error)

// Middleware wraps calls with tracing, metrics and logging.
//
// Contract:
//   - Concurrency: wrapped functions are safe for concurrent use when the
//     target is.
//   - Context: the span is carried in the context passed to the target.
//   - Errors: target errors are recorded and propagated unchanged.
//   - Ownership: inputs and outputs pass through without modification.
type Middleware struct {
	tracer  Tracer
	metrics Metrics
	logger  Logger
}

// NewMiddleware creates a new Middleware. Nil components are replaced by
// their no-op versions.
func NewMiddleware(tracer Tracer, metrics Metrics, logger Logger) *Middleware {
	if tracer == nil {
		tracer = NopTracer()
	}
	if metrics == nil {
		metrics = NopMetrics()
	}
	if logger == nil {
		logger = NopLogger()
	}
	return &Middleware{
		tracer:  tracer,
		metrics: metrics,
		logger:  logger,
	}
}

// MiddlewareFromObserver creates a Middleware from an Observer.
func MiddlewareFromObserver(obs Observer) (*Middleware, error) {
	if obs == nil {
		return nil, ErrNilObserver
	}

	metrics, err := NewMetrics(obs.Meter())
	if err != nil {
		return nil, err
	}

	return NewMiddleware(NewTracer(obs.Tracer()), metrics, obs.Logger()), nil
}

// Decorate returns a decorator instrumenting calls with m. When meta has no
// name it is derived from the decorated function with MetaOf.
func Decorate[In, Out any](m *Middleware, meta FuncMeta) callable.Decorator[In, Out] {
	return func(fn callable.Func[In, Out]) callable.Func[In, Out] {
		meta := meta
		if meta.Name == "" {
			derived := MetaOf(fn)
			meta.Package, meta.Name = derived.Package, derived.Name
		}
		return func(ctx context.Context, in In) (Out, error) {
			ctx, span := m.tracer.StartSpan(ctx, meta)
			out, d, err := timing.Measure(func() (Out, error) {
				return fn(ctx, in)
			})
			m.tracer.EndSpan(span, err)
			m.record(ctx, meta, d, err)
			return out, err
		}
	}
}

// Wrap instruments fn. Calls with an unnamed FuncMeta fail with
// ErrMissingFuncName without reaching fn.
func (m *Middleware) Wrap(fn ExecuteFunc) ExecuteFunc {
	return func(ctx context.Context, meta FuncMeta, input any) (any, error) {
		if err := meta.Validate(); err != nil {
			return nil, err
		}
		call := func(ctx context.Context, in any) (any, error) {
			return fn(ctx, meta, in)
		}
		return Decorate[any, any](m, meta)(call)(ctx, input)
	}
}

func (m *Middleware) record(ctx context.Context, meta FuncMeta, d time.Duration, err error) {
	m.metrics.RecordCall(ctx, meta, d, err)

	logger := m.logger.WithFunc(meta)
	fields := []Field{
		{Key: "duration_ms", Value: float64(d) / float64(time.Millisecond)},
	}
	if err != nil {
		fields = append(fields, Field{Key: "error", Value: err.Error()})
		logger.Error(ctx, "call failed", fields...)
		return
	}
	logger.Info(ctx, "call completed", fields...)
}

// TimingReporter adapts logger into a timing.WithReporter callback that logs
// every report at info level, or error level when the call failed.
func TimingReporter(logger Logger) func(timing.Report) {
	if logger == nil {
		logger = NopLogger()
	}
	return func(r timing.Report) {
		fields := []Field{
			{Key: "func", Value: r.Name},
			{Key: "duration_ms", Value: float64(r.Elapsed) / float64(time.Millisecond)},
		}
		switch {
		case r.Panicked:
			fields = append(fields, Field{Key: "panicked", Value: true})
			logger.Error(context.Background(), r.String(), fields...)
		case r.Err != nil:
			fields = append(fields, Field{Key: "error", Value: r.Err.Error()})
			logger.Error(context.Background(), r.String(), fields...)
		default:
			logger.Info(context.Background(), r.String(), fields...)
		}
	}
}
