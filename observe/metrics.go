package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric instrument names.
const (
	MetricCallTotal    = "func.call.total"
	MetricCallErrors   = "func.call.errors"
	MetricCallDuration = "func.call.duration_ms"
)

// Metrics records call metrics for wrapped functions.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Context: must return quickly.
// - Errors: implementations must not panic.
type Metrics interface {
	// RecordCall records one call with its duration and error status.
	RecordCall(ctx context.Context, meta FuncMeta, duration time.Duration, err error)
}

type metricsImpl struct {
	totalCount   metric.Int64Counter
	errorCount   metric.Int64Counter
	durationHist metric.Float64Histogram
}

// NewMetrics creates the func.call.* instruments on meter.
func NewMetrics(meter metric.Meter) (Metrics, error) {
	totalCount, err := meter.Int64Counter(
		MetricCallTotal,
		metric.WithDescription("Total number of calls"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, err
	}

	errorCount, err := meter.Int64Counter(
		MetricCallErrors,
		metric.WithDescription("Total number of calls that returned an error"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	durationHist, err := meter.Float64Histogram(
		MetricCallDuration,
		metric.WithDescription("Call duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &metricsImpl{
		totalCount:   totalCount,
		errorCount:   errorCount,
		durationHist: durationHist,
	}, nil
}

func (m *metricsImpl) RecordCall(ctx context.Context, meta FuncMeta, duration time.Duration, err error) {
	attrs := []attribute.KeyValue{
		attribute.String("func.id", meta.FuncID()),
		attribute.String("func.name", meta.Name),
	}
	if meta.Package != "" {
		attrs = append(attrs, attribute.String("func.package", meta.Package))
	}
	opt := metric.WithAttributes(attrs...)

	m.totalCount.Add(ctx, 1, opt)
	if err != nil {
		m.errorCount.Add(ctx, 1, opt)
	}
	m.durationHist.Record(ctx, float64(duration)/float64(time.Millisecond), opt)
}

// NopMetrics returns a Metrics that records nothing.
func NopMetrics() Metrics {
	return noopMetrics{}
}

type noopMetrics struct{}

func (noopMetrics) RecordCall(context.Context, FuncMeta, time.Duration, error) {}
