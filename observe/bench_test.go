package observe

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func BenchmarkLogger_Info(b *testing.B) {
	logger := NewLoggerWithWriter("info", io.Discard)
	ctx := context.Background()

	b.ReportAllocs()
	for b.Loop() {
		logger.Info(ctx, "call completed", Field{Key: "duration_ms", Value: 1.5})
	}
}

func BenchmarkLogger_WithFunc(b *testing.B) {
	logger := NewLoggerWithWriter("info", io.Discard)
	meta := FuncMeta{Package: "store", Name: "Get", Version: "1.0.0"}

	b.ReportAllocs()
	for b.Loop() {
		_ = logger.WithFunc(meta)
	}
}

func BenchmarkLogger_LevelFiltering(b *testing.B) {
	logger := NewLoggerWithWriter("error", io.Discard)
	ctx := context.Background()

	b.ReportAllocs()
	for b.Loop() {
		logger.Debug(ctx, "dropped")
	}
}

func BenchmarkZapLogger_Info(b *testing.B) {
	logger := NewZapLogger(nil)
	ctx := context.Background()

	b.ReportAllocs()
	for b.Loop() {
		logger.Info(ctx, "call completed", Field{Key: "duration_ms", Value: 1.5})
	}
}

func BenchmarkFuncMeta_SpanName(b *testing.B) {
	meta := FuncMeta{Package: "store", Name: "Get"}

	b.ReportAllocs()
	for b.Loop() {
		_ = meta.SpanName()
	}
}

func BenchmarkTracer_StartEndSpan(b *testing.B) {
	tp := sdktrace.NewTracerProvider()
	tr := NewTracer(tp.Tracer("bench"))
	ctx := context.Background()
	meta := FuncMeta{Name: "Get"}

	b.ReportAllocs()
	for b.Loop() {
		_, span := tr.StartSpan(ctx, meta)
		tr.EndSpan(span, nil)
	}
}

func BenchmarkMetrics_RecordCall(b *testing.B) {
	m, _ := newRecordingMetrics(b)
	ctx := context.Background()
	meta := FuncMeta{Name: "Get"}
	err := errors.New("boom")

	b.ReportAllocs()
	for b.Loop() {
		m.RecordCall(ctx, meta, time.Millisecond, err)
	}
}

func BenchmarkDecorate(b *testing.B) {
	mw := NewMiddleware(nil, nil, nil)
	fn := Decorate[int, string](mw, FuncMeta{Name: "Lookup"})(lookupUser)
	ctx := context.Background()

	b.ReportAllocs()
	for b.Loop() {
		_, _ = fn(ctx, 1)
	}
}

func BenchmarkDecorate_Parallel(b *testing.B) {
	mw := NewMiddleware(nil, nil, NewLoggerWithWriter("info", io.Discard))
	fn := Decorate[int, string](mw, FuncMeta{Name: "Lookup"})(lookupUser)
	ctx := context.Background()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, _ = fn(ctx, 1)
		}
	})
}

func BenchmarkConfig_Validate(b *testing.B) {
	cfg := Config{
		ServiceName: "bench",
		Tracing:     TracingConfig{Enabled: true, Exporter: "otlp", SamplePct: 0.1},
		Metrics:     MetricsConfig{Enabled: true, Exporter: "prometheus"},
		Logging:     LoggingConfig{Enabled: true, Level: "info"},
	}

	b.ReportAllocs()
	for b.Loop() {
		_ = cfg.Validate()
	}
}
