package observe

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	zapobserver "go.uber.org/zap/zaptest/observer"
)

func newObservedZap(level zapcore.Level) (Logger, *zapobserver.ObservedLogs) {
	core, logs := zapobserver.New(level)
	return NewZapLogger(zap.New(core)), logs
}

func TestZapLogger_FuncFields(t *testing.T) {
	logger, logs := newObservedZap(zap.DebugLevel)

	logger.WithFunc(FuncMeta{Package: "store", Name: "Get"}).
		Info(context.Background(), "call completed", Field{Key: "duration_ms", Value: 2.0})

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["func.id"] != "store.Get" {
		t.Errorf("func.id = %v, want store.Get", fields["func.id"])
	}
	if fields["func.package"] != "store" {
		t.Errorf("func.package = %v, want store", fields["func.package"])
	}
	if fields["duration_ms"] != 2.0 {
		t.Errorf("duration_ms = %v, want 2", fields["duration_ms"])
	}
}

func TestZapLogger_Levels(t *testing.T) {
	logger, logs := newObservedZap(zap.InfoLevel)
	ctx := context.Background()

	logger.Debug(ctx, "dropped")
	logger.Info(ctx, "info")
	logger.Warn(ctx, "warn")
	logger.Error(ctx, "error")

	entries := logs.All()
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
	want := []zapcore.Level{zap.InfoLevel, zap.WarnLevel, zap.ErrorLevel}
	for i, e := range entries {
		if e.Level != want[i] {
			t.Errorf("entry %d level = %v, want %v", i, e.Level, want[i])
		}
	}
}

func TestZapLogger_Redaction(t *testing.T) {
	logger, logs := newObservedZap(zap.InfoLevel)

	logger.Info(context.Background(), "call", Field{Key: "password", Value: "hunter2"})

	if got := logs.All()[0].ContextMap()["password"]; got != "[REDACTED]" {
		t.Errorf("password = %v, want [REDACTED]", got)
	}
}

func TestNewZap(t *testing.T) {
	for _, level := range []string{"", "debug", "info", "warn", "error"} {
		z, err := newZap(level)
		if err != nil {
			t.Errorf("newZap(%q) error = %v", level, err)
			continue
		}
		_ = z.Sync()
	}
	if _, err := newZap("loud"); err == nil {
		t.Error("newZap(loud) expected error")
	}
}
