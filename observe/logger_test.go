package observe

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"
)

// safeBuffer is a bytes.Buffer guarded for concurrent writers.
type safeBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *safeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *safeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func decodeLines(t *testing.T, out string) []map[string]any {
	t.Helper()
	var entries []map[string]any
	for line := range strings.Lines(out) {
		var entry map[string]any
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("failed to parse log line as JSON: %v\nLine: %s", err, line)
		}
		entries = append(entries, entry)
	}
	return entries
}

func TestLogger_IncludesFuncFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter("info", &buf).WithFunc(FuncMeta{
		Package: "store",
		Name:    "Get",
		Version: "1.2.0",
		Tags:    []string{"read"},
	})

	logger.Info(context.Background(), "test message")

	entries := decodeLines(t, buf.String())
	if len(entries) != 1 {
		t.Fatalf("got %d lines, want 1", len(entries))
	}
	want := map[string]any{
		"func.id":      "store.Get",
		"func.name":    "Get",
		"func.package": "store",
		"func.version": "1.2.0",
		"msg":          "test message",
		"level":        "info",
	}
	for k, v := range want {
		if entries[0][k] != v {
			t.Errorf("%s = %v, want %v", k, entries[0][k], v)
		}
	}
	if _, ok := entries[0]["timestamp"]; !ok {
		t.Error("timestamp missing")
	}
}

func TestLogger_WithFuncDoesNotLeak(t *testing.T) {
	var buf bytes.Buffer
	base := NewLoggerWithWriter("info", &buf)
	_ = base.WithFunc(FuncMeta{Name: "Get"})

	base.Info(context.Background(), "plain")

	entry := decodeLines(t, buf.String())[0]
	if _, ok := entry["func.name"]; ok {
		t.Error("WithFunc mutated the parent logger")
	}
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		level string
		log   func(Logger)
		want  string
	}{
		{"debug", func(l Logger) { l.Debug(context.Background(), "m") }, "debug"},
		{"info", func(l Logger) { l.Info(context.Background(), "m") }, "info"},
		{"info", func(l Logger) { l.Warn(context.Background(), "m") }, "warn"},
		{"info", func(l Logger) { l.Error(context.Background(), "m") }, "error"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(NewLoggerWithWriter(tt.level, &buf))
			entries := decodeLines(t, buf.String())
			if len(entries) != 1 || entries[0]["level"] != tt.want {
				t.Errorf("entries = %v, want one %s line", entries, tt.want)
			}
		})
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter("warn", &buf)

	logger.Debug(context.Background(), "dropped")
	logger.Info(context.Background(), "dropped")
	logger.Warn(context.Background(), "kept")
	logger.Error(context.Background(), "kept")

	if n := len(decodeLines(t, buf.String())); n != 2 {
		t.Errorf("got %d lines, want 2", n)
	}
}

func TestLogger_Redaction(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter("info", &buf)

	logger.Info(context.Background(), "call",
		Field{Key: "args", Value: []any{"hunter2"}},
		Field{Key: "token", Value: "abc"},
		Field{Key: "duration_ms", Value: 1.5},
	)

	out := buf.String()
	if strings.Contains(out, "hunter2") || strings.Contains(out, "abc") {
		t.Errorf("sensitive value leaked: %s", out)
	}
	entry := decodeLines(t, out)[0]
	if entry["args"] != "[REDACTED]" || entry["token"] != "[REDACTED]" {
		t.Errorf("redacted fields = %v, %v", entry["args"], entry["token"])
	}
	if entry["duration_ms"] != 1.5 {
		t.Errorf("duration_ms = %v, want 1.5", entry["duration_ms"])
	}
}

func TestLogger_ConcurrentWritesStayWhole(t *testing.T) {
	buf := new(safeBuffer)
	logger := NewLoggerWithWriter("info", buf)
	scoped := logger.WithFunc(FuncMeta{Name: "Get"})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				logger.Info(context.Background(), "a")
			} else {
				scoped.Info(context.Background(), "b")
			}
		}(i)
	}
	wg.Wait()

	if n := len(decodeLines(t, buf.String())); n != 20 {
		t.Errorf("got %d lines, want 20", n)
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"", LevelInfo},
		{"verbose", LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLogLevel(tt.in); got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if LogLevel(42).String() != "info" {
		t.Errorf("LogLevel(42).String() = %q, want info", LogLevel(42).String())
	}
}
