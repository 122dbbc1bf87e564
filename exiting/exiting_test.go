package exiting

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math"
	"testing"
)

type coded int

func (c coded) ExitCode() int { return int(c) }

func TestStatus(t *testing.T) {
	tests := []struct {
		name     string
		v        any
		wantCode int
		wantMsg  string
	}{
		{"nil", nil, 0, ""},
		{"zero", 0, 0, ""},
		{"false", false, 0, ""},
		{"true", true, 1, ""},
		{"int", 3, 3, ""},
		{"int8", int8(-1), -1, ""},
		{"uint16", uint16(2), 2, ""},
		{"int64 overflow", int64(math.MaxInt64), math.MaxInt32, ""},
		{"uint64 overflow", uint64(math.MaxUint64), math.MaxInt32, ""},
		{"exit coder", coded(7), 7, ""},
		{"string", "usage: tool <file>", 1, "usage: tool <file>"},
		{"error", errors.New("no such file"), 1, "no such file"},
		{"coded error", WithCode(4, errors.New("bad input")), 4, "bad input"},
		{"wrapped coded error", fmt.Errorf("run: %w", WithCode(5, nil)), 5, "run: exit status 5"},
		{"other", 2.5, 1, "2.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, msg := Status(tt.v)
			if code != tt.wantCode || msg != tt.wantMsg {
				t.Errorf("Status(%v) = (%d, %q), want (%d, %q)", tt.v, code, msg, tt.wantCode, tt.wantMsg)
			}
		})
	}
}

func TestWrap_ExitsWithResult(t *testing.T) {
	tests := []struct {
		name     string
		out      any
		err      error
		wantCode int
		wantErr  string
	}{
		{"success", nil, nil, 0, ""},
		{"status", 2, nil, 2, ""},
		{"message", "bye", nil, 1, "bye\n"},
		{"error wins over result", 0, errors.New("failed"), 1, "failed\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			codes := []int{}

			fn := Wrap(func(context.Context, string) (any, error) {
				return tt.out, tt.err
			}, WithExit(func(code int) { codes = append(codes, code) }), WithStderr(&stderr))

			fn(context.Background(), "input")

			if len(codes) != 1 || codes[0] != tt.wantCode {
				t.Errorf("exit codes = %v, want [%d]", codes, tt.wantCode)
			}
			if stderr.String() != tt.wantErr {
				t.Errorf("stderr = %q, want %q", stderr.String(), tt.wantErr)
			}
		})
	}
}

func TestWrap_PassesInput(t *testing.T) {
	var got string
	fn := Wrap(func(_ context.Context, in string) (any, error) {
		got = in
		return nil, nil
	}, WithExit(func(int) {}))

	fn(context.Background(), "argv")
	if got != "argv" {
		t.Errorf("target received %q, want argv", got)
	}
}

func TestMainFunc_UsesContext(t *testing.T) {
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "v")

	code := -1
	Main(ctx, func(ctx context.Context) (any, error) {
		if ctx.Value(key{}) != "v" {
			t.Error("Main() did not pass the context through")
		}
		return 9, nil
	}, WithExit(func(c int) { code = c }))

	if code != 9 {
		t.Errorf("exit code = %d, want 9", code)
	}
}

func TestError(t *testing.T) {
	inner := errors.New("inner")
	err := WithCode(3, inner)

	if !errors.Is(err, inner) {
		t.Error("WithCode() error does not unwrap to inner")
	}
	var e *Error
	if !errors.As(err, &e) || e.ExitCode() != 3 {
		t.Errorf("errors.As() = %v", e)
	}
}
