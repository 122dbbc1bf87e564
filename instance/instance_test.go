package instance

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/jonwraymond/funcops/callable"
)

var items = []any{"string", 42, "other string", 3.14, 1337, true, false, nil}

func TestOf_Filter(t *testing.T) {
	tests := []struct {
		name  string
		kinds []Kind
		want  []any
	}{
		{"string", []Kind{Type[string]()}, []any{"string", "other string"}},
		{"int", []Kind{Type[int]()}, []any{42, 1337}},
		{"float", []Kind{Type[float64]()}, []any{3.14}},
		{"bool", []Kind{Type[bool]()}, []any{true, false}},
		{"int or float", []Kind{Type[int](), Type[float64]()}, []any{42, 3.14, 1337}},
		{"nil", []Kind{Nil()}, []any{nil}},
		{"none", nil, []any{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(items, Of(tt.kinds...))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Filter() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOf_MixedSequence(t *testing.T) {
	seq := []any{"a", 1, "b", 2.0}

	if got := Filter(seq, Of(Type[string]())); !reflect.DeepEqual(got, []any{"a", "b"}) {
		t.Errorf("Filter(string) = %v, want [a b]", got)
	}
	if got := Filter(seq, Of(Type[int](), Type[float64]())); !reflect.DeepEqual(got, []any{1, 2.0}) {
		t.Errorf("Filter(int, float64) = %v, want [1 2]", got)
	}
}

func TestOf_Map(t *testing.T) {
	got := Map(items, Of(Type[string]()))
	want := []bool{true, false, true, false, false, false, false, false}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Map(string) = %v, want %v", got, want)
	}
}

func TestType_Interface(t *testing.T) {
	isStringer := Of(Type[fmt.Stringer]())

	if !isStringer(Nil()) {
		t.Error("Nil() kind implements fmt.Stringer and should match")
	}
	if isStringer("plain string") {
		t.Error("string does not implement fmt.Stringer")
	}
	if isStringer(nil) {
		t.Error("nil interface should not match an interface kind")
	}
}

func TestOfType(t *testing.T) {
	got := OfType[int](items)
	if !reflect.DeepEqual(got, []int{42, 1337}) {
		t.Errorf("OfType[int]() = %v, want [42 1337]", got)
	}
}

func TestKind_String(t *testing.T) {
	if got := Type[int]().String(); got != "int" {
		t.Errorf("Type[int]().String() = %q", got)
	}
	if got := AnyOf(Type[int](), Nil()).String(); got != "(int | nil)" {
		t.Errorf("AnyOf().String() = %q", got)
	}
}

func TestCheck(t *testing.T) {
	positional := []Kind{Type[string](), nil, Type[int]()}
	keywords := map[string]Kind{"verbose": Type[bool]()}

	t.Run("valid", func(t *testing.T) {
		args := callable.NewArgs("name", struct{}{}, 3).With("verbose", true).With("extra", 1.5)
		if err := Check(args, positional, keywords); err != nil {
			t.Errorf("Check() error = %v", err)
		}
	})

	t.Run("short args", func(t *testing.T) {
		if err := Check(callable.NewArgs("name"), positional, keywords); err != nil {
			t.Errorf("Check() error = %v", err)
		}
	})

	t.Run("collects all mismatches", func(t *testing.T) {
		args := callable.NewArgs(1, "skipped", "three").With("verbose", "yes")
		err := Check(args, positional, keywords)

		if !errors.Is(err, ErrTypeMismatch) {
			t.Fatalf("Check() error = %v, want ErrTypeMismatch", err)
		}
		var tm *TypeMismatch
		if !errors.As(err, &tm) {
			t.Fatalf("Check() error type = %T, want *TypeMismatch", err)
		}
		if len(tm.Mismatches) != 3 {
			t.Fatalf("len(Mismatches) = %d, want 3", len(tm.Mismatches))
		}

		first := tm.Mismatches[0]
		if first.Arg != "0" || first.Value != 1 || first.Type != reflect.TypeFor[int]() {
			t.Errorf("Mismatches[0] = %+v", first)
		}
		if tm.Mismatches[2].Arg != "verbose" {
			t.Errorf("Mismatches[2].Arg = %q, want verbose", tm.Mismatches[2].Arg)
		}
	})
}

func TestTypecheck(t *testing.T) {
	called := false
	fn := Typecheck[string]([]Kind{Type[string]()}, nil)(func(_ context.Context, args callable.Args) (string, error) {
		called = true
		return args.Positional[0].(string), nil
	})

	if got, err := fn(context.Background(), callable.NewArgs("ok")); err != nil || got != "ok" {
		t.Errorf("fn(ok) = (%q, %v), want (ok, nil)", got, err)
	}

	called = false
	if _, err := fn(context.Background(), callable.NewArgs(7)); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("fn(7) error = %v, want ErrTypeMismatch", err)
	}
	if called {
		t.Error("target ran despite type mismatch")
	}
}

func TestTypeMismatch_Error(t *testing.T) {
	err := Check(callable.NewArgs(nil), []Kind{Type[string]()}, nil)
	want := "instance: type mismatch: 0: got <nil>, want string"
	if err == nil || err.Error() != want {
		t.Errorf("Error() = %v, want %q", err, want)
	}
}
