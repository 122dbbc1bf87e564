package instance

import (
	"context"
	"maps"
	"reflect"
	"slices"
	"strconv"

	"github.com/jonwraymond/funcops/callable"
)

// Check validates args against the expected kinds.
//
// A nil entry in positional skips that position. Positions beyond
// len(positional) and keywords without an expected kind are not checked.
// Returns a *TypeMismatch listing every mismatch, or nil.
func Check(args callable.Args, positional []Kind, keywords map[string]Kind) error {
	var mismatches []Mismatch

	for i, kind := range positional {
		if kind == nil || i >= len(args.Positional) {
			continue
		}
		if v := args.Positional[i]; !kind.Match(v) {
			mismatches = append(mismatches, mismatch(strconv.Itoa(i), v, kind))
		}
	}

	// Keyword mismatches are reported in name order
	for _, name := range slices.Sorted(maps.Keys(args.Keywords)) {
		kind, ok := keywords[name]
		if !ok || kind == nil {
			continue
		}
		if v := args.Keywords[name]; !kind.Match(v) {
			mismatches = append(mismatches, mismatch(name, v, kind))
		}
	}

	if len(mismatches) > 0 {
		return &TypeMismatch{Mismatches: mismatches}
	}
	return nil
}

func mismatch(arg string, v any, kind Kind) Mismatch {
	return Mismatch{
		Arg:      arg,
		Value:    v,
		Type:     reflect.TypeOf(v),
		Expected: kind,
	}
}

// Typecheck returns a decorator that validates arguments with Check before
// calling the wrapped function. On mismatch the function is not called.
func Typecheck[Out any](positional []Kind, keywords map[string]Kind) func(callable.ArgsFunc[Out]) callable.ArgsFunc[Out] {
	return func(fn callable.ArgsFunc[Out]) callable.ArgsFunc[Out] {
		return func(ctx context.Context, args callable.Args) (Out, error) {
			if err := Check(args, positional, keywords); err != nil {
				var zero Out
				return zero, err
			}
			return fn(ctx, args)
		}
	}
}
