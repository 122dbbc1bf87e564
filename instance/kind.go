package instance

import (
	"reflect"
	"strings"
)

// Kind discriminates runtime values.
//
// Contract:
//   - Concurrency: implementations must be safe for concurrent use.
//   - Match must not panic for any input, including nil.
type Kind interface {
	Match(v any) bool
	String() string
}

type typeKind[T any] struct{}

// Type returns the kind of values whose dynamic type is T, or implements T
// when T is an interface.
func Type[T any]() Kind {
	return typeKind[T]{}
}

func (typeKind[T]) Match(v any) bool {
	_, ok := v.(T)
	return ok
}

func (typeKind[T]) String() string {
	return reflect.TypeFor[T]().String()
}

type nilKind struct{}

// Nil returns the kind matching only the nil interface value.
func Nil() Kind {
	return nilKind{}
}

func (nilKind) Match(v any) bool { return v == nil }
func (nilKind) String() string   { return "nil" }

// anyOf matches when any member matches.
type anyOf []Kind

// AnyOf returns a kind matching values matched by any of kinds.
func AnyOf(kinds ...Kind) Kind {
	return anyOf(append([]Kind(nil), kinds...))
}

func (k anyOf) Match(v any) bool {
	for _, kind := range k {
		if kind.Match(v) {
			return true
		}
	}
	return false
}

func (k anyOf) String() string {
	names := make([]string, len(k))
	for i, kind := range k {
		names[i] = kind.String()
	}
	return "(" + strings.Join(names, " | ") + ")"
}
