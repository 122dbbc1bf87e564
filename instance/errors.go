package instance

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// ErrTypeMismatch is matched by every *TypeMismatch via errors.Is.
var ErrTypeMismatch = errors.New("instance: type mismatch")

// Mismatch describes one argument whose value did not match its kind.
type Mismatch struct {
	// Arg is the positional index ("0", "1", ...) or keyword name.
	Arg string

	// Value is the offending value.
	Value any

	// Type is the dynamic type of Value (nil for a nil interface).
	Type reflect.Type

	// Expected is the kind the value had to match.
	Expected Kind
}

// String returns a human-readable description of the mismatch.
func (m Mismatch) String() string {
	return fmt.Sprintf("%s: got %v, want %s", m.Arg, m.Type, m.Expected)
}

// TypeMismatch indicates that one or more arguments did not match.
type TypeMismatch struct {
	Mismatches []Mismatch
}

func (e *TypeMismatch) Error() string {
	parts := make([]string, len(e.Mismatches))
	for i, m := range e.Mismatches {
		parts[i] = m.String()
	}
	return ErrTypeMismatch.Error() + ": " + strings.Join(parts, "; ")
}

// Is reports whether target is ErrTypeMismatch.
func (e *TypeMismatch) Is(target error) bool {
	return target == ErrTypeMismatch
}
