package scope

import (
	"errors"
	"fmt"
)

// Sentinel errors for scope operations.
var (
	// ErrNilExitFunc is returned when a nil exit function is supplied.
	ErrNilExitFunc = errors.New("scope: exit function is nil")

	// ErrInvalidExitFunc is returned by Detect for unsupported function types.
	ErrInvalidExitFunc = errors.New("scope: unsupported exit function signature")

	// ErrAlreadyEntered is returned when entering a resource twice.
	ErrAlreadyEntered = errors.New("scope: resource already entered")

	// ErrNotActive is returned when exiting a resource that is not active.
	ErrNotActive = errors.New("scope: resource is not active")

	// ErrGoexit is passed to the exit function when the body called
	// runtime.Goexit.
	ErrGoexit = errors.New("scope: goroutine exited")
)

// PanicError carries a panic recovered inside a scope.
type PanicError struct {
	// Value is the value passed to panic.
	Value any

	// Stack is the goroutine stack captured at recovery.
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("scope: panic: %v", e.Value)
}

// Unwrap returns the panic value when it is an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
