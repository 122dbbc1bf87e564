package scope

import "reflect"

// Disposition is the exit function's decision about the error that ended
// the scope.
type Disposition int

const (
	// Propagate lets the error continue to the caller.
	Propagate Disposition = iota
	// Suppress swallows the error.
	Suppress
)

// String returns the string representation of the disposition.
func (d Disposition) String() string {
	switch d {
	case Propagate:
		return "propagate"
	case Suppress:
		return "suppress"
	default:
		return "unknown"
	}
}

// ExitInfo describes how a scope ended. It is the zero value on a normal
// exit.
type ExitInfo struct {
	// Err is the error that ended the scope, or a *PanicError.
	Err error

	// Type is the dynamic type of Err.
	Type reflect.Type

	// Stack is the stack captured when the scope ended by panic.
	Stack []byte
}

// Normal reports whether the scope ended without an error.
func (i ExitInfo) Normal() bool {
	return i.Err == nil
}

func exitInfo(err error) ExitInfo {
	if err == nil {
		return ExitInfo{}
	}
	info := ExitInfo{
		Err:  err,
		Type: reflect.TypeOf(err),
	}
	if p, ok := err.(*PanicError); ok {
		info.Stack = p.Stack
	}
	return info
}

// ExitFunc is an exit function called without the resource.
type ExitFunc func(info ExitInfo) Disposition

// ExitMethod is an exit function that receives the resource first.
type ExitMethod func(r *Resource, info ExitInfo) Disposition
