package scope

import (
	"context"
	"fmt"
	"reflect"
	"runtime/debug"
	"sync"

	"github.com/jonwraymond/funcops/callable"
)

// State is the lifecycle state of a Resource.
type State int

const (
	// StateUnentered means Enter has not been called.
	StateUnentered State = iota
	// StateActive means the resource has been entered and not exited.
	StateActive
	// StateExited means the exit function has run. It is terminal.
	StateExited
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateUnentered:
		return "unentered"
	case StateActive:
		return "active"
	case StateExited:
		return "exited"
	default:
		return "unknown"
	}
}

var resourceType = reflect.TypeFor[*Resource]()

// Factory creates resources sharing one exit function.
//
// The call shape (with or without the resource as receiver) is decided when
// the factory is built and never changes.
type Factory struct {
	kind   callable.Kind
	fn     ExitFunc
	method ExitMethod
}

// Function returns a factory whose exit step calls fn(info).
// It panics if fn is nil.
func Function(fn ExitFunc) *Factory {
	if fn == nil {
		panic(ErrNilExitFunc)
	}
	return &Factory{kind: callable.KindFunction, fn: fn}
}

// Method returns a factory whose exit step calls fn(resource, info).
// It panics if fn is nil.
func Method(fn ExitMethod) *Factory {
	if fn == nil {
		panic(ErrNilExitFunc)
	}
	return &Factory{kind: callable.KindMethod, method: fn}
}

// Detect builds a factory from fn, choosing the call shape by whether fn's
// first parameter is a *Resource.
//
// fn must be an ExitFunc, an ExitMethod, or a function literal with one of
// their signatures.
func Detect(fn any) (*Factory, error) {
	if fn == nil {
		return nil, ErrNilExitFunc
	}
	if v := reflect.ValueOf(fn); v.Kind() == reflect.Func && v.IsNil() {
		return nil, ErrNilExitFunc
	}

	switch callable.KindOf(fn, resourceType) {
	case callable.KindMethod:
		switch m := fn.(type) {
		case ExitMethod:
			return Method(m), nil
		case func(*Resource, ExitInfo) Disposition:
			return Method(m), nil
		}
	default:
		switch f := fn.(type) {
		case ExitFunc:
			return Function(f), nil
		case func(ExitInfo) Disposition:
			return Function(f), nil
		}
	}

	return nil, fmt.Errorf("%w: %T", ErrInvalidExitFunc, fn)
}

// Kind reports whether the exit function receives the resource.
func (f *Factory) Kind() callable.Kind {
	return f.kind
}

// New returns a fresh, unentered resource.
func (f *Factory) New() *Resource {
	return &Resource{factory: f}
}

// Run enters a new resource, calls body and exits the resource on every
// path.
//
// The exit function runs exactly once. If body returns an error or panics
// and the exit function returns Suppress, Run returns nil. Otherwise the
// error is returned, or the panic is resumed with its original value. If
// body calls runtime.Goexit the exit function sees ErrGoexit and the
// goroutine still terminates.
func (f *Factory) Run(ctx context.Context, body func(ctx context.Context, r *Resource) error) (err error) {
	r, err := f.New().Enter()
	if err != nil {
		return err
	}

	done := false
	defer func() {
		p := recover()
		if p == nil {
			if !done {
				// runtime.Goexit: the goroutine ends whatever the disposition
				_, _ = r.exit(ErrGoexit)
			}
			return
		}
		perr := &PanicError{Value: p, Stack: debug.Stack()}
		d, exitErr := r.exit(perr)
		if exitErr != nil {
			// The body exited the resource itself before panicking
			panic(p)
		}
		if d != Suppress {
			panic(p)
		}
		err = nil
	}()

	err = body(ctx, r)
	done = true
	return r.Exit(err)
}

// Resource is one scoped use of a Factory's exit function.
//
// Contract:
//   - Concurrency: state transitions are safe for concurrent use.
//   - Lifecycle: Unentered → Active → Exited; a resource is never reused.
type Resource struct {
	factory *Factory

	mu    sync.Mutex
	state State
}

// Enter activates the resource and returns it.
func (r *Resource) Enter() (*Resource, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != StateUnentered {
		return nil, ErrAlreadyEntered
	}
	r.state = StateActive
	return r, nil
}

// Exit runs the exit function with err describing how the scope ended
// (nil for a normal exit).
//
// It returns nil when err is nil or the exit function suppressed it, and
// err otherwise. Exiting a resource that is not active returns ErrNotActive
// without calling the exit function.
func (r *Resource) Exit(err error) error {
	d, exitErr := r.exit(err)
	if exitErr != nil {
		return exitErr
	}
	if err != nil && d == Suppress {
		return nil
	}
	return err
}

func (r *Resource) exit(err error) (Disposition, error) {
	r.mu.Lock()
	if r.state != StateActive {
		r.mu.Unlock()
		return Propagate, ErrNotActive
	}
	r.state = StateExited
	r.mu.Unlock()

	info := exitInfo(err)
	if r.factory.kind == callable.KindMethod {
		return r.factory.method(r, info), nil
	}
	return r.factory.fn(info), nil
}

// State returns the current lifecycle state.
func (r *Resource) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Factory returns the factory that created r.
func (r *Resource) Factory() *Factory {
	return r.factory
}
