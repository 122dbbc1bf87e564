// Package callable defines the function shapes shared by every decorator in
// funcops.
//
// A [Func] is the unit every decorator wraps: it takes a context and a single
// input value and returns an output and an error. Functions that need a
// positional/keyword call shape use [Args] as their input ([ArgsFunc]).
//
// # Composition
//
// Decorators compose by direct wrapping or through [Chain]:
//
//	wrapped := callable.Chain(
//	    timing.Timeit[string, int](),
//	    limit.Executions[string, int](3),
//	)(fn)
//
// The first decorator passed to Chain is the outermost layer.
//
// # Receivers
//
// Go does not expose parameter names at runtime, so deciding whether a
// function expects a receiver is done structurally: [HasReceiver] reports
// whether the first declared parameter has the receiver's type.
package callable
