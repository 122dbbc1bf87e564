// Package partial injects argument values computed at call time.
//
// [New] wraps a [callable.ArgsFunc] so that every call first evaluates a set
// of zero-argument callbacks and passes their results to the target:
// positional callback results are prepended to the caller's positional
// arguments, and keyword callback results become keywords that the caller's
// own keywords override on collision.
//
//	log := partial.New(write,
//	    partial.WithCallbacks(func() any { return hostname() }),
//	    partial.WithKeyword("level", func() any { return currentLevel() }),
//	)
//
// Callbacks run on every call, in declared order, before the target. Their
// results are never cached. [Prepend] is the statically typed form for a
// single injected value, and [DateTimeNow] / [Now] inject the current time.
package partial
