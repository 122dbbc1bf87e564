// Package scope builds scoped resources whose release step is a plain
// function.
//
// A [Factory] is created from an exit function with [Function] or [Method]
// (or [Detect], which picks the call shape once from the function's type).
// Each scoped use gets a fresh [Resource]. Entering does nothing but mark
// the resource active; exiting calls the exit function exactly once with an
// [ExitInfo] describing how the scope ended.
//
// # Guaranteed release
//
// [Factory.Run] is the usual entry point. It enters a new resource, runs the
// body and exits the resource on every path, including panics:
//
//	unlock := scope.Function(func(info scope.ExitInfo) scope.Disposition {
//	    mu.Unlock()
//	    return scope.Propagate
//	})
//
//	err := unlock.Run(ctx, func(ctx context.Context, r *scope.Resource) error {
//	    mu.Lock()
//	    return doWork(ctx)
//	})
//
// Resources can also be driven by hand with a deferred Exit:
//
//	r, _ := factory.New().Enter()
//	defer func() { err = r.Exit(err) }()
//
// # Suppression
//
// The exit function returns a [Disposition]. [Suppress] swallows the error
// (or panic) that ended the scope; [Propagate] lets it continue after the
// exit function returns.
//
// # Lifecycle
//
// A resource moves Unentered → Active → Exited. Exited is terminal:
// entering or exiting again returns an error. Resources are not reusable.
package scope
