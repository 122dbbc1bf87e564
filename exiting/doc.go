// Package exiting turns a function's result into the process exit status.
//
// [Wrap] returns a function that calls the target and then terminates the
// process. The status is derived from the target's result by [Status]:
//
//   - nil, false and integer zero exit 0
//   - other integers exit with their value, true exits 1
//   - values implementing [ExitCoder] exit with ExitCode()
//   - strings are written to stderr and exit 1
//   - a returned error is written to stderr and exits 1, or with its
//     ExitCode() when it implements ExitCoder
//
// The wrapped function does not return unless an exit function that returns
// was supplied with [WithExit].
package exiting
