// Package timing measures how long a function takes.
//
// [Timeit] wraps a callable.Func, measures each call with the monotonic
// clock and writes one line per call to a sink (os.Stderr by default):
//
//	fetch := timing.Timeit[string, []byte](timing.WithFlush(true))(fetchURL)
//	// stderr: "main.fetchURL took 182.4ms"
//
// The report is written on every exit path of the wrapped function,
// including returned errors and panics. The wrapped function's result and
// error are returned unchanged.
package timing
