// Package observe provides observability primitives for wrapped functions.
//
// It is a pure instrumentation library: no execution and no I/O beyond
// exporter setup. Consumers build an Observer, derive a Middleware from it and
// decorate any callable.Func with Decorate.
package observe
