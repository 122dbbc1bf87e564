// Package coerce converts the result of a function before returning it.
//
// [Returning] takes a fallible converter and [To] an infallible one. The
// wrapped function is called with its arguments unchanged; its result is
// passed through the converter and the converted value is returned.
//
// Conversion errors are returned to the caller as-is. Errors from the
// wrapped function short-circuit the conversion.
package coerce
