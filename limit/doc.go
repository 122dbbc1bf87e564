// Package limit bounds how many times a function may run.
//
// A [Limiter] owns a private counter. Each wrapped call first tries to
// reserve an execution; once the limit is reached the target is no longer
// invoked and callers receive the no-result sentinel instead of an error.
//
//	send := limit.Wrap(1, sendWelcomeMail)
//
//	_, ran, err := send.Call(ctx, user) // ran == true
//	_, ran, err = send.Call(ctx, user)  // ran == false, err == nil
//
// The counter is advanced with compare-and-swap, so the target runs at most
// limit times even when the wrapper is shared between goroutines, and exactly
// min(calls, limit) times when called from one goroutine.
package limit
