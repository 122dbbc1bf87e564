package memo

import "errors"

// Sentinel errors for memo operations.
var (
	// ErrNoCache is returned when the instance does not provide a cache
	// under the configured attribute, or provides a nil one.
	ErrNoCache = errors.New("memo: instance has no cache")

	// ErrNilReceiver is returned when a cached method is called on a nil
	// instance.
	ErrNilReceiver = errors.New("memo: receiver is nil")
)
