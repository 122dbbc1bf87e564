package callable

import "reflect"

// Kind tags how a function expects to be called.
type Kind int

const (
	// KindFunction is a plain function: no receiver is passed.
	KindFunction Kind = iota
	// KindMethod expects the receiving instance as its first argument.
	KindMethod
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindFunction:
		return "function"
	case KindMethod:
		return "method"
	default:
		return "unknown"
	}
}

// HasReceiver reports whether fn is a function whose first declared
// parameter has exactly the receiver type.
//
// It never panics: nil values, non-functions and functions without
// parameters all report false.
func HasReceiver(fn any, receiver reflect.Type) bool {
	if fn == nil || receiver == nil {
		return false
	}
	t := reflect.TypeOf(fn)
	if t.Kind() != reflect.Func || t.NumIn() == 0 {
		return false
	}
	return t.In(0) == receiver
}

// KindOf returns KindMethod when HasReceiver holds and KindFunction otherwise.
func KindOf(fn any, receiver reflect.Type) Kind {
	if HasReceiver(fn, receiver) {
		return KindMethod
	}
	return KindFunction
}
