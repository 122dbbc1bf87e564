package instance

// Predicate reports whether a value satisfies a condition.
type Predicate func(v any) bool

// Of returns a predicate reporting whether a value matches any of kinds.
// With no kinds the predicate is always false.
func Of(kinds ...Kind) Predicate {
	k := AnyOf(kinds...)
	return k.Match
}

// Filter returns the items satisfying p, in order.
func Filter(items []any, p Predicate) []any {
	out := make([]any, 0, len(items))
	for _, item := range items {
		if p(item) {
			out = append(out, item)
		}
	}
	return out
}

// Map applies p to every item.
func Map(items []any, p Predicate) []bool {
	out := make([]bool, len(items))
	for i, item := range items {
		out[i] = p(item)
	}
	return out
}

// OfType returns the items whose dynamic type is T, converted to T.
func OfType[T any](items []any) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if v, ok := item.(T); ok {
			out = append(out, v)
		}
	}
	return out
}
