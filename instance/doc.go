// Package instance builds type predicates and argument type checks.
//
// A [Kind] is an explicit discriminator for a family of runtime values.
// [Of] turns one or more kinds into a [Predicate] suitable for filtering:
//
//	strs := instance.Filter(items, instance.Of(instance.Type[string]()))
//	nums := instance.Filter(items, instance.Of(instance.Type[int](), instance.Type[float64]()))
//
// [Typecheck] validates the positional and keyword arguments of a
// callable.ArgsFunc before calling it and reports every mismatch at once.
package instance
