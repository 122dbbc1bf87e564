package memo

import (
	"context"
	"fmt"
	"reflect"

	"github.com/jonwraymond/funcops/callable"
)

// DefaultAttr is the cache field name used when none is given.
const DefaultAttr = "Cache"

// Holder is implemented by instances that provide their cache explicitly.
// It takes precedence over field lookup.
type Holder interface {
	MethodCache(attr string) *Cache
}

// MethodFunc is a method body. The instance comes first so method
// expressions such as (*Repo).Count can be passed directly.
type MethodFunc[T, In, Out any] func(recv T, ctx context.Context, in In) (Out, error)

// Cached is a method body bound to its own cache identity.
type Cached[T, In, Out any] struct {
	attr string
	id   *identity
	body MethodFunc[T, In, Out]
}

// Wrap binds body to a new identity reading the cache stored under attr.
// An empty attr means DefaultAttr.
func Wrap[T, In, Out any](attr string, body MethodFunc[T, In, Out]) *Cached[T, In, Out] {
	if attr == "" {
		attr = DefaultAttr
	}
	return &Cached[T, In, Out]{
		attr: attr,
		id:   newIdentity(callable.Name(body)),
		body: body,
	}
}

// Method returns a decorator caching the wrapped method's first result per
// instance. Every application of the decorator creates a distinct identity.
func Method[T, In, Out any](attr string) func(MethodFunc[T, In, Out]) MethodFunc[T, In, Out] {
	return func(body MethodFunc[T, In, Out]) MethodFunc[T, In, Out] {
		return Wrap(attr, body).Call
	}
}

// Call returns the cached result for recv, running the body on the first
// call only. Later calls ignore in.
func (c *Cached[T, In, Out]) Call(recv T, ctx context.Context, in In) (Out, error) {
	var zero Out

	cache, err := lookup(recv, c.attr)
	if err != nil {
		return zero, err
	}

	v, err := cache.do(c.id, func() (any, error) {
		return c.body(recv, ctx, in)
	})
	if err != nil {
		return zero, err
	}

	out, _ := v.(Out)
	return out, nil
}

// Forget drops the cached result for recv so the next call runs the body.
func (c *Cached[T, In, Out]) Forget(recv T) error {
	cache, err := lookup(recv, c.attr)
	if err != nil {
		return err
	}
	cache.forget(c.id)
	return nil
}

// Attr returns the name of the cache attribute.
func (c *Cached[T, In, Out]) Attr() string {
	return c.attr
}

var cacheType = reflect.TypeFor[*Cache]()

// lookup finds the cache recv stores under attr.
func lookup(recv any, attr string) (*Cache, error) {
	v := reflect.ValueOf(recv)
	if !v.IsValid() {
		return nil, ErrNilReceiver
	}
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, ErrNilReceiver
		}
		v = v.Elem()
	}

	if h, ok := recv.(Holder); ok {
		if c := h.MethodCache(attr); c != nil {
			return c, nil
		}
		return nil, fmt.Errorf("%w: %T returned nil for %q", ErrNoCache, recv, attr)
	}
	if v.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %T is not a struct", ErrNoCache, recv)
	}

	sf, ok := v.Type().FieldByName(attr)
	if !ok || !sf.IsExported() || sf.Type != cacheType {
		return nil, fmt.Errorf("%w: %T has no exported *memo.Cache field %q", ErrNoCache, recv, attr)
	}

	f, err := v.FieldByIndexErr(sf.Index)
	if err != nil {
		// Nil embedded pointer on the path to the field
		return nil, fmt.Errorf("%w: %T field %q: %v", ErrNoCache, recv, attr, err)
	}
	c, _ := f.Interface().(*Cache)
	if c == nil {
		return nil, fmt.Errorf("%w: %T field %q is nil", ErrNoCache, recv, attr)
	}
	return c, nil
}
