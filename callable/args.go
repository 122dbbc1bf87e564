package callable

import "maps"

// Args is a dynamic argument bundle with positional and keyword values.
//
// It is the input type of functions that need a call shape richer than a
// single typed value, such as those wrapped by partial.New or
// instance.Typecheck.
type Args struct {
	Positional []any
	Keywords   map[string]any
}

// ArgsFunc is a Func taking dynamic arguments.
type ArgsFunc[Out any] = Func[Args, Out]

// NewArgs returns Args holding the given positional values.
func NewArgs(positional ...any) Args {
	return Args{Positional: positional}
}

// With returns a copy of a with the keyword name set to value.
func (a Args) With(name string, value any) Args {
	c := a.Clone()
	if c.Keywords == nil {
		c.Keywords = make(map[string]any, 1)
	}
	c.Keywords[name] = value
	return c
}

// Clone returns a copy that shares no slices or maps with a.
func (a Args) Clone() Args {
	var c Args
	if a.Positional != nil {
		c.Positional = append([]any(nil), a.Positional...)
	}
	if a.Keywords != nil {
		c.Keywords = maps.Clone(a.Keywords)
	}
	return c
}

// Arg returns the i-th positional value.
func (a Args) Arg(i int) (any, bool) {
	if i < 0 || i >= len(a.Positional) {
		return nil, false
	}
	return a.Positional[i], true
}

// Keyword returns the keyword value stored under name.
func (a Args) Keyword(name string) (any, bool) {
	v, ok := a.Keywords[name]
	return v, ok
}

// Len returns the total number of positional and keyword values.
func (a Args) Len() int {
	return len(a.Positional) + len(a.Keywords)
}
