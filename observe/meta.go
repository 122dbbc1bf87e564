package observe

import (
	"github.com/jonwraymond/funcops/callable"
)

// FuncMeta describes a wrapped function for telemetry purposes.
type FuncMeta struct {
	ID      string   // Fully qualified identifier (package.name or just name)
	Package string   // Declaring package (may be empty)
	Name    string   // Function name (required)
	Version string   // Version of the owning module (optional)
	Tags    []string // Free-form labels (optional)
}

// MetaOf derives a FuncMeta from fn using the runtime symbol table.
// Closures keep their generated names, e.g. "main.func1".
func MetaOf(fn any) FuncMeta {
	pkg, name := callable.SplitName(callable.Name(fn))
	return FuncMeta{Package: pkg, Name: name}
}

// SpanName returns the deterministic span name for this function.
// Format: func.call.<package>.<name> or func.call.<name>
func (m FuncMeta) SpanName() string {
	if m.Package != "" {
		return "func.call." + m.Package + "." + m.Name
	}
	return "func.call." + m.Name
}

// FuncID returns the fully qualified function identifier.
// If ID is set it wins, otherwise it is built from package and name.
func (m FuncMeta) FuncID() string {
	if m.ID != "" {
		return m.ID
	}
	if m.Package != "" {
		return m.Package + "." + m.Name
	}
	return m.Name
}

// Validate reports ErrMissingFuncName when Name is empty.
func (m FuncMeta) Validate() error {
	if m.Name == "" {
		return ErrMissingFuncName
	}
	return nil
}
