package callable

import (
	"reflect"
	"runtime"
	"strings"
)

// Name returns the declared name of fn as recorded by the runtime, with the
// import path trimmed: "github.com/x/pkg.Do" becomes "pkg.Do".
//
// Method values lose their "-fm" suffix. Name never panics; it returns
// "unknown" for nil or non-function values.
func Name(fn any) string {
	if fn == nil {
		return "unknown"
	}
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return "unknown"
	}
	rf := runtime.FuncForPC(v.Pointer())
	if rf == nil {
		return "unknown"
	}
	name := rf.Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return strings.TrimSuffix(name, "-fm")
}

// SplitName splits a name returned by Name into its package and the rest.
func SplitName(name string) (pkg, fn string) {
	pkg, fn, ok := strings.Cut(name, ".")
	if !ok {
		return "", name
	}
	return pkg, fn
}
