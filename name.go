package prototype

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"
)

// NameOf returns the short name of a function value, e.g. "dummy" for
// main.dummy or "(*T).M" for a method expression.
func NameOf(fn any) (string, error) {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		return "", fmt.Errorf("%T: %w", fn, ErrNotFunc)
	}
	if v.IsNil() {
		return "", fmt.Errorf("nil %s: %w", v.Type(), ErrNotFunc)
	}

	f := runtime.FuncForPC(v.Pointer())
	if f == nil {
		return "", fmt.Errorf("no symbol for %s: %w", v.Type(), ErrNotFunc)
	}
	return shortName(f.Name()), nil
}

func shortName(full string) string {
	name := full
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.Index(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return strings.TrimSuffix(name, "-fm")
}
