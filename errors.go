package prototype

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrVariadic  = errors.New("prototype: variadic functions are not supported")
	ErrNotFunc   = errors.New("prototype: not a function")
	ErrRecursive = errors.New("prototype: recursive type")
)

// UnsupportedTypeError is returned when no rule matches a type. Path tells
// where the type sits in the enclosing one, e.g. "param 1 of result 0"; it is
// empty for the top level.
type UnsupportedTypeError struct {
	Type reflect.Type
	Path string
}

func (e *UnsupportedTypeError) Error() string {
	name := "<nil>"
	if e.Type != nil {
		name = e.Type.String()
	}
	if e.Path == "" {
		return fmt.Sprintf("prototype: unsupported type %s", name)
	}
	return fmt.Sprintf("prototype: unsupported type %s (%s)", name, e.Path)
}

func nestedPath(inner, outer string) string {
	if outer == "" {
		return inner
	}
	return inner + " of " + outer
}

func pathError(t reflect.Type, path string, err error) error {
	if path == "" {
		return fmt.Errorf("%s: %w", t, err)
	}
	return fmt.Errorf("%s (%s): %w", t, path, err)
}
