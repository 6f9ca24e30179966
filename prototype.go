// Package prototype renders the static type of a function as a readable
// prototype, e.g. "(int*, double) --> (int)".
package prototype

import (
	"bytes"
	"io"
	"reflect"
)

// TypeFor renders T.
func TypeFor[T any]() (string, error) {
	return Type(reflect.TypeFor[T]())
}

// Type renders t using the default leaf rules.
func Type(t reflect.Type) (string, error) {
	var buf bytes.Buffer
	if err := NewRenderer(&buf).Render(t); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Func returns "name: <prototype of F>". Only the type argument is used, so
// no function value is needed.
func Func[F any](name string) (string, error) {
	str, err := TypeFor[F]()
	if err != nil {
		return "", err
	}
	return name + ": " + str, nil
}

// Fcn writes "name: <prototype>" followed by a newline to w.
func Fcn(w io.Writer, name string, fn any) error {
	return NewRenderer(w).Fcn(name, fn)
}

// Print is Fcn with the name taken from fn itself.
func Print(w io.Writer, fn any) error {
	return NewRenderer(w).Print(fn)
}

// TypeNamer lets a type render itself as a leaf. TypeName may have a value or
// pointer receiver; it is called on a pointer to the zero value, so it must
// not depend on the receiver.
type TypeNamer interface {
	TypeName() string
}

type leafRulesMap map[reflect.Type]string
