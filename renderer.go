package prototype

import (
	"fmt"
	"io"
	"reflect"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

var (
	typeNamerType = reflect.TypeFor[TypeNamer]()
)

// Renderer renders prototypes to out. Create one with NewRenderer; the zero
// value knows no leaf types.
type Renderer struct {
	out    io.Writer
	leaves leafRulesMap
}

func NewRenderer(out io.Writer) *Renderer {
	leaves := make(leafRulesMap, len(defaultLeaves))
	for t, name := range defaultLeaves {
		leaves[t] = name
	}
	return &Renderer{out: out, leaves: leaves}
}

// Render writes the prototype of t, without a trailing newline.
func (r *Renderer) Render(t reflect.Type) error {
	node, err := r.Decompose(t)
	if err != nil {
		return err
	}
	_, err = io.WriteString(r.out, node.String())
	return err
}

func (r *Renderer) Fcn(name string, fn any) error {
	node, err := r.Decompose(reflect.TypeOf(fn))
	if err != nil {
		return fmt.Errorf("rendering %s: %w", name, err)
	}
	_, err = fmt.Fprintf(r.out, "%s: %s\n", name, node)
	return err
}

func (r *Renderer) Print(fn any) error {
	name, err := NameOf(fn)
	if err != nil {
		return err
	}
	return r.Fcn(name, fn)
}

// Decompose breaks t down into leaves, pointers and functions.
func (r *Renderer) Decompose(t reflect.Type) (*Node, error) {
	return r.decompose(t, "", make(map[reflect.Type]bool))
}

// expanding holds the pointer and func types enclosing t; meeting one of them
// again means the type refers to itself.
func (r *Renderer) decompose(t reflect.Type, path string, expanding map[reflect.Type]bool) (*Node, error) {
	if t == nil {
		return nil, &UnsupportedTypeError{Path: path}
	}

	if name, ok := r.leaves[t]; ok {
		return &Node{Kind: KindLeaf, Name: name}, nil
	}

	// Pointers never pick up their pointee's TypeName, and an interface has
	// no value to call it on
	if k := t.Kind(); k != reflect.Pointer && k != reflect.Interface && reflect.PointerTo(t).Implements(typeNamerType) {
		name, err := typeName(t, path)
		if err != nil {
			return nil, err
		}
		return &Node{Kind: KindLeaf, Name: name}, nil
	}

	switch t.Kind() {
	case reflect.Pointer, reflect.Func:
		if expanding[t] {
			return nil, pathError(t, path, ErrRecursive)
		}
		expanding[t] = true
		defer delete(expanding, t)
	}

	switch t.Kind() {
	case reflect.Pointer:
		elem, err := r.decompose(t.Elem(), nestedPath("pointee", path), expanding)
		if err != nil {
			return nil, err
		}
		return &Node{Kind: KindPointer, Elem: elem}, nil

	case reflect.Func:
		if t.IsVariadic() {
			return nil, pathError(t, path, ErrVariadic)
		}

		node := &Node{Kind: KindFunc}
		for i := 0; i < t.NumIn(); i++ {
			param, err := r.decompose(t.In(i), nestedPath(fmt.Sprintf("param %d", i), path), expanding)
			if err != nil {
				return nil, err
			}
			node.Params = append(node.Params, param)
		}
		for i := 0; i < t.NumOut(); i++ {
			result, err := r.decompose(t.Out(i), nestedPath(fmt.Sprintf("result %d", i), path), expanding)
			if err != nil {
				return nil, err
			}
			node.Results = append(node.Results, result)
		}
		return node, nil
	}

	return nil, &UnsupportedTypeError{Type: t, Path: path}
}

// typeName calls TypeName on a pointer to a zero T, so both value and pointer
// receivers work. A TypeName that panics on the zero value, e.g. one promoted
// through a nil embedded pointer, makes the type unsupported.
func typeName(t reflect.Type, path string) (name string, err error) {
	defer func() {
		if recover() != nil {
			err = &UnsupportedTypeError{Type: t, Path: path}
		}
	}()
	return reflect.New(t).Interface().(TypeNamer).TypeName(), nil
}

// WriteYAML writes the decomposition tree of t as YAML.
func (r *Renderer) WriteYAML(t reflect.Type) error {
	node, err := r.Decompose(t)
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(r.out)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return fmt.Errorf("error encoding YAML: %w", err)
	}
	return enc.Close()
}

// Entry is one row of a prototype table.
type Entry struct {
	Name string
	Type reflect.Type
}

// Table writes entries as a NAME / PROTOTYPE table. Nothing is written if any
// entry fails to render.
func (r *Renderer) Table(entries []Entry) error {
	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		node, err := r.Decompose(entry.Type)
		if err != nil {
			return fmt.Errorf("rendering %s: %w", entry.Name, err)
		}
		rows = append(rows, []string{entry.Name + "   ", node.String() + "   "})
	}

	table := tablewriter.NewWriter(r.out)
	table.SetNoWhiteSpace(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.SetHeaderLine(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Name  ", "Prototype  "})
	table.AppendBulk(rows)
	table.Render()
	return nil
}
