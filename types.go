package prototype

import (
	"reflect"
	"strings"
)

var defaultLeaves = leafRulesMap{
	reflect.TypeFor[int]():     "int",
	reflect.TypeFor[float64](): "double",
}

// RegisterLeaf adds a leaf rule for exactly T to the renderer.
func RegisterLeaf[T any](renderer *Renderer, name string) {
	if renderer.leaves == nil {
		renderer.leaves = make(leafRulesMap)
	}
	renderer.leaves[reflect.TypeFor[T]()] = name
}

type NodeKind string

const (
	KindLeaf    NodeKind = "leaf"
	KindPointer NodeKind = "pointer"
	KindFunc    NodeKind = "func"
)

// Node is one level of a decomposed type.
type Node struct {
	Kind    NodeKind `yaml:"kind"`
	Name    string   `yaml:"name,omitempty"`
	Elem    *Node    `yaml:"elem,omitempty"`
	Params  []*Node  `yaml:"params,omitempty"`
	Results []*Node  `yaml:"results,omitempty"`
}

func (n *Node) String() string {
	var b strings.Builder
	n.write(&b)
	return b.String()
}

// Parts missing from a hand-built tree render as "?".
func (n *Node) write(b *strings.Builder) {
	if n == nil {
		b.WriteByte('?')
		return
	}
	switch n.Kind {
	case KindLeaf:
		b.WriteString(n.Name)
	case KindPointer:
		n.Elem.write(b)
		b.WriteByte('*')
	case KindFunc:
		b.WriteByte('(')
		writeList(b, n.Params)
		b.WriteString(") --> (")
		writeList(b, n.Results)
		b.WriteByte(')')
	default:
		b.WriteByte('?')
	}
}

func writeList(b *strings.Builder, nodes []*Node) {
	for i, node := range nodes {
		if i > 0 {
			b.WriteString(", ")
		}
		node.write(b)
	}
}
