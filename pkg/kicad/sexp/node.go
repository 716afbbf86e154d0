// Package sexp provides the S-expression document model shared by the KiCad
// serializers and their tests: a node tree with builder constructors, a
// deterministic writer, and a streaming parser for reading documents back.
package sexp

import (
	"strconv"

	"github.com/OpenTraceLab/OpenTraceLibGen/pkg/pinout/geom"
)

type nodeKind int

const (
	kindSym nodeKind = iota
	kindStr
	kindList
)

// Node is one element of an S-expression tree: a bare symbol, a quoted
// string, or a list.
type Node struct {
	kind     nodeKind
	text     string
	children []*Node
}

// Sym builds a bare symbol atom (keywords, numbers, enum values).
func Sym(s string) *Node { return &Node{kind: kindSym, text: s} }

// Str builds a quoted string atom.
func Str(s string) *Node { return &Node{kind: kindStr, text: s} }

// Int builds a symbol atom from an integer.
func Int(i int) *Node { return Sym(strconv.Itoa(i)) }

// MM builds a symbol atom from a millimeter value using the fixed
// four-decimal policy, so the same quantity always serializes identically.
func MM(v float64) *Node { return Sym(geom.FormatMM(v)) }

// List builds a list node headed by a symbol: List("at", MM(x), MM(y))
// renders as (at x y).
func List(name string, children ...*Node) *Node {
	n := &Node{kind: kindList, children: []*Node{Sym(name)}}
	return n.Append(children...)
}

// Append adds children to a list node and returns it for chaining.
// Nil children are skipped, which lets callers append optional elements
// without branching.
func (n *Node) Append(children ...*Node) *Node {
	for _, c := range children {
		if c != nil {
			n.children = append(n.children, c)
		}
	}
	return n
}

// IsList reports whether the node is a list.
func (n *Node) IsList() bool { return n.kind == kindList }

// Len returns the number of elements in a list, 0 for atoms.
func (n *Node) Len() int { return len(n.children) }

// At returns the i-th element of a list, nil when out of range.
func (n *Node) At(i int) *Node {
	if n.kind != kindList || i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// Name returns the head symbol of a list, or the text of a symbol atom.
func (n *Node) Name() string {
	if n.kind == kindList {
		if len(n.children) == 0 {
			return ""
		}
		return n.children[0].Name()
	}
	if n.kind == kindSym {
		return n.text
	}
	return ""
}

// Text returns the raw text of an atom (unquoted for strings).
func (n *Node) Text() string {
	if n.kind == kindList {
		return ""
	}
	return n.text
}

// Find returns the first child list headed by key, or the first atom child
// equal to key.
func (n *Node) Find(key string) (*Node, bool) {
	if n.kind != kindList {
		return nil, false
	}
	for _, c := range n.children {
		if c.Name() == key {
			return c, true
		}
	}
	return nil, false
}

// FindAll returns every child list headed by key.
func (n *Node) FindAll(key string) []*Node {
	var out []*Node
	if n.kind != kindList {
		return out
	}
	for _, c := range n.children {
		if c.kind == kindList && c.Name() == key {
			out = append(out, c)
		}
	}
	return out
}

// TextAt returns the text of the i-th element of a list.
func (n *Node) TextAt(i int) string {
	c := n.At(i)
	if c == nil {
		return ""
	}
	return c.Text()
}

// FloatAt parses the i-th element of a list as a float64.
func (n *Node) FloatAt(i int) (float64, error) {
	c := n.At(i)
	if c == nil {
		return 0, strconv.ErrSyntax
	}
	return strconv.ParseFloat(c.Text(), 64)
}

// IntAt parses the i-th element of a list as an int.
func (n *Node) IntAt(i int) (int, error) {
	c := n.At(i)
	if c == nil {
		return 0, strconv.ErrSyntax
	}
	return strconv.Atoi(c.Text())
}

// HasSymbol reports whether a list contains a bare symbol equal to s.
func (n *Node) HasSymbol(s string) bool {
	if n.kind != kindList {
		return false
	}
	for _, c := range n.children {
		if c.kind == kindSym && c.text == s {
			return true
		}
	}
	return false
}
