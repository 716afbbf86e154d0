package sexp

import (
	"strings"
)

// Format renders a node tree as KiCad-style text: lists whose elements are
// all atoms stay on one line, lists with nested lists put each nested list
// on its own indented line. The output is a pure function of the tree, so
// identical trees always render to identical bytes.
func Format(n *Node) string {
	var b strings.Builder
	writeNode(&b, n, 0)
	b.WriteByte('\n')
	return b.String()
}

func writeNode(b *strings.Builder, n *Node, depth int) {
	switch n.kind {
	case kindSym:
		b.WriteString(n.text)
	case kindStr:
		b.WriteByte('"')
		b.WriteString(escape(n.text))
		b.WriteByte('"')
	case kindList:
		writeList(b, n, depth)
	}
}

func writeList(b *strings.Builder, n *Node, depth int) {
	nested := false
	for _, c := range n.children {
		if c.kind == kindList {
			nested = true
			break
		}
	}

	b.WriteByte('(')
	if !nested {
		for i, c := range n.children {
			if i > 0 {
				b.WriteByte(' ')
			}
			writeNode(b, c, depth)
		}
		b.WriteByte(')')
		return
	}

	// Atoms share the head line; each list child opens a new line.
	onHead := true
	for i, c := range n.children {
		if c.kind == kindList {
			b.WriteByte('\n')
			b.WriteString(strings.Repeat("  ", depth+1))
			writeNode(b, c, depth+1)
			onHead = false
			continue
		}
		if i > 0 && onHead {
			b.WriteByte(' ')
		} else if !onHead {
			b.WriteByte('\n')
			b.WriteString(strings.Repeat("  ", depth+1))
			onHead = false
		}
		writeNode(b, c, depth)
	}
	b.WriteByte('\n')
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteByte(')')
}

func escape(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
