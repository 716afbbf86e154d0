package sexp

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// Parse reads every top-level S-expression from r. Quoted strings keep their
// content unescaped in the node; `#` starts a comment running to end of line.
func Parse(r io.Reader) ([]*Node, error) {
	s := &scanner{r: bufio.NewReader(r)}
	var out []*Node
	for {
		n, err := s.next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
}

// ParseString parses S-expressions from a string.
func ParseString(text string) ([]*Node, error) {
	return Parse(strings.NewReader(text))
}

type scanner struct {
	r *bufio.Reader
}

// next returns the next complete expression, io.EOF at end of input.
func (s *scanner) next() (*Node, error) {
	ch, err := s.skipSpace()
	if err != nil {
		return nil, err
	}

	switch ch {
	case '(':
		s.r.ReadRune()
		return s.list()
	case ')':
		return nil, fmt.Errorf("sexp: unexpected ')'")
	case '"':
		s.r.ReadRune()
		return s.quoted()
	default:
		return s.symbol()
	}
}

func (s *scanner) list() (*Node, error) {
	n := &Node{kind: kindList}
	for {
		ch, err := s.skipSpace()
		if err == io.EOF {
			return nil, fmt.Errorf("sexp: unterminated list")
		}
		if err != nil {
			return nil, err
		}
		if ch == ')' {
			s.r.ReadRune()
			return n, nil
		}
		child, err := s.next()
		if err != nil {
			return nil, err
		}
		n.children = append(n.children, child)
	}
}

func (s *scanner) quoted() (*Node, error) {
	var b strings.Builder
	for {
		ch, _, err := s.r.ReadRune()
		if err != nil {
			return nil, fmt.Errorf("sexp: unterminated string")
		}
		switch ch {
		case '"':
			return &Node{kind: kindStr, text: b.String()}, nil
		case '\\':
			esc, _, err := s.r.ReadRune()
			if err != nil {
				return nil, fmt.Errorf("sexp: unterminated escape")
			}
			switch esc {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			default:
				b.WriteRune(esc)
			}
		default:
			b.WriteRune(ch)
		}
	}
}

func (s *scanner) symbol() (*Node, error) {
	var b strings.Builder
	for {
		ch, _, err := s.r.ReadRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if unicode.IsSpace(ch) || ch == '(' || ch == ')' || ch == '"' {
			s.r.UnreadRune()
			break
		}
		b.WriteRune(ch)
	}
	if b.Len() == 0 {
		return nil, fmt.Errorf("sexp: empty symbol")
	}
	return &Node{kind: kindSym, text: b.String()}, nil
}

// skipSpace consumes whitespace and comments, then peeks the next rune.
func (s *scanner) skipSpace() (rune, error) {
	for {
		ch, _, err := s.r.ReadRune()
		if err != nil {
			return 0, err
		}
		if unicode.IsSpace(ch) {
			continue
		}
		if ch == '#' {
			for {
				c, _, err := s.r.ReadRune()
				if err != nil || c == '\n' {
					break
				}
			}
			continue
		}
		s.r.UnreadRune()
		return ch, nil
	}
}
