package pinlist

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/OpenTraceLab/OpenTraceLibGen/pkg/pinout"
)

// The pinlist text format, one directive per line:
//
//	component "LM358"
//	package soic
//	pin 1 OUT1 left output
//	pin 2 IN1- left input 2
//	# comment
//
// Side, type, and position are optional and default the same way the JSON
// loader defaults them.

var pinlistLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "String", Pattern: `"(\\"|[^"])*"`},
	{Name: "Int", Pattern: `\d+`},
	{Name: "Ident", Pattern: `[A-Za-z0-9_+\-./~]+`},
	{Name: "EOL", Pattern: `\r?\n`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
})

type dslFile struct {
	Lines []*dslLine `(@@ | EOL)*`
}

type dslLine struct {
	Component *dslString `  "component" @@ EOL`
	Package   string     `| "package" @Ident EOL`
	Pin       *dslPin    `| @@ EOL`
}

type dslPin struct {
	Number   string     `"pin" @(Int | Ident)`
	Name     *dslString `@@`
	Side     string     `( @("left" | "right" | "top" | "bottom") )?`
	Type     string     `( @Ident )?`
	Position *int       `( @Int )?`
}

// dslString accepts either a bare identifier or a quoted string.
type dslString struct {
	Value string `@String | @(Int | Ident)`
}

func (s *dslString) text() string {
	v := s.Value
	if strings.HasPrefix(v, `"`) && strings.HasSuffix(v, `"`) && len(v) >= 2 {
		v = strings.ReplaceAll(v[1:len(v)-1], `\"`, `"`)
	}
	return v
}

var dslParser = participle.MustBuild[dslFile](
	participle.Lexer(pinlistLexer),
	participle.Elide("Comment", "Whitespace"),
	participle.UseLookahead(2),
)

// LoadDSL reads a pinlist text file.
func LoadDSL(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseDSL(path, string(data))
}

// ParseDSL parses pinlist text. The name is used in error messages only.
func ParseDSL(name, text string) (*Document, error) {
	// The grammar terminates every directive with EOL; guarantee one for
	// files missing the final newline.
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}

	file, err := dslParser.ParseString(name, text)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	doc := &Document{}
	for _, line := range file.Lines {
		switch {
		case line == nil:
		case line.Component != nil:
			doc.ComponentName = line.Component.text()
		case line.Package != "":
			doc.PackageType = strings.ToLower(line.Package)
		case line.Pin != nil:
			p := pinout.Pin{
				Number: line.Pin.Number,
				Name:   line.Pin.Name.text(),
				Side:   pinout.Side(line.Pin.Side),
				Type:   pinout.ElectricalType(line.Pin.Type),
			}
			if line.Pin.Position != nil {
				p.Position = *line.Pin.Position
			}
			doc.Pins = append(doc.Pins, p)
		}
	}
	return doc, nil
}
