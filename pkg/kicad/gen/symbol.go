package gen

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTraceLibGen/pkg/kicad/sexp"
	"github.com/OpenTraceLab/OpenTraceLibGen/pkg/pinout"
	"github.com/OpenTraceLab/OpenTraceLibGen/pkg/pinout/symbol"
)

const (
	pinNameOffset = 1.016
	bodyStroke    = 0.254
)

// Symbol renders a symbol plan as a complete .kicad_sym library document.
// footprintName links the symbol to its land pattern; pass "" for a symbol
// without one.
func Symbol(plan *symbol.Plan, componentName, footprintName string) (string, error) {
	name := pinout.SanitizeName(componentName)
	if len(plan.Pins) == 0 {
		return "", &pinout.SerializationError{Reason: "symbol plan has no pins"}
	}
	for _, pl := range plan.Pins {
		if !finite(pl.At.X, pl.At.Y, pl.Length) {
			return "", &pinout.SerializationError{
				Reason: fmt.Sprintf("pin %q has a non-finite position", pl.Pin.Number),
			}
		}
	}

	footprintLink := ""
	if footprintName != "" {
		footprintLink = Library + ":" + pinout.SanitizeName(footprintName)
	}

	sym := sexp.List("symbol", sexp.Str(name),
		sexp.List("pin_names", sexp.List("offset", sexp.MM(pinNameOffset))),
		sexp.List("exclude_from_sim", sexp.Sym("no")),
		sexp.List("in_bom", sexp.Sym("yes")),
		sexp.List("on_board", sexp.Sym("yes")),
		symbolProperty("Reference", "U", plan.RefPos.X, plan.RefPos.Y, false),
		symbolProperty("Value", name, plan.ValuePos.X, plan.ValuePos.Y, false),
		symbolProperty("Footprint", footprintLink, 0, 0, true),
		symbolProperty("Datasheet", "", 0, 0, true),
		bodyUnit(name, plan),
		pinUnit(name, plan),
	)

	doc := sexp.List("kicad_symbol_lib",
		sexp.List("version", sexp.Int(SymbolFormatVersion)),
		sexp.List("generator", sexp.Str(Generator)),
		sexp.List("generator_version", sexp.Str(GeneratorVersion)),
		sym,
	)
	return sexp.Format(doc), nil
}

func symbolProperty(key, value string, x, y float64, hide bool) *sexp.Node {
	return sexp.List("property", sexp.Str(key), sexp.Str(value),
		sexp.List("at", sexp.MM(x), sexp.MM(y), sexp.Int(0)),
		fontEffects(symbol.FontSize, hide),
	)
}

// bodyUnit is the graphics sub-symbol ("<name>_0_1"): the body rectangle.
func bodyUnit(name string, plan *symbol.Plan) *sexp.Node {
	return sexp.List("symbol", sexp.Str(name+"_0_1"),
		sexp.List("rectangle",
			sexp.List("start", sexp.MM(-plan.HalfWidth), sexp.MM(plan.HalfHeight)),
			sexp.List("end", sexp.MM(plan.HalfWidth), sexp.MM(-plan.HalfHeight)),
			sexp.List("stroke",
				sexp.List("width", sexp.MM(bodyStroke)),
				sexp.List("type", sexp.Sym("default")),
			),
			sexp.List("fill", sexp.List("type", sexp.Sym("background"))),
		),
	)
}

// pinUnit is the pin sub-symbol ("<name>_1_1") with one pin element per pin.
func pinUnit(name string, plan *symbol.Plan) *sexp.Node {
	unit := sexp.List("symbol", sexp.Str(name+"_1_1"))
	for _, pl := range plan.Pins {
		etype := pl.Pin.Type
		if etype == "" {
			etype = pinout.TypeUnspecified
		}
		unit.Append(sexp.List("pin",
			sexp.Sym(string(etype)),
			sexp.Sym("line"),
			sexp.List("at", sexp.MM(pl.At.X), sexp.MM(pl.At.Y), sexp.Int(pl.Angle)),
			sexp.List("length", sexp.MM(pl.Length)),
			sexp.List("name", sexp.Str(pl.Pin.Name), fontEffects(symbol.FontSize, false)),
			sexp.List("number", sexp.Str(pl.Pin.Number), fontEffects(symbol.FontSize, false)),
		))
	}
	return unit
}
