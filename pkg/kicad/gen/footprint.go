package gen

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTraceLibGen/pkg/kicad/sexp"
	"github.com/OpenTraceLab/OpenTraceLibGen/pkg/pinout"
	"github.com/OpenTraceLab/OpenTraceLibGen/pkg/pinout/footprint"
	"github.com/OpenTraceLab/OpenTraceLibGen/pkg/pinout/geom"
)

const (
	refFontSize  = 1.0
	refThickness = 0.15
)

// Footprint renders a footprint plan as a complete .kicad_mod document.
func Footprint(plan *footprint.Plan, componentName string) (string, error) {
	name := pinout.SanitizeName(componentName)
	if len(plan.Pads) == 0 {
		return "", &pinout.SerializationError{Reason: "footprint plan has no pads"}
	}
	for _, p := range plan.Pads {
		if !finite(p.At.X, p.At.Y, p.Size.Width, p.Size.Height, p.Drill) {
			return "", &pinout.SerializationError{
				Reason: fmt.Sprintf("pad %q has a non-finite value", p.Number),
			}
		}
		if p.Size.Width <= 0 || p.Size.Height <= 0 {
			return "", &pinout.SerializationError{
				Reason: fmt.Sprintf("pad %q has a non-positive size", p.Number),
			}
		}
	}

	doc := sexp.List("footprint", sexp.Str(name),
		sexp.List("version", sexp.Int(FootprintFormatVersion)),
		sexp.List("generator", sexp.Str(Generator)),
		sexp.List("generator_version", sexp.Str(GeneratorVersion)),
		sexp.List("layer", sexp.Str("F.Cu")),
	)
	if plan.SMD {
		doc.Append(sexp.List("attr", sexp.Sym("smd")))
	} else {
		doc.Append(sexp.List("attr", sexp.Sym("through_hole")))
	}

	doc.Append(textProperty("Reference", "REF**", plan.RefText, "F.SilkS", name+"/ref"))
	doc.Append(textProperty("Value", name, plan.ValueText, "F.Fab", name+"/value"))

	for i, ln := range plan.Silk {
		doc.Append(fpLine(ln, "F.SilkS", footprint.SilkStroke,
			fmt.Sprintf("%s/silk/%d", name, i)))
	}
	doc.Append(sexp.List("fp_circle",
		sexp.List("center", sexp.MM(plan.Pin1Mark.X), sexp.MM(plan.Pin1Mark.Y)),
		sexp.List("end", sexp.MM(plan.Pin1Mark.X+footprint.Pin1MarkRadius), sexp.MM(plan.Pin1Mark.Y)),
		sexp.List("stroke",
			sexp.List("width", sexp.MM(footprint.SilkStroke)),
			sexp.List("type", sexp.Sym("solid")),
		),
		sexp.List("fill", sexp.List("type", sexp.Sym("solid"))),
		sexp.List("layer", sexp.Str("F.SilkS")),
		elementUUID(name+"/pin1mark"),
	))

	for i, ln := range boxLines(plan.Body) {
		doc.Append(fpLine(ln, "F.Fab", footprint.FabStroke,
			fmt.Sprintf("%s/fab/%d", name, i)))
	}
	for i, ln := range boxLines(plan.Courtyard) {
		doc.Append(fpLine(ln, "F.CrtYd", footprint.CourtyardStroke,
			fmt.Sprintf("%s/crtyd/%d", name, i)))
	}

	for _, p := range plan.Pads {
		doc.Append(padNode(p, name))
	}

	return sexp.Format(doc), nil
}

func textProperty(key, value string, at geom.Position, layer, scope string) *sexp.Node {
	return sexp.List("property", sexp.Str(key), sexp.Str(value),
		sexp.List("at", sexp.MM(at.X), sexp.MM(at.Y), sexp.Int(0)),
		sexp.List("layer", sexp.Str(layer)),
		elementUUID(scope),
		sexp.List("effects",
			sexp.List("font",
				sexp.List("size", sexp.MM(refFontSize), sexp.MM(refFontSize)),
				sexp.List("thickness", sexp.MM(refThickness)),
			),
		),
	)
}

func fpLine(ln geom.Line, layer string, stroke float64, scope string) *sexp.Node {
	return sexp.List("fp_line",
		sexp.List("start", sexp.MM(ln.Start.X), sexp.MM(ln.Start.Y)),
		sexp.List("end", sexp.MM(ln.End.X), sexp.MM(ln.End.Y)),
		sexp.List("stroke",
			sexp.List("width", sexp.MM(stroke)),
			sexp.List("type", sexp.Sym("solid")),
		),
		sexp.List("layer", sexp.Str(layer)),
		elementUUID(scope),
	)
}

// boxLines walks a bounding box clockwise from the top-left corner.
func boxLines(bb geom.BoundingBox) []geom.Line {
	tl := bb.Min
	tr := geom.Position{X: bb.Max.X, Y: bb.Min.Y}
	br := bb.Max
	bl := geom.Position{X: bb.Min.X, Y: bb.Max.Y}
	return []geom.Line{
		{Start: tl, End: tr},
		{Start: tr, End: br},
		{Start: br, End: bl},
		{Start: bl, End: tl},
	}
}

func padNode(p footprint.Pad, name string) *sexp.Node {
	at := sexp.List("at", sexp.MM(p.At.X), sexp.MM(p.At.Y))
	if p.Rotation != 0 {
		at.Append(sexp.Int(int(p.Rotation)))
	}

	n := sexp.List("pad", sexp.Str(p.Number),
		sexp.Sym(string(p.Type)),
		sexp.Sym(string(p.Shape)),
		at,
		sexp.List("size", sexp.MM(p.Size.Width), sexp.MM(p.Size.Height)),
	)
	if p.Type == pinout.PadThruHole {
		n.Append(sexp.List("drill", sexp.MM(p.Drill)))
		n.Append(sexp.List("layers", sexp.Str("*.Cu"), sexp.Str("*.Mask")))
	} else {
		layers := sexp.List("layers", sexp.Str("F.Cu"), sexp.Str("F.Mask"))
		if !p.Thermal {
			// Thermal pads get their paste subdivided by the board tool;
			// regular pads paste 1:1.
			layers = sexp.List("layers", sexp.Str("F.Cu"), sexp.Str("F.Paste"), sexp.Str("F.Mask"))
		}
		n.Append(layers)
	}
	if p.Shape == pinout.ShapeRoundRect {
		n.Append(sexp.List("roundrect_rratio", sexp.MM(0.25)))
	}
	n.Append(elementUUID(name + "/pad/" + p.Number))
	return n
}
