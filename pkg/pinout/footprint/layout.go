// Package footprint computes the physical land pattern for a component: pad
// placement, silkscreen, fabrication and courtyard outlines, and the text
// anchors, all centered on the package origin in y-down board coordinates.
package footprint

import (
	"github.com/OpenTraceLab/OpenTraceLibGen/pkg/pinout"
	"github.com/OpenTraceLab/OpenTraceLibGen/pkg/pinout/geom"
	"github.com/OpenTraceLab/OpenTraceLibGen/pkg/pinout/topology"
)

// Layout constants. Strokes follow the KiCad library convention values;
// the courtyard clearance is fixed at 0.25 mm on every side.
const (
	CourtyardClearance = 0.25
	SilkClearance      = 0.2
	Pin1MarkRadius     = 0.15
	SilkStroke         = 0.12
	FabStroke          = 0.1
	CourtyardStroke    = 0.05
	refTextOffset      = 1.0
)

// Pad is one resolved copper pad.
type Pad struct {
	Number   string
	At       geom.Position
	Size     geom.Size
	Rotation float64 // degrees; 90 turns the pad for top/bottom edges
	Shape    pinout.PadShape
	Type     pinout.PadType
	Drill    float64 // 0 for SMD
	Pin1     bool    // carries the silkscreen pin-1 marker
	Thermal  bool    // reserved-designator exposed pad
}

// bbox returns the pad's axis-aligned extent, accounting for rotation.
func (p Pad) bbox() geom.BoundingBox {
	size := p.Size
	if p.Rotation == 90 || p.Rotation == 270 {
		size = geom.Size{Width: size.Height, Height: size.Width}
	}
	return geom.Rect{Center: p.At, Size: size}.BBox()
}

// Plan is the complete footprint layout, a pure function of
// (pins, spec, topology plan).
type Plan struct {
	Pads      []Pad
	Body      geom.BoundingBox // fabrication outline, nominal body size
	Silk      []geom.Line      // silkscreen segments, clear of all pads
	Pin1Mark  geom.Position    // silkscreen dot center
	Courtyard geom.BoundingBox
	RefText   geom.Position
	ValueText geom.Position
	SMD       bool // footprint attribute for the serializer
}

// Layout places every pad and derives the outline set.
//
// Pad centers sit half the row spacing from the package center on the axis
// perpendicular to their edge, and at (index - center) * pitch along it.
// Overlapping pad extents are a caller configuration error and surface as a
// GeometryConflictError naming the offending pair.
func Layout(pins []pinout.Pin, spec pinout.PackageSpec, plan *topology.Plan) (*Plan, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	var pads []Pad
	if plan.Family == topology.FamilyGrid {
		pads = gridPads(plan, spec)
	} else {
		pads = edgePads(plan, spec)
	}

	if len(pads) > 0 && len(plan.Places) > 0 {
		markPin1(pads, plan.Places[0].Pin.Number)
	}

	if spec.ThermalPad {
		pads = append(pads, Pad{
			Number: topology.ThermalDesignator,
			At:     geom.Position{},
			Size: geom.Size{
				Width:  geom.Round(spec.ThermalPadWidth),
				Height: geom.Round(spec.ThermalPadHeight),
			},
			Shape:   pinout.ShapeRect,
			Type:    pinout.PadSMD, // exposed pads are always surface mount
			Thermal: true,
		})
	}

	if a, b, ok := findOverlap(pads); ok {
		return nil, &pinout.GeometryConflictError{PinA: a, PinB: b}
	}

	body := geom.BoundingBox{
		Min: geom.Position{X: -spec.BodyWidth / 2, Y: -spec.BodyHeight / 2},
		Max: geom.Position{X: spec.BodyWidth / 2, Y: spec.BodyHeight / 2},
	}.Round()

	extent := body
	for _, p := range pads {
		extent.ExpandBox(p.bbox())
	}
	courtyard := extent.Inflate(CourtyardClearance).Round()

	out := &Plan{
		Pads:      pads,
		Body:      body,
		Silk:      silkscreen(body, pads),
		Pin1Mark:  pin1Mark(pads, body),
		Courtyard: courtyard,
		RefText:   geom.Position{X: 0, Y: courtyard.Min.Y - refTextOffset}.Round(),
		ValueText: geom.Position{X: 0, Y: courtyard.Max.Y + refTextOffset}.Round(),
		SMD:       spec.PadType == pinout.PadSMD,
	}
	return out, nil
}

// edgePads places dual-row, quad, and manually-sided pins along the package
// edges. The pad's long axis (PadHeight) always points outward from the
// body: left/right pads turn 90 degrees, top/bottom pads keep rotation 0.
func edgePads(plan *topology.Plan, spec pinout.PackageSpec) []Pad {
	offset := spec.RowSpacing / 2
	padSize := geom.Size{Width: spec.PadWidth, Height: spec.PadHeight}.Round()

	pads := make([]Pad, 0, len(plan.Places))
	for _, side := range pinout.ValidSides {
		places := plan.SidePlaces(side)
		if len(places) == 0 {
			continue
		}
		center := float64(len(places)-1) / 2
		for _, pl := range places {
			along := (float64(pl.Index) - center) * spec.PinPitch
			pad := Pad{
				Number: pl.Pin.Number,
				Size:   padSize,
				Shape:  spec.PadShape,
				Type:   spec.PadType,
				Drill:  spec.DrillSize,
			}
			switch side {
			case pinout.SideLeft:
				pad.At = geom.Position{X: -offset, Y: along}
				pad.Rotation = 90
			case pinout.SideRight:
				pad.At = geom.Position{X: offset, Y: along}
				pad.Rotation = 90
			case pinout.SideTop:
				pad.At = geom.Position{X: along, Y: -offset}
			case pinout.SideBottom:
				pad.At = geom.Position{X: along, Y: offset}
			}
			pad.At = pad.At.Round()
			pads = append(pads, pad)
		}
	}
	return pads
}

// gridPads places grid-array balls directly from their resolved row/column
// cell. The whole grid is centered on the package origin, so A1 sits at
// negative x/y rather than at the origin itself; depopulated cells simply
// have no pad. See DESIGN.md for the convention choice.
func gridPads(plan *topology.Plan, spec pinout.PackageSpec) []Pad {
	colCenter := float64(plan.Cols-1) / 2
	rowCenter := float64(plan.Rows-1) / 2
	padSize := geom.Size{Width: spec.PadWidth, Height: spec.PadHeight}.Round()

	pads := make([]Pad, 0, len(plan.Places))
	for _, pl := range plan.Places {
		pads = append(pads, Pad{
			Number: pl.Pin.Number,
			At: geom.Position{
				X: (float64(pl.Col) - colCenter) * spec.PinPitch,
				Y: (float64(pl.Row) - rowCenter) * spec.PinPitch,
			}.Round(),
			Size:  padSize,
			Shape: spec.PadShape,
			Type:  spec.PadType,
			Drill: spec.DrillSize,
		})
	}
	return pads
}

func markPin1(pads []Pad, number string) {
	for i := range pads {
		if pads[i].Number == number {
			pads[i].Pin1 = true
			return
		}
	}
}

// findOverlap reports the first pair of pads whose extents intersect.
func findOverlap(pads []Pad) (string, string, bool) {
	for i := 0; i < len(pads); i++ {
		for j := i + 1; j < len(pads); j++ {
			if pads[i].bbox().Intersects(pads[j].bbox()) {
				return pads[i].Number, pads[j].Number, true
			}
		}
	}
	return "", "", false
}
