// Package topology maps a pin list onto the physical arrangement pattern of
// its package family.
//
// Families form a closed set: dual-row (DIP/SOIC/SSOP/SOP/TSSOP/SOT/DFN),
// quad four-side (QFP/TQFP/LQFP/QFN), alphanumeric grid (BGA), and manual
// (everything the caller placed by hand). Adding a package type is one entry
// in the family table plus, at most, one new resolver.
package topology

import (
	"sort"

	"github.com/OpenTraceLab/OpenTraceLibGen/pkg/pinout"
)

// Family is the physical arrangement pattern of a package.
type Family string

const (
	FamilyDualRow Family = "dual_row"
	FamilyQuad    Family = "quad"
	FamilyGrid    Family = "grid"
	FamilyManual  Family = "manual"
)

// familyOf is the single dispatch table from package type to family.
var familyOf = map[pinout.PackageType]Family{
	pinout.PkgDIP:   FamilyDualRow,
	pinout.PkgSOIC:  FamilyDualRow,
	pinout.PkgSSOP:  FamilyDualRow,
	pinout.PkgSOP:   FamilyDualRow,
	pinout.PkgTSSOP: FamilyDualRow,
	pinout.PkgSOT:   FamilyDualRow,
	pinout.PkgDFN:   FamilyDualRow,
	pinout.PkgQFP:   FamilyQuad,
	pinout.PkgTQFP:  FamilyQuad,
	pinout.PkgLQFP:  FamilyQuad,
	pinout.PkgQFN:   FamilyQuad,
	pinout.PkgBGA:   FamilyGrid,
	pinout.PkgOther: FamilyManual,
}

// FamilyOf returns the topology family for a package type. Unknown types
// fall back to manual placement.
func FamilyOf(t pinout.PackageType) Family {
	if f, ok := familyOf[t]; ok {
		return f
	}
	return FamilyManual
}

// Place is one pin's resolved physical slot.
//
// Side and Index describe the edge and the 0-based order along it in canonical
// drawing direction (top-to-bottom for left/right edges, left-to-right for
// top/bottom edges). Row and Col are set for grid packages only.
type Place struct {
	Pin   pinout.Pin
	Side  pinout.Side
	Index int
	Row   int
	Col   int
}

// Plan is the resolved topology for one component. It is derived data:
// recomputed from (pins, spec) on every run and never mutated.
type Plan struct {
	Family  Family
	Places  []Place // input order
	PerSide map[pinout.Side]int
	Rows    int // grid extent, FamilyGrid only
	Cols    int
}

// SidePlaces returns the places on one side ordered by Index.
func (p *Plan) SidePlaces(side pinout.Side) []Place {
	var out []Place
	for _, pl := range p.Places {
		if pl.Side == side {
			out = append(out, pl)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out
}

// ThermalDesignator is the reserved pad number for an exposed thermal pad.
// It never collides with real pins: the resolver rejects a user pin carrying
// it on a thermal-pad package.
const ThermalDesignator = "EP"

// Resolve maps the pin list onto the package's physical arrangement.
func Resolve(pins []pinout.Pin, spec pinout.PackageSpec) (*Plan, error) {
	if len(pins) == 0 {
		return nil, &pinout.InvalidTopologyError{
			PackageType: spec.PackageType,
			Reason:      "no pins",
		}
	}
	if dup := duplicateNumbers(pins); len(dup) > 0 {
		return nil, &pinout.InvalidTopologyError{
			PackageType: spec.PackageType,
			Reason:      "duplicate pin numbers",
			Pins:        dup,
		}
	}
	if spec.ThermalPad {
		for _, p := range pins {
			if p.Number == ThermalDesignator {
				return nil, &pinout.InvalidTopologyError{
					PackageType: spec.PackageType,
					Reason:      "pin number collides with the reserved thermal pad designator",
					Pins:        []string{p.Number},
				}
			}
		}
	}

	switch FamilyOf(spec.PackageType) {
	case FamilyDualRow:
		return resolveDualRow(pins, spec)
	case FamilyQuad:
		return resolveQuad(pins, spec)
	case FamilyGrid:
		return resolveGrid(pins, spec)
	default:
		return resolveManual(pins), nil
	}
}

// resolveDualRow splits the pins into two equal halves: the first half runs
// down the left edge, the second half back up the right edge, the standard
// counter-clockwise convention with pin 1 at top-left. Odd pin counts are
// accepted only when the caller placed every pin explicitly.
func resolveDualRow(pins []pinout.Pin, spec pinout.PackageSpec) (*Plan, error) {
	if len(pins)%2 != 0 {
		if pinout.HasExplicitSides(pins) {
			plan := resolveManual(pins)
			plan.Family = FamilyDualRow
			return plan, nil
		}
		return nil, &pinout.InvalidTopologyError{
			PackageType: spec.PackageType,
			Reason:      "odd pin count requires explicit per-pin sides",
		}
	}

	half := len(pins) / 2
	plan := &Plan{Family: FamilyDualRow, PerSide: map[pinout.Side]int{
		pinout.SideLeft: half, pinout.SideRight: half,
	}}
	for i, p := range pins {
		pl := Place{Pin: p}
		if i < half {
			pl.Side = pinout.SideLeft
			pl.Index = i
		} else {
			pl.Side = pinout.SideRight
			pl.Index = half - 1 - (i - half) // ascends bottom-to-top
		}
		plan.Places = append(plan.Places, pl)
	}
	return plan, nil
}

// quadSides is the counter-clockwise edge order starting at the reference
// edge that carries pin 1 (top-left corner, running down the left side).
var quadSides = []pinout.Side{pinout.SideLeft, pinout.SideBottom, pinout.SideRight, pinout.SideTop}

// resolveQuad distributes pins across four edges counter-clockwise from
// pin 1 on the left edge. The count must divide evenly across the sides.
func resolveQuad(pins []pinout.Pin, spec pinout.PackageSpec) (*Plan, error) {
	if len(pins)%4 != 0 {
		return nil, &pinout.InvalidTopologyError{
			PackageType: spec.PackageType,
			Reason:      "pin count not divisible by 4",
		}
	}

	perSide := len(pins) / 4
	plan := &Plan{Family: FamilyQuad, PerSide: map[pinout.Side]int{}}
	for i, p := range pins {
		side := quadSides[i/perSide]
		j := i % perSide
		pl := Place{Pin: p, Side: side}
		switch side {
		case pinout.SideLeft: // top to bottom
			pl.Index = j
		case pinout.SideBottom: // left to right
			pl.Index = j
		case pinout.SideRight: // bottom to top
			pl.Index = perSide - 1 - j
		case pinout.SideTop: // right to left
			pl.Index = perSide - 1 - j
		}
		plan.Places = append(plan.Places, pl)
		plan.PerSide[side]++
	}
	return plan, nil
}

// resolveGrid parses every pin number as <row letters><column digits> and
// records its grid cell. Row letters skip I and O per the usual grid-array
// convention; columns are 1-based in the designator.
func resolveGrid(pins []pinout.Pin, spec pinout.PackageSpec) (*Plan, error) {
	plan := &Plan{Family: FamilyGrid, PerSide: map[pinout.Side]int{}}
	for _, p := range pins {
		row, col, err := ParseGridDesignator(p.Number)
		if err != nil {
			return nil, &pinout.InvalidTopologyError{
				PackageType: spec.PackageType,
				Reason:      "pin number is not a grid designator: " + err.Error(),
				Pins:        []string{p.Number},
			}
		}
		plan.Places = append(plan.Places, Place{Pin: p, Row: row, Col: col})
		if row+1 > plan.Rows {
			plan.Rows = row + 1
		}
		if col+1 > plan.Cols {
			plan.Cols = col + 1
		}
	}
	return plan, nil
}

// resolveManual keeps the caller's declared side and position untouched,
// ranking pins within each side by position with ties broken by input order.
func resolveManual(pins []pinout.Pin) *Plan {
	plan := &Plan{Family: FamilyManual, PerSide: map[pinout.Side]int{}}

	type slot struct {
		at  int // input order
		pos int
	}
	bySide := map[pinout.Side][]slot{}
	for i, p := range pins {
		side := p.Side
		if side == "" {
			side = pinout.SideLeft
		}
		bySide[side] = append(bySide[side], slot{at: i, pos: p.Position})
	}

	index := make([]int, len(pins))
	sides := make([]pinout.Side, len(pins))
	for side, slots := range bySide {
		sort.SliceStable(slots, func(i, j int) bool { return slots[i].pos < slots[j].pos })
		for rank, s := range slots {
			index[s.at] = rank
			sides[s.at] = side
		}
		plan.PerSide[side] = len(slots)
	}
	for i, p := range pins {
		plan.Places = append(plan.Places, Place{Pin: p, Side: sides[i], Index: index[i]})
	}
	return plan
}

// ApplySides mirrors the resolved physical sides back onto the pin list so
// the schematic symbol agrees with the footprint. Pins are left untouched
// when the caller already placed them explicitly, or when the plan carries
// no side information worth mirroring (manual plans).
//
// Grid plans have no edges; their pins are split row-major into a left and a
// right half, the usual presentation for grid arrays.
func ApplySides(pins []pinout.Pin, plan *Plan) []pinout.Pin {
	if pinout.HasExplicitSides(pins) || plan.Family == FamilyManual {
		return pins
	}

	out := make([]pinout.Pin, len(pins))
	copy(out, pins)

	if plan.Family == FamilyGrid {
		ordered := make([]int, len(plan.Places))
		for i := range ordered {
			ordered[i] = i
		}
		sort.SliceStable(ordered, func(a, b int) bool {
			pa, pb := plan.Places[ordered[a]], plan.Places[ordered[b]]
			if pa.Row != pb.Row {
				return pa.Row < pb.Row
			}
			return pa.Col < pb.Col
		})
		half := (len(ordered) + 1) / 2
		for rank, idx := range ordered {
			if rank < half {
				out[idx].Side = pinout.SideLeft
				out[idx].Position = rank
			} else {
				out[idx].Side = pinout.SideRight
				out[idx].Position = rank - half
			}
		}
		return out
	}

	for i, pl := range plan.Places {
		out[i].Side = pl.Side
		out[i].Position = pl.Index
	}
	return out
}

func duplicateNumbers(pins []pinout.Pin) []string {
	seen := map[string]bool{}
	var dup []string
	for _, p := range pins {
		if seen[p.Number] {
			dup = append(dup, p.Number)
		}
		seen[p.Number] = true
	}
	return dup
}
