// Package pinout defines the component pin and package data model shared by
// the topology resolver, the layout engines, and the serializers.
//
// All values are immutable once constructed: every conversion run takes a pin
// list and a package spec and derives fresh plans from them, so repeated runs
// over the same inputs produce identical output.
package pinout

import (
	"strings"
)

// Side identifies the edge of the symbol body a pin is drawn on.
type Side string

const (
	SideLeft   Side = "left"
	SideRight  Side = "right"
	SideTop    Side = "top"
	SideBottom Side = "bottom"
)

// ValidSides lists the accepted side values in drawing order.
var ValidSides = []Side{SideLeft, SideRight, SideTop, SideBottom}

// NormalizeSide maps free-form input to a Side, defaulting to left.
func NormalizeSide(s string) Side {
	switch Side(strings.ToLower(strings.TrimSpace(s))) {
	case SideLeft, SideRight, SideTop, SideBottom:
		return Side(strings.ToLower(strings.TrimSpace(s)))
	}
	return SideLeft
}

// ElectricalType is the KiCad electrical class of a pin.
type ElectricalType string

const (
	TypeInput         ElectricalType = "input"
	TypeOutput        ElectricalType = "output"
	TypeBidirectional ElectricalType = "bidirectional"
	TypeTriState      ElectricalType = "tri_state"
	TypePassive       ElectricalType = "passive"
	TypePowerIn       ElectricalType = "power_in"
	TypePowerOut      ElectricalType = "power_out"
	TypeOpenCollector ElectricalType = "open_collector"
	TypeOpenEmitter   ElectricalType = "open_emitter"
	TypeFree          ElectricalType = "free"
	TypeUnspecified   ElectricalType = "unspecified"
	TypeNoConnect     ElectricalType = "no_connect"
)

var validTypes = map[ElectricalType]bool{
	TypeInput: true, TypeOutput: true, TypeBidirectional: true,
	TypeTriState: true, TypePassive: true, TypePowerIn: true,
	TypePowerOut: true, TypeOpenCollector: true, TypeOpenEmitter: true,
	TypeFree: true, TypeUnspecified: true, TypeNoConnect: true,
}

// NormalizeType maps free-form input to an ElectricalType, defaulting to
// unspecified.
func NormalizeType(s string) ElectricalType {
	t := ElectricalType(strings.ToLower(strings.TrimSpace(s)))
	if validTypes[t] {
		return t
	}
	return TypeUnspecified
}

// Pin is one component pin as supplied by the caller.
//
// Number is the pad designator and need not be numeric: grid-array packages
// use designators like "A1". Side and Position describe the visual placement
// on the schematic symbol (Position orders pins within a side; ties keep
// input order).
type Pin struct {
	Number   string
	Name     string
	Side     Side
	Position int
	Type     ElectricalType
}

// HasExplicitSides reports whether every pin carries a usable side/position
// assignment, i.e. at least one pin deviates from the zero-value layout.
// A list where everything sits at (left, 0) is treated as unassigned.
func HasExplicitSides(pins []Pin) bool {
	for _, p := range pins {
		if p.Side != SideLeft && p.Side != "" {
			return true
		}
		if p.Position != 0 {
			return true
		}
	}
	return false
}

// PackageType identifies the physical package family.
type PackageType string

const (
	PkgDIP   PackageType = "dip"
	PkgSOIC  PackageType = "soic"
	PkgSSOP  PackageType = "ssop"
	PkgSOP   PackageType = "sop"
	PkgTSSOP PackageType = "tssop"
	PkgQFP   PackageType = "qfp"
	PkgTQFP  PackageType = "tqfp"
	PkgLQFP  PackageType = "lqfp"
	PkgQFN   PackageType = "qfn"
	PkgDFN   PackageType = "dfn"
	PkgBGA   PackageType = "bga"
	PkgSOT   PackageType = "sot"
	PkgOther PackageType = "other"
)

// PadShape is the copper shape of a pad.
type PadShape string

const (
	ShapeRect      PadShape = "rect"
	ShapeOval      PadShape = "oval"
	ShapeCircle    PadShape = "circle"
	ShapeRoundRect PadShape = "roundrect"
)

// PadType distinguishes surface-mount from through-hole pads.
type PadType string

const (
	PadSMD      PadType = "smd"
	PadThruHole PadType = "thru_hole"
)

// PackageSpec carries the physical parameters of the package. All linear
// dimensions are millimeters.
type PackageSpec struct {
	PackageType      PackageType
	PinPitch         float64
	PadWidth         float64
	PadHeight        float64
	RowSpacing       float64
	BodyWidth        float64
	BodyHeight       float64
	PadShape         PadShape
	PadType          PadType
	DrillSize        float64
	ThermalPad       bool
	ThermalPadWidth  float64
	ThermalPadHeight float64
}

// Validate checks the spec for missing or contradictory dimensions.
func (s PackageSpec) Validate() error {
	check := func(field string, v float64) error {
		if v <= 0 {
			return &InvalidSpecError{Field: field, Reason: "must be > 0"}
		}
		return nil
	}
	if err := check("pin_pitch", s.PinPitch); err != nil {
		return err
	}
	if err := check("pad_width", s.PadWidth); err != nil {
		return err
	}
	if err := check("pad_height", s.PadHeight); err != nil {
		return err
	}
	if err := check("body_width", s.BodyWidth); err != nil {
		return err
	}
	if err := check("body_height", s.BodyHeight); err != nil {
		return err
	}
	switch s.PackageType {
	case PkgBGA:
		// Grid packages have no rows.
	default:
		if err := check("row_spacing", s.RowSpacing); err != nil {
			return err
		}
	}
	switch s.PadType {
	case PadSMD:
		if s.DrillSize != 0 {
			return &InvalidSpecError{Field: "drill_size", Reason: "only valid for thru_hole pads"}
		}
	case PadThruHole:
		if s.DrillSize <= 0 {
			return &InvalidSpecError{Field: "drill_size", Reason: "required for thru_hole pads"}
		}
		if s.DrillSize >= s.PadWidth || s.DrillSize >= s.PadHeight {
			return &InvalidSpecError{Field: "drill_size", Reason: "must be smaller than the pad"}
		}
	default:
		return &InvalidSpecError{Field: "pad_type", Reason: "must be smd or thru_hole"}
	}
	if s.ThermalPad {
		if err := check("thermal_pad_width", s.ThermalPadWidth); err != nil {
			return err
		}
		if err := check("thermal_pad_height", s.ThermalPadHeight); err != nil {
			return err
		}
	}
	return nil
}

// SanitizeName makes a component name safe for use as a KiCad identifier and
// file name.
func SanitizeName(name string) string {
	r := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_")
	out := r.Replace(strings.TrimSpace(name))
	if out == "" {
		out = "Unknown_IC"
	}
	return out
}
