package review

import (
	"slices"

	"github.com/OpenTraceLab/OpenTraceLibGen/pkg/pinout"
)

// Edit operations return fresh slices so the model can keep the
// original list around for cancel.

var sideOrder = []pinout.Side{
	pinout.SideLeft, pinout.SideRight, pinout.SideTop, pinout.SideBottom,
}

var typeOrder = []pinout.ElectricalType{
	pinout.TypeInput, pinout.TypeOutput, pinout.TypeBidirectional,
	pinout.TypeTriState, pinout.TypePassive, pinout.TypePowerIn,
	pinout.TypePowerOut, pinout.TypeOpenCollector, pinout.TypeOpenEmitter,
	pinout.TypeFree, pinout.TypeUnspecified, pinout.TypeNoConnect,
}

// CycleSide advances the side of pin i to the next value in drawing order.
func CycleSide(pins []pinout.Pin, i int) []pinout.Pin {
	if i < 0 || i >= len(pins) {
		return pins
	}
	out := slices.Clone(pins)
	cur := slices.Index(sideOrder, out[i].Side)
	out[i].Side = sideOrder[(cur+1)%len(sideOrder)]
	return out
}

// CycleType advances the electrical type of pin i.
func CycleType(pins []pinout.Pin, i int) []pinout.Pin {
	if i < 0 || i >= len(pins) {
		return pins
	}
	out := slices.Clone(pins)
	cur := slices.Index(typeOrder, out[i].Type)
	out[i].Type = typeOrder[(cur+1)%len(typeOrder)]
	return out
}

// Rename replaces the name of pin i.
func Rename(pins []pinout.Pin, i int, name string) []pinout.Pin {
	if i < 0 || i >= len(pins) || name == "" {
		return pins
	}
	out := slices.Clone(pins)
	out[i].Name = name
	return out
}

// SetPosition replaces the within-side position of pin i.
func SetPosition(pins []pinout.Pin, i, pos int) []pinout.Pin {
	if i < 0 || i >= len(pins) || pos < 0 {
		return pins
	}
	out := slices.Clone(pins)
	out[i].Position = pos
	return out
}

// Delete removes pin i.
func Delete(pins []pinout.Pin, i int) []pinout.Pin {
	if i < 0 || i >= len(pins) {
		return pins
	}
	return slices.Delete(slices.Clone(pins), i, i+1)
}

// Insert adds a new pin after index i with the given designator. The new
// pin inherits the side of its neighbor.
func Insert(pins []pinout.Pin, i int, number string) []pinout.Pin {
	if number == "" {
		return pins
	}
	p := pinout.Pin{Number: number, Name: number, Type: pinout.TypeUnspecified}
	if i >= 0 && i < len(pins) {
		p.Side = pins[i].Side
	}
	at := min(i+1, len(pins))
	if at < 0 {
		at = 0
	}
	return slices.Insert(slices.Clone(pins), at, p)
}
