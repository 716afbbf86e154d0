// Package symbol arranges schematic pins around a body rectangle.
//
// Placement depends only on each pin's declared side and position; no
// topology inference happens here. Coordinates are schematic millimeters
// with Y growing upward, everything snapped to the 2.54 mm (100 mil) grid.
package symbol

import (
	"math"
	"sort"

	"github.com/OpenTraceLab/OpenTraceLibGen/pkg/pinout"
	"github.com/OpenTraceLab/OpenTraceLibGen/pkg/pinout/geom"
)

const (
	Grid         = 2.54
	PinLength    = 2.54
	PinSpacing   = 2.54
	FontSize     = 1.27
	BodyMinWidth = 10.16
	minBodySpan  = 5.08

	// Rough width of one character of pin name text, used to keep long
	// names inside the body.
	nameCharWidth = FontSize * 0.7
)

// PinLine is one placed schematic pin: its connection point, outward
// orientation, and length.
type PinLine struct {
	Pin    pinout.Pin
	At     geom.Position
	Angle  int // 0 points right (left side), 180 left, 270 down, 90 up
	Length float64
}

// Plan is the full symbol layout for one component.
type Plan struct {
	Pins       []PinLine
	HalfWidth  float64
	HalfHeight float64
	RefPos     geom.Position
	ValuePos   geom.Position
}

// Layout stacks pins along their declared sides around a centered body
// rectangle sized to fit the tallest and widest side group.
func Layout(pins []pinout.Pin) *Plan {
	sides := map[pinout.Side][]pinout.Pin{}
	for _, p := range pins {
		side := p.Side
		if side == "" {
			side = pinout.SideLeft
		}
		sides[side] = append(sides[side], p)
	}
	for side := range sides {
		group := sides[side]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].Position < group[j].Position
		})
	}

	maxVertical := max(len(sides[pinout.SideLeft]), len(sides[pinout.SideRight]), 1)
	maxHorizontal := max(len(sides[pinout.SideTop]), len(sides[pinout.SideBottom]), 1)

	bodyHeight := ceilToGrid(math.Max(float64(maxVertical)*PinSpacing+PinSpacing, minBodySpan))

	maxNameLen := 0
	for _, p := range pins {
		if (p.Side == pinout.SideLeft || p.Side == pinout.SideRight) && len(p.Name) > maxNameLen {
			maxNameLen = len(p.Name)
		}
	}
	nameWidth := math.Max(float64(maxNameLen)*nameCharWidth, BodyMinWidth)
	horizWidth := math.Max(float64(maxHorizontal)*PinSpacing+PinSpacing, minBodySpan)
	bodyWidth := ceilToGrid(math.Max(nameWidth, horizWidth))

	halfW, halfH := bodyWidth/2, bodyHeight/2

	plan := &Plan{HalfWidth: halfW, HalfHeight: halfH}

	for i, p := range sides[pinout.SideLeft] {
		plan.Pins = append(plan.Pins, PinLine{
			Pin:    p,
			At:     geom.Position{X: -halfW - PinLength, Y: halfH - PinSpacing - float64(i)*PinSpacing},
			Angle:  0,
			Length: PinLength,
		})
	}
	for i, p := range sides[pinout.SideRight] {
		plan.Pins = append(plan.Pins, PinLine{
			Pin:    p,
			At:     geom.Position{X: halfW + PinLength, Y: halfH - PinSpacing - float64(i)*PinSpacing},
			Angle:  180,
			Length: PinLength,
		})
	}
	for i, p := range sides[pinout.SideTop] {
		plan.Pins = append(plan.Pins, PinLine{
			Pin:    p,
			At:     geom.Position{X: spanOffset(len(sides[pinout.SideTop]), i), Y: halfH + PinLength},
			Angle:  270,
			Length: PinLength,
		})
	}
	for i, p := range sides[pinout.SideBottom] {
		plan.Pins = append(plan.Pins, PinLine{
			Pin:    p,
			At:     geom.Position{X: spanOffset(len(sides[pinout.SideBottom]), i), Y: -halfH - PinLength},
			Angle:  90,
			Length: PinLength,
		})
	}

	refY := halfH + PinLength + FontSize
	valY := -(halfH + PinLength + FontSize)
	if len(sides[pinout.SideTop]) > 0 {
		refY += Grid
	}
	if len(sides[pinout.SideBottom]) > 0 {
		valY -= Grid
	}
	plan.RefPos = geom.Position{X: 0, Y: refY}.Round()
	plan.ValuePos = geom.Position{X: 0, Y: valY}.Round()

	return plan
}

// spanOffset centers a horizontal pin group around x = 0.
func spanOffset(count, i int) float64 {
	if count <= 1 {
		return 0
	}
	total := float64(count-1) * PinSpacing
	return -total/2 + float64(i)*PinSpacing
}

func ceilToGrid(v float64) float64 {
	return math.Ceil(v/Grid) * Grid
}
