// Package geom provides the 2D primitives and the rounding policy shared by
// the layout engines and the document serializer.
//
// Coordinates follow the KiCad board convention: X grows to the right and Y
// grows downward, both in millimeters. Symbol layout inverts Y at the edge
// (schematic Y grows upward); everything in between stays in one convention.
package geom

import (
	"math"
	"strconv"
)

// Precision is the smallest representable increment for emitted values, in mm.
// Every coordinate or dimension is snapped to this grid exactly once, at the
// point it enters a plan, so the same quantity resolves to the same text in
// every document that mentions it.
const Precision = 1e-4

// Round snaps a value to the Precision grid, half away from zero.
func Round(v float64) float64 {
	return math.Round(v/Precision) * Precision
}

// FormatMM renders a value with exactly four decimal places.
// Fixed-width output keeps regeneration byte-identical.
func FormatMM(v float64) string {
	// Normalize negative zero so -0.0000 never appears in output.
	r := Round(v)
	if r == 0 {
		r = 0
	}
	return strconv.FormatFloat(r, 'f', 4, 64)
}

// Position is a 2D point in mm.
type Position struct {
	X float64
	Y float64
}

// Add returns the position offset by dx, dy.
func (p Position) Add(dx, dy float64) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Round snaps both coordinates to the precision grid.
func (p Position) Round() Position {
	return Position{X: Round(p.X), Y: Round(p.Y)}
}

// Size is a width/height pair in mm.
type Size struct {
	Width  float64
	Height float64
}

// Round snaps both dimensions to the precision grid.
func (s Size) Round() Size {
	return Size{Width: Round(s.Width), Height: Round(s.Height)}
}

// Rect is an axis-aligned rectangle given by its center and size.
type Rect struct {
	Center Position
	Size   Size
}

// BBox returns the rectangle as a bounding box.
func (r Rect) BBox() BoundingBox {
	hw, hh := r.Size.Width/2, r.Size.Height/2
	return BoundingBox{
		Min: Position{X: r.Center.X - hw, Y: r.Center.Y - hh},
		Max: Position{X: r.Center.X + hw, Y: r.Center.Y + hh},
	}
}

// Line is a straight segment between two points.
type Line struct {
	Start Position
	End   Position
}

// BoundingBox represents a rectangular boundary.
type BoundingBox struct {
	Min Position
	Max Position
}

// NewBoundingBox creates an empty bounding box.
func NewBoundingBox() BoundingBox {
	return BoundingBox{
		Min: Position{X: 1e9, Y: 1e9},
		Max: Position{X: -1e9, Y: -1e9},
	}
}

// IsEmpty checks if the bounding box contains no area.
func (bb BoundingBox) IsEmpty() bool {
	return bb.Min.X > bb.Max.X || bb.Min.Y > bb.Max.Y
}

// Intersects checks if two bounding boxes overlap.
func (bb BoundingBox) Intersects(other BoundingBox) bool {
	return bb.Min.X < other.Max.X && bb.Max.X > other.Min.X &&
		bb.Min.Y < other.Max.Y && bb.Max.Y > other.Min.Y
}

// Expand grows the bounding box to include a position.
func (bb *BoundingBox) Expand(pos Position) {
	if pos.X < bb.Min.X {
		bb.Min.X = pos.X
	}
	if pos.Y < bb.Min.Y {
		bb.Min.Y = pos.Y
	}
	if pos.X > bb.Max.X {
		bb.Max.X = pos.X
	}
	if pos.Y > bb.Max.Y {
		bb.Max.Y = pos.Y
	}
}

// ExpandBox grows the bounding box to include another box.
func (bb *BoundingBox) ExpandBox(other BoundingBox) {
	if !other.IsEmpty() {
		bb.Expand(other.Min)
		bb.Expand(other.Max)
	}
}

// Inflate returns the box grown by d on every side.
func (bb BoundingBox) Inflate(d float64) BoundingBox {
	return BoundingBox{
		Min: Position{X: bb.Min.X - d, Y: bb.Min.Y - d},
		Max: Position{X: bb.Max.X + d, Y: bb.Max.Y + d},
	}
}

// Round snaps all four edges to the precision grid.
func (bb BoundingBox) Round() BoundingBox {
	return BoundingBox{Min: bb.Min.Round(), Max: bb.Max.Round()}
}

// Width returns the horizontal extent.
func (bb BoundingBox) Width() float64 {
	return bb.Max.X - bb.Min.X
}

// Height returns the vertical extent.
func (bb BoundingBox) Height() float64 {
	return bb.Max.Y - bb.Min.Y
}

// Center returns the center point.
func (bb BoundingBox) Center() Position {
	return Position{
		X: (bb.Min.X + bb.Max.X) / 2.0,
		Y: (bb.Min.Y + bb.Max.Y) / 2.0,
	}
}
