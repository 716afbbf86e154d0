package footprint

import (
	"github.com/OpenTraceLab/OpenTraceLibGen/pkg/pinout/geom"
)

// silkscreen draws the body outline on the silk layer, offset outward by
// SilkClearance. Edges crossed by pad rows are split: only the corner
// segments that stay clear of the outermost pads survive, so the printed
// line never runs over copper.
func silkscreen(body geom.BoundingBox, pads []Pad) []geom.Line {
	silk := body.Inflate(SilkClearance)
	var lines []geom.Line

	type edge struct {
		vertical bool
		at       float64 // the fixed coordinate of the edge line
		from, to float64 // span along the edge
	}
	edges := []edge{
		{vertical: true, at: silk.Min.X, from: silk.Min.Y, to: silk.Max.Y},  // left
		{vertical: true, at: silk.Max.X, from: silk.Min.Y, to: silk.Max.Y},  // right
		{vertical: false, at: silk.Min.Y, from: silk.Min.X, to: silk.Max.X}, // top
		{vertical: false, at: silk.Max.Y, from: silk.Min.X, to: silk.Max.X}, // bottom
	}

	for _, e := range edges {
		// Collect the span blocked by pads that the edge line passes through.
		blockedFrom, blockedTo := 0.0, 0.0
		blocked := false
		for _, p := range pads {
			bb := p.bbox().Inflate(SilkClearance)
			var crosses bool
			var lo, hi float64
			if e.vertical {
				crosses = bb.Min.X <= e.at && e.at <= bb.Max.X
				lo, hi = bb.Min.Y, bb.Max.Y
			} else {
				crosses = bb.Min.Y <= e.at && e.at <= bb.Max.Y
				lo, hi = bb.Min.X, bb.Max.X
			}
			if !crosses {
				continue
			}
			if !blocked {
				blockedFrom, blockedTo = lo, hi
				blocked = true
			} else {
				if lo < blockedFrom {
					blockedFrom = lo
				}
				if hi > blockedTo {
					blockedTo = hi
				}
			}
		}

		segs := [][2]float64{{e.from, e.to}}
		if blocked {
			segs = nil
			if blockedFrom > e.from {
				segs = append(segs, [2]float64{e.from, blockedFrom})
			}
			if blockedTo < e.to {
				segs = append(segs, [2]float64{blockedTo, e.to})
			}
		}

		for _, s := range segs {
			if s[1]-s[0] < geom.Precision {
				continue
			}
			var ln geom.Line
			if e.vertical {
				ln = geom.Line{
					Start: geom.Position{X: e.at, Y: s[0]},
					End:   geom.Position{X: e.at, Y: s[1]},
				}
			} else {
				ln = geom.Line{
					Start: geom.Position{X: s[0], Y: e.at},
					End:   geom.Position{X: s[1], Y: e.at},
				}
			}
			ln.Start = ln.Start.Round()
			ln.End = ln.End.Round()
			lines = append(lines, ln)
		}
	}
	return lines
}

// pin1Mark places the silkscreen dot for the pad flagged as pin 1: outside
// the pad, pushed away from the package center, clear of the pad copper.
func pin1Mark(pads []Pad, body geom.BoundingBox) geom.Position {
	for _, p := range pads {
		if !p.Pin1 {
			continue
		}
		bb := p.bbox()
		at := p.At
		// Push the dot outward along the dominant axis of the pad's
		// displacement from the origin; pads on the body interior (grid
		// arrays) mark the nearest body corner instead.
		switch {
		case bb.Min.X < body.Min.X: // left edge
			at = geom.Position{X: bb.Min.X - 2*Pin1MarkRadius, Y: p.At.Y}
		case bb.Max.X > body.Max.X: // right edge
			at = geom.Position{X: bb.Max.X + 2*Pin1MarkRadius, Y: p.At.Y}
		case bb.Min.Y < body.Min.Y: // top edge
			at = geom.Position{X: p.At.X, Y: bb.Min.Y - 2*Pin1MarkRadius}
		case bb.Max.Y > body.Max.Y: // bottom edge
			at = geom.Position{X: p.At.X, Y: bb.Max.Y + 2*Pin1MarkRadius}
		default:
			at = geom.Position{
				X: body.Min.X - SilkClearance - 2*Pin1MarkRadius,
				Y: body.Min.Y - SilkClearance - 2*Pin1MarkRadius,
			}
		}
		return at.Round()
	}
	// No pin-1 pad flagged; park the mark at the top-left body corner.
	return geom.Position{
		X: body.Min.X - SilkClearance - 2*Pin1MarkRadius,
		Y: body.Min.Y - SilkClearance - 2*Pin1MarkRadius,
	}.Round()
}
