package geom

import (
	"math"
	"testing"
)

func TestFormatMM(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.0000"},
		{1.27, "1.2700"},
		{-2.54, "-2.5400"},
		{1.23456, "1.2346"},
		{-0.00001, "0.0000"}, // never -0.0000
		{10.16, "10.1600"},
	}
	for _, tt := range tests {
		if got := FormatMM(tt.in); got != tt.want {
			t.Errorf("FormatMM(%g) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{1.00004, 1.0},
		{1.00007, 1.0001},
		{-1.00007, -1.0001},
		{0.635, 0.635},
		{2.699999999, 2.7},
	}
	for _, tt := range tests {
		if got := Round(tt.in); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Round(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestBoundingBoxIntersects(t *testing.T) {
	a := BoundingBox{Min: Position{0, 0}, Max: Position{2, 2}}
	tests := []struct {
		name string
		b    BoundingBox
		want bool
	}{
		{"overlap", BoundingBox{Min: Position{1, 1}, Max: Position{3, 3}}, true},
		{"contained", BoundingBox{Min: Position{0.5, 0.5}, Max: Position{1.5, 1.5}}, true},
		{"touching edges", BoundingBox{Min: Position{2, 0}, Max: Position{4, 2}}, false},
		{"disjoint", BoundingBox{Min: Position{5, 5}, Max: Position{6, 6}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects() = %v, want %v", got, tt.want)
			}
			if got := tt.b.Intersects(a); got != tt.want {
				t.Errorf("Intersects() not symmetric")
			}
		})
	}
}

func TestBoundingBoxExpand(t *testing.T) {
	bb := NewBoundingBox()
	if !bb.IsEmpty() {
		t.Fatalf("new box not empty")
	}
	bb.Expand(Position{1, 2})
	bb.Expand(Position{-3, 4})
	if bb.Min.X != -3 || bb.Min.Y != 2 || bb.Max.X != 1 || bb.Max.Y != 4 {
		t.Errorf("box = %+v", bb)
	}
	if bb.Width() != 4 || bb.Height() != 2 {
		t.Errorf("extent = %gx%g, want 4x2", bb.Width(), bb.Height())
	}
	if c := bb.Center(); c.X != -1 || c.Y != 3 {
		t.Errorf("center = %+v", c)
	}
}

func TestBoundingBoxInflate(t *testing.T) {
	bb := BoundingBox{Min: Position{-1, -1}, Max: Position{1, 1}}
	got := bb.Inflate(0.25)
	want := BoundingBox{Min: Position{-1.25, -1.25}, Max: Position{1.25, 1.25}}
	if got != want {
		t.Errorf("Inflate() = %+v, want %+v", got, want)
	}
}

func TestRectBBox(t *testing.T) {
	r := Rect{Center: Position{1, -2}, Size: Size{Width: 2, Height: 4}}
	bb := r.BBox()
	want := BoundingBox{Min: Position{0, -4}, Max: Position{2, 0}}
	if bb != want {
		t.Errorf("BBox() = %+v, want %+v", bb, want)
	}
}
