package symbol

import (
	"fmt"
	"math"
	"testing"

	"github.com/OpenTraceLab/OpenTraceLibGen/pkg/pinout"
)

func sidedPins(left, right int) []pinout.Pin {
	var pins []pinout.Pin
	for i := 0; i < left; i++ {
		pins = append(pins, pinout.Pin{
			Number: fmt.Sprintf("%d", i+1), Name: fmt.Sprintf("L%d", i),
			Side: pinout.SideLeft, Position: i,
		})
	}
	for i := 0; i < right; i++ {
		pins = append(pins, pinout.Pin{
			Number: fmt.Sprintf("%d", left+i+1), Name: fmt.Sprintf("R%d", i),
			Side: pinout.SideRight, Position: i,
		})
	}
	return pins
}

func onGrid(v float64) bool {
	_, frac := math.Modf(math.Abs(v) / Grid)
	return frac < 1e-9 || frac > 1-1e-9
}

func TestLayoutStacksLeftPins(t *testing.T) {
	plan := Layout(sidedPins(4, 4))
	if len(plan.Pins) != 8 {
		t.Fatalf("placed %d pins, want 8", len(plan.Pins))
	}

	var left []PinLine
	for _, pl := range plan.Pins {
		if pl.Angle == 0 {
			left = append(left, pl)
		}
	}
	if len(left) != 4 {
		t.Fatalf("left pin count = %d, want 4", len(left))
	}
	for i, pl := range left {
		if pl.At.X != -plan.HalfWidth-PinLength {
			t.Errorf("left pin %d x = %g, want %g", i, pl.At.X, -plan.HalfWidth-PinLength)
		}
		if i > 0 && left[i-1].At.Y-pl.At.Y != PinSpacing {
			t.Errorf("left pins %d/%d spacing = %g, want %g",
				i-1, i, left[i-1].At.Y-pl.At.Y, PinSpacing)
		}
	}
}

func TestLayoutAngles(t *testing.T) {
	pins := []pinout.Pin{
		{Number: "1", Name: "L", Side: pinout.SideLeft},
		{Number: "2", Name: "R", Side: pinout.SideRight},
		{Number: "3", Name: "T", Side: pinout.SideTop},
		{Number: "4", Name: "B", Side: pinout.SideBottom},
	}
	plan := Layout(pins)
	want := map[string]int{"1": 0, "2": 180, "3": 270, "4": 90}
	for _, pl := range plan.Pins {
		if pl.Angle != want[pl.Pin.Number] {
			t.Errorf("pin %s angle = %d, want %d", pl.Pin.Number, pl.Angle, want[pl.Pin.Number])
		}
	}
}

func TestLayoutBodySizing(t *testing.T) {
	// Eight pins per side: body must be tall enough for nine spacings and
	// still land on the grid.
	plan := Layout(sidedPins(8, 8))
	if 2*plan.HalfHeight < 8*PinSpacing {
		t.Errorf("body height %g cannot fit 8 pins", 2*plan.HalfHeight)
	}
	if !onGrid(2 * plan.HalfHeight) {
		t.Errorf("body height %g off grid", 2*plan.HalfHeight)
	}
	if 2*plan.HalfWidth < BodyMinWidth {
		t.Errorf("body width %g below minimum %g", 2*plan.HalfWidth, BodyMinWidth)
	}
}

func TestLayoutWidensForLongNames(t *testing.T) {
	short := Layout([]pinout.Pin{
		{Number: "1", Name: "A", Side: pinout.SideLeft},
		{Number: "2", Name: "B", Side: pinout.SideRight},
	})
	long := Layout([]pinout.Pin{
		{Number: "1", Name: "VERY_LONG_SIGNAL_NAME_INDEED", Side: pinout.SideLeft},
		{Number: "2", Name: "B", Side: pinout.SideRight},
	})
	if long.HalfWidth <= short.HalfWidth {
		t.Errorf("long names did not widen the body: %g vs %g",
			2*long.HalfWidth, 2*short.HalfWidth)
	}
}

func TestLayoutPositionOrdering(t *testing.T) {
	pins := []pinout.Pin{
		{Number: "1", Name: "THIRD", Side: pinout.SideLeft, Position: 2},
		{Number: "2", Name: "FIRST", Side: pinout.SideLeft, Position: 0},
		{Number: "3", Name: "SECOND", Side: pinout.SideLeft, Position: 1},
	}
	plan := Layout(pins)
	byName := map[string]PinLine{}
	for _, pl := range plan.Pins {
		byName[pl.Pin.Name] = pl
	}
	if !(byName["FIRST"].At.Y > byName["SECOND"].At.Y &&
		byName["SECOND"].At.Y > byName["THIRD"].At.Y) {
		t.Errorf("position ordering broken: FIRST %g SECOND %g THIRD %g",
			byName["FIRST"].At.Y, byName["SECOND"].At.Y, byName["THIRD"].At.Y)
	}
}

func TestLayoutDefaultsToLeft(t *testing.T) {
	plan := Layout([]pinout.Pin{{Number: "1", Name: "X"}})
	if len(plan.Pins) != 1 || plan.Pins[0].Angle != 0 {
		t.Errorf("sideless pin = %+v, want left placement", plan.Pins)
	}
}

func TestLayoutTopBottomCentered(t *testing.T) {
	pins := []pinout.Pin{
		{Number: "1", Name: "T1", Side: pinout.SideTop, Position: 0},
		{Number: "2", Name: "T2", Side: pinout.SideTop, Position: 1},
		{Number: "3", Name: "T3", Side: pinout.SideTop, Position: 2},
	}
	plan := Layout(pins)
	sum := 0.0
	for _, pl := range plan.Pins {
		sum += pl.At.X
	}
	if math.Abs(sum) > 1e-9 {
		t.Errorf("top pin group not centered, x sum = %g", sum)
	}
}

func TestLayoutTextClearsPins(t *testing.T) {
	withTop := Layout([]pinout.Pin{
		{Number: "1", Name: "L", Side: pinout.SideLeft},
		{Number: "2", Name: "T", Side: pinout.SideTop},
	})
	without := Layout([]pinout.Pin{
		{Number: "1", Name: "L", Side: pinout.SideLeft},
		{Number: "2", Name: "R", Side: pinout.SideRight},
	})
	if withTop.RefPos.Y <= without.RefPos.Y {
		t.Errorf("reference text not pushed above top pins: %g vs %g",
			withTop.RefPos.Y, without.RefPos.Y)
	}
}
