package pinout

import (
	"fmt"
	"strings"
)

// InvalidTopologyError reports pin data that cannot be mapped onto the
// selected package family: odd pin counts on dual-row packages, quad counts
// not divisible across four sides, or grid designators that do not parse.
type InvalidTopologyError struct {
	PackageType PackageType
	Reason      string
	Pins        []string // offending pin numbers, when attributable
}

func (e *InvalidTopologyError) Error() string {
	msg := fmt.Sprintf("invalid topology for %s package: %s", e.PackageType, e.Reason)
	if len(e.Pins) > 0 {
		msg += " (pins " + strings.Join(e.Pins, ", ") + ")"
	}
	return msg
}

// InvalidSpecError reports a missing or contradictory package dimension.
type InvalidSpecError struct {
	Field  string
	Reason string
}

func (e *InvalidSpecError) Error() string {
	return fmt.Sprintf("invalid package spec: %s %s", e.Field, e.Reason)
}

// GeometryConflictError reports two pads whose computed extents overlap.
// The engine never resolves overlaps itself; the caller must adjust pitch or
// pad size and rerun.
type GeometryConflictError struct {
	PinA string
	PinB string
}

func (e *GeometryConflictError) Error() string {
	return fmt.Sprintf("geometry conflict: pads %q and %q overlap; adjust pitch or pad size", e.PinA, e.PinB)
}

// SerializationError reports an internal invariant violated during document
// emission. Seeing one means a programming defect, not bad user data.
type SerializationError struct {
	Reason string
}

func (e *SerializationError) Error() string {
	return "serialization error: " + e.Reason
}
