package dimension

import (
	"fmt"

	"github.com/planbox/dimlines/pkg/geometry"
)

// arrowSize is the length of a dimension line arrowhead in world units
const arrowSize = 40.0

// Segment represents one renderable line between two world points
type Segment struct {
	Start geometry.Vector3
	End   geometry.Vector3
}

// Arrow represents an arrowhead at a dimension line end, pointing outward
type Arrow struct {
	Tip  geometry.Vector3
	Dir  geometry.Vector3 // outward unit direction
	Size float64
}

// Label represents the measurement value text placed at the dimension
// line midpoint. Vertical labels are rotated along the measured axis.
type Label struct {
	Text     string
	Position geometry.Vector3
	Vertical bool
}

// Group is the complete primitive set of one measurement: two extension
// lines from the measured feature edges to the dimension line plane, the
// arrowed dimension line, and the label
type Group struct {
	ID         ID
	Kind       Kind
	Extensions [2]Segment
	Line       Segment
	Arrows     [2]Arrow
	Label      Label
	Selected   bool
	Hovered    bool
}

// Build turns a measurement descriptor plus its interaction state into a
// renderable primitive group, or nil when the measurement is hidden. All
// positions are nominal plus offset. Build holds no state and is safe to
// re-invoke on every recompute pass.
func Build(m Measurement, state State) *Group {
	if state.Hidden {
		return nil
	}

	start := m.Line[0].Add(state.Offset)
	end := m.Line[1].Add(state.Offset)

	dir := end.Sub(start)
	if length := dir.Length(); length > 0 {
		dir = dir.Mul(1.0 / length)
	}

	mid := start.Add(end).Mul(0.5)

	return &Group{
		ID:   m.ID,
		Kind: m.Kind,
		Extensions: [2]Segment{
			{Start: m.Anchors[0], End: start},
			{Start: m.Anchors[1], End: end},
		},
		Line: Segment{Start: start, End: end},
		Arrows: [2]Arrow{
			{Tip: start, Dir: dir.Mul(-1), Size: arrowSize},
			{Tip: end, Dir: dir, Size: arrowSize},
		},
		Label: Label{
			Text:     fmt.Sprintf("%.0f", m.Value),
			Position: mid,
			Vertical: m.Axis == geometry.AxisY,
		},
	}
}
