package dimension

import (
	"github.com/planbox/dimlines/pkg/geometry"
	"github.com/planbox/dimlines/pkg/scene"
)

// lineSide tells on which side of the representative box a dimension
// line is placed
type lineSide int

const (
	sideLeft lineSide = iota
	sideRight
)

// dimGroup collects the boxes of one view sharing an exact-equal
// dimension value, in stable input order
type dimGroup struct {
	value   float64
	members []*scene.Box
}

// measurableBoxes filters out child boxes and degenerate geometry
func measurableBoxes(boxes []*scene.Box) []*scene.Box {
	result := make([]*scene.Box, 0, len(boxes))
	for _, b := range boxes {
		if b.IsChild() || b.IsDegenerate() {
			continue
		}
		result = append(result, b)
	}
	return result
}

// groupBoxes buckets boxes by exact-equal dimension value, keeping the
// first-encountered order of both groups and members
func groupBoxes(boxes []*scene.Box, value func(*scene.Box) float64) []dimGroup {
	index := make(map[float64]int)
	groups := make([]dimGroup, 0)
	for _, b := range boxes {
		v := value(b)
		if i, ok := index[v]; ok {
			groups[i].members = append(groups[i].members, b)
		} else {
			index[v] = len(groups)
			groups = append(groups, dimGroup{value: v, members: []*scene.Box{b}})
		}
	}
	return groups
}

// leftmost returns the member with the smallest X position, first
// encountered winning ties
func leftmost(members []*scene.Box) *scene.Box {
	best := members[0]
	for _, b := range members[1:] {
		if b.Position.X < best.Position.X {
			best = b
		}
	}
	return best
}

// rightmost returns the member whose right face is largest, first
// encountered winning ties
func rightmost(members []*scene.Box) *scene.Box {
	best := members[0]
	for _, b := range members[1:] {
		if b.Right() > best.Right() {
			best = b
		}
	}
	return best
}

// lineCollides checks whether the candidate annotation line placed at
// tieBreakOffset left of the box would run through another box. The box
// collides when its X extent covers the line position and it either
// overlaps the measured vertical extent or sits within the depth
// extension band around the candidate.
func lineCollides(candidate *scene.Box, yExtent geometry.Interval, others []*scene.Box) bool {
	lineX := candidate.Position.X - tieBreakOffset
	depthBand := candidate.AxisInterval(geometry.AxisZ).Extend(tieBreakOffset)
	for _, other := range others {
		if other == candidate {
			continue
		}
		if !other.AxisInterval(geometry.AxisX).Contains(lineX) {
			continue
		}
		if other.AxisInterval(geometry.AxisY).Overlaps(yExtent) ||
			other.AxisInterval(geometry.AxisZ).Overlaps(depthBand) {
			return true
		}
	}
	return false
}

// chooseRepresentative picks the box carrying the group's annotation:
// leftmost by default, rightmost when the leftmost line would cross
// another box in the view
func chooseRepresentative(group dimGroup, all []*scene.Box, yExtent func(*scene.Box) geometry.Interval) (*scene.Box, lineSide) {
	rep := leftmost(group.members)
	if lineCollides(rep, yExtent(rep), all) {
		return rightmost(group.members), sideRight
	}
	return rep, sideLeft
}

// lineEdgeX returns the box face X and the dimension line X for a side
func lineEdgeX(b *scene.Box, side lineSide) (edgeX, lineX float64) {
	if side == sideRight {
		return b.Right(), b.Right() + tieBreakOffset
	}
	return b.Position.X, b.Position.X - tieBreakOffset
}

// frontZ returns the Z plane annotations are placed on for a box
func frontZ(b *scene.Box) float64 {
	return b.Position.Z + b.Size.Z
}

// widthMeasurements emits one width annotation per box, without any
// dedup: widths vary per box
func widthMeasurements(boxes []*scene.Box) []Measurement {
	ms := make([]Measurement, 0, len(boxes))
	for _, b := range boxes {
		z := frontZ(b)
		lineY := b.Top() + widthOffset
		ms = append(ms, Measurement{
			ID:    MakeID(KindWidth, b.ID),
			Kind:  KindWidth,
			Axis:  geometry.AxisX,
			Value: b.Size.X,
			Anchors: [2]geometry.Vector3{
				geometry.NewVector3(b.Position.X, b.Top(), z),
				geometry.NewVector3(b.Right(), b.Top(), z),
			},
			Line: [2]geometry.Vector3{
				geometry.NewVector3(b.Position.X, lineY, z),
				geometry.NewVector3(b.Right(), lineY, z),
			},
		})
	}
	return ms
}

// heightMeasurements emits one height annotation per shared height value
func heightMeasurements(boxes []*scene.Box) []Measurement {
	ms := make([]Measurement, 0)
	for _, group := range groupBoxes(boxes, func(b *scene.Box) float64 { return b.Size.Y }) {
		rep, side := chooseRepresentative(group, boxes, func(b *scene.Box) geometry.Interval {
			return b.AxisInterval(geometry.AxisY)
		})
		edgeX, lineX := lineEdgeX(rep, side)
		z := frontZ(rep)
		ms = append(ms, Measurement{
			ID:    MakeID(KindHeight, rep.ID),
			Kind:  KindHeight,
			Axis:  geometry.AxisY,
			Value: rep.Size.Y,
			Anchors: [2]geometry.Vector3{
				geometry.NewVector3(edgeX, rep.Position.Y, z),
				geometry.NewVector3(edgeX, rep.Top(), z),
			},
			Line: [2]geometry.Vector3{
				geometry.NewVector3(lineX, rep.Position.Y, z),
				geometry.NewVector3(lineX, rep.Top(), z),
			},
		})
	}
	return ms
}

// depthMeasurements emits one depth annotation per shared depth value,
// drawn along Z at the representative's top edge
func depthMeasurements(boxes []*scene.Box) []Measurement {
	ms := make([]Measurement, 0)
	for _, group := range groupBoxes(boxes, func(b *scene.Box) float64 { return b.Size.Z }) {
		rep, side := chooseRepresentative(group, boxes, func(b *scene.Box) geometry.Interval {
			return b.AxisInterval(geometry.AxisY)
		})
		edgeX, lineX := lineEdgeX(rep, side)
		top := rep.Top()
		ms = append(ms, Measurement{
			ID:    MakeID(KindDepth, rep.ID),
			Kind:  KindDepth,
			Axis:  geometry.AxisZ,
			Value: rep.Size.Z,
			Anchors: [2]geometry.Vector3{
				geometry.NewVector3(edgeX, top, rep.Position.Z),
				geometry.NewVector3(edgeX, top, rep.Position.Z+rep.Size.Z),
			},
			Line: [2]geometry.Vector3{
				geometry.NewVector3(lineX, top, rep.Position.Z),
				geometry.NewVector3(lineX, top, rep.Position.Z+rep.Size.Z),
			},
		})
	}
	return ms
}

// kickerMeasurements annotates the plinth height of raised base and tall
// units, grouped by vertical position rather than by a size dimension
func kickerMeasurements(boxes []*scene.Box) []Measurement {
	raised := make([]*scene.Box, 0)
	for _, b := range boxes {
		if (b.Type == scene.TypeBase || b.Type == scene.TypeTall) && b.Position.Y > gapEpsilon {
			raised = append(raised, b)
		}
	}

	ms := make([]Measurement, 0)
	for _, group := range groupBoxes(raised, func(b *scene.Box) float64 { return b.Position.Y }) {
		rep, side := chooseRepresentative(group, boxes, func(b *scene.Box) geometry.Interval {
			return geometry.Interval{Min: 0, Max: b.Position.Y}
		})
		edgeX, lineX := lineEdgeX(rep, side)
		z := frontZ(rep)
		ms = append(ms, Measurement{
			ID:    MakeID(KindKicker, rep.ID),
			Kind:  KindKicker,
			Axis:  geometry.AxisY,
			Value: rep.Position.Y,
			Anchors: [2]geometry.Vector3{
				geometry.NewVector3(edgeX, 0, z),
				geometry.NewVector3(edgeX, rep.Position.Y, z),
			},
			Line: [2]geometry.Vector3{
				geometry.NewVector3(lineX, 0, z),
				geometry.NewVector3(lineX, rep.Position.Y, z),
			},
		})
	}
	return ms
}
