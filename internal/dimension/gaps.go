package dimension

import (
	"math"
	"sort"

	"github.com/planbox/dimlines/pkg/geometry"
	"github.com/planbox/dimlines/pkg/scene"
)

// mergeBands groups boxes whose extents along the given axis overlap
// transitively, e.g. stacked columns for AxisX or shelf rows for AxisY
func mergeBands(boxes []*scene.Box, axis geometry.Axis) [][]*scene.Box {
	if len(boxes) == 0 {
		return nil
	}
	sorted := make([]*scene.Box, len(boxes))
	copy(sorted, boxes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].AxisInterval(axis).Min < sorted[j].AxisInterval(axis).Min
	})

	bands := make([][]*scene.Box, 0)
	band := []*scene.Box{sorted[0]}
	bandMax := sorted[0].AxisInterval(axis).Max
	for _, b := range sorted[1:] {
		iv := b.AxisInterval(axis)
		if iv.Min < bandMax {
			band = append(band, b)
			bandMax = math.Max(bandMax, iv.Max)
		} else {
			bands = append(bands, band)
			band = []*scene.Box{b}
			bandMax = iv.Max
		}
	}
	return append(bands, band)
}

func isLowerUnit(t scene.BoxType) bool {
	return t == scene.TypeBase || t == scene.TypeTall
}

// topBoxCenterX returns the horizontal center of the X union of all top
// boxes within a band
func topBoxCenterX(band []*scene.Box) (float64, bool) {
	var union geometry.Interval
	found := false
	for _, b := range band {
		if b.Type != scene.TypeTop {
			continue
		}
		iv := b.AxisInterval(geometry.AxisX)
		if !found {
			union = iv
			found = true
		} else {
			union.Min = math.Min(union.Min, iv.Min)
			union.Max = math.Max(union.Max, iv.Max)
		}
	}
	return union.Center(), found
}

// pairFrontZ returns the Z plane a gap annotation between two boxes is
// placed on
func pairFrontZ(a, b *scene.Box) float64 {
	return math.Max(frontZ(a), frontZ(b))
}

// verticalGaps reports the vertical empty spaces of one view worth
// annotating: base/tall units below top units, plus top/tall top-edge
// mismatches. Gaps at or below epsilon are never reported.
func verticalGaps(viewID string, boxes []*scene.Box) []Measurement {
	ms := make([]Measurement, 0)
	seen := make(map[[2]float64]bool)
	index := 0

	emit := func(anchorX, lowAnchorX, highAnchorX, low, high, z float64) {
		key := [2]float64{low, high}
		if seen[key] {
			return
		}
		seen[key] = true
		ms = append(ms, Measurement{
			ID:    MakeGapID(KindGapVertical, viewID, index),
			Kind:  KindGapVertical,
			Axis:  geometry.AxisY,
			Value: high - low,
			Anchors: [2]geometry.Vector3{
				geometry.NewVector3(lowAnchorX, low, z),
				geometry.NewVector3(highAnchorX, high, z),
			},
			Line: [2]geometry.Vector3{
				geometry.NewVector3(anchorX, low, z),
				geometry.NewVector3(anchorX, high, z),
			},
		})
		index++
	}

	// Band scan: adjacent base/tall under top pairs within each column
	for _, band := range mergeBands(boxes, geometry.AxisX) {
		byY := make([]*scene.Box, len(band))
		copy(byY, band)
		sort.SliceStable(byY, func(i, j int) bool {
			return byY[i].Position.Y < byY[j].Position.Y
		})
		for i := 0; i < len(byY)-1; i++ {
			lower, upper := byY[i], byY[i+1]
			if !isLowerUnit(lower.Type) || upper.Type != scene.TypeTop {
				continue
			}
			gap := upper.Position.Y - lower.Top()
			if gap <= gapEpsilon {
				continue
			}
			anchorX, ok := topBoxCenterX(band)
			if !ok {
				anchorX = upper.AxisInterval(geometry.AxisX).Center()
			}
			emit(anchorX,
				lower.AxisInterval(geometry.AxisX).Center(),
				upper.AxisInterval(geometry.AxisX).Center(),
				lower.Top(), upper.Position.Y, pairFrontZ(lower, upper))
		}
	}

	// Pairwise scan: every base/tall and top pair in the view, ignoring
	// band membership
	for _, lower := range boxes {
		if !isLowerUnit(lower.Type) {
			continue
		}
		for _, upper := range boxes {
			if upper.Type != scene.TypeTop {
				continue
			}
			gap := upper.Position.Y - lower.Top()
			if gap <= gapEpsilon {
				continue
			}
			anchorX := upper.AxisInterval(geometry.AxisX).Center()
			emit(anchorX,
				lower.AxisInterval(geometry.AxisX).Center(),
				anchorX,
				lower.Top(), upper.Position.Y, pairFrontZ(lower, upper))
		}
	}

	// Top-edge mismatches between top and tall units, regardless of
	// horizontal overlap
	for _, top := range boxes {
		if top.Type != scene.TypeTop {
			continue
		}
		for _, tall := range boxes {
			if tall.Type != scene.TypeTall {
				continue
			}
			low := math.Min(top.Top(), tall.Top())
			high := math.Max(top.Top(), tall.Top())
			if high-low <= gapEpsilon {
				continue
			}
			anchorX := (top.AxisInterval(geometry.AxisX).Center() +
				tall.AxisInterval(geometry.AxisX).Center()) / 2.0
			emit(anchorX, anchorX, anchorX, low, high, pairFrontZ(top, tall))
		}
	}

	return ms
}

// horizontalGaps reports the horizontal empty spaces between neighboring
// boxes of one view. The callout is anchored vertically by type pair so
// it never crosses a taller neighbor's face.
func horizontalGaps(viewID string, boxes []*scene.Box) []Measurement {
	ms := make([]Measurement, 0)
	index := 0

	for _, band := range mergeBands(boxes, geometry.AxisY) {
		byX := make([]*scene.Box, len(band))
		copy(byX, band)
		sort.SliceStable(byX, func(i, j int) bool {
			return byX[i].Position.X < byX[j].Position.X
		})

		// Highest base top edge in the band, for base-base anchoring
		maxBaseTop := 0.0
		for _, b := range band {
			if b.Type == scene.TypeBase && b.Top() > maxBaseTop {
				maxBaseTop = b.Top()
			}
		}

		for i := 0; i < len(byX)-1; i++ {
			left, right := byX[i], byX[i+1]
			gap := right.Position.X - left.Right()
			if gap <= gapEpsilon {
				continue
			}
			// A base next to a top unit is vertical clearance, not a
			// horizontal gap
			if (left.Type == scene.TypeBase && right.Type == scene.TypeTop) ||
				(left.Type == scene.TypeTop && right.Type == scene.TypeBase) {
				continue
			}

			pairMaxTop := math.Max(left.Top(), right.Top())
			lineY := pairMaxTop
			if left.Type == scene.TypeBase && right.Type == scene.TypeBase {
				lineY = maxBaseTop
			}

			// Extension lines anchor at each box's own top edge; for a
			// mixed base-tall pair the base side therefore stays on the
			// base box while the span reaches the taller unit's edge
			z := pairFrontZ(left, right)
			ms = append(ms, Measurement{
				ID:    MakeGapID(KindGapHorizontal, viewID, index),
				Kind:  KindGapHorizontal,
				Axis:  geometry.AxisX,
				Value: gap,
				Anchors: [2]geometry.Vector3{
					geometry.NewVector3(left.Right(), left.Top(), z),
					geometry.NewVector3(right.Position.X, right.Top(), z),
				},
				Line: [2]geometry.Vector3{
					geometry.NewVector3(left.Right(), lineY, z),
					geometry.NewVector3(right.Position.X, lineY, z),
				},
			})
			index++
		}
	}
	return ms
}
