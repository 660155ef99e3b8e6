package dimension

import (
	"testing"

	"github.com/planbox/dimlines/pkg/geometry"
	"github.com/planbox/dimlines/pkg/scene"
)

func TestSharedHeightGetsOneAnnotation(t *testing.T) {
	boxes := measurableBoxes(kitchenWall())
	heights := heightMeasurements(boxes)

	count := 0
	for _, m := range heights {
		if m.Value == 720 {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected exactly one height annotation for the shared value, got %d", count)
	}
}

func TestHeightRepresentativeIsLeftmost(t *testing.T) {
	boxes := measurableBoxes(kitchenWall())
	heights := heightMeasurements(boxes)

	for _, m := range heights {
		if m.Value == 720 && m.ID != MakeID(KindHeight, "b1") {
			t.Errorf("expected leftmost box b1 as representative, got %q", m.ID)
		}
	}
}

func TestWidthAnnotationsNotDeduplicated(t *testing.T) {
	boxes := measurableBoxes(kitchenWall())
	widths := widthMeasurements(boxes)

	if len(widths) != 4 {
		t.Errorf("expected one width annotation per box (4), got %d", len(widths))
	}
}

func TestChildBoxesExcluded(t *testing.T) {
	door := box("d1", scene.TypeDoor, 0, 0, 560, 600, 700, 20)
	mounted := box("m1", scene.TypeBase, 0, 0, 0, 600, 720, 560)
	mounted.ParentID = "b1"

	boxes := measurableBoxes(append(kitchenWall(), door, mounted))
	if len(boxes) != 4 {
		t.Errorf("expected child boxes to be excluded, got %d measurable", len(boxes))
	}
}

func TestDegenerateBoxesExcluded(t *testing.T) {
	flat := box("f1", scene.TypeBase, 0, 0, 0, 600, 0, 560)
	negative := box("n1", scene.TypeBase, 0, 0, 0, -600, 720, 560)

	boxes := measurableBoxes([]*scene.Box{flat, negative})
	if len(boxes) != 0 {
		t.Errorf("expected degenerate boxes to be excluded, got %d", len(boxes))
	}
}

func TestTieBreakFlipsToRightmostOnCollision(t *testing.T) {
	// Two boxes share a height; a tall unit sits where the leftmost
	// candidate's line (x=1000-150=850) would run through it
	a := box("a", scene.TypeBase, 1000, 0, 0, 600, 720, 560)
	b := box("b", scene.TypeBase, 2000, 0, 0, 600, 720, 560)
	obstruction := box("o", scene.TypeTall, 600, 0, 0, 600, 2400, 560)

	heights := heightMeasurements([]*scene.Box{a, b, obstruction})
	for _, m := range heights {
		if m.Value != 720 {
			continue
		}
		if m.ID != MakeID(KindHeight, "b") {
			t.Errorf("expected rightmost representative b, got %q", m.ID)
		}
		if m.Line[0].X != b.Right()+tieBreakOffset {
			t.Errorf("expected line on the right side at %v, got %v", b.Right()+tieBreakOffset, m.Line[0].X)
		}
	}
}

func TestTieBreakRevertsWithoutObstruction(t *testing.T) {
	a := box("a", scene.TypeBase, 1000, 0, 0, 600, 720, 560)
	b := box("b", scene.TypeBase, 2000, 0, 0, 600, 720, 560)

	heights := heightMeasurements([]*scene.Box{a, b})
	for _, m := range heights {
		if m.ID != MakeID(KindHeight, "a") {
			t.Errorf("expected leftmost representative a without obstruction, got %q", m.ID)
		}
		if m.Line[0].X != a.Position.X-tieBreakOffset {
			t.Errorf("expected line on the left side at %v, got %v", a.Position.X-tieBreakOffset, m.Line[0].X)
		}
	}
}

func TestTieBreakEitherOverlapCondition(t *testing.T) {
	a := box("a", scene.TypeBase, 1000, 0, 0, 600, 720, 560)
	b := box("b", scene.TypeBase, 2000, 0, 0, 600, 720, 560)

	// Covers the line position but overlaps neither vertically nor in
	// the depth band: no flip
	clear := box("c", scene.TypeBase, 600, 5000, 2000, 600, 100, 400)
	heights := heightMeasurements([]*scene.Box{a, b, clear})
	if heights[0].ID != MakeID(KindHeight, "a") {
		t.Errorf("expected no flip without overlap, got %q", heights[0].ID)
	}

	// Same X cover, still no vertical overlap, but inside the depth
	// band: flips
	banded := box("c", scene.TypeBase, 600, 5000, 300, 600, 100, 400)
	heights = heightMeasurements([]*scene.Box{a, b, banded})
	if heights[0].ID != MakeID(KindHeight, "b") {
		t.Errorf("expected flip on depth band overlap alone, got %q", heights[0].ID)
	}
}

func TestDepthSharedValueGetsOneAnnotation(t *testing.T) {
	boxes := measurableBoxes(kitchenWall())
	depths := depthMeasurements(boxes)

	// Base units share 560, the top unit has 350
	if len(depths) != 2 {
		t.Errorf("expected 2 depth annotations, got %d", len(depths))
	}
	for _, m := range depths {
		if m.Axis != geometry.AxisZ {
			t.Errorf("depth measures Z, got %v", m.Axis)
		}
	}
}

func TestKickerGroupsByVerticalPosition(t *testing.T) {
	raisedA := box("a", scene.TypeBase, 0, 150, 0, 600, 720, 560)
	raisedB := box("b", scene.TypeTall, 600, 150, 0, 600, 2100, 560)
	floor := box("f", scene.TypeBase, 1200, 0, 0, 600, 720, 560)
	top := box("t", scene.TypeTop, 0, 1400, 0, 600, 400, 350)

	kickers := kickerMeasurements([]*scene.Box{raisedA, raisedB, floor, top})
	if len(kickers) != 1 {
		t.Fatalf("expected one kicker annotation for the shared plinth height, got %d", len(kickers))
	}
	if kickers[0].Value != 150 {
		t.Errorf("expected kicker value 150, got %v", kickers[0].Value)
	}
	if kickers[0].Line[0].Y != 0 || kickers[0].Line[1].Y != 150 {
		t.Errorf("kicker spans floor to box bottom, got %v..%v", kickers[0].Line[0].Y, kickers[0].Line[1].Y)
	}
}

func TestSingleMemberGroupYieldsMember(t *testing.T) {
	only := box("solo", scene.TypeBase, 400, 0, 0, 600, 720, 560)

	heights := heightMeasurements([]*scene.Box{only})
	if len(heights) != 1 || heights[0].ID != MakeID(KindHeight, "solo") {
		t.Errorf("single member group failed: %+v", heights)
	}
}
