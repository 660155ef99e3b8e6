package dimension

import (
	"github.com/planbox/dimlines/pkg/geometry"
	"github.com/planbox/dimlines/pkg/scene"
)

func box(id string, boxType scene.BoxType, x, y, z, w, h, d float64) *scene.Box {
	return &scene.Box{
		ID:       id,
		Type:     boxType,
		Position: geometry.NewVector3(x, y, z),
		Size:     geometry.NewVector3(w, h, d),
	}
}

// kitchenWall builds the reference arrangement: three base units at
// x=0,600,1200 (600 wide, 720 high) under one top unit spanning x=0..1800
// at y=1400
func kitchenWall() []*scene.Box {
	return []*scene.Box{
		box("b1", scene.TypeBase, 0, 0, 0, 600, 720, 560),
		box("b2", scene.TypeBase, 600, 0, 0, 600, 720, 560),
		box("b3", scene.TypeBase, 1200, 0, 0, 600, 720, 560),
		box("t1", scene.TypeTop, 0, 1400, 0, 1800, 400, 350),
	}
}

func sceneWith(boxes ...*scene.Box) *scene.Scene {
	sc := scene.NewScene()
	for _, b := range boxes {
		sc.AddBox(b)
	}
	return sc
}

func filterKind(ms []Measurement, kind Kind) []Measurement {
	result := make([]Measurement, 0)
	for _, m := range ms {
		if m.Kind == kind {
			result = append(result, m)
		}
	}
	return result
}

type stubCamera struct {
	proj Projection
	wpp  float64
}

func (c *stubCamera) Projection() Projection { return c.proj }
func (c *stubCamera) WorldPerPixel() float64 { return c.wpp }

type stubHits struct {
	id ID
	ok bool
}

func (h *stubHits) HitTest(x, y float32) (ID, bool) { return h.id, h.ok }

type stubSurface struct {
	disposed int
	sets     [][]*Group
}

func (s *stubSurface) Dispose()                      { s.disposed++ }
func (s *stubSurface) SetPrimitives(groups []*Group) { s.sets = append(s.sets, groups) }
