package app

import (
	"github.com/planbox/dimlines/pkg/geometry"
	"github.com/planbox/dimlines/pkg/scene"
)

// SampleScene builds a small kitchen wall: three base cabinets on a
// plinth, one tall unit and an upper cabinet row with a gap below it.
func SampleScene() *scene.Scene {
	sc := scene.NewScene()
	wall := sc.AddView("wall-a", "Wall A")

	bases := []struct {
		id string
		x  float64
		w  float64
	}{
		{"base-1", 0, 600},
		{"base-2", 600, 600},
		{"base-3", 1200, 450},
	}
	for _, b := range bases {
		box := scene.NewBox(b.id, scene.TypeBase,
			geometry.NewVector3(b.x, 150, 0),
			geometry.NewVector3(b.w, 720, 560))
		box.ViewID = wall.ID
		sc.AddBox(box)

		door := scene.NewBox(b.id+"-door", scene.TypeDoor,
			geometry.NewVector3(b.x+2, 152, 560),
			geometry.NewVector3(b.w-4, 716, 19))
		door.ViewID = wall.ID
		door.ParentID = b.id
		sc.AddBox(door)
	}

	tall := scene.NewBox("tall-1", scene.TypeTall,
		geometry.NewVector3(1650, 150, 0),
		geometry.NewVector3(600, 2100, 560))
	tall.ViewID = wall.ID
	sc.AddBox(tall)

	top := scene.NewBox("top-1", scene.TypeTop,
		geometry.NewVector3(0, 1550, 210),
		geometry.NewVector3(1650, 700, 350))
	top.ViewID = wall.ID
	sc.AddBox(top)

	return sc
}
