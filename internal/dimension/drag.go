package dimension

import (
	"math"

	"github.com/planbox/dimlines/pkg/geometry"
)

// Camera is the projection collaborator: the active orthographic axis
// and the conversion ratio between screen pixels and world units for the
// current frustum.
type Camera interface {
	Projection() Projection
	WorldPerPixel() float64
}

// HitTester is the hit-test capability exposed back by the rendering
// collaborator: a screen point resolves to the id of the primitive group
// under it, within an enlarged tolerance band around thin line geometry.
type HitTester interface {
	HitTest(x, y float32) (ID, bool)
}

// dragClickThreshold separates a click from a drag, in accumulated
// pointer travel pixels
const dragClickThreshold = 3.0

// PermittedAxis returns the world axis a measurement of the given
// measured axis may be dragged along under the active projection: the
// axis both perpendicular to the measured one and movable on screen.
// There is no permitted axis under a perspective camera.
func PermittedAxis(measured geometry.Axis, p Projection) (geometry.Axis, bool) {
	if p == ProjectionNone {
		return geometry.AxisX, false
	}
	switch measured {
	case geometry.AxisX:
		if p == ProjectionZ {
			return geometry.AxisZ, true
		}
		return geometry.AxisY, true
	case geometry.AxisY:
		if p == ProjectionX {
			return geometry.AxisZ, true
		}
		return geometry.AxisX, true
	default:
		if p == ProjectionZ {
			return geometry.AxisX, true
		}
		return geometry.AxisY, true
	}
}

// pixelToWorld converts a pointer delta into a world delta along the
// permitted axis, sign-corrected for screen orientation
func pixelToWorld(p Projection, axis geometry.Axis, dx, dy float32, worldPerPixel float64) float64 {
	var px float64
	switch axis {
	case geometry.AxisX:
		px = float64(dx)
	case geometry.AxisY:
		// Screen Y grows downward
		px = float64(-dy)
	default:
		if p == ProjectionX {
			// Side view: Z runs across the screen
			px = float64(dx)
		} else {
			px = float64(dy)
		}
	}
	return px * worldPerPixel
}

// DragController translates pointer input into offset mutations on the
// store. It is a two-state machine: idle, or dragging one measurement
// along its permitted axis.
type DragController struct {
	store  *Store
	camera Camera
	hits   HitTester
	axisOf func(ID) (geometry.Axis, bool)

	dragging  bool
	id        ID
	axis      geometry.Axis
	draggable bool
	lastX     float32
	lastY     float32
	travelled float64
}

// NewDragController creates a drag controller. axisOf resolves a
// measurement id to its measured axis for the current pass; ids that no
// longer resolve are click-only.
func NewDragController(store *Store, camera Camera, hits HitTester, axisOf func(ID) (geometry.Axis, bool)) *DragController {
	return &DragController{
		store:  store,
		camera: camera,
		hits:   hits,
		axisOf: axisOf,
	}
}

// Dragging reports whether a pointer capture is active
func (d *DragController) Dragging() bool {
	return d.dragging
}

// PointerDown starts a drag when the pointer hits a primitive. When the
// measurement has no permitted axis under the active projection the
// capture is click-only.
func (d *DragController) PointerDown(x, y float32) {
	if d.dragging {
		return
	}
	id, ok := d.hits.HitTest(x, y)
	if !ok {
		return
	}
	d.dragging = true
	d.id = id
	d.lastX, d.lastY = x, y
	d.travelled = 0
	d.draggable = false

	measured, ok := d.axisOf(id)
	if !ok {
		// Stale id from a racing geometry change; keep click behavior
		return
	}
	axis, ok := PermittedAxis(measured, d.camera.Projection())
	if !ok {
		return
	}
	d.axis = axis
	d.draggable = true
}

// PointerMove forwards the incremental world delta of a drag to the
// store. Click-only captures just accumulate travel.
func (d *DragController) PointerMove(x, y float32) {
	if !d.dragging {
		return
	}
	dx, dy := x-d.lastX, y-d.lastY
	d.lastX, d.lastY = x, y
	d.travelled += math.Abs(float64(dx)) + math.Abs(float64(dy))

	if !d.draggable {
		return
	}
	delta := pixelToWorld(d.camera.Projection(), d.axis, dx, dy, d.camera.WorldPerPixel())
	if delta != 0 {
		d.store.AddOffsetAxis(d.id, d.axis, delta)
	}
}

// PointerUp finalizes the capture: below the travel threshold it is a
// click and toggles the selection, otherwise the already-forwarded
// offsets stand.
func (d *DragController) PointerUp(x, y float32) {
	if !d.dragging {
		return
	}
	d.PointerMove(x, y)
	if d.travelled <= dragClickThreshold {
		d.store.ToggleSelect(d.id)
	}
	d.dragging = false
}

// PointerLost ends a drag whose pointer-up never arrived, keeping
// whatever delta has accumulated. No rollback, no click.
func (d *DragController) PointerLost() {
	d.dragging = false
}
