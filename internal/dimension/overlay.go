package dimension

import "github.com/planbox/dimlines/pkg/scene"

// Overlay is the façade the hosting UI talks to: it wires the store,
// scheduler and drag controller together and exposes the session-level
// operations. Annotation state is ephemeral per editing session.
type Overlay struct {
	store     *Store
	scheduler *Scheduler
	drag      *DragController
	camera    Camera
}

// New creates an overlay for a scene with the given collaborators
func New(sc *scene.Scene, camera Camera, surface Surface, hits HitTester) *Overlay {
	store := NewStore()
	scheduler := NewScheduler(sc, store, surface)
	return &Overlay{
		store:     store,
		scheduler: scheduler,
		drag:      NewDragController(store, camera, hits, scheduler.MeasuredAxis),
		camera:    camera,
	}
}

// Store returns the interaction state store
func (o *Overlay) Store() *Store {
	return o.store
}

// Tick runs change detection once; call it from the host's update loop
func (o *Overlay) Tick() {
	o.scheduler.Tick()
}

// SetVisible toggles the whole overlay
func (o *Overlay) SetVisible(visible bool) {
	o.scheduler.SetVisible(visible)
}

// Visible reports whether the overlay is shown
func (o *Overlay) Visible() bool {
	return o.scheduler.Visible()
}

// Primitives returns the current primitive set for compositing
func (o *Overlay) Primitives() []*Group {
	return o.scheduler.Primitives()
}

// SelectedID returns the selected measurement id, or IDNone
func (o *Overlay) SelectedID() ID {
	return o.store.SelectedID()
}

// HasModifications reports whether any measurement is hidden or moved
func (o *Overlay) HasModifications() bool {
	return o.store.HasModifications()
}

// HideSelected hides the selected measurement, if any
func (o *Overlay) HideSelected() {
	if id := o.store.SelectedID(); id != IDNone {
		o.store.Hide(id)
	}
}

// ResetAllLines is the escape hatch: every measurement reverts to its
// default position and visibility and the selection clears
func (o *Overlay) ResetAllLines() {
	o.store.ResetAll()
}

// Deselect clears the selection
func (o *Overlay) Deselect() {
	o.store.Select(IDNone)
}

// SetHovered updates hover feedback from the host's pointer tracking
func (o *Overlay) SetHovered(id ID) {
	o.store.SetHovered(id)
}

// PointerDown forwards a pointer press. Under a perspective camera the
// overlay is inert for interaction.
func (o *Overlay) PointerDown(x, y float32) {
	if o.camera.Projection() == ProjectionNone {
		return
	}
	o.drag.PointerDown(x, y)
}

// PointerMove forwards pointer movement while captured
func (o *Overlay) PointerMove(x, y float32) {
	o.drag.PointerMove(x, y)
}

// PointerUp finalizes a drag or click
func (o *Overlay) PointerUp(x, y float32) {
	o.drag.PointerUp(x, y)
}

// PointerLost ends an interrupted drag, keeping the accumulated offset
func (o *Overlay) PointerLost() {
	o.drag.PointerLost()
}

// Dragging reports whether a pointer capture is active
func (o *Overlay) Dragging() bool {
	return o.drag.Dragging()
}
