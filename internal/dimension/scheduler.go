package dimension

import (
	"github.com/planbox/dimlines/pkg/geometry"
	"github.com/planbox/dimlines/pkg/scene"
)

// driftEpsilon is the geometry change a box may accumulate before the
// per-tick snapshot check forces a rebuild
const driftEpsilon = 0.1

// Surface is the rendering collaborator the primitive set is composited
// onto. Dispose releases the backing graphic resources of the previous
// set; SetPrimitives installs the new one.
type Surface interface {
	Dispose()
	SetPrimitives(groups []*Group)
}

type boxSnapshot struct {
	position geometry.Vector3
	size     geometry.Vector3
}

// Scheduler detects geometry and interaction state changes and rebuilds
// the primitive set. It is the exclusive owner of the rendered
// primitives; every other component only requests rebuilds.
type Scheduler struct {
	scene   *scene.Scene
	store   *Store
	surface Surface

	visible     bool
	needsRedraw bool

	lastBoxes []*scene.Box
	snapshot  map[string]boxSnapshot

	measurements []Measurement
	axisIndex    map[ID]geometry.Axis
	groups       []*Group
}

// NewScheduler creates a scheduler subscribed to store mutations. The
// first Tick performs the initial build.
func NewScheduler(sc *scene.Scene, store *Store, surface Surface) *Scheduler {
	s := &Scheduler{
		scene:       sc,
		store:       store,
		surface:     surface,
		visible:     true,
		needsRedraw: true,
		snapshot:    make(map[string]boxSnapshot),
		axisIndex:   make(map[ID]geometry.Axis),
	}
	store.Subscribe(func() {
		s.needsRedraw = true
	})
	return s
}

// Visible reports whether the overlay is shown
func (s *Scheduler) Visible() bool {
	return s.visible
}

// SetVisible toggles the overlay, triggering a teardown or rebuild on
// the next tick
func (s *Scheduler) SetVisible(visible bool) {
	if s.visible == visible {
		return
	}
	s.visible = visible
	s.needsRedraw = true
}

// Primitives returns the current primitive set. Callers must not retain
// or mutate it across ticks.
func (s *Scheduler) Primitives() []*Group {
	return s.groups
}

// MeasuredAxis resolves a measurement id of the current pass to its
// measured world axis. Ids from a previous pass resolve false.
func (s *Scheduler) MeasuredAxis(id ID) (geometry.Axis, bool) {
	axis, ok := s.axisIndex[id]
	return axis, ok
}

// Tick runs the once-per-tick change detection and rebuilds when needed.
// Detection is idempotent; a missed tick only delays the visual update.
func (s *Scheduler) Tick() {
	if s.dirty() {
		s.rebuild()
	}
}

func (s *Scheduler) dirty() bool {
	return s.needsRedraw || s.boxListChanged() || s.geometryDrifted()
}

func (s *Scheduler) boxListChanged() bool {
	boxes := s.scene.Boxes
	if len(boxes) != len(s.lastBoxes) {
		return true
	}
	for i := range boxes {
		if boxes[i] != s.lastBoxes[i] {
			return true
		}
	}
	return false
}

func (s *Scheduler) geometryDrifted() bool {
	for _, b := range s.scene.Boxes {
		snap, ok := s.snapshot[b.ID]
		if !ok {
			return true
		}
		if b.Position.Distance(snap.position) > driftEpsilon ||
			b.Size.Distance(snap.size) > driftEpsilon {
			return true
		}
	}
	return false
}

// rebuild disposes the previous primitive set, recomputes measurements
// and primitives, and refreshes the snapshot cache
func (s *Scheduler) rebuild() {
	s.needsRedraw = false
	s.surface.Dispose()

	s.groups = nil
	s.measurements = nil
	s.axisIndex = make(map[ID]geometry.Axis)

	if s.visible {
		s.measurements = Compute(s.scene)
		for _, m := range s.measurements {
			s.axisIndex[m.ID] = m.Axis
			group := Build(m, s.store.StateOf(m.ID))
			if group == nil {
				continue
			}
			group.Selected = s.store.SelectedID() == m.ID
			group.Hovered = s.store.HoveredID() == m.ID
			s.groups = append(s.groups, group)
		}
	}

	s.surface.SetPrimitives(s.groups)
	s.refreshSnapshot()
}

func (s *Scheduler) refreshSnapshot() {
	s.lastBoxes = make([]*scene.Box, len(s.scene.Boxes))
	copy(s.lastBoxes, s.scene.Boxes)
	s.snapshot = make(map[string]boxSnapshot, len(s.scene.Boxes))
	for _, b := range s.scene.Boxes {
		s.snapshot[b.ID] = boxSnapshot{position: b.Position, size: b.Size}
	}
}
