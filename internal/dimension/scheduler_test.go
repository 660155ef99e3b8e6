package dimension

import (
	"testing"

	"github.com/planbox/dimlines/pkg/geometry"
	"github.com/planbox/dimlines/pkg/scene"
)

func TestFirstTickBuildsPrimitives(t *testing.T) {
	sc := sceneWith(kitchenWall()...)
	surface := &stubSurface{}
	sched := NewScheduler(sc, NewStore(), surface)

	sched.Tick()
	if len(sched.Primitives()) == 0 {
		t.Fatal("expected primitives after first tick")
	}
	builds := len(surface.sets)

	// A clean second tick must not rebuild
	sched.Tick()
	if len(surface.sets) != builds {
		t.Error("expected no rebuild without changes")
	}
}

func TestDriftBeyondEpsilonRebuilds(t *testing.T) {
	b := box("b", scene.TypeBase, 0, 0, 0, 600, 720, 560)
	sc := sceneWith(b)
	surface := &stubSurface{}
	sched := NewScheduler(sc, NewStore(), surface)
	sched.Tick()
	builds := len(surface.sets)

	b.Position = geometry.NewVector3(0.05, 0, 0)
	sched.Tick()
	if len(surface.sets) != builds {
		t.Error("expected no rebuild for drift below epsilon")
	}

	b.Position = geometry.NewVector3(10, 0, 0)
	sched.Tick()
	if len(surface.sets) != builds+1 {
		t.Error("expected rebuild for drift beyond epsilon")
	}
}

func TestBoxListChangeRebuilds(t *testing.T) {
	sc := sceneWith(box("b", scene.TypeBase, 0, 0, 0, 600, 720, 560))
	surface := &stubSurface{}
	sched := NewScheduler(sc, NewStore(), surface)
	sched.Tick()
	builds := len(surface.sets)

	sc.AddBox(box("b2", scene.TypeBase, 600, 0, 0, 600, 720, 560))
	sched.Tick()
	if len(surface.sets) != builds+1 {
		t.Error("expected rebuild after adding a box")
	}
}

func TestStoreMutationRebuildsAndHides(t *testing.T) {
	b := box("b", scene.TypeBase, 0, 0, 0, 600, 720, 560)
	sc := sceneWith(b)
	surface := &stubSurface{}
	store := NewStore()
	sched := NewScheduler(sc, store, surface)
	sched.Tick()
	before := len(sched.Primitives())

	store.Hide(MakeID(KindWidth, "b"))
	sched.Tick()
	if len(sched.Primitives()) != before-1 {
		t.Errorf("expected hidden measurement dropped from primitives: %d -> %d",
			before, len(sched.Primitives()))
	}
}

func TestVisibilityToggleTearsDown(t *testing.T) {
	sc := sceneWith(kitchenWall()...)
	surface := &stubSurface{}
	sched := NewScheduler(sc, NewStore(), surface)
	sched.Tick()

	sched.SetVisible(false)
	sched.Tick()
	if len(sched.Primitives()) != 0 {
		t.Error("expected empty primitive set while hidden")
	}
	if surface.disposed < 2 {
		t.Error("expected previous primitives disposed on teardown")
	}

	sched.SetVisible(true)
	sched.Tick()
	if len(sched.Primitives()) == 0 {
		t.Error("expected primitives restored after re-enable")
	}
}

func TestStaleInteractionStateIsHarmless(t *testing.T) {
	sc := sceneWith(box("b", scene.TypeBase, 0, 0, 0, 600, 720, 560))
	surface := &stubSurface{}
	store := NewStore()
	sched := NewScheduler(sc, store, surface)

	// State for a box that no longer exists: never rendered, never fatal
	store.Hide(MakeID(KindHeight, "deleted-box"))
	store.AddOffsetAxis(MakeID(KindWidth, "deleted-box"), geometry.AxisX, 50)
	sched.Tick()

	for _, g := range sched.Primitives() {
		if g.ID == MakeID(KindHeight, "deleted-box") || g.ID == MakeID(KindWidth, "deleted-box") {
			t.Error("stale id rendered")
		}
	}
}

func TestSelectionFlagOnPrimitives(t *testing.T) {
	sc := sceneWith(box("b", scene.TypeBase, 0, 0, 0, 600, 720, 560))
	surface := &stubSurface{}
	store := NewStore()
	sched := NewScheduler(sc, store, surface)

	id := MakeID(KindWidth, "b")
	store.Select(id)
	sched.Tick()

	for _, g := range sched.Primitives() {
		if (g.ID == id) != g.Selected {
			t.Errorf("selection flag wrong on %q: %v", g.ID, g.Selected)
		}
	}
}

func TestMeasuredAxisResolvesCurrentPass(t *testing.T) {
	sc := sceneWith(box("b", scene.TypeBase, 0, 0, 0, 600, 720, 560))
	sched := NewScheduler(sc, NewStore(), &stubSurface{})
	sched.Tick()

	if axis, ok := sched.MeasuredAxis(MakeID(KindHeight, "b")); !ok || axis != geometry.AxisY {
		t.Errorf("expected height of b to measure Y, got (%v, %v)", axis, ok)
	}
	if _, ok := sched.MeasuredAxis(MakeID(KindHeight, "ghost")); ok {
		t.Error("expected unknown id to resolve false")
	}
}
