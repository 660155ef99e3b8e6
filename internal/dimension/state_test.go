package dimension

import (
	"testing"

	"github.com/planbox/dimlines/pkg/geometry"
)

func TestOffsetRoundTrip(t *testing.T) {
	store := NewStore()
	id := MakeID(KindHeight, "box-1")

	store.AddOffsetAxis(id, geometry.AxisX, 5)
	if !store.HasModifications() {
		t.Error("HasModifications failed: expected true after offset")
	}

	store.AddOffsetAxis(id, geometry.AxisX, -5)
	if got := store.StateOf(id).Offset; !got.IsZero() {
		t.Errorf("offset round trip failed: expected zero, got %v", got)
	}
	if store.HasModifications() {
		t.Error("HasModifications failed: expected false after round trip")
	}
}

func TestHideShowIdempotence(t *testing.T) {
	store := NewStore()
	id := MakeID(KindWidth, "box-1")

	store.AddOffsetAxis(id, geometry.AxisY, 30)
	store.Hide(id)
	store.Hide(id)
	if st := store.StateOf(id); !st.Hidden {
		t.Error("Hide failed: expected hidden after double hide")
	}

	store.Show(id)
	st := store.StateOf(id)
	if st.Hidden {
		t.Error("Show failed: expected visible")
	}
	if st.Offset.Y != 30 {
		t.Errorf("Show failed: offset not kept, got %v", st.Offset)
	}
}

func TestHideClearsSelection(t *testing.T) {
	store := NewStore()
	id := MakeID(KindDepth, "box-1")

	store.Select(id)
	store.Hide(id)
	if store.SelectedID() != IDNone {
		t.Errorf("Hide failed: selection not cleared, got %q", store.SelectedID())
	}

	// Hiding a non-selected id leaves the selection alone
	other := MakeID(KindDepth, "box-2")
	store.Select(other)
	store.Hide(id)
	if store.SelectedID() != other {
		t.Errorf("Hide failed: unrelated selection cleared")
	}
}

func TestToggleSelect(t *testing.T) {
	store := NewStore()
	id := MakeID(KindHeight, "box-1")

	store.ToggleSelect(id)
	if store.SelectedID() != id {
		t.Errorf("ToggleSelect failed: expected %q selected", id)
	}
	store.ToggleSelect(id)
	if store.SelectedID() != IDNone {
		t.Error("ToggleSelect failed: expected deselection on second toggle")
	}

	other := MakeID(KindHeight, "box-2")
	store.ToggleSelect(id)
	store.ToggleSelect(other)
	if store.SelectedID() != other {
		t.Error("ToggleSelect failed: expected selection to move to other id")
	}
}

func TestResetAll(t *testing.T) {
	store := NewStore()
	a := MakeID(KindHeight, "box-1")
	b := MakeID(KindGapVertical, "wall#0")

	store.AddOffsetAxis(a, geometry.AxisZ, 12)
	store.Hide(b)
	store.Select(a)

	store.ResetAll()
	if store.HasModifications() {
		t.Error("ResetAll failed: modifications remain")
	}
	if store.SelectedID() != IDNone {
		t.Error("ResetAll failed: selection remains")
	}
}

func TestResetOne(t *testing.T) {
	store := NewStore()
	a := MakeID(KindHeight, "box-1")
	b := MakeID(KindHeight, "box-2")

	store.Hide(a)
	store.AddOffsetAxis(b, geometry.AxisX, 7)
	store.ResetOne(a)

	if store.StateOf(a).Hidden {
		t.Error("ResetOne failed: entry not reverted")
	}
	if store.StateOf(b).Offset.X != 7 {
		t.Error("ResetOne failed: unrelated entry touched")
	}
}

func TestUnknownIDsReadAsDefault(t *testing.T) {
	store := NewStore()
	id := MakeID(KindWidth, "never-seen")

	st := store.StateOf(id)
	if st.Hidden || !st.Offset.IsZero() {
		t.Errorf("StateOf failed: expected default state, got %+v", st)
	}

	// None of the operations may fail for unseen ids
	store.Show(id)
	store.ResetOne(id)
	if store.HasModifications() {
		t.Error("no-op mutations on unseen ids must not count as modifications")
	}
}

func TestReentrantSubscriber(t *testing.T) {
	store := NewStore()
	id := MakeID(KindHeight, "box-1")

	reacted := false
	store.Subscribe(func() {
		if !reacted {
			reacted = true
			store.Select(id)
		}
	})

	store.Hide(id)
	if store.SelectedID() != id {
		t.Error("re-entrant mutation from subscriber was lost")
	}
}

func TestSubscriberNotifiedPerMutation(t *testing.T) {
	store := NewStore()
	id := MakeID(KindHeight, "box-1")

	calls := 0
	store.Subscribe(func() { calls++ })

	store.Hide(id)
	store.AddOffsetAxis(id, geometry.AxisX, 1)
	store.ResetAll()
	if calls != 3 {
		t.Errorf("expected 3 notifications, got %d", calls)
	}
}
