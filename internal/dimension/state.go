package dimension

import "github.com/planbox/dimlines/pkg/geometry"

// State holds the interaction state of one measurement. The hidden flag
// and the offset are independent: a hidden line keeps its offset.
type State struct {
	Hidden bool
	Offset geometry.Vector3
}

// isDefault reports whether the state carries no modification
func (s State) isDefault() bool {
	return !s.Hidden && s.Offset.IsZero()
}

// Store keeps interaction state per measurement id plus the current
// selection. Entries are created lazily on first mutation; an unknown id
// reads as the default state and no operation fails for unseen ids.
//
// The store is single-threaded but re-entrant safe: a subscriber invoked
// by a mutation may synchronously mutate again.
type Store struct {
	states      map[ID]*State
	selectedID  ID
	hoveredID   ID
	subscribers []func()
}

// NewStore creates an empty interaction state store
func NewStore() *Store {
	return &Store{states: make(map[ID]*State)}
}

// Subscribe registers a callback invoked after every mutation
func (s *Store) Subscribe(fn func()) {
	s.subscribers = append(s.subscribers, fn)
}

func (s *Store) notify() {
	// Iterate a copy so a re-entrant Subscribe cannot disturb the pass
	subs := make([]func(), len(s.subscribers))
	copy(subs, s.subscribers)
	for _, fn := range subs {
		fn()
	}
}

func (s *Store) entry(id ID) *State {
	st, ok := s.states[id]
	if !ok {
		st = &State{}
		s.states[id] = st
	}
	return st
}

// StateOf returns the state for an id, defaulting for unknown ids
func (s *Store) StateOf(id ID) State {
	if st, ok := s.states[id]; ok {
		return *st
	}
	return State{}
}

// SelectedID returns the currently selected measurement id, or IDNone
func (s *Store) SelectedID() ID {
	return s.selectedID
}

// HoveredID returns the currently hovered measurement id, or IDNone
func (s *Store) HoveredID() ID {
	return s.hoveredID
}

// Select replaces the selection. IDNone clears it.
func (s *Store) Select(id ID) {
	s.selectedID = id
	s.notify()
}

// ToggleSelect selects the id, or deselects it when already selected
func (s *Store) ToggleSelect(id ID) {
	if s.selectedID == id {
		s.selectedID = IDNone
	} else {
		s.selectedID = id
	}
	s.notify()
}

// SetHovered updates hover feedback. Hover never touches measurement state.
func (s *Store) SetHovered(id ID) {
	if s.hoveredID == id {
		return
	}
	s.hoveredID = id
	s.notify()
}

// Hide marks the measurement hidden, clearing the selection if it was the
// selected one. The offset is kept.
func (s *Store) Hide(id ID) {
	s.entry(id).Hidden = true
	if s.selectedID == id {
		s.selectedID = IDNone
	}
	s.notify()
}

// Show marks the measurement visible again, offset untouched
func (s *Store) Show(id ID) {
	s.entry(id).Hidden = false
	s.notify()
}

// AddOffsetAxis accumulates a drag delta on one axis of the offset
func (s *Store) AddOffsetAxis(id ID, axis geometry.Axis, delta float64) {
	st := s.entry(id)
	st.Offset = st.Offset.AddComponent(axis, delta)
	s.notify()
}

// ResetOne reverts one measurement to the default state
func (s *Store) ResetOne(id ID) {
	delete(s.states, id)
	s.notify()
}

// ResetAll reverts every measurement and clears the selection
func (s *Store) ResetAll() {
	s.states = make(map[ID]*State)
	s.selectedID = IDNone
	s.notify()
}

// HasModifications reports whether any measurement is hidden or offset
func (s *Store) HasModifications() bool {
	for _, st := range s.states {
		if !st.isDefault() {
			return true
		}
	}
	return false
}
