// Package scene holds the furniture object model consumed read-only by
// the dimensioning overlay: boxes with position, size and type, grouped
// into named views.
package scene

import "github.com/google/uuid"

// View represents a named logical grouping of boxes, e.g. one wall elevation
type View struct {
	ID   string
	Name string
}

// Scene represents the complete furniture arrangement
type Scene struct {
	Boxes []*Box
	Views []*View
}

// NewScene creates an empty scene
func NewScene() *Scene {
	return &Scene{
		Boxes: make([]*Box, 0),
		Views: make([]*View, 0),
	}
}

// AddView creates a view, generating an id when none is given
func (s *Scene) AddView(id, name string) *View {
	if id == "" {
		id = uuid.NewString()
	}
	view := &View{ID: id, Name: name}
	s.Views = append(s.Views, view)
	return view
}

// AddBox appends a box to the scene
func (s *Scene) AddBox(box *Box) *Box {
	s.Boxes = append(s.Boxes, box)
	return box
}

// BoxByID returns the box with the given id, or nil
func (s *Scene) BoxByID(id string) *Box {
	for _, box := range s.Boxes {
		if box.ID == id {
			return box
		}
	}
	return nil
}

// BoxesInView returns all boxes assigned to the given view id.
// The empty id selects the unassigned group.
func (s *Scene) BoxesInView(viewID string) []*Box {
	boxes := make([]*Box, 0)
	for _, box := range s.Boxes {
		if box.ViewID == viewID {
			boxes = append(boxes, box)
		}
	}
	return boxes
}

// ViewGroups returns every view id that has at least one box, in stable
// first-encountered order, including the unassigned group.
func (s *Scene) ViewGroups() []string {
	seen := make(map[string]bool)
	groups := make([]string, 0)
	for _, box := range s.Boxes {
		if !seen[box.ViewID] {
			seen[box.ViewID] = true
			groups = append(groups, box.ViewID)
		}
	}
	return groups
}
