package scene

import (
	"github.com/google/uuid"

	"github.com/planbox/dimlines/pkg/geometry"
)

// BoxType classifies a furniture module
type BoxType string

const (
	TypeBase   BoxType = "base"
	TypeTall   BoxType = "tall"
	TypeTop    BoxType = "top"
	TypeDoor   BoxType = "door"
	TypeDrawer BoxType = "drawer"
	TypeShelf  BoxType = "shelf"
)

// Dependent reports whether the type only exists attached to a parent box
func (t BoxType) Dependent() bool {
	return t == TypeDoor || t == TypeDrawer || t == TypeShelf
}

// Box represents an axis-aligned furniture module
type Box struct {
	ID       string
	Position geometry.Vector3
	Size     geometry.Vector3
	Type     BoxType
	ParentID string // set when the box is mounted on another box
	ViewID   string // empty = unassigned
}

// NewBox creates a box, generating an id when none is given
func NewBox(id string, boxType BoxType, position, size geometry.Vector3) *Box {
	if id == "" {
		id = uuid.NewString()
	}
	return &Box{
		ID:       id,
		Position: position,
		Size:     size,
		Type:     boxType,
	}
}

// Bounds returns the axis-aligned bounds of the box
func (b *Box) Bounds() geometry.Bounds {
	return geometry.NewBounds(b.Position, b.Size)
}

// AxisInterval returns the extent of the box along one axis
func (b *Box) AxisInterval(axis geometry.Axis) geometry.Interval {
	return b.Bounds().AxisInterval(axis)
}

// Top returns the Y coordinate of the upper face
func (b *Box) Top() float64 {
	return b.Position.Y + b.Size.Y
}

// Right returns the X coordinate of the right face
func (b *Box) Right() float64 {
	return b.Position.X + b.Size.X
}

// IsChild reports whether the box is excluded from independent measurement
func (b *Box) IsChild() bool {
	return b.ParentID != "" || b.Type.Dependent()
}

// IsDegenerate reports whether the box has a zero or negative dimension
func (b *Box) IsDegenerate() bool {
	return b.Bounds().IsDegenerate()
}
