package app

import (
	"fyne.io/fyne/v2"

	"github.com/planbox/dimlines/internal/dimension"
	"github.com/planbox/dimlines/pkg/geometry"
)

// OrthoCamera maps world coordinates onto the canvas for one of the
// three fixed orthographic projections. It satisfies the overlay's
// camera collaborator contract.
type OrthoCamera struct {
	proj    dimension.Projection
	scale   float64 // pixels per world unit
	originX float32 // screen position of the world origin
	originY float32
}

// NewOrthoCamera creates a front-elevation camera
func NewOrthoCamera(scale float64, originX, originY float32) *OrthoCamera {
	return &OrthoCamera{
		proj:    dimension.ProjectionZ,
		scale:   scale,
		originX: originX,
		originY: originY,
	}
}

// Projection returns the active orthographic axis
func (c *OrthoCamera) Projection() dimension.Projection {
	return c.proj
}

// SetProjection switches the camera to another fixed view
func (c *OrthoCamera) SetProjection(proj dimension.Projection) {
	c.proj = proj
}

// WorldPerPixel returns the conversion ratio for the current frustum
func (c *OrthoCamera) WorldPerPixel() float64 {
	return 1.0 / c.scale
}

// Project maps a world point to a canvas position. Screen Y grows
// downward; the top view lays world Z down the screen.
func (c *OrthoCamera) Project(p geometry.Vector3) fyne.Position {
	var sx, sy float64
	switch c.proj {
	case dimension.ProjectionX:
		sx = p.Z * c.scale
		sy = -p.Y * c.scale
	case dimension.ProjectionY:
		sx = p.X * c.scale
		sy = p.Z * c.scale
	case dimension.ProjectionZ:
		sx = p.X * c.scale
		sy = -p.Y * c.scale
	default:
		// Perspective preview: a simple oblique projection
		sx = (p.X + 0.35*p.Z) * c.scale
		sy = (-p.Y + 0.2*p.Z) * c.scale
	}
	return fyne.NewPos(c.originX+float32(sx), c.originY+float32(sy))
}
