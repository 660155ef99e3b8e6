package geometry

// Bounds represents an axis-aligned box given by its minimum corner and size
type Bounds struct {
	Min  Vector3
	Size Vector3
}

// NewBounds creates bounds from a minimum corner and a size
func NewBounds(min, size Vector3) Bounds {
	return Bounds{Min: min, Size: size}
}

// Max returns the maximum corner of the bounds
func (b Bounds) Max() Vector3 {
	return b.Min.Add(b.Size)
}

// Center returns the center point of the bounds
func (b Bounds) Center() Vector3 {
	return b.Min.Add(b.Size.Mul(0.5))
}

// AxisInterval returns the extent of the bounds along one axis
func (b Bounds) AxisInterval(axis Axis) Interval {
	return NewInterval(b.Min.Component(axis), b.Size.Component(axis))
}

// IsDegenerate reports whether any side has zero or negative length
func (b Bounds) IsDegenerate() bool {
	return b.Size.X <= 0 || b.Size.Y <= 0 || b.Size.Z <= 0
}
