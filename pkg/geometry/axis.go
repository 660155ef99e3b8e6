package geometry

// Axis identifies one of the three world axes
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// String returns the axis name
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return "?"
}

// Interval represents a closed 1D range on an axis
type Interval struct {
	Min, Max float64
}

// NewInterval creates an interval from a start position and a length
func NewInterval(start, length float64) Interval {
	return Interval{Min: start, Max: start + length}
}

// Contains reports whether the value lies inside the interval
func (i Interval) Contains(v float64) bool {
	return v >= i.Min && v <= i.Max
}

// Overlaps reports whether two intervals share a positive range
func (i Interval) Overlaps(other Interval) bool {
	return i.Min < other.Max && other.Min < i.Max
}

// Extend returns the interval grown by margin on both sides
func (i Interval) Extend(margin float64) Interval {
	return Interval{Min: i.Min - margin, Max: i.Max + margin}
}

// Length returns the size of the interval
func (i Interval) Length() float64 {
	return i.Max - i.Min
}

// Center returns the midpoint of the interval
func (i Interval) Center() float64 {
	return (i.Min + i.Max) / 2.0
}
