// Package dimension implements the interactive dimensioning overlay for a
// scene of axis-aligned furniture boxes: it decides which measurements to
// draw, builds renderable line/arrow/label primitives for them, and tracks
// per-measurement interaction state (hide, drag offset, selection) across
// full rebuilds of the primitive set.
package dimension

import (
	"github.com/planbox/dimlines/pkg/geometry"
)

// Kind classifies a measurement
type Kind string

const (
	KindWidth         Kind = "width"
	KindHeight        Kind = "height"
	KindDepth         Kind = "depth"
	KindKicker        Kind = "kicker"
	KindGapVertical   Kind = "gap-v"
	KindGapHorizontal Kind = "gap-h"
)

// Projection identifies the active orthographic camera axis.
// ProjectionNone stands for a free/perspective camera, in which the
// overlay renders read-only and ignores drags.
type Projection int

const (
	ProjectionNone Projection = iota
	ProjectionX               // side elevation, looking along X
	ProjectionY               // top-down plan, looking along Y
	ProjectionZ               // front elevation, looking along Z
)

// VisibleIn reports whether measurements of this kind are shown under the
// given projection. Everything is shown under a perspective camera.
func (k Kind) VisibleIn(p Projection) bool {
	if p == ProjectionNone {
		return true
	}
	switch k {
	case KindWidth:
		return p == ProjectionY || p == ProjectionZ
	case KindHeight, KindKicker, KindGapVertical:
		return p == ProjectionX || p == ProjectionZ
	case KindDepth:
		return p == ProjectionX || p == ProjectionY
	case KindGapHorizontal:
		return p == ProjectionY || p == ProjectionZ
	}
	return false
}

// Measurement is one decided annotation, rebuilt from scratch on every
// recompute pass. Anchors are the measured feature edges; Line holds the
// nominal dimension line endpoints before any user offset is applied.
type Measurement struct {
	ID      ID
	Kind    Kind
	Axis    geometry.Axis // world axis being measured
	Value   float64
	Anchors [2]geometry.Vector3
	Line    [2]geometry.Vector3
}

// Layout constants, in world units (mm-scale scenes).
const (
	// tieBreakOffset is the distance between a box edge and its
	// height/depth/kicker dimension line, and the position probed by the
	// collision tie-break.
	tieBreakOffset = 150.0

	// widthOffset is the distance between a box top edge and its width
	// dimension line.
	widthOffset = 100.0

	// gapEpsilon is the smallest gap worth annotating.
	gapEpsilon = 0.1
)
