package dimension

import "github.com/planbox/dimlines/pkg/scene"

// Compute runs the layout selector and the empty-space detector over
// every view group of the scene and returns the full measurement set for
// one pass. The result is ephemeral; ids are the only stable part.
func Compute(sc *scene.Scene) []Measurement {
	ms := make([]Measurement, 0)
	for _, viewID := range sc.ViewGroups() {
		boxes := measurableBoxes(sc.BoxesInView(viewID))
		ms = append(ms, widthMeasurements(boxes)...)
		ms = append(ms, heightMeasurements(boxes)...)
		ms = append(ms, depthMeasurements(boxes)...)
		ms = append(ms, kickerMeasurements(boxes)...)
		ms = append(ms, verticalGaps(viewID, boxes)...)
		ms = append(ms, horizontalGaps(viewID, boxes)...)
	}
	return ms
}
