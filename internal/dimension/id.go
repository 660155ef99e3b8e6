package dimension

import "fmt"

// ID is the deterministic key of one measurement. It stays stable across
// primitive rebuilds as long as the underlying entity ids are stable, so
// interaction state keyed by it survives geometry recomputes.
type ID string

// IDNone is the empty id, used for "no selection".
const IDNone ID = ""

// MakeID derives a measurement id from its kind and the id of the
// measured entity (a box id, a view id, or a per-view gap index).
func MakeID(kind Kind, entity string) ID {
	return ID(string(kind) + ":" + entity)
}

// MakeGapID derives a measurement id for the n-th gap found in a view.
// The unassigned view group uses the empty view id.
func MakeGapID(kind Kind, viewID string, index int) ID {
	return MakeID(kind, fmt.Sprintf("%s#%d", viewID, index))
}
