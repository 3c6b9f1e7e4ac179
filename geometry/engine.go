package geometry

import "github.com/grantdozier/LCR-Area-Calculations-Module/model"

// Repairer turns a possibly self-intersecting ring into the closest
// valid simple rings. A ring that cannot be repaired into anything with
// area yields an empty slice.
type Repairer interface {
	Repair(ring Ring) []Ring
}

// Polygonizer extracts every simple closed face from the planar
// arrangement of a set of line segments.
type Polygonizer interface {
	Polygonize(segments []model.LineSegment) []Ring
}

// Engine bundles the two geometry capabilities the reconstructor needs.
type Engine interface {
	Repairer
	Polygonizer
}
