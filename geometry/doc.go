// Package geometry provides the planar geometry support the polygon
// reconstructor depends on: ring measurements, a simplicity test, and
// the two capabilities the pipeline treats as opaque: validity repair
// and planar polygonization.
//
// # Rings
//
// A [Ring] is an ordered, closed vertex sequence bounding a simple
// polygon. Measurement helpers cover the classifier's shape metrics:
//
//   - [Ring.Area] and [Ring.Perimeter]
//   - [Ring.Rectangularity] - area over bounding-box area
//   - [Ring.Compactness] - 4π·area/perimeter²
//
// # Capabilities
//
// [Repairer] turns a possibly self-intersecting ring into the closest
// valid simple rings; [Polygonizer] extracts all simple closed faces
// from a set of line segments. [Engine] combines both.
//
// The default engine ([NewEngine]) is pure Go: it nodes the input
// segments at their intersections, builds the planar arrangement, and
// walks faces with an angle-sorted edge traversal. Builds tagged "geos"
// can instead bind the GEOS library via [NewGEOSEngine], which uses
// MakeValid and Polygonize from libgeos. Both engines satisfy the same
// interface and produce equivalent faces on the inputs this pipeline
// generates.
package geometry
