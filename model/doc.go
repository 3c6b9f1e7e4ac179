// Package model provides the data model shared by every stage of the
// coverage pipeline.
//
// The types in this package trace the lifecycle of a shape from raw PDF
// vector content to a classified, measured surface:
//
//   - [DrawingObject] - one drawing object from a page's content stream,
//     with fill/stroke colors and flattened path commands
//   - [LineSegment], [Rectangle], [PointPath] - normalized primitives
//   - [CandidatePolygon] - a closed ring recovered from primitives
//   - [AcceptedPolygon] - a candidate that survived filtering and
//     deduplication, with its area and bounds
//   - [ClassifiedPolygon] - an accepted polygon with a [SurfaceType]
//     label and a real-world area in square feet
//
// Aggregated output comes in two shapes: [SheetResult] for one page and
// [ProjectSummary] for the whole document. Both are rebuilt from scratch
// on every processing pass; nothing in this package is mutated after a
// pass completes.
//
// # Geometry
//
// Geometric primitives support position and measurement calculations:
//
//   - [Point] - 2D point in drawing units
//   - [BBox] - bounding box with width/height/area helpers
//   - [Matrix] - 2D affine transformation (the PDF CTM)
//   - [Color] - RGB color with channels in [0, 1]
package model
