package model

// LineSegment is a single straight segment in drawing units.
type LineSegment struct {
	P1, P2 Point
}

// Length returns the segment length.
func (s LineSegment) Length() float64 {
	return s.P1.Distance(s.P2)
}

// Rectangle is an axis-aligned rectangle primitive captured verbatim
// from a rectangle path command, with the colors of its drawing object.
type Rectangle struct {
	X0, Y0, X1, Y1 float64
	Fill           *Color
	Stroke         *Color
}

// Bounds returns the rectangle's bounding box with normalized corners.
func (r Rectangle) Bounds() BBox {
	x0, x1 := r.X0, r.X1
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	y0, y1 := r.Y0, r.Y1
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	return BBox{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// PointPath is an ordered point sequence captured from one drawing
// object. The same object can yield both a filled-path and a
// closed-path primitive; the reconstructor treats the two categories
// differently.
type PointPath struct {
	Points []Point
	Fill   *Color
	Stroke *Color
	Closed bool
}

// Primitives is everything the primitive parser extracted from one
// page: the per-object path primitives plus the page-wide line network
// accumulated across all drawing objects.
type Primitives struct {
	FilledPaths []PointPath
	ClosedPaths []PointPath
	Rectangles  []Rectangle

	// Segments is the page-wide line network used to recover closed
	// loops drawn as separate strokes.
	Segments []LineSegment
}
