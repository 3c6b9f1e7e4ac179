package model

// PathOp identifies one flattened path command inside a drawing object.
type PathOp int

const (
	// OpMove starts a new subpath.
	OpMove PathOp = iota
	// OpLine draws a straight segment to a point.
	OpLine
	// OpRect adds an axis-aligned rectangle as its own subpath.
	OpRect
	// OpClose closes the current subpath back to its starting point.
	OpClose
)

// PathCommand is a single flattened command. Curves never appear here:
// the graphics layer reduces them to OpLine commands through their
// control and end points before a DrawingObject is emitted.
type PathCommand struct {
	Op PathOp

	// For OpMove and OpLine: the target point.
	// For OpRect: the four corners in drawing order.
	// Empty for OpClose.
	Points []Point
}

// DrawingObject is one painted path from a page's content stream, in
// drawing-unit (device) coordinates. It is the unit of input to the
// primitive parser: one painting operator produces one DrawingObject.
type DrawingObject struct {
	// Fill is the fill color, or nil when the path was only stroked.
	Fill *Color

	// Stroke is the stroke color, or nil when the path was only filled.
	Stroke *Color

	// Closed reports whether the path carried an explicit close (h) or
	// was painted by a closing operator (s, b, b*).
	Closed bool

	Commands []PathCommand
}

// Points returns every point touched by the object's commands, in
// command order. Rectangle corners are included.
func (d *DrawingObject) Points() []Point {
	var pts []Point
	for _, cmd := range d.Commands {
		pts = append(pts, cmd.Points...)
	}
	return pts
}
