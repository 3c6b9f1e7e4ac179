package graphics

import "github.com/grantdozier/LCR-Area-Calculations-Module/model"

// pathBuilder accumulates path construction operators for the current
// path, storing points already transformed to device space.
type pathBuilder struct {
	cmds []model.PathCommand

	current    model.Point
	subStart   model.Point
	hasCurrent bool
	sawClose   bool
}

func newPathBuilder() *pathBuilder {
	return &pathBuilder{}
}

func (b *pathBuilder) empty() bool { return len(b.cmds) == 0 }

func (b *pathBuilder) moveTo(p model.Point) {
	b.cmds = append(b.cmds, model.PathCommand{Op: model.OpMove, Points: []model.Point{p}})
	b.current = p
	b.subStart = p
	b.hasCurrent = true
}

func (b *pathBuilder) lineTo(p model.Point) {
	if !b.hasCurrent {
		b.moveTo(p)
		return
	}
	b.cmds = append(b.cmds, model.PathCommand{Op: model.OpLine, Points: []model.Point{p}})
	b.current = p
}

// curveTo flattens a cubic Bézier by running straight segments through
// the control points to the end point.
func (b *pathBuilder) curveTo(c1, c2, end model.Point) {
	if !b.hasCurrent {
		b.moveTo(c1)
	}
	for _, p := range []model.Point{c1, c2, end} {
		if p != b.current {
			b.lineTo(p)
		}
	}
	b.current = end
}

func (b *pathBuilder) rect(corners [4]model.Point) {
	b.cmds = append(b.cmds, model.PathCommand{Op: model.OpRect, Points: corners[:]})
	// A rectangle is a complete closed subpath; the current point moves
	// to its first corner.
	b.current = corners[0]
	b.subStart = corners[0]
	b.hasCurrent = true
}

func (b *pathBuilder) closePath() {
	if !b.hasCurrent {
		return
	}
	b.cmds = append(b.cmds, model.PathCommand{Op: model.OpClose})
	b.current = b.subStart
	b.sawClose = true
}

// object emits the accumulated path as a drawing object and resets the
// builder. Returns nil when the path is empty or painted with neither
// fill nor stroke.
func (b *pathBuilder) object(fill, stroke *model.Color, closed bool) *model.DrawingObject {
	defer b.reset()

	if b.empty() || (fill == nil && stroke == nil) {
		return nil
	}
	obj := &model.DrawingObject{
		Fill:     fill,
		Stroke:   stroke,
		Closed:   closed || b.sawClose,
		Commands: b.cmds,
	}
	return obj
}

func (b *pathBuilder) reset() {
	b.cmds = nil
	b.hasCurrent = false
	b.sawClose = false
}
