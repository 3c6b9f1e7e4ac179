package graphics

import (
	"fmt"

	"github.com/grantdozier/LCR-Area-Calculations-Module/contentstream"
	"github.com/grantdozier/LCR-Area-Calculations-Module/model"
)

// PageContent is everything the interpreter recovers from one page's
// content stream.
type PageContent struct {
	// Objects are the painted paths, in painting order.
	Objects []model.DrawingObject

	// Text is the page's plain extracted text.
	Text string
}

// Interpreter executes content stream operations against a graphics
// state, collecting drawing objects and text.
type Interpreter struct {
	state *State
	stack []*State
	path  *pathBuilder
	text  textCollector

	objects []model.DrawingObject
}

// NewInterpreter creates an interpreter with a fresh graphics state.
func NewInterpreter() *Interpreter {
	return &Interpreter{
		state: NewState(),
		path:  newPathBuilder(),
	}
}

// Interpret parses the decoded content stream and returns its drawing
// objects and text.
func Interpret(data []byte) (*PageContent, error) {
	ops, err := contentstream.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse content stream: %w", err)
	}
	it := NewInterpreter()
	for _, op := range ops {
		it.process(op)
	}
	return &PageContent{Objects: it.objects, Text: it.text.text()}, nil
}

// process executes one operation. Unknown operators are ignored: the
// stream may carry shading, marked content and font machinery the
// pipeline has no use for.
func (it *Interpreter) process(op contentstream.Operation) {
	switch op.Operator {
	// Graphics state
	case "q":
		it.stack = append(it.stack, it.state.Clone())
	case "Q":
		if n := len(it.stack); n > 0 {
			it.state = it.stack[n-1]
			it.stack = it.stack[:n-1]
		}
	case "cm":
		if v, ok := op.Floats(); ok && len(v) == 6 {
			it.state.Transform(model.Matrix{A: v[0], B: v[1], C: v[2], D: v[3], E: v[4], F: v[5]})
		}
	case "w":
		if v, ok := op.Float(0); ok {
			it.state.LineWidth = v
		}

	// Colors
	case "G":
		if v, ok := op.Float(0); ok {
			it.state.StrokeColor = model.Gray(v)
		}
	case "g":
		if v, ok := op.Float(0); ok {
			it.state.FillColor = model.Gray(v)
		}
	case "RG":
		if v, ok := op.Floats(); ok && len(v) == 3 {
			it.state.StrokeColor = model.Color{R: v[0], G: v[1], B: v[2]}
		}
	case "rg":
		if v, ok := op.Floats(); ok && len(v) == 3 {
			it.state.FillColor = model.Color{R: v[0], G: v[1], B: v[2]}
		}
	case "K":
		if v, ok := op.Floats(); ok && len(v) == 4 {
			it.state.StrokeColor = model.CMYK(v[0], v[1], v[2], v[3])
		}
	case "k":
		if v, ok := op.Floats(); ok && len(v) == 4 {
			it.state.FillColor = model.CMYK(v[0], v[1], v[2], v[3])
		}
	case "CS":
		if len(op.Operands) == 1 && op.Operands[0].Kind == contentstream.KindName {
			it.state.strokeSpace = spaceForName(op.Operands[0].Str)
		}
	case "cs":
		if len(op.Operands) == 1 && op.Operands[0].Kind == contentstream.KindName {
			it.state.fillSpace = spaceForName(op.Operands[0].Str)
		}
	case "SC", "SCN":
		if v, ok := numericOperands(op); ok {
			if c, ok := colorFromComponents(it.state.strokeSpace, v); ok {
				it.state.StrokeColor = c
			}
		}
	case "sc", "scn":
		if v, ok := numericOperands(op); ok {
			if c, ok := colorFromComponents(it.state.fillSpace, v); ok {
				it.state.FillColor = c
			}
		}

	// Path construction
	case "m":
		if v, ok := op.Floats(); ok && len(v) == 2 {
			it.path.moveTo(it.device(v[0], v[1]))
		}
	case "l":
		if v, ok := op.Floats(); ok && len(v) == 2 {
			it.path.lineTo(it.device(v[0], v[1]))
		}
	case "c":
		if v, ok := op.Floats(); ok && len(v) == 6 {
			it.path.curveTo(it.device(v[0], v[1]), it.device(v[2], v[3]), it.device(v[4], v[5]))
		}
	case "v":
		// First control point coincides with the current point.
		if v, ok := op.Floats(); ok && len(v) == 4 {
			c2 := it.device(v[0], v[1])
			end := it.device(v[2], v[3])
			it.path.curveTo(c2, c2, end)
		}
	case "y":
		// Second control point coincides with the end point.
		if v, ok := op.Floats(); ok && len(v) == 4 {
			c1 := it.device(v[0], v[1])
			end := it.device(v[2], v[3])
			it.path.curveTo(c1, end, end)
		}
	case "re":
		if v, ok := op.Floats(); ok && len(v) == 4 {
			x, y, w, h := v[0], v[1], v[2], v[3]
			it.path.rect([4]model.Point{
				it.device(x, y),
				it.device(x+w, y),
				it.device(x+w, y+h),
				it.device(x, y+h),
			})
		}
	case "h":
		it.path.closePath()

	// Path painting
	case "S":
		it.paint(false, true, false)
	case "s":
		it.path.closePath()
		it.paint(false, true, true)
	case "f", "F", "f*":
		it.paint(true, false, false)
	case "B", "B*":
		it.paint(true, true, false)
	case "b", "b*":
		it.path.closePath()
		it.paint(true, true, true)
	case "n":
		it.path.reset()

	// Text
	case "BT", "ET", "Td", "TD", "Tm", "T*":
		it.text.breakRun()
	case "Tj", "'":
		if s, ok := op.String(len(op.Operands) - 1); ok {
			it.text.write(s)
		}
	case "\"":
		if s, ok := op.String(len(op.Operands) - 1); ok {
			it.text.write(s)
		}
	case "TJ":
		if len(op.Operands) == 1 && op.Operands[0].Kind == contentstream.KindArray {
			it.text.writeArray(op.Operands[0].Arr)
		}
	}
}

func (it *Interpreter) device(x, y float64) model.Point {
	return it.state.CTM.Transform(model.Point{X: x, Y: y})
}

// paint emits the current path as a drawing object with the active
// colors.
func (it *Interpreter) paint(fill, stroke, closed bool) {
	var fillColor, strokeColor *model.Color
	if fill {
		c := it.state.FillColor
		fillColor = &c
	}
	if stroke {
		c := it.state.StrokeColor
		strokeColor = &c
	}
	if obj := it.path.object(fillColor, strokeColor, closed); obj != nil {
		it.objects = append(it.objects, *obj)
	}
}

func numericOperands(op contentstream.Operation) ([]float64, bool) {
	var out []float64
	for i, operand := range op.Operands {
		if operand.Kind != contentstream.KindNumber {
			// scn may end with a pattern name; ignore the whole op then.
			if i == len(op.Operands)-1 && operand.Kind == contentstream.KindName {
				break
			}
			return nil, false
		}
		out = append(out, operand.Num)
	}
	return out, len(out) > 0
}
