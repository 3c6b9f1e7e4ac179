package vector

import "github.com/grantdozier/LCR-Area-Calculations-Module/model"

// closeTolerance is how near (in drawing units) a path's first and last
// points must be for the path to count as implicitly closed. It
// compensates for coordinate rounding in exported CAD paths.
const closeTolerance = 5.0

// CollectPrimitives normalizes a page's drawing objects into typed
// primitives. One object can contribute to several categories: a filled
// path with a matching start and end point becomes both a filled-path
// and a closed-path primitive, and its edges still join the page-wide
// line network.
func CollectPrimitives(objects []model.DrawingObject) model.Primitives {
	var prims model.Primitives

	for _, obj := range objects {
		points := collectObject(&prims, obj)

		if obj.Fill != nil && len(points) >= 3 {
			prims.FilledPaths = append(prims.FilledPaths, model.PointPath{
				Points: points,
				Fill:   obj.Fill,
				Stroke: obj.Stroke,
				Closed: obj.Closed,
			})
		}

		if len(points) >= 4 {
			first := points[0]
			last := points[len(points)-1]
			if obj.Closed || first.Distance(last) < closeTolerance {
				prims.ClosedPaths = append(prims.ClosedPaths, model.PointPath{
					Points: points,
					Fill:   obj.Fill,
					Stroke: obj.Stroke,
					Closed: true,
				})
			}
		}
	}

	return prims
}

// collectObject walks one object's commands, appending rectangles and
// line segments to the primitive set and returning the object's path
// point sequence.
func collectObject(prims *model.Primitives, obj model.DrawingObject) []model.Point {
	var points []model.Point
	var current, subStart model.Point
	var hasCurrent bool

	for _, cmd := range obj.Commands {
		switch cmd.Op {
		case model.OpMove:
			current = cmd.Points[0]
			subStart = current
			hasCurrent = true
			points = append(points, current)

		case model.OpLine:
			p := cmd.Points[0]
			if hasCurrent && p != current {
				prims.Segments = append(prims.Segments, model.LineSegment{P1: current, P2: p})
			}
			current = p
			hasCurrent = true
			points = append(points, p)

		case model.OpRect:
			b := model.NewBBoxFromPoints(cmd.Points)
			prims.Rectangles = append(prims.Rectangles, model.Rectangle{
				X0: b.Left(), Y0: b.Bottom(), X1: b.Right(), Y1: b.Top(),
				Fill:   obj.Fill,
				Stroke: obj.Stroke,
			})
			current = cmd.Points[0]
			subStart = current
			hasCurrent = true

		case model.OpClose:
			if hasCurrent && current != subStart {
				prims.Segments = append(prims.Segments, model.LineSegment{P1: current, P2: subStart})
			}
			current = subStart
		}
	}

	return points
}
