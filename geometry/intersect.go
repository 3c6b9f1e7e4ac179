package geometry

import (
	"math"

	"github.com/grantdozier/LCR-Area-Calculations-Module/model"
)

// epsilon for parametric intersection tests. Coordinates are PDF
// drawing units, so magnitudes stay modest and an absolute tolerance
// is adequate.
const intersectEps = 1e-9

func cross(ax, ay, bx, by float64) float64 {
	return ax*by - ay*bx
}

// segmentIntersection returns the point where two non-parallel segments
// meet, if they do. Touching at endpoints counts as an intersection.
func segmentIntersection(a, b model.LineSegment) (model.Point, bool) {
	d1x := a.P2.X - a.P1.X
	d1y := a.P2.Y - a.P1.Y
	d2x := b.P2.X - b.P1.X
	d2y := b.P2.Y - b.P1.Y

	denom := cross(d1x, d1y, d2x, d2y)
	if math.Abs(denom) < intersectEps {
		return model.Point{}, false
	}

	ex := b.P1.X - a.P1.X
	ey := b.P1.Y - a.P1.Y
	t := cross(ex, ey, d2x, d2y) / denom
	u := cross(ex, ey, d1x, d1y) / denom

	if t < -intersectEps || t > 1+intersectEps || u < -intersectEps || u > 1+intersectEps {
		return model.Point{}, false
	}
	return model.Point{X: a.P1.X + t*d1x, Y: a.P1.Y + t*d1y}, true
}

// segmentsOverlap reports whether two segments are collinear and share
// a portion of positive length.
func segmentsOverlap(a, b model.LineSegment) bool {
	d1x := a.P2.X - a.P1.X
	d1y := a.P2.Y - a.P1.Y
	d2x := b.P2.X - b.P1.X
	d2y := b.P2.Y - b.P1.Y

	if math.Abs(cross(d1x, d1y, d2x, d2y)) > intersectEps {
		return false
	}
	// Parallel; collinear only if b.P1 lies on a's supporting line.
	if math.Abs(cross(b.P1.X-a.P1.X, b.P1.Y-a.P1.Y, d1x, d1y)) > intersectEps {
		return false
	}

	// Project onto the dominant axis and compare intervals.
	along := func(p model.Point) float64 {
		if math.Abs(d1x) >= math.Abs(d1y) {
			return p.X
		}
		return p.Y
	}
	a0, a1 := along(a.P1), along(a.P2)
	if a1 < a0 {
		a0, a1 = a1, a0
	}
	b0, b1 := along(b.P1), along(b.P2)
	if b1 < b0 {
		b0, b1 = b1, b0
	}
	return math.Min(a1, b1)-math.Max(a0, b0) > intersectEps
}

// pointOnSegment reports whether p lies on s, endpoints included.
func pointOnSegment(p model.Point, s model.LineSegment) bool {
	dx := s.P2.X - s.P1.X
	dy := s.P2.Y - s.P1.Y
	if math.Abs(cross(p.X-s.P1.X, p.Y-s.P1.Y, dx, dy)) > 1e-6 {
		return false
	}
	dot := (p.X-s.P1.X)*dx + (p.Y-s.P1.Y)*dy
	if dot < -intersectEps {
		return false
	}
	return dot <= dx*dx+dy*dy+intersectEps
}
