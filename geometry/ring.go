package geometry

import (
	"math"

	"github.com/grantdozier/LCR-Area-Calculations-Module/model"
)

// Ring is an ordered sequence of vertices bounding a polygon. A closed
// ring repeats its first vertex at the end; most constructors in this
// package return closed rings, and the measurement methods tolerate
// both forms.
type Ring []model.Point

// Closed reports whether the ring's first and last vertices coincide.
func (r Ring) Closed() bool {
	if len(r) < 2 {
		return false
	}
	return r[0] == r[len(r)-1]
}

// Close returns the ring with its first vertex appended when it is not
// already closed.
func (r Ring) Close() Ring {
	if len(r) == 0 || r.Closed() {
		return r
	}
	out := make(Ring, len(r)+1)
	copy(out, r)
	out[len(r)] = r[0]
	return out
}

// VertexCount returns the number of boundary vertices, not counting
// the closing repeat.
func (r Ring) VertexCount() int {
	if r.Closed() {
		return len(r) - 1
	}
	return len(r)
}

// CollapseDuplicates removes consecutive duplicate vertices, keeping
// the first of each run. The closing repeat, when present, survives.
func (r Ring) CollapseDuplicates() Ring {
	if len(r) == 0 {
		return r
	}
	out := Ring{r[0]}
	for _, p := range r[1:] {
		if p != out[len(out)-1] {
			out = append(out, p)
		}
	}
	return out
}

// SignedArea returns the shoelace area: positive for counterclockwise
// winding, negative for clockwise.
func (r Ring) SignedArea() float64 {
	n := r.VertexCount()
	if n < 3 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		p := r[i]
		q := r[(i+1)%n]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum / 2
}

// Area returns the absolute enclosed area in square drawing units.
func (r Ring) Area() float64 {
	return math.Abs(r.SignedArea())
}

// Perimeter returns the total boundary length.
func (r Ring) Perimeter() float64 {
	n := r.VertexCount()
	if n < 2 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		sum += r[i].Distance(r[(i+1)%n])
	}
	return sum
}

// Bounds returns the ring's bounding box.
func (r Ring) Bounds() model.BBox {
	return model.NewBBoxFromPoints(r)
}

// Rectangularity returns area over bounding-box area: 1.0 for an exact
// axis-aligned rectangle, lower for anything else. Zero-extent rings
// report 0.
func (r Ring) Rectangularity() float64 {
	boxArea := r.Bounds().Area()
	if boxArea <= 0 {
		return 0
	}
	return r.Area() / boxArea
}

// Compactness returns 4π·area/perimeter²: 1.0 for a circle, lower for
// elongated or irregular outlines. Degenerate rings report 0.
func (r Ring) Compactness() float64 {
	p := r.Perimeter()
	if p <= 0 {
		return 0
	}
	return 4 * math.Pi * r.Area() / (p * p)
}

// Segments returns the ring's boundary edges, closing the ring if
// needed. Zero-length edges are skipped.
func (r Ring) Segments() []model.LineSegment {
	n := r.VertexCount()
	if n < 2 {
		return nil
	}
	segs := make([]model.LineSegment, 0, n)
	for i := 0; i < n; i++ {
		p, q := r[i], r[(i+1)%n]
		if p == q {
			continue
		}
		segs = append(segs, model.LineSegment{P1: p, P2: q})
	}
	return segs
}

// IsSimple reports whether the ring's boundary is free of
// self-intersections: no two non-adjacent edges touch, and adjacent
// edges share only their common endpoint.
func (r Ring) IsSimple() bool {
	ring := r.CollapseDuplicates().Close()
	n := ring.VertexCount()
	if n < 3 {
		return false
	}
	edges := ring.Segments()
	m := len(edges)
	for i := 0; i < m; i++ {
		for j := i + 1; j < m; j++ {
			adjacent := j == i+1 || (i == 0 && j == m-1)
			if adjacent {
				// Adjacent edges may only meet at the shared endpoint;
				// collinear backtracking makes the ring non-simple.
				if segmentsOverlap(edges[i], edges[j]) {
					return false
				}
				continue
			}
			if _, ok := segmentIntersection(edges[i], edges[j]); ok {
				return false
			}
			if segmentsOverlap(edges[i], edges[j]) {
				return false
			}
		}
	}
	return true
}
