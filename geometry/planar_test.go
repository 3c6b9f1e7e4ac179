package geometry

import (
	"math"
	"sort"
	"testing"

	"github.com/grantdozier/LCR-Area-Calculations-Module/model"
)

func seg(x1, y1, x2, y2 float64) model.LineSegment {
	return model.LineSegment{
		P1: model.Point{X: x1, Y: y1},
		P2: model.Point{X: x2, Y: y2},
	}
}

func areas(rings []Ring) []float64 {
	out := make([]float64, len(rings))
	for i, r := range rings {
		out[i] = r.Area()
	}
	sort.Float64s(out)
	return out
}

func TestPolygonizeSquare(t *testing.T) {
	e := NewEngine()
	faces := e.Polygonize([]model.LineSegment{
		seg(0, 0, 10, 0),
		seg(10, 0, 10, 10),
		seg(10, 10, 0, 10),
		seg(0, 10, 0, 0),
	})
	if len(faces) != 1 {
		t.Fatalf("faces = %d, want 1", len(faces))
	}
	if got := faces[0].Area(); math.Abs(got-100) > 1e-9 {
		t.Errorf("area = %v, want 100", got)
	}
	if !faces[0].Closed() {
		t.Error("face ring not closed")
	}
}

func TestPolygonizeSharedEdge(t *testing.T) {
	// Two 10x10 squares sharing the edge x=10.
	e := NewEngine()
	faces := e.Polygonize([]model.LineSegment{
		seg(0, 0, 10, 0), seg(10, 0, 10, 10), seg(10, 10, 0, 10), seg(0, 10, 0, 0),
		seg(10, 0, 20, 0), seg(20, 0, 20, 10), seg(20, 10, 10, 10),
	})
	if len(faces) != 2 {
		t.Fatalf("faces = %d, want 2", len(faces))
	}
	got := areas(faces)
	if math.Abs(got[0]-100) > 1e-9 || math.Abs(got[1]-100) > 1e-9 {
		t.Errorf("areas = %v, want [100 100]", got)
	}
}

func TestPolygonizeCrossingSegments(t *testing.T) {
	// A square with both diagonals: noding at the center yields four
	// triangular faces of 25 each.
	e := NewEngine()
	faces := e.Polygonize([]model.LineSegment{
		seg(0, 0, 10, 0), seg(10, 0, 10, 10), seg(10, 10, 0, 10), seg(0, 10, 0, 0),
		seg(0, 0, 10, 10),
		seg(10, 0, 0, 10),
	})
	if len(faces) != 4 {
		t.Fatalf("faces = %d, want 4", len(faces))
	}
	for _, a := range areas(faces) {
		if math.Abs(a-25) > 1e-9 {
			t.Errorf("face area = %v, want 25", a)
		}
	}
}

func TestPolygonizeIgnoresDangles(t *testing.T) {
	e := NewEngine()
	faces := e.Polygonize([]model.LineSegment{
		seg(0, 0, 10, 0), seg(10, 0, 10, 10), seg(10, 10, 0, 10), seg(0, 10, 0, 0),
		// Spur hanging off a corner, and a free-floating segment.
		seg(10, 10, 20, 20),
		seg(50, 50, 60, 50),
	})
	if len(faces) != 1 {
		t.Fatalf("faces = %d, want 1", len(faces))
	}
	if got := faces[0].Area(); math.Abs(got-100) > 1e-9 {
		t.Errorf("area = %v, want 100", got)
	}
}

func TestPolygonizeDuplicateSegments(t *testing.T) {
	e := NewEngine()
	faces := e.Polygonize([]model.LineSegment{
		seg(0, 0, 10, 0), seg(0, 0, 10, 0), seg(10, 0, 0, 0),
		seg(10, 0, 10, 10), seg(10, 10, 0, 10), seg(0, 10, 0, 0),
	})
	if len(faces) != 1 {
		t.Fatalf("faces = %d, want 1", len(faces))
	}
}

func TestPolygonizeEmpty(t *testing.T) {
	e := NewEngine()
	if faces := e.Polygonize(nil); len(faces) != 0 {
		t.Errorf("faces from empty input = %d", len(faces))
	}
	// Two segments can never bound a face.
	faces := e.Polygonize([]model.LineSegment{seg(0, 0, 10, 0), seg(10, 0, 0, 0)})
	if len(faces) != 0 {
		t.Errorf("faces = %d, want 0", len(faces))
	}
}

func TestRepairSimplePassThrough(t *testing.T) {
	e := NewEngine()
	rings := e.Repair(pts(0, 0, 10, 0, 10, 10, 0, 10))
	if len(rings) != 1 {
		t.Fatalf("rings = %d, want 1", len(rings))
	}
	if !rings[0].Closed() {
		t.Error("repaired ring not closed")
	}
	if got := rings[0].Area(); math.Abs(got-100) > 1e-9 {
		t.Errorf("area = %v, want 100", got)
	}
}

func TestRepairBowtie(t *testing.T) {
	e := NewEngine()
	rings := e.Repair(pts(0, 0, 10, 10, 10, 0, 0, 10))
	if len(rings) != 2 {
		t.Fatalf("rings = %d, want 2 lobes", len(rings))
	}
	for _, r := range rings {
		if got := r.Area(); math.Abs(got-25) > 1e-9 {
			t.Errorf("lobe area = %v, want 25", got)
		}
	}
}

func TestRepairDegenerate(t *testing.T) {
	e := NewEngine()
	if rings := e.Repair(pts(0, 0, 10, 0)); rings != nil {
		t.Errorf("degenerate ring produced %d rings", len(rings))
	}
}
