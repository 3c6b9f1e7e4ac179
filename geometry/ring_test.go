package geometry

import (
	"math"
	"testing"

	"github.com/grantdozier/LCR-Area-Calculations-Module/model"
)

func pts(xy ...float64) Ring {
	r := make(Ring, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		r = append(r, model.Point{X: xy[i], Y: xy[i+1]})
	}
	return r
}

func TestRingClose(t *testing.T) {
	open := pts(0, 0, 10, 0, 10, 10)
	closed := open.Close()
	if !closed.Closed() {
		t.Fatal("Close did not close the ring")
	}
	if open.Closed() {
		t.Fatal("Close mutated the receiver")
	}
	if closed.Close().VertexCount() != 3 {
		t.Errorf("double close changed vertex count: %d", closed.Close().VertexCount())
	}
}

func TestRingMeasurements(t *testing.T) {
	// 10x10 counterclockwise square.
	sq := pts(0, 0, 10, 0, 10, 10, 0, 10, 0, 0)

	if got := sq.SignedArea(); got != 100 {
		t.Errorf("SignedArea = %v, want 100", got)
	}
	if got := sq.Perimeter(); got != 40 {
		t.Errorf("Perimeter = %v, want 40", got)
	}
	if got := sq.Rectangularity(); got != 1 {
		t.Errorf("Rectangularity = %v, want 1", got)
	}
	want := math.Pi / 4
	if got := sq.Compactness(); math.Abs(got-want) > 1e-12 {
		t.Errorf("Compactness = %v, want %v", got, want)
	}

	// Clockwise winding flips the sign, not the area.
	cw := pts(0, 0, 0, 10, 10, 10, 10, 0, 0, 0)
	if got := cw.SignedArea(); got != -100 {
		t.Errorf("clockwise SignedArea = %v, want -100", got)
	}
	if got := cw.Area(); got != 100 {
		t.Errorf("clockwise Area = %v, want 100", got)
	}
}

func TestCollapseDuplicates(t *testing.T) {
	r := pts(0, 0, 0, 0, 10, 0, 10, 0, 10, 10, 0, 0)
	got := r.CollapseDuplicates()
	if len(got) != 4 {
		t.Fatalf("collapsed length = %d, want 4", len(got))
	}
}

func TestIsSimple(t *testing.T) {
	tests := []struct {
		name string
		ring Ring
		want bool
	}{
		{"square", pts(0, 0, 10, 0, 10, 10, 0, 10), true},
		{"triangle", pts(0, 0, 10, 0, 5, 8), true},
		{"bowtie", pts(0, 0, 10, 10, 10, 0, 0, 10), false},
		{"spike backtrack", pts(0, 0, 10, 0, 20, 0, 10, 0, 10, 10), false},
		{"degenerate", pts(0, 0, 10, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ring.IsSimple(); got != tt.want {
				t.Errorf("IsSimple = %v, want %v", got, tt.want)
			}
		})
	}
}
