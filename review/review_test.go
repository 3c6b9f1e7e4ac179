package review

import (
	"math"
	"slices"
	"testing"

	"github.com/grantdozier/LCR-Area-Calculations-Module/model"
)

func rect(w, h float64) []model.Point {
	return []model.Point{{X: 0, Y: 0}, {X: w, Y: 0}, {X: w, Y: h}, {X: 0, Y: h}, {X: 0, Y: 0}}
}

func TestScoreCleanPolygon(t *testing.T) {
	got := Score(rect(100, 100), 2500, nil)
	if got.Needed {
		t.Fatalf("clean square flagged: %v", got.Reasons)
	}
	// Square: compactness π/4 > 0.5, 4 vertices, mid-range area.
	if math.Abs(got.Confidence-0.9) > 1e-9 {
		t.Errorf("confidence = %v, want 0.9", got.Confidence)
	}
}

func TestScoreFlags(t *testing.T) {
	tests := []struct {
		name   string
		ring   []model.Point
		sqft   float64
		reason string
	}{
		{"small area", rect(20, 20), 60, ReasonSmallArea},
		{"large area", rect(600, 600), 80000, ReasonLargeArea},
		{"sliver", rect(1000, 1), 800, ReasonIrregular},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.ring, tt.sqft, nil)
			if !got.Needed {
				t.Fatal("not flagged")
			}
			if !slices.Contains(got.Reasons, tt.reason) {
				t.Errorf("reasons = %v, want %q", got.Reasons, tt.reason)
			}
		})
	}
}

func TestScoreComplexPolygon(t *testing.T) {
	// A 60-vertex zigzag strip trips the complexity flag.
	var ring []model.Point
	for i := 0; i < 30; i++ {
		x := float64(i * 20)
		ring = append(ring, model.Point{X: x, Y: 0}, model.Point{X: x + 10, Y: 5})
	}
	ring = append(ring, model.Point{X: 600, Y: 200}, model.Point{X: 0, Y: 200}, ring[0])

	got := Score(ring, 5000, nil)
	if !slices.Contains(got.Reasons, ReasonComplex) {
		t.Errorf("reasons = %v, want %q", got.Reasons, ReasonComplex)
	}
}

func TestScoreOutlier(t *testing.T) {
	areas := make([]float64, 0, 13)
	for i := 0; i < 12; i++ {
		areas = append(areas, 1000+float64(i))
	}
	areas = append(areas, 40000)

	got := Score(rect(100, 100), 40000, areas)
	if !slices.Contains(got.Reasons, ReasonOutlier) {
		t.Errorf("reasons = %v, want %q", got.Reasons, ReasonOutlier)
	}

	// A typical member of the same population is not flagged.
	got = Score(rect(100, 100), 1005, areas)
	if slices.Contains(got.Reasons, ReasonOutlier) {
		t.Errorf("typical area flagged as outlier: %v", got.Reasons)
	}

	// Too few samples: no outlier detection at all.
	got = Score(rect(100, 100), 40000, areas[:5])
	if slices.Contains(got.Reasons, ReasonOutlier) {
		t.Error("outlier flagged with too few samples")
	}
}

func TestConfidenceDegrades(t *testing.T) {
	clean := Score(rect(100, 100), 2500, nil)
	sliver := Score(rect(1000, 1), 60, nil)
	if sliver.Confidence >= clean.Confidence {
		t.Errorf("sliver confidence %v not below clean %v", sliver.Confidence, clean.Confidence)
	}
}
