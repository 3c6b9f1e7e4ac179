// Package review scores classified polygons for manual-review flags
// and classification confidence. The flags catch the failure modes a
// reviewer actually sees on plan sheets: text fragments that slipped
// past the noise floors, merged parking lots, and jagged outlines left
// by over-noded line work.
package review

import (
	"math"

	"github.com/grantdozier/LCR-Area-Calculations-Module/geometry"
	"github.com/grantdozier/LCR-Area-Calculations-Module/model"
)

// Flag reasons reported in review_reasons. Stable strings; exports and
// the frontend filter on them.
const (
	ReasonSmallArea = "Very small area"
	ReasonLargeArea = "Very large area"
	ReasonIrregular = "Irregular shape"
	ReasonComplex   = "Complex polygon"
	ReasonOutlier   = "Statistical outlier"
)

// Thresholds for the review flags, in square feet and shape units.
const (
	smallAreaSqft  = 100.0
	largeAreaSqft  = 50000.0
	minCompactness = 0.15
	maxVertices    = 50
	outlierSigma   = 3.0

	// Outlier detection needs a population to be meaningful.
	minOutlierSample = 10
)

// Result carries one polygon's review outcome.
type Result struct {
	Needed     bool
	Reasons    []string
	Confidence float64
}

// Score evaluates one polygon against the review rules. allAreas is
// the full set of polygon areas (square feet) on the same sheet, used
// for outlier detection; it may include the polygon itself.
func Score(ring []model.Point, areaSqft float64, allAreas []float64) Result {
	g := geometry.Ring(ring)
	compactness := g.Compactness()
	vertices := g.VertexCount()

	var reasons []string
	if areaSqft < smallAreaSqft {
		reasons = append(reasons, ReasonSmallArea)
	}
	if areaSqft > largeAreaSqft {
		reasons = append(reasons, ReasonLargeArea)
	}
	if compactness < minCompactness {
		reasons = append(reasons, ReasonIrregular)
	}
	if vertices > maxVertices {
		reasons = append(reasons, ReasonComplex)
	}
	if len(allAreas) > minOutlierSample {
		mean, std := meanStd(allAreas)
		if math.Abs(areaSqft-mean) > outlierSigma*std {
			reasons = append(reasons, ReasonOutlier)
		}
	}

	return Result{
		Needed:     len(reasons) > 0,
		Reasons:    reasons,
		Confidence: confidence(compactness, vertices, areaSqft),
	}
}

// confidence averages three independent quality signals into a score
// in [0,1]. Each factor rewards the mid-range a clean surface polygon
// lands in.
func confidence(compactness float64, vertices int, areaSqft float64) float64 {
	var sum float64

	switch {
	case compactness > 0.5:
		sum += 0.9
	case compactness > 0.3:
		sum += 0.7
	default:
		sum += 0.5
	}

	switch {
	case vertices < 10:
		sum += 0.9
	case vertices < 30:
		sum += 0.75
	default:
		sum += 0.6
	}

	switch {
	case areaSqft > 500 && areaSqft < 50000:
		sum += 0.9
	case areaSqft > 100 && areaSqft < 100000:
		sum += 0.75
	default:
		sum += 0.6
	}

	return math.Round(sum/3*100) / 100
}

func meanStd(xs []float64) (mean, std float64) {
	if len(xs) == 0 {
		return 0, 0
	}
	for _, x := range xs {
		mean += x
	}
	mean /= float64(len(xs))
	var variance float64
	for _, x := range xs {
		d := x - mean
		variance += d * d
	}
	variance /= float64(len(xs))
	return mean, math.Sqrt(variance)
}
