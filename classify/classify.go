// Package classify assigns a surface type to each accepted polygon.
//
// Classification is a fixed rule cascade. Fill-color rules run first
// because a color on a civil sheet is a deliberate legend choice; shape
// metrics only decide when the polygon carries no fill, which is the
// usual case for outlines recovered from loose line work.
package classify

import (
	"math"

	"github.com/grantdozier/LCR-Area-Calculations-Module/geometry"
	"github.com/grantdozier/LCR-Area-Calculations-Module/model"
)

// Classify determines the surface type of one polygon from its fill
// color and shape metrics.
func Classify(p model.AcceptedPolygon) model.SurfaceType {
	ring := geometry.Ring(p.Ring)
	rectangularity := ring.Rectangularity()
	compactness := ring.Compactness()
	vertices := ring.VertexCount()
	area := p.AreaPDFUnits

	if p.Fill != nil {
		if t, ok := byColor(*p.Fill, rectangularity, vertices); ok {
			return t
		}
	}
	return byShape(rectangularity, compactness, vertices, area)
}

// byColor maps a fill color to a surface type. Grays are read darkest
// first so that black does not fall through to the asphalt band.
func byColor(c model.Color, rectangularity float64, vertices int) (model.SurfaceType, bool) {
	r, g, b := c.R, c.G, c.B

	// Solid black fill is a building footprint.
	if r < 0.2 && g < 0.2 && b < 0.2 {
		return model.SurfaceBuilding, true
	}

	// Dark neutral gray reads as asphalt paving.
	if r < 0.4 && g < 0.4 && b < 0.4 && math.Abs(r-g) < 0.1 {
		return model.SurfaceAsphalt, true
	}

	// Medium neutral gray reads as concrete.
	if r >= 0.4 && r <= 0.85 && math.Abs(r-g) < 0.15 && math.Abs(r-b) < 0.15 {
		return model.SurfaceConcrete, true
	}

	// Near-white: a tight rectangle is a building outline drawn with a
	// white knockout fill; anything else is concrete.
	if r > 0.85 && g > 0.85 && b > 0.85 {
		if rectangularity > 0.85 && vertices <= 6 {
			return model.SurfaceBuilding, true
		}
		return model.SurfaceConcrete, true
	}

	// Green tint is landscaping.
	if g > r*1.1 && g > b*1.1 {
		return model.SurfacePervious, true
	}

	// Blue tint is a pond or detention feature.
	if b > r*1.2 && b > g*1.1 {
		return model.SurfaceWater, true
	}

	// Red or brown tint is typically a roof hatch.
	if r > g*1.2 && r > b*1.2 {
		return model.SurfaceBuilding, true
	}

	return "", false
}

// byShape decides from geometry alone when no fill rule matched.
func byShape(rectangularity, compactness float64, vertices int, area float64) model.SurfaceType {
	if rectangularity > 0.88 && vertices <= 8 {
		if area > 1000 {
			return model.SurfaceBuilding
		}
		return model.SurfaceConcrete
	}
	if rectangularity > 0.6 {
		return model.SurfaceConcrete
	}
	if compactness > 0.7 {
		return model.SurfaceConcrete
	}
	return model.SurfacePervious
}
