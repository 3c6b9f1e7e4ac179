package vector

import (
	"github.com/grantdozier/LCR-Area-Calculations-Module/geometry"
	"github.com/grantdozier/LCR-Area-Calculations-Module/model"
)

// Noise floors in square drawing units. Anything at or below these is
// dropped before filtering; plan sheets are full of hatch marks, text
// underlines and leader arrows that would otherwise swamp the results.
const (
	minFilledArea      = 100.0
	minClosedArea      = 200.0
	minRectArea        = 100.0
	minPolygonizedArea = 500.0
)

// Reconstructor turns primitives into candidate polygons. The Engine
// repairs self-intersecting rings and assembles polygons from the loose
// line network.
type Reconstructor struct {
	Engine geometry.Engine
}

// NewReconstructor returns a Reconstructor backed by the default
// geometry engine.
func NewReconstructor() *Reconstructor {
	return &Reconstructor{Engine: geometry.NewEngine()}
}

// Reconstruct produces candidate polygons from every primitive source.
// Source order is fixed (filled paths, closed paths, rectangles, then
// polygonized line work) so that later deduplication keeps the richest
// representation of each region.
func (r *Reconstructor) Reconstruct(prims model.Primitives) []model.CandidatePolygon {
	var out []model.CandidatePolygon

	for _, fp := range prims.FilledPaths {
		ring := geometry.Ring(fp.Points).CollapseDuplicates().Close()
		if ring.VertexCount() < 3 || !ring.IsSimple() {
			continue
		}
		if ring.Area() > minFilledArea {
			out = append(out, model.CandidatePolygon{
				Ring:   ring,
				Fill:   fp.Fill,
				Stroke: fp.Stroke,
				Origin: model.OriginFilledPath,
			})
		}
	}

	for _, cp := range prims.ClosedPaths {
		ring := geometry.Ring(cp.Points).CollapseDuplicates().Close()
		if ring.VertexCount() < 3 {
			continue
		}
		rings := []geometry.Ring{ring}
		if !ring.IsSimple() {
			rings = r.Engine.Repair(ring)
		}
		for _, rg := range rings {
			if rg.Area() > minClosedArea {
				out = append(out, model.CandidatePolygon{
					Ring:   rg,
					Fill:   cp.Fill,
					Stroke: cp.Stroke,
					Origin: model.OriginClosedPath,
				})
			}
		}
	}

	for _, rect := range prims.Rectangles {
		b := rect.Bounds()
		if b.Area() > minRectArea {
			out = append(out, model.CandidatePolygon{
				Ring: []model.Point{
					{X: b.Left(), Y: b.Bottom()},
					{X: b.Right(), Y: b.Bottom()},
					{X: b.Right(), Y: b.Top()},
					{X: b.Left(), Y: b.Top()},
					{X: b.Left(), Y: b.Bottom()},
				},
				Fill:   rect.Fill,
				Stroke: rect.Stroke,
				Origin: model.OriginRectangle,
			})
		}
	}

	for _, ring := range r.Engine.Polygonize(prims.Segments) {
		if ring.Area() > minPolygonizedArea {
			out = append(out, model.CandidatePolygon{
				Ring:   ring,
				Origin: model.OriginLineNetwork,
			})
		}
	}

	return out
}
