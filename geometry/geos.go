//go:build geos

package geometry

import (
	"encoding/json"
	"fmt"

	"github.com/twpayne/go-geos"

	"github.com/grantdozier/LCR-Area-Calculations-Module/model"
)

// GEOSEngine binds validity repair and polygonization to libgeos via
// go-geos. It produces the same faces as the pure-Go engine on the
// inputs this pipeline generates, with libgeos doing the heavy lifting.
//
// Requires libgeos to be installed. On macOS:
//
//	brew install geos
//
// On Ubuntu/Debian:
//
//	apt-get install libgeos-dev
type GEOSEngine struct{}

// NewGEOSEngine creates a GEOS-backed engine.
func NewGEOSEngine() (*GEOSEngine, error) {
	return &GEOSEngine{}, nil
}

// Repair returns the valid simple rings closest to the given ring,
// using GEOS MakeValid with linework repair.
func (e *GEOSEngine) Repair(ring Ring) []Ring {
	r := ring.CollapseDuplicates()
	if r.VertexCount() < 3 {
		return nil
	}
	closed := r.Close()

	g, err := geos.NewGeomFromGeoJSON(polygonGeoJSON(closed))
	if err != nil || g == nil {
		return nil
	}
	if !g.IsValid() {
		g = g.MakeValidWithParams(geos.MakeValidLinework, geos.MakeValidDiscardCollapsed)
		if g == nil {
			return nil
		}
	}
	return ringsFromGeoJSON(g.ToGeoJSON(-1))
}

// Polygonize extracts all bounded faces from the segments' planar
// arrangement via GEOS Polygonize.
func (e *GEOSEngine) Polygonize(segments []model.LineSegment) []Ring {
	lines := make([]*geos.Geom, 0, len(segments))
	for _, s := range segments {
		if s.P1 == s.P2 {
			continue
		}
		g, err := geos.NewGeomFromGeoJSON(lineGeoJSON(s))
		if err != nil || g == nil {
			continue
		}
		lines = append(lines, g)
	}
	if len(lines) == 0 {
		return nil
	}

	// GEOS polygonize requires noded input; union the lines first.
	coll := geos.NewCollection(geos.TypeIDGeometryCollection, lines)
	if coll == nil {
		return nil
	}
	noded := coll.UnaryUnion()
	if noded == nil {
		return nil
	}
	faces := geos.Polygonize([]*geos.Geom{noded})
	if faces == nil {
		return nil
	}
	return ringsFromGeoJSON(faces.ToGeoJSON(-1))
}

func polygonGeoJSON(ring Ring) string {
	return fmt.Sprintf(`{"type":"Polygon","coordinates":[%s]}`, coordsJSON(ring))
}

func lineGeoJSON(s model.LineSegment) string {
	return fmt.Sprintf(`{"type":"LineString","coordinates":[[%g,%g],[%g,%g]]}`,
		s.P1.X, s.P1.Y, s.P2.X, s.P2.Y)
}

func coordsJSON(ring Ring) string {
	b, _ := json.Marshal(ringCoords(ring))
	return string(b)
}

func ringCoords(ring Ring) [][2]float64 {
	out := make([][2]float64, len(ring))
	for i, p := range ring {
		out[i] = [2]float64{p.X, p.Y}
	}
	return out
}

// ringsFromGeoJSON pulls every polygon exterior ring out of a GeoJSON
// geometry of any nesting (Polygon, MultiPolygon, GeometryCollection).
func ringsFromGeoJSON(doc string) []Ring {
	var geom struct {
		Type        string            `json:"type"`
		Coordinates json.RawMessage   `json:"coordinates"`
		Geometries  []json.RawMessage `json:"geometries"`
	}
	if err := json.Unmarshal([]byte(doc), &geom); err != nil {
		return nil
	}

	var rings []Ring
	switch geom.Type {
	case "Polygon":
		var coords [][][2]float64
		if err := json.Unmarshal(geom.Coordinates, &coords); err == nil && len(coords) > 0 {
			rings = append(rings, ringFromCoords(coords[0]))
		}
	case "MultiPolygon":
		var coords [][][][2]float64
		if err := json.Unmarshal(geom.Coordinates, &coords); err == nil {
			for _, poly := range coords {
				if len(poly) > 0 {
					rings = append(rings, ringFromCoords(poly[0]))
				}
			}
		}
	case "GeometryCollection":
		for _, sub := range geom.Geometries {
			rings = append(rings, ringsFromGeoJSON(string(sub))...)
		}
	}
	return rings
}

func ringFromCoords(coords [][2]float64) Ring {
	ring := make(Ring, len(coords))
	for i, c := range coords {
		ring[i] = model.Point{X: c[0], Y: c[1]}
	}
	return ring
}
