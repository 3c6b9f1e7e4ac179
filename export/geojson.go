package export

import (
	"encoding/json"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/grantdozier/LCR-Area-Calculations-Module/model"
)

// GeoJSON renders every polygon as a Feature with coverage properties.
// Coordinates are raw page units; the collection is not georeferenced.
func GeoJSON(res *model.ProjectResult) ([]byte, error) {
	fc := geojson.NewFeatureCollection()
	for _, p := range res.Polygons {
		ring := make(orb.Ring, len(p.Coordinates))
		for i, c := range p.Coordinates {
			ring[i] = orb.Point{c[0], c[1]}
		}

		f := geojson.NewFeature(orb.Polygon{ring})
		f.Properties["id"] = p.ID
		f.Properties["sheet"] = p.Sheet
		f.Properties["surface_type"] = string(p.Surface)
		f.Properties["area_sqft"] = p.AreaSqft
		f.Properties["perimeter_type"] = perimeterType(p.Surface)
		fc.Append(f)
	}

	data, err := json.MarshalIndent(fc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding geojson: %w", err)
	}
	return data, nil
}
