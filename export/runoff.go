package export

import (
	"encoding/json"
	"fmt"

	"github.com/grantdozier/LCR-Area-Calculations-Module/model"
)

// RunoffCoefficients are the rational-method C values per surface type,
// from the LADOTD Hydraulics Manual (Table 3-C.3-1 for paving and
// roofs; the pervious value is a grass/landscape average).
var RunoffCoefficients = map[model.SurfaceType]float64{
	model.SurfaceConcrete: 0.90,
	model.SurfaceAsphalt:  0.90,
	model.SurfaceBuilding: 0.90,
	model.SurfacePervious: 0.20,
}

type runoffDocument struct {
	ProjectInfo      runoffProjectInfo             `json:"project_info"`
	SurfaceBreakdown map[model.SurfaceType]float64 `json:"surface_breakdown"`
	Coefficients     map[model.SurfaceType]float64 `json:"runoff_coefficients"`
	Polygons         []model.ClassifiedPolygon     `json:"polygons"`
}

type runoffProjectInfo struct {
	Module         string  `json:"module"`
	TotalSiteSqft  float64 `json:"total_site_area_sqft"`
	ImperviousSqft float64 `json:"impervious_area_sqft"`
	PerviousSqft   float64 `json:"pervious_area_sqft"`
}

// Runoff renders the drainage-calculation input document: site totals,
// the surface breakdown, and the C value table alongside the polygons.
func Runoff(res *model.ProjectResult) ([]byte, error) {
	doc := runoffDocument{
		ProjectInfo: runoffProjectInfo{
			Module:         "LCR Area Calculations",
			TotalSiteSqft:  res.Summary.TotalImperviousSqft + res.Summary.TotalPerviousSqft,
			ImperviousSqft: res.Summary.TotalImperviousSqft,
			PerviousSqft:   res.Summary.TotalPerviousSqft,
		},
		SurfaceBreakdown: res.Summary.Breakdown,
		Coefficients:     RunoffCoefficients,
		Polygons:         res.Polygons,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding runoff document: %w", err)
	}
	return data, nil
}
