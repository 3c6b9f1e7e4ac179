// Package export writes analysis results out as CSV, GeoJSON, runoff
// JSON, and XLSX artifacts. All writers produce bytes; callers decide
// whether they become files or download responses.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/grantdozier/LCR-Area-Calculations-Module/model"
)

// perimeterType labels a polygon Impervious or Pervious for drainage
// takeoff sheets.
func perimeterType(t model.SurfaceType) string {
	if t.Impervious() {
		return "Impervious"
	}
	return "Pervious"
}

// CSV renders the coverage report: a summary block, the per-type
// breakdown, then one row per polygon.
func CSV(res *model.ProjectResult) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	rows := [][]string{
		{"LCR Area Calculations"},
		{},
		{"Summary"},
		{"Total Polygons", itoa(res.Summary.TotalPolygons)},
		{"Total Impervious (sqft)", ftoa(res.Summary.TotalImperviousSqft)},
		{"Total Pervious (sqft)", ftoa(res.Summary.TotalPerviousSqft)},
		{},
		{"Breakdown by Surface Type"},
		{"Concrete (sqft)", ftoa(res.Summary.Breakdown[model.SurfaceConcrete])},
		{"Asphalt (sqft)", ftoa(res.Summary.Breakdown[model.SurfaceAsphalt])},
		{"Building (sqft)", ftoa(res.Summary.Breakdown[model.SurfaceBuilding])},
		{"Pervious (sqft)", ftoa(res.Summary.Breakdown[model.SurfacePervious])},
		{},
		{"Detailed Polygon Data"},
		{"Polygon ID", "Sheet", "Surface Type", "Area (sqft)", "Perimeter Type"},
	}
	for _, p := range res.Polygons {
		rows = append(rows, []string{
			p.ID,
			itoa(p.Sheet),
			string(p.Surface),
			ftoa(p.AreaSqft),
			perimeterType(p.Surface),
		})
	}

	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("writing csv: %w", err)
	}
	return buf.Bytes(), nil
}

func itoa(n int) string { return fmt.Sprintf("%d", n) }

func ftoa(f float64) string { return fmt.Sprintf("%.2f", f) }
