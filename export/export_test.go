package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/grantdozier/LCR-Area-Calculations-Module/model"
)

func sampleResult() *model.ProjectResult {
	polys := []model.ClassifiedPolygon{
		{
			ID: "page1_poly0", Sheet: 1, Surface: model.SurfaceBuilding,
			AreaSqft: 2314.81, VertexCount: 4, Confidence: 0.9,
			Coordinates: [][2]float64{{100, 100}, {300, 100}, {300, 250}, {100, 250}, {100, 100}},
		},
		{
			ID: "page1_poly1", Sheet: 1, Surface: model.SurfacePervious,
			AreaSqft: 3858.02, VertexCount: 4, Confidence: 0.9,
			Coordinates: [][2]float64{{100, 350}, {350, 350}, {350, 550}, {100, 550}, {100, 350}},
		},
	}
	summary := model.ProjectSummary{
		TotalPolygons:       2,
		TotalImperviousSqft: 2314.81,
		TotalPerviousSqft:   3858.02,
		TotalSiteAreaSqft:   6172.83,
		PercentImpervious:   37.5,
		PercentPervious:     62.5,
		Breakdown:           model.NewBreakdown(),
	}
	summary.Breakdown[model.SurfaceBuilding] = 2314.81
	summary.Breakdown[model.SurfacePervious] = 3858.02
	return &model.ProjectResult{
		Filename:        "site.pdf",
		SheetsProcessed: 1,
		Polygons:        polys,
		Summary:         summary,
	}
}

func TestCSV(t *testing.T) {
	data, err := CSV(sampleResult())
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)

	for _, want := range []string{
		"LCR Area Calculations",
		"Total Polygons,2",
		"Total Impervious (sqft),2314.81",
		"Building (sqft),2314.81",
		"Polygon ID,Sheet,Surface Type,Area (sqft),Perimeter Type",
		"page1_poly0,1,building,2314.81,Impervious",
		"page1_poly1,1,pervious,3858.02,Pervious",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("csv missing %q", want)
		}
	}
}

func TestGeoJSON(t *testing.T) {
	data, err := GeoJSON(sampleResult())
	if err != nil {
		t.Fatal(err)
	}

	var fc struct {
		Type     string `json:"type"`
		Features []struct {
			Geometry struct {
				Type        string         `json:"type"`
				Coordinates [][][2]float64 `json:"coordinates"`
			} `json:"geometry"`
			Properties map[string]any `json:"properties"`
		} `json:"features"`
	}
	if err := json.Unmarshal(data, &fc); err != nil {
		t.Fatal(err)
	}
	if fc.Type != "FeatureCollection" || len(fc.Features) != 2 {
		t.Fatalf("type=%q features=%d", fc.Type, len(fc.Features))
	}

	f := fc.Features[0]
	if f.Geometry.Type != "Polygon" {
		t.Errorf("geometry type = %q", f.Geometry.Type)
	}
	if len(f.Geometry.Coordinates) != 1 || len(f.Geometry.Coordinates[0]) != 5 {
		t.Errorf("ring shape = %v", f.Geometry.Coordinates)
	}
	for _, key := range []string{"id", "sheet", "surface_type", "area_sqft", "perimeter_type"} {
		if _, ok := f.Properties[key]; !ok {
			t.Errorf("properties missing %q", key)
		}
	}
	if f.Properties["perimeter_type"] != "Impervious" {
		t.Errorf("perimeter_type = %v", f.Properties["perimeter_type"])
	}
}

func TestRunoff(t *testing.T) {
	data, err := Runoff(sampleResult())
	if err != nil {
		t.Fatal(err)
	}

	var doc struct {
		ProjectInfo struct {
			TotalSiteSqft float64 `json:"total_site_area_sqft"`
		} `json:"project_info"`
		Coefficients map[string]float64 `json:"runoff_coefficients"`
		Polygons     []json.RawMessage  `json:"polygons"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatal(err)
	}
	if got := doc.ProjectInfo.TotalSiteSqft; got != 2314.81+3858.02 {
		t.Errorf("site area = %v", got)
	}
	wantC := map[string]float64{"concrete": 0.90, "asphalt": 0.90, "building": 0.90, "pervious": 0.20}
	for k, v := range wantC {
		if doc.Coefficients[k] != v {
			t.Errorf("coefficient %s = %v, want %v", k, doc.Coefficients[k], v)
		}
	}
	if len(doc.Polygons) != 2 {
		t.Errorf("polygons = %d", len(doc.Polygons))
	}
}

func TestXLSX(t *testing.T) {
	data, err := XLSX(sampleResult())
	if err != nil {
		t.Fatal(err)
	}
	// XLSX files are zip archives.
	if !bytes.HasPrefix(data, []byte("PK")) {
		t.Fatalf("output does not look like a zip archive: % x", data[:4])
	}
}
