package model

// SheetTotals is the per-sheet area rollup by surface category.
type SheetTotals struct {
	Impervious float64                 `json:"impervious"`
	Pervious   float64                 `json:"pervious"`
	Breakdown  map[SurfaceType]float64 `json:"breakdown"`
}

// SheetResult is the ordered pipeline output for one plan sheet.
type SheetResult struct {
	SheetNumber int     `json:"sheet_number"`
	PageWidth   float64 `json:"pdf_width"`
	PageHeight  float64 `json:"pdf_height"`

	Scale ScaleFactor `json:"scale"`

	// PreviewDataURI is a base64 PNG data URI of the classified
	// polygons rendered over the page extent, or empty when preview
	// rendering is disabled or failed (preview failure never fails
	// the sheet).
	PreviewDataURI string `json:"image_base64,omitempty"`

	Polygons []ClassifiedPolygon `json:"polygons"`
	Totals   SheetTotals         `json:"sheet_totals"`
}

// PolygonCount returns the number of polygons on the sheet.
func (s *SheetResult) PolygonCount() int { return len(s.Polygons) }

// ProjectSummary aggregates every classified polygon across all sheets.
// It is always recomputed wholly from the polygon set, never patched
// incrementally.
type ProjectSummary struct {
	TotalPolygons         int     `json:"total_polygons"`
	PolygonsNeedingReview int     `json:"polygons_needing_review"`
	TotalImperviousSqft   float64 `json:"total_impervious_sqft"`
	TotalPerviousSqft     float64 `json:"total_pervious_sqft"`
	TotalSiteAreaSqft     float64 `json:"total_site_area_sqft"`
	PercentImpervious     float64 `json:"percent_impervious"`
	PercentPervious       float64 `json:"percent_pervious"`

	Breakdown map[SurfaceType]float64 `json:"breakdown"`
}

// ProjectResult is the full caller-facing output for one document.
type ProjectResult struct {
	Filename        string              `json:"filename"`
	SheetsProcessed int                 `json:"sheets_processed"`
	Sheets          []SheetResult       `json:"sheets"`
	Polygons        []ClassifiedPolygon `json:"polygons"`
	Summary         ProjectSummary      `json:"summary"`
}
