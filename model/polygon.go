package model

// OriginKind records which primitive source a candidate polygon was
// recovered from. The reconstructor's area floors and the deduplicator's
// keep-first rule both depend on it.
type OriginKind int

const (
	// OriginFilledPath marks polygons built from filled point paths.
	OriginFilledPath OriginKind = iota
	// OriginClosedPath marks polygons built from closed (but unfilled) paths.
	OriginClosedPath
	// OriginRectangle marks polygons built from rectangle primitives.
	OriginRectangle
	// OriginLineNetwork marks faces recovered from the page-wide line network.
	OriginLineNetwork
)

// String returns the origin name used in exports and logs.
func (k OriginKind) String() string {
	switch k {
	case OriginFilledPath:
		return "filled_path"
	case OriginClosedPath:
		return "closed_path"
	case OriginRectangle:
		return "rectangle"
	case OriginLineNetwork:
		return "polygonized_lines"
	}
	return "unknown"
}

// CandidatePolygon is a closed ring recovered from a primitive, before
// filtering. The ring is closed (first point == last point) and simple;
// rings that cannot be repaired to a simple polygon are never emitted.
type CandidatePolygon struct {
	// Ring holds the boundary vertices in page units, closed.
	Ring []Point

	Fill   *Color
	Stroke *Color
	Origin OriginKind
}

// AcceptedPolygon is a candidate that survived the filter and
// deduplication stage, with its measurements attached.
type AcceptedPolygon struct {
	CandidatePolygon

	AreaPDFUnits float64
	Bounds       BBox
}

// ClassifiedPolygon is the pipeline's final per-shape output.
type ClassifiedPolygon struct {
	ID          string       `json:"id"`
	Sheet       int          `json:"sheet"`
	Surface     SurfaceType  `json:"type"`
	AreaSqft    float64      `json:"area_sqft"`
	AreaPDF     float64      `json:"area_pdf_units"`
	Coordinates [][2]float64 `json:"coords_pdf"`
	Bounds      BBox         `json:"bbox_pdf"`
	Fill        *Color       `json:"fill_color,omitempty"`
	Source      string       `json:"source"`
	VertexCount int          `json:"vertex_count"`

	// Review metadata from the review scorer.
	ReviewNeeded  bool     `json:"review_needed"`
	ReviewReasons []string `json:"review_reasons"`
	Confidence    float64  `json:"confidence"`
}

// ScaleFactor is the feet-per-drawing-unit conversion for one page.
// Detected reports whether it came from a scale note in the page text
// rather than the 1"=20' default.
type ScaleFactor struct {
	FeetPerUnit float64 `json:"feet_per_unit"`
	Detected    bool    `json:"detected"`
}

// ToSqft converts an area in square drawing units to square feet.
// Area scales with the square of the linear factor.
func (s ScaleFactor) ToSqft(areaPDFUnits float64) float64 {
	return areaPDFUnits * s.FeetPerUnit * s.FeetPerUnit
}
