// Package analyze runs the full coverage pipeline over a plan-set
// document and aggregates the results. One call processes one document
// end to end; pages are strictly sequential, and the output is built
// once and never mutated afterwards.
package analyze

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/grantdozier/LCR-Area-Calculations-Module/classify"
	"github.com/grantdozier/LCR-Area-Calculations-Module/document"
	"github.com/grantdozier/LCR-Area-Calculations-Module/geometry"
	"github.com/grantdozier/LCR-Area-Calculations-Module/model"
	"github.com/grantdozier/LCR-Area-Calculations-Module/review"
	"github.com/grantdozier/LCR-Area-Calculations-Module/scale"
	"github.com/grantdozier/LCR-Area-Calculations-Module/vector"
)

// minAreaSqft is the real-world noise floor. Anything smaller than 50
// square feet that survived the page-unit filters is a symbol or text
// box, not a surface.
const minAreaSqft = 50.0

// Source supplies pages to the analyzer. *document.Document satisfies
// it; tests supply fixtures.
type Source interface {
	PageCount() int
	Page(n int) (*document.Page, error)
}

// ImageSource is optionally implemented by sources that can hand back
// an embedded page image for OCR text recovery.
type ImageSource interface {
	PageImage(n int) ([]byte, string, error)
}

// Analyzer holds the pipeline configuration. The zero value is usable;
// it analyzes with the default geometry engine, no OCR, no previews,
// and the default logger.
type Analyzer struct {
	Log *slog.Logger

	// Reconstructor overrides the polygon reconstruction stage.
	Reconstructor *vector.Reconstructor

	// RecoverText, when set, is called with an embedded page image for
	// pages whose content stream yields no text. Its output feeds the
	// scale resolver only. Errors are logged and the default scale used.
	RecoverText func(image []byte) (string, error)

	// RenderPreview, when set, renders the classified polygons of one
	// sheet to a base64 PNG data URI. Render failure never fails a
	// sheet.
	RenderPreview func(width, height float64, polys []model.ClassifiedPolygon) (string, error)

	// Progress, when set, is called before each sheet is processed.
	Progress func(currentSheet, totalSheets int)
}

func (a *Analyzer) log() *slog.Logger {
	if a.Log != nil {
		return a.Log
	}
	return slog.Default()
}

func (a *Analyzer) reconstructor() *vector.Reconstructor {
	if a.Reconstructor != nil {
		return a.Reconstructor
	}
	return vector.NewReconstructor()
}

// Analyze processes every page of src and returns the project result.
// A page that fails to decode fails the whole document; individual
// shapes that fail any pipeline stage are dropped silently.
func (a *Analyzer) Analyze(src Source, filename string) (*model.ProjectResult, error) {
	total := src.PageCount()
	log := a.log().With("filename", filename, "sheets", total)
	log.Info("starting analysis")

	result := &model.ProjectResult{Filename: filename}

	for n := 1; n <= total; n++ {
		if a.Progress != nil {
			a.Progress(n, total)
		}
		page, err := src.Page(n)
		if err != nil {
			return nil, fmt.Errorf("sheet %d: %w", n, err)
		}
		sheet := a.analyzeSheet(src, page)
		result.Sheets = append(result.Sheets, sheet)
		result.Polygons = append(result.Polygons, sheet.Polygons...)
		log.Info("sheet done",
			"sheet", n,
			"polygons", len(sheet.Polygons),
			"scale_detected", sheet.Scale.Detected)
	}

	result.SheetsProcessed = len(result.Sheets)
	result.Summary = Summarize(result.Polygons)
	log.Info("analysis complete",
		"polygons", result.Summary.TotalPolygons,
		"site_sqft", result.Summary.TotalSiteAreaSqft)
	return result, nil
}

func (a *Analyzer) analyzeSheet(src Source, page *document.Page) model.SheetResult {
	text := page.Text
	if text == "" && a.RecoverText != nil {
		if is, ok := src.(ImageSource); ok {
			if img, _, err := is.PageImage(page.Number); err == nil {
				if recovered, err := a.RecoverText(img); err == nil {
					text = recovered
				} else {
					a.log().Warn("text recovery failed", "sheet", page.Number, "error", err)
				}
			}
		}
	}
	sc := scale.Resolve(text)

	prims := vector.CollectPrimitives(page.Objects)
	cands := a.reconstructor().Reconstruct(prims)
	accepted := vector.FilterDeduplicate(cands, page.Width, page.Height)

	sheet := model.SheetResult{
		SheetNumber: page.Number,
		PageWidth:   page.Width,
		PageHeight:  page.Height,
		Scale:       sc,
		Totals: model.SheetTotals{
			Breakdown: model.NewBreakdown(),
		},
	}

	// First pass: classify and convert, so review's outlier detection
	// sees the full population of sheet areas.
	type scored struct {
		poly model.AcceptedPolygon
		kind model.SurfaceType
		sqft float64
	}
	var kept []scored
	var areas []float64
	for _, p := range accepted {
		sqft := sc.ToSqft(p.AreaPDFUnits)
		if sqft < minAreaSqft {
			continue
		}
		kind := classify.Classify(p)
		if !kind.Valid() {
			kind = model.SurfacePervious
		}
		kept = append(kept, scored{poly: p, kind: kind, sqft: sqft})
		areas = append(areas, sqft)
	}

	for idx, s := range kept {
		rev := review.Score(s.poly.Ring, s.sqft, areas)
		reasons := rev.Reasons
		if reasons == nil {
			reasons = []string{}
		}
		// The breakdown accumulates the rounded per-polygon value so
		// that summing a sheet's polygons reproduces its subtotal
		// exactly.
		sqft := round2(s.sqft)
		sheet.Polygons = append(sheet.Polygons, model.ClassifiedPolygon{
			ID:            fmt.Sprintf("page%d_poly%d", page.Number, idx),
			Sheet:         page.Number,
			Surface:       s.kind,
			AreaSqft:      sqft,
			AreaPDF:       s.poly.AreaPDFUnits,
			Coordinates:   coords(s.poly.Ring),
			Bounds:        s.poly.Bounds,
			Fill:          s.poly.Fill,
			Source:        s.poly.Origin.String(),
			VertexCount:   geometry.Ring(s.poly.Ring).VertexCount(),
			ReviewNeeded:  rev.Needed,
			ReviewReasons: reasons,
			Confidence:    rev.Confidence,
		})
		sheet.Totals.Breakdown[s.kind] += sqft
	}

	for kind, area := range sheet.Totals.Breakdown {
		if kind.Impervious() {
			sheet.Totals.Impervious += area
		} else if kind == model.SurfacePervious {
			sheet.Totals.Pervious += area
		}
	}
	sheet.Totals.Impervious = round2(sheet.Totals.Impervious)
	sheet.Totals.Pervious = round2(sheet.Totals.Pervious)
	for kind, area := range sheet.Totals.Breakdown {
		sheet.Totals.Breakdown[kind] = round2(area)
	}

	if a.RenderPreview != nil {
		uri, err := a.RenderPreview(page.Width, page.Height, sheet.Polygons)
		if err != nil {
			a.log().Warn("preview render failed", "sheet", page.Number, "error", err)
		} else {
			sheet.PreviewDataURI = uri
		}
	}
	return sheet
}

// Summarize recomputes the project rollup from the full polygon set.
// It never patches an earlier summary.
func Summarize(polys []model.ClassifiedPolygon) model.ProjectSummary {
	s := model.ProjectSummary{Breakdown: model.NewBreakdown()}
	for _, p := range polys {
		s.TotalPolygons++
		if p.ReviewNeeded {
			s.PolygonsNeedingReview++
		}
		s.Breakdown[p.Surface] += p.AreaSqft
	}

	var impervious, pervious float64
	for kind, area := range s.Breakdown {
		if kind.Impervious() {
			impervious += area
		} else if kind == model.SurfacePervious {
			pervious += area
		}
	}
	site := impervious + pervious

	s.TotalImperviousSqft = round2(impervious)
	s.TotalPerviousSqft = round2(pervious)
	s.TotalSiteAreaSqft = round2(site)
	if site > 0 {
		s.PercentImpervious = round2(impervious / site * 100)
		s.PercentPervious = round2(pervious / site * 100)
	}
	for kind, area := range s.Breakdown {
		s.Breakdown[kind] = round2(area)
	}
	return s
}

func coords(ring []model.Point) [][2]float64 {
	out := make([][2]float64, len(ring))
	for i, p := range ring {
		out[i] = [2]float64{p.X, p.Y}
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
