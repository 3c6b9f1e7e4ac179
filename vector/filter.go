package vector

import (
	"math"

	"github.com/grantdozier/LCR-Area-Calculations-Module/geometry"
	"github.com/grantdozier/LCR-Area-Calculations-Module/model"
)

const (
	// Fraction of the page area below which a polygon is noise and
	// above which it is a background wash or viewport frame.
	minPageFraction = 0.0001
	maxPageFraction = 0.6

	// A polygon spanning this fraction of both page dimensions is the
	// sheet border or title block frame, not a surface.
	borderSpanFraction = 0.95

	// Slivers: a bounding box this elongated is a dimension line or
	// hatch stroke that happened to close.
	maxAspect = 30.0
)

// FilterDeduplicate removes page furniture and duplicate regions from
// the candidate set and promotes the survivors to accepted polygons.
// Candidates are fingerprinted by their whole-unit bounding box; the
// first candidate with a given fingerprint wins, which is why
// Reconstruct emits fill-bearing sources first.
func FilterDeduplicate(cands []model.CandidatePolygon, pageWidth, pageHeight float64) []model.AcceptedPolygon {
	pageArea := pageWidth * pageHeight
	seen := make(map[[4]int64]struct{}, len(cands))

	var out []model.AcceptedPolygon
	for _, c := range cands {
		ring := geometry.Ring(c.Ring)
		area := ring.Area()
		if pageArea > 0 {
			frac := area / pageArea
			if frac < minPageFraction || frac > maxPageFraction {
				continue
			}
		}

		b := ring.Bounds()
		w := b.Right() - b.Left()
		h := b.Top() - b.Bottom()
		if w > borderSpanFraction*pageWidth && h > borderSpanFraction*pageHeight {
			continue
		}

		lo, hi := w, h
		if lo > hi {
			lo, hi = hi, lo
		}
		if hi/(lo+0.1) > maxAspect {
			continue
		}

		fp := [4]int64{
			int64(math.Round(b.Left())),
			int64(math.Round(b.Bottom())),
			int64(math.Round(b.Right())),
			int64(math.Round(b.Top())),
		}
		if _, dup := seen[fp]; dup {
			continue
		}
		seen[fp] = struct{}{}

		out = append(out, model.AcceptedPolygon{
			CandidatePolygon: c,
			AreaPDFUnits:     area,
			Bounds:           b,
		})
	}
	return out
}
