// Package scale resolves the drawing scale of a plan sheet from its
// text. Civil plan sheets carry a note like `SCALE: 1" = 30'`; the
// resolver finds it and converts it to feet per drawing unit at 72
// units per inch.
package scale

import (
	"regexp"
	"strconv"

	"github.com/grantdozier/LCR-Area-Calculations-Module/model"
)

// DefaultFeet is the assumed scale denominator when no scale note is
// found: 1 inch on the sheet equals 20 feet on the ground, the most
// common scale for residential site plans.
const DefaultFeet = 20

// unitsPerInch is the drawing resolution of the page coordinate space.
const unitsPerInch = 72

var scalePattern = regexp.MustCompile(`1["']?\s*=\s*(\d+)["']?`)

// Resolve extracts the sheet scale from page text. The first match of
// the scale pattern wins; when no note is present the default scale is
// returned with Detected false.
func Resolve(text string) model.ScaleFactor {
	if m := scalePattern.FindStringSubmatch(text); m != nil {
		if feet, err := strconv.Atoi(m[1]); err == nil && feet > 0 {
			return model.ScaleFactor{
				FeetPerUnit: float64(feet) / unitsPerInch,
				Detected:    true,
			}
		}
	}
	return Default()
}

// Default returns the fallback scale used when a sheet has no legible
// scale note.
func Default() model.ScaleFactor {
	return model.ScaleFactor{FeetPerUnit: float64(DefaultFeet) / unitsPerInch}
}
