package graphics

import "github.com/grantdozier/LCR-Area-Calculations-Module/model"

// colorSpaceKind tracks how many components the sc/scn operators expect
// for the current color space selection.
type colorSpaceKind int

const (
	spaceGray colorSpaceKind = iota
	spaceRGB
	spaceCMYK
	spaceOther
)

// State is the subset of the PDF graphics state the coverage pipeline
// cares about: the transformation matrix, the two current colors, and
// the line width.
type State struct {
	CTM model.Matrix

	StrokeColor model.Color
	FillColor   model.Color

	LineWidth float64

	strokeSpace colorSpaceKind
	fillSpace   colorSpaceKind
}

// NewState returns the default graphics state: identity CTM, black
// stroke and fill, 1-unit lines.
func NewState() *State {
	return &State{
		CTM:       model.Identity(),
		LineWidth: 1,
	}
}

// Clone returns a copy of the state.
func (s *State) Clone() *State {
	c := *s
	return &c
}

// Transform concatenates m onto the CTM (cm operator).
func (s *State) Transform(m model.Matrix) {
	s.CTM = s.CTM.Multiply(m)
}

func spaceForName(name string) colorSpaceKind {
	switch name {
	case "DeviceGray", "CalGray", "G":
		return spaceGray
	case "DeviceRGB", "CalRGB", "Lab", "RGB":
		return spaceRGB
	case "DeviceCMYK", "CMYK":
		return spaceCMYK
	}
	return spaceOther
}

// colorFromComponents maps a generic sc/scn operand list to RGB using
// the declared space when it is one of the device spaces, falling back
// on component count.
func colorFromComponents(space colorSpaceKind, comps []float64) (model.Color, bool) {
	switch {
	case space == spaceGray && len(comps) == 1,
		space == spaceOther && len(comps) == 1:
		return model.Gray(comps[0]), true
	case space == spaceRGB && len(comps) == 3,
		space == spaceOther && len(comps) == 3:
		return model.Color{R: comps[0], G: comps[1], B: comps[2]}, true
	case space == spaceCMYK && len(comps) == 4,
		space == spaceOther && len(comps) == 4:
		return model.CMYK(comps[0], comps[1], comps[2], comps[3]), true
	}
	return model.Color{}, false
}
