package model

// SurfaceType labels the land-coverage category of a polygon.
type SurfaceType string

// The five-way surface taxonomy used for coverage-ratio reporting.
const (
	SurfaceBuilding SurfaceType = "building"
	SurfaceConcrete SurfaceType = "concrete"
	SurfaceAsphalt  SurfaceType = "asphalt"
	SurfacePervious SurfaceType = "pervious"
	SurfaceWater    SurfaceType = "water"
)

// SurfaceTypes lists all valid surface types in reporting order.
var SurfaceTypes = []SurfaceType{
	SurfaceConcrete,
	SurfaceBuilding,
	SurfacePervious,
	SurfaceAsphalt,
	SurfaceWater,
}

// Valid reports whether t is one of the five known surface types.
func (t SurfaceType) Valid() bool {
	switch t {
	case SurfaceBuilding, SurfaceConcrete, SurfaceAsphalt, SurfacePervious, SurfaceWater:
		return true
	}
	return false
}

// Impervious reports whether the surface sheds runoff. Building,
// concrete and asphalt count toward the impervious subtotal; pervious
// and water do not.
func (t SurfaceType) Impervious() bool {
	switch t {
	case SurfaceBuilding, SurfaceConcrete, SurfaceAsphalt:
		return true
	}
	return false
}

// NewBreakdown returns a five-key area map with every surface type
// present and zeroed, so sums and JSON output always carry all keys.
func NewBreakdown() map[SurfaceType]float64 {
	m := make(map[SurfaceType]float64, len(SurfaceTypes))
	for _, t := range SurfaceTypes {
		m[t] = 0
	}
	return m
}
