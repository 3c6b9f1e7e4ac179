//go:build !geos

package geometry

import (
	"errors"

	"github.com/grantdozier/LCR-Area-Calculations-Module/model"
)

// ErrGEOSNotEnabled is returned when the GEOS engine is requested but
// GEOS support was not compiled in. Rebuild with -tags geos to enable
// it; libgeos must be installed.
var ErrGEOSNotEnabled = errors.New("GEOS support not enabled; rebuild with -tags geos")

// GEOSEngine is the stub used when the "geos" build tag is not set.
// Use [NewEngine] for the pure-Go engine instead.
type GEOSEngine struct{}

// NewGEOSEngine reports that GEOS support is not compiled in.
func NewGEOSEngine() (*GEOSEngine, error) {
	return nil, ErrGEOSNotEnabled
}

// Repair always returns nil on the stub.
func (e *GEOSEngine) Repair(Ring) []Ring { return nil }

// Polygonize always returns nil on the stub.
func (e *GEOSEngine) Polygonize([]model.LineSegment) []Ring { return nil }
