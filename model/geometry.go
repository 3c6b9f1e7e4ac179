package model

import (
	"fmt"
	"math"
)

// Point represents a 2D point in drawing units.
type Point struct {
	X, Y float64
}

// Distance calculates the Euclidean distance to another point.
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// BBox represents an axis-aligned bounding box.
type BBox struct {
	X      float64 // Left
	Y      float64 // Bottom (PDF coordinate system)
	Width  float64
	Height float64
}

// NewBBoxFromPoints creates the bounding box of a set of points.
func NewBBoxFromPoints(points []Point) BBox {
	if len(points) == 0 {
		return BBox{}
	}

	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y

	for _, p := range points[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	return BBox{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Left returns the left edge X coordinate.
func (b BBox) Left() float64 { return b.X }

// Right returns the right edge X coordinate.
func (b BBox) Right() float64 { return b.X + b.Width }

// Bottom returns the bottom edge Y coordinate.
func (b BBox) Bottom() float64 { return b.Y }

// Top returns the top edge Y coordinate.
func (b BBox) Top() float64 { return b.Y + b.Height }

// Area returns the box area.
func (b BBox) Area() float64 { return b.Width * b.Height }

// Center returns the center point.
func (b BBox) Center() Point {
	return Point{X: b.X + b.Width/2, Y: b.Y + b.Height/2}
}

// Contains checks if a point is inside the bounding box.
func (b BBox) Contains(p Point) bool {
	return p.X >= b.Left() && p.X <= b.Right() &&
		p.Y >= b.Bottom() && p.Y <= b.Top()
}

// Matrix represents a 2D affine transformation matrix in the PDF form
// [a b c d e f], mapping (x, y) to (a*x + c*y + e, b*x + d*y + f).
type Matrix struct {
	A, B, C, D, E, F float64
}

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{A: 1, D: 1}
}

// Multiply returns m × other (other applied first).
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: other.A*m.A + other.B*m.C,
		B: other.A*m.B + other.B*m.D,
		C: other.C*m.A + other.D*m.C,
		D: other.C*m.B + other.D*m.D,
		E: other.E*m.A + other.F*m.C + m.E,
		F: other.E*m.B + other.F*m.D + m.F,
	}
}

// Transform applies the matrix to a point.
func (m Matrix) Transform(p Point) Point {
	return Point{
		X: m.A*p.X + m.C*p.Y + m.E,
		Y: m.B*p.X + m.D*p.Y + m.F,
	}
}

// Color is an RGB color with all channels in [0, 1].
type Color struct {
	R, G, B float64
}

// MarshalJSON encodes the color as a [r, g, b] triple, matching the
// tuple form CAD tooling emits for fill colors.
func (c Color) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("[%g,%g,%g]", c.R, c.G, c.B)), nil
}

// Gray returns a gray color with all three channels set to v.
func Gray(v float64) Color {
	return Color{R: v, G: v, B: v}
}

// CMYK converts a CMYK color specification to its RGB approximation.
func CMYK(c, m, y, k float64) Color {
	return Color{
		R: (1 - c) * (1 - k),
		G: (1 - m) * (1 - k),
		B: (1 - y) * (1 - k),
	}
}
