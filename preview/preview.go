// Package preview renders classified polygons as a page-extent overlay
// image, returned as a base64 PNG data URI for direct embedding in API
// responses.
package preview

import (
	"bytes"
	"encoding/base64"
	"fmt"
	goimage "image"
	"image/color"
	"image/draw"
	"image/png"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/grantdozier/LCR-Area-Calculations-Module/model"
)

// DefaultMaxWidth bounds the rendered image width in pixels. Plan
// sheets are large; previews are for eyeballing, not measurement.
const DefaultMaxWidth = 1200

// palette maps each surface type to its overlay color.
var palette = map[model.SurfaceType]color.RGBA{
	model.SurfaceBuilding: {R: 0xB0, G: 0x30, B: 0x30, A: 0xC0},
	model.SurfaceConcrete: {R: 0x90, G: 0x90, B: 0x90, A: 0xC0},
	model.SurfaceAsphalt:  {R: 0x40, G: 0x40, B: 0x40, A: 0xC0},
	model.SurfacePervious: {R: 0x40, G: 0xA0, B: 0x40, A: 0xC0},
	model.SurfaceWater:    {R: 0x40, G: 0x70, B: 0xC0, A: 0xC0},
}

// Renderer rasterizes sheet overlays. The zero value renders at
// DefaultMaxWidth.
type Renderer struct {
	// MaxWidth bounds the output width in pixels; zero means
	// DefaultMaxWidth.
	MaxWidth int
}

// Render draws the polygons filled over a white page-size canvas and
// returns the result as a PNG data URI. The page's y axis points up;
// the image's points down, so y is flipped during rasterization.
func (r *Renderer) Render(pageWidth, pageHeight float64, polys []model.ClassifiedPolygon) (string, error) {
	if pageWidth <= 0 || pageHeight <= 0 {
		return "", fmt.Errorf("invalid page extent %gx%g", pageWidth, pageHeight)
	}

	w := int(pageWidth + 0.5)
	h := int(pageHeight + 0.5)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	img := goimage.NewRGBA(goimage.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), goimage.White, goimage.Point{}, draw.Src)

	rast := vector.NewRasterizer(w, h)
	for _, p := range polys {
		if len(p.Coordinates) < 3 {
			continue
		}
		c, ok := palette[p.Surface]
		if !ok {
			c = palette[model.SurfacePervious]
		}

		rast.Reset(w, h)
		for i, pt := range p.Coordinates {
			x := float32(pt[0])
			y := float32(pageHeight - pt[1])
			if i == 0 {
				rast.MoveTo(x, y)
			} else {
				rast.LineTo(x, y)
			}
		}
		rast.ClosePath()
		rast.Draw(img, img.Bounds(), goimage.NewUniform(c), goimage.Point{})
	}

	out := r.downscale(img)

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return "", fmt.Errorf("encoding preview png: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func (r *Renderer) downscale(img *goimage.RGBA) goimage.Image {
	maxW := r.MaxWidth
	if maxW <= 0 {
		maxW = DefaultMaxWidth
	}
	b := img.Bounds()
	if b.Dx() <= maxW {
		return img
	}
	scale := float64(maxW) / float64(b.Dx())
	dst := goimage.NewRGBA(goimage.Rect(0, 0, maxW, int(float64(b.Dy())*scale+0.5)))
	xdraw.BiLinear.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
