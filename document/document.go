// Package document opens PDF plan sets and exposes their pages as
// interpreted vector content. pdfcpu handles the file structure (xref,
// object streams, page tree); the content stream of each page is run
// through the graphics interpreter to recover drawing objects and text.
package document

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	pdfmodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/grantdozier/LCR-Area-Calculations-Module/graphics"
	"github.com/grantdozier/LCR-Area-Calculations-Module/model"
)

// Page is one sheet of the plan set with its vector content decoded.
type Page struct {
	Number  int
	Width   float64
	Height  float64
	Objects []model.DrawingObject
	Text    string
}

// Document is an open plan-set PDF.
type Document struct {
	ctx  *pdfmodel.Context
	dims []pageDim
	path string
}

type pageDim struct {
	width, height float64
}

// Open reads and validates a PDF file. Validation is relaxed; plan
// sets exported from CAD tools routinely bend the PDF rules.
func Open(path string) (*Document, error) {
	conf := pdfmodel.NewDefaultConfiguration()
	conf.ValidationMode = pdfmodel.ValidationRelaxed

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	ctx, err := api.ReadValidateAndOptimize(f, conf)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	dims, err := ctx.PageDims()
	if err != nil {
		return nil, fmt.Errorf("reading page dimensions: %w", err)
	}
	d := &Document{ctx: ctx, path: path}
	for _, dim := range dims {
		d.dims = append(d.dims, pageDim{width: dim.Width, height: dim.Height})
	}
	return d, nil
}

// PageCount returns the number of pages in the document.
func (d *Document) PageCount() int {
	return d.ctx.PageCount
}

// Page decodes the content of page n (1-indexed).
func (d *Document) Page(n int) (*Page, error) {
	if n < 1 || n > d.ctx.PageCount {
		return nil, fmt.Errorf("page %d out of range 1..%d", n, d.ctx.PageCount)
	}

	r, err := pdfcpu.ExtractPageContent(d.ctx, n)
	if err != nil {
		return nil, fmt.Errorf("extracting page %d content: %w", n, err)
	}

	p := &Page{Number: n}
	if n-1 < len(d.dims) {
		p.Width = d.dims[n-1].width
		p.Height = d.dims[n-1].height
	}
	if r == nil {
		// Empty page: no content stream at all.
		return p, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading page %d content: %w", n, err)
	}

	content, err := graphics.Interpret(data)
	if err != nil {
		return nil, fmt.Errorf("interpreting page %d: %w", n, err)
	}
	p.Objects = content.Objects
	p.Text = content.Text
	return p, nil
}

// PageImage returns the raw bytes and file extension of the largest
// embedded image on page n, or an error when the page embeds none.
// Scanned sheets carry the whole page as a single image; that image is
// what the OCR fallback reads.
func (d *Document) PageImage(n int) ([]byte, string, error) {
	images, err := pdfcpu.ExtractPageImages(d.ctx, n, false)
	if err != nil {
		return nil, "", fmt.Errorf("extracting page %d images: %w", n, err)
	}
	if len(images) == 0 {
		return nil, "", fmt.Errorf("page %d has no embedded images", n)
	}

	objNrs := make([]int, 0, len(images))
	for objNr := range images {
		objNrs = append(objNrs, objNr)
	}
	sort.Ints(objNrs)

	var best []byte
	var ext string
	for _, objNr := range objNrs {
		img := images[objNr]
		data, err := io.ReadAll(img)
		if err != nil {
			continue
		}
		if len(data) > len(best) {
			best = data
			ext = img.FileType
		}
	}
	if best == nil {
		return nil, "", fmt.Errorf("page %d images unreadable", n)
	}
	return best, ext, nil
}
