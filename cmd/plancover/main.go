// Command plancover analyzes a single plan-set PDF and writes the
// result artifacts to a directory.
//
// Usage:
//
//	plancover [-out dir] [-preview] plan.pdf
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/grantdozier/LCR-Area-Calculations-Module/analyze"
	"github.com/grantdozier/LCR-Area-Calculations-Module/document"
	"github.com/grantdozier/LCR-Area-Calculations-Module/export"
	"github.com/grantdozier/LCR-Area-Calculations-Module/model"
	"github.com/grantdozier/LCR-Area-Calculations-Module/ocr"
	"github.com/grantdozier/LCR-Area-Calculations-Module/preview"
)

func main() {
	outDir := flag.String("out", ".", "directory for result artifacts")
	withPreview := flag.Bool("preview", false, "render per-sheet overlay previews into the result JSON")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: plancover [-out dir] [-preview] plan.pdf")
		os.Exit(2)
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if err := run(flag.Arg(0), *outDir, *withPreview, log); err != nil {
		log.Error("analysis failed", "error", err)
		os.Exit(1)
	}
}

func run(path, outDir string, withPreview bool, log *slog.Logger) error {
	doc, err := document.Open(path)
	if err != nil {
		return err
	}

	a := &analyze.Analyzer{
		Log: log,
		Progress: func(cur, total int) {
			log.Info("processing sheet", "sheet", cur, "total", total)
		},
	}
	if client, err := ocr.New(); err == nil {
		a.RecoverText = client.RecognizeImage
		defer client.Close()
	}
	if withPreview {
		var r preview.Renderer
		a.RenderPreview = r.Render
	}

	res, err := a.Analyze(doc, filepath.Base(path))
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if err := writeArtifacts(res, outDir, base); err != nil {
		return err
	}

	s := res.Summary
	fmt.Printf("%s: %d sheets, %d polygons\n", res.Filename, res.SheetsProcessed, s.TotalPolygons)
	fmt.Printf("  impervious: %.2f sqft (%.2f%%)\n", s.TotalImperviousSqft, s.PercentImpervious)
	fmt.Printf("  pervious:   %.2f sqft (%.2f%%)\n", s.TotalPerviousSqft, s.PercentPervious)
	fmt.Printf("  needing review: %d\n", s.PolygonsNeedingReview)
	return nil
}

func writeArtifacts(res *model.ProjectResult, outDir, base string) error {
	artifacts := []struct {
		ext    string
		render func(*model.ProjectResult) ([]byte, error)
	}{
		{"csv", export.CSV},
		{"geojson", export.GeoJSON},
		{"runoff.json", export.Runoff},
		{"xlsx", export.XLSX},
	}
	for _, art := range artifacts {
		data, err := art.render(res)
		if err != nil {
			return fmt.Errorf("rendering %s: %w", art.ext, err)
		}
		name := filepath.Join(outDir, base+"_results."+art.ext)
		if err := os.WriteFile(name, data, 0o644); err != nil {
			return err
		}
	}

	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(outDir, base+"_results.json"), data, 0o644)
}
