package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/grantdozier/LCR-Area-Calculations-Module/model"
)

// XLSX renders the coverage workbook: a Summary sheet with project
// totals and the breakdown, and a Polygons sheet with one row per
// classified polygon.
func XLSX(res *model.ProjectResult) ([]byte, error) {
	f := excelize.NewFile()

	const summarySheet = "Summary"
	const polygonSheet = "Polygons"

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(polygonSheet); err != nil {
		return nil, err
	}
	idx, _ := f.GetSheetIndex(summarySheet)
	f.SetActiveSheet(idx)

	write := func(sheet string, col, row int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
	}

	s := res.Summary
	summaryRows := []struct {
		label string
		value any
	}{
		{"File", res.Filename},
		{"Sheets Processed", res.SheetsProcessed},
		{"Total Polygons", s.TotalPolygons},
		{"Polygons Needing Review", s.PolygonsNeedingReview},
		{"Total Impervious (sqft)", s.TotalImperviousSqft},
		{"Total Pervious (sqft)", s.TotalPerviousSqft},
		{"Total Site Area (sqft)", s.TotalSiteAreaSqft},
		{"Percent Impervious", s.PercentImpervious},
		{"Percent Pervious", s.PercentPervious},
	}
	row := 1
	for _, r := range summaryRows {
		write(summarySheet, 1, row, r.label)
		write(summarySheet, 2, row, r.value)
		row++
	}
	row++
	write(summarySheet, 1, row, "Breakdown by Surface Type")
	row++
	for _, t := range model.SurfaceTypes {
		write(summarySheet, 1, row, string(t))
		write(summarySheet, 2, row, s.Breakdown[t])
		row++
	}

	headers := []string{
		"Polygon ID", "Sheet", "Surface Type", "Area (sqft)",
		"Perimeter Type", "Vertices", "Confidence", "Review Needed", "Source",
	}
	for i, h := range headers {
		write(polygonSheet, i+1, 1, h)
	}
	for i, p := range res.Polygons {
		r := i + 2
		write(polygonSheet, 1, r, p.ID)
		write(polygonSheet, 2, r, p.Sheet)
		write(polygonSheet, 3, r, string(p.Surface))
		write(polygonSheet, 4, r, p.AreaSqft)
		write(polygonSheet, 5, r, perimeterType(p.Surface))
		write(polygonSheet, 6, r, p.VertexCount)
		write(polygonSheet, 7, r, p.Confidence)
		write(polygonSheet, 8, r, p.ReviewNeeded)
		write(polygonSheet, 9, r, p.Source)
	}

	_ = f.SetColWidth(summarySheet, "A", "A", 28)
	_ = f.SetColWidth(summarySheet, "B", "B", 18)
	_ = f.SetColWidth(polygonSheet, "A", "A", 20)
	_ = f.SetColWidth(polygonSheet, "C", "C", 14)
	_ = f.SetColWidth(polygonSheet, "E", "E", 16)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}
