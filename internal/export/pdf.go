package export

import (
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/WoolCost/internal/model"
)

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 12.0
	marginRight  = 12.0
	marginTop    = 15.0
	marginBottom = 15.0
)

// pdfColumn describes one column of the PDF result table. The full 23-field
// row set does not fit a printed page, so the PDF carries the cost and
// logistics figures a reader checks first; the XLSX export holds everything.
type pdfColumn struct {
	header string
	width  float64
	value  func(model.ResultRow) string
}

var pdfColumns = []pdfColumn{
	{"Density", 20, func(r model.ResultRow) string { return fmt.Sprintf("%.0f", r.Density) }},
	{"Cost/t", 28, func(r model.ResultRow) string { return fmt.Sprintf("%.2f", r.CostPerTon) }},
	{"Cost/t pkg", 28, func(r model.ResultRow) string { return fmt.Sprintf("%.2f", r.CostPerTonPacked) }},
	{"Cost/m3 pkg", 28, func(r model.ResultRow) string { return fmt.Sprintf("%.2f", r.TotalCostPerM3) }},
	{"Slabs", 16, func(r model.ResultRow) string { return fmt.Sprintf("%d", r.SlabsPerPack) }},
	{"Packs/pal", 20, func(r model.ResultRow) string { return fmt.Sprintf("%d", r.PacksPerPallet) }},
	{"Pack kg", 20, func(r model.ResultRow) string { return fmt.Sprintf("%.2f", r.PackWeightKG) }},
	{"Pallet kg", 22, func(r model.ResultRow) string { return fmt.Sprintf("%.2f", r.PalletWeightKG) }},
	{"Pkg/m3", 22, func(r model.ResultRow) string { return fmt.Sprintf("%.2f", r.PackagingCostPerM3) }},
	{"Pallet cost", 26, func(r model.ResultRow) string { return fmt.Sprintf("%.2f", r.PalletCostPacked) }},
	{"Truck cost", 28, func(r model.ResultRow) string { return fmt.Sprintf("%.2f", r.TruckCost) }},
}

// ExportPDF writes the result table and the detailed calculation report to a
// PDF document: page one is the per-density summary table, the following
// pages carry the report text verbatim.
func ExportPDF(path string, rows []model.ResultRow, report string) error {
	if len(rows) == 0 {
		return fmt.Errorf("no result rows to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	pdf.AddPage()
	renderResultTable(pdf, rows)

	if report != "" {
		renderReportPages(pdf, report)
	}

	return pdf.OutputFileAndClose(path)
}

// renderResultTable draws the per-density summary table on the current page.
func renderResultTable(pdf *fpdf.Fpdf, rows []model.ResultRow) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Production and Packaging Cost by Density", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	// Table header
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for _, col := range pdfColumns {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(col.width, 6, col.header, "1", 0, "C", true, 0, "")
		xPos += col.width
	}
	y += 6

	// Table rows with alternating background
	pdf.SetFont("Helvetica", "", 8)
	for i, row := range rows {
		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		xPos = marginLeft
		for _, col := range pdfColumns {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(col.width, 6, col.value(row), "1", 0, "C", true, 0, "")
			xPos += col.width
		}
		y += 6
	}

	// Footer
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by WoolCost - Mineral Wool Cost Calculator", "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

// renderReportPages writes the detailed report text in a monospace face,
// paginating on line count.
func renderReportPages(pdf *fpdf.Fpdf, report string) {
	const lineHeight = 4.5
	maxY := pageHeight - marginBottom

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 8, "Detailed Calculation Report", "", 0, "L", false, 0, "")

	y := marginTop + 12
	pdf.SetFont("Courier", "", 8)
	for _, line := range strings.Split(report, "\n") {
		if y+lineHeight > maxY {
			pdf.AddPage()
			pdf.SetFont("Courier", "", 8)
			y = marginTop
		}
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(pageWidth-marginLeft-marginRight, lineHeight, line, "", 0, "L", false, 0, "")
		y += lineHeight
	}
}
