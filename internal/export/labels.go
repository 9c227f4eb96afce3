package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/WoolCost/internal/model"
	qrcode "github.com/skip2/go-qrcode"
)

// PalletLabel holds the data encoded into each pallet label's QR code.
type PalletLabel struct {
	Density        float64 `json:"density_kg_m3"`
	SlabsPerPack   int     `json:"slabs_per_pack"`
	PackHeightMM   float64 `json:"pack_height_mm"`
	PacksPerPallet int     `json:"packs_per_pallet"`
	PalletHeightMM float64 `json:"pallet_height_mm"`
	PalletWeightKG float64 `json:"pallet_weight_kg"`
}

// Label layout constants for Avery 5160-compatible labels (3 columns, 10
// rows per page). Each label cell is approximately 66.7mm x 25.4mm on US
// Letter paper.
const (
	labelMarginTop  = 12.7 // mm
	labelMarginLeft = 4.8  // mm
	labelWidth      = 66.7 // mm per label
	labelHeight     = 25.4 // mm per label
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0 // QR code size in mm
	labelPadding    = 2.0  // mm internal padding
)

// CollectPalletLabels extracts label data from a result table, one label per
// density row.
func CollectPalletLabels(rows []model.ResultRow) []PalletLabel {
	labels := make([]PalletLabel, 0, len(rows))
	for _, r := range rows {
		labels = append(labels, PalletLabel{
			Density:        r.Density,
			SlabsPerPack:   r.SlabsPerPack,
			PackHeightMM:   r.PackHeightMM,
			PacksPerPallet: r.PacksPerPallet,
			PalletHeightMM: r.PalletHeightMM,
			PalletWeightKG: r.PalletWeightKG,
		})
	}
	return labels
}

// ExportPalletLabels generates a PDF of QR-coded pallet labels, one per
// density in the result table. Each label carries the density, pack/pallet
// geometry and a QR code encoding the same data as JSON, laid out on a
// standard label sheet (Avery 5160 / 3 columns x 10 rows on US Letter).
func ExportPalletLabels(path string, rows []model.ResultRow) error {
	labels := CollectPalletLabels(rows)
	if len(labels) == 0 {
		return fmt.Errorf("no result rows to generate labels for")
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, label := range labels {
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % labelsPerPage
		col := posOnPage % labelCols
		row := posOnPage / labelCols

		x := labelMarginLeft + float64(col)*labelWidth
		y := labelMarginTop + float64(row)*labelHeight

		if err := renderPalletLabel(pdf, x, y, label); err != nil {
			return fmt.Errorf("failed to render label for density %v: %w", label.Density, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

// renderPalletLabel draws a single label at the given position.
func renderPalletLabel(pdf *fpdf.Fpdf, x, y float64, label PalletLabel) error {
	// Light border as a cutting guide
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	qrData, err := json.Marshal(label)
	if err != nil {
		return fmt.Errorf("failed to marshal label data: %w", err)
	}
	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_density_%v", label.Density)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)
	pdf.CellFormat(textW, 4.5, fmt.Sprintf("Wool board %.0f kg/m3", label.Density), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+labelPadding+5)
	pdf.CellFormat(textW, 3.5, fmt.Sprintf("%d slabs/pack, pack %.0f mm", label.SlabsPerPack, label.PackHeightMM), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelPadding+9)
	pdf.CellFormat(textW, 3, fmt.Sprintf("%d packs/pallet, stack %.0f mm", label.PacksPerPallet, label.PalletHeightMM), "", 1, "L", false, 0, "")

	pdf.SetXY(textX, y+labelPadding+12.5)
	pdf.CellFormat(textW, 3, fmt.Sprintf("Pallet weight %.1f kg", label.PalletWeightKG), "", 0, "L", false, 0, "")

	pdf.SetTextColor(0, 0, 0)
	return nil
}
