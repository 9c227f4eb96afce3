// Package export writes calculation results to spreadsheet and PDF files.
package export

import (
	"fmt"

	"github.com/piwi3910/WoolCost/internal/model"
	"github.com/xuri/excelize/v2"
)

// Sheet names of the exported workbook.
const (
	SheetPricing = "Pricing"
	SheetParams  = "Input Parameters"
)

// ExportXLSX writes the result table and the input parameters to a two-sheet
// workbook. The result table keeps the ResultColumns ordering; the parameter
// sheet lists the configuration followed by the fixed-cost ledger. Rows and
// parameters are treated as opaque data: nothing is recomputed here.
func ExportXLSX(path string, rows []model.ResultRow, cfg model.Config, fixedCosts model.FixedCostLedger) error {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet(SheetPricing); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	if _, err := f.NewSheet(SheetParams); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to drop default sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"D7E4BC"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to build header style: %w", err)
	}

	if err := writePricingSheet(f, rows, headerStyle); err != nil {
		return err
	}
	if err := writeParamsSheet(f, cfg, fixedCosts, headerStyle); err != nil {
		return err
	}

	return f.SaveAs(path)
}

func writePricingSheet(f *excelize.File, rows []model.ResultRow, headerStyle int) error {
	headers := make([]interface{}, len(model.ResultColumns))
	for i, h := range model.ResultColumns {
		headers[i] = h
	}
	if err := f.SetSheetRow(SheetPricing, "A1", &headers); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	lastCol, err := excelize.ColumnNumberToName(len(model.ResultColumns))
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetPricing, "A1", lastCol+"1", headerStyle); err != nil {
		return err
	}
	if err := f.SetColWidth(SheetPricing, "A", lastCol, 18); err != nil {
		return err
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		cells := row.Cells()
		if err := f.SetSheetRow(SheetPricing, cell, &cells); err != nil {
			return fmt.Errorf("failed to write row for density %v: %w", row.Density, err)
		}
	}
	return nil
}

func writeParamsSheet(f *excelize.File, cfg model.Config, fixedCosts model.FixedCostLedger, headerStyle int) error {
	header := []interface{}{"Parameter", "Value"}
	if err := f.SetSheetRow(SheetParams, "A1", &header); err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetParams, "A1", "B1", headerStyle); err != nil {
		return err
	}
	if err := f.SetColWidth(SheetParams, "A", "B", 28); err != nil {
		return err
	}

	rowNum := 2
	writeRow := func(values []interface{}) error {
		cell, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return err
		}
		rowNum++
		return f.SetSheetRow(SheetParams, cell, &values)
	}

	for _, p := range cfg.Params() {
		if err := writeRow([]interface{}{p.Name, p.Value}); err != nil {
			return err
		}
	}
	if err := writeRow([]interface{}{"--- Fixed costs (per hour) ---", ""}); err != nil {
		return err
	}
	for _, e := range fixedCosts {
		if err := writeRow([]interface{}{e.Category, e.RatePerHour}); err != nil {
			return err
		}
	}
	return nil
}
