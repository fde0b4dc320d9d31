package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/cutplan/internal/costing"
	"github.com/piwi3910/cutplan/internal/model"
)

// ExportXLSX writes the plan and cost summary as an Excel workbook with
// Summary, Boards and Items sheets.
func ExportXLSX(path string, plan model.CutPlan, summary costing.Summary) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Summary"); err != nil {
		return err
	}
	if err := writeSummarySheet(f, summary); err != nil {
		return err
	}
	if err := writeBoardsSheet(f, plan); err != nil {
		return err
	}
	if err := writeItemsSheet(f, plan); err != nil {
		return err
	}
	if err := writeOffcutsSheet(f, plan); err != nil {
		return err
	}

	return f.SaveAs(path)
}

// writeRow writes one row of values starting at column A.
func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}

func writeSummarySheet(f *excelize.File, summary costing.Summary) error {
	header := []interface{}{"Material", "Board Length (mm)", "Board Width (mm)",
		"Full", "Narrow Halves", "Wide Halves", "Billed", "Cost"}
	if err := writeRow(f, "Summary", 1, header); err != nil {
		return err
	}

	row := 2
	for _, u := range summary.Usages {
		values := []interface{}{u.Material.Name, u.Material.Length, u.Material.Width,
			u.FullBoards, u.NarrowHalves, u.WideHalves, u.BilledQuantity, u.Cost}
		if err := writeRow(f, "Summary", row, values); err != nil {
			return err
		}
		row++
	}

	row++
	totals := [][]interface{}{
		{"Wrap length (mm)", summary.TotalWrapLengthMM, "Wrap cost", summary.TotalWrapCost},
		{"Cut length (mm)", summary.TotalCutLengthMM, "Cut cost", summary.TotalCutCost},
		{"Grand total", fmt.Sprintf("%.2f %s", summary.GrandTotal, summary.Currency)},
	}
	for _, values := range totals {
		if err := writeRow(f, "Summary", row, values); err != nil {
			return err
		}
		row++
	}
	return nil
}

func writeBoardsSheet(f *excelize.File, plan model.CutPlan) error {
	if _, err := f.NewSheet("Boards"); err != nil {
		return err
	}

	header := []interface{}{"Material", "Board", "Class", "Used Length (mm)",
		"Used Width (mm)", "Items", "Cut Length (mm)", "Efficiency (%)"}
	if err := writeRow(f, "Boards", 1, header); err != nil {
		return err
	}

	row := 2
	for _, b := range plan.AllBoards() {
		values := []interface{}{b.Material.Name, b.Index + 1, b.Classify().String(),
			b.UsedLength(), b.UsedWidth(), len(b.PlacedItems), b.CutLength(), b.Efficiency()}
		if err := writeRow(f, "Boards", row, values); err != nil {
			return err
		}
		row++
	}
	return nil
}

func writeItemsSheet(f *excelize.File, plan model.CutPlan) error {
	if _, err := f.NewSheet("Items"); err != nil {
		return err
	}

	header := []interface{}{"Item", "Material", "Board", "X (mm)", "Y (mm)",
		"Width (mm)", "Height (mm)", "Rotated", "Wrap", "Wrap Length (mm)"}
	if err := writeRow(f, "Items", 1, header); err != nil {
		return err
	}

	row := 2
	for _, b := range plan.AllBoards() {
		for _, p := range b.PlacedItems {
			values := []interface{}{p.Spec.Name, p.Material, p.BoardIndex + 1,
				p.X, p.Y, p.Width, p.Height, p.Rotated, p.Spec.Wrap.String(), costing.WrapLength(p)}
			if err := writeRow(f, "Items", row, values); err != nil {
				return err
			}
			row++
		}
	}
	return nil
}

// writeOffcutsSheet lists reusable remnants so the shop can shelve them.
func writeOffcutsSheet(f *excelize.File, plan model.CutPlan) error {
	if _, err := f.NewSheet("Offcuts"); err != nil {
		return err
	}

	header := []interface{}{"Material", "Board", "X (mm)", "Y (mm)",
		"Width (mm)", "Height (mm)", "Area (sq mm)", "Value"}
	if err := writeRow(f, "Offcuts", 1, header); err != nil {
		return err
	}

	row := 2
	for _, o := range model.DetectAllOffcuts(plan) {
		values := []interface{}{o.Material, o.BoardIndex + 1,
			o.X, o.Y, o.Width, o.Height, o.Area(), o.Value}
		if err := writeRow(f, "Offcuts", row, values); err != nil {
			return err
		}
		row++
	}
	return nil
}
