package pipeline

import (
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"ligandlib/internal"
)

// ExportRowsToXLSX writes a single-sheet workbook with the export header
// row. Nil fields are left as empty cells.
func ExportRowsToXLSX(rows []internal.MatchedRecord, outputPath string) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	for i, h := range internal.ExportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, row := range rows {
		r := i + 2
		set := func(col int, value *string) {
			if value == nil {
				return
			}
			cell, _ := excelize.CoordinatesToCellName(col, r)
			_ = f.SetCellStr(sheet, cell, *value)
		}

		set(1, row.Name)
		set(2, row.CAS)
		set(3, row.Mass)
		set(4, row.StorageName)
		set(5, row.CompartmentName)
		set(6, row.Barcode)
	}

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &FileWriteError{Path: outputPath, Err: err}
		}
	}
	if err := f.SaveAs(outputPath); err != nil {
		return &FileWriteError{Path: outputPath, Err: err}
	}
	return nil
}

// ExportMatches joins entries against inventory and writes the result to
// destination. It returns the number of data rows written.
func ExportMatches(entries []internal.BarcodeEntry, inventory []internal.InventoryRecord, destination string) (int, error) {
	rows, _ := NewMatcher(inventory).Match(entries)
	if err := ExportRowsToXLSX(rows, destination); err != nil {
		return 0, err
	}
	return len(rows), nil
}
