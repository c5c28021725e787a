package pipeline

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

const inventoryCSV = `Name,CASNumber,Amount,Unit,Barcode,Type of container,MolID,Supplier,Storage name,Compartment name
X,50-00-0,5,mg,B1,Vial,1,Acme,Fridge,Shelf 2
Y,64-17-5,,mg,B2,Bottle,2,Acme,Cabinet,Top
Z,67-64-1,1,L,,Bottle,3,Acme,Cabinet,Bottom
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func mkXLSX(t *testing.T, name string, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for r, row := range rows {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+1)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}
	path := filepath.Join(t.TempDir(), name)
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadInventoryCSV(t *testing.T) {
	records, err := LoadInventory(writeFile(t, "inventory.csv", inventoryCSV))
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 3 {
		t.Fatalf("len=%d", len(records))
	}
	if records[0].CASNumber != "50-00-0" || records[0].StorageName != "Fridge" || records[0].ContainerType != "Vial" {
		t.Fatalf("unexpected record: %+v", records[0])
	}
	if records[1].Amount != "" || records[2].Barcode != "" {
		t.Fatalf("empty cells not preserved: %+v %+v", records[1], records[2])
	}
}

func TestLoadInventoryOptionalColumns(t *testing.T) {
	csv := "Name,CASNumber,Amount,Unit,Barcode,Storage name,Compartment name\nX,50-00-0,5,mg,B1,Fridge\n"
	records, err := LoadInventory(writeFile(t, "inventory.csv", csv))
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 || records[0].CompartmentName != "" || records[0].StorageName != "Fridge" {
		t.Fatalf("short row not padded: %+v", records)
	}
}

func TestLoadInventorySchemaError(t *testing.T) {
	path := writeFile(t, "inventory.csv", "Name,CASNumber,Barcode\nX,50-00-0,B1\n")
	_, err := LoadInventory(path)
	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected SchemaError, got %v", err)
	}
	want := []string{"Amount", "Unit", "Storage name", "Compartment name"}
	if len(schemaErr.Missing) != len(want) {
		t.Fatalf("missing=%q", schemaErr.Missing)
	}
	for i, w := range want {
		if schemaErr.Missing[i] != w {
			t.Fatalf("missing=%q", schemaErr.Missing)
		}
	}
	if schemaErr.Path != path {
		t.Fatalf("path=%s", schemaErr.Path)
	}
}

func TestLoadInputReadError(t *testing.T) {
	cases := []struct {
		name string
		path func(t *testing.T) string
	}{
		{name: "missing file", path: func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.csv") }},
		{name: "empty file", path: func(t *testing.T) string { return writeFile(t, "empty.csv", "\n\n") }},
		{name: "legacy xls", path: func(t *testing.T) string { return writeFile(t, "old.xls", "x") }},
		{name: "corrupt xlsx", path: func(t *testing.T) string { return writeFile(t, "broken.xlsx", "not a zip") }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadBarcodes(tc.path(t), nil)
			var readErr *InputReadError
			if !errors.As(err, &readErr) {
				t.Fatalf("expected InputReadError, got %v", err)
			}
		})
	}
}

func TestLoadBarcodesAlias(t *testing.T) {
	csv := "Timestamp,\"Barcode (separate multiple barcodes via with comma):\",Email\n" +
		"1/20/2022 10:00,\"B1,B2\",a@example.com\n" +
		"1/20/2022 10:05,B3,b@example.com\n"
	entries, err := LoadBarcodes(writeFile(t, "barcodes.csv", csv), []string{"Barcode (separate multiple barcodes via with comma):"})
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("len=%d", len(entries))
	}
	if entries[0].Barcode != "B1,B2" || entries[0].Timestamp != "1/20/2022 10:00" {
		t.Fatalf("unexpected entry: %+v", entries[0])
	}
}

func TestLoadBarcodesLiteralColumnWins(t *testing.T) {
	csv := "Barcode,Scanned\nB1,B9\n"
	entries, err := LoadBarcodes(writeFile(t, "barcodes.csv", csv), []string{"Scanned"})
	if err != nil {
		t.Fatal(err)
	}
	if entries[0].Barcode != "B1" {
		t.Fatalf("barcode=%s", entries[0].Barcode)
	}
}

func TestLoadBarcodesBOMAndNoTimestamp(t *testing.T) {
	entries, err := LoadBarcodes(writeFile(t, "barcodes.csv", "\ufeffBarcode\nB1\n"), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Barcode != "B1" || entries[0].Timestamp != "" {
		t.Fatalf("unexpected entries: %+v", entries)
	}
}

func TestLoadBarcodesSchemaError(t *testing.T) {
	_, err := LoadBarcodes(writeFile(t, "barcodes.csv", "Timestamp,Code\nnow,B1\n"), []string{"Scanned"})
	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected SchemaError, got %v", err)
	}
	if len(schemaErr.Missing) != 1 || schemaErr.Missing[0] != "Barcode" || schemaErr.Table != "barcode" {
		t.Fatalf("unexpected error: %+v", schemaErr)
	}
}

func TestLoadInventoryXLSX(t *testing.T) {
	path := mkXLSX(t, "inventory.xlsx", [][]any{
		{"Name", "CASNumber", "Amount", "Unit", "Barcode", "Storage name", "Compartment name"},
		{"X", "50-00-0", "5", "mg", "B1", "Fridge", "Shelf 2"},
		{},
		{"Y", "64-17-5", "", "mg", "B2", "Cabinet"},
	})
	records, err := LoadInventory(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("len=%d", len(records))
	}
	if records[1].Name != "Y" || records[1].Amount != "" || records[1].CompartmentName != "" {
		t.Fatalf("unexpected record: %+v", records[1])
	}
}

func TestLoadBarcodesDuplicateAndBlankHeaders(t *testing.T) {
	csv := "Barcode,Barcode,,\nB1,B2,,\nB3,,x,\n"
	entries, err := LoadBarcodes(writeFile(t, "barcodes.csv", csv), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 || entries[0].Barcode != "B1" || entries[1].Barcode != "B3" {
		t.Fatalf("unexpected entries: %+v", entries)
	}
}

func TestUniqueHeader(t *testing.T) {
	got := uniqueHeader([]string{"Name", " Name", "", "Name", ""})
	want := []string{"Name", "Name.1", "Unnamed: 2", "Name.2", "Unnamed: 4"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %q want %q", got, want)
		}
	}
}
