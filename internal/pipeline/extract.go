package pipeline

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jszwec/csvutil"
	"github.com/xuri/excelize/v2"

	"ligandlib/internal"
	"ligandlib/internal/util"
)

const (
	tableInventory = "inventory"
	tableBarcodes  = "barcode"
)

type table struct {
	path   string
	header []string
	rows   [][]string
}

// tableReader feeds pre-read rows to csvutil.
type tableReader struct {
	rows [][]string
	pos  int
}

func (r *tableReader) Read() ([]string, error) {
	if r.pos >= len(r.rows) {
		return nil, io.EOF
	}
	row := r.rows[r.pos]
	r.pos++
	return row, nil
}

func LoadInventory(path string) ([]internal.RawInventoryRecord, error) {
	t, err := readTable(path)
	if err != nil {
		return nil, err
	}
	if err := t.require(tableInventory, internal.InventoryRequiredColumns); err != nil {
		return nil, err
	}
	return decodeRows[internal.RawInventoryRecord](t)
}

// LoadBarcodes reads the submission table. The first alias found is renamed
// to Barcode unless a literal Barcode column already exists.
func LoadBarcodes(path string, aliases []string) ([]internal.RawBarcodeEntry, error) {
	t, err := readTable(path)
	if err != nil {
		return nil, err
	}
	t.renameAlias(internal.ColumnBarcode, aliases)
	if err := t.require(tableBarcodes, []string{internal.ColumnBarcode}); err != nil {
		return nil, err
	}
	return decodeRows[internal.RawBarcodeEntry](t)
}

func readTable(path string) (*table, error) {
	var (
		records [][]string
		err     error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case util.XLSXExt:
		records, err = readXLSX(path)
	case ".xls":
		err = errors.New("legacy .xls workbooks are not supported, save as .xlsx or .csv")
	default:
		records, err = readCSV(path)
	}
	if err != nil {
		return nil, &InputReadError{Path: path, Err: err}
	}

	records = dropBlankRows(records)
	if len(records) == 0 {
		return nil, &InputReadError{Path: path, Err: errors.New("file has no header row")}
	}

	header := uniqueHeader(records[0])
	rows := records[1:]
	for i := range rows {
		rows[i] = fitRow(rows[i], len(header))
	}
	return &table{path: path, header: header, rows: rows}, nil
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	return records, nil
}

func readXLSX(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	return f.GetRows(sheets[0])
}

func (t *table) has(column string) bool {
	for _, h := range t.header {
		if h == column {
			return true
		}
	}
	return false
}

func (t *table) require(name string, columns []string) error {
	missing := []string{}
	for _, c := range columns {
		if !t.has(c) {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return &SchemaError{Path: t.path, Table: name, Missing: missing}
	}
	return nil
}

func (t *table) renameAlias(column string, aliases []string) {
	if t.has(column) {
		return
	}
	for _, alias := range aliases {
		alias = util.CleanHeader(alias)
		for i, h := range t.header {
			if h == alias {
				t.header[i] = column
				return
			}
		}
	}
}

func decodeRows[T any](t *table) ([]T, error) {
	dec, err := csvutil.NewDecoder(&tableReader{rows: t.rows}, t.header...)
	if err != nil {
		return nil, &InputReadError{Path: t.path, Err: err}
	}

	out := make([]T, 0, len(t.rows))
	for {
		var rec T
		err := dec.Decode(&rec)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &InputReadError{Path: t.path, Err: fmt.Errorf("row %d: %w", len(out)+2, err)}
		}
		out = append(out, rec)
	}
	return out, nil
}

func dropBlankRows(records [][]string) [][]string {
	out := make([][]string, 0, len(records))
	for _, row := range records {
		blank := true
		for _, c := range row {
			if strings.TrimSpace(c) != "" {
				blank = false
				break
			}
		}
		if !blank {
			out = append(out, row)
		}
	}
	return out
}

// uniqueHeader names blank columns "Unnamed: i" and suffixes repeated
// names with ".n"; the first occurrence keeps its name.
func uniqueHeader(raw []string) []string {
	header := make([]string, len(raw))
	seen := map[string]int{}
	for i, h := range raw {
		h = util.CleanHeader(h)
		if h == "" {
			h = fmt.Sprintf("Unnamed: %d", i)
		}
		if n := seen[h]; n > 0 {
			seen[h] = n + 1
			h = fmt.Sprintf("%s.%d", h, n)
		} else {
			seen[h] = 1
		}
		header[i] = h
	}
	return header
}

// fitRow pads short rows and trims long ones so every row has width n.
func fitRow(row []string, n int) []string {
	if len(row) == n {
		return row
	}
	if len(row) > n {
		return row[:n]
	}
	padded := make([]string, n)
	copy(padded, row)
	return padded
}
