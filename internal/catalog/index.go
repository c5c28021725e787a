package catalog

import (
	"ligandlib/internal"
)

// Index groups normalized inventory by exact barcode. Records sharing a
// barcode keep their inventory order.
type Index struct {
	ByBarcode map[string][]internal.InventoryRecord
	Records   int
}

func BuildIndex(records []internal.InventoryRecord) *Index {
	idx := &Index{
		ByBarcode: map[string][]internal.InventoryRecord{},
		Records:   len(records),
	}
	for _, r := range records {
		idx.ByBarcode[r.Barcode] = append(idx.ByBarcode[r.Barcode], r)
	}
	return idx
}

func (i *Index) Lookup(barcode string) []internal.InventoryRecord {
	return i.ByBarcode[barcode]
}

// Duplicates returns barcodes carried by more than one inventory record.
func (i *Index) Duplicates() map[string]int {
	out := map[string]int{}
	for code, recs := range i.ByBarcode {
		if len(recs) > 1 {
			out[code] = len(recs)
		}
	}
	return out
}
