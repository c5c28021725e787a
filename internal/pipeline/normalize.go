package pipeline

import (
	"ligandlib/internal"
	"ligandlib/internal/util"
)

// NormalizeInventory builds the Mass column, drops rows without a barcode
// and projects to the retained fields. Surviving rows keep input order.
func NormalizeInventory(raw []internal.RawInventoryRecord) []internal.InventoryRecord {
	out := make([]internal.InventoryRecord, 0, len(raw))
	for _, r := range raw {
		if util.IsMissing(r.Barcode) {
			continue
		}
		out = append(out, internal.InventoryRecord{
			Name:            util.OptionalString(r.Name),
			CASNumber:       util.OptionalString(r.CASNumber),
			Mass:            Mass(r.Amount, r.Unit),
			StorageName:     util.OptionalString(r.StorageName),
			CompartmentName: util.OptionalString(r.CompartmentName),
			Barcode:         r.Barcode,
		})
	}
	return out
}

func Mass(amount, unit string) string {
	if util.IsMissing(amount) || util.IsMissing(unit) {
		return internal.MassMissing
	}
	return amount + " " + unit
}

func NormalizeBarcodes(raw []internal.RawBarcodeEntry) []internal.BarcodeEntry {
	out := make([]internal.BarcodeEntry, 0, len(raw))
	for _, r := range raw {
		out = append(out, internal.BarcodeEntry{
			Timestamp: util.OptionalString(r.Timestamp),
			Barcode:   util.OptionalString(r.Barcode),
		})
	}
	return out
}
