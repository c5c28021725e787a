package pipeline

import (
	"ligandlib/internal"
	"ligandlib/internal/catalog"
)

type Matcher struct {
	index *catalog.Index
}

func NewMatcher(inventory []internal.InventoryRecord) *Matcher {
	return &Matcher{index: catalog.BuildIndex(inventory)}
}

type MatchStats struct {
	Matched   int
	Unmatched int
}

// Match left-joins entries against the inventory on the exact barcode.
// An entry with k matching records yields k rows; with none it yields one
// row whose inventory fields are nil.
func (m *Matcher) Match(entries []internal.BarcodeEntry) ([]internal.MatchedRecord, MatchStats) {
	out := make([]internal.MatchedRecord, 0, len(entries))
	stats := MatchStats{}
	for _, entry := range entries {
		var hits []internal.InventoryRecord
		if entry.Barcode != nil {
			hits = m.index.Lookup(*entry.Barcode)
		}
		if len(hits) == 0 {
			stats.Unmatched++
			out = append(out, internal.MatchedRecord{Barcode: entry.Barcode})
			continue
		}
		stats.Matched++
		for _, rec := range hits {
			out = append(out, toMatchedRecord(entry, rec))
		}
	}
	return out, stats
}

func toMatchedRecord(entry internal.BarcodeEntry, rec internal.InventoryRecord) internal.MatchedRecord {
	mass := rec.Mass
	return internal.MatchedRecord{
		Name:            rec.Name,
		CAS:             rec.CASNumber,
		Mass:            &mass,
		StorageName:     rec.StorageName,
		CompartmentName: rec.CompartmentName,
		Barcode:         entry.Barcode,
	}
}
