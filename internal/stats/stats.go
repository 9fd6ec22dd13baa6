// Package stats computes the summary counters shown alongside a view.
package stats

import "github.com/krakozavr/Inventory/internal/catalog"

// Stats holds the header counters.
//
// TotalCount, LowStockCount and OutOfStockCount describe the whole dataset
// and do not change with the filter. FilteredCount and FilteredUnits
// describe the filtered subset.
type Stats struct {
	TotalCount      int `json:"total"`
	FilteredCount   int `json:"filtered"`
	LowStockCount   int `json:"low_stock"`
	OutOfStockCount int `json:"out_of_stock"`
	FilteredUnits   int `json:"filtered_units"`
}

// Aggregate computes Stats from the full dataset and its filtered subset.
func Aggregate(full, filtered []catalog.Record) Stats {
	s := Stats{
		TotalCount:    len(full),
		FilteredCount: len(filtered),
	}
	for _, r := range full {
		switch r.StockLevel() {
		case catalog.StockLow:
			s.LowStockCount++
		case catalog.StockOut:
			s.OutOfStockCount++
		}
	}
	for _, r := range filtered {
		s.FilteredUnits += r.Available
	}
	return s
}
