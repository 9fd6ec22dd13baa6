package catalog

import "fmt"

// LowStockThreshold is the largest Available count still considered low stock.
const LowStockThreshold = 20

// StockLevel is the derived stock bucket of a record.
type StockLevel string

const (
	// StockAny is the empty bucket used by filters to mean "no restriction".
	StockAny StockLevel = ""
	StockIn  StockLevel = "in-stock"
	StockLow StockLevel = "low"
	StockOut StockLevel = "out"
)

// StockLevels lists the concrete buckets in display order.
var StockLevels = []StockLevel{StockIn, StockLow, StockOut}

// Classify maps an available count to its bucket:
//
//	available > 20      in-stock
//	1 <= available <= 20  low
//	available == 0      out
//
// Negative counts violate the record invariants and classify as StockAny,
// which no stock filter matches.
func Classify(available int) StockLevel {
	switch {
	case available > LowStockThreshold:
		return StockIn
	case available > 0:
		return StockLow
	case available == 0:
		return StockOut
	default:
		return StockAny
	}
}

// Valid reports whether l is a concrete bucket.
func (l StockLevel) Valid() bool {
	switch l {
	case StockIn, StockLow, StockOut:
		return true
	}
	return false
}

// Label returns the status text shown in detail views.
func (l StockLevel) Label() string {
	switch l {
	case StockIn:
		return "In Stock"
	case StockLow:
		return "Low Stock"
	case StockOut:
		return "Out of Stock"
	default:
		return "Unknown"
	}
}

// ParseStockLevel parses a bucket name. The empty string parses to StockAny.
func ParseStockLevel(s string) (StockLevel, error) {
	l := StockLevel(s)
	if l == StockAny || l.Valid() {
		return l, nil
	}
	return StockAny, fmt.Errorf("unknown stock level %q: must be one of %v", s, StockLevels)
}
