package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Gender is the segment tag of a record.
type Gender string

const (
	GenderMen    Gender = "M"
	GenderWomen  Gender = "W"
	GenderUnisex Gender = "U"
)

// Valid reports whether g is one of the known segment tags.
func (g Gender) Valid() bool {
	switch g {
	case GenderMen, GenderWomen, GenderUnisex:
		return true
	}
	return false
}

// Label returns the display label used by detail views.
func (g Gender) Label() string {
	switch g {
	case GenderMen:
		return "Men's"
	case GenderWomen:
		return "Women's"
	default:
		return "Unisex"
	}
}

// Record is one inventory catalog entry.
//
// Available is expected to equal Total - Sold - Hold. The invariant is
// established by whoever produced the catalog and is only checked by
// dataset.Validate, never at read time.
type Record struct {
	SKU          string `json:"sku"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	Subcategory  string `json:"subcategory"`
	Gender       Gender `json:"gender"`
	Manufacturer string `json:"manufacturer"`

	Total     int `json:"total"`
	Available int `json:"available"`
	Hold      int `json:"hold"`
	Sold      int `json:"sold"`
	Requested int `json:"requested"`

	Wholesale decimal.Decimal `json:"wholesale"`
	Retail    decimal.Decimal `json:"retail"`
	MSRP      decimal.Decimal `json:"msrp"`

	Sizes  []string `json:"sizes"`
	Colors []string `json:"colors"`
}

// SizesText returns the sizes joined the way they are displayed.
func (r Record) SizesText() string {
	return strings.Join(r.Sizes, ", ")
}

// ColorsText returns the colors joined the way they are displayed and searched.
func (r Record) ColorsText() string {
	return strings.Join(r.Colors, ", ")
}

// StockLevel returns the stock bucket of the record.
func (r Record) StockLevel() StockLevel {
	return Classify(r.Available)
}

// IsLowStock reports whether 0 < Available <= LowStockThreshold.
func (r Record) IsLowStock() bool {
	return r.StockLevel() == StockLow
}

// Margin returns the retail markup over wholesale as a percentage, rounded
// to one decimal place. ok is false when wholesale is zero.
func (r Record) Margin() (pct decimal.Decimal, ok bool) {
	if r.Wholesale.IsZero() {
		return decimal.Zero, false
	}
	hundred := decimal.NewFromInt(100)
	return r.Retail.Sub(r.Wholesale).Div(r.Wholesale).Mul(hundred).Round(1), true
}
