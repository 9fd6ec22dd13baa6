package catalog

import (
	"cmp"
	"fmt"
	"strings"
)

// Column identifies a sortable or filterable record field.
//
// Column replaces lookups by field-name string: every column is resolved at
// compile time to an accessor, and ParseColumn rejects names that do not
// exist instead of quietly comparing nothing.
type Column int

const (
	ColumnSKU Column = iota + 1
	ColumnName
	ColumnCategory
	ColumnSubcategory
	ColumnGender
	ColumnManufacturer
	ColumnTotal
	ColumnAvailable
	ColumnHold
	ColumnSold
	ColumnRequested
	ColumnWholesale
	ColumnRetail
	ColumnMSRP
	ColumnSizes
	ColumnColors
)

var columnNames = map[Column]string{
	ColumnSKU:          "sku",
	ColumnName:         "name",
	ColumnCategory:     "category",
	ColumnSubcategory:  "subcategory",
	ColumnGender:       "gender",
	ColumnManufacturer: "manufacturer",
	ColumnTotal:        "total",
	ColumnAvailable:    "available",
	ColumnHold:         "hold",
	ColumnSold:         "sold",
	ColumnRequested:    "requested",
	ColumnWholesale:    "wholesale",
	ColumnRetail:       "retail",
	ColumnMSRP:         "msrp",
	ColumnSizes:        "sizes",
	ColumnColors:       "colors",
}

// Columns returns every column in declaration order.
func Columns() []Column {
	cols := make([]Column, 0, len(columnNames))
	for c := ColumnSKU; c <= ColumnColors; c++ {
		cols = append(cols, c)
	}
	return cols
}

// ParseColumn resolves a column name such as "retail" or "sku".
// Matching ignores case and surrounding space.
func ParseColumn(name string) (Column, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for _, c := range Columns() {
		if columnNames[c] == want {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown column %q", name)
}

// String returns the column name used in catalogs and on the command line.
func (c Column) String() string {
	if name, ok := columnNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Column(%d)", int(c))
}

// Valid reports whether c is a declared column.
func (c Column) Valid() bool {
	_, ok := columnNames[c]
	return ok
}

// Numeric reports whether the column compares as a number.
func (c Column) Numeric() bool {
	switch c {
	case ColumnTotal, ColumnAvailable, ColumnHold, ColumnSold, ColumnRequested,
		ColumnWholesale, ColumnRetail, ColumnMSRP:
		return true
	}
	return false
}

// Text returns the field value of r rendered as a string. Numeric columns
// use their canonical decimal form; list columns are comma joined.
func (c Column) Text(r Record) string {
	switch c {
	case ColumnSKU:
		return r.SKU
	case ColumnName:
		return r.Name
	case ColumnCategory:
		return r.Category
	case ColumnSubcategory:
		return r.Subcategory
	case ColumnGender:
		return string(r.Gender)
	case ColumnManufacturer:
		return r.Manufacturer
	case ColumnTotal:
		return fmt.Sprint(r.Total)
	case ColumnAvailable:
		return fmt.Sprint(r.Available)
	case ColumnHold:
		return fmt.Sprint(r.Hold)
	case ColumnSold:
		return fmt.Sprint(r.Sold)
	case ColumnRequested:
		return fmt.Sprint(r.Requested)
	case ColumnWholesale:
		return r.Wholesale.StringFixed(2)
	case ColumnRetail:
		return r.Retail.StringFixed(2)
	case ColumnMSRP:
		return r.MSRP.StringFixed(2)
	case ColumnSizes:
		return r.SizesText()
	case ColumnColors:
		return r.ColorsText()
	default:
		return ""
	}
}

// Compare orders a and b by column c in ascending order, returning -1, 0
// or +1. Numeric columns compare numerically; all others compare their
// folded text (see Fold). Invalid columns compare every pair as equal.
func (c Column) Compare(a, b Record) int {
	switch c {
	case ColumnTotal:
		return cmp.Compare(a.Total, b.Total)
	case ColumnAvailable:
		return cmp.Compare(a.Available, b.Available)
	case ColumnHold:
		return cmp.Compare(a.Hold, b.Hold)
	case ColumnSold:
		return cmp.Compare(a.Sold, b.Sold)
	case ColumnRequested:
		return cmp.Compare(a.Requested, b.Requested)
	case ColumnWholesale:
		return a.Wholesale.Cmp(b.Wholesale)
	case ColumnRetail:
		return a.Retail.Cmp(b.Retail)
	case ColumnMSRP:
		return a.MSRP.Cmp(b.MSRP)
	}
	if !c.Valid() {
		return 0
	}
	return strings.Compare(Fold(c.Text(a)), Fold(c.Text(b)))
}
