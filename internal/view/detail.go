package view

import (
	"github.com/shopspring/decimal"

	"github.com/krakozavr/Inventory/internal/catalog"
)

// Detail is the selected record together with the values derived for the
// detail panel.
type Detail struct {
	Record      catalog.Record
	Stock       catalog.StockLevel
	StockLabel  string
	GenderLabel string

	// Margin is the retail markup over wholesale in percent, one decimal
	// place. HasMargin is false when wholesale is zero.
	Margin    decimal.Decimal
	HasMargin bool
}

// Detail returns the detail of the selected record. ok is false when
// nothing is selected.
func (c *Controller) Detail() (Detail, bool) {
	if c.state.Selection == "" {
		return Detail{}, false
	}
	r, ok := c.ds.Lookup(c.state.Selection)
	if !ok {
		return Detail{}, false
	}
	return NewDetail(r), true
}

// NewDetail derives the detail panel values for r.
func NewDetail(r catalog.Record) Detail {
	level := r.StockLevel()
	margin, ok := r.Margin()
	return Detail{
		Record:      r,
		Stock:       level,
		StockLabel:  level.Label(),
		GenderLabel: r.Gender.Label(),
		Margin:      margin,
		HasMargin:   ok,
	}
}
