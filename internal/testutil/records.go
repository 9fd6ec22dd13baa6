// Package testutil provides deterministic record fixtures for tests.
package testutil

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/krakozavr/Inventory/internal/catalog"
)

// RecordOption adjusts a fixture record.
type RecordOption func(*catalog.Record)

// Record returns a well-formed record with the given SKU.
// Stock counters satisfy available = total - sold - hold.
func Record(sku string, opts ...RecordOption) catalog.Record {
	r := catalog.Record{
		SKU:          sku,
		Name:         "Item " + sku,
		Category:     "Apparel",
		Subcategory:  "Shirts",
		Gender:       catalog.GenderUnisex,
		Manufacturer: "Attire Co.",
		Total:        100,
		Sold:         40,
		Hold:         10,
		Available:    50,
		Requested:    5,
		Wholesale:    decimal.RequireFromString("10.00"),
		Retail:       decimal.RequireFromString("22.00"),
		MSRP:         decimal.RequireFromString("27.50"),
		Sizes:        []string{"S", "M", "L"},
		Colors:       []string{"Black", "Navy"},
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// WithName sets the display name.
func WithName(name string) RecordOption {
	return func(r *catalog.Record) { r.Name = name }
}

// WithCategory sets category and subcategory.
func WithCategory(category, subcategory string) RecordOption {
	return func(r *catalog.Record) {
		r.Category = category
		r.Subcategory = subcategory
	}
}

// WithGender sets the segment tag.
func WithGender(g catalog.Gender) RecordOption {
	return func(r *catalog.Record) { r.Gender = g }
}

// WithManufacturer sets the manufacturer.
func WithManufacturer(m string) RecordOption {
	return func(r *catalog.Record) { r.Manufacturer = m }
}

// WithColors sets the color list.
func WithColors(colors ...string) RecordOption {
	return func(r *catalog.Record) { r.Colors = colors }
}

// WithAvailable sets Available and adjusts Total to keep the stock invariant.
func WithAvailable(n int) RecordOption {
	return func(r *catalog.Record) {
		r.Available = n
		r.Total = n + r.Sold + r.Hold
	}
}

// WithRetail sets the retail price from its decimal string form.
func WithRetail(amount string) RecordOption {
	return func(r *catalog.Record) { r.Retail = decimal.RequireFromString(amount) }
}

// WithWholesale sets the wholesale price from its decimal string form.
func WithWholesale(amount string) RecordOption {
	return func(r *catalog.Record) { r.Wholesale = decimal.RequireFromString(amount) }
}

var (
	fixtureCategories = []struct {
		category      string
		subcategories []string
		gender        catalog.Gender
	}{
		{"Accessories", []string{"Belts", "Hats"}, catalog.GenderUnisex},
		{"Men's Clothing", []string{"Dress Shirts", "Pants"}, catalog.GenderMen},
		{"Women's Clothing", []string{"Blouses", "Dresses"}, catalog.GenderWomen},
	}
	fixtureManufacturers = []string{"Attire Co.", "Garment Works", "StyleCraft Ltd."}
	fixtureColors        = []string{"Black", "Navy", "Red", "Olive"}
)

// Catalog returns n deterministic records with SKUs "SKU-001", "SKU-002", ...
// Categories, genders, manufacturers, colors, stock levels and prices vary
// so that every filter and sort column has something to work on; the set
// includes out-of-stock and low-stock records once n >= 10.
func Catalog(n int) []catalog.Record {
	records := make([]catalog.Record, n)
	for i := range records {
		cat := fixtureCategories[i%len(fixtureCategories)]
		sub := cat.subcategories[(i/len(fixtureCategories))%len(cat.subcategories)]
		available := (i * 7) % 60
		cents := int64(500 + (i*379)%9500)

		records[i] = Record(fmt.Sprintf("SKU-%03d", i+1),
			WithName(fmt.Sprintf("%s Item %d", sub, i+1)),
			WithCategory(cat.category, sub),
			WithGender(cat.gender),
			WithManufacturer(fixtureManufacturers[i%len(fixtureManufacturers)]),
			WithColors(fixtureColors[i%len(fixtureColors)], fixtureColors[(i+1)%len(fixtureColors)]),
			WithAvailable(available),
			func(r *catalog.Record) {
				r.Requested = i % 30
				r.Wholesale = decimal.New(cents, -2)
				r.Retail = decimal.New(cents*2, -2)
				r.MSRP = decimal.New(cents*5/2, -2)
			},
		)
	}
	return records
}

// SKUs returns the SKUs of records in order.
func SKUs(records []catalog.Record) []string {
	skus := make([]string, len(records))
	for i, r := range records {
		skus[i] = r.SKU
	}
	return skus
}
