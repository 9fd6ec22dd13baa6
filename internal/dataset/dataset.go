package dataset

import (
	"fmt"
	"slices"

	"github.com/krakozavr/Inventory/internal/catalog"
)

// Dataset is the read-only record collection for a session.
type Dataset struct {
	records []catalog.Record
	index   map[string]int
}

// New builds a Dataset from records, preserving their order.
// The slice is copied; later changes to it do not affect the Dataset.
// Returns an error if two records share a SKU.
func New(records []catalog.Record) (*Dataset, error) {
	d := &Dataset{
		records: slices.Clone(records),
		index:   make(map[string]int, len(records)),
	}
	for i, r := range d.records {
		if prev, dup := d.index[r.SKU]; dup {
			return nil, fmt.Errorf("duplicate sku %q at records %d and %d", r.SKU, prev, i)
		}
		d.index[r.SKU] = i
	}
	return d, nil
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	return len(d.records)
}

// Records returns the records in source order.
//
// The returned slice is shared with the Dataset and must be treated as
// read-only. Its capacity is clipped, so appending to it never writes into
// the Dataset.
func (d *Dataset) Records() []catalog.Record {
	return d.records[:len(d.records):len(d.records)]
}

// Lookup returns the record with the given SKU.
func (d *Dataset) Lookup(sku string) (catalog.Record, bool) {
	i, ok := d.index[sku]
	if !ok {
		return catalog.Record{}, false
	}
	return d.records[i], true
}

// Categories returns the distinct categories, sorted.
func (d *Dataset) Categories() []string {
	return distinct(d.records, func(r catalog.Record) (string, bool) {
		return r.Category, true
	})
}

// Subcategories returns the distinct subcategories of category, sorted.
// Subcategory options depend on the selected category: an empty category
// has no subcategory options.
func (d *Dataset) Subcategories(category string) []string {
	if category == "" {
		return []string{}
	}
	return distinct(d.records, func(r catalog.Record) (string, bool) {
		return r.Subcategory, r.Category == category
	})
}

// Manufacturers returns the distinct manufacturers, sorted.
func (d *Dataset) Manufacturers() []string {
	return distinct(d.records, func(r catalog.Record) (string, bool) {
		return r.Manufacturer, true
	})
}

func distinct(records []catalog.Record, key func(catalog.Record) (string, bool)) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, r := range records {
		k, ok := key(r)
		if !ok {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
