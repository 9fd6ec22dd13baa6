package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/krakozavr/Inventory/internal/catalog"
	"github.com/krakozavr/Inventory/internal/filter"
	"github.com/krakozavr/Inventory/internal/testutil"
)

func TestAggregate(t *testing.T) {
	full := []catalog.Record{
		testutil.Record("OUT", testutil.WithAvailable(0)),
		testutil.Record("LOW1", testutil.WithAvailable(1)),
		testutil.Record("LOW20", testutil.WithAvailable(20)),
		testutil.Record("IN", testutil.WithAvailable(100)),
	}

	got := Aggregate(full, full[2:])
	assert.Equal(t, Stats{
		TotalCount:      4,
		FilteredCount:   2,
		LowStockCount:   2,
		OutOfStockCount: 1,
		FilteredUnits:   120,
	}, got)
}

func TestAggregate_Empty(t *testing.T) {
	assert.Equal(t, Stats{}, Aggregate(nil, nil))
}

func TestAggregate_LowStockIgnoresFilter(t *testing.T) {
	full := testutil.Catalog(40)
	all := Aggregate(full, full)
	none := Aggregate(full, filter.Apply(full, filter.Spec{Search: "no such item"}))

	assert.Equal(t, 0, none.FilteredCount)
	assert.Equal(t, all.LowStockCount, none.LowStockCount)
	assert.Equal(t, all.OutOfStockCount, none.OutOfStockCount)
	assert.Positive(t, all.LowStockCount)
}

func TestProperty_Invariants(t *testing.T) {
	full := testutil.Catalog(90)
	baseline := Aggregate(full, full)

	rapid.Check(t, func(t *rapid.T) {
		spec := filter.Spec{
			Category: rapid.SampledFrom([]string{"", "Accessories", "Men's Clothing", "Women's Clothing"}).Draw(t, "category"),
			Gender:   rapid.SampledFrom([]catalog.Gender{"", catalog.GenderMen, catalog.GenderWomen}).Draw(t, "gender"),
			Stock:    rapid.SampledFrom([]catalog.StockLevel{catalog.StockAny, catalog.StockIn, catalog.StockLow, catalog.StockOut}).Draw(t, "stock"),
			Search:   rapid.SampledFrom([]string{"", "navy", "item 1", "garment"}).Draw(t, "search"),
		}
		filtered := filter.Apply(full, spec)
		s := Aggregate(full, filtered)

		if s.FilteredCount != len(filtered) {
			t.Fatalf("filtered count %d, want %d", s.FilteredCount, len(filtered))
		}
		if s.TotalCount != len(full) || s.LowStockCount != baseline.LowStockCount {
			t.Fatalf("dataset counters changed under filter %+v: %+v", spec, s)
		}
		if s.FilteredCount > s.TotalCount {
			t.Fatalf("filtered %d exceeds total %d", s.FilteredCount, s.TotalCount)
		}
	})
}
