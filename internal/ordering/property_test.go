package ordering

import (
	"fmt"
	"slices"
	"testing"

	"github.com/shopspring/decimal"
	"pgregory.net/rapid"

	"github.com/krakozavr/Inventory/internal/catalog"
)

func genRecords() *rapid.Generator[[]catalog.Record] {
	return rapid.Custom(func(t *rapid.T) []catalog.Record {
		n := rapid.IntRange(0, 30).Draw(t, "n")
		records := make([]catalog.Record, n)
		for i := range records {
			records[i] = catalog.Record{
				SKU:          fmt.Sprintf("R-%03d", i),
				Name:         rapid.SampledFrom([]string{"apron", "Apron", "belt", "Cap", "cap"}).Draw(t, "name"),
				Manufacturer: rapid.SampledFrom([]string{"Zeta", "alpha", "Mid"}).Draw(t, "manufacturer"),
				Available:    rapid.IntRange(0, 50).Draw(t, "available"),
				Retail:       decimal.New(int64(rapid.IntRange(0, 5000).Draw(t, "retail")), -2),
			}
		}
		return records
	})
}

func genSpec() *rapid.Generator[Spec] {
	return rapid.Custom(func(t *rapid.T) Spec {
		return Spec{
			Column:    rapid.SampledFrom(catalog.Columns()).Draw(t, "column"),
			Direction: rapid.SampledFrom([]Direction{Ascending, Descending}).Draw(t, "direction"),
		}
	})
}

func TestProperty_SortedAndPermutation(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		records := genRecords().Draw(t, "records")
		spec := genSpec().Draw(t, "spec")

		got := Sort(records, spec)
		if len(got) != len(records) {
			t.Fatalf("length changed: %d -> %d", len(records), len(got))
		}

		for i := 1; i < len(got); i++ {
			c := spec.Column.Compare(got[i-1], got[i])
			if spec.Direction == Descending {
				c = -c
			}
			if c > 0 {
				t.Fatalf("%s: %s before %s", spec, got[i-1].SKU, got[i].SKU)
			}
		}

		in := skus(records)
		out := skus(got)
		slices.Sort(in)
		slices.Sort(out)
		if !slices.Equal(in, out) {
			t.Fatalf("not a permutation: %v vs %v", in, out)
		}
	})
}

func TestProperty_DoubleToggleRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		records := genRecords().Draw(t, "records")
		spec := genSpec().Draw(t, "spec")

		twice := spec.Toggle(spec.Column).Toggle(spec.Column)
		if twice != spec {
			t.Fatalf("double toggle changed spec: %s -> %s", spec, twice)
		}
		if !slices.Equal(skus(Sort(records, spec)), skus(Sort(records, twice))) {
			t.Fatalf("double toggle changed order")
		}
	})
}

func skus(records []catalog.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.SKU
	}
	return out
}
