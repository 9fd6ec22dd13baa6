package filter

import (
	"fmt"
	"slices"
	"testing"

	"github.com/shopspring/decimal"
	"pgregory.net/rapid"

	"github.com/krakozavr/Inventory/internal/catalog"
)

var (
	genCategories    = []string{"Accessories", "Men's Clothing", "Shoes"}
	genSubcategories = []string{"Belts", "Pants", "Boots"}
	genGenders       = []catalog.Gender{catalog.GenderMen, catalog.GenderWomen, catalog.GenderUnisex}
	genWords         = []string{"Navy", "navy", "Oxford", "Belt", "Attire", "Red", ""}
)

func genRecords() *rapid.Generator[[]catalog.Record] {
	return rapid.Custom(func(t *rapid.T) []catalog.Record {
		n := rapid.IntRange(0, 40).Draw(t, "n")
		records := make([]catalog.Record, n)
		for i := range records {
			records[i] = catalog.Record{
				SKU:          fmt.Sprintf("R-%03d", i),
				Name:         rapid.SampledFrom(genWords).Draw(t, "name") + " item",
				Category:     rapid.SampledFrom(genCategories).Draw(t, "category"),
				Subcategory:  rapid.SampledFrom(genSubcategories).Draw(t, "subcategory"),
				Gender:       rapid.SampledFrom(genGenders).Draw(t, "gender"),
				Manufacturer: rapid.SampledFrom(genWords).Draw(t, "manufacturer"),
				Available:    rapid.IntRange(0, 60).Draw(t, "available"),
				Retail:       decimal.NewFromInt(int64(rapid.IntRange(0, 10000).Draw(t, "retail"))).Shift(-2),
				Colors:       []string{rapid.SampledFrom(genWords).Draw(t, "color")},
			}
		}
		return records
	})
}

func genSpec() *rapid.Generator[Spec] {
	return rapid.Custom(func(t *rapid.T) Spec {
		var s Spec
		if rapid.Bool().Draw(t, "hasSearch") {
			s.Search = rapid.SampledFrom(genWords).Draw(t, "search")
		}
		if rapid.Bool().Draw(t, "hasCategory") {
			s.Category = rapid.SampledFrom(genCategories).Draw(t, "category")
		}
		if rapid.Bool().Draw(t, "hasSubcategory") {
			s.Subcategory = rapid.SampledFrom(genSubcategories).Draw(t, "subcategory")
		}
		if rapid.Bool().Draw(t, "hasGender") {
			s.Gender = rapid.SampledFrom(genGenders).Draw(t, "gender")
		}
		if rapid.Bool().Draw(t, "hasStock") {
			s.Stock = rapid.SampledFrom(catalog.StockLevels).Draw(t, "stock")
		}
		return s
	})
}

// satisfies is an independent restatement of the filter semantics.
func satisfies(r catalog.Record, s Spec) bool {
	if s.Search != "" {
		needle := catalog.Fold(s.Search)
		found := false
		for _, f := range []string{r.SKU, r.Name, r.Category, r.Subcategory, r.Manufacturer, r.ColorsText()} {
			if containsFolded(f, needle) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if s.Category != "" && r.Category != s.Category {
		return false
	}
	if s.Subcategory != "" && r.Subcategory != s.Subcategory {
		return false
	}
	if s.Gender != "" && r.Gender != s.Gender {
		return false
	}
	switch s.Stock {
	case catalog.StockIn:
		return r.Available > 20
	case catalog.StockLow:
		return r.Available > 0 && r.Available <= 20
	case catalog.StockOut:
		return r.Available == 0
	}
	return true
}

func containsFolded(field, needle string) bool {
	return len(needle) == 0 || slices.Contains(substrings(catalog.Fold(field), len(needle)), needle)
}

func substrings(s string, n int) []string {
	var out []string
	for i := 0; i+n <= len(s); i++ {
		out = append(out, s[i:i+n])
	}
	return out
}

func TestProperty_SoundAndComplete(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		records := genRecords().Draw(t, "records")
		spec := genSpec().Draw(t, "spec")

		got := Apply(records, spec)

		var want []string
		for _, r := range records {
			if satisfies(r, spec) {
				want = append(want, r.SKU)
			}
		}
		gotSKUs := make([]string, len(got))
		for i, r := range got {
			gotSKUs[i] = r.SKU
		}
		if !slices.Equal(want, gotSKUs) {
			t.Fatalf("spec %+v: got %v, want %v", spec, gotSKUs, want)
		}
	})
}

func TestProperty_Monotonic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		records := genRecords().Draw(t, "records")
		base := genSpec().Draw(t, "base")
		extra := genSpec().Draw(t, "extra")

		// Add every constraint of extra that base leaves unset.
		narrowed := base
		if narrowed.Search == "" {
			narrowed.Search = extra.Search
		}
		if narrowed.Category == "" {
			narrowed.Category = extra.Category
		}
		if narrowed.Subcategory == "" {
			narrowed.Subcategory = extra.Subcategory
		}
		if narrowed.Gender == "" {
			narrowed.Gender = extra.Gender
		}
		if narrowed.Stock == catalog.StockAny {
			narrowed.Stock = extra.Stock
		}

		before := len(Apply(records, base))
		after := len(Apply(records, narrowed))
		if after > before {
			t.Fatalf("adding constraints grew the result: %d -> %d (%+v -> %+v)", before, after, base, narrowed)
		}
	})
}
