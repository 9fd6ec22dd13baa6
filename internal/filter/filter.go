package filter

import "github.com/krakozavr/Inventory/internal/catalog"

// Apply returns the records that satisfy every active constraint of spec,
// in source order. The input is never modified and the result never
// aliases it. No match, or no input, yields an empty (non-nil) slice.
func Apply(records []catalog.Record, spec Spec) []catalog.Record {
	return Select(records, Compile(spec))
}

// Select returns the records matched by p, in source order.
func Select(records []catalog.Record, p Predicate) []catalog.Record {
	out := make([]catalog.Record, 0, len(records))
	for _, r := range records {
		if p.Match(r) {
			out = append(out, r)
		}
	}
	return out
}
