package ordering

import (
	"slices"
	"strings"

	"github.com/krakozavr/Inventory/internal/catalog"
)

// keyed pairs a record with its precomputed folded key for text columns.
type keyed struct {
	key string
	rec catalog.Record
}

// Sort returns records ordered by spec. Ties keep their input order.
// An invalid column leaves the order unchanged.
func Sort(records []catalog.Record, spec Spec) []catalog.Record {
	items := make([]keyed, len(records))
	text := spec.Column.Valid() && !spec.Column.Numeric()
	for i, r := range records {
		items[i] = keyed{rec: r}
		if text {
			items[i].key = catalog.Fold(spec.Column.Text(r))
		}
	}

	compare := func(a, b keyed) int {
		if text {
			return strings.Compare(a.key, b.key)
		}
		return spec.Column.Compare(a.rec, b.rec)
	}

	slices.SortStableFunc(items, func(a, b keyed) int {
		c := compare(a, b)
		if spec.Direction == Descending {
			c = -c
		}
		return c
	})

	out := make([]catalog.Record, len(items))
	for i, it := range items {
		out[i] = it.rec
	}
	return out
}
