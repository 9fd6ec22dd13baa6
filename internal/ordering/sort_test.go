package ordering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krakozavr/Inventory/internal/catalog"
	"github.com/krakozavr/Inventory/internal/testutil"
)

func retailCatalog() []catalog.Record {
	return []catalog.Record{
		testutil.Record("A", testutil.WithRetail("10.00")),
		testutil.Record("B", testutil.WithRetail("25.50")),
		testutil.Record("C", testutil.WithRetail("3.99")),
	}
}

func TestSort_RetailToggle(t *testing.T) {
	records := retailCatalog()

	spec := Default().Toggle(catalog.ColumnRetail)
	assert.Equal(t, Spec{Column: catalog.ColumnRetail, Direction: Ascending}, spec)
	assert.Equal(t, []string{"C", "A", "B"}, testutil.SKUs(Sort(records, spec)))

	spec = spec.Toggle(catalog.ColumnRetail)
	assert.Equal(t, Descending, spec.Direction)
	assert.Equal(t, []string{"B", "A", "C"}, testutil.SKUs(Sort(records, spec)))
}

func TestSort_NumericNotLexical(t *testing.T) {
	records := []catalog.Record{
		testutil.Record("A", testutil.WithAvailable(10)),
		testutil.Record("B", testutil.WithAvailable(9)),
		testutil.Record("C", testutil.WithAvailable(100)),
	}
	got := Sort(records, Spec{Column: catalog.ColumnAvailable})
	assert.Equal(t, []string{"B", "A", "C"}, testutil.SKUs(got))
}

func TestSort_TextIgnoresCase(t *testing.T) {
	records := []catalog.Record{
		testutil.Record("1", testutil.WithName("belt")),
		testutil.Record("2", testutil.WithName("Apron")),
		testutil.Record("3", testutil.WithName("Cap")),
	}
	got := Sort(records, Spec{Column: catalog.ColumnName})
	assert.Equal(t, []string{"2", "1", "3"}, testutil.SKUs(got))
}

func TestSort_StableTies(t *testing.T) {
	records := []catalog.Record{
		testutil.Record("D", testutil.WithManufacturer("Zeta")),
		testutil.Record("A", testutil.WithManufacturer("Alpha")),
		testutil.Record("C", testutil.WithManufacturer("Zeta")),
		testutil.Record("B", testutil.WithManufacturer("Alpha")),
	}

	asc := Sort(records, Spec{Column: catalog.ColumnManufacturer})
	assert.Equal(t, []string{"A", "B", "D", "C"}, testutil.SKUs(asc))

	desc := Sort(records, Spec{Column: catalog.ColumnManufacturer, Direction: Descending})
	assert.Equal(t, []string{"D", "C", "A", "B"}, testutil.SKUs(desc))
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	records := retailCatalog()
	got := Sort(records, Spec{Column: catalog.ColumnRetail})

	require.Len(t, got, 3)
	assert.Equal(t, []string{"A", "B", "C"}, testutil.SKUs(records))
}

func TestSort_InvalidColumnKeepsOrder(t *testing.T) {
	records := retailCatalog()
	got := Sort(records, Spec{Column: catalog.Column(99), Direction: Descending})
	assert.Equal(t, []string{"A", "B", "C"}, testutil.SKUs(got))
}

func TestSort_Empty(t *testing.T) {
	got := Sort(nil, Default())
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSpec_Toggle(t *testing.T) {
	s := Spec{Column: catalog.ColumnName, Direction: Descending}
	assert.Equal(t, Spec{Column: catalog.ColumnSold, Direction: Ascending}, s.Toggle(catalog.ColumnSold))
	assert.Equal(t, Spec{Column: catalog.ColumnName, Direction: Ascending}, s.Toggle(catalog.ColumnName))
	assert.Equal(t, "name desc", s.String())
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in      string
		want    Direction
		wantErr bool
	}{
		{"", Ascending, false},
		{"asc", Ascending, false},
		{"DESC", Descending, false},
		{" descending ", Descending, false},
		{"down", Ascending, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDirection(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
