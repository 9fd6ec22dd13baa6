package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krakozavr/Inventory/internal/testutil"
)

func TestNew_PreservesOrderAndCopies(t *testing.T) {
	records := testutil.Catalog(5)
	ds, err := New(records)
	require.NoError(t, err)

	records[0].Name = "mutated"

	assert.Equal(t, 5, ds.Len())
	assert.Equal(t, testutil.SKUs(testutil.Catalog(5)), testutil.SKUs(ds.Records()))
	assert.NotEqual(t, "mutated", ds.Records()[0].Name, "dataset must not alias the caller's slice")
}

func TestNew_DuplicateSKU(t *testing.T) {
	_, err := New(append(testutil.Catalog(3), testutil.Record("SKU-002")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SKU-002")
}

func TestNew_Empty(t *testing.T) {
	ds, err := New(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, ds.Len())
	assert.Empty(t, ds.Records())
	assert.Empty(t, ds.Categories())
}

func TestRecords_AppendDoesNotWriteThrough(t *testing.T) {
	ds, err := New(testutil.Catalog(3))
	require.NoError(t, err)

	recs := ds.Records()
	_ = append(recs, testutil.Record("EXTRA"))

	assert.Equal(t, 3, ds.Len())
	_, ok := ds.Lookup("EXTRA")
	assert.False(t, ok)
}

func TestLookup(t *testing.T) {
	ds, err := New(testutil.Catalog(4))
	require.NoError(t, err)

	r, ok := ds.Lookup("SKU-003")
	require.True(t, ok)
	assert.Equal(t, "SKU-003", r.SKU)

	_, ok = ds.Lookup("missing")
	assert.False(t, ok)
}

func TestOptions(t *testing.T) {
	ds, err := New(testutil.Catalog(12))
	require.NoError(t, err)

	assert.Equal(t, []string{"Accessories", "Men's Clothing", "Women's Clothing"}, ds.Categories())
	assert.Equal(t, []string{"Dress Shirts", "Pants"}, ds.Subcategories("Men's Clothing"))
	assert.Empty(t, ds.Subcategories(""), "no category selected means no subcategory options")
	assert.Empty(t, ds.Subcategories("Garden"))
	assert.Equal(t, []string{"Attire Co.", "Garment Works", "StyleCraft Ltd."}, ds.Manufacturers())
}
