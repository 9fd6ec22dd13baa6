package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krakozavr/Inventory/internal/catalog"
	"github.com/krakozavr/Inventory/internal/testutil"
)

func newValidator(t *testing.T) *Validator {
	t.Helper()
	v, err := NewValidator()
	require.NoError(t, err)
	return v
}

func TestValidate_CleanCatalog(t *testing.T) {
	records, err := ReadFile("testdata/catalog.yaml")
	require.NoError(t, err)

	issues := newValidator(t).Validate(records)
	assert.Empty(t, issues)
	assert.False(t, HasErrors(issues))
}

func TestValidate_FixtureCatalog(t *testing.T) {
	issues := newValidator(t).Validate(testutil.Catalog(30))
	assert.Empty(t, issues)
}

func TestValidate_AvailableInvariant(t *testing.T) {
	r := testutil.Record("BAD-1")
	r.Available = r.Total // ignores sold and hold

	issues := newValidator(t).Validate([]catalog.Record{r})
	require.NotEmpty(t, issues)
	assert.True(t, HasErrors(issues))
	assert.Equal(t, "BAD-1", issues[0].SKU)
	assert.Contains(t, issues[0].Field, "available")
}

func TestValidate_NegativeCounter(t *testing.T) {
	r := testutil.Record("NEG-1")
	r.Requested = -3

	issues := newValidator(t).Validate([]catalog.Record{r})
	require.NotEmpty(t, issues)
	assert.Contains(t, issues[0].Field, "requested")
}

func TestValidate_UnknownGender(t *testing.T) {
	r := testutil.Record("G-1", testutil.WithGender("X"))

	issues := newValidator(t).Validate([]catalog.Record{r})
	require.NotEmpty(t, issues)
	assert.Contains(t, issues[0].Field, "gender")
}

func TestValidate_DuplicateSKU(t *testing.T) {
	records := []catalog.Record{testutil.Record("D-1"), testutil.Record("D-1")}

	issues := newValidator(t).Validate(records)
	require.Len(t, issues, 1)
	assert.Equal(t, 1, issues[0].Index)
	assert.Equal(t, "sku", issues[0].Field)
	assert.Contains(t, issues[0].String(), "duplicate of record 0")
}

func TestValidate_RetailBelowWholesaleIsWarning(t *testing.T) {
	r := testutil.Record("W-1", testutil.WithWholesale("30.00"), testutil.WithRetail("25.00"))

	issues := newValidator(t).Validate([]catalog.Record{r})
	require.Len(t, issues, 1)
	assert.Equal(t, SeverityWarning, issues[0].Severity)
	assert.False(t, HasErrors(issues))
}
