package dataset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/krakozavr/Inventory/internal/catalog"
)

func TestLoadFile_YAML(t *testing.T) {
	ds, err := LoadFile("testdata/catalog.yaml")
	require.NoError(t, err)
	require.Equal(t, 3, ds.Len())

	shirt, ok := ds.Lookup("MC-DRS-001")
	require.True(t, ok)
	assert.Equal(t, "Oxford Dress Shirt", shirt.Name)
	assert.Equal(t, catalog.GenderMen, shirt.Gender)
	assert.Equal(t, 80, shirt.Available)
	assert.Equal(t, "39.99", shirt.Retail.StringFixed(2))
	assert.Equal(t, []string{"S", "M", "L", "XL"}, shirt.Sizes)

	blouse, ok := ds.Lookup("WC-BLS-002")
	require.True(t, ok)
	assert.Equal(t, []string{"Cream", "Black"}, blouse.Colors, "comma-separated lists are split")
	assert.Equal(t, "51.70", blouse.Retail.StringFixed(2), "quoted amounts parse as decimals")
}

func TestLoadFile_JSON(t *testing.T) {
	ds, err := LoadFile("testdata/catalog.json")
	require.NoError(t, err)
	require.Equal(t, 1, ds.Len())

	hat := ds.Records()[0]
	assert.Equal(t, "AC-HAT-001", hat.SKU)
	assert.Equal(t, "20.25", hat.Wholesale.String())
	assert.Equal(t, []string{"Gray"}, hat.Colors)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile("testdata/nope.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open catalog")
}

func TestDecode_UnknownField(t *testing.T) {
	doc := `
records:
  - sku: A
    nmae: typo
`
	_, err := Decode(strings.NewReader(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nmae")
}

func TestDecode_BadAmount(t *testing.T) {
	doc := `
records:
  - sku: A
    retail: cheap
`
	_, err := Decode(strings.NewReader(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid amount")
}

func TestDecode_Empty(t *testing.T) {
	records, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestDecodeNode(t *testing.T) {
	var doc struct {
		Records yaml.Node `yaml:"records"`
	}
	src := `
records:
  - sku: N-1
    name: Inline
    retail: 3.99
    colors: Red, Blue
`
	require.NoError(t, yaml.Unmarshal([]byte(src), &doc))

	records, err := DecodeNode(&doc.Records)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "N-1", records[0].SKU)
	assert.Equal(t, "3.99", records[0].Retail.String())
	assert.Equal(t, []string{"Red", "Blue"}, records[0].Colors)
}

func TestDecodeNode_Nil(t *testing.T) {
	records, err := DecodeNode(nil)
	require.NoError(t, err)
	assert.Empty(t, records)
}
