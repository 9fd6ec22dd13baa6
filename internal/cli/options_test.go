package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"categories", nil, "Accessories\nMen's Clothing\nWomen's Clothing\n"},
		{"subcategories", []string{"--category", "Men's Clothing"}, "Dress Shirts\nPants\n"},
		{"unknown category", []string{"--category", "Garden"}, "(none)\n"},
		{"manufacturers", []string{"--manufacturers"}, "Attire Co.\nDetailWorks Inc.\nGarment Works\nStyleCraft Ltd.\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"options", "--catalog", boutiqueCatalog}, tt.args...)
			run := runCLI(t, "", args...)
			require.NoError(t, run.Err)
			assert.Equal(t, tt.want, run.Stdout)
		})
	}
}

func TestOptions_JSON(t *testing.T) {
	run := runCLI(t, "", "options", "--catalog", boutiqueCatalog, "--format", "json", "--category", "Garden")
	require.NoError(t, run.Err)

	var resp struct {
		Data OptionsResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(run.Stdout), &resp))
	assert.Equal(t, "subcategory", resp.Data.Field)
	assert.Equal(t, "Garden", resp.Data.Category)
	assert.NotNil(t, resp.Data.Values)
	assert.Empty(t, resp.Data.Values)
}

func TestOptions_MutuallyExclusive(t *testing.T) {
	run := runCLI(t, "", "options", "--catalog", boutiqueCatalog, "--category", "Accessories", "--manufacturers")
	require.Error(t, run.Err)
}
