package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadScenario_Valid(t *testing.T) {
	s, err := LoadScenario(filepath.Join("testdata", "scenarios", "filter_select.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "filter_select", s.Name)
	assert.Equal(t, "boutique-session", s.Session)
	assert.Equal(t, filepath.Join("testdata", "catalogs", "boutique.yaml"), s.Catalog)
	require.Len(t, s.Flow, 9)
	require.NotNil(t, s.Flow[0].Filter)
	assert.Equal(t, "navy", *s.Flow[0].Filter.Search)
	assert.Nil(t, s.Flow[0].Filter.Category)
}

func TestLoadScenario_InlineRecords(t *testing.T) {
	s, err := LoadScenario(filepath.Join("testdata", "scenarios", "stock_buckets.yaml"))
	require.NoError(t, err)

	records, err := buildDataset(s)
	require.NoError(t, err)
	assert.Equal(t, 3, records.Len())
}

func TestLoadScenario_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "unknown field",
			content: "name: x\ndescription: y\nflows: []\n",
			wantErr: "failed to parse YAML",
		},
		{
			name:    "missing name",
			content: "description: y\nflow:\n  - reset: true\n",
			wantErr: "name is required",
		},
		{
			name:    "missing description",
			content: "name: x\nflow:\n  - reset: true\n",
			wantErr: "description is required",
		},
		{
			name:    "empty flow",
			content: "name: x\ndescription: y\nflow: []\n",
			wantErr: "flow list is required",
		},
		{
			name:    "step without action",
			content: "name: x\ndescription: y\nflow:\n  - expect: { page: 1 }\n",
			wantErr: "flow[0]: one action is required",
		},
		{
			name:    "step with two actions",
			content: "name: x\ndescription: y\nflow:\n  - next: true\n    prev: true\n",
			wantErr: "only one action per step",
		},
		{
			name:    "unknown sort column",
			content: "name: x\ndescription: y\nflow:\n  - sort: colour\n",
			wantErr: `unknown column "colour"`,
		},
		{
			name:    "two catalog sources",
			content: "name: x\ndescription: y\ngenerate: 3\nrecords: []\nflow:\n  - reset: true\n",
			wantErr: "only one of catalog, records and generate",
		},
		{
			name:    "missing catalog file",
			content: "name: x\ndescription: y\ncatalog: nope.yaml\nflow:\n  - reset: true\n",
			wantErr: "catalog file not found",
		},
		{
			name:    "unknown assertion",
			content: "name: x\ndescription: y\nflow:\n  - reset: true\nassertions:\n  - type: trace_count\n",
			wantErr: `unknown assertion type "trace_count"`,
		},
		{
			name:    "final_state without expect",
			content: "name: x\ndescription: y\nflow:\n  - reset: true\nassertions:\n  - type: final_state\n",
			wantErr: "expect is required for final_state",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScenario(writeScenario(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}

func TestFilterArgs_Patch(t *testing.T) {
	args := FilterArgs{Category: strPtr("Accessories"), Stock: strPtr("")}
	p := args.Patch()

	require.NotNil(t, p.Category)
	assert.Equal(t, "Accessories", *p.Category)
	require.NotNil(t, p.Stock)
	assert.Equal(t, "", string(*p.Stock))
	assert.Nil(t, p.Search)
}
