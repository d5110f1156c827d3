package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspect(t *testing.T) {
	data, err := sampleReport().JSON()
	require.NoError(t, err)

	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{"name", "$.name", "sample"},
		{"bracket notation", "$['name']", "sample"},
		{"array index", "$.results[2].label", "fib_rec_naive"},
		{"nested counter", "$.results[2].stats.calls", "177"},
		{"config default", "$.config.arrays.target", "777"},
		{"gjson query", `results.#(label=="fact_rec").stats.calls`, "5"},
		{"skipped flag", "$.results[6].skipped", "true"},
		{"object", "$.results[0].stats", "{\n  \"comparisons\": 4,\n  \"ops\": 4,\n  \"calls\": 0,\n  \"extraSpaceBytes\": 0\n}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Inspect(data, tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestInspectErrors(t *testing.T) {
	data, err := sampleReport().JSON()
	require.NoError(t, err)

	_, err = Inspect(nil, "$.name")
	assert.EqualError(t, err, "empty report")

	_, err = Inspect(data, "")
	assert.EqualError(t, err, "empty JSONPath expression")

	_, err = Inspect([]byte("{not json"), "$.name")
	assert.EqualError(t, err, "report is not valid JSON")

	_, err = Inspect(data, "$.missing.field")
	assert.EqualError(t, err, "path not found: $.missing.field")
}

func TestInspectNull(t *testing.T) {
	got, err := Inspect([]byte(`{"a": null}`), "$.a")
	require.NoError(t, err)
	assert.Equal(t, "null", got)
}

func TestInspectFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, WriteJSON(sampleReport(), path))

	got, err := InspectFile(path, "$.results[0].label")
	require.NoError(t, err)
	assert.Equal(t, "fact_iter", got)

	_, err = InspectFile(filepath.Join(t.TempDir(), "missing.json"), "$.name")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read report")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestConvertToGjsonPath(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"$.name", "name"},
		{"$['name']", "name"},
		{`$["name"]`, "name"},
		{"$.config.arrays", "config.arrays"},
		{"$.results[0]", "results.0"},
		{"$.results[0].stats.calls", "results.0.stats.calls"},
		{"$['config']['arrays']", "config.arrays"},
		{"$", "@this"},
		{"$[0]", "0"},
		{"$[0].name", "0.name"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, convertToGjsonPath(tt.input))
		})
	}
}
