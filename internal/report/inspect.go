package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// Inspect looks up a JSONPath expression in a saved report.
//
// Expressions starting with "$" are JSONPath ($.results[3].stats.calls);
// anything else is passed to gjson unchanged, so queries such as
// results.#(label=="fact_rec").stats work too. Objects and arrays are
// returned pretty-printed.
func Inspect(data []byte, path string) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("empty report")
	}
	if path == "" {
		return "", fmt.Errorf("empty JSONPath expression")
	}
	if !gjson.ValidBytes(data) {
		return "", fmt.Errorf("report is not valid JSON")
	}

	gpath := path
	if strings.HasPrefix(path, "$") {
		gpath = convertToGjsonPath(path)
	}

	result := gjson.GetBytes(data, gpath)
	if !result.Exists() {
		return "", fmt.Errorf("path not found: %s", path)
	}

	switch {
	case result.Type == gjson.Null:
		return "null", nil
	case result.IsObject() || result.IsArray():
		return strings.TrimRight(string(pretty.Pretty([]byte(result.Raw))), "\n"), nil
	default:
		return result.String(), nil
	}
}

// InspectFile reads a report from disk and runs Inspect on it.
func InspectFile(file, path string) (string, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("failed to read report: %w", err)
	}
	return Inspect(data, path)
}

// convertToGjsonPath converts a JSONPath expression to a gjson path format
//
//	JSONPath: $.results[0].stats
//	gjson:    results.0.stats
func convertToGjsonPath(path string) string {
	path = strings.TrimPrefix(path, "$")
	if path == "" {
		return "@this"
	}

	path = strings.TrimPrefix(path, ".")

	// Bracket notation with quotes: ['name'] or ["name"]
	for _, q := range []string{"'", "\""} {
		path = strings.ReplaceAll(path, "["+q, ".")
		path = strings.ReplaceAll(path, q+"]", "")
	}

	// Index notation: [n] -> .n
	path = strings.ReplaceAll(path, "[", ".")
	path = strings.ReplaceAll(path, "]", "")

	return strings.TrimPrefix(path, ".")
}
