package config

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

const schemaURL = "bigo-suite.schema.json"

// suiteSchema describes the accepted shape of a suite file. Semantic rules
// that span fields live in Validate.
const suiteSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "name": {"type": "string"},
    "factorial": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "n": {"type": "integer", "minimum": 0}
      }
    },
    "fibonacci": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "recursiveN": {"type": "integer", "minimum": 0},
        "iterativeN": {"type": "integer", "minimum": 0}
      }
    },
    "arrays": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "sizes": {
          "type": "array",
          "minItems": 1,
          "items": {"type": "integer", "minimum": 0}
        },
        "patterns": {
          "type": "array",
          "minItems": 1,
          "items": {"type": "string", "pattern": "^(?i)(best|average|avg|worst)$"}
        },
        "target": {"type": "integer"},
        "threshold": {"type": "integer"},
        "pairSkipAbove": {"type": "integer", "minimum": 0},
        "seed": {"type": "integer"},
        "valueMin": {"type": "integer"},
        "valueMax": {"type": "integer"}
      }
    },
    "options": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "repeat": {"type": "integer", "minimum": 1},
        "slowWarning": {"type": ["string", "integer"], "minimum": 0}
      }
    }
  }
}`

var compileSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, strings.NewReader(suiteSchema)); err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}
	return compiler.Compile(schemaURL)
})

// SchemaErrors is the list of schema violations found in a document.
type SchemaErrors []error

// Error implements the error interface for SchemaErrors
func (se SchemaErrors) Error() string {
	var sb strings.Builder
	sb.WriteString("config does not match schema: ")
	for i, err := range se {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(err.Error())
	}
	return sb.String()
}

// ValidateDocument checks a raw YAML or JSON suite document against the
// embedded schema. An empty document is valid.
func ValidateDocument(data []byte, isJSON bool) error {
	doc, err := toJSONValue(data, isJSON)
	if err != nil {
		return err
	}
	if doc == nil {
		return nil
	}

	schema, err := compileSchema()
	if err != nil {
		return err
	}

	if err := schema.Validate(doc); err != nil {
		if validationErr, ok := err.(*jsonschema.ValidationError); ok {
			return extractValidationErrors(validationErr)
		}
		return SchemaErrors{err}
	}
	return nil
}

// toJSONValue decodes data into the generic form the validator expects.
// YAML is round-tripped through encoding/json so numbers become float64.
func toJSONValue(data []byte, isJSON bool) (interface{}, error) {
	var doc interface{}
	if isJSON {
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config: %w", err)
		}
		return doc, nil
	}

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}
	if doc == nil {
		return nil, nil
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to convert YAML config: %w", err)
	}
	var out interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to convert YAML config: %w", err)
	}
	return out, nil
}

// extractValidationErrors flattens a jsonschema.ValidationError tree.
func extractValidationErrors(err *jsonschema.ValidationError) SchemaErrors {
	var errors SchemaErrors

	if len(err.Causes) == 0 && err.Message != "" {
		location := err.InstanceLocation
		if location == "" {
			location = "/"
		}
		errors = append(errors, fmt.Errorf("%s: %s", location, err.Message))
	}

	for _, childErr := range err.Causes {
		errors = append(errors, extractValidationErrors(childErr)...)
	}

	if len(errors) == 0 {
		errors = append(errors, err)
	}
	return errors
}
