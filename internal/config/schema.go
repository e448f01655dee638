package config

import (
	"fmt"
	"strings"
	"sync"

	apperrors "github.com/encapsulab/encapsulab/internal/application/errors"
	"github.com/goccy/go-json"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// walkthroughSchema describes the shape of a decoded walkthrough document.
const walkthroughSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["version", "name", "steps"],
  "additionalProperties": false,
  "properties": {
    "version": {"type": "string", "minLength": 1},
    "requires": {"type": "string"},
    "name": {"type": "string", "minLength": 1},
    "description": {"type": "string"},
    "vars": {"type": "object"},
    "steps": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["id", "subject"],
        "additionalProperties": false,
        "properties": {
          "id": {"type": "string", "pattern": "^[a-zA-Z0-9_-]+$"},
          "description": {"type": "string"},
          "subject": {"type": "string", "pattern": "^[a-zA-Z0-9_-]+$"},
          "create": {"type": "string"},
          "call": {"type": "string"},
          "args": {
            "type": "object",
            "additionalProperties": {
              "type": ["string", "number", "integer", "boolean", "array"],
              "items": {"type": ["string", "number", "integer", "boolean"]}
            }
          },
          "expect": {
            "type": "array",
            "items": {"type": "string", "minLength": 1, "maxLength": 1000}
          },
          "expect_error": {"type": "string"}
        },
        "oneOf": [
          {"required": ["create"], "not": {"required": ["call"]}},
          {"required": ["call"], "not": {"required": ["create"]}}
        ]
      }
    }
  }
}`

var compileSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020

	if err := compiler.AddResource("walkthrough.json", strings.NewReader(walkthroughSchema)); err != nil {
		return nil, fmt.Errorf("failed to add walkthrough schema: %w", err)
	}
	return compiler.Compile("walkthrough.json")
})

// ValidateSchema validates the walkthrough document against its JSON Schema.
func ValidateSchema(w *Walkthrough) error {
	schema, err := compileSchema()
	if err != nil {
		return apperrors.NewConfigurationError("schema", "failed to compile walkthrough schema", err)
	}

	// Round-trip through JSON so the validator sees plain maps and slices.
	data, err := json.Marshal(w)
	if err != nil {
		return fmt.Errorf("failed to encode walkthrough: %w", err)
	}
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to decode walkthrough: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		if validationErr, ok := err.(*jsonschema.ValidationError); ok {
			return apperrors.NewValidationError("walkthrough", "schema validation failed", collectSchemaMessages(validationErr)...)
		}
		return fmt.Errorf("schema validation failed: %w", err)
	}

	return nil
}

// collectSchemaMessages flattens a validation error tree into readable lines.
func collectSchemaMessages(err *jsonschema.ValidationError) []string {
	var messages []string

	var collect func(*jsonschema.ValidationError)
	collect = func(e *jsonschema.ValidationError) {
		if e.Message != "" && len(e.Causes) == 0 {
			location := e.InstanceLocation
			if location == "" {
				location = "(root)"
			}
			messages = append(messages, fmt.Sprintf("%s: %s", location, e.Message))
		}
		for _, cause := range e.Causes {
			collect(cause)
		}
	}
	collect(err)

	if len(messages) == 0 {
		messages = append(messages, err.Error())
	}
	return messages
}
