package datasets

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// shardSchemaDef is the JSON Schema every shard document must satisfy.
var shardSchemaDef = map[string]any{
	"type":     "object",
	"required": []any{"name", "category", "rows"},
	"properties": map[string]any{
		"name": map[string]any{
			"type":      "string",
			"minLength": 1,
		},
		"category": map[string]any{
			"type": "string",
			"enum": []any{CategoryTactics, CategoryOpenings, CategoryEndgames, CategoryFallback},
		},
		"rows": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []any{"id", "moves"},
				"properties": map[string]any{
					"id":       map[string]any{"type": "string", "minLength": 1},
					"fen":      map[string]any{"type": "string"},
					"moves":    map[string]any{"type": "array", "items": map[string]any{"type": "string", "minLength": 2}, "minItems": 1},
					"rating":   map[string]any{"type": "integer", "minimum": 0},
					"theme":    map[string]any{"type": "string"},
					"category": map[string]any{"type": "string"},
				},
			},
		},
	},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func compiledShardSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value, not raw bytes.
		defBytes, err := json.Marshal(shardSchemaDef)
		if err != nil {
			compileErr = fmt.Errorf("marshal shard schema: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse shard schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://shard.json", defParsed); err != nil {
			compileErr = fmt.Errorf("add shard schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("schema://shard.json")
	})
	return compiledSchema, compileErr
}

// validateShard checks a raw shard document against the schema.
func validateShard(data []byte) error {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("invalid shard JSON: %w", err)
	}

	schema, err := compiledShardSchema()
	if err != nil {
		return err
	}

	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("shard schema validation failed: %w", err)
	}
	return nil
}
