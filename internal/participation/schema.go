package participation

import (
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// historySchema describes the persisted history file: decimal course
// ids mapping to records with a course name, group size, and session
// list. Content that doesn't match is treated as corrupt and the store
// loads as empty.
var historySchema = map[string]any{
	"type": "object",
	"additionalProperties": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"course_name": map[string]any{"type": "string"},
			"group_size":  map[string]any{"type": "integer"},
			"sessions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"date":       map[string]any{"type": "string"},
						"exercise":   map[string]any{"type": "string"},
						"was_called": map[string]any{"type": "boolean"},
					},
					"required": []any{"date", "exercise", "was_called"},
				},
			},
		},
		"required": []any{"course_name", "group_size", "sessions"},
	},
}

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// validateHistory checks a parsed history document against the schema.
// The schema compiles once per process.
func validateHistory(doc any) error {
	schemaOnce.Do(func() {
		c := jsonschema.NewCompiler()
		const url = "schema://participation-history.json"
		if err := c.AddResource(url, historySchema); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(url)
	})
	if schemaErr != nil {
		return schemaErr
	}
	return compiledSchema.Validate(doc)
}
