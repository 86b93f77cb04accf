package task

import (
	"encoding/json"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// blobSchema describes the persisted task list: a JSON array of task
// objects. It is advisory only; a blob that parses but fails the schema is
// still trusted, the check exists to warn about hand-edited files.
const blobSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "title", "date", "description", "completed"],
    "properties": {
      "id": {"type": "integer"},
      "title": {"type": "string", "minLength": 1},
      "date": {"type": "string", "pattern": "^\\d{4}-\\d{2}-\\d{2}$"},
      "description": {"type": "string", "minLength": 1},
      "completed": {"type": "boolean"}
    }
  }
}`

var compiledBlobSchema = mustCompileBlobSchema()

func mustCompileBlobSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true
	if err := compiler.AddResource("tasks.schema.json", strings.NewReader(blobSchema)); err != nil {
		panic(err)
	}
	return compiler.MustCompile("tasks.schema.json")
}

// CheckBlob validates raw persisted data against the task list schema.
// It returns a flat list of path-prefixed problems, or nil when the blob
// conforms (or is not valid JSON at all, which the caller detects when
// unmarshalling).
func CheckBlob(data []byte) []string {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil
	}

	err := compiledBlobSchema.Validate(doc)
	if err == nil {
		return nil
	}

	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return []string{err.Error()}
	}

	var problems []string
	collectLeaves(&problems, ve)
	return problems
}

func collectLeaves(problems *[]string, err *jsonschema.ValidationError) {
	if err == nil {
		return
	}
	if len(err.Causes) == 0 {
		loc := strings.TrimPrefix(err.InstanceLocation, "/")
		if loc == "" {
			*problems = append(*problems, err.Message)
		} else {
			*problems = append(*problems, fmt.Sprintf("%s: %s", loc, err.Message))
		}
		return
	}
	for _, cause := range err.Causes {
		collectLeaves(problems, cause)
	}
}
