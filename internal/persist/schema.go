package persist

import (
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaURL = "taskflow_tasks.schema.json"

const tasksSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "text", "completed", "createdAt"],
    "properties": {
      "id":        {"type": "string", "minLength": 1},
      "text":      {"type": "string", "minLength": 1, "maxLength": 200, "pattern": "\\S"},
      "completed": {"type": "boolean"},
      "createdAt": {"type": "string", "format": "date-time"}
    }
  }
}`

var tasksSchema = compileTasksSchema()

func compileTasksSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true
	if err := compiler.AddResource(schemaURL, strings.NewReader(tasksSchemaJSON)); err != nil {
		panic(err)
	}
	return compiler.MustCompile(schemaURL)
}

// schemaProblems flattens a validation error into "location: message" lines.
func schemaProblems(err error) []string {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return []string{err.Error()}
	}
	var out []string
	collectProblems(ve, &out)
	return out
}

func collectProblems(err *jsonschema.ValidationError, out *[]string) {
	if len(err.Causes) == 0 {
		loc := err.InstanceLocation
		if loc == "" {
			loc = "/"
		}
		*out = append(*out, loc+": "+err.Message)
		return
	}
	for _, cause := range err.Causes {
		collectProblems(cause, out)
	}
}
