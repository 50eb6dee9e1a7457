package report

import (
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
)

// SchemaID is the $id of the schema returned by [Schema].
const SchemaID = "https://go.jacobcolvin.com/rovo/report.schema.json"

// Schema returns the JSON Schema of the [Report] document written by the
// JSON and YAML formats.
func Schema() (*jsonschema.Schema, error) {
	s, err := jsonschema.For[Report](nil)
	if err != nil {
		return nil, fmt.Errorf("infer report schema: %w", err)
	}

	s.ID = SchemaID
	s.Title = "rovo report"
	s.Description = "Annotations and diagnostics found in rovo doc comments. Line numbers are 0-indexed."

	return s, nil
}
