// Package schema validates converted files against the import contract:
// a JSON array where each element carries exactly one identifier field, a
// media type, and optional watch/rating metadata.
package schema

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed import_schema.json
var importSchema string

var compiled = jsonschema.MustCompileString("import_schema.json", importSchema)

// Validate checks serialized import-file content against the schema.
func Validate(data []byte) error {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	return ValidateValue(doc)
}

// ValidateValue checks an already-decoded import document.
func ValidateValue(doc any) error {
	if err := compiled.Validate(doc); err != nil {
		return fmt.Errorf("import schema violation: %w", err)
	}
	return nil
}
