package extract

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/cardkeep/cardkeep/constants"
)

// BuildContactJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map. The pipeline validates assembled records against it before
// anything is persisted; a schema violation means a matcher regressed.
func BuildContactJSONSchema() map[string]any {
	props := map[string]any{}
	for _, name := range constants.FieldKindStrings() {
		props[name] = map[string]any{"type": "string"}
	}
	props["raw_text"] = map[string]any{"type": "string"}

	// format constraints only apply when the slot is populated
	props["business_email"] = map[string]any{
		"type":    "string",
		"pattern": `^$|^[^@\s]+@[^@\s]+\.[A-Za-z]{2,}$`,
	}
	props["contact_number"] = map[string]any{
		"type":    "string",
		"pattern": `^$|^\+?[0-9]{7,15}$`,
	}
	props["business_url"] = map[string]any{
		"type":    "string",
		"pattern": `^$|^www\.`,
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             constants.FieldKindStrings(),
	}
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
