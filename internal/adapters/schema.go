package adapters

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/billfold/invoice-ingest/constants"
)

// BuildCanonicalJSONSchema returns a JSON-Schema (draft 2020-12 subset)
// for the canonical output shape, as a generic map. Violations downgrade
// to validation warnings; they never block storage.
func BuildCanonicalJSONSchema() map[string]any {
	props := map[string]any{
		"invoice_type": map[string]any{
			"type": "string",
			"enum": constants.InvoiceTypesAsStrings(),
		},
		"invoiceType": map[string]any{"type": "string"},
		"field_items": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]any{
					"key":   map[string]any{"type": "string", "minLength": 1},
					"value": map[string]any{"type": "string"},
				},
				"required": []string{"key", "value"},
			},
		},
	}
	for _, key := range canonicalKeyOrder {
		prop := map[string]any{"type": "string"}
		switch key {
		case KeyAmountWithoutTax, KeyTaxAmount, KeyTotalAmount:
			prop["pattern"] = `^-?\d+(\.\d{1,2})?$`
		}
		props[key] = prop
		props[camelCase(key)] = map[string]any{"type": "string"}
	}
	return map[string]any{
		"type":       "object",
		"properties": props,
		"required":   []string{"invoice_type", "field_items"},
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
