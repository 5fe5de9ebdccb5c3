package extraction

// BuildDocumentJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map. We pass this to the provider as part of the contract and also
// use it locally to validate the response.
func BuildDocumentJSONSchema() map[string]any {
	props := map[string]any{
		"supplier_name":    map[string]any{"type": "string", "minLength": 1, "maxLength": 255},
		"supplier_address": map[string]any{"type": "string"},
		"supplier_phone":   map[string]any{"type": "string"},
		"supplier_email":   map[string]any{"type": "string"},
		"supplier_tax_id":  map[string]any{"type": "string"},
		"amount":           map[string]any{"type": "number"},
		"currency":         map[string]any{"type": "string", "minLength": 3, "maxLength": 3},
		"tax_amount":       map[string]any{"type": "number"},
		"total_amount":     map[string]any{"type": "number"},
		"issue_date":       dateProp(),
		"due_date":         dateProp(),
		"document_number":  map[string]any{"type": "string"},
		"line_items": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]any{
					"description": map[string]any{"type": "string"},
					"quantity":    map[string]any{"type": "number"},
					"unit_price":  map[string]any{"type": "number"},
					"total_price": map[string]any{"type": "number"},
				},
			},
		},
		"confidence_score": map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
	}

	// Every field is nullable by contract; required is therefore empty and
	// absence is handled by the sanitizer dropping nulls.
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             []string{},
	}
}

func dateProp() map[string]any {
	return map[string]any{
		"type":    "string",
		"pattern": `^\d{4}-\d{2}-\d{2}$`,
	}
}
