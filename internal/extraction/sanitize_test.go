package extraction

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractFirstJSONObject(t *testing.T) {
	raw := []byte("Sure! Here is the extraction:\n```json\n{\"supplier_name\": \"Acme\"}\n```\nLet me know.")
	obj, err := ExtractFirstJSONObject(raw)
	require.NoError(t, err)
	assert.JSONEq(t, `{"supplier_name": "Acme"}`, string(obj))
}

func TestExtractFirstJSONObjectNested(t *testing.T) {
	raw := []byte(`prefix {"a": {"b": "}"}, "c": [1, 2]} suffix {"second": true}`)
	obj, err := ExtractFirstJSONObject(raw)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a": {"b": "}"}, "c": [1, 2]}`, string(obj))
}

func TestExtractFirstJSONObjectEscapedQuote(t *testing.T) {
	raw := []byte(`{"supplier_name": "Acme \"The Best\" Corp"}`)
	obj, err := ExtractFirstJSONObject(raw)
	require.NoError(t, err)
	assert.JSONEq(t, `{"supplier_name": "Acme \"The Best\" Corp"}`, string(obj))
}

func TestExtractFirstJSONObjectFailures(t *testing.T) {
	_, err := ExtractFirstJSONObject([]byte("no json here"))
	assert.Error(t, err)

	_, err = ExtractFirstJSONObject([]byte(`{"unterminated": true`))
	assert.Error(t, err)
}

func TestSanitizeRenamesSynonyms(t *testing.T) {
	raw := []byte(`{
		"vendor_name": "Acme Corp",
		"total": 119.0,
		"tax": 19.0,
		"subtotal": 100.0,
		"currency_code": "eur",
		"invoice_number": "INV-1",
		"invoice_date": "2024-01-15",
		"vat_id": "DE123456789",
		"confidence": 0.85
	}`)

	out, dropped, err := NormalizeAndSanitizeJSON(raw, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, dropped)

	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))
	assert.Equal(t, "Acme Corp", m["supplier_name"])
	assert.Equal(t, 119.0, m["total_amount"])
	assert.Equal(t, 19.0, m["tax_amount"])
	assert.Equal(t, 100.0, m["amount"])
	assert.Equal(t, "EUR", m["currency"], "currency is upcased")
	assert.Equal(t, "INV-1", m["document_number"])
	assert.Equal(t, "2024-01-15", m["issue_date"])
	assert.Equal(t, "DE123456789", m["supplier_tax_id"])
	assert.Equal(t, 0.85, m["confidence_score"])
	assert.NotContains(t, m, "vendor_name")
	assert.NotContains(t, m, "total")
}

func TestSanitizeRenameDoesNotClobberExisting(t *testing.T) {
	raw := []byte(`{"supplier_name": "Canonical Corp", "vendor_name": "Synonym Inc"}`)

	out, _, err := NormalizeAndSanitizeJSON(raw, nil)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))
	assert.Equal(t, "Canonical Corp", m["supplier_name"])
}

func TestSanitizeDropsNullsAndEmpties(t *testing.T) {
	raw := []byte(`{
		"supplier_name": "  ",
		"issue_date": null,
		"amount": null,
		"total_amount": "",
		"due_date": "2024-03-01"
	}`)

	out, dropped, err := NormalizeAndSanitizeJSON(raw, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, dropped)

	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))
	assert.NotContains(t, m, "supplier_name")
	assert.NotContains(t, m, "issue_date")
	assert.NotContains(t, m, "amount")
	assert.NotContains(t, m, "total_amount")
	assert.Equal(t, "2024-03-01", m["due_date"])
}

func TestSanitizeCoercesNumericStrings(t *testing.T) {
	raw := []byte(`{"total_amount": "1,234.56", "tax_amount": "abc"}`)

	out, _, err := NormalizeAndSanitizeJSON(raw, nil)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))
	assert.Equal(t, 1234.56, m["total_amount"])
	assert.NotContains(t, m, "tax_amount", "unparseable numbers are dropped, not zeroed")
}

func TestSanitizeRemovesUnknownKeys(t *testing.T) {
	raw := []byte(`{"supplier_name": "Acme", "reasoning": "the header says Acme", "page_count": 3}`)

	out, dropped, err := NormalizeAndSanitizeJSON(raw, nil)
	require.NoError(t, err)
	assert.Contains(t, dropped, "reasoning(unknown)")

	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))
	assert.Equal(t, map[string]any{"supplier_name": "Acme"}, m)
}

func TestSanitizeLineItems(t *testing.T) {
	raw := []byte(`{
		"line_items": [
			{"description": "Chair", "quantity": 2, "unit_price": 10, "total_price": 20},
			{"description": "   "},
			"not a row"
		]
	}`)

	out, _, err := NormalizeAndSanitizeJSON(raw, nil)
	require.NoError(t, err)

	var p struct {
		LineItems []LineItem `json:"line_items"`
	}
	require.NoError(t, json.Unmarshal(out, &p))
	require.Len(t, p.LineItems, 1)
	assert.Equal(t, "Chair", p.LineItems[0].Description)
	assert.Equal(t, 20.0, p.LineItems[0].TotalPrice)
}

func TestSanitizeBadCurrencyShapeDropped(t *testing.T) {
	raw := []byte(`{"currency": "euros"}`)

	out, dropped, err := NormalizeAndSanitizeJSON(raw, nil)
	require.NoError(t, err)
	assert.Contains(t, dropped, "currency(shape)")

	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))
	assert.NotContains(t, m, "currency")
}
