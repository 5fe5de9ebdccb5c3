package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/procurehq/procurement-tracker/internal/extraction"
)

func chatResponse(content string) string {
	b, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	})
	return string(b)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{APIKey: "test-key", BaseURL: srv.URL}, nil)
}

func TestExtractFieldsParsesWrappedJSON(t *testing.T) {
	content := "Here is the extraction:\n```json\n" + `{
		"vendor_name": "Acme Corp",
		"total": "1,620.00",
		"currency": "usd",
		"invoice_number": "INV-2024-001",
		"confidence": 0.9,
		"reasoning": "header says Acme"
	}` + "\n```"

	var gotAuth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, "/chat/completions", r.URL.Path)
		_, _ = w.Write([]byte(chatResponse(content)))
	})

	res, raw, err := c.ExtractFields(context.Background(), extraction.Request{
		NormalizedText: "Invoice INV-2024-001 from Acme Corp, total 1,620.00 USD",
		DocumentType:   "Invoice",
	})
	require.NoError(t, err)
	assert.Equal(t, "Bearer test-key", gotAuth)

	require.NotNil(t, res.Fields.SupplierName)
	assert.Equal(t, "Acme Corp", *res.Fields.SupplierName, "vendor_name synonym is renamed")
	require.NotNil(t, res.Fields.TotalAmount)
	assert.Equal(t, 1620.0, *res.Fields.TotalAmount, "numeric string is coerced")
	require.NotNil(t, res.Fields.Currency)
	assert.Equal(t, "USD", *res.Fields.Currency)
	assert.Equal(t, 0.9, res.ConfidenceScore)
	assert.Equal(t, "gpt-4o-mini", res.ModelUsed)

	// raw carries the sanitized object; the unknown key is gone
	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	assert.NotContains(t, m, "reasoning")
}

func TestExtractFieldsHTTPErrorSurfaced(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	})

	_, _, err := c.ExtractFields(context.Background(), extraction.Request{NormalizedText: "text"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestExtractFieldsNonJSONContent(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(chatResponse("I could not find any structured data in this document.")))
	})

	_, _, err := c.ExtractFields(context.Background(), extraction.Request{NormalizedText: "text"})
	assert.Error(t, err, "prose without JSON is an upstream failure for the fallback path")
}

func TestExtractFieldsNoChoices(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"choices": []}`))
	})

	_, _, err := c.ExtractFields(context.Background(), extraction.Request{NormalizedText: "text"})
	assert.Error(t, err)
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient(Config{APIKey: "k"}, nil)
	assert.Equal(t, "https://api.openai.com/v1", c.cfg.BaseURL)
	assert.Equal(t, "gpt-4o-mini", c.cfg.Model)
	assert.NotZero(t, c.cfg.Timeout)
}

func TestBuildUserPromptTruncates(t *testing.T) {
	long := make([]byte, 10000)
	for i := range long {
		long[i] = 'a'
	}
	p := buildUserPrompt(extraction.Request{NormalizedText: string(long)})
	assert.Less(t, len(p), 7000)
	assert.Contains(t, p, "(truncated)")
}
