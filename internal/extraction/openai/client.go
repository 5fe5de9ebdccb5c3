package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/procurehq/procurement-tracker/internal/extraction"
)

// ExtractFields implements extraction.FieldExtractor using text-only
// chat/completions. The response content is parsed defensively: the first
// well-formed JSON object is pulled out, sanitized, then validated against
// the canonical-fields schema. Any failure is an upstream error for the
// pipeline to catch and route to the deterministic fallback.
func (c *Client) ExtractFields(ctx context.Context, req extraction.Request) (extraction.Result, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("llm.extract.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"text_len", len(req.NormalizedText),
		"document_type", req.DocumentType,
		"template", req.PromptTemplateID,
	)

	schema := extraction.BuildDocumentJSONSchema()
	sys := buildSystemPrompt(req)
	user := buildUserPrompt(req)

	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": sys},
			{"role": "user", "content": user + "\n\nReturn ONLY JSON that matches the provided schema."},
			{"role": "system", "content": "JSON Schema:\n" + mustJSON(schema)},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, httpErr := c.post(ctx, endpoint, body)
	if httpErr != nil {
		c.log.Error("llm.extract.http_error",
			"req_id", rid, "error", httpErr,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return extraction.Result{}, nil, httpErr
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.log.Error("llm.extract.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return extraction.Result{}, raw, fmt.Errorf("decode openai response: %w", err)
	}
	if len(cc.Choices) == 0 {
		c.log.Error("llm.extract.no_choices",
			"req_id", rid, "raw", string(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return extraction.Result{}, raw, fmt.Errorf("no choices in openai response")
	}
	content := strings.TrimSpace(cc.Choices[0].Message.Content)

	obj, err := extraction.ExtractFirstJSONObject([]byte(content))
	if err != nil {
		c.log.Error("llm.extract.no_json_object",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return extraction.Result{}, []byte(content), err
	}

	cleaned, dropped, err := extraction.NormalizeAndSanitizeJSON(obj, c.log)
	if err != nil {
		c.log.Error("llm.extract.sanitize_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return extraction.Result{}, obj, fmt.Errorf("sanitize failed: %w", err)
	}
	if len(dropped) > 0 {
		c.log.Warn("llm.extract.sanitize_applied", "req_id", rid, "dropped", dropped)
	}

	if err := extraction.ValidateJSONAgainstSchema(schema, cleaned); err != nil {
		c.log.Error("llm.extract.schema_validation_failed",
			"req_id", rid, "error", err, "content", string(cleaned),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return extraction.Result{}, cleaned, fmt.Errorf("schema validation failed: %w", err)
	}

	var fields extraction.CanonicalFields
	if err := json.Unmarshal(cleaned, &fields); err != nil {
		c.log.Error("llm.extract.unmarshal_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return extraction.Result{}, cleaned, fmt.Errorf("unmarshal fields: %w", err)
	}

	elapsed := time.Since(start).Milliseconds()
	conf := 0.0
	if fields.ConfidenceScore != nil {
		conf = *fields.ConfidenceScore
	}
	out := extraction.Result{
		Fields:           fields,
		ProcessingTimeMS: elapsed,
		ModelUsed:        c.cfg.Model,
		ConfidenceScore:  conf,
	}

	c.log.Info("llm.extract.ok",
		"req_id", rid,
		"supplier", deref(fields.SupplierName),
		"total", fields.TotalAmount,
		"currency", deref(fields.Currency),
		"confidence", conf,
		"elapsed_ms", elapsed,
	)
	return out, cleaned, nil
}

func (c *Client) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openai http error: %w", err)
	}
	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			c.log.Warn("openai response body close error", "error", err)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("openai status %d: %s", resp.StatusCode, string(raw))
	}
	return raw, nil
}

func buildSystemPrompt(req extraction.Request) string {
	parts := []string{
		"You are a procurement document parser. Return ONLY JSON that matches the JSON Schema provided.",
		"Use ISO-8601 dates (YYYY-MM-DD).",
		"Currency must be a 3-letter ISO 4217 code.",
		"Numbers must be numbers, never strings.",
		"Use null for any field not present in the document; never invent values.",
		"supplier_name is the party issuing the document, not the buyer.",
		"amount is the net amount, tax_amount the tax, total_amount the gross amount.",
		"line_items rows carry description, quantity, unit_price and total_price.",
	}
	if dt := strings.TrimSpace(req.DocumentType); dt != "" {
		parts = append(parts, "The document type is: "+dt+".")
	}
	return strings.Join(parts, " ")
}

func buildUserPrompt(req extraction.Request) string {
	const maxChars = 6000

	var b strings.Builder
	b.WriteString("Document text")
	if len(req.NormalizedText) > maxChars {
		b.WriteString(" (first ~6k chars)")
	}
	b.WriteString(":\n")
	if len(req.NormalizedText) > maxChars {
		b.WriteString(req.NormalizedText[:maxChars])
		b.WriteString("\n…(truncated)")
	} else {
		b.WriteString(req.NormalizedText)
	}
	return b.String()
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
