package extraction

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"strconv"
	"strings"
)

// ExtractFirstJSONObject returns the first well-formed top-level JSON object
// embedded in free-form provider output (models wrap JSON in prose or code
// fences more often than not). Parse failure is an extraction failure for the
// caller to route to the fallback path, never a fatal error.
func ExtractFirstJSONObject(raw []byte) ([]byte, error) {
	s := string(raw)
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return nil, fmt.Errorf("no JSON object in provider output")
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				candidate := []byte(s[start : i+1])
				if !json.Valid(candidate) {
					return nil, fmt.Errorf("malformed JSON object in provider output")
				}
				return candidate, nil
			}
		}
	}
	return nil, fmt.Errorf("unterminated JSON object in provider output")
}

// NormalizeAndSanitizeJSON
// - Renames known synonyms (vendor_name -> supplier_name, total -> total_amount)
// - Drops nulls and empty strings (absence means unknown)
// - Coerces numeric strings -> numbers for money fields
// - Removes unknown keys (strict additionalProperties = false friendliness)
func NormalizeAndSanitizeJSON(raw []byte, logger *slog.Logger) ([]byte, []string, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, nil, fmt.Errorf("sanitize: decode: %w", err)
	}

	dropped := make([]string, 0, 8)
	renamed := func(from, to string) {
		if v, ok := m[from]; ok {
			// don't overwrite existing value if already present
			if _, exists := m[to]; !exists {
				m[to] = v
			}
			delete(m, from)
			dropped = append(dropped, from+"->"+to)
		}
	}

	// 1) rename synonyms to our schema
	renamed("vendor_name", "supplier_name")
	renamed("merchant_name", "supplier_name")
	renamed("company_name", "supplier_name")
	renamed("total", "total_amount")
	renamed("tax", "tax_amount")
	renamed("net_amount", "amount")
	renamed("subtotal", "amount")
	renamed("currency_code", "currency")
	renamed("invoice_number", "document_number")
	renamed("invoice_date", "issue_date")
	renamed("vat_id", "supplier_tax_id")
	renamed("confidence", "confidence_score")

	// 2) coerce money fields to numbers; drop null / "" values
	numberFields := []string{"amount", "tax_amount", "total_amount", "confidence_score"}
	for _, k := range numberFields {
		v, ok := m[k]
		if !ok {
			continue
		}
		switch t := v.(type) {
		case float64:
			// already a number
		case string:
			s := strings.ReplaceAll(strings.TrimSpace(t), ",", "")
			if s == "" || strings.EqualFold(s, "null") {
				delete(m, k)
				dropped = append(dropped, k+"(empty)")
				continue
			}
			if f, err := strconv.ParseFloat(s, 64); err == nil {
				m[k] = f
			} else {
				delete(m, k)
				dropped = append(dropped, k+"(unparseable)")
			}
		case nil:
			delete(m, k)
			dropped = append(dropped, k+"(null)")
		default:
			delete(m, k)
			dropped = append(dropped, k+"(type)")
		}
	}

	// 3) normalize currency casing
	if v, ok := m["currency"].(string); ok {
		c := strings.ToUpper(strings.TrimSpace(v))
		if len(c) == 3 {
			m["currency"] = c
		} else {
			delete(m, "currency")
			dropped = append(dropped, "currency(shape)")
		}
	}

	// 4) trim string fields; empty -> absent
	stringFields := []string{
		"supplier_name", "supplier_address", "supplier_phone", "supplier_email",
		"supplier_tax_id", "issue_date", "due_date", "document_number",
	}
	for _, k := range stringFields {
		v, ok := m[k]
		if !ok {
			continue
		}
		switch t := v.(type) {
		case string:
			s := strings.TrimSpace(t)
			if s == "" {
				delete(m, k)
				dropped = append(dropped, k+"(empty)")
			} else {
				m[k] = s
			}
		case nil:
			delete(m, k)
			dropped = append(dropped, k+"(null)")
		default:
			delete(m, k)
			dropped = append(dropped, k+"(type)")
		}
	}

	// 5) line_items: keep only well-shaped rows
	if v, ok := m["line_items"]; ok {
		rows, ok := v.([]any)
		if !ok {
			delete(m, "line_items")
			dropped = append(dropped, "line_items(type)")
		} else {
			cleaned := make([]any, 0, len(rows))
			for _, r := range rows {
				row, ok := r.(map[string]any)
				if !ok {
					continue
				}
				item := map[string]any{}
				if d, ok := row["description"].(string); ok && strings.TrimSpace(d) != "" {
					item["description"] = strings.TrimSpace(d)
				}
				for _, k := range []string{"quantity", "unit_price", "total_price"} {
					if f, ok := row[k].(float64); ok {
						item[k] = f
					}
				}
				if len(item) > 0 {
					cleaned = append(cleaned, item)
				}
			}
			if len(cleaned) > 0 {
				m["line_items"] = cleaned
			} else {
				delete(m, "line_items")
				dropped = append(dropped, "line_items(empty)")
			}
		}
	}

	// 6) remove unknown keys
	allowed := map[string]struct{}{
		"supplier_name": {}, "supplier_address": {}, "supplier_phone": {},
		"supplier_email": {}, "supplier_tax_id": {}, "amount": {}, "currency": {},
		"tax_amount": {}, "total_amount": {}, "issue_date": {}, "due_date": {},
		"document_number": {}, "line_items": {}, "confidence_score": {},
	}
	for k := range maps.Clone(m) {
		if _, ok := allowed[k]; !ok {
			delete(m, k)
			dropped = append(dropped, k+"(unknown)")
		}
	}

	out, err := json.Marshal(m)
	if err != nil {
		return nil, dropped, fmt.Errorf("sanitize: encode: %w", err)
	}
	if len(dropped) > 0 {
		logger.Warn("extraction.sanitize", "dropped", dropped)
	}
	return out, dropped, nil
}
