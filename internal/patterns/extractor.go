// Package patterns derives canonical fields from raw document text using
// deterministic label/regex rules. The extractor is deliberately
// conservative: it never invents values and treats "no match" as "unknown",
// which is what makes it trustworthy as ground truth during reconciliation.
package patterns

import (
	"strconv"
	"strings"

	"github.com/procurehq/procurement-tracker/constants"
	"github.com/procurehq/procurement-tracker/internal/extraction"
)

const (
	// supplierSoftCap triggers truncation at a legal-entity-suffix boundary.
	supplierSoftCap = 100
	// supplierHardCap matches the storage column limit.
	supplierHardCap = 255
)

type Extractor struct {
	defaultCurrency string
}

type Option func(*Extractor)

// WithDefaultCurrency overrides the fallback currency used when no code is
// found in the text.
func WithDefaultCurrency(code string) Option {
	return func(e *Extractor) {
		if code != "" {
			e.defaultCurrency = strings.ToUpper(code)
		}
	}
}

func New(opts ...Option) *Extractor {
	e := &Extractor{defaultCurrency: constants.DefaultCurrency}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract never fails; fields it cannot derive stay absent.
func (e *Extractor) Extract(rawText string) extraction.CanonicalFields {
	var f extraction.CanonicalFields
	if strings.TrimSpace(rawText) == "" {
		return f
	}

	if name := extractSupplierName(rawText); name != "" {
		f.SupplierName = extraction.Str(name)
	}
	if addr := firstCapture(reAddress, rawText); addr != "" {
		f.SupplierAddress = extraction.Str(addr)
	}
	if email := reEmail.FindString(rawText); email != "" {
		f.SupplierEmail = extraction.Str(email)
	}
	if phone := firstCapture(rePhone, rawText); phone != "" {
		f.SupplierPhone = extraction.Str(strings.TrimSpace(phone))
	}
	if taxID := firstCapture(reTaxID, rawText); taxID != "" {
		f.SupplierTaxID = extraction.Str(strings.TrimSpace(taxID))
	}

	f.Amount = extractAmount(reNetAmount, rawText)
	f.TaxAmount = extractAmount(reTaxAmount, rawText)
	f.TotalAmount = extractAmount(reGrossAmount, rawText)

	if d := extractDate(reIssueDate, rawText); d != "" {
		f.IssueDate = extraction.Str(d)
	}
	if d := extractDate(reDueDate, rawText); d != "" {
		f.DueDate = extraction.Str(d)
	}

	if num := firstCapture(reDocNumber, rawText); num != "" && reHasDigit.MatchString(num) {
		f.DocumentNumber = extraction.Str(num)
	}

	f.Currency = extraction.Str(e.extractCurrency(rawText))
	f.LineItems = extractLineItems(rawText)

	return f
}

func firstCapture(re interface {
	FindStringSubmatch(string) []string
}, text string) string {
	m := re.FindStringSubmatch(text)
	if len(m) < 2 {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// extractSupplierName takes the remainder of the first labeled line, strips
// trailing address/tax-id/buyer fragments that bleed onto the same line, and
// truncates oversized captures at the last plausible legal-entity-suffix
// boundary, or failing that at the hard character cap.
func extractSupplierName(text string) string {
	name := firstCapture(reSupplier, text)
	if name == "" {
		return ""
	}

	name = reSupplierTrailing.ReplaceAllString(name, "")
	name = strings.Trim(name, " \t,;-")
	if name == "" {
		return ""
	}

	if len(name) > supplierSoftCap {
		if cut := truncateAtLegalSuffix(name); cut != "" {
			return cut
		}
	}
	if len(name) > supplierHardCap {
		name = strings.TrimSpace(name[:supplierHardCap])
	}
	return name
}

func truncateAtLegalSuffix(name string) string {
	lower := strings.ToLower(name)
	best := -1
	for _, suffix := range legalSuffixes {
		idx := strings.LastIndex(lower, strings.ToLower(suffix))
		if idx < 0 {
			continue
		}
		end := idx + len(suffix)
		if end > supplierHardCap {
			continue
		}
		if end > best {
			best = end
		}
	}
	if best < 0 {
		return ""
	}
	return strings.TrimSpace(name[:best])
}

func extractAmount(re interface {
	FindStringSubmatch(string) []string
}, text string) *float64 {
	m := re.FindStringSubmatch(text)
	if len(m) < 2 {
		return nil
	}
	return parseAmount(m[1])
}

// parseAmount handles both "1,234.56" and "1.234,56" conventions: the last
// separator is the decimal point when it is followed by at most two digits;
// everything else is grouping and gets stripped.
func parseAmount(s string) *float64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, " ", ""))
	if s == "" {
		return nil
	}

	lastDot := strings.LastIndexByte(s, '.')
	lastComma := strings.LastIndexByte(s, ',')
	sep := max(lastDot, lastComma)

	var normalized string
	if sep >= 0 && len(s)-sep-1 <= 2 && len(s)-sep-1 > 0 {
		intPart := strings.Map(digitsOnly, s[:sep])
		fracPart := s[sep+1:]
		normalized = intPart + "." + fracPart
	} else {
		normalized = strings.Map(digitsOnly, s)
	}
	if normalized == "" || normalized == "." {
		return nil
	}

	v, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return nil
	}
	return extraction.Num(v)
}

func digitsOnly(r rune) rune {
	if r >= '0' && r <= '9' {
		return r
	}
	return -1
}

// extractDate normalizes a labeled DD-MM-YYYY (also "." and "/" separators)
// or ISO YYYY-MM-DD match to YYYY-MM-DD. Out-of-range components leave the
// field absent; a malformed date is never emitted.
func extractDate(re interface {
	FindStringSubmatch(string) []string
}, text string) string {
	raw := firstCapture(re, text)
	if raw == "" {
		return ""
	}
	return normalizeDate(raw)
}

func normalizeDate(raw string) string {
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return r == '-' || r == '.' || r == '/'
	})
	if len(parts) != 3 {
		return ""
	}

	nums := make([]int, 3)
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return ""
		}
		nums[i] = v
	}

	var year, month, day int
	if len(parts[0]) == 4 {
		year, month, day = nums[0], nums[1], nums[2]
	} else {
		day, month, year = nums[0], nums[1], nums[2]
	}

	if day < 1 || day > 31 || month < 1 || month > 12 || year < 1900 || year > 2100 {
		return ""
	}
	return pad4(year) + "-" + pad2(month) + "-" + pad2(day)
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

func pad4(n int) string {
	s := strconv.Itoa(n)
	for len(s) < 4 {
		s = "0" + s
	}
	return s
}

// extractCurrency returns the first allow-listed 3-letter code found in the
// text, the code for the first known symbol otherwise, and the configured
// fallback when neither appears.
func (e *Extractor) extractCurrency(text string) string {
	for _, m := range reCurrencyCode.FindAllStringSubmatch(text, -1) {
		if constants.IsAllowedCurrency(m[1]) {
			return m[1]
		}
	}

	symbolIdx := -1
	symbolCode := ""
	for symbol, code := range constants.CurrencySymbols {
		if idx := strings.Index(text, symbol); idx >= 0 && (symbolIdx < 0 || idx < symbolIdx) {
			symbolIdx = idx
			symbolCode = code
		}
	}
	if symbolCode != "" {
		return symbolCode
	}
	return e.defaultCurrency
}

func extractLineItems(text string) []extraction.LineItem {
	matches := reLineItem.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	items := make([]extraction.LineItem, 0, len(matches))
	for _, m := range matches {
		qty := parseAmount(m[1])
		unit := parseAmount(m[3])
		if qty == nil || unit == nil {
			continue
		}
		items = append(items, extraction.LineItem{
			Description: strings.TrimSpace(m[2]),
			Quantity:    *qty,
			UnitPrice:   *unit,
			TotalPrice:  *qty * *unit,
		})
	}
	if len(items) == 0 {
		return nil
	}
	return items
}
