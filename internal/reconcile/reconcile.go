// Package reconcile merges an AI-provided extraction with the deterministic
// pattern extraction into one canonical record. A regex match is directly
// traceable to literal source text, so the pattern value wins whenever both
// extractors disagree.
package reconcile

import (
	"math"

	"github.com/procurehq/procurement-tracker/internal/extraction"
)

// defaultAIConfidence stands in when the provider reported no confidence.
const defaultAIConfidence = 0.5

// Reconcile merges ai and pattern fields per the precedence rule: a present
// pattern value overrides a differing AI value and records the field name in
// corrections; an absent pattern value leaves the AI value unchanged.
func Reconcile(ai, pattern extraction.CanonicalFields) (extraction.CanonicalFields, []string) {
	merged := ai
	var corrections []string

	correctStr := func(field string, dst **string, pat *string) {
		if pat == nil {
			return
		}
		if *dst == nil || **dst != *pat {
			if *dst != nil {
				corrections = append(corrections, field)
			}
			*dst = pat
		}
	}
	correctNum := func(field string, dst **float64, pat *float64) {
		if pat == nil {
			return
		}
		if *dst == nil || **dst != *pat {
			if *dst != nil {
				corrections = append(corrections, field)
			}
			*dst = pat
		}
	}

	correctStr("supplier_name", &merged.SupplierName, pattern.SupplierName)
	correctStr("supplier_address", &merged.SupplierAddress, pattern.SupplierAddress)
	correctStr("supplier_phone", &merged.SupplierPhone, pattern.SupplierPhone)
	correctStr("supplier_email", &merged.SupplierEmail, pattern.SupplierEmail)
	correctStr("supplier_tax_id", &merged.SupplierTaxID, pattern.SupplierTaxID)
	correctNum("amount", &merged.Amount, pattern.Amount)
	correctStr("currency", &merged.Currency, pattern.Currency)
	correctNum("tax_amount", &merged.TaxAmount, pattern.TaxAmount)
	correctNum("total_amount", &merged.TotalAmount, pattern.TotalAmount)
	correctStr("issue_date", &merged.IssueDate, pattern.IssueDate)
	correctStr("due_date", &merged.DueDate, pattern.DueDate)
	correctStr("document_number", &merged.DocumentNumber, pattern.DocumentNumber)

	if len(merged.LineItems) == 0 && len(pattern.LineItems) > 0 {
		merged.LineItems = pattern.LineItems
	}

	return merged, corrections
}

// Confidence estimates the trust in the merged record: the AI-reported
// confidence (defaulted when absent) blended with field coverage, plus a
// bonus when the identifying triad (supplier_name, amount, currency) is
// complete and a penalty when it is not, clamped to [0,1].
func Confidence(aiConfidence *float64, merged extraction.CanonicalFields) float64 {
	base := defaultAIConfidence
	if aiConfidence != nil {
		base = *aiConfidence
	}

	score := 0.6*base + 0.4*merged.PopulatedFraction()

	hasAmount := merged.Amount != nil || merged.TotalAmount != nil
	if merged.SupplierName != nil && hasAmount && merged.Currency != nil {
		score += 0.1
	} else {
		score -= 0.1
	}

	return math.Min(1, math.Max(0, score))
}
