// Package signals derives lightweight heuristic scores (compliance, risk,
// workflow priority/urgency) from canonical document fields and supplier
// records for display in the dashboard.
package signals

import (
	"github.com/procurehq/procurement-tracker/constants"
	"github.com/procurehq/procurement-tracker/internal/entity"
)

type ComplianceLevel string

const (
	Compliant          ComplianceLevel = "compliant"           // score >= 90
	PartiallyCompliant ComplianceLevel = "partially_compliant" // score >= 70
	NonCompliant       ComplianceLevel = "non_compliant"
)

// ComplianceReport is the score plus the conditions that reduced it.
type ComplianceReport struct {
	Score  int             `json:"score"`
	Level  ComplianceLevel `json:"level"`
	Issues []string        `json:"issues,omitempty"`
}

// Deduction weights per missing/invalid required condition.
const (
	deductUncategorized = 10
	deductNoSupplier    = 15
	deductNoAmount      = 10
	deductUnprocessed   = 20
	deductNoDueDate     = 10
	deductNoIssueDate   = 5
)

// ComplianceScore starts at 100 and subtracts a fixed weight for each
// missing or invalid condition.
func ComplianceScore(doc entity.Document) ComplianceReport {
	score := 100
	var issues []string

	if doc.DocumentType == constants.OtherDocument {
		score -= deductUncategorized
		issues = append(issues, "document type is uncategorized")
	}
	if doc.SupplierName == nil && doc.SupplierID == nil {
		score -= deductNoSupplier
		issues = append(issues, "supplier is missing")
	}
	if !hasValidAmount(doc) {
		score -= deductNoAmount
		issues = append(issues, "amount is missing or invalid")
	}
	if !doc.Processed {
		score -= deductUnprocessed
		issues = append(issues, "document has not been processed")
	}

	// type-specific date requirements
	switch doc.DocumentType {
	case constants.Invoice, constants.PurchaseOrder:
		if doc.DueDate == nil {
			score -= deductNoDueDate
			issues = append(issues, "due date is missing")
		}
	case constants.Contract:
		if doc.IssueDate == nil {
			score -= deductNoIssueDate
			issues = append(issues, "issue date is missing")
		}
	}

	if score < 0 {
		score = 0
	}
	return ComplianceReport{
		Score:  score,
		Level:  complianceLevel(score),
		Issues: issues,
	}
}

func complianceLevel(score int) ComplianceLevel {
	switch {
	case score >= 90:
		return Compliant
	case score >= 70:
		return PartiallyCompliant
	default:
		return NonCompliant
	}
}

func hasValidAmount(doc entity.Document) bool {
	if doc.TotalAmount != nil && *doc.TotalAmount > 0 {
		return true
	}
	return doc.Amount != nil && *doc.Amount > 0
}
