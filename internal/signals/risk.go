package signals

import (
	"github.com/procurehq/procurement-tracker/internal/entity"
)

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"    // score < 40
	RiskMedium RiskLevel = "medium" // score < 70
	RiskHigh   RiskLevel = "high"
)

// RiskReport is the weighted indicator sum, capped at 100.
type RiskReport struct {
	Score      int       `json:"score"`
	Level      RiskLevel `json:"level"`
	Indicators []string  `json:"indicators,omitempty"`
}

// Indicator weights.
const (
	riskMissingContact = 15
	riskLowRating      = 25
	riskHighValue      = 20
	riskUnprocessed    = 20
	riskConcentration  = 20

	lowRatingThreshold = 2.0
	highValueThreshold = 10000.0
	// concentrationShare flags a supplier holding more than half the
	// tenant's attributed spend.
	concentrationShare = 0.5
)

// RiskScore sums the weighted risk indicators for a document and its
// resolved supplier. tenantSpend is the tenant's total attributed spend,
// used for the single-supplier concentration indicator; pass 0 when unknown.
func RiskScore(doc entity.Document, supplier *entity.Supplier, tenantSpend float64) RiskReport {
	score := 0
	var indicators []string

	if supplier != nil {
		if !supplier.HasContactInfo() {
			score += riskMissingContact
			indicators = append(indicators, "supplier contact info is missing")
		}
		if supplier.PerformanceRating < lowRatingThreshold {
			score += riskLowRating
			indicators = append(indicators, "supplier performance rating is low")
		}
		if tenantSpend > 0 && supplier.TotalSpend/tenantSpend > concentrationShare {
			score += riskConcentration
			indicators = append(indicators, "spend is concentrated on a single supplier")
		}
	} else {
		score += riskMissingContact
		indicators = append(indicators, "no supplier on record")
	}

	if amt := documentAmount(doc); amt > highValueThreshold {
		score += riskHighValue
		indicators = append(indicators, "high-value transaction")
	}
	if !doc.Processed {
		score += riskUnprocessed
		indicators = append(indicators, "document is in the unprocessed backlog")
	}

	if score > 100 {
		score = 100
	}
	return RiskReport{
		Score:      score,
		Level:      riskLevel(score),
		Indicators: indicators,
	}
}

func riskLevel(score int) RiskLevel {
	switch {
	case score < 40:
		return RiskLow
	case score < 70:
		return RiskMedium
	default:
		return RiskHigh
	}
}

func documentAmount(doc entity.Document) float64 {
	if doc.TotalAmount != nil {
		return *doc.TotalAmount
	}
	if doc.Amount != nil {
		return *doc.Amount
	}
	return 0
}
