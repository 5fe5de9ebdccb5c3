package signals

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/procurehq/procurement-tracker/internal/entity"
	"github.com/procurehq/procurement-tracker/internal/extraction"
)

func contactedSupplier(rating float64) *entity.Supplier {
	email := "ap@acme.example"
	return &entity.Supplier{
		ContactEmail:      &email,
		PerformanceRating: rating,
	}
}

func TestRiskScoreLow(t *testing.T) {
	doc := entity.Document{
		TotalAmount: extraction.Num(500),
		Processed:   true,
	}
	rep := RiskScore(doc, contactedSupplier(4.0), 10000)

	assert.Equal(t, 0, rep.Score)
	assert.Equal(t, RiskLow, rep.Level)
	assert.Empty(t, rep.Indicators)
}

func TestRiskScoreIndicators(t *testing.T) {
	doc := entity.Document{
		TotalAmount: extraction.Num(20000), // high value: +20
		Processed:   false,                 // unprocessed: +20
	}
	sup := &entity.Supplier{
		PerformanceRating: 1.5,   // low rating: +25
		TotalSpend:        8000,  // 80% of tenant spend: +20
	}
	// no contact info: +15
	rep := RiskScore(doc, sup, 10000)

	assert.Equal(t, 100, rep.Score)
	assert.Equal(t, RiskHigh, rep.Level)
	assert.Len(t, rep.Indicators, 5)
}

func TestRiskScoreNoSupplier(t *testing.T) {
	doc := entity.Document{Processed: true, TotalAmount: extraction.Num(100)}
	rep := RiskScore(doc, nil, 0)

	assert.Equal(t, riskMissingContact, rep.Score)
	assert.Equal(t, RiskLow, rep.Level)
}

func TestRiskScoreConcentrationNeedsTenantSpend(t *testing.T) {
	doc := entity.Document{Processed: true}
	sup := contactedSupplier(4.0)
	sup.TotalSpend = 9000

	rep := RiskScore(doc, sup, 0)
	assert.Equal(t, 0, rep.Score, "unknown tenant spend never triggers concentration")

	rep = RiskScore(doc, sup, 10000)
	assert.Equal(t, riskConcentration, rep.Score)
}

func TestRiskScoreBoundaries(t *testing.T) {
	assert.Equal(t, RiskLow, riskLevel(39))
	assert.Equal(t, RiskMedium, riskLevel(40))
	assert.Equal(t, RiskMedium, riskLevel(69))
	assert.Equal(t, RiskHigh, riskLevel(70))
}

func TestRiskScoreHighValueThresholdIsExclusive(t *testing.T) {
	doc := entity.Document{
		TotalAmount: extraction.Num(10000),
		Processed:   true,
	}
	rep := RiskScore(doc, contactedSupplier(4.0), 0)
	assert.Equal(t, 0, rep.Score, "exactly 10000 is not high value")
}
