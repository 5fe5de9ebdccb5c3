package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/procurehq/procurement-tracker/internal/extraction"
)

func TestReconcilePatternOverridesDifferingAI(t *testing.T) {
	ai := extraction.CanonicalFields{
		SupplierName: extraction.Str("Foo Inc"),
		Amount:       extraction.Num(1200),
	}
	pattern := extraction.CanonicalFields{
		SupplierName: extraction.Str("Bar LLC"),
		Amount:       extraction.Num(1200),
	}

	merged, corrections := Reconcile(ai, pattern)

	require.NotNil(t, merged.SupplierName)
	assert.Equal(t, "Bar LLC", *merged.SupplierName)
	assert.Equal(t, []string{"supplier_name"}, corrections,
		"only genuinely overridden fields are recorded")
	require.NotNil(t, merged.Amount)
	assert.Equal(t, 1200.0, *merged.Amount)
}

func TestReconcileAbsentPatternKeepsAI(t *testing.T) {
	ai := extraction.CanonicalFields{
		SupplierName: extraction.Str("Foo Inc"),
		Amount:       extraction.Num(1500),
		IssueDate:    extraction.Str("2024-02-01"),
	}

	merged, corrections := Reconcile(ai, extraction.CanonicalFields{})

	require.NotNil(t, merged.Amount)
	assert.Equal(t, 1500.0, *merged.Amount)
	require.NotNil(t, merged.IssueDate)
	assert.Equal(t, "2024-02-01", *merged.IssueDate)
	assert.Empty(t, corrections)
}

func TestReconcilePatternFillsMissingAIWithoutCorrection(t *testing.T) {
	pattern := extraction.CanonicalFields{
		DocumentNumber: extraction.Str("INV-7"),
		TotalAmount:    extraction.Num(820),
	}

	merged, corrections := Reconcile(extraction.CanonicalFields{}, pattern)

	require.NotNil(t, merged.DocumentNumber)
	assert.Equal(t, "INV-7", *merged.DocumentNumber)
	require.NotNil(t, merged.TotalAmount)
	assert.Equal(t, 820.0, *merged.TotalAmount)
	assert.Empty(t, corrections, "filling a gap is not a correction")
}

func TestReconcileLineItemsAdoptedWhenAIEmpty(t *testing.T) {
	pattern := extraction.CanonicalFields{
		LineItems: []extraction.LineItem{{Description: "Chair", Quantity: 2, UnitPrice: 10, TotalPrice: 20}},
	}
	merged, _ := Reconcile(extraction.CanonicalFields{}, pattern)
	assert.Len(t, merged.LineItems, 1)

	ai := extraction.CanonicalFields{
		LineItems: []extraction.LineItem{{Description: "Desk", Quantity: 1, UnitPrice: 99, TotalPrice: 99}},
	}
	merged, _ = Reconcile(ai, pattern)
	require.Len(t, merged.LineItems, 1)
	assert.Equal(t, "Desk", merged.LineItems[0].Description, "AI line items win when present")
}

func TestReconcileMultipleCorrections(t *testing.T) {
	ai := extraction.CanonicalFields{
		SupplierName: extraction.Str("Acme"),
		Currency:     extraction.Str("USD"),
		TotalAmount:  extraction.Num(100),
	}
	pattern := extraction.CanonicalFields{
		SupplierName: extraction.Str("Acme GmbH"),
		Currency:     extraction.Str("EUR"),
		TotalAmount:  extraction.Num(119),
	}

	_, corrections := Reconcile(ai, pattern)
	assert.ElementsMatch(t, []string{"supplier_name", "currency", "total_amount"}, corrections)
}

func TestConfidenceTriadBonus(t *testing.T) {
	complete := extraction.CanonicalFields{
		SupplierName: extraction.Str("Acme"),
		TotalAmount:  extraction.Num(100),
		Currency:     extraction.Str("EUR"),
	}
	incomplete := extraction.CanonicalFields{
		SupplierName: extraction.Str("Acme"),
	}

	// same base, 3/12 vs 1/12 coverage, +0.1 vs -0.1
	withTriad := Confidence(nil, complete)
	withoutTriad := Confidence(nil, incomplete)
	assert.InDelta(t, 0.6*0.5+0.4*(3.0/12.0)+0.1, withTriad, 1e-9)
	assert.InDelta(t, 0.6*0.5+0.4*(1.0/12.0)-0.1, withoutTriad, 1e-9)
	assert.Greater(t, withTriad, withoutTriad)
}

func TestConfidenceUsesReportedAIScore(t *testing.T) {
	fields := extraction.CanonicalFields{
		SupplierName: extraction.Str("Acme"),
		Amount:       extraction.Num(50),
		Currency:     extraction.Str("USD"),
	}
	high := Confidence(extraction.Num(0.9), fields)
	low := Confidence(extraction.Num(0.1), fields)
	assert.Greater(t, high, low)
}

func TestConfidenceClamped(t *testing.T) {
	full := extraction.CanonicalFields{
		SupplierName:    extraction.Str("Acme"),
		SupplierAddress: extraction.Str("a"),
		SupplierPhone:   extraction.Str("p"),
		SupplierEmail:   extraction.Str("e"),
		SupplierTaxID:   extraction.Str("t"),
		Amount:          extraction.Num(1),
		Currency:        extraction.Str("EUR"),
		TaxAmount:       extraction.Num(1),
		TotalAmount:     extraction.Num(2),
		IssueDate:       extraction.Str("2024-01-01"),
		DueDate:         extraction.Str("2024-02-01"),
		DocumentNumber:  extraction.Str("N-1"),
	}
	assert.Equal(t, 1.0, Confidence(extraction.Num(1.0), full))

	empty := extraction.CanonicalFields{}
	assert.GreaterOrEqual(t, Confidence(extraction.Num(0.0), empty), 0.0)
}
