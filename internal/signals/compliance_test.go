package signals

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/procurehq/procurement-tracker/constants"
	"github.com/procurehq/procurement-tracker/internal/entity"
	"github.com/procurehq/procurement-tracker/internal/extraction"
)

func TestComplianceScorePerfectInvoice(t *testing.T) {
	supplierID := uuid.New()
	rep := ComplianceScore(entity.Document{
		DocumentType: constants.Invoice,
		SupplierID:   &supplierID,
		TotalAmount:  extraction.Num(1190),
		DueDate:      extraction.Str("2024-06-01"),
		Processed:    true,
	})

	assert.Equal(t, 100, rep.Score)
	assert.Equal(t, Compliant, rep.Level)
	assert.Empty(t, rep.Issues)
}

func TestComplianceScoreWorstCase(t *testing.T) {
	// uncategorized, no supplier, no amount, unprocessed:
	// 100 - 10 - 15 - 10 - 20 = 45
	rep := ComplianceScore(entity.Document{
		DocumentType: constants.OtherDocument,
	})

	assert.Equal(t, 45, rep.Score)
	assert.Equal(t, NonCompliant, rep.Level)
	assert.Len(t, rep.Issues, 4)
}

func TestComplianceScoreTypeSpecificDates(t *testing.T) {
	supplierID := uuid.New()
	base := entity.Document{
		SupplierID:  &supplierID,
		TotalAmount: extraction.Num(100),
		Processed:   true,
	}

	invoice := base
	invoice.DocumentType = constants.Invoice
	rep := ComplianceScore(invoice)
	assert.Equal(t, 90, rep.Score, "invoice without a due date loses 10")
	assert.Equal(t, Compliant, rep.Level)

	po := base
	po.DocumentType = constants.PurchaseOrder
	assert.Equal(t, 90, ComplianceScore(po).Score)

	contract := base
	contract.DocumentType = constants.Contract
	assert.Equal(t, 95, ComplianceScore(contract).Score, "contract without an issue date loses 5")

	receipt := base
	receipt.DocumentType = constants.Receipt
	assert.Equal(t, 100, ComplianceScore(receipt).Score, "no date requirement for receipts")
}

func TestComplianceScoreAmountValidity(t *testing.T) {
	supplierID := uuid.New()
	doc := entity.Document{
		DocumentType: constants.Receipt,
		SupplierID:   &supplierID,
		TotalAmount:  extraction.Num(0),
		Processed:    true,
	}
	rep := ComplianceScore(doc)
	assert.Equal(t, 90, rep.Score, "zero amount counts as missing")

	doc.Amount = extraction.Num(50)
	assert.Equal(t, 100, ComplianceScore(doc).Score, "net amount satisfies the requirement")
}

func TestComplianceScoreSupplierNameSuffices(t *testing.T) {
	doc := entity.Document{
		DocumentType: constants.Receipt,
		SupplierName: extraction.Str("Acme"),
		TotalAmount:  extraction.Num(10),
		Processed:    true,
	}
	assert.Equal(t, 100, ComplianceScore(doc).Score,
		"an extracted name counts even before the supplier link is saved")
}

func TestComplianceLevelBoundaries(t *testing.T) {
	assert.Equal(t, Compliant, complianceLevel(90))
	assert.Equal(t, PartiallyCompliant, complianceLevel(89))
	assert.Equal(t, PartiallyCompliant, complianceLevel(70))
	assert.Equal(t, NonCompliant, complianceLevel(69))
}
