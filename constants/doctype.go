package constants

import (
	"strings"
)

type DocumentType string

const (
	Invoice       DocumentType = "Invoice"
	Contract      DocumentType = "Contract"
	PurchaseOrder DocumentType = "PurchaseOrder"
	Quote         DocumentType = "Quote"
	Receipt       DocumentType = "Receipt"
	DeliveryNote  DocumentType = "DeliveryNote"
	OtherDocument DocumentType = "Other"
)

var allDocumentTypes = []DocumentType{
	Invoice,
	Contract,
	PurchaseOrder,
	Quote,
	Receipt,
	DeliveryNote,
	OtherDocument,
}

func DocumentTypes() []string {
	result := make([]string, len(allDocumentTypes))
	for i, dt := range allDocumentTypes {
		result[i] = string(dt)
	}
	return result
}

// CanonicalizeDocumentType maps a free-form label onto the fixed taxonomy.
// Unknown labels resolve to Other with ok=false.
func CanonicalizeDocumentType(input string) (DocumentType, bool) {
	if input == "" {
		return OtherDocument, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	synonyms := map[string]DocumentType{
		"rechnung":       Invoice,
		"bill":           Invoice,
		"vertrag":        Contract,
		"agreement":      Contract,
		"po":             PurchaseOrder,
		"purchase order": PurchaseOrder,
		"bestellung":     PurchaseOrder,
		"angebot":        Quote,
		"quotation":      Quote,
		"offer":          Quote,
		"beleg":          Receipt,
		"lieferschein":   DeliveryNote,
		"delivery note":  DeliveryNote,
	}

	if dt, ok := synonyms[normalized]; ok {
		return dt, true
	}

	for _, dt := range allDocumentTypes {
		if normalized == strings.ToLower(string(dt)) {
			return dt, true
		}
	}

	return OtherDocument, false
}

// HighValueTypes are the types whose extracted amount carries a confidence
// bonus during supplier matching.
func IsHighValueType(dt DocumentType) bool {
	return dt == Contract || dt == Invoice
}
