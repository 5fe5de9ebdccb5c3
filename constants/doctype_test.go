package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeDocumentType(t *testing.T) {
	cases := []struct {
		in    string
		want  DocumentType
		known bool
	}{
		{"Invoice", Invoice, true},
		{"invoice", Invoice, true},
		{"  Rechnung ", Invoice, true},
		{"bill", Invoice, true},
		{"Vertrag", Contract, true},
		{"agreement", Contract, true},
		{"purchase order", PurchaseOrder, true},
		{"PO", PurchaseOrder, true},
		{"Bestellung", PurchaseOrder, true},
		{"Angebot", Quote, true},
		{"quotation", Quote, true},
		{"Beleg", Receipt, true},
		{"Lieferschein", DeliveryNote, true},
		{"delivery note", DeliveryNote, true},
		{"other", OtherDocument, true},
		{"memo", OtherDocument, false},
		{"", OtherDocument, false},
	}
	for _, tc := range cases {
		got, known := CanonicalizeDocumentType(tc.in)
		assert.Equal(t, tc.want, got, tc.in)
		assert.Equal(t, tc.known, known, tc.in)
	}
}

func TestIsHighValueType(t *testing.T) {
	assert.True(t, IsHighValueType(Contract))
	assert.True(t, IsHighValueType(Invoice))
	assert.False(t, IsHighValueType(Receipt))
	assert.False(t, IsHighValueType(OtherDocument))
}
