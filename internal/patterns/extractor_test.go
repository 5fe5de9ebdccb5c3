package patterns

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractEnglishInvoice(t *testing.T) {
	text := `Supplier: Acme Corp Ltd.
Invoice No: INV-2024-001
Invoice Date: 05-03-2024
Due Date: 04/04/2024
Subtotal: 1,500.00 USD
Tax: 120.00 USD
Total: 1,620.00 USD`

	f := New().Extract(text)

	require.NotNil(t, f.SupplierName)
	assert.Equal(t, "Acme Corp Ltd.", *f.SupplierName)

	require.NotNil(t, f.DocumentNumber)
	assert.Equal(t, "INV-2024-001", *f.DocumentNumber)

	require.NotNil(t, f.IssueDate)
	assert.Equal(t, "2024-03-05", *f.IssueDate, "DD-MM-YYYY normalizes to ISO")
	require.NotNil(t, f.DueDate)
	assert.Equal(t, "2024-04-04", *f.DueDate)

	require.NotNil(t, f.Amount)
	assert.Equal(t, 1500.00, *f.Amount)
	require.NotNil(t, f.TaxAmount)
	assert.Equal(t, 120.00, *f.TaxAmount)
	require.NotNil(t, f.TotalAmount)
	assert.Equal(t, 1620.00, *f.TotalAmount)

	require.NotNil(t, f.Currency)
	assert.Equal(t, "USD", *f.Currency)
}

func TestExtractGermanInvoice(t *testing.T) {
	text := `Lieferant: Müller GmbH
Rechnungsnummer: RE-2024-17
Rechnungsdatum: 03.05.2024
Fälligkeitsdatum: 02.06.2024
Netto: 1.000,00 EUR
MwSt.: 190,00 EUR
Brutto: 1.190,00 EUR`

	f := New().Extract(text)

	require.NotNil(t, f.SupplierName)
	assert.Equal(t, "Müller GmbH", *f.SupplierName)

	require.NotNil(t, f.DocumentNumber)
	assert.Equal(t, "RE-2024-17", *f.DocumentNumber)

	require.NotNil(t, f.IssueDate)
	assert.Equal(t, "2024-05-03", *f.IssueDate)
	require.NotNil(t, f.DueDate)
	assert.Equal(t, "2024-06-02", *f.DueDate)

	require.NotNil(t, f.Amount)
	assert.Equal(t, 1000.00, *f.Amount, "1.234,56 convention")
	require.NotNil(t, f.TaxAmount)
	assert.Equal(t, 190.00, *f.TaxAmount)
	require.NotNil(t, f.TotalAmount)
	assert.Equal(t, 1190.00, *f.TotalAmount)

	require.NotNil(t, f.Currency)
	assert.Equal(t, "EUR", *f.Currency)
}

func TestExtractSupplierStripsTrailingFragments(t *testing.T) {
	text := "Supplier: Acme Corp, Tax ID: DE123456789"

	f := New().Extract(text)

	require.NotNil(t, f.SupplierName)
	assert.Equal(t, "Acme Corp", *f.SupplierName)
	require.NotNil(t, f.SupplierTaxID)
	assert.Equal(t, "DE123456789", *f.SupplierTaxID)
}

func TestExtractSupplierTruncation(t *testing.T) {
	long := strings.Repeat("A", 96) + " GmbH plus additional department information"
	f := New().Extract("Supplier: " + long)

	require.NotNil(t, f.SupplierName)
	assert.Equal(t, strings.Repeat("A", 96)+" GmbH", *f.SupplierName,
		"oversized captures cut at the last legal-entity suffix")

	noSuffix := strings.Repeat("X", 300)
	f = New().Extract("Supplier: " + noSuffix)
	require.NotNil(t, f.SupplierName)
	assert.LessOrEqual(t, len(*f.SupplierName), 255)
}

func TestExtractAbsentFieldsStayNil(t *testing.T) {
	f := New().Extract("just some free text without any labels")

	assert.Nil(t, f.SupplierName)
	assert.Nil(t, f.Amount)
	assert.Nil(t, f.TaxAmount)
	assert.Nil(t, f.TotalAmount)
	assert.Nil(t, f.IssueDate)
	assert.Nil(t, f.DueDate)
	assert.Nil(t, f.DocumentNumber)
	assert.Nil(t, f.LineItems)

	// currency always falls back
	require.NotNil(t, f.Currency)
	assert.Equal(t, "USD", *f.Currency)
}

func TestExtractEmptyText(t *testing.T) {
	f := New().Extract("   \n\t ")
	assert.Nil(t, f.Currency, "blank input yields a zero value, not defaults")
}

func TestExtractInvalidDateLeftAbsent(t *testing.T) {
	f := New().Extract("Invoice Date: 32-13-2024")
	assert.Nil(t, f.IssueDate, "out-of-range components are never emitted")

	f = New().Extract("Invoice Date: 15-06-1850")
	assert.Nil(t, f.IssueDate, "year outside [1900,2100]")
}

func TestExtractAmountSeparatorConventions(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"Total: 1,234.56", 1234.56},
		{"Total: 1.234,56", 1234.56},
		{"Total: 1 234,56 EUR", 1234.56},
		{"Total: 1.234.567", 1234567},
		{"Total: 99", 99},
		{"Total: €49.90", 49.90},
	}
	for _, tc := range cases {
		f := New().Extract(tc.in)
		require.NotNil(t, f.TotalAmount, tc.in)
		assert.Equal(t, tc.want, *f.TotalAmount, tc.in)
	}
}

func TestExtractCurrencyPrecedence(t *testing.T) {
	// explicit code wins
	f := New().Extract("Total: 100.00 GBP")
	require.NotNil(t, f.Currency)
	assert.Equal(t, "GBP", *f.Currency)

	// symbol when no code is present
	f = New().Extract("Total: €100.00")
	require.NotNil(t, f.Currency)
	assert.Equal(t, "EUR", *f.Currency)

	// configured fallback
	f = New(WithDefaultCurrency("eur")).Extract("Total: 100.00")
	require.NotNil(t, f.Currency)
	assert.Equal(t, "EUR", *f.Currency)
}

func TestExtractLineItems(t *testing.T) {
	text := `Invoice INV-9
2 x Office Chair 120.00 EUR
10 Cable Set 4.50 EUR
Total: 285.00 EUR`

	f := New().Extract(text)
	require.Len(t, f.LineItems, 2)

	assert.Equal(t, "Office Chair", f.LineItems[0].Description)
	assert.Equal(t, 2.0, f.LineItems[0].Quantity)
	assert.Equal(t, 120.0, f.LineItems[0].UnitPrice)
	assert.Equal(t, 240.0, f.LineItems[0].TotalPrice, "total is derived, not read")

	assert.Equal(t, "Cable Set", f.LineItems[1].Description)
	assert.Equal(t, 45.0, f.LineItems[1].TotalPrice)
}

func TestExtractContactDetails(t *testing.T) {
	text := `Supplier: Acme Corp
Address: 12 Harbor Street, 20095 Hamburg
Phone: +49 40 123456
billing@acme.example`

	f := New().Extract(text)

	require.NotNil(t, f.SupplierAddress)
	assert.Equal(t, "12 Harbor Street, 20095 Hamburg", *f.SupplierAddress)
	require.NotNil(t, f.SupplierPhone)
	assert.Equal(t, "+49 40 123456", *f.SupplierPhone)
	require.NotNil(t, f.SupplierEmail)
	assert.Equal(t, "billing@acme.example", *f.SupplierEmail)
}

func TestNormalizeDate(t *testing.T) {
	assert.Equal(t, "2024-03-05", normalizeDate("05-03-2024"))
	assert.Equal(t, "2024-03-05", normalizeDate("2024-03-05"))
	assert.Equal(t, "2024-03-05", normalizeDate("05.03.2024"))
	assert.Equal(t, "2024-03-05", normalizeDate("05/03/2024"))
	assert.Equal(t, "", normalizeDate("32-01-2024"))
	assert.Equal(t, "", normalizeDate("01-13-2024"))
	assert.Equal(t, "", normalizeDate("01-01-2200"))
	assert.Equal(t, "", normalizeDate("not-a-date"))
}
