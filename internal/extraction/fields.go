package extraction

// LineItem is one row of a document's itemization.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	TotalPrice  float64 `json:"total_price"`
}

// CanonicalFields is the field schema both extractors populate. Every field
// is optional; nil means "unknown", never an empty-string sentinel.
type CanonicalFields struct {
	SupplierName    *string    `json:"supplier_name,omitempty"`
	SupplierAddress *string    `json:"supplier_address,omitempty"`
	SupplierPhone   *string    `json:"supplier_phone,omitempty"`
	SupplierEmail   *string    `json:"supplier_email,omitempty"`
	SupplierTaxID   *string    `json:"supplier_tax_id,omitempty"`
	Amount          *float64   `json:"amount,omitempty"`
	Currency        *string    `json:"currency,omitempty"`
	TaxAmount       *float64   `json:"tax_amount,omitempty"`
	TotalAmount     *float64   `json:"total_amount,omitempty"`
	IssueDate       *string    `json:"issue_date,omitempty"` // YYYY-MM-DD
	DueDate         *string    `json:"due_date,omitempty"`   // YYYY-MM-DD
	DocumentNumber  *string    `json:"document_number,omitempty"`
	LineItems       []LineItem `json:"line_items,omitempty"`
	ConfidenceScore *float64   `json:"confidence_score,omitempty"` // 0..1
}

// scalarFieldCount is the number of scalar canonical fields, used when
// estimating coverage for the merged confidence score.
const scalarFieldCount = 12

// PopulatedFraction returns the share of scalar fields that carry a value.
func (f CanonicalFields) PopulatedFraction() float64 {
	n := 0
	if f.SupplierName != nil {
		n++
	}
	if f.SupplierAddress != nil {
		n++
	}
	if f.SupplierPhone != nil {
		n++
	}
	if f.SupplierEmail != nil {
		n++
	}
	if f.SupplierTaxID != nil {
		n++
	}
	if f.Amount != nil {
		n++
	}
	if f.Currency != nil {
		n++
	}
	if f.TaxAmount != nil {
		n++
	}
	if f.TotalAmount != nil {
		n++
	}
	if f.IssueDate != nil {
		n++
	}
	if f.DueDate != nil {
		n++
	}
	if f.DocumentNumber != nil {
		n++
	}
	return float64(n) / float64(scalarFieldCount)
}

// Str and Num are pointer helpers for building field values.
func Str(s string) *string { return &s }

func Num(f float64) *float64 { return &f }
