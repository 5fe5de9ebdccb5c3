package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/procurehq/procurement-tracker/constants"
)

// Document represents a procurement document for data transfer between
// layers. The extracted columns mirror the canonical field schema; nil means
// the field is unknown.
type Document struct {
	ID             uuid.UUID                `json:"id"`
	TenantID       uuid.UUID                `json:"tenant_id"`
	Title          string                   `json:"title"`
	DocumentType   constants.DocumentType   `json:"document_type"`
	Status         constants.DocumentStatus `json:"status"`
	SupplierID     *uuid.UUID               `json:"supplier_id,omitempty"`
	SupplierName   *string                  `json:"supplier_name,omitempty"`
	Amount         *float64                 `json:"amount,omitempty"`
	Currency       *string                  `json:"currency,omitempty"`
	TaxAmount      *float64                 `json:"tax_amount,omitempty"`
	TotalAmount    *float64                 `json:"total_amount,omitempty"`
	IssueDate      *string                  `json:"issue_date,omitempty"` // YYYY-MM-DD
	DueDate        *string                  `json:"due_date,omitempty"`   // YYYY-MM-DD
	DocumentNumber *string                  `json:"document_number,omitempty"`
	Processed      bool                     `json:"processed"`
	CreatedAt      time.Time                `json:"created_at"`
	UpdatedAt      time.Time                `json:"updated_at"`
}
