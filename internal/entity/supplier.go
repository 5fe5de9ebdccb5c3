package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/procurehq/procurement-tracker/constants"
)

// Supplier represents a canonical supplier record for data transfer between
// layers. At most one row exists per (tenant_id, normalized_name); TotalSpend
// only grows as documents are attributed, barring explicit corrections.
type Supplier struct {
	ID                uuid.UUID                `json:"id"`
	TenantID          uuid.UUID                `json:"tenant_id"`
	Name              string                   `json:"name"`
	NormalizedName    string                   `json:"normalized_name"`
	ContactEmail      *string                  `json:"contact_email,omitempty"`
	ContactPhone      *string                  `json:"contact_phone,omitempty"`
	ContactAddress    *string                  `json:"contact_address,omitempty"`
	TaxID             *string                  `json:"tax_id,omitempty"`
	TotalSpend        float64                  `json:"total_spend"`
	PerformanceRating float64                  `json:"performance_rating"` // 0..5
	Status            constants.SupplierStatus `json:"status"`
	CreatedAt         time.Time                `json:"created_at"`
	UpdatedAt         time.Time                `json:"updated_at"`
}

// HasContactInfo reports whether any contact field is populated.
func (s Supplier) HasContactInfo() bool {
	return s.ContactEmail != nil || s.ContactPhone != nil || s.ContactAddress != nil
}
