package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/procurehq/procurement-tracker/constants"
	"github.com/procurehq/procurement-tracker/gen/ent"
	"github.com/procurehq/procurement-tracker/gen/ent/supplier"
	"github.com/procurehq/procurement-tracker/internal/common"
	"github.com/procurehq/procurement-tracker/internal/entity"
	"github.com/procurehq/procurement-tracker/internal/suppliers"
)

// supplierRepository implements suppliers.Store on the ent client.
type supplierRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewSupplierRepository(client *ent.Client, logger *slog.Logger) suppliers.Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &supplierRepository{client: client, logger: logger}
}

func (r *supplierRepository) GetByNormalizedName(ctx context.Context, tenantID uuid.UUID, normalizedName string) (*entity.Supplier, error) {
	row, err := r.client.Supplier.Query().
		Where(
			supplier.TenantID(tenantID),
			supplier.NormalizedName(normalizedName),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		r.logger.Error("supplier lookup failed", "tenant_id", tenantID, "error", err)
		return nil, err
	}
	return toSupplier(row), nil
}

func (r *supplierRepository) Create(ctx context.Context, s *entity.Supplier) (*entity.Supplier, error) {
	builder := r.client.Supplier.Create().
		SetTenantID(s.TenantID).
		SetName(s.Name).
		SetNormalizedName(s.NormalizedName).
		SetTotalSpend(s.TotalSpend).
		SetPerformanceRating(s.PerformanceRating).
		SetStatus(supplier.Status(s.Status)).
		SetNillableContactEmail(s.ContactEmail).
		SetNillableContactPhone(s.ContactPhone).
		SetNillableContactAddress(s.ContactAddress).
		SetNillableTaxID(s.TaxID)

	row, err := builder.Save(ctx)
	if ent.IsConstraintError(err) {
		// the (tenant_id, normalized_name) unique index fired; the caller
		// re-reads the winning row
		return nil, common.ErrConflict
	}
	if err != nil {
		r.logger.Error("supplier create failed", "tenant_id", s.TenantID, "name", s.Name, "error", err)
		return nil, err
	}
	r.logger.Info("supplier created", "supplier_id", row.ID, "tenant_id", s.TenantID, "name", s.Name)
	return toSupplier(row), nil
}

// AddSpend increments at the SQL level (total_spend = total_spend + ?), so
// concurrent attributions cannot lose updates.
func (r *supplierRepository) AddSpend(ctx context.Context, id uuid.UUID, amount float64) error {
	err := r.client.Supplier.UpdateOneID(id).
		AddTotalSpend(amount).
		Exec(ctx)
	if err != nil {
		r.logger.Error("supplier spend update failed", "supplier_id", id, "amount", amount, "error", err)
	}
	return err
}

func (r *supplierRepository) BackfillContact(ctx context.Context, id uuid.UUID, attr suppliers.Attribution) error {
	row, err := r.client.Supplier.Get(ctx, id)
	if err != nil {
		return err
	}

	upd := r.client.Supplier.UpdateOneID(id)
	changed := false
	if row.ContactEmail == nil && attr.ContactEmail != nil {
		upd.SetContactEmail(*attr.ContactEmail)
		changed = true
	}
	if row.ContactPhone == nil && attr.ContactPhone != nil {
		upd.SetContactPhone(*attr.ContactPhone)
		changed = true
	}
	if row.ContactAddress == nil && attr.ContactAddress != nil {
		upd.SetContactAddress(*attr.ContactAddress)
		changed = true
	}
	if row.TaxID == nil && attr.TaxID != nil {
		upd.SetTaxID(*attr.TaxID)
		changed = true
	}
	if !changed {
		return nil
	}
	return upd.Exec(ctx)
}

func (r *supplierRepository) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]entity.Supplier, error) {
	rows, err := r.client.Supplier.Query().
		Where(supplier.TenantID(tenantID)).
		Order(supplier.ByName()).
		All(ctx)
	if err != nil {
		r.logger.Error("supplier list failed", "tenant_id", tenantID, "error", err)
		return nil, err
	}

	result := make([]entity.Supplier, len(rows))
	for i, row := range rows {
		result[i] = *toSupplier(row)
	}
	return result, nil
}

func toSupplier(row *ent.Supplier) *entity.Supplier {
	return &entity.Supplier{
		ID:                row.ID,
		TenantID:          row.TenantID,
		Name:              row.Name,
		NormalizedName:    row.NormalizedName,
		ContactEmail:      row.ContactEmail,
		ContactPhone:      row.ContactPhone,
		ContactAddress:    row.ContactAddress,
		TaxID:             row.TaxID,
		TotalSpend:        row.TotalSpend,
		PerformanceRating: row.PerformanceRating,
		Status:            constants.SupplierStatus(row.Status),
		CreatedAt:         row.CreatedAt,
		UpdatedAt:         row.UpdatedAt,
	}
}
