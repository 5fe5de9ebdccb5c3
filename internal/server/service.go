// Package server exposes the engine over gRPC: document processing, the
// supplier directory, exports and cache telemetry.
package server

import (
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	procurementpb "github.com/procurehq/procurement-tracker/gen/proto/procurement/v1"
	"github.com/procurehq/procurement-tracker/internal/cache"
	"github.com/procurehq/procurement-tracker/internal/common"
	"github.com/procurehq/procurement-tracker/internal/entity"
	"github.com/procurehq/procurement-tracker/internal/export"
	"github.com/procurehq/procurement-tracker/internal/extraction"
	"github.com/procurehq/procurement-tracker/internal/pipeline"
	"github.com/procurehq/procurement-tracker/internal/repository"
	"github.com/procurehq/procurement-tracker/internal/suppliers"
)

type ProcurementService struct {
	procurementpb.UnimplementedProcurementServiceServer
	processor *pipeline.Processor
	documents repository.DocumentRepository
	resolver  *suppliers.Resolver
	store     suppliers.Store
	exporter  *export.Service
	cache     cache.Store
	logger    *slog.Logger
}

func NewProcurementService(
	processor *pipeline.Processor,
	documents repository.DocumentRepository,
	resolver *suppliers.Resolver,
	store suppliers.Store,
	exporter *export.Service,
	cacheStore cache.Store,
	logger *slog.Logger,
) *ProcurementService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProcurementService{
		processor: processor,
		documents: documents,
		resolver:  resolver,
		store:     store,
		exporter:  exporter,
		cache:     cacheStore,
		logger:    logger,
	}
}

func parseUUIDField(raw, field string) (uuid.UUID, error) {
	trimmed := strings.TrimSpace(raw)
	v := common.NewValidator().Field(field, trimmed, common.Required, common.UUID)
	if err := common.ValidateAndReturnError(v); err != nil {
		return uuid.Nil, err
	}
	id, err := uuid.Parse(trimmed)
	if err != nil {
		return uuid.Nil, common.InvalidArgumentErrorf("%s must be a UUID", field)
	}
	return id, nil
}

func toPBFields(f extraction.CanonicalFields) *procurementpb.CanonicalFields {
	out := &procurementpb.CanonicalFields{
		SupplierName:    f.SupplierName,
		SupplierAddress: f.SupplierAddress,
		SupplierPhone:   f.SupplierPhone,
		SupplierEmail:   f.SupplierEmail,
		SupplierTaxId:   f.SupplierTaxID,
		Amount:          f.Amount,
		Currency:        f.Currency,
		TaxAmount:       f.TaxAmount,
		TotalAmount:     f.TotalAmount,
		IssueDate:       f.IssueDate,
		DueDate:         f.DueDate,
		DocumentNumber:  f.DocumentNumber,
		ConfidenceScore: f.ConfidenceScore,
	}
	for _, li := range f.LineItems {
		out.LineItems = append(out.LineItems, &procurementpb.LineItem{
			Description: li.Description,
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice,
			TotalPrice:  li.TotalPrice,
		})
	}
	return out
}

func toPBSupplier(s *entity.Supplier) *procurementpb.Supplier {
	if s == nil {
		return nil
	}
	return &procurementpb.Supplier{
		Id:                s.ID.String(),
		TenantId:          s.TenantID.String(),
		Name:              s.Name,
		NormalizedName:    s.NormalizedName,
		ContactEmail:      s.ContactEmail,
		ContactPhone:      s.ContactPhone,
		ContactAddress:    s.ContactAddress,
		TaxId:             s.TaxID,
		TotalSpend:        s.TotalSpend,
		PerformanceRating: s.PerformanceRating,
		Status:            string(s.Status),
		CreatedAt:         s.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt:         s.UpdatedAt.Format(time.RFC3339Nano),
	}
}
