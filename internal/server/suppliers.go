package server

import (
	"context"
	"strings"

	"github.com/procurehq/procurement-tracker/constants"
	procurementpb "github.com/procurehq/procurement-tracker/gen/proto/procurement/v1"
	"github.com/procurehq/procurement-tracker/internal/common"
	"github.com/procurehq/procurement-tracker/internal/suppliers"
)

func (s *ProcurementService) ResolveSupplier(ctx context.Context, req *procurementpb.ResolveSupplierRequest) (*procurementpb.ResolveSupplierResponse, error) {
	tenantID, err := parseUUIDField(req.GetTenantId(), "tenant_id")
	if err != nil {
		return nil, err
	}
	v := common.NewValidator().
		Field("name", req.GetName(), common.Required, common.MaxLength(255)).
		Field("amount", req.GetAmount(), common.NonNegative)
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}

	attr := &suppliers.Attribution{
		Amount:         req.GetAmount(),
		ContactEmail:   req.ContactEmail,
		ContactPhone:   req.ContactPhone,
		ContactAddress: req.ContactAddress,
		TaxID:          req.TaxId,
	}
	sup, created, err := s.resolver.Resolve(ctx, tenantID, req.GetName(), attr)
	if err != nil {
		s.logger.Error("supplier resolve failed", "tenant_id", tenantID, "name", req.GetName(), "error", err)
		return nil, common.ToStatusError(err)
	}

	return &procurementpb.ResolveSupplierResponse{
		Supplier: toPBSupplier(sup),
		Created:  created,
	}, nil
}

func (s *ProcurementService) SuggestSupplierMatches(ctx context.Context, req *procurementpb.SuggestSupplierMatchesRequest) (*procurementpb.SuggestSupplierMatchesResponse, error) {
	tenantID, err := parseUUIDField(req.GetTenantId(), "tenant_id")
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.GetName()) == "" {
		return nil, common.InvalidArgumentError("name is required")
	}

	docType, _ := constants.CanonicalizeDocumentType(req.GetDocumentType())
	matches, err := s.resolver.Suggest(ctx, tenantID, req.GetName(), suppliers.MatchContext{
		HasAmount:    req.GetHasAmount(),
		DocumentType: docType,
	})
	if err != nil {
		s.logger.Error("supplier suggest failed", "tenant_id", tenantID, "error", err)
		return nil, common.ToStatusError(err)
	}

	out := make([]*procurementpb.SupplierMatch, 0, len(matches))
	for i := range matches {
		out = append(out, &procurementpb.SupplierMatch{
			Supplier:   toPBSupplier(&matches[i].Supplier),
			Similarity: matches[i].Similarity,
			Confidence: matches[i].Confidence,
			Tier:       string(matches[i].Tier),
		})
	}
	return &procurementpb.SuggestSupplierMatchesResponse{Matches: out}, nil
}

func (s *ProcurementService) ListSuppliers(ctx context.Context, req *procurementpb.ListSuppliersRequest) (*procurementpb.ListSuppliersResponse, error) {
	tenantID, err := parseUUIDField(req.GetTenantId(), "tenant_id")
	if err != nil {
		return nil, err
	}

	rows, err := s.store.ListByTenant(ctx, tenantID)
	if err != nil {
		s.logger.Error("supplier list failed", "tenant_id", tenantID, "error", err)
		return nil, common.InternalError("supplier list failed")
	}

	out := make([]*procurementpb.Supplier, 0, len(rows))
	for i := range rows {
		out = append(out, toPBSupplier(&rows[i]))
	}
	return &procurementpb.ListSuppliersResponse{Suppliers: out}, nil
}
