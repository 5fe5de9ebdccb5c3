package server

import (
	"context"

	procurementpb "github.com/procurehq/procurement-tracker/gen/proto/procurement/v1"
	"github.com/procurehq/procurement-tracker/internal/common"
)

func (s *ProcurementService) ExportSuppliers(ctx context.Context, req *procurementpb.ExportSuppliersRequest) (*procurementpb.ExportSuppliersResponse, error) {
	tenantID, err := parseUUIDField(req.GetTenantId(), "tenant_id")
	if err != nil {
		return nil, err
	}

	xlsx, err := s.exporter.ExportSuppliersXLSX(ctx, tenantID)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "tenant_id", tenantID, "error", err)
		return nil, common.InternalError("export failed")
	}
	return &procurementpb.ExportSuppliersResponse{Xlsx: xlsx}, nil
}
