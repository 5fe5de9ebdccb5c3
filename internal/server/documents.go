package server

import (
	"context"
	"strings"
	"time"

	"github.com/procurehq/procurement-tracker/constants"
	procurementpb "github.com/procurehq/procurement-tracker/gen/proto/procurement/v1"
	"github.com/procurehq/procurement-tracker/internal/common"
	"github.com/procurehq/procurement-tracker/internal/entity"
	"github.com/procurehq/procurement-tracker/internal/extraction"
	"github.com/procurehq/procurement-tracker/internal/pipeline"
	"github.com/procurehq/procurement-tracker/internal/repository"
	"github.com/procurehq/procurement-tracker/internal/signals"
)

func (s *ProcurementService) ProcessDocument(ctx context.Context, req *procurementpb.ProcessDocumentRequest) (*procurementpb.ProcessDocumentResponse, error) {
	tenantID, err := parseUUIDField(req.GetTenantId(), "tenant_id")
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.GetRawText()) == "" {
		return nil, common.InvalidArgumentError("raw_text is required")
	}

	docType, known := constants.CanonicalizeDocumentType(req.GetDocumentType())
	if !known && strings.TrimSpace(req.GetDocumentType()) != "" {
		s.logger.Warn("unknown document type, treating as Other", "document_type", req.GetDocumentType())
	}
	title := strings.TrimSpace(req.GetTitle())
	if title == "" {
		title = "Untitled document"
	}

	doc, err := s.documents.Create(ctx, &repository.CreateDocumentRequest{
		TenantID:     tenantID,
		Title:        title,
		DocumentType: docType,
		RawText:      req.GetRawText(),
	})
	if err != nil {
		s.logger.Error("document registration failed", "tenant_id", tenantID, "error", err)
		return nil, common.InternalError("document registration failed")
	}

	res, err := s.processor.ProcessDocument(ctx, pipeline.ProcessRequest{
		TenantID:     tenantID,
		DocumentID:   doc.ID,
		DocumentType: string(docType),
		RawText:      req.GetRawText(),
	})
	if err != nil {
		s.logger.Error("pipeline.process.failed", "document_id", doc.ID, "error", err)
		return nil, common.ToStatusError(err)
	}

	return &procurementpb.ProcessDocumentResponse{
		DocumentId:       doc.ID.String(),
		JobId:            res.JobID.String(),
		Fields:           toPBFields(res.Result.Fields),
		ModelUsed:        res.Result.ModelUsed,
		ConfidenceScore:  res.Result.ConfidenceScore,
		CacheHit:         res.CacheHit,
		Corrections:      res.Corrections,
		ProcessingTimeMs: res.Result.ProcessingTimeMS,
		Supplier:         toPBSupplier(res.Supplier),
		SupplierCreated:  res.SupplierCreated,
	}, nil
}

func (s *ProcurementService) GetDocument(ctx context.Context, req *procurementpb.GetDocumentRequest) (*procurementpb.GetDocumentResponse, error) {
	docID, err := parseUUIDField(req.GetDocumentId(), "document_id")
	if err != nil {
		return nil, err
	}

	doc, err := s.documents.GetByID(ctx, docID)
	if err != nil {
		return nil, common.ToStatusError(err)
	}

	// the supplier row and the tenant spend total feed the risk indicators
	var supplier *entity.Supplier
	var tenantSpend float64
	all, err := s.store.ListByTenant(ctx, doc.TenantID)
	if err != nil {
		s.logger.Error("supplier list failed", "tenant_id", doc.TenantID, "error", err)
		return nil, common.InternalError("supplier lookup failed")
	}
	for i := range all {
		tenantSpend += all[i].TotalSpend
		if doc.SupplierID != nil && all[i].ID == *doc.SupplierID {
			supplier = &all[i]
		}
	}

	now := time.Now().UTC()
	compliance := signals.ComplianceScore(*doc)
	risk := signals.RiskScore(*doc, supplier, tenantSpend)

	return &procurementpb.GetDocumentResponse{
		Document: toPBDocument(doc),
		Signals: &procurementpb.DocumentSignals{
			ComplianceScore:  int32(compliance.Score),
			ComplianceLevel:  string(compliance.Level),
			RiskScore:        int32(risk.Score),
			RiskLevel:        string(risk.Level),
			ApprovalPriority: string(signals.ApprovalPriority(*doc, now)),
			RenewalUrgency:   string(signals.RenewalUrgency(*doc, now)),
		},
	}, nil
}

func toPBDocument(doc *entity.Document) *procurementpb.Document {
	out := &procurementpb.Document{
		Id:           doc.ID.String(),
		TenantId:     doc.TenantID.String(),
		Title:        doc.Title,
		DocumentType: string(doc.DocumentType),
		Status:       string(doc.Status),
		Fields: toPBFields(extraction.CanonicalFields{
			SupplierName:   doc.SupplierName,
			Amount:         doc.Amount,
			Currency:       doc.Currency,
			TaxAmount:      doc.TaxAmount,
			TotalAmount:    doc.TotalAmount,
			IssueDate:      doc.IssueDate,
			DueDate:        doc.DueDate,
			DocumentNumber: doc.DocumentNumber,
		}),
		Processed: doc.Processed,
		CreatedAt: doc.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt: doc.UpdatedAt.Format(time.RFC3339Nano),
	}
	if doc.SupplierID != nil {
		id := doc.SupplierID.String()
		out.SupplierId = &id
	}
	return out
}
