package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/procurehq/procurement-tracker/constants"
	"github.com/procurehq/procurement-tracker/gen/ent"
	"github.com/procurehq/procurement-tracker/gen/ent/document"
	"github.com/procurehq/procurement-tracker/internal/common"
	"github.com/procurehq/procurement-tracker/internal/entity"
	"github.com/procurehq/procurement-tracker/internal/extraction"
)

// CreateDocumentRequest wraps parameters for registering a document.
type CreateDocumentRequest struct {
	TenantID     uuid.UUID
	Title        string
	DocumentType constants.DocumentType
	RawText      string
}

type DocumentRepository interface {
	Create(ctx context.Context, req *CreateDocumentRequest) (*entity.Document, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]*entity.Document, error)
	UpdateExtraction(ctx context.Context, docID uuid.UUID, fields extraction.CanonicalFields, supplierID *uuid.UUID, status constants.DocumentStatus) error
}

type documentRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewDocumentRepository(client *ent.Client, logger *slog.Logger) DocumentRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &documentRepository{client: client, logger: logger}
}

func (r *documentRepository) Create(ctx context.Context, req *CreateDocumentRequest) (*entity.Document, error) {
	row, err := r.client.Document.Create().
		SetTenantID(req.TenantID).
		SetTitle(req.Title).
		SetDocumentType(string(req.DocumentType)).
		SetStatus(string(constants.DocumentUploaded)).
		SetRawText(req.RawText).
		Save(ctx)
	if err != nil {
		r.logger.Error("document create failed", "tenant_id", req.TenantID, "error", err)
		return nil, err
	}
	return toDocument(row), nil
}

func (r *documentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	row, err := r.client.Document.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return toDocument(row), nil
}

func (r *documentRepository) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]*entity.Document, error) {
	rows, err := r.client.Document.Query().
		Where(document.TenantID(tenantID)).
		Order(document.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("document list failed", "tenant_id", tenantID, "error", err)
		return nil, err
	}

	result := make([]*entity.Document, len(rows))
	for i, row := range rows {
		result[i] = toDocument(row)
	}
	return result, nil
}

// UpdateExtraction writes the merged canonical fields and the supplier link
// onto the document row.
func (r *documentRepository) UpdateExtraction(ctx context.Context, docID uuid.UUID, fields extraction.CanonicalFields, supplierID *uuid.UUID, status constants.DocumentStatus) error {
	upd := r.client.Document.UpdateOneID(docID).
		SetStatus(string(status)).
		SetProcessed(status == constants.DocumentProcessed).
		SetNillableSupplierName(fields.SupplierName).
		SetNillableAmount(fields.Amount).
		SetNillableCurrency(fields.Currency).
		SetNillableTaxAmount(fields.TaxAmount).
		SetNillableTotalAmount(fields.TotalAmount).
		SetNillableDocumentNumber(fields.DocumentNumber).
		SetNillableSupplierID(supplierID)

	if t := parseDate(fields.IssueDate); t != nil {
		upd.SetIssueDate(*t)
	}
	if t := parseDate(fields.DueDate); t != nil {
		upd.SetDueDate(*t)
	}

	if err := upd.Exec(ctx); err != nil {
		r.logger.Error("document extraction update failed", "document_id", docID, "error", err)
		return err
	}
	return nil
}

func parseDate(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil
	}
	return &t
}

func toDocument(row *ent.Document) *entity.Document {
	doc := &entity.Document{
		ID:             row.ID,
		TenantID:       row.TenantID,
		Title:          row.Title,
		DocumentType:   constants.DocumentType(row.DocumentType),
		Status:         constants.DocumentStatus(row.Status),
		SupplierID:     row.SupplierID,
		SupplierName:   row.SupplierName,
		Amount:         row.Amount,
		Currency:       row.Currency,
		TaxAmount:      row.TaxAmount,
		TotalAmount:    row.TotalAmount,
		DocumentNumber: row.DocumentNumber,
		Processed:      row.Processed,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
	if row.IssueDate != nil {
		s := row.IssueDate.Format("2006-01-02")
		doc.IssueDate = &s
	}
	if row.DueDate != nil {
		s := row.DueDate.Format("2006-01-02")
		doc.DueDate = &s
	}
	return doc
}
