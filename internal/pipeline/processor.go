// Package pipeline coordinates one document's pass through the engine:
// deterministic pattern extraction, the cache-gated AI call with its fallback
// path, reconciliation, supplier resolution and persistence.
package pipeline

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/procurehq/procurement-tracker/constants"
	"github.com/procurehq/procurement-tracker/internal/cache"
	"github.com/procurehq/procurement-tracker/internal/common"
	"github.com/procurehq/procurement-tracker/internal/entity"
	"github.com/procurehq/procurement-tracker/internal/extraction"
	"github.com/procurehq/procurement-tracker/internal/patterns"
	"github.com/procurehq/procurement-tracker/internal/reconcile"
	"github.com/procurehq/procurement-tracker/internal/suppliers"
)

// Config holds behavior knobs for the processor.
type Config struct {
	PromptTemplateID string        // cache-key component; default "procurement-extract-v1"
	CacheTTL         time.Duration // default cache.DefaultTTL
	AITimeout        time.Duration // upper bound on the provider call; default 45s
}

// DocumentStore persists extraction output onto the document row.
type DocumentStore interface {
	UpdateExtraction(ctx context.Context, docID uuid.UUID, fields extraction.CanonicalFields, supplierID *uuid.UUID, status constants.DocumentStatus) error
}

// JobStore records pipeline runs.
type JobStore interface {
	Start(ctx context.Context, docID uuid.UUID) (uuid.UUID, error)
	FinishSuccess(ctx context.Context, jobID uuid.UUID, res extraction.Result, corrections []string, cacheHit bool, rawJSON []byte) error
	FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error
}

// ProcessRequest is one inbound document to run through the engine.
type ProcessRequest struct {
	TenantID     uuid.UUID
	DocumentID   uuid.UUID
	DocumentType string
	RawText      string
}

// ProcessResult is what a pipeline run produced.
type ProcessResult struct {
	JobID           uuid.UUID
	Result          extraction.Result
	Corrections     []string
	CacheHit        bool
	Supplier        *entity.Supplier
	SupplierCreated bool
}

type Processor struct {
	logger    *slog.Logger
	cfg       Config
	cache     cache.Store
	extractor extraction.FieldExtractor
	patterns  *patterns.Extractor
	resolver  *suppliers.Resolver
	documents DocumentStore
	jobs      JobStore
}

func NewProcessor(
	logger *slog.Logger,
	cfg Config,
	store cache.Store,
	extractor extraction.FieldExtractor,
	pat *patterns.Extractor,
	resolver *suppliers.Resolver,
	documents DocumentStore,
	jobs JobStore,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.PromptTemplateID == "" {
		cfg.PromptTemplateID = "procurement-extract-v1"
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = cache.DefaultTTL
	}
	if cfg.AITimeout <= 0 {
		cfg.AITimeout = 45 * time.Second
	}
	if pat == nil {
		pat = patterns.New()
	}
	return &Processor{
		logger:    logger,
		cfg:       cfg,
		cache:     store,
		extractor: extractor,
		patterns:  pat,
		resolver:  resolver,
		documents: documents,
		jobs:      jobs,
	}
}

// ProcessDocument runs the full pass. Upstream-provider failures are
// recovered by serving the deterministic extraction; validation and
// persistence failures are surfaced to the caller.
func (p *Processor) ProcessDocument(ctx context.Context, req ProcessRequest) (*ProcessResult, error) {
	if req.TenantID == uuid.Nil {
		return nil, common.ValidationErrorf("tenant_id is required")
	}
	if strings.TrimSpace(req.RawText) == "" {
		return nil, common.ValidationErrorf("raw_text is required")
	}

	jobID, err := p.jobs.Start(ctx, req.DocumentID)
	if err != nil {
		return nil, common.PersistenceErrorf(err, "process job not recorded")
	}

	start := time.Now()
	patternFields := p.patterns.Extract(req.RawText)

	res, cacheHit, rawJSON, aiErr := p.aiExtract(ctx, req)

	var merged extraction.CanonicalFields
	var corrections []string
	if aiErr != nil {
		// degraded path: the deterministic extraction is the result
		p.logger.Warn("pipeline.ai.fallback",
			"document_id", req.DocumentID, "error", aiErr)
		merged = patternFields
		res = extraction.Result{
			Fields:           patternFields,
			ProcessingTimeMS: time.Since(start).Milliseconds(),
			ModelUsed:        constants.FallbackModelName,
		}
		res.ConfidenceScore = reconcile.Confidence(nil, merged)
	} else {
		merged, corrections = reconcile.Reconcile(res.Fields, patternFields)
		res.Fields = merged
		res.ConfidenceScore = reconcile.Confidence(aiConfidence(res), merged)
	}

	out := &ProcessResult{
		JobID:       jobID,
		Result:      res,
		Corrections: corrections,
		CacheHit:    cacheHit,
	}

	if merged.SupplierName != nil {
		attr := &suppliers.Attribution{
			Amount:         attributedAmount(merged),
			ContactEmail:   merged.SupplierEmail,
			ContactPhone:   merged.SupplierPhone,
			ContactAddress: merged.SupplierAddress,
			TaxID:          merged.SupplierTaxID,
		}
		sup, created, err := p.resolver.Resolve(ctx, req.TenantID, *merged.SupplierName, attr)
		if err != nil {
			_ = p.jobs.FinishFailure(ctx, jobID, err.Error())
			return out, common.PersistenceErrorf(err, "fields extracted but supplier link not saved")
		}
		out.Supplier = sup
		out.SupplierCreated = created
	}

	var supplierID *uuid.UUID
	if out.Supplier != nil {
		supplierID = &out.Supplier.ID
	}
	if err := p.documents.UpdateExtraction(ctx, req.DocumentID, merged, supplierID, constants.DocumentProcessed); err != nil {
		_ = p.jobs.FinishFailure(ctx, jobID, err.Error())
		return out, common.PersistenceErrorf(err, "fields extracted but document not saved")
	}

	if err := p.jobs.FinishSuccess(ctx, jobID, res, corrections, cacheHit, rawJSON); err != nil {
		return out, common.PersistenceErrorf(err, "document saved but process job not finalized")
	}

	p.logger.Info("pipeline.process.ok",
		"req_id", common.RequestIDFromContext(ctx),
		"document_id", req.DocumentID,
		"job_id", jobID,
		"model", res.ModelUsed,
		"cache_hit", cacheHit,
		"corrections", len(corrections),
		"confidence", res.ConfidenceScore,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, nil
}

// aiExtract runs the cache-gated provider call. The cache key triple carries
// the trimmed text; cache faults surface as misses, and the provider call is
// bounded by the configured timeout.
func (p *Processor) aiExtract(ctx context.Context, req ProcessRequest) (extraction.Result, bool, []byte, error) {
	exReq := extraction.Request{
		NormalizedText:   req.RawText,
		DocumentType:     req.DocumentType,
		PromptTemplateID: p.cfg.PromptTemplateID,
	}

	var rawJSON []byte
	res, cached, err := p.cache.GetOrCompute(ctx, exReq, p.cfg.CacheTTL, func(ctx context.Context) (extraction.Result, error) {
		callCtx, cancel := context.WithTimeout(ctx, p.cfg.AITimeout)
		defer cancel()
		out, raw, err := p.extractor.ExtractFields(callCtx, exReq)
		rawJSON = raw
		return out, err
	})
	if err != nil {
		return extraction.Result{}, false, rawJSON, err
	}
	return res, cached, rawJSON, nil
}

func aiConfidence(res extraction.Result) *float64 {
	if res.ConfidenceScore > 0 {
		c := res.ConfidenceScore
		return &c
	}
	return nil
}

// attributedAmount prefers the gross amount for spend aggregation.
func attributedAmount(f extraction.CanonicalFields) float64 {
	if f.TotalAmount != nil {
		return *f.TotalAmount
	}
	if f.Amount != nil {
		return *f.Amount
	}
	return 0
}
