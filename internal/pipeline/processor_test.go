package pipeline

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/procurehq/procurement-tracker/constants"
	"github.com/procurehq/procurement-tracker/internal/cache"
	"github.com/procurehq/procurement-tracker/internal/common"
	"github.com/procurehq/procurement-tracker/internal/entity"
	"github.com/procurehq/procurement-tracker/internal/extraction"
	"github.com/procurehq/procurement-tracker/internal/patterns"
	"github.com/procurehq/procurement-tracker/internal/suppliers"
)

type fakeExtractor struct {
	mu     sync.Mutex
	calls  int
	result extraction.Result
	err    error
}

func (f *fakeExtractor) ExtractFields(_ context.Context, _ extraction.Request) (extraction.Result, []byte, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.err != nil {
		return extraction.Result{}, nil, f.err
	}
	return f.result, []byte(`{"raw":"output"}`), nil
}

func (f *fakeExtractor) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeDocStore struct {
	mu         sync.Mutex
	updated    map[uuid.UUID]extraction.CanonicalFields
	statuses   map[uuid.UUID]constants.DocumentStatus
	supplierID map[uuid.UUID]*uuid.UUID
	err        error
}

func newFakeDocStore() *fakeDocStore {
	return &fakeDocStore{
		updated:    map[uuid.UUID]extraction.CanonicalFields{},
		statuses:   map[uuid.UUID]constants.DocumentStatus{},
		supplierID: map[uuid.UUID]*uuid.UUID{},
	}
}

func (f *fakeDocStore) UpdateExtraction(_ context.Context, docID uuid.UUID, fields extraction.CanonicalFields, supplierID *uuid.UUID, status constants.DocumentStatus) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updated[docID] = fields
	f.statuses[docID] = status
	f.supplierID[docID] = supplierID
	return nil
}

type jobRecord struct {
	status      constants.JobStatus
	modelUsed   string
	cacheHit    bool
	corrections []string
	message     string
}

type fakeJobStore struct {
	mu       sync.Mutex
	jobs     map[uuid.UUID]*jobRecord
	startErr error
}

func newFakeJobStore() *fakeJobStore {
	return &fakeJobStore{jobs: map[uuid.UUID]*jobRecord{}}
}

func (f *fakeJobStore) Start(_ context.Context, _ uuid.UUID) (uuid.UUID, error) {
	if f.startErr != nil {
		return uuid.Nil, f.startErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	id := uuid.New()
	f.jobs[id] = &jobRecord{status: constants.JobRunning}
	return id, nil
}

func (f *fakeJobStore) FinishSuccess(_ context.Context, jobID uuid.UUID, res extraction.Result, corrections []string, cacheHit bool, _ []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.jobs[jobID] = &jobRecord{
		status:      constants.JobExtractOK,
		modelUsed:   res.ModelUsed,
		cacheHit:    cacheHit,
		corrections: corrections,
	}
	return nil
}

func (f *fakeJobStore) FinishFailure(_ context.Context, jobID uuid.UUID, message string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.jobs[jobID] = &jobRecord{status: constants.JobFailed, message: message}
	return nil
}

func (f *fakeJobStore) record(jobID uuid.UUID) jobRecord {
	f.mu.Lock()
	defer f.mu.Unlock()
	return *f.jobs[jobID]
}

// fakeSupplierStore backs the resolver with map semantics matching the unique
// index behavior.
type fakeSupplierStore struct {
	mu   sync.Mutex
	rows map[string]*entity.Supplier
}

func newFakeSupplierStore() *fakeSupplierStore {
	return &fakeSupplierStore{rows: map[string]*entity.Supplier{}}
}

func (f *fakeSupplierStore) GetByNormalizedName(_ context.Context, tenantID uuid.UUID, normalized string) (*entity.Supplier, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s, ok := f.rows[tenantID.String()+"|"+normalized]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, common.ErrNotFound
}

func (f *fakeSupplierStore) Create(_ context.Context, s *entity.Supplier) (*entity.Supplier, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	k := s.TenantID.String() + "|" + s.NormalizedName
	if _, exists := f.rows[k]; exists {
		return nil, common.ErrConflict
	}
	cp := *s
	cp.ID = uuid.New()
	f.rows[k] = &cp
	out := cp
	return &out, nil
}

func (f *fakeSupplierStore) AddSpend(_ context.Context, id uuid.UUID, amount float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.rows {
		if s.ID == id {
			s.TotalSpend += amount
			return nil
		}
	}
	return common.ErrNotFound
}

func (f *fakeSupplierStore) BackfillContact(_ context.Context, id uuid.UUID, attr suppliers.Attribution) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.rows {
		if s.ID == id {
			if s.ContactEmail == nil {
				s.ContactEmail = attr.ContactEmail
			}
			if s.ContactPhone == nil {
				s.ContactPhone = attr.ContactPhone
			}
			if s.ContactAddress == nil {
				s.ContactAddress = attr.ContactAddress
			}
			if s.TaxID == nil {
				s.TaxID = attr.TaxID
			}
			return nil
		}
	}
	return common.ErrNotFound
}

func (f *fakeSupplierStore) ListByTenant(_ context.Context, tenantID uuid.UUID) ([]entity.Supplier, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.Supplier
	for _, s := range f.rows {
		if s.TenantID == tenantID {
			out = append(out, *s)
		}
	}
	return out, nil
}

type harness struct {
	processor *Processor
	extractor *fakeExtractor
	docs      *fakeDocStore
	jobs      *fakeJobStore
	store     *fakeSupplierStore
	cache     *cache.MemoryStore
}

func newHarness(t *testing.T, ex *fakeExtractor) *harness {
	t.Helper()
	docs := newFakeDocStore()
	jobs := newFakeJobStore()
	store := newFakeSupplierStore()
	mem := cache.NewMemoryStore(time.Minute)
	t.Cleanup(mem.Stop)

	p := NewProcessor(nil, Config{}, mem, ex,
		patterns.New(), suppliers.NewResolver(store, nil), docs, jobs)
	return &harness{processor: p, extractor: ex, docs: docs, jobs: jobs, store: store, cache: mem}
}

const invoiceText = `Supplier: Acme Corp
Invoice No: INV-2024-001
Total: 1,620.00 USD`

func TestProcessDocumentFallbackOnAIFailure(t *testing.T) {
	h := newHarness(t, &fakeExtractor{err: errors.New("provider 503")})
	tenantID, docID := uuid.New(), uuid.New()

	res, err := h.processor.ProcessDocument(context.Background(), ProcessRequest{
		TenantID:     tenantID,
		DocumentID:   docID,
		DocumentType: string(constants.Invoice),
		RawText:      invoiceText,
	})
	require.NoError(t, err, "provider failure is recovered, not surfaced")

	assert.Equal(t, constants.FallbackModelName, res.Result.ModelUsed)
	require.NotNil(t, res.Result.Fields.SupplierName)
	assert.Equal(t, "Acme Corp", *res.Result.Fields.SupplierName)
	require.NotNil(t, res.Result.Fields.TotalAmount)
	assert.Equal(t, 1620.0, *res.Result.Fields.TotalAmount)
	assert.Empty(t, res.Corrections)

	// the run still persists and the supplier still resolves
	assert.Equal(t, constants.DocumentProcessed, h.docs.statuses[docID])
	require.NotNil(t, res.Supplier)
	assert.True(t, res.SupplierCreated)
	assert.Equal(t, 1620.0, res.Supplier.TotalSpend)

	rec := h.jobs.record(res.JobID)
	assert.Equal(t, constants.JobExtractOK, rec.status)
	assert.Equal(t, constants.FallbackModelName, rec.modelUsed)
}

func TestProcessDocumentReconcilesAIWithPatterns(t *testing.T) {
	ex := &fakeExtractor{result: extraction.Result{
		Fields: extraction.CanonicalFields{
			SupplierName: extraction.Str("Acme Incorporated"), // differs from the text
			TotalAmount:  extraction.Num(1620),
			Currency:     extraction.Str("USD"),
			IssueDate:    extraction.Str("2024-03-05"), // AI-only field survives
		},
		ModelUsed:       "gpt-4o-mini",
		ConfidenceScore: 0.9,
	}}
	h := newHarness(t, ex)
	tenantID, docID := uuid.New(), uuid.New()

	res, err := h.processor.ProcessDocument(context.Background(), ProcessRequest{
		TenantID:     tenantID,
		DocumentID:   docID,
		DocumentType: string(constants.Invoice),
		RawText:      invoiceText,
	})
	require.NoError(t, err)

	require.NotNil(t, res.Result.Fields.SupplierName)
	assert.Equal(t, "Acme Corp", *res.Result.Fields.SupplierName, "literal text wins the disagreement")
	assert.Contains(t, res.Corrections, "supplier_name")
	require.NotNil(t, res.Result.Fields.IssueDate)
	assert.Equal(t, "2024-03-05", *res.Result.Fields.IssueDate)
	assert.Equal(t, "gpt-4o-mini", res.Result.ModelUsed)
	assert.Greater(t, res.Result.ConfidenceScore, 0.0)

	require.NotNil(t, res.Supplier)
	assert.Equal(t, "acme corp", res.Supplier.NormalizedName)
	require.NotNil(t, h.docs.supplierID[docID])
	assert.Equal(t, res.Supplier.ID, *h.docs.supplierID[docID])
}

func TestProcessDocumentCacheHitSkipsProvider(t *testing.T) {
	ex := &fakeExtractor{result: extraction.Result{
		Fields:    extraction.CanonicalFields{TotalAmount: extraction.Num(1620), Currency: extraction.Str("USD")},
		ModelUsed: "gpt-4o-mini",
	}}
	h := newHarness(t, ex)
	tenantID := uuid.New()

	req := ProcessRequest{
		TenantID:     tenantID,
		DocumentID:   uuid.New(),
		DocumentType: string(constants.Invoice),
		RawText:      invoiceText,
	}
	first, err := h.processor.ProcessDocument(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, first.CacheHit)

	req.DocumentID = uuid.New()
	second, err := h.processor.ProcessDocument(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, second.CacheHit)
	assert.Equal(t, 1, h.extractor.callCount(), "identical text must not call the provider twice")

	rec := h.jobs.record(second.JobID)
	assert.True(t, rec.cacheHit)
}

func TestProcessDocumentValidation(t *testing.T) {
	h := newHarness(t, &fakeExtractor{})

	_, err := h.processor.ProcessDocument(context.Background(), ProcessRequest{
		TenantID: uuid.Nil,
		RawText:  "text",
	})
	assert.ErrorIs(t, err, common.ErrValidation)

	_, err = h.processor.ProcessDocument(context.Background(), ProcessRequest{
		TenantID: uuid.New(),
		RawText:  "   \n ",
	})
	assert.ErrorIs(t, err, common.ErrValidation)
	assert.Equal(t, 0, h.extractor.callCount())
}

func TestProcessDocumentJobStartFailure(t *testing.T) {
	h := newHarness(t, &fakeExtractor{})
	h.jobs.startErr = errors.New("db down")

	_, err := h.processor.ProcessDocument(context.Background(), ProcessRequest{
		TenantID:   uuid.New(),
		DocumentID: uuid.New(),
		RawText:    invoiceText,
	})
	assert.ErrorIs(t, err, common.ErrPersistence)
	assert.Equal(t, 0, h.extractor.callCount(), "nothing runs without a job record")
}

func TestProcessDocumentPersistFailureMarksJobFailed(t *testing.T) {
	ex := &fakeExtractor{result: extraction.Result{
		Fields:    extraction.CanonicalFields{TotalAmount: extraction.Num(10), Currency: extraction.Str("USD")},
		ModelUsed: "gpt-4o-mini",
	}}
	h := newHarness(t, ex)
	h.docs.err = errors.New("disk full")

	res, err := h.processor.ProcessDocument(context.Background(), ProcessRequest{
		TenantID:     uuid.New(),
		DocumentID:   uuid.New(),
		DocumentType: string(constants.Invoice),
		RawText:      "Total: 10.00 USD",
	})
	require.ErrorIs(t, err, common.ErrPersistence)
	assert.Contains(t, err.Error(), "fields extracted but document not saved")

	rec := h.jobs.record(res.JobID)
	assert.Equal(t, constants.JobFailed, rec.status)
	assert.Contains(t, rec.message, "disk full")
}
