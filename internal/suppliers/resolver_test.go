package suppliers

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/procurehq/procurement-tracker/constants"
	"github.com/procurehq/procurement-tracker/internal/common"
	"github.com/procurehq/procurement-tracker/internal/entity"
)

// fakeStore enforces the (tenant_id, normalized_name) unique constraint the
// way the database does, so the create-race behavior is exercised for real.
type fakeStore struct {
	mu      sync.Mutex
	rows    map[string]*entity.Supplier // key: tenant|normalized
	creates int
}

func newFakeStore() *fakeStore {
	return &fakeStore{rows: map[string]*entity.Supplier{}}
}

func (f *fakeStore) key(tenantID uuid.UUID, normalized string) string {
	return tenantID.String() + "|" + normalized
}

func (f *fakeStore) GetByNormalizedName(_ context.Context, tenantID uuid.UUID, normalized string) (*entity.Supplier, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s, ok := f.rows[f.key(tenantID, normalized)]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, common.ErrNotFound
}

func (f *fakeStore) Create(_ context.Context, s *entity.Supplier) (*entity.Supplier, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	k := f.key(s.TenantID, s.NormalizedName)
	if _, exists := f.rows[k]; exists {
		return nil, common.ErrConflict
	}
	f.creates++
	cp := *s
	cp.ID = uuid.New()
	f.rows[k] = &cp
	out := cp
	return &out, nil
}

func (f *fakeStore) AddSpend(_ context.Context, id uuid.UUID, amount float64) error {
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

func (f *fakeStore) BackfillContact(_ context.Context, id uuid.UUID, attr Attribution) error {
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

func (f *fakeStore) ListByTenant(_ context.Context, tenantID uuid.UUID) ([]entity.Supplier, error) {
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

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "acme corp", NormalizeName("  ACME   Corp  "))
	assert.Equal(t, "acme corp", NormalizeName("Acme\tCorp"))
	assert.Equal(t, "", NormalizeName("   "))
}

func TestResolveCreatesOnMiss(t *testing.T) {
	store := newFakeStore()
	r := NewResolver(store, nil)
	tenantID := uuid.New()

	sup, created, err := r.Resolve(context.Background(), tenantID, "  Acme   Corp ", nil)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "Acme   Corp", sup.Name, "display name keeps original casing, trimmed")
	assert.Equal(t, "acme corp", sup.NormalizedName)
	assert.Equal(t, 2.5, sup.PerformanceRating)
	assert.Equal(t, constants.SupplierActive, sup.Status)
	assert.Equal(t, 0.0, sup.TotalSpend)
}

func TestResolveHitAccumulatesSpend(t *testing.T) {
	store := newFakeStore()
	r := NewResolver(store, nil)
	tenantID := uuid.New()

	first, created, err := r.Resolve(context.Background(), tenantID, "Acme Corp", &Attribution{Amount: 100})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, 100.0, first.TotalSpend)

	second, created, err := r.Resolve(context.Background(), tenantID, "ACME CORP", &Attribution{Amount: 200})
	require.NoError(t, err)
	assert.False(t, created, "same normalized name resolves to the existing row")
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 300.0, second.TotalSpend)
	assert.Equal(t, 1, store.creates)
}

func TestResolveBackfillsOnlyEmptyContactFields(t *testing.T) {
	store := newFakeStore()
	r := NewResolver(store, nil)
	tenantID := uuid.New()

	email := "old@acme.example"
	_, _, err := r.Resolve(context.Background(), tenantID, "Acme", &Attribution{
		ContactEmail: &email,
	})
	require.NoError(t, err)

	newEmail := "new@acme.example"
	phone := "+49 40 1"
	sup, _, err := r.Resolve(context.Background(), tenantID, "Acme", &Attribution{
		ContactEmail: &newEmail,
		ContactPhone: &phone,
	})
	require.NoError(t, err)

	require.NotNil(t, sup.ContactEmail)
	assert.Equal(t, "old@acme.example", *sup.ContactEmail, "existing contact data is never overwritten")
	require.NotNil(t, sup.ContactPhone)
	assert.Equal(t, "+49 40 1", *sup.ContactPhone)
}

func TestResolveValidation(t *testing.T) {
	r := NewResolver(newFakeStore(), nil)

	_, _, err := r.Resolve(context.Background(), uuid.Nil, "Acme", nil)
	assert.ErrorIs(t, err, common.ErrValidation)

	_, _, err = r.Resolve(context.Background(), uuid.New(), "   ", nil)
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestResolveConcurrentSingleRow(t *testing.T) {
	store := newFakeStore()
	r := NewResolver(store, nil)
	tenantID := uuid.New()

	const n = 20
	var wg sync.WaitGroup
	ids := make([]uuid.UUID, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sup, _, err := r.Resolve(context.Background(), tenantID, "Initech GmbH", &Attribution{Amount: 10})
			assert.NoError(t, err)
			ids[i] = sup.ID
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, store.creates, "concurrent resolutions of a new name create exactly one row")
	for i := 1; i < n; i++ {
		assert.Equal(t, ids[0], ids[i])
	}

	final, _, err := r.Resolve(context.Background(), tenantID, "Initech GmbH", nil)
	require.NoError(t, err)
	assert.Equal(t, float64(n*10), final.TotalSpend, "every caller's spend contribution is applied")
}

func TestResolveTenantIsolation(t *testing.T) {
	store := newFakeStore()
	r := NewResolver(store, nil)

	a, _, err := r.Resolve(context.Background(), uuid.New(), "Acme", nil)
	require.NoError(t, err)
	b, _, err := r.Resolve(context.Background(), uuid.New(), "Acme", nil)
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID, "the same name in two tenants is two suppliers")
	assert.Equal(t, 2, store.creates)
}

func TestSuggestUsesTenantCandidates(t *testing.T) {
	store := newFakeStore()
	r := NewResolver(store, nil)
	tenantID := uuid.New()

	_, _, err := r.Resolve(context.Background(), tenantID, "Acme Corp", nil)
	require.NoError(t, err)
	_, _, err = r.Resolve(context.Background(), uuid.New(), "Acme Corporation", nil)
	require.NoError(t, err)

	matches, err := r.Suggest(context.Background(), tenantID, "Acme Corp.", MatchContext{})
	require.NoError(t, err)
	require.Len(t, matches, 1, "suggestions never cross tenants")
	assert.Equal(t, "Acme Corp", matches[0].Supplier.Name)
}
