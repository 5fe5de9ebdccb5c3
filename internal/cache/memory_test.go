package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/procurehq/procurement-tracker/internal/extraction"
)

func testRequest(text string) extraction.Request {
	return extraction.Request{
		NormalizedText:   text,
		DocumentType:     "Invoice",
		PromptTemplateID: "procurement-extract-v1",
	}
}

func testResult(model string) extraction.Result {
	return extraction.Result{
		Fields:    extraction.CanonicalFields{SupplierName: extraction.Str("Acme Corp")},
		ModelUsed: model,
	}
}

func TestMemoryStoreSetGet(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	defer s.Stop()

	req := testRequest("doc-1")
	_, ok := s.Get(req)
	assert.False(t, ok)

	assert.True(t, s.Set(req, testResult("gpt-4o-mini"), time.Minute))

	got, ok := s.Get(req)
	require.True(t, ok)
	assert.Equal(t, "gpt-4o-mini", got.ModelUsed)
	require.NotNil(t, got.Fields.SupplierName)
	assert.Equal(t, "Acme Corp", *got.Fields.SupplierName)
}

func TestMemoryStoreTTLExpiry(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	defer s.Stop()

	req := testRequest("doc-ttl")
	s.Set(req, testResult("gpt-4o-mini"), 30*time.Millisecond)

	_, ok := s.Get(req)
	assert.True(t, ok)

	time.Sleep(60 * time.Millisecond)
	_, ok = s.Get(req)
	assert.False(t, ok, "expired entry must read as a miss")
	assert.Equal(t, 0, s.Stats().Entries, "expired entry is evicted lazily on read")
}

func TestMemoryStoreSweepEvictsExpired(t *testing.T) {
	s := NewMemoryStore(20 * time.Millisecond)
	defer s.Stop()

	s.Set(testRequest("doc-a"), testResult("m"), 10*time.Millisecond)
	s.Set(testRequest("doc-b"), testResult("m"), time.Minute)

	assert.Eventually(t, func() bool {
		return s.Stats().Entries == 1
	}, time.Second, 10*time.Millisecond)
}

func TestMemoryStoreClear(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	defer s.Stop()

	s.Set(testRequest("doc-a"), testResult("m"), time.Minute)
	s.Set(testRequest("doc-b"), testResult("m"), time.Minute)
	require.Equal(t, 2, s.Stats().Entries)

	assert.True(t, s.Clear(Namespace))
	assert.Equal(t, 0, s.Stats().Entries)

	s.Set(testRequest("doc-c"), testResult("m"), time.Minute)
	assert.True(t, s.Clear(""))
	assert.Equal(t, 0, s.Stats().Entries)
}

func TestMemoryStoreMaxEntriesDegradesToNoop(t *testing.T) {
	s := NewMemoryStore(time.Minute, WithMaxEntries(1))
	defer s.Stop()

	assert.True(t, s.Set(testRequest("doc-a"), testResult("m"), time.Minute))
	assert.False(t, s.Set(testRequest("doc-b"), testResult("m"), time.Minute))

	// overwriting an existing key is still allowed at capacity
	assert.True(t, s.Set(testRequest("doc-a"), testResult("m2"), time.Minute))

	st := s.Stats()
	assert.Equal(t, 1, st.Entries)
	assert.Equal(t, int64(1), st.SetFailures)
}

func TestMemoryStoreStats(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	defer s.Stop()

	req := testRequest("doc-stats")
	s.Get(req) // miss
	s.Set(req, testResult("m"), time.Minute)
	s.Get(req) // hit
	s.Get(req) // hit

	st := s.Stats()
	assert.Equal(t, int64(2), st.Hits)
	assert.Equal(t, int64(1), st.Misses)
	assert.InDelta(t, 2.0/3.0, st.HitRate, 1e-9)
	// no measured upstream latency yet: heuristic estimate
	assert.InDelta(t, 2*assumedUpstreamMS*0.7, st.EstimatedTimeSavedMS, 1e-9)
}

func TestMemoryStoreEstimatedTimeSavedUsesMeasuredMisses(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	defer s.Stop()

	req := testRequest("doc-measured")
	_, _, err := s.GetOrCompute(context.Background(), req, time.Minute, func(context.Context) (extraction.Result, error) {
		time.Sleep(20 * time.Millisecond)
		return testResult("m"), nil
	})
	require.NoError(t, err)

	s.Get(req) // hit

	st := s.Stats()
	assert.Greater(t, st.AvgMissTimeMS, 0.0)
	assert.InDelta(t, float64(st.Hits)*st.AvgMissTimeMS, st.EstimatedTimeSavedMS, 1e-9)
}

func TestGetOrComputeSingleFlight(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	defer s.Stop()

	var calls atomic.Int64
	req := testRequest("doc-flight")

	var wg sync.WaitGroup
	const n = 16
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, _, err := s.GetOrCompute(context.Background(), req, time.Minute, func(context.Context) (extraction.Result, error) {
				calls.Add(1)
				time.Sleep(20 * time.Millisecond)
				return testResult("m"), nil
			})
			assert.NoError(t, err)
			assert.Equal(t, "m", res.ModelUsed)
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), calls.Load(), "concurrent identical requests must share one compute")
}

func TestGetOrComputeErrorNotCached(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	defer s.Stop()

	req := testRequest("doc-err")
	boom := errors.New("upstream down")

	_, _, err := s.GetOrCompute(context.Background(), req, time.Minute, func(context.Context) (extraction.Result, error) {
		return extraction.Result{}, boom
	})
	require.ErrorIs(t, err, boom)

	// failure must not poison the key
	res, cached, err := s.GetOrCompute(context.Background(), req, time.Minute, func(context.Context) (extraction.Result, error) {
		return testResult("retry"), nil
	})
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Equal(t, "retry", res.ModelUsed)
}

func TestGetOrComputeHit(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	defer s.Stop()

	req := testRequest("doc-hit")
	s.Set(req, testResult("m"), time.Minute)

	res, cached, err := s.GetOrCompute(context.Background(), req, time.Minute, func(context.Context) (extraction.Result, error) {
		t.Fatal("compute must not run on a hit")
		return extraction.Result{}, nil
	})
	require.NoError(t, err)
	assert.True(t, cached)
	assert.Equal(t, "m", res.ModelUsed)
}
