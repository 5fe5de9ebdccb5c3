// Package cache implements the content-addressed, TTL-based store that
// absorbs duplicate calls to the AI extraction provider. Operations never
// return errors to callers: any internal fault degrades to a miss (Get) or a
// no-op failure (Set) and is visible only through Stats and logs.
package cache

import (
	"context"
	"time"

	"github.com/procurehq/procurement-tracker/internal/extraction"
)

// DefaultTTL is how long a cached extraction stays valid.
const DefaultTTL = time.Hour

// DefaultSweepInterval is how often the background sweep evicts expired
// entries to bound memory growth.
const DefaultSweepInterval = 60 * time.Second

// assumedUpstreamMS is the assumed AI-call latency used for the
// estimated-time-saved statistic before any miss has been measured. The 70%
// factor mirrors the display heuristic this figure has always used; it is
// telemetry, not a correctness property.
const assumedUpstreamMS = 2000.0

// Stats is a snapshot of cache effectiveness counters.
type Stats struct {
	Hits                 int64   `json:"hits"`
	Misses               int64   `json:"misses"`
	HitRate              float64 `json:"hit_rate"`
	AvgHitTimeMS         float64 `json:"avg_hit_time_ms"`
	AvgMissTimeMS        float64 `json:"avg_miss_time_ms"`
	EstimatedTimeSavedMS float64 `json:"estimated_time_saved_ms"`
	Entries              int     `json:"entries"`
	SetFailures          int64   `json:"set_failures"`
}

// ComputeFunc produces a result on a cache miss. It is only invoked once per
// in-flight key when called through GetOrCompute.
type ComputeFunc func(ctx context.Context) (extraction.Result, error)

// Store is the key/value-with-TTL contract the pipeline is written against,
// so the in-memory implementation can be swapped for a networked one.
type Store interface {
	// Get returns the cached result for the request, or ok=false on miss
	// (including expired entries, which are evicted lazily).
	Get(req extraction.Request) (extraction.Result, bool)

	// Set stores the result under the request's key for ttl (DefaultTTL when
	// ttl <= 0). Returns false when the entry could not be stored.
	Set(req extraction.Request, res extraction.Result, ttl time.Duration) bool

	// GetOrCompute returns the cached result or computes and stores it,
	// guaranteeing at most one in-flight compute per key. cached reports
	// whether the value came from the cache.
	GetOrCompute(ctx context.Context, req extraction.Request, ttl time.Duration, fn ComputeFunc) (res extraction.Result, cached bool, err error)

	// Clear removes all entries whose key starts with namespace; an empty
	// namespace clears everything. Returns false on failure.
	Clear(namespace string) bool

	// Stats returns a snapshot of the effectiveness counters.
	Stats() Stats
}
