package cache

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/procurehq/procurement-tracker/internal/extraction"
)

type entry struct {
	value     extraction.Result
	createdAt time.Time
	expiresAt time.Time
}

func (e entry) expired(now time.Time) bool {
	return now.After(e.expiresAt)
}

// MemoryStore is the in-process Store implementation: an RWMutex-guarded map
// with lazy expiry on read and a fixed-interval background sweep.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]entry

	group singleflight.Group

	maxEntries int
	logger     *slog.Logger

	stop     chan struct{}
	stopOnce sync.Once

	// counters, guarded by mu
	hits        int64
	misses      int64
	setFailures int64
	hitTimeNS   int64
	missTimeNS  int64
	missesTimed int64
}

// Option configures a MemoryStore.
type Option func(*MemoryStore)

// WithMaxEntries bounds the store; Set fails (degrades to no-op) once full.
func WithMaxEntries(n int) Option {
	return func(s *MemoryStore) { s.maxEntries = n }
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *MemoryStore) { s.logger = logger }
}

// NewMemoryStore creates a store and starts its sweep goroutine. The sweep
// only removes expired entries; it never blocks request paths. Call Stop when
// done.
func NewMemoryStore(sweepInterval time.Duration, opts ...Option) *MemoryStore {
	if sweepInterval <= 0 {
		sweepInterval = DefaultSweepInterval
	}
	s := &MemoryStore{
		entries:    make(map[string]entry),
		maxEntries: 10000,
		logger:     slog.Default(),
		stop:       make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	go s.sweepLoop(sweepInterval)
	return s
}

// Stop terminates the sweep goroutine.
func (s *MemoryStore) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
}

func (s *MemoryStore) Get(req extraction.Request) (extraction.Result, bool) {
	start := time.Now()
	key := Key(req)

	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()

	now := time.Now()
	if ok && e.expired(now) {
		// lazy eviction: expired entries count as misses
		s.mu.Lock()
		if cur, still := s.entries[key]; still && cur.expired(now) {
			delete(s.entries, key)
		}
		s.mu.Unlock()
		ok = false
	}

	s.mu.Lock()
	if ok {
		s.hits++
		s.hitTimeNS += time.Since(start).Nanoseconds()
	} else {
		s.misses++
	}
	s.mu.Unlock()

	if !ok {
		return extraction.Result{}, false
	}
	return e.value, true
}

func (s *MemoryStore) Set(req extraction.Request, res extraction.Result, ttl time.Duration) bool {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	key := Key(req)
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[key]; !exists && s.maxEntries > 0 && len(s.entries) >= s.maxEntries {
		s.setFailures++
		s.logger.Warn("cache.set.full", "entries", len(s.entries), "max", s.maxEntries)
		return false
	}
	s.entries[key] = entry{
		value:     res,
		createdAt: now,
		expiresAt: now.Add(ttl),
	}
	return true
}

func (s *MemoryStore) GetOrCompute(ctx context.Context, req extraction.Request, ttl time.Duration, fn ComputeFunc) (extraction.Result, bool, error) {
	if res, ok := s.Get(req); ok {
		return res, true, nil
	}

	key := Key(req)
	v, err, _ := s.group.Do(key, func() (any, error) {
		// another caller may have populated the entry while we waited on the
		// flight group
		if res, ok := s.Get(req); ok {
			return res, nil
		}
		start := time.Now()
		res, err := fn(ctx)
		if err != nil {
			return extraction.Result{}, err
		}
		s.recordMissTime(time.Since(start))
		s.Set(req, res, ttl)
		return res, nil
	})
	if err != nil {
		return extraction.Result{}, false, err
	}
	return v.(extraction.Result), false, nil
}

func (s *MemoryStore) Clear(namespace string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if namespace == "" {
		s.entries = make(map[string]entry)
		return true
	}
	for k := range s.entries {
		if strings.HasPrefix(k, namespace) {
			delete(s.entries, k)
		}
	}
	return true
}

func (s *MemoryStore) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := Stats{
		Hits:        s.hits,
		Misses:      s.misses,
		Entries:     len(s.entries),
		SetFailures: s.setFailures,
	}
	if total := s.hits + s.misses; total > 0 {
		st.HitRate = float64(s.hits) / float64(total)
	}
	if s.hits > 0 {
		st.AvgHitTimeMS = float64(s.hitTimeNS) / float64(s.hits) / 1e6
	}
	if s.missesTimed > 0 {
		st.AvgMissTimeMS = float64(s.missTimeNS) / float64(s.missesTimed) / 1e6
		st.EstimatedTimeSavedMS = float64(s.hits) * st.AvgMissTimeMS
	} else {
		// no measured upstream latency yet; fall back to the display heuristic
		st.EstimatedTimeSavedMS = float64(s.hits) * assumedUpstreamMS * 0.7
	}
	return st
}

func (s *MemoryStore) recordMissTime(d time.Duration) {
	s.mu.Lock()
	s.missTimeNS += d.Nanoseconds()
	s.missesTimed++
	s.mu.Unlock()
}

func (s *MemoryStore) sweepLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *MemoryStore) sweep() {
	now := time.Now()
	s.mu.Lock()
	removed := 0
	for k, e := range s.entries {
		if e.expired(now) {
			delete(s.entries, k)
			removed++
		}
	}
	remaining := len(s.entries)
	s.mu.Unlock()

	if removed > 0 {
		s.logger.Debug("cache.sweep", "removed", removed, "remaining", remaining)
	}
}
