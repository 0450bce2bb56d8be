package farm

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type zoneLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
	override bool
}

// RateLimiterStore hands out one token bucket per zone. Zones without an override share the
// default rate and burst; idle default buckets can be pruned.
type RateLimiterStore struct {
	mu           sync.Mutex
	limiters     map[string]*zoneLimiter
	defaultRate  rate.Limit
	defaultBurst int
	now          func() time.Time
}

func NewRateLimiterStore(defaultRate rate.Limit, defaultBurst int) *RateLimiterStore {
	return &RateLimiterStore{
		limiters:     make(map[string]*zoneLimiter),
		defaultRate:  defaultRate,
		defaultBurst: defaultBurst,
		now:          time.Now,
	}
}

func (s *RateLimiterStore) GetLimiter(zoneID string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	zl, exists := s.limiters[zoneID]
	if !exists {
		zl = &zoneLimiter{limiter: rate.NewLimiter(s.defaultRate, s.defaultBurst)}
		s.limiters[zoneID] = zl
	}
	zl.lastSeen = s.now()
	return zl.limiter
}

func (s *RateLimiterStore) Allow(zoneID string) bool {
	return s.GetLimiter(zoneID).Allow()
}

// SetLimiter installs a dedicated bucket for zoneID that survives Prune.
func (s *RateLimiterStore) SetLimiter(zoneID string, zoneRate rate.Limit, zoneBurst int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.limiters[zoneID] = &zoneLimiter{
		limiter:  rate.NewLimiter(zoneRate, zoneBurst),
		lastSeen: s.now(),
		override: true,
	}
}

// ResetLimiter drops any bucket for zoneID, so the next request starts from the defaults.
func (s *RateLimiterStore) ResetLimiter(zoneID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.limiters, zoneID)
}

// Prune removes default buckets not used for idle and returns how many were removed.
func (s *RateLimiterStore) Prune(idle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-idle)
	removed := 0
	for zoneID, zl := range s.limiters {
		if !zl.override && zl.lastSeen.Before(cutoff) {
			delete(s.limiters, zoneID)
			removed++
		}
	}
	return removed
}

func (s *RateLimiterStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.limiters)
}
