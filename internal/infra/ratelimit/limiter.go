// Package ratelimit throttles per-user actions with token buckets.
package ratelimit

import (
	"sync"
	"time"

	"dcars/config"
	"dcars/internal/domain/service"

	"golang.org/x/time/rate"
)

// idleTTL is how long an unused bucket is kept before it is swept.
const idleTTL = 10 * time.Minute

type keyLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// KeyedLimiter keeps one token bucket per key.
type KeyedLimiter struct {
	mu       sync.Mutex
	limiters map[string]*keyLimiter
	limit    rate.Limit
	burst    int
	now      func() time.Time
	lastGC   time.Time
}

// NewKeyedLimiter creates a limiter that allows ratePerSecond events per key with the given burst.
func NewKeyedLimiter(ratePerSecond float64, burst int) *KeyedLimiter {
	return &KeyedLimiter{
		limiters: make(map[string]*keyLimiter),
		limit:    rate.Limit(ratePerSecond),
		burst:    burst,
		now:      time.Now,
	}
}

// NewMessageRateLimiter builds the chat limiter from the messaging config.
func NewMessageRateLimiter(cfg *config.Config) service.RateLimiter {
	return NewKeyedLimiter(cfg.Messaging.RatePerSecond, cfg.Messaging.Burst)
}

// Allow reports whether an event for key may happen now and consumes a token if so.
func (l *KeyedLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	entry, ok := l.limiters[key]
	if !ok {
		entry = &keyLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.limiters[key] = entry
	}
	entry.lastSeen = now

	return entry.limiter.AllowN(now, 1)
}

// sweep drops idle buckets at most once per idleTTL. Callers hold mu.
func (l *KeyedLimiter) sweep(now time.Time) {
	if now.Sub(l.lastGC) < idleTTL {
		return
	}
	l.lastGC = now

	for key, entry := range l.limiters {
		if now.Sub(entry.lastSeen) > idleTTL {
			delete(l.limiters, key)
		}
	}
}

// Len returns the number of tracked keys.
func (l *KeyedLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.limiters)
}
