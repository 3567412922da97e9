package ratelimit

import (
	"sync"
	"time"
)

type bucket struct {
	tokens float64
	last   time.Time
}

// Limiter is a per-client token bucket. Advisory generation is cheap but
// not free (dataset scans per request), so abusive clients are throttled
// by source IP.
type Limiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket

	rate  float64 // tokens per second
	burst float64
}

// New creates a limiter refilling rate tokens per second up to burst.
func New(rate, burst float64) *Limiter {
	if rate <= 0 {
		rate = 5
	}
	if burst < 1 {
		burst = rate
	}
	return &Limiter{buckets: make(map[string]*bucket), rate: rate, burst: burst}
}

// Allow consumes one token for key, returning false when the bucket is dry.
func (l *Limiter) Allow(key string) bool {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{tokens: l.burst, last: now}
		l.buckets[key] = b
	}

	elapsed := now.Sub(b.last).Seconds()
	if elapsed > 0 {
		b.tokens += elapsed * l.rate
		if b.tokens > l.burst {
			b.tokens = l.burst
		}
		b.last = now
	}

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}
