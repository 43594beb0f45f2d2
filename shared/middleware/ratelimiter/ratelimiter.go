package ratelimiter

import (
	"sync"
	"time"

	"github.com/gamefeed/gamefeed/shared/clock"
)

// bucket is a token bucket for one key
type bucket struct {
	tokens     float64
	lastRefill time.Time
}

// KeyRateLimiter keeps one token bucket per key (session, IP, ...).
// Buckets untouched for longer than expiration are dropped lazily.
type KeyRateLimiter struct {
	mu         sync.Mutex
	buckets    map[string]*bucket
	rate       float64 // tokens per second
	capacity   float64
	expiration time.Duration
	clock      clock.Clock
	lastSweep  time.Time
}

func New(rate, capacity float64, expiration time.Duration) *KeyRateLimiter {
	return NewWithClock(rate, capacity, expiration, clock.Real())
}

func NewWithClock(rate, capacity float64, expiration time.Duration, c clock.Clock) *KeyRateLimiter {
	return &KeyRateLimiter{
		buckets:    make(map[string]*bucket),
		rate:       rate,
		capacity:   capacity,
		expiration: expiration,
		clock:      c,
		lastSweep:  c.Now(),
	}
}

// Allow takes a token from the key's bucket if one is available.
func (l *KeyRateLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock.Now()
	l.sweep(now)

	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{tokens: l.capacity, lastRefill: now}
		l.buckets[key] = b
	}

	b.tokens += now.Sub(b.lastRefill).Seconds() * l.rate
	if b.tokens > l.capacity {
		b.tokens = l.capacity
	}
	b.lastRefill = now

	if b.tokens >= 1 {
		b.tokens--
		return true
	}
	return false
}

// Len reports how many keys are tracked.
func (l *KeyRateLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

// sweep runs at most once per expiration window; must hold l.mu
func (l *KeyRateLimiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < l.expiration {
		return
	}
	for key, b := range l.buckets {
		if now.Sub(b.lastRefill) >= l.expiration {
			delete(l.buckets, key)
		}
	}
	l.lastSweep = now
}

func OncePerSecond() *KeyRateLimiter {
	return New(1, 1, time.Hour)
}

func Rps10() *KeyRateLimiter {
	return New(10, 10, time.Hour)
}
