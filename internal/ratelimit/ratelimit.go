package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter defines the interface for rate limiting
type Limiter interface {
	Allow(key string) bool
}

// InMemoryLimiter keeps one token bucket per key (client IP for the API).
type InMemoryLimiter struct {
	clients map[string]*client
	mu      sync.Mutex
	r       rate.Limit
	b       int
	idleTTL time.Duration
	now     func() time.Time
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewInMemoryLimiter creates a new rate limiter
// Example: NewInMemoryLimiter(5, time.Minute, 3) -> 5 writes a minute per client, burst of 3
func NewInMemoryLimiter(requests int, per time.Duration, burst int) *InMemoryLimiter {
	if requests <= 0 {
		requests = 1
	}
	if burst <= 0 {
		burst = 1
	}
	return &InMemoryLimiter{
		clients: make(map[string]*client),
		r:       rate.Every(per / time.Duration(requests)),
		b:       burst,
		idleTTL: 10 * per,
		now:     time.Now,
	}
}

// Allow checks if a client is allowed to perform an action
func (l *InMemoryLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	c, exists := l.clients[key]
	if !exists {
		c = &client{limiter: rate.NewLimiter(l.r, l.b)}
		l.clients[key] = c
	}
	c.lastSeen = now

	return c.limiter.AllowN(now, 1)
}

// Sweep drops buckets idle for longer than the idle TTL and reports how many
// were removed.
func (l *InMemoryLimiter) Sweep() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-l.idleTTL)
	removed := 0
	for key, c := range l.clients {
		if c.lastSeen.Before(cutoff) {
			delete(l.clients, key)
			removed++
		}
	}
	return removed
}

var _ Limiter = (*InMemoryLimiter)(nil)
