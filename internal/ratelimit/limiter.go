package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter reports whether the caller identified by key may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// MemoryLimiter is a per-key token bucket for single-process
// deployments.
type MemoryLimiter struct {
	mu      sync.Mutex
	clients map[string]*client
	limit   rate.Limit
	burst   int
}

func NewMemoryLimiter(perMinute int) *MemoryLimiter {
	l := &MemoryLimiter{
		clients: make(map[string]*client),
		limit:   rate.Limit(float64(perMinute) / 60.0),
		burst:   perMinute,
	}

	go func() {
		for {
			time.Sleep(time.Minute)
			l.prune()
		}
	}()

	return l
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	c, ok := l.clients[key]
	if !ok {
		c = &client{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[key] = c
	}
	c.lastSeen = time.Now()

	return c.limiter.Allow(), nil
}

func (l *MemoryLimiter) prune() {
	l.mu.Lock()
	defer l.mu.Unlock()

	for key, c := range l.clients {
		if time.Since(c.lastSeen) >= 3*time.Minute {
			delete(l.clients, key)
		}
	}
}
