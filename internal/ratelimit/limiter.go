package ratelimit

import (
	"context"
	"errors"
	"sync"
	"time"
)

// Limiter answers whether one more request under the given key fits into the
// current window.
type Limiter interface {
	Allow(ctx context.Context, key string) error
}

var ErrRateLimited = errors.New("rate limit exceeded")

// MemoryLimiter is a fixed-window counter per key, good enough for a single
// instance or tests.
type MemoryLimiter struct {
	limit  int
	window time.Duration

	mu      sync.Mutex
	buckets map[string]*bucket
}

type bucket struct {
	count int
	start time.Time
}

func NewMemoryLimiter(limit int, window time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		limit:   limit,
		window:  window,
		buckets: make(map[string]*bucket),
	}
}

func (l *MemoryLimiter) Allow(ctx context.Context, key string) error {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[key]
	if !ok || now.Sub(b.start) > l.window {
		b = &bucket{start: now}
		l.buckets[key] = b
	}

	if b.count >= l.limit {
		return ErrRateLimited
	}

	b.count++
	return nil
}
