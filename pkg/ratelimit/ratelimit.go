// Package ratelimit implements a sliding-window request limiter matching the
// per-endpoint budgets the exchange publishes.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Limiter admits at most limit requests per rolling window.
type Limiter struct {
	limit  int
	window time.Duration

	mu     sync.Mutex
	stamps []time.Time
}

// New returns a sliding-window limiter.
func New(limit int, window time.Duration) *Limiter {
	return &Limiter{limit: limit, window: window}
}

// Allow reports whether a request may proceed now, consuming a slot if so.
func (l *Limiter) Allow() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	l.trim(now)
	if len(l.stamps) >= l.limit {
		return false
	}
	l.stamps = append(l.stamps, now)
	return true
}

// Wait blocks until a slot is available or the context is done.
func (l *Limiter) Wait(ctx context.Context) error {
	for {
		if l.Allow() {
			return nil
		}

		l.mu.Lock()
		wait := l.window
		if len(l.stamps) > 0 {
			wait = l.window - time.Since(l.stamps[0])
		}
		l.mu.Unlock()
		if wait <= 0 {
			wait = 10 * time.Millisecond
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// Remaining reports how many slots are free in the current window.
func (l *Limiter) Remaining() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.trim(time.Now())
	if n := l.limit - len(l.stamps); n > 0 {
		return n
	}
	return 0
}

func (l *Limiter) trim(now time.Time) {
	cutoff := now.Add(-l.window)
	i := 0
	for i < len(l.stamps) && !l.stamps[i].After(cutoff) {
		i++
	}
	l.stamps = l.stamps[i:]
}

// Request classes for the Set below.
const (
	ClassOrder  = "order"  // order placement and cancellation
	ClassTrades = "trades" // order and trade history reads
	ClassMarket = "market" // books, prices and market metadata
)

// Set maps request classes to limiters, falling back to a catch-all.
type Set struct {
	limiters map[string]*Limiter
	fallback *Limiter
}

// NewSet builds a Set from explicit class budgets.
func NewSet(classes map[string]*Limiter, fallback *Limiter) *Set {
	return &Set{limiters: classes, fallback: fallback}
}

// DefaultSet carries the exchange's published per-10-second budgets.
func DefaultSet() *Set {
	window := 10 * time.Second
	return NewSet(map[string]*Limiter{
		ClassOrder:  New(2400, window),
		ClassTrades: New(150, window),
		ClassMarket: New(200, window),
	}, New(5000, window))
}

// Wait blocks until the class's limiter admits a request.
func (s *Set) Wait(ctx context.Context, class string) error {
	return s.limiter(class).Wait(ctx)
}

// Allow reports whether the class's limiter admits a request now.
func (s *Set) Allow(class string) bool {
	return s.limiter(class).Allow()
}

func (s *Set) limiter(class string) *Limiter {
	if l, ok := s.limiters[class]; ok {
		return l
	}
	return s.fallback
}
