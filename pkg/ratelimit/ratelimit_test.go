package ratelimit

import (
	"context"
	"testing"
	"time"
)

func TestLimiterAllow(t *testing.T) {
	l := New(3, time.Minute)
	for i := 0; i < 3; i++ {
		if !l.Allow() {
			t.Fatalf("request %d rejected under the limit", i)
		}
	}
	if l.Allow() {
		t.Fatal("request admitted over the limit")
	}
	if got := l.Remaining(); got != 0 {
		t.Fatalf("Remaining = %d, want 0", got)
	}
}

func TestLimiterWindowSlides(t *testing.T) {
	l := New(1, 20*time.Millisecond)
	if !l.Allow() {
		t.Fatal("first request rejected")
	}
	if l.Allow() {
		t.Fatal("second request admitted inside the window")
	}
	time.Sleep(30 * time.Millisecond)
	if !l.Allow() {
		t.Fatal("request rejected after the window slid")
	}
}

func TestLimiterWaitHonorsContext(t *testing.T) {
	l := New(1, time.Hour)
	if err := l.Wait(context.Background()); err != nil {
		t.Fatalf("Wait: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if err := l.Wait(ctx); err != context.DeadlineExceeded {
		t.Fatalf("Wait = %v, want deadline exceeded", err)
	}
}

func TestSetFallback(t *testing.T) {
	s := NewSet(map[string]*Limiter{ClassOrder: New(1, time.Hour)}, New(1, time.Hour))

	if !s.Allow(ClassOrder) {
		t.Fatal("order class rejected")
	}
	if s.Allow(ClassOrder) {
		t.Fatal("order class admitted over budget")
	}
	// Unknown classes draw from the fallback, not the order budget.
	if !s.Allow("unknown") {
		t.Fatal("fallback rejected")
	}
}
